package firefighter

import (
	"math"

	"github.com/vovakirdan/firerun/internal/config"
)

// fixedRand returns the same value for every draw.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// seqRand returns the queued values in order, then repeats the last one.
type seqRand struct {
	vals  []float64
	draws int
}

func (r *seqRand) Float64() float64 {
	i := min(r.draws, len(r.vals)-1)
	r.draws++
	return r.vals[i]
}

// noSpawn never wins a spawn trial.
const noSpawn = fixedRand(0.999)

func desktopSim() config.Sim {
	return config.Resolve(config.DefaultFirefighterConfig(), 1200, 600, config.DeviceDesktop)
}

func mobileSim() config.Sim {
	return config.Resolve(config.DefaultFirefighterConfig(), 600, 300, config.DeviceMobile)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
