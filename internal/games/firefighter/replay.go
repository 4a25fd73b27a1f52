package firefighter

import (
	"slices"

	"github.com/vovakirdan/firerun/internal/config"
	"github.com/vovakirdan/firerun/internal/core"
)

// InputEvent is one gameplay action taken on a given frame.
type InputEvent struct {
	Frame  int
	Action core.Action
}

// ResizeEvent is a terminal resize that happened before a given frame.
type ResizeEvent struct {
	Frame   int
	ScreenW int
	ScreenH int
}

// Recording holds everything needed to re-simulate a run: the seed, the
// host settings it started with and every input it received.
type Recording struct {
	Seed    int64
	Device  config.DeviceClass // Empty when classified by canvas width
	Preset  config.DifficultyPreset
	ScreenW int
	ScreenH int
	Frames  int
	Inputs  []InputEvent
	Resizes []ResizeEvent
}

// Outcome is the result of a replayed run.
type Outcome struct {
	Score    int
	Ticks    int
	GameOver bool
	State    State
}

// Recording returns a copy of the current run's replay log.
func (g *Game) Recording() Recording {
	rec := g.rec
	rec.Frames = g.frame
	rec.Inputs = slices.Clone(g.rec.Inputs)
	rec.Resizes = slices.Clone(g.rec.Resizes)
	return rec
}

// Replay re-simulates rec headless. cfg is the config before any preset;
// the recorded preset is applied on top. Runs replay exactly only under
// the config they were played with.
func Replay(rec Recording, cfg config.FirefighterConfig) Outcome {
	if rec.Preset != "" {
		config.ApplyFirefighterPreset(&cfg, rec.Preset)
	}

	g := &Game{id: "replay", device: rec.Device, preset: rec.Preset, cfg: cfg}
	g.start(core.RuntimeConfig{
		ScreenW: rec.ScreenW,
		ScreenH: rec.ScreenH,
		Seed:    rec.Seed,
	})

	inputs := rec.Inputs
	resizes := rec.Resizes
	for frame := 0; frame < rec.Frames && !g.state.GameOver; frame++ {
		for len(resizes) > 0 && resizes[0].Frame <= frame {
			g.Resize(resizes[0].ScreenW, resizes[0].ScreenH)
			resizes = resizes[1:]
		}

		in := core.NewInputFrame()
		for len(inputs) > 0 && inputs[0].Frame <= frame {
			in.Set(inputs[0].Action)
			inputs = inputs[1:]
		}
		g.Step(in)
	}

	return Outcome{
		Score:    g.state.Score,
		Ticks:    g.ticks,
		GameOver: g.state.GameOver,
		State:    g.state,
	}
}
