package storage

import (
	"context"
	"fmt"

	"github.com/vovakirdan/firerun/internal/config"
	"github.com/vovakirdan/firerun/internal/core"
	"github.com/vovakirdan/firerun/internal/games/firefighter"
)

// deviceAuto marks runs whose device class came from the canvas width.
const deviceAuto = "auto"

// RunFromRecording converts a firefighter replay log into a storable run.
func RunFromRecording(gameID string, rec firefighter.Recording) Run {
	device := string(rec.Device)
	if device == "" {
		device = deviceAuto
	}

	run := Run{
		GameID:     gameID,
		Seed:       rec.Seed,
		Device:     device,
		Preset:     string(rec.Preset),
		ScreenW:    rec.ScreenW,
		ScreenH:    rec.ScreenH,
		Frames:     rec.Frames,
		InputCount: len(rec.Inputs),
		Inputs:     make([]Input, 0, len(rec.Inputs)),
		Resizes:    make([]Resize, 0, len(rec.Resizes)),
	}
	for _, in := range rec.Inputs {
		run.Inputs = append(run.Inputs, Input{Frame: in.Frame, Action: in.Action.String()})
	}
	for _, rs := range rec.Resizes {
		run.Resizes = append(run.Resizes, Resize{Frame: rs.Frame, ScreenW: rs.ScreenW, ScreenH: rs.ScreenH})
	}
	return run
}

// Recording converts a stored run back into a firefighter replay log.
func (r Run) Recording() (firefighter.Recording, error) {
	rec := firefighter.Recording{
		Seed:    r.Seed,
		Preset:  config.ParsePreset(r.Preset),
		ScreenW: r.ScreenW,
		ScreenH: r.ScreenH,
		Frames:  r.Frames,
	}

	if r.Device != deviceAuto {
		class, ok := config.ParseDeviceClass(r.Device)
		if !ok {
			return rec, fmt.Errorf("storage: run %s has unknown device %q", r.ID, r.Device)
		}
		rec.Device = class
	}

	for _, in := range r.Inputs {
		a, ok := core.ParseAction(in.Action)
		if !ok {
			return rec, fmt.Errorf("storage: run %s has unknown action %q", r.ID, in.Action)
		}
		rec.Inputs = append(rec.Inputs, firefighter.InputEvent{Frame: in.Frame, Action: a})
	}
	for _, rs := range r.Resizes {
		rec.Resizes = append(rec.Resizes, firefighter.ResizeEvent{Frame: rs.Frame, ScreenW: rs.ScreenW, ScreenH: rs.ScreenH})
	}
	return rec, nil
}

// SaveRecording stores a finished firefighter run.
// This adapter lets the platform save runs without building storage rows.
func (s *Store) SaveRecording(ctx context.Context, gameID string, rec firefighter.Recording) (string, error) {
	return s.SaveRun(ctx, RunFromRecording(gameID, rec))
}
