package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrAmbiguousID is returned when an ID prefix matches more than one run.
var ErrAmbiguousID = errors.New("storage: ambiguous run id")

// Run is one recorded play session. Runs hold what is needed to replay
// the session, not its outcome.
type Run struct {
	ID         string
	GameID     string
	Seed       int64
	Device     string // "auto", "desktop" or "mobile"
	Preset     string
	ScreenW    int
	ScreenH    int
	Frames     int
	InputCount int
	CreatedAt  time.Time
	Inputs     []Input  // Only filled by RunByID
	Resizes    []Resize // Only filled by RunByID
}

// Input is one recorded action.
type Input struct {
	Frame  int
	Action string
}

// Resize is one recorded terminal resize.
type Resize struct {
	Frame   int
	ScreenW int
	ScreenH int
}

// GameActivity summarizes the recorded runs of one game.
type GameActivity struct {
	GameID      string
	Runs        int
	TotalFrames int64
	LastPlayed  time.Time
}

// SaveRun stores a run with its inputs in one transaction and returns its
// ID. A new UUID is assigned when run.ID is empty.
func (s *Store) SaveRun(ctx context.Context, run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, game_id, seed, device, preset, screen_w, screen_h, frames)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.GameID, run.Seed, run.Device, run.Preset, run.ScreenW, run.ScreenH, run.Frames,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	for i, in := range run.Inputs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO run_inputs (run_id, seq, frame, action) VALUES (?, ?, ?, ?)",
			run.ID, i, in.Frame, in.Action,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save input %d: %w", i, err)
		}
	}

	for i, rs := range run.Resizes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO run_resizes (run_id, seq, frame, screen_w, screen_h) VALUES (?, ?, ?, ?, ?)",
			run.ID, i, rs.Frame, rs.ScreenW, rs.ScreenH,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save resize %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return run.ID, nil
}

// RecentRuns lists the newest runs without their inputs.
// An empty gameID lists every game.
func (s *Store) RecentRuns(ctx context.Context, gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.game_id, r.seed, r.device, r.preset, r.screen_w, r.screen_h, r.frames,
		        (SELECT COUNT(*) FROM run_inputs i WHERE i.run_id = r.id), r.created_at
		 FROM runs r
		 WHERE ? = '' OR r.game_id = ?
		 ORDER BY r.created_at DESC, r.rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Seed, &r.Device, &r.Preset,
			&r.ScreenW, &r.ScreenH, &r.Frames, &r.InputCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID loads a run with its inputs. It returns nil, nil when no run has
// that ID.
func (s *Store) RunByID(ctx context.Context, id string) (*Run, error) {
	var r Run
	var createdAt any

	err := s.db.QueryRowContext(ctx,
		`SELECT id, game_id, seed, device, preset, screen_w, screen_h, frames, created_at
		 FROM runs WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.GameID, &r.Seed, &r.Device, &r.Preset, &r.ScreenW, &r.ScreenH, &r.Frames, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)

	if r.Inputs, err = s.runInputs(ctx, id); err != nil {
		return nil, err
	}
	if r.Resizes, err = s.runResizes(ctx, id); err != nil {
		return nil, err
	}
	r.InputCount = len(r.Inputs)

	return &r, nil
}

func (s *Store) runInputs(ctx context.Context, id string) ([]Input, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT frame, action FROM run_inputs WHERE run_id = ? ORDER BY seq", id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query inputs: %w", err)
	}
	defer rows.Close()

	var inputs []Input
	for rows.Next() {
		var in Input
		if err := rows.Scan(&in.Frame, &in.Action); err != nil {
			return nil, fmt.Errorf("storage: cannot scan input: %w", err)
		}
		inputs = append(inputs, in)
	}
	return inputs, rows.Err()
}

func (s *Store) runResizes(ctx context.Context, id string) ([]Resize, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT frame, screen_w, screen_h FROM run_resizes WHERE run_id = ? ORDER BY seq", id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query resizes: %w", err)
	}
	defer rows.Close()

	var resizes []Resize
	for rows.Next() {
		var rs Resize
		if err := rows.Scan(&rs.Frame, &rs.ScreenW, &rs.ScreenH); err != nil {
			return nil, fmt.Errorf("storage: cannot scan resize: %w", err)
		}
		resizes = append(resizes, rs)
	}
	return resizes, rows.Err()
}

// ResolveID expands a unique ID prefix to the full run ID. It returns an
// empty string when nothing matches.
func (s *Store) ResolveID(ctx context.Context, prefix string) (string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM runs WHERE substr(id, 1, ?) = ? LIMIT 2", len(prefix), prefix)
	if err != nil {
		return "", fmt.Errorf("storage: cannot resolve run id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", nil
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %q", ErrAmbiguousID, prefix)
	}
}

// DeleteRun removes a run and its inputs.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		"DELETE FROM run_inputs WHERE run_id = ?",
		"DELETE FROM run_resizes WHERE run_id = ?",
		"DELETE FROM runs WHERE id = ?",
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("storage: cannot delete run: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// PruneRuns keeps the newest keep runs and deletes the rest.
// Returns the number of runs removed.
func (s *Store) PruneRuns(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune runs: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count pruned runs: %w", err)
	}

	// Drop inputs whose run is gone
	for _, q := range []string{
		"DELETE FROM run_inputs WHERE run_id NOT IN (SELECT id FROM runs)",
		"DELETE FROM run_resizes WHERE run_id NOT IN (SELECT id FROM runs)",
	} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return 0, fmt.Errorf("storage: cannot prune inputs: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit prune: %w", err)
	}
	return n, nil
}

// Activity returns per-game run counts, keyed by game ID.
func (s *Store) Activity(ctx context.Context) (map[string]*GameActivity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, COUNT(*), COALESCE(SUM(frames), 0), MAX(created_at)
		 FROM runs
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get activity: %w", err)
	}
	defer rows.Close()

	activity := make(map[string]*GameActivity)
	for rows.Next() {
		var a GameActivity
		var lastPlayed any
		if err := rows.Scan(&a.GameID, &a.Runs, &a.TotalFrames, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan activity row: %w", err)
		}
		a.LastPlayed = parseTime(lastPlayed)
		activity[a.GameID] = &a
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return activity, nil
}
