package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// PullRecord is one row of the pull catalog: what was pulled, where it went,
// and how big each record set was.
type PullRecord struct {
	MatchID     int
	Directory   string
	EventRows   int
	FrameRows   int
	LineupTeams int
	PulledAt    time.Time
}

// Catalog keeps a local history of completed pulls in an embedded sqlite
// database, one row per match id. Re-pulling a match replaces its row, which
// matches the overwrite semantics of the artifacts themselves.
type Catalog struct {
	db *sql.DB
}

const catalogSchema = `
CREATE TABLE IF NOT EXISTS pulls (
	match_id     INTEGER PRIMARY KEY,
	directory    TEXT NOT NULL,
	event_rows   INTEGER NOT NULL,
	frame_rows   INTEGER NOT NULL,
	lineup_teams INTEGER NOT NULL,
	pulled_at    TEXT NOT NULL
)`

// OpenCatalog opens (creating if needed) the pull catalog at the given path.
func OpenCatalog(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pull catalog %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping pull catalog %s: %w", path, err)
	}
	if _, err := db.Exec(catalogSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create pull catalog schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// RecordPull upserts the catalog row for a completed pull.
func (c *Catalog) RecordPull(rec PullRecord) error {
	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO pulls (match_id, directory, event_rows, frame_rows, lineup_teams, pulled_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.MatchID, rec.Directory, rec.EventRows, rec.FrameRows, rec.LineupTeams,
		rec.PulledAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record pull for match %d: %w", rec.MatchID, err)
	}
	return nil
}

// LastPull returns the catalog row for a match id, or (nil, nil) if the match
// has never been pulled.
func (c *Catalog) LastPull(matchID int) (*PullRecord, error) {
	row := c.db.QueryRow(`
		SELECT match_id, directory, event_rows, frame_rows, lineup_teams, pulled_at
		FROM pulls WHERE match_id = ?`, matchID)

	var rec PullRecord
	var pulledAt string
	err := row.Scan(&rec.MatchID, &rec.Directory, &rec.EventRows, &rec.FrameRows, &rec.LineupTeams, &pulledAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pull record for match %d: %w", matchID, err)
	}
	rec.PulledAt, err = time.Parse(time.RFC3339, pulledAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pulled_at for match %d: %w", matchID, err)
	}
	return &rec, nil
}
