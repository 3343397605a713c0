package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/LLove01/leverkusen-invincibles-analysis/models"
	"github.com/LLove01/leverkusen-invincibles-analysis/utils"
)

// PersistenceError wraps a filesystem write failure. Fatal: no cleanup of
// partially written artifacts is attempted.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// MatchDirName builds the human-readable directory name for a match,
// e.g. "GW5_BayerLeverkusen_3-0_BayernMunich". Team names go through the
// sanitizer; week and scores are ints already, so nothing unsafe can leak in.
func MatchDirName(md models.MatchMetadata) string {
	return fmt.Sprintf("GW%d_%s_%d-%d_%s",
		md.MatchWeek,
		utils.SanitizeTeamName(md.HomeTeam),
		md.HomeScore,
		md.AwayScore,
		utils.SanitizeTeamName(md.AwayTeam),
	)
}

// FileStore persists match artifacts under a base directory.
type FileStore struct {
	baseDir string
}

// NewFileStore creates the base directory if needed and returns a store
// rooted there.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, &PersistenceError{Path: baseDir, Err: err}
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) BaseDir() string { return s.baseDir }

// MatchDirExists reports whether a prior run already produced this directory.
func (s *FileStore) MatchDirExists(dirName string) bool {
	info, err := os.Stat(filepath.Join(s.baseDir, dirName))
	return err == nil && info.IsDir()
}

// SaveMatchArtifacts writes everything a run produced for one match, in
// order: per-team lineups, the merged frame/event table (only when the merge
// produced one; pass nil otherwise), the raw events, and the metadata
// document. Re-running for the same match overwrites file by file. The first
// write failure aborts; partially written artifacts are left as-is.
func (s *FileStore) SaveMatchArtifacts(
	dirName string,
	lineups map[string][]models.LineupRecord,
	merged []models.MergedFrameEvent,
	events []models.EventRecord,
	md models.MatchMetadata,
) error {
	matchDir := filepath.Join(s.baseDir, dirName)
	if err := os.MkdirAll(matchDir, 0755); err != nil {
		return &PersistenceError{Path: matchDir, Err: err}
	}

	// Stable write order for the lineup files.
	teams := make([]string, 0, len(lineups))
	for team := range lineups {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	for _, team := range teams {
		name := utils.SanitizeTeamName(team) + "_lineups.csv"
		if err := writeCSV(filepath.Join(matchDir, name), lineups[team]); err != nil {
			return err
		}
		log.Printf("Store: saved %d lineup rows for %s\n", len(lineups[team]), team)
	}

	if merged != nil {
		if err := writeCSV(filepath.Join(matchDir, "360_frames.csv"), merged); err != nil {
			return err
		}
		log.Printf("Store: saved %d merged frame rows\n", len(merged))
	}

	if err := writeCSV(filepath.Join(matchDir, "events.csv"), events); err != nil {
		return err
	}
	log.Printf("Store: saved %d event rows\n", len(events))

	if err := s.writeMetadata(filepath.Join(matchDir, "metadata.json"), md); err != nil {
		return err
	}
	log.Printf("Store: saved metadata for match %d\n", md.MatchID)

	return nil
}

// writeMetadata persists the metadata record as an indented JSON document.
// Field order follows the struct declaration, so reruns produce identical
// documents for identical input.
func (s *FileStore) writeMetadata(path string, md models.MatchMetadata) error {
	data, err := json.MarshalIndent(md, "", "    ")
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}
