package pipeline

import (
	"fmt"
	"log"
	"time"

	"github.com/LLove01/leverkusen-invincibles-analysis/config"
	"github.com/LLove01/leverkusen-invincibles-analysis/models"
	"github.com/LLove01/leverkusen-invincibles-analysis/store"
)

// Provider is the remote data source for one match's record sets. All calls
// block and return a statsbomb.ProviderError on transport or auth failure.
type Provider interface {
	Matches(competitionID, seasonID int) ([]models.MatchRecord, error)
	Events(matchID int) ([]models.EventRecord, error)
	Frames(matchID int) ([]models.FrameRecord, error)
	Lineups(matchID int) (map[string][]models.LineupRecord, error)
}

// Run executes one full pull: select the target match, fetch its record sets,
// merge frames onto events, and persist everything under one match directory.
// The catalog may be nil to disable pull history. Any error aborts the run;
// nothing is retried and nothing partially written is cleaned up.
func Run(cfg *config.Config, provider Provider, files *store.FileStore, catalog *store.Catalog) error {
	pull := cfg.Pull

	matches, err := provider.Matches(pull.CompetitionID, pull.SeasonID)
	if err != nil {
		return err
	}

	match, err := SelectMatch(matches, pull.CompetitionID, pull.SeasonID, pull.MatchID)
	if err != nil {
		return err
	}
	log.Printf("Pipeline: selected match %d\n", match.MatchID)

	md := BuildMetadata(match, pull.CompetitionID, pull.SeasonID)
	dirName := store.MatchDirName(md)

	// Decide the rerun policy before any dependent fetch.
	if files.MatchDirExists(dirName) {
		switch pull.OnExisting {
		case config.OnExistingSkip:
			log.Printf("Pipeline: %s already exists, skipping pull\n", dirName)
			return nil
		case config.OnExistingFail:
			return &store.PersistenceError{Path: dirName, Err: fmt.Errorf("match directory already exists")}
		default:
			log.Printf("Pipeline: %s already exists, overwriting\n", dirName)
		}
	}

	events, err := provider.Events(match.MatchID)
	if err != nil {
		return err
	}
	frames, err := provider.Frames(match.MatchID)
	if err != nil {
		return err
	}
	lineups, err := provider.Lineups(match.MatchID)
	if err != nil {
		return err
	}

	merged, ok := MergeFrames(events, frames)
	if !ok {
		log.Printf("Pipeline: no frames for match %d, no merged table produced\n", match.MatchID)
		merged = nil
	}

	if err := files.SaveMatchArtifacts(dirName, lineups, merged, events, md); err != nil {
		return err
	}

	if catalog != nil {
		err := catalog.RecordPull(store.PullRecord{
			MatchID:     match.MatchID,
			Directory:   dirName,
			EventRows:   len(events),
			FrameRows:   len(frames),
			LineupTeams: len(lineups),
			PulledAt:    time.Now(),
		})
		if err != nil {
			return err
		}
	}

	log.Printf("Processed %s\n", dirName)
	return nil
}
