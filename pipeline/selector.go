package pipeline

import (
	"fmt"

	"github.com/LLove01/leverkusen-invincibles-analysis/models"
)

// EmptyResultError means the provider's match list held nothing to select.
// Fatal: no dependent data may be fetched after it.
type EmptyResultError struct {
	CompetitionID int
	SeasonID      int
	MatchID       int
}

func (e *EmptyResultError) Error() string {
	if e.MatchID != 0 {
		return fmt.Sprintf("no match with id %d found for competition %d, season %d", e.MatchID, e.CompetitionID, e.SeasonID)
	}
	return fmt.Sprintf("no matches found for competition %d, season %d", e.CompetitionID, e.SeasonID)
}

// SelectMatch picks the target match from the provider's list. A matchID of 0
// keeps provider order and takes the first record; any other value selects
// that exact match id. Selection never inspects scores, dates or status.
func SelectMatch(matches []models.MatchRecord, competitionID, seasonID, matchID int) (models.MatchRecord, error) {
	if matchID == 0 {
		if len(matches) == 0 {
			return models.MatchRecord{}, &EmptyResultError{CompetitionID: competitionID, SeasonID: seasonID}
		}
		return matches[0], nil
	}
	for _, m := range matches {
		if m.MatchID == matchID {
			return m, nil
		}
	}
	return models.MatchRecord{}, &EmptyResultError{CompetitionID: competitionID, SeasonID: seasonID, MatchID: matchID}
}
