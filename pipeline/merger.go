package pipeline

import (
	"github.com/LLove01/leverkusen-invincibles-analysis/models"
)

type eventKey struct {
	matchID int
	eventID string
}

// MergeFrames left-joins the frame table onto the event table on
// (match_id, event id), renaming the frame-side "event_uuid" column to the
// event-side "id" in the output. Every frame row survives; a frame whose
// event is missing keeps empty event columns. Frame order is preserved.
//
// An empty frame table yields (nil, false): no merged artifact exists and the
// caller must handle that case explicitly.
//
// Duplicate (match_id, id) pairs in the event table fan out, duplicating the
// frame row once per matching event. The provider guarantees uniqueness; this
// merger does not.
func MergeFrames(events []models.EventRecord, frames []models.FrameRecord) ([]models.MergedFrameEvent, bool) {
	if len(frames) == 0 {
		return nil, false
	}

	byKey := make(map[eventKey][]*models.EventRecord, len(events))
	for i := range events {
		k := eventKey{matchID: events[i].MatchID, eventID: events[i].ID}
		byKey[k] = append(byKey[k], &events[i])
	}

	merged := make([]models.MergedFrameEvent, 0, len(frames))
	for _, f := range frames {
		matching := byKey[eventKey{matchID: f.MatchID, eventID: f.EventUUID}]
		if len(matching) == 0 {
			merged = append(merged, mergeRow(f, nil))
			continue
		}
		for _, e := range matching {
			merged = append(merged, mergeRow(f, e))
		}
	}
	return merged, true
}

func mergeRow(f models.FrameRecord, e *models.EventRecord) models.MergedFrameEvent {
	row := models.MergedFrameEvent{
		MatchID:   f.MatchID,
		ID:        f.EventUUID,
		Teammate:  f.Teammate,
		Actor:     f.Actor,
		Keeper:    f.Keeper,
		LocationX: f.LocationX,
		LocationY: f.LocationY,
	}
	if e == nil {
		return row
	}
	row.EventIndex = &e.Index
	row.Period = &e.Period
	row.Timestamp = &e.Timestamp
	row.Minute = &e.Minute
	row.Second = &e.Second
	row.Type = &e.Type
	row.Possession = &e.Possession
	row.PossessionTeam = &e.PossessionTeam
	row.PlayPattern = &e.PlayPattern
	row.Team = &e.Team
	row.Player = e.Player
	row.Position = e.Position
	row.EventLocationX = e.LocationX
	row.EventLocationY = e.LocationY
	row.Duration = e.Duration
	row.UnderPressure = e.UnderPressure
	return row
}
