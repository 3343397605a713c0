package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LLove01/leverkusen-invincibles-analysis/models"
)

func testEvent(matchID int, id string, minute int) models.EventRecord {
	return models.EventRecord{MatchID: matchID, ID: id, Minute: minute, Type: "Pass", Team: "Bayer Leverkusen"}
}

func testFrame(matchID int, eventUUID string, x float64) models.FrameRecord {
	return models.FrameRecord{MatchID: matchID, EventUUID: eventUUID, Teammate: true, LocationX: x, LocationY: 40}
}

func TestMergeFramesEmptyFrameTable(t *testing.T) {
	events := []models.EventRecord{testEvent(123, "a", 1)}

	merged, ok := MergeFrames(events, nil)
	assert.False(t, ok)
	assert.Nil(t, merged)

	merged, ok = MergeFrames(events, []models.FrameRecord{})
	assert.False(t, ok)
	assert.Nil(t, merged)
}

func TestMergeFramesPreservesEveryFrameRow(t *testing.T) {
	events := []models.EventRecord{
		testEvent(123, "ev-1", 5),
		testEvent(123, "ev-2", 7),
	}
	frames := []models.FrameRecord{
		testFrame(123, "ev-1", 10),
		testFrame(123, "ev-1", 20),
		testFrame(123, "ev-2", 30),
		testFrame(123, "orphan", 40), // no matching event
	}

	merged, ok := MergeFrames(events, frames)
	require.True(t, ok)
	require.Len(t, merged, 4)

	// Frame order is preserved and the linking column is renamed to "id".
	assert.Equal(t, "ev-1", merged[0].ID)
	assert.Equal(t, "ev-1", merged[1].ID)
	assert.Equal(t, "ev-2", merged[2].ID)
	assert.Equal(t, "orphan", merged[3].ID)

	// Matched rows carry event columns.
	require.NotNil(t, merged[0].Minute)
	assert.Equal(t, 5, *merged[0].Minute)
	require.NotNil(t, merged[2].Minute)
	assert.Equal(t, 7, *merged[2].Minute)

	// The orphan keeps empty event columns but loses nothing frame-side.
	assert.Nil(t, merged[3].Minute)
	assert.Nil(t, merged[3].Type)
	assert.Equal(t, 40.0, merged[3].LocationX)
}

func TestMergeFramesJoinsOnMatchIDToo(t *testing.T) {
	// Same event id under a different match id must not match.
	events := []models.EventRecord{testEvent(999, "ev-1", 5)}
	frames := []models.FrameRecord{testFrame(123, "ev-1", 10)}

	merged, ok := MergeFrames(events, frames)
	require.True(t, ok)
	require.Len(t, merged, 1)
	assert.Nil(t, merged[0].Minute)
}

func TestMergeFramesDuplicateEventKeyFansOut(t *testing.T) {
	// Duplicate (match_id, id) pairs should not occur upstream, but when they
	// do the join fans out rather than dropping or guarding.
	events := []models.EventRecord{
		testEvent(123, "ev-1", 5),
		testEvent(123, "ev-1", 6),
	}
	frames := []models.FrameRecord{testFrame(123, "ev-1", 10)}

	merged, ok := MergeFrames(events, frames)
	require.True(t, ok)
	require.Len(t, merged, 2)
	assert.Equal(t, 5, *merged[0].Minute)
	assert.Equal(t, 6, *merged[1].Minute)
}
