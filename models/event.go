package models

// EventRecord is one on-ball or off-ball action from the provider's event feed,
// flattened for tabular output. CSV tags match the column names the downstream
// analysis notebooks expect.
type EventRecord struct {
	MatchID        int      `csv:"match_id"`
	ID             string   `csv:"id"`
	Index          int      `csv:"index"`
	Period         int      `csv:"period"`
	Timestamp      string   `csv:"timestamp"`
	Minute         int      `csv:"minute"`
	Second         int      `csv:"second"`
	Type           string   `csv:"type"`
	Possession     int      `csv:"possession"`
	PossessionTeam string   `csv:"possession_team"`
	PlayPattern    string   `csv:"play_pattern"`
	Team           string   `csv:"team"`
	Player         *string  `csv:"player"`
	Position       *string  `csv:"position"`
	LocationX      *float64 `csv:"location_x"`
	LocationY      *float64 `csv:"location_y"`
	Duration       *float64 `csv:"duration"`
	UnderPressure  *bool    `csv:"under_pressure"`
}

// FrameRecord is one player entry of a 360 freeze frame, tied to its event
// through EventUUID. The provider names the linking column "event_uuid" on the
// frame side but "id" on the event side; the merge step does the rename.
type FrameRecord struct {
	MatchID   int     `csv:"match_id"`
	EventUUID string  `csv:"event_uuid"`
	Teammate  bool    `csv:"teammate"`
	Actor     bool    `csv:"actor"`
	Keeper    bool    `csv:"keeper"`
	LocationX float64 `csv:"location_x"`
	LocationY float64 `csv:"location_y"`
}

// MergedFrameEvent is a frame row joined to its event. The frame's linking
// column is carried as "id" (the event-side name). Event columns are pointers:
// a frame whose event is missing from the event table keeps empty cells there.
type MergedFrameEvent struct {
	MatchID   int     `csv:"match_id"`
	ID        string  `csv:"id"`
	Teammate  bool    `csv:"teammate"`
	Actor     bool    `csv:"actor"`
	Keeper    bool    `csv:"keeper"`
	LocationX float64 `csv:"location_x"`
	LocationY float64 `csv:"location_y"`

	EventIndex     *int     `csv:"index"`
	Period         *int     `csv:"period"`
	Timestamp      *string  `csv:"timestamp"`
	Minute         *int     `csv:"minute"`
	Second         *int     `csv:"second"`
	Type           *string  `csv:"type"`
	Possession     *int     `csv:"possession"`
	PossessionTeam *string  `csv:"possession_team"`
	PlayPattern    *string  `csv:"play_pattern"`
	Team           *string  `csv:"team"`
	Player         *string  `csv:"player"`
	Position       *string  `csv:"position"`
	EventLocationX *float64 `csv:"event_location_x"`
	EventLocationY *float64 `csv:"event_location_y"`
	Duration       *float64 `csv:"duration"`
	UnderPressure  *bool    `csv:"under_pressure"`
}

// LineupRecord is one player of a team's starting roster.
type LineupRecord struct {
	PlayerID       int     `csv:"player_id"`
	PlayerName     string  `csv:"player_name"`
	PlayerNickname *string `csv:"player_nickname"`
	JerseyNumber   int     `csv:"jersey_number"`
	Country        string  `csv:"country"`
}
