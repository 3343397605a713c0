package models

// MatchRecord is one row of the provider's match list for a competition and
// season. Optional fields are pointers so a value the provider omitted can be
// told apart from a zero value; defaulting happens later, in the metadata
// builder, not here. Immutable once fetched.
type MatchRecord struct {
	MatchID   int
	MatchDate *string
	KickOff   *string

	Competition *string
	Season      *string

	HomeTeam  *string
	AwayTeam  *string
	HomeScore *int
	AwayScore *int

	MatchStatus    *string
	MatchStatus360 *string

	LastUpdated    *string
	LastUpdated360 *string

	MatchWeek        *int
	CompetitionStage *string
	Stadium          *string
	Referee          *string

	HomeManagers []Manager
	AwayManagers []Manager

	DataVersion         *string
	ShotFidelityVersion *string
	XYFidelityVersion   *string
}

// Manager is one entry of a team's manager list. Passed through to the
// metadata document as-is, without coercion.
type Manager struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Nickname *string `json:"nickname"`
	DOB      *string `json:"dob"`
	Country  string  `json:"country"`
}
