package models

// MatchMetadata is the fully-populated descriptive record written next to the
// match artifacts. Every field is always present in the output document: the
// builder substitutes a typed default for anything the provider omitted, so a
// consumer never sees a missing key or a native null. Field order here is the
// document order.
type MatchMetadata struct {
	MatchID   int    `json:"match_id"`
	MatchDate string `json:"match_date"`
	KickOff   string `json:"kick_off"`

	CompetitionID int    `json:"competition_id"`
	SeasonID      int    `json:"season_id"`
	Competition   string `json:"competition"`
	Season        string `json:"season"`

	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`

	MatchStatus    string `json:"match_status"`
	MatchStatus360 string `json:"match_status_360"`

	LastUpdated    string `json:"last_updated"`
	LastUpdated360 string `json:"last_updated_360"`

	MatchWeek        int    `json:"match_week"`
	CompetitionStage string `json:"competition_stage"`
	Stadium          string `json:"stadium"`
	Referee          string `json:"referee"`

	HomeManagers []Manager `json:"home_managers"`
	AwayManagers []Manager `json:"away_managers"`

	DataVersion         string `json:"data_version"`
	ShotFidelityVersion string `json:"shot_fidelity_version"`
	XYFidelityVersion   string `json:"xy_fidelity_version"`
}
