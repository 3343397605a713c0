package pipeline

import (
	"github.com/LLove01/leverkusen-invincibles-analysis/models"
)

// BuildMetadata assembles the complete metadata record for one match. Every
// field the provider omitted gets its documented default, so the output never
// carries a missing key or a null. The manager lists pass through uncoerced,
// defaulting to an empty list. The competition and season ids are the fixed
// inputs the match list was fetched with.
func BuildMetadata(m models.MatchRecord, competitionID, seasonID int) models.MatchMetadata {
	return models.MatchMetadata{
		MatchID:   m.MatchID,
		MatchDate: strOr(m.MatchDate, "Unknown"),
		KickOff:   strOr(m.KickOff, "Unknown"),

		CompetitionID: competitionID,
		SeasonID:      seasonID,
		Competition:   strOr(m.Competition, "1. Bundesliga"),
		Season:        strOr(m.Season, "2023/2024"),

		HomeTeam:  strOr(m.HomeTeam, "Unknown"),
		AwayTeam:  strOr(m.AwayTeam, "Unknown"),
		HomeScore: intOr(m.HomeScore, 0),
		AwayScore: intOr(m.AwayScore, 0),

		MatchStatus:    strOr(m.MatchStatus, "Unknown"),
		MatchStatus360: strOr(m.MatchStatus360, "Unknown"),

		LastUpdated:    strOr(m.LastUpdated, "None"),
		LastUpdated360: strOr(m.LastUpdated360, "None"),

		MatchWeek:        intOr(m.MatchWeek, 0),
		CompetitionStage: strOr(m.CompetitionStage, "Unknown"),
		Stadium:          strOr(m.Stadium, "Unknown"),
		Referee:          strOr(m.Referee, "Unknown"),

		HomeManagers: managersOrEmpty(m.HomeManagers),
		AwayManagers: managersOrEmpty(m.AwayManagers),

		DataVersion:         strOr(m.DataVersion, "Unknown"),
		ShotFidelityVersion: strOr(m.ShotFidelityVersion, "Unknown"),
		XYFidelityVersion:   strOr(m.XYFidelityVersion, "Unknown"),
	}
}

func strOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// managersOrEmpty keeps nil out of the document: an absent manager list
// serializes as [] rather than null.
func managersOrEmpty(managers []models.Manager) []models.Manager {
	if managers == nil {
		return []models.Manager{}
	}
	return managers
}
