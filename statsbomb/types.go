package statsbomb

import "github.com/LLove01/leverkusen-invincibles-analysis/models"

// Wire types mirroring the provider's nested JSON. They exist only to be
// flattened into the flat records in models; nothing outside this package
// sees them.

type namedJSON struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type managerJSON struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Nickname *string `json:"nickname"`
	DOB      *string `json:"dob"`
	Country  *struct {
		Name string `json:"name"`
	} `json:"country"`
}

func (m managerJSON) toManager() models.Manager {
	mgr := models.Manager{
		ID:       m.ID,
		Name:     m.Name,
		Nickname: m.Nickname,
		DOB:      m.DOB,
	}
	if m.Country != nil {
		mgr.Country = m.Country.Name
	}
	return mgr
}

type matchJSON struct {
	MatchID     int     `json:"match_id"`
	MatchDate   *string `json:"match_date"`
	KickOff     *string `json:"kick_off"`
	Competition *struct {
		CompetitionID   int    `json:"competition_id"`
		CompetitionName string `json:"competition_name"`
	} `json:"competition"`
	Season *struct {
		SeasonID   int    `json:"season_id"`
		SeasonName string `json:"season_name"`
	} `json:"season"`
	HomeTeam *struct {
		HomeTeamName string        `json:"home_team_name"`
		Managers     []managerJSON `json:"managers"`
	} `json:"home_team"`
	AwayTeam *struct {
		AwayTeamName string        `json:"away_team_name"`
		Managers     []managerJSON `json:"managers"`
	} `json:"away_team"`
	HomeScore        *int       `json:"home_score"`
	AwayScore        *int       `json:"away_score"`
	MatchStatus      *string    `json:"match_status"`
	MatchStatus360   *string    `json:"match_status_360"`
	LastUpdated      *string    `json:"last_updated"`
	LastUpdated360   *string    `json:"last_updated_360"`
	MatchWeek        *int       `json:"match_week"`
	CompetitionStage *namedJSON `json:"competition_stage"`
	Stadium          *namedJSON `json:"stadium"`
	Referee          *namedJSON `json:"referee"`
	Metadata         *struct {
		DataVersion         *string `json:"data_version"`
		ShotFidelityVersion *string `json:"shot_fidelity_version"`
		XYFidelityVersion   *string `json:"xy_fidelity_version"`
	} `json:"metadata"`
}

func (m matchJSON) toRecord() models.MatchRecord {
	rec := models.MatchRecord{
		MatchID:        m.MatchID,
		MatchDate:      m.MatchDate,
		KickOff:        m.KickOff,
		HomeScore:      m.HomeScore,
		AwayScore:      m.AwayScore,
		MatchStatus:    m.MatchStatus,
		MatchStatus360: m.MatchStatus360,
		LastUpdated:    m.LastUpdated,
		LastUpdated360: m.LastUpdated360,
		MatchWeek:      m.MatchWeek,
	}
	if m.Competition != nil {
		rec.Competition = &m.Competition.CompetitionName
	}
	if m.Season != nil {
		rec.Season = &m.Season.SeasonName
	}
	if m.HomeTeam != nil {
		rec.HomeTeam = &m.HomeTeam.HomeTeamName
		for _, mgr := range m.HomeTeam.Managers {
			rec.HomeManagers = append(rec.HomeManagers, mgr.toManager())
		}
	}
	if m.AwayTeam != nil {
		rec.AwayTeam = &m.AwayTeam.AwayTeamName
		for _, mgr := range m.AwayTeam.Managers {
			rec.AwayManagers = append(rec.AwayManagers, mgr.toManager())
		}
	}
	if m.CompetitionStage != nil {
		rec.CompetitionStage = &m.CompetitionStage.Name
	}
	if m.Stadium != nil {
		rec.Stadium = &m.Stadium.Name
	}
	if m.Referee != nil {
		rec.Referee = &m.Referee.Name
	}
	if m.Metadata != nil {
		rec.DataVersion = m.Metadata.DataVersion
		rec.ShotFidelityVersion = m.Metadata.ShotFidelityVersion
		rec.XYFidelityVersion = m.Metadata.XYFidelityVersion
	}
	return rec
}

type eventJSON struct {
	ID             string     `json:"id"`
	Index          int        `json:"index"`
	Period         int        `json:"period"`
	Timestamp      string     `json:"timestamp"`
	Minute         int        `json:"minute"`
	Second         int        `json:"second"`
	Type           *namedJSON `json:"type"`
	Possession     int        `json:"possession"`
	PossessionTeam *namedJSON `json:"possession_team"`
	PlayPattern    *namedJSON `json:"play_pattern"`
	Team           *namedJSON `json:"team"`
	Player         *namedJSON `json:"player"`
	Position       *namedJSON `json:"position"`
	Location       []float64  `json:"location"`
	Duration       *float64   `json:"duration"`
	UnderPressure  *bool      `json:"under_pressure"`
}

func (e eventJSON) toRecord(matchID int) models.EventRecord {
	rec := models.EventRecord{
		MatchID:       matchID,
		ID:            e.ID,
		Index:         e.Index,
		Period:        e.Period,
		Timestamp:     e.Timestamp,
		Minute:        e.Minute,
		Second:        e.Second,
		Possession:    e.Possession,
		Duration:      e.Duration,
		UnderPressure: e.UnderPressure,
	}
	if e.Type != nil {
		rec.Type = e.Type.Name
	}
	if e.PossessionTeam != nil {
		rec.PossessionTeam = e.PossessionTeam.Name
	}
	if e.PlayPattern != nil {
		rec.PlayPattern = e.PlayPattern.Name
	}
	if e.Team != nil {
		rec.Team = e.Team.Name
	}
	if e.Player != nil {
		rec.Player = &e.Player.Name
	}
	if e.Position != nil {
		rec.Position = &e.Position.Name
	}
	if len(e.Location) >= 2 {
		rec.LocationX = &e.Location[0]
		rec.LocationY = &e.Location[1]
	}
	return rec
}

type frameJSON struct {
	EventUUID   string `json:"event_uuid"`
	FreezeFrame []struct {
		Teammate bool      `json:"teammate"`
		Actor    bool      `json:"actor"`
		Keeper   bool      `json:"keeper"`
		Location []float64 `json:"location"`
	} `json:"freeze_frame"`
}

func (f frameJSON) toRecords(matchID int) []models.FrameRecord {
	records := make([]models.FrameRecord, 0, len(f.FreezeFrame))
	for _, p := range f.FreezeFrame {
		rec := models.FrameRecord{
			MatchID:   matchID,
			EventUUID: f.EventUUID,
			Teammate:  p.Teammate,
			Actor:     p.Actor,
			Keeper:    p.Keeper,
		}
		if len(p.Location) >= 2 {
			rec.LocationX = p.Location[0]
			rec.LocationY = p.Location[1]
		}
		records = append(records, rec)
	}
	return records
}

type lineupJSON struct {
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
	Lineup   []struct {
		PlayerID       int     `json:"player_id"`
		PlayerName     string  `json:"player_name"`
		PlayerNickname *string `json:"player_nickname"`
		JerseyNumber   int     `json:"jersey_number"`
		Country        *struct {
			Name string `json:"name"`
		} `json:"country"`
	} `json:"lineup"`
}

func (l lineupJSON) toRecords() []models.LineupRecord {
	records := make([]models.LineupRecord, 0, len(l.Lineup))
	for _, p := range l.Lineup {
		rec := models.LineupRecord{
			PlayerID:       p.PlayerID,
			PlayerName:     p.PlayerName,
			PlayerNickname: p.PlayerNickname,
			JerseyNumber:   p.JerseyNumber,
		}
		if p.Country != nil {
			rec.Country = p.Country.Name
		}
		records = append(records, rec)
	}
	return records
}
