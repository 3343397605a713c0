package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LLove01/leverkusen-invincibles-analysis/models"
)

func TestMatchDirName(t *testing.T) {
	tests := []struct {
		name     string
		md       models.MatchMetadata
		expected string
	}{
		{
			name: "sanitized team names",
			md: models.MatchMetadata{
				MatchWeek: 5, HomeTeam: "Bayer Leverkusen", HomeScore: 3,
				AwayScore: 0, AwayTeam: "Bayern Munich",
			},
			expected: "GW5_BayerLeverkusen_3-0_BayernMunich",
		},
		{
			name: "defaulted fields",
			md: models.MatchMetadata{
				MatchWeek: 0, HomeTeam: "Unknown", AwayTeam: "Unknown",
			},
			expected: "GW0_Unknown_0-0_Unknown",
		},
		{
			name: "punctuated team names",
			md: models.MatchMetadata{
				MatchWeek: 12, HomeTeam: "1. FC Heidenheim", HomeScore: 1,
				AwayScore: 1, AwayTeam: "TSG 1899 Hoffenheim",
			},
			expected: "GW12_1FCHeidenheim_1-1_TSG1899Hoffenheim",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchDirName(tt.md))
		})
	}
}

func TestNewFileStoreCreatesBaseDir(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "matches")

	s, err := NewFileStore(baseDir)
	require.NoError(t, err)
	require.DirExists(t, baseDir)

	// Idempotent on an existing directory.
	_, err = NewFileStore(baseDir)
	require.NoError(t, err)

	assert.False(t, s.MatchDirExists("GW1_A_0-0_B"))
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, "GW1_A_0-0_B"), 0755))
	assert.True(t, s.MatchDirExists("GW1_A_0-0_B"))
}

func TestSaveMatchArtifacts(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	nickname := "Fio"
	lineups := map[string][]models.LineupRecord{
		"Bayer Leverkusen": {
			{PlayerID: 7, PlayerName: "Florian Wirtz", PlayerNickname: &nickname, JerseyNumber: 10, Country: "Germany"},
			{PlayerID: 8, PlayerName: "Granit Xhaka", JerseyNumber: 34, Country: "Switzerland"},
		},
		"Bayern Munich": {
			{PlayerID: 9, PlayerName: "Harry Kane", JerseyNumber: 9, Country: "England"},
		},
	}
	events := []models.EventRecord{
		{MatchID: 123, ID: "ev-1", Index: 1, Type: "Pass", Team: "Bayer Leverkusen"},
		{MatchID: 123, ID: "ev-2", Index: 2, Type: "Shot", Team: "Bayer Leverkusen"},
	}
	merged := []models.MergedFrameEvent{
		{MatchID: 123, ID: "ev-1", Teammate: true, LocationX: 50, LocationY: 40},
	}
	md := models.MatchMetadata{
		MatchID: 123, MatchWeek: 5, HomeTeam: "Bayer Leverkusen", AwayTeam: "Bayern Munich",
		HomeScore: 3, AwayScore: 0, HomeManagers: []models.Manager{}, AwayManagers: []models.Manager{},
	}

	dirName := MatchDirName(md)
	require.NoError(t, s.SaveMatchArtifacts(dirName, lineups, merged, events, md))

	matchDir := filepath.Join(s.BaseDir(), "GW5_BayerLeverkusen_3-0_BayernMunich")

	lineupCSV, err := os.ReadFile(filepath.Join(matchDir, "BayerLeverkusen_lineups.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(lineupCSV), "player_id,player_name,player_nickname,jersey_number,country"))
	assert.Contains(t, string(lineupCSV), "Florian Wirtz")
	assert.FileExists(t, filepath.Join(matchDir, "BayernMunich_lineups.csv"))

	framesCSV, err := os.ReadFile(filepath.Join(matchDir, "360_frames.csv"))
	require.NoError(t, err)
	header := strings.SplitN(string(framesCSV), "\n", 2)[0]
	assert.True(t, strings.HasPrefix(header, "match_id,id,teammate"))
	assert.NotContains(t, header, "event_uuid")

	eventsCSV, err := os.ReadFile(filepath.Join(matchDir, "events.csv"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(eventsCSV)), "\n"), 3)

	var doc map[string]any
	mdData, err := os.ReadFile(filepath.Join(matchDir, "metadata.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(mdData, &doc))
	assert.Equal(t, float64(123), doc["match_id"])
	assert.Len(t, doc, 24)
	// Human-readable: the document is indented.
	assert.Contains(t, string(mdData), "\n    \"match_id\"")
}

func TestSaveMatchArtifactsNoMergedTable(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	md := models.MatchMetadata{MatchID: 1, HomeTeam: "A", AwayTeam: "B",
		HomeManagers: []models.Manager{}, AwayManagers: []models.Manager{}}
	dirName := MatchDirName(md)

	require.NoError(t, s.SaveMatchArtifacts(dirName, nil, nil, nil, md))

	matchDir := filepath.Join(s.BaseDir(), dirName)
	assert.NoFileExists(t, filepath.Join(matchDir, "360_frames.csv"))

	// An empty event table still writes the header row.
	eventsCSV, err := os.ReadFile(filepath.Join(matchDir, "events.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(eventsCSV), "match_id,id,index"))
}

func TestSaveMatchArtifactsPersistenceError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	baseDir := t.TempDir()
	s, err := NewFileStore(baseDir)
	require.NoError(t, err)

	md := models.MatchMetadata{MatchID: 1, HomeTeam: "A", AwayTeam: "B"}
	dirName := MatchDirName(md)
	matchDir := filepath.Join(baseDir, dirName)
	require.NoError(t, os.MkdirAll(matchDir, 0755))
	require.NoError(t, os.Chmod(matchDir, 0500))
	defer os.Chmod(matchDir, 0755)

	err = s.SaveMatchArtifacts(dirName, nil, nil, nil, md)
	require.Error(t, err)

	var persistErr *PersistenceError
	assert.ErrorAs(t, err, &persistErr)
}
