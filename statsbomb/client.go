package statsbomb

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/LLove01/leverkusen-invincibles-analysis/config"
	"github.com/LLove01/leverkusen-invincibles-analysis/models"
)

// ProviderError wraps any transport, auth or decode failure from the remote
// data provider. Never retried; the whole run aborts on the first one.
type ProviderError struct {
	Endpoint string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider request for %s failed: %v", e.Endpoint, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Client fetches match data over the StatsBomb JSON layout. The open-data
// mirror needs no credentials; the hosted API takes HTTP basic auth.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

func NewClient(cfg config.ProviderConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// get fetches one endpoint and decodes the JSON body into out. A true return
// with nil error means the resource does not exist (HTTP 404), which only the
// frames endpoint treats as a valid outcome.
func (c *Client) get(endpoint string, out any) (notFound bool, err error) {
	url := c.baseURL + endpoint

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return false, &ProviderError{Endpoint: endpoint, Err: err}
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, &ProviderError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return true, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, &ProviderError{Endpoint: endpoint, Err: fmt.Errorf("received status code %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, &ProviderError{Endpoint: endpoint, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return false, nil
}

// Matches lists all matches for a competition and season, in provider order.
func (c *Client) Matches(competitionID, seasonID int) ([]models.MatchRecord, error) {
	endpoint := fmt.Sprintf("/matches/%d/%d.json", competitionID, seasonID)

	var raw []matchJSON
	notFound, err := c.get(endpoint, &raw)
	if err != nil {
		return nil, err
	}
	if notFound {
		return nil, &ProviderError{Endpoint: endpoint, Err: fmt.Errorf("received status code %d", http.StatusNotFound)}
	}

	matches := make([]models.MatchRecord, 0, len(raw))
	for _, m := range raw {
		matches = append(matches, m.toRecord())
	}
	log.Printf("Provider: fetched %d matches for competition %d, season %d\n", len(matches), competitionID, seasonID)
	return matches, nil
}

// Events fetches the full event log for one match. The provider omits the
// match id inside the event file, so it is stamped onto every row here.
func (c *Client) Events(matchID int) ([]models.EventRecord, error) {
	endpoint := fmt.Sprintf("/events/%d.json", matchID)

	var raw []eventJSON
	notFound, err := c.get(endpoint, &raw)
	if err != nil {
		return nil, err
	}
	if notFound {
		return nil, &ProviderError{Endpoint: endpoint, Err: fmt.Errorf("received status code %d", http.StatusNotFound)}
	}

	events := make([]models.EventRecord, 0, len(raw))
	for _, e := range raw {
		events = append(events, e.toRecord(matchID))
	}
	log.Printf("Provider: fetched %d events for match %d\n", len(events), matchID)
	return events, nil
}

// Frames fetches the 360 tracking frames for one match, one record per
// freeze-frame player. Matches without 360 coverage return an empty table,
// not an error.
func (c *Client) Frames(matchID int) ([]models.FrameRecord, error) {
	endpoint := fmt.Sprintf("/three-sixty/%d.json", matchID)

	var raw []frameJSON
	notFound, err := c.get(endpoint, &raw)
	if err != nil {
		return nil, err
	}
	if notFound {
		log.Printf("Provider: no 360 data available for match %d\n", matchID)
		return nil, nil
	}

	var frames []models.FrameRecord
	for _, f := range raw {
		frames = append(frames, f.toRecords(matchID)...)
	}
	log.Printf("Provider: fetched %d freeze-frame rows for match %d\n", len(frames), matchID)
	return frames, nil
}

// Lineups fetches the per-team rosters for one match, keyed by team name.
func (c *Client) Lineups(matchID int) (map[string][]models.LineupRecord, error) {
	endpoint := fmt.Sprintf("/lineups/%d.json", matchID)

	var raw []lineupJSON
	notFound, err := c.get(endpoint, &raw)
	if err != nil {
		return nil, err
	}
	if notFound {
		return nil, &ProviderError{Endpoint: endpoint, Err: fmt.Errorf("received status code %d", http.StatusNotFound)}
	}

	lineups := make(map[string][]models.LineupRecord, len(raw))
	for _, team := range raw {
		lineups[team.TeamName] = team.toRecords()
	}
	log.Printf("Provider: fetched lineups for %d teams for match %d\n", len(lineups), matchID)
	return lineups, nil
}
