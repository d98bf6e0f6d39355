package battlemetrics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"bm_discord_relay/internal/app"
	"bm_discord_relay/internal/config"

	"github.com/rs/zerolog/log"
)

const defaultBaseURL = "https://api.battlemetrics.com"

// Client talks to the BattleMetrics API for a single monitored server
type Client struct {
	serverID     string
	token        string
	baseURL      string
	client       *http.Client
	apiCallCount int64
	apiCallMutex sync.Mutex
}

func NewClient(serverID, token string) *Client {
	return &Client{
		serverID: serverID,
		token:    token,
		baseURL:  defaultBaseURL,
		client: &http.Client{
			Timeout: config.HTTPRequestTimeout,
		},
	}
}

// IncrementAPICall safely increments the API call counter
func (c *Client) IncrementAPICall() {
	c.apiCallMutex.Lock()
	c.apiCallCount++
	c.apiCallMutex.Unlock()
}

// GetAPICallCount returns the current API call count
func (c *Client) GetAPICallCount() int64 {
	c.apiCallMutex.Lock()
	defer c.apiCallMutex.Unlock()
	return c.apiCallCount
}

// ResetAPICallCount resets the API call counter to zero
func (c *Client) ResetAPICallCount() {
	c.apiCallMutex.Lock()
	c.apiCallCount = 0
	c.apiCallMutex.Unlock()
}

// makeAPIRequest creates and executes an authenticated GET request
func (c *Client) makeAPIRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug().
			Err(err).
			Str("url", url).
			Msg("BattleMetrics request failed")
		return nil, fmt.Errorf("%w: %v", app.ErrUpstream, err)
	}

	c.IncrementAPICall()
	return resp, nil
}

// handleAPIResponse processes the HTTP response and returns the body bytes
func (c *Client) handleAPIResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: status %d: %s", app.ErrNotFound, resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d: %s", app.ErrUpstream, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", app.ErrUpstream, err)
	}

	return body, nil
}

// GetServerStatus fetches the current status snapshot of the monitored server
func (c *Client) GetServerStatus(ctx context.Context) (*app.ServerStatus, error) {
	url := fmt.Sprintf("%s/servers/%s", c.baseURL, c.serverID)

	log.Debug().Str("url", url).Msg("Fetching server status")

	resp, err := c.makeAPIRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	body, err := c.handleAPIResponse(resp)
	if err != nil {
		return nil, err
	}

	var serverResponse app.ServerResponse
	if err := json.Unmarshal(body, &serverResponse); err != nil {
		return nil, fmt.Errorf("%w: failed to decode server response: %v", app.ErrUpstream, err)
	}

	status := statusFromWire(serverResponse.Data.Attributes)

	log.Debug().
		Str("state", string(status.State)).
		Int("players", status.Players).
		Int("max_players", status.MaxPlayers).
		Msg("Successfully fetched server status")

	return status, nil
}

// ListRecentBans fetches up to pageSize most recent bans, newest-first as
// delivered by the API
func (c *Client) ListRecentBans(ctx context.Context, pageSize int) ([]app.BanRecord, error) {
	reqURL := fmt.Sprintf("%s/servers/%s/bans?%s", c.baseURL, c.serverID,
		url.Values{"page[size]": {fmt.Sprintf("%d", pageSize)}}.Encode())

	log.Debug().Str("url", reqURL).Int("page_size", pageSize).Msg("Fetching recent bans")

	resp, err := c.makeAPIRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	body, err := c.handleAPIResponse(resp)
	if err != nil {
		return nil, err
	}

	var banResponse app.BanListResponse
	if err := json.Unmarshal(body, &banResponse); err != nil {
		return nil, fmt.Errorf("%w: failed to decode ban response: %v", app.ErrUpstream, err)
	}

	records := make([]app.BanRecord, 0, len(banResponse.Data))
	for _, ban := range banResponse.Data {
		records = append(records, banRecordFromWire(ban))
	}

	log.Debug().
		Int("ban_count", len(records)).
		Msg("Successfully fetched recent bans")

	return records, nil
}

// statusFromWire maps the wire attributes onto the binary snapshot. Anything
// that is not reported "online" (dead, removed, unknown) counts as offline.
func statusFromWire(attrs app.ServerAttributes) *app.ServerStatus {
	state := app.ServerOffline
	if attrs.Status == "online" {
		state = app.ServerOnline
	}

	return &app.ServerStatus{
		State:      state,
		Players:    attrs.Players,
		MaxPlayers: attrs.MaxPlayers,
	}
}

// banRecordFromWire normalizes one wire ban into a BanRecord, filling the
// documented defaults for absent fields
func banRecordFromWire(ban app.Ban) app.BanRecord {
	record := app.BanRecord{
		ID:         ban.ID,
		PlayerName: "Unknown",
		Reason:     "No reason provided",
		CreatedAt:  ban.Attributes.Timestamp,
		Permanent:  ban.Attributes.Expires == nil,
		PlayerID:   ban.Relationships.Player.Data.ID,
	}

	if ban.Attributes.Player != nil && ban.Attributes.Player.Name != "" {
		record.PlayerName = ban.Attributes.Player.Name
	}
	if ban.Attributes.Reason != "" {
		record.Reason = ban.Attributes.Reason
	}
	if ban.Attributes.Admin != nil {
		record.AdminName = ban.Attributes.Admin.Name
	}

	return record
}
