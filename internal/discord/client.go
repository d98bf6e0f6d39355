package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"bm_discord_relay/internal/app"
	"bm_discord_relay/internal/config"

	"github.com/rs/zerolog/log"
)

const defaultBaseURL = "https://discord.com/api/v10"

// Client talks to the Discord REST API with a bot token
type Client struct {
	token        string
	baseURL      string
	client       *http.Client
	apiCallCount int64
	apiCallMutex sync.Mutex
}

func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
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

// doRequest executes an authenticated request with an optional JSON payload
// and decodes the JSON response into out when out is non-nil
func (c *Client) doRequest(ctx context.Context, method, path string, payload, out any) error {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request payload: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug().
			Err(err).
			Str("method", method).
			Str("path", path).
			Msg("Discord request failed")
		return fmt.Errorf("%w: %v", app.ErrUpstream, err)
	}
	defer resp.Body.Close()

	c.IncrementAPICall()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s %s: %s", app.ErrNotFound, method, path, string(body))
		}
		return fmt.Errorf("%w: %s %s returned status %d: %s", app.ErrUpstream, method, path, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", app.ErrUpstream, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", app.ErrUpstream, err)
	}

	return nil
}

// Me fetches the bot's own user. A successful call doubles as the ready
// signal: the token is valid and the API is reachable, so the scheduler may
// start.
func (c *Client) Me(ctx context.Context) (*app.DiscordUser, error) {
	var user app.DiscordUser
	if err := c.doRequest(ctx, "GET", "/users/@me", nil, &user); err != nil {
		return nil, err
	}

	log.Debug().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("Authenticated with Discord")

	return &user, nil
}

// GetChannel fetches one channel so callers can verify its kind
func (c *Client) GetChannel(ctx context.Context, channelID string) (*app.DiscordChannel, error) {
	var channel app.DiscordChannel
	if err := c.doRequest(ctx, "GET", "/channels/"+channelID, nil, &channel); err != nil {
		return nil, err
	}
	return &channel, nil
}

// RenameChannel sets a new name on a channel or category
func (c *Client) RenameChannel(ctx context.Context, channelID, name string) error {
	payload := app.ChannelRenameRequest{Name: name}
	if err := c.doRequest(ctx, "PATCH", "/channels/"+channelID, payload, nil); err != nil {
		return err
	}

	log.Debug().
		Str("channel_id", channelID).
		Str("name", name).
		Msg("Renamed channel")

	return nil
}

// CreateForumThread creates a new forum thread with the given starter message
// and applied tag IDs
func (c *Client) CreateForumThread(ctx context.Context, channelID, title, content string, appliedTags []string) error {
	payload := app.ThreadCreateRequest{
		Name:                title,
		AutoArchiveDuration: config.ForumAutoArchiveMinutes,
		AppliedTags:         appliedTags,
		Message:             app.ThreadMessage{Content: content},
	}

	if err := c.doRequest(ctx, "POST", "/channels/"+channelID+"/threads", payload, nil); err != nil {
		return err
	}

	log.Debug().
		Str("channel_id", channelID).
		Str("title", title).
		Int("tags", len(appliedTags)).
		Msg("Created forum thread")

	return nil
}
