package app

import (
	"errors"
	"time"
)

// ErrUpstream marks any failure talking to an external API: transport errors,
// non-2xx responses, and undecodable bodies all wrap it.
var ErrUpstream = errors.New("upstream request failed")

// ErrNotFound marks a 404 from an external API, so callers can tell a missing
// target channel apart from a transient upstream failure.
var ErrNotFound = errors.New("resource not found")

// ServerState is the binary online/offline view of the monitored server
type ServerState string

const (
	ServerOnline  ServerState = "online"
	ServerOffline ServerState = "offline"
)

// ServerStatus is the current snapshot of the monitored game server
type ServerStatus struct {
	State      ServerState
	Players    int
	MaxPlayers int
}

// BanRecord is one reported ban, normalized from the BattleMetrics wire shape.
// ID is stable across repeated fetches; everything else is pass-through.
type BanRecord struct {
	ID         string
	PlayerName string
	PlayerID   string
	Reason     string
	CreatedAt  time.Time
	Permanent  bool
	AdminName  string
}

// Result returns the outcome line for a ban post
func (b BanRecord) Result() string {
	if b.Permanent {
		return "Permanently banned"
	}
	return "Temporary ban"
}

// ServerResponse represents the response from /servers/{id}
type ServerResponse struct {
	Data struct {
		ID         string           `json:"id"`
		Attributes ServerAttributes `json:"attributes"`
	} `json:"data"`
}

// ServerAttributes holds the server fields used by the status poller
type ServerAttributes struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
}

// BanListResponse represents the response from /servers/{id}/bans
type BanListResponse struct {
	Data []Ban `json:"data"`
}

// Ban is one ban entry as delivered by the API, newest-first in the list
type Ban struct {
	ID            string           `json:"id"`
	Attributes    BanAttributes    `json:"attributes"`
	Relationships BanRelationships `json:"relationships"`
}

// BanAttributes holds the ban fields this system reads.
// Expires is nil for permanent bans.
type BanAttributes struct {
	Timestamp time.Time  `json:"timestamp"`
	Reason    string     `json:"reason"`
	Note      string     `json:"note"`
	Expires   *time.Time `json:"expires"`
	Player    *BanPlayer `json:"player"`
	Admin     *BanAdmin  `json:"admin"`
}

// BanPlayer is the inline player identity attached to a ban
type BanPlayer struct {
	Name string `json:"name"`
}

// BanAdmin is the inline admin identity attached to a ban
type BanAdmin struct {
	Name string `json:"name"`
}

// BanRelationships carries the linked player reference
type BanRelationships struct {
	Player RelationshipRef `json:"player"`
}

// RelationshipRef is a JSON:API relationship pointer
type RelationshipRef struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Discord channel types used by this system
const (
	ChannelTypeGuildText     = 0
	ChannelTypeGuildCategory = 4
	ChannelTypeGuildForum    = 15
)

// DiscordUser represents the response from /users/@me
type DiscordUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Bot           bool   `json:"bot"`
}

// DiscordChannel represents a channel object from /channels/{id}
type DiscordChannel struct {
	ID       string `json:"id"`
	Type     int    `json:"type"`
	Name     string `json:"name"`
	GuildID  string `json:"guild_id,omitempty"`
	ParentID string `json:"parent_id,omitempty"`
}

// ChannelRenameRequest is the PATCH /channels/{id} payload
type ChannelRenameRequest struct {
	Name string `json:"name"`
}

// ThreadCreateRequest is the POST /channels/{id}/threads payload for forum channels
type ThreadCreateRequest struct {
	Name                string        `json:"name"`
	AutoArchiveDuration int           `json:"auto_archive_duration"`
	AppliedTags         []string      `json:"applied_tags,omitempty"`
	Message             ThreadMessage `json:"message"`
}

// ThreadMessage is the starter message of a forum thread
type ThreadMessage struct {
	Content string `json:"content"`
}
