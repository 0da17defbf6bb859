// Package core provides the shared types for the Zenv Hub client.
package core

import (
	"encoding/json"
	"time"
)

// Package represents a published package as returned by the hub API.
// Packages are immutable once fetched; the catalog is replaced wholesale
// on every refresh, never patched.
type Package struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	License     string `json:"license,omitempty"`
	Downloads   int    `json:"downloads_count,omitempty"`
	Size        int64  `json:"size,omitempty"`
	Filename    string `json:"filename,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
}

// Badge represents a published status badge. Identity key is Name.
type Badge struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	Color     string `json:"color,omitempty"`
	Logo      string `json:"logo,omitempty"`
	SVGURL    string `json:"svg_url,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
	Usage     int    `json:"usage_count,omitempty"`
}

// Server status values. A poll resets the container to StatusChecking
// before issuing the request, then lands on ok or error.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusChecking = "checking"

	GitHubConnected    = "connected"
	GitHubDisconnected = "disconnected"
)

// ServerStatus is the hub health snapshot.
type ServerStatus struct {
	Status    string     `json:"status"`
	GitHub    string     `json:"github,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// NotificationType classifies a notification for display purposes.
type NotificationType string

const (
	NoticeInfo    NotificationType = "info"
	NoticeSuccess NotificationType = "success"
	NoticeError   NotificationType = "error"
)

// Notification is a transient user-facing message. IDs come from a
// monotonic counter, so they are unique for the lifetime of the process.
type Notification struct {
	ID      int64            `json:"id"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
}

// Session is the opaque authenticated-session payload returned by the
// auth endpoints. The client never interprets its fields; it only tracks
// presence.
type Session struct {
	Raw json.RawMessage `json:"-"`
}

// Authenticated reports whether the session carries a payload.
func (s Session) Authenticated() bool {
	return len(s.Raw) > 0
}
