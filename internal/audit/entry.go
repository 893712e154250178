package audit

import (
	"time"
)

// Entry is one audited admin action. Approvals, rejections, deletions, theme
// changes and auth events all leave one of these behind.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Admin      string    `json:"admin,omitempty"`
	Action     string    `json:"action"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	OwnerID    string    `json:"owner_id,omitempty"`
	Detail     string    `json:"detail,omitempty"`
}
