// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

type AuditLog struct {
	Timestamp     time.Time       `json:"timestamp"`
	UserID        int64           `json:"user_id"`
	Action        string          `json:"action"`
	ResourceKind  string          `json:"resource_kind"`
	ResourceID    int64           `json:"resource_id"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}

// Recorded actions.
const (
	ActionCreateSnippet = "CREATE_SNIPPET"
	ActionUpdateSnippet = "UPDATE_SNIPPET"
	ActionDeleteSnippet = "DELETE_SNIPPET"
	ActionCreateTag     = "CREATE_TAG"
	ActionCreateUser    = "CREATE_USER"
)
