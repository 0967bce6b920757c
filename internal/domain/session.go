package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session holds the workflow state for one conversation. The state
// machine is the only writer; messages are processed one at a time, so
// no locking is needed.
type Session struct {
	ID            string
	Mode          Mode
	Topic         string
	CurrentSurvey string
	Format        FormatKind
	CreatedAt     time.Time
}

// NewSession creates an idle session with a fresh identifier.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		Mode:      ModeIdle,
		Format:    FormatLikert,
		CreatedAt: time.Now().UTC(),
	}
}
