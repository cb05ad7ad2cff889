// Package gate keeps the per-session "apply disabled" flag for each job.
package gate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Gate records that a session must not be offered the apply action for a job again.
type Gate interface {
	Disable(ctx context.Context, sessionKey string, jobID uuid.UUID) error
	IsDisabled(ctx context.Context, sessionKey string, jobID uuid.UUID) (bool, error)
	Clear(ctx context.Context, sessionKey string, jobID uuid.UUID) error
}

func key(sessionKey string, jobID uuid.UUID) string {
	return fmt.Sprintf("apply_gate:%s:%s", sessionKey, jobID)
}
