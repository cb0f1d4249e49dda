package assistant

import (
	"context"
	"errors"
)

// ErrAccountNotFound reports that no account carries the requested email.
var ErrAccountNotFound = errors.New("account not found")

type Repository interface {
	GetActivityByEmail(ctx context.Context, email string) (*Activity, error)
}
