package auth

import (
	"time"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

// AuthResult is returned by Login and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token; only its hash is stored
	ExpiresIn    time.Duration
	User         *domain.User
}
