package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/userdb/internal/server/models"
	"github.com/google/uuid"
)

// Selector locates a single user. Fields are applied in a fixed priority
// order: ID, then Name, then Email, then Token. The first non-zero field is
// used and the remaining ones are ignored. A zero Selector matches nothing.
type Selector struct {
	ID    uuid.UUID
	Name  string
	Email string
	Token string
}

// NewUser carries the caller-supplied columns of an insert. The id, role,
// verified flag and timestamps are assigned by the database.
//
// An empty VerificationToken stores no pending verification; TokenExpiresAt
// is ignored in that case.
type NewUser struct {
	Name              string
	Email             string
	Password          string
	VerificationToken string
	TokenExpiresAt    time.Time
}

type Repository interface {
	GetUser(ctx context.Context, sel Selector) (*models.User, error)
	GetUsers(ctx context.Context, page, limit int) ([]*models.User, error)
	GetUserCount(ctx context.Context) (int64, error)
	SaveUser(ctx context.Context, user NewUser) (*models.User, error)
	UpdateUserName(ctx context.Context, userID uuid.UUID, name string) (*models.User, error)
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role models.UserRole) (*models.User, error)
	UpdateUserPassword(ctx context.Context, userID uuid.UUID, password string) (*models.User, error)
	VerifyToken(ctx context.Context, token string) error
	AddVerificationToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
}
