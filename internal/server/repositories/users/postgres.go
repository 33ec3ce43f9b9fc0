// Package users provides the PostgreSQL-backed repository for the users table.
//
// Every method runs exactly one parameterized statement on the bound
// dbx.DBTX. Store errors are wrapped with %w and otherwise returned as is;
// use the dbx helpers to classify them.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userdb/internal/common"
	"github.com/dmitrijs2005/userdb/internal/dbx"
	"github.com/dmitrijs2005/userdb/internal/server/models"
	"github.com/google/uuid"
)

const userColumns = `id, name, email, password, verified, created_at, updated_at, verification_token, token_expires_at, role`

const (
	selectByIDQuery    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	selectByNameQuery  = `SELECT ` + userColumns + ` FROM users WHERE name = $1`
	selectByEmailQuery = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	selectByTokenQuery = `SELECT ` + userColumns + ` FROM users WHERE verification_token = $1`

	selectPageQuery = `SELECT ` + userColumns + ` FROM users
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`

	countQuery = `SELECT COUNT(*) FROM users`

	insertQuery = `INSERT INTO users (name, email, password, verification_token, token_expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + userColumns

	updateNameQuery = `UPDATE users
		 SET name = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING ` + userColumns

	updateRoleQuery = `UPDATE users
		 SET role = $1::user_role, updated_at = NOW()
		 WHERE id = $2
		 RETURNING ` + userColumns

	updatePasswordQuery = `UPDATE users
		 SET password = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING ` + userColumns

	verifyTokenQuery = `UPDATE users
		 SET verified = true, updated_at = NOW(), verification_token = NULL, token_expires_at = NULL
		 WHERE verification_token = $1`

	addTokenQuery = `UPDATE users
		 SET verification_token = $1, token_expires_at = $2, updated_at = NOW()
		 WHERE id = $3`
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Verified,
		&user.CreatedAt, &user.UpdatedAt, &user.VerificationToken, &user.TokenExpiresAt,
		&user.Role,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// lookupQuery picks the statement for the highest-priority selector field.
func lookupQuery(sel Selector) (string, any, bool) {
	switch {
	case sel.ID != uuid.Nil:
		return selectByIDQuery, sel.ID, true
	case sel.Name != "":
		return selectByNameQuery, sel.Name, true
	case sel.Email != "":
		return selectByEmailQuery, sel.Email, true
	case sel.Token != "":
		return selectByTokenQuery, sel.Token, true
	}
	return "", nil, false
}

// GetUser returns the user matched by sel, or nil with no error when no row
// matches or sel is empty.
func (r *PostgresRepository) GetUser(ctx context.Context, sel Selector) (*models.User, error) {
	query, arg, ok := lookupQuery(sel)
	if !ok {
		return nil, nil
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// GetUsers returns one page of users, newest first. Pages are 1-based;
// page 0 is treated as page 1 and a negative limit as 0.
func (r *PostgresRepository) GetUsers(ctx context.Context, page, limit int) ([]*models.User, error) {
	if page < 1 {
		page = 1
	}
	if limit < 0 {
		limit = 0
	}
	offset := int64(page-1) * int64(limit)

	rows, err := r.db.QueryContext(ctx, selectPageQuery, int64(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// GetUserCount returns the number of rows in users.
func (r *PostgresRepository) GetUserCount(ctx context.Context) (int64, error) {
	var count sql.NullInt64
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count.Int64, nil
}

// SaveUser inserts a new unverified user and returns the stored row.
// A duplicate name or email fails with a unique violation
// (see dbx.IsUniqueViolation).
func (r *PostgresRepository) SaveUser(ctx context.Context, user NewUser) (*models.User, error) {
	var (
		token   sql.NullString
		expires sql.NullTime
	)
	if user.VerificationToken != "" {
		token = sql.NullString{String: user.VerificationToken, Valid: true}
		expires = sql.NullTime{Time: user.TokenExpiresAt, Valid: true}
	}

	saved, err := scanUser(r.db.QueryRowContext(ctx, insertQuery,
		user.Name, user.Email, user.Password, token, expires))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return saved, nil
}

func (r *PostgresRepository) updateReturning(ctx context.Context, query string, args ...any) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// UpdateUserName sets the name of userID and returns the updated row.
// It returns common.ErrorNotFound when no such user exists.
func (r *PostgresRepository) UpdateUserName(ctx context.Context, userID uuid.UUID, name string) (*models.User, error) {
	return r.updateReturning(ctx, updateNameQuery, name, userID)
}

// UpdateUserRole sets the role of userID and returns the updated row.
// Roles outside the enumeration fail with common.ErrInvalidRole before any
// statement is sent.
func (r *PostgresRepository) UpdateUserRole(ctx context.Context, userID uuid.UUID, role models.UserRole) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidRole, string(role))
	}
	return r.updateReturning(ctx, updateRoleQuery, string(role), userID)
}

// UpdateUserPassword stores a new password hash for userID.
func (r *PostgresRepository) UpdateUserPassword(ctx context.Context, userID uuid.UUID, password string) (*models.User, error) {
	return r.updateReturning(ctx, updatePasswordQuery, password, userID)
}

// VerifyToken marks the user holding token as verified and clears the pending
// token. An unknown token is a no-op. Expiry is not checked here.
func (r *PostgresRepository) VerifyToken(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, verifyTokenQuery, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// AddVerificationToken sets a pending verification token on userID,
// replacing any token already present.
func (r *PostgresRepository) AddVerificationToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, addTokenQuery, token, expiresAt, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
