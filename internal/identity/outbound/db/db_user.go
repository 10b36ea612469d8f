package db

import (
	"context"

	"github.com/cookingforum/auth/internal/identity/entity"
)

// CreateUser inserts a new account and reports whether a row was written.
//
// A duplicate email is not an error: the conflicting insert is a no-op and
// the caller decides how to respond.
func (s *DB) CreateUser(ctx context.Context, user entity.NewUser, passwordHash string) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO users (id, name, surname, email, password, two_factor_enabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO NOTHING`

	tag, err := s.conn.Exec(ctx, query,
		user.ID, user.Name, user.Surname, user.Email, passwordHash, user.TwoFactorEnabled)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetUserAuthInfo loads the credential projection for an email.
func (s *DB) GetUserAuthInfo(ctx context.Context, email string) (_ *entity.UserAuthInfo, err error) {
	ctx, span := s.startSpan(ctx, "GetUserAuthInfo")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, name, surname, email, password, two_factor_enabled
		FROM users
		WHERE email = $1`

	var info entity.UserAuthInfo
	err = s.conn.QueryRow(ctx, query, email).
		Scan(&info.ID, &info.Name, &info.Surname, &info.Email, &info.Password, &info.TwoFactorEnabled)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &info, nil
}
