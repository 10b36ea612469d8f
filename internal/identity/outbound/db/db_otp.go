package db

import (
	"context"

	"github.com/cookingforum/auth/internal/identity/entity"
)

// CreateOtpChallenge persists a challenge. The creation instant is recorded
// by the database and read back during verification.
func (s *DB) CreateOtpChallenge(ctx context.Context, ch entity.OtpChallenge) (err error) {
	ctx, span := s.startSpan(ctx, "CreateOtpChallenge")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO otp_challenges (id, user_id, code_hash)
		VALUES ($1, $2, $3)`

	if _, err = s.conn.Exec(ctx, query, ch.ID, ch.UserID, ch.CodeHash); err != nil {
		return s.mapError(err)
	}

	return nil
}

// GetOtpChallenge fetches a challenge by id for the given user. A challenge
// belonging to a different user is reported as not found.
func (s *DB) GetOtpChallenge(ctx context.Context, id, userID int64) (_ *entity.OtpChallenge, err error) {
	ctx, span := s.startSpan(ctx, "GetOtpChallenge")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, user_id, code_hash, created_at
		FROM otp_challenges
		WHERE id = $1 AND user_id = $2`

	var ch entity.OtpChallenge
	err = s.conn.QueryRow(ctx, query, id, userID).
		Scan(&ch.ID, &ch.UserID, &ch.CodeHash, &ch.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &ch, nil
}

// DeleteOtpChallenge consumes a challenge and reports whether a row was
// deleted. Two racing verifications cannot both observe true: the delete is a
// single atomic statement keyed by (id, user_id).
func (s *DB) DeleteOtpChallenge(ctx context.Context, id, userID int64) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "DeleteOtpChallenge")
	defer func() { s.endSpan(span, err) }()

	const query = `DELETE FROM otp_challenges WHERE id = $1 AND user_id = $2`

	tag, err := s.conn.Exec(ctx, query, id, userID)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() > 0, nil
}
