package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cookingforum/auth/internal/identity/entity"
	"github.com/cookingforum/auth/internal/pkg/config"
	"github.com/cookingforum/auth/internal/pkg/goerror"
	"github.com/cookingforum/auth/internal/pkg/hash"
	"github.com/cookingforum/auth/internal/pkg/instrument"
	"github.com/cookingforum/auth/internal/pkg/jwt"
	"github.com/cookingforum/auth/internal/pkg/validator"
)

const testConfigYAML = `
modules:
  identity:
    otp_ttl_seconds: 300
`

type fakeRepo struct {
	users      map[string]*entity.UserAuthInfo
	challenges map[int64]*entity.OtpChallenge

	createUserErr      error
	createChallengeErr error
	deleteErr          error
	deleteRaced        bool

	createdUser      *entity.NewUser
	createdUserHash  string
	createdChallenge *entity.OtpChallenge
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:      map[string]*entity.UserAuthInfo{},
		challenges: map[int64]*entity.OtpChallenge{},
	}
}

func (f *fakeRepo) CreateUser(_ context.Context, user entity.NewUser, passwordHash string) (bool, error) {
	if f.createUserErr != nil {
		return false, f.createUserErr
	}

	if _, ok := f.users[user.Email]; ok {
		return false, nil
	}

	f.createdUser = &user
	f.createdUserHash = passwordHash
	f.users[user.Email] = &entity.UserAuthInfo{
		ID:               user.ID,
		Name:             user.Name,
		Surname:          user.Surname,
		Email:            user.Email,
		Password:         passwordHash,
		TwoFactorEnabled: user.TwoFactorEnabled,
	}

	return true, nil
}

func (f *fakeRepo) GetUserAuthInfo(_ context.Context, email string) (*entity.UserAuthInfo, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return u, nil
}

func (f *fakeRepo) CreateOtpChallenge(_ context.Context, ch entity.OtpChallenge) error {
	if f.createChallengeErr != nil {
		return f.createChallengeErr
	}

	ch.CreatedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	f.challenges[ch.ID] = &ch
	f.createdChallenge = &ch

	return nil
}

func (f *fakeRepo) GetOtpChallenge(_ context.Context, id, userID int64) (*entity.OtpChallenge, error) {
	ch, ok := f.challenges[id]
	if !ok || ch.UserID != userID {
		return nil, goerror.ErrNotFound
	}

	return ch, nil
}

func (f *fakeRepo) DeleteOtpChallenge(_ context.Context, id, userID int64) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if f.deleteRaced {
		return false, nil
	}

	ch, ok := f.challenges[id]
	if !ok || ch.UserID != userID {
		return false, nil
	}

	delete(f.challenges, id)

	return true, nil
}

type fakeOtp struct {
	issueErr error
	code     string
	hasher   hash.Hash
}

func (f *fakeOtp) Issue(context.Context, string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}

	hashed, err := f.hasher.Hash(f.code)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

func (f *fakeOtp) Verify(code, hashed string) bool {
	return f.hasher.Verify(hashed, code)
}

type fakeLimiter struct {
	blocked  bool
	allowErr error
	hitErr   error

	hits   int
	resets int
}

func (f *fakeLimiter) Allow(context.Context, string) (bool, error) {
	if f.allowErr != nil {
		return false, f.allowErr
	}

	return !f.blocked, nil
}

func (f *fakeLimiter) Hit(context.Context, string) error {
	f.hits++

	return f.hitErr
}

func (f *fakeLimiter) Reset(context.Context, string) error {
	f.resets++

	return nil
}

type fakeJWT struct {
	err error
}

func (f *fakeJWT) Generate(uid int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	return "session-token", nil
}

func (f *fakeJWT) GeneratePending(uid, challengeID int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	return "pending-token", nil
}

func (f *fakeJWT) Verify(string) (jwt.Claims, error) {
	return jwt.Claims{}, nil
}

type seqUID struct {
	next int64
}

func (s *seqUID) Generate() int64 {
	s.next++

	return s.next
}

type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time { return f.now }

type fixture struct {
	uc    *Usecase
	repo  *fakeRepo
	otp   *fakeOtp
	jwt   *fakeJWT
	clock *fixedClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	repo := newFakeRepo()
	bcrypt := hash.NewBcrypt(4, "")
	otp := &fakeOtp{code: "123456", hasher: bcrypt}
	tok := &fakeJWT{}
	clk := &fixedClock{now: time.Date(2026, 8, 1, 12, 1, 0, 0, time.UTC)}

	uc := New(Dependency{
		RepoDB:     repo,
		Validator:  v,
		Config:     cfg,
		Bcrypt:     bcrypt,
		UID:        &seqUID{},
		Otp:        otp,
		Clock:      clk,
		JWT:        tok,
		Instrument: instrument.NewNoop(),
	})

	return &fixture{uc: uc, repo: repo, otp: otp, jwt: tok, clock: clk}
}

func (f *fixture) seedUser(t *testing.T, email, password string, twoFactor bool) *entity.UserAuthInfo {
	t.Helper()

	hashed, err := hash.NewBcrypt(4, "").Hash(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	u := &entity.UserAuthInfo{
		ID:               100,
		Name:             "Ada",
		Surname:          "Lovelace",
		Email:            email,
		Password:         string(hashed),
		TwoFactorEnabled: twoFactor,
	}
	f.repo.users[email] = u

	return u
}

func assertAuthError(t *testing.T, err error, wantMsg string) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T (%v)", err, err)
	}
	if gerr.Code() != goerror.CodeAuthentication {
		t.Fatalf("code = %v, want authentication", gerr.Code())
	}
	if gerr.Msg() != wantMsg {
		t.Fatalf("message = %q, want %q", gerr.Msg(), wantMsg)
	}
}
