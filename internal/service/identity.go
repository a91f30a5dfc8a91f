package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pxshao1010-gif/independent-station/internal/auth"
	"github.com/pxshao1010-gif/independent-station/internal/errs"
	"github.com/pxshao1010-gif/independent-station/internal/models"
	"github.com/pxshao1010-gif/independent-station/internal/repo"
)

type Identity struct {
	Users  repo.Users
	Tokens *auth.Tokens
	Log    zerolog.Logger
}

// Session is what register and login hand back: a fresh token plus the
// redacted user view.
type Session struct {
	Token string              `json:"token"`
	User  models.RedactedUser `json:"user"`
}

func (s *Identity) Register(ctx context.Context, email, password, name string) (Session, error) {
	if email == "" || password == "" {
		return Session{}, errs.Validation("email and password required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, errs.Internal(err, "hash password")
	}

	u := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Cart:         []models.LineItem{},
		CreatedAt:    time.Now(),
	}
	// Existence check and write are not atomic on the file backend; two
	// concurrent registrations of the same email can race (see DESIGN.md).
	if err := s.Users.Create(ctx, u); err != nil {
		return Session{}, err
	}

	token, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return Session{}, err
	}
	s.Log.Info().Str("userId", u.ID).Msg("user registered")
	return Session{Token: token, User: u.Redacted()}, nil
}

func (s *Identity) Login(ctx context.Context, email, password string) (Session, error) {
	if email == "" || password == "" {
		return Session{}, errs.Validation("email and password required")
	}

	u, err := s.Users.FindByEmail(ctx, email)
	if errs.IsNotFound(err) {
		// Same message as a wrong password, to avoid user enumeration.
		return Session{}, errs.Auth("Invalid credentials")
	}
	if err != nil {
		return Session{}, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return Session{}, errs.Auth("Invalid credentials")
	}

	token, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: u.Redacted()}, nil
}

// Verify resolves a bearer token to its user. Bad signature, expiry and a
// token whose user no longer exists are all auth failures.
func (s *Identity) Verify(ctx context.Context, token string) (models.RedactedUser, error) {
	userID, err := s.Tokens.Parse(token)
	if err != nil {
		return models.RedactedUser{}, err
	}
	u, err := s.Users.FindByID(ctx, userID)
	if errs.IsNotFound(err) {
		return models.RedactedUser{}, errs.Auth("User not found")
	}
	if err != nil {
		return models.RedactedUser{}, err
	}
	return u.Redacted(), nil
}

// ResolveOptional maps a token to a user id for flows where identity is
// optional. Any failure is non-fatal and yields the empty id.
func (s *Identity) ResolveOptional(_ context.Context, token string) string {
	if token == "" {
		return ""
	}
	userID, err := s.Tokens.Parse(token)
	if err != nil {
		return ""
	}
	return userID
}
