// Package service holds the auth core: credential validation, password
// hashing and token issuance orchestrated over injected ports, plus the
// pass-through client for the upstream posts API.
package service

import (
	"context"
	"errors"
	"fmt"

	"go-auth-api/internal/domain"
	"go-auth-api/pkg/utils"
)

// PasswordHasher turns a plaintext credential into a salted one-way hash and
// verifies candidates against it. Verify must fail closed on malformed input.
type PasswordHasher interface {
	Hash(pw string) (string, error)
	Verify(pw, hashed string) bool
}

// TokenIssuer mints a signed, time-bounded identity token for a user.
type TokenIssuer interface {
	Issue(uid, email, name string) (string, error)
}

// RegistrationValidator reports the first rule a registration input violates.
type RegistrationValidator interface {
	Validate(in RegisterInput) error
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService struct {
	users    domain.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	validate RegistrationValidator
}

func NewAuthService(users domain.UserRepository, hasher PasswordHasher, tokens TokenIssuer, validate RegistrationValidator) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, validate: validate}
}

// Register validates the input, hashes the password and persists a new user,
// then issues a token for it. The email pre-check gives the common case a
// friendly answer; the store's unique index is what actually closes the race,
// so a concurrent duplicate create also surfaces as ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, "", err
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return nil, "", domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(u.ID, u.Email, u.Name)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	u, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		return "", domain.ErrInvalidCredentials
	}
	if !s.hasher.Verify(in.Password, u.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(u.ID, u.Email, u.Name)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
