package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"alcyxob/training-client/internal/domain"
	"alcyxob/training-client/internal/repository"

	"github.com/golang-jwt/jwt/v4"
)

var ErrEmptyCredentials = errors.New("email and password cannot be empty")

// SessionLifecycle is what the auth flows start and end. SyncOrchestrator implements it.
type SessionLifecycle interface {
	StartSession(ctx context.Context) error
	EndSession(ctx context.Context, reason string)
}

// SessionStatus describes the stored session as seen on startup.
type SessionStatus struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
	Subject       string       `json:"subject,omitempty"`
	ExpiresAt     *time.Time   `json:"expiresAt,omitempty"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	ChangePassword(ctx context.Context, password string) error
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (*domain.User, error)
	// Restore inspects the stored token on startup and routes to the first screen.
	Restore(ctx context.Context) (SessionStatus, error)
}

type authService struct {
	gateway   repository.AuthGateway
	session   repository.SessionStore
	navigator Navigator
	lifecycle SessionLifecycle
	now       func() time.Time
}

func NewAuthService(gateway repository.AuthGateway, session repository.SessionStore, navigator Navigator, lifecycle SessionLifecycle) AuthService {
	return &authService{
		gateway:   gateway,
		session:   session,
		navigator: navigator,
		lifecycle: lifecycle,
		now:       time.Now,
	}
}

// Login signs in, stores the token and the user, and routes to the password change
// screen for first-time users.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	res, err := s.gateway.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrUnauthorized) {
			log.Printf("INFO: Sign-in rejected for %s", email)
			return nil, ErrAuthenticationFailed
		}
		log.Printf("ERROR: Sign-in failed for %s: %v", email, err)
		return nil, err
	}

	if err := s.session.Set(ctx, repository.KeyBearerToken, res.Token); err != nil {
		return nil, err
	}
	if err := s.storeUser(ctx, &res.User); err != nil {
		return nil, err
	}
	log.Printf("INFO: User %d signed in", res.User.ID)

	s.route(&res.User)
	if err := s.lifecycle.StartSession(ctx); err != nil {
		// the session itself is valid; the sync failure is already reported
		log.Printf("WARN: Initial sync after sign-in failed: %v", err)
	}
	return &res.User, nil
}

// ChangePassword sets a new password and sends the user on to the calendar.
func (s *authService) ChangePassword(ctx context.Context, password string) error {
	if password == "" {
		return ErrEmptyCredentials
	}
	if err := s.gateway.ChangePassword(ctx, password); err != nil {
		if errors.Is(err, repository.ErrAuthExpired) {
			s.lifecycle.EndSession(ctx, "Your session has expired, please sign in again")
		}
		log.Printf("ERROR: Failed to change password: %v", err)
		return err
	}

	if user, err := s.CurrentUser(ctx); err == nil && user.IsNew {
		user.IsNew = false
		if err := s.storeUser(ctx, user); err != nil {
			log.Printf("WARN: Failed to update stored user after password change: %v", err)
		}
	}
	s.navigator.Reset(domain.ScreenCalendar)
	return nil
}

func (s *authService) Logout(ctx context.Context) {
	s.lifecycle.EndSession(ctx, "")
}

func (s *authService) CurrentUser(ctx context.Context) (*domain.User, error) {
	raw, err := s.session.Get(ctx, repository.KeyUser)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *authService) Restore(ctx context.Context) (SessionStatus, error) {
	token, err := s.session.Get(ctx, repository.KeyBearerToken)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && token == "") {
		s.navigator.Reset(domain.ScreenSignIn)
		return SessionStatus{}, nil
	}
	if err != nil {
		return SessionStatus{}, err
	}

	status := SessionStatus{Authenticated: true}
	if claims, ok := parseClaims(token); ok {
		status.Subject = claims.Subject
		if claims.ExpiresAt != nil {
			exp := claims.ExpiresAt.Time
			status.ExpiresAt = &exp
		}
	}
	// an expired token is still refreshed by the first authorized call; only log it
	if status.ExpiresAt != nil && status.ExpiresAt.Before(s.now()) {
		log.Printf("INFO: Stored token expired at %s, relying on refresh", status.ExpiresAt.Format(time.RFC3339))
	}

	user, err := s.CurrentUser(ctx)
	if err != nil {
		log.Printf("WARN: Stored token without a readable user (%v); ending session", err)
		s.lifecycle.EndSession(ctx, "")
		return SessionStatus{}, nil
	}
	status.User = user

	s.route(user)
	if err := s.lifecycle.StartSession(ctx); err != nil {
		log.Printf("WARN: Initial sync after restore failed: %v", err)
	}
	return status, nil
}

func (s *authService) route(user *domain.User) {
	if user.IsNew {
		s.navigator.Reset(domain.ScreenSignInChangePassword)
		return
	}
	s.navigator.Reset(domain.ScreenCalendar)
}

func (s *authService) storeUser(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.session.Set(ctx, repository.KeyUser, string(raw))
}

// parseClaims reads the registered claims without verifying the signature; the client
// never holds the signing key. Opaque tokens simply yield no claims.
func parseClaims(token string) (*jwt.RegisteredClaims, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}
