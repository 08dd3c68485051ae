// Package services contains the client stores: session, favorites, view
// history and language, plus shipment tracking. Each store owns its storage
// keys and keeps an in-memory copy that is replaced only after a write
// succeeds. All stores are safe for concurrent use.
package services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/droplogistics/internal/auth"
	"github.com/dmitrijs2005/droplogistics/internal/client/models"
	"github.com/dmitrijs2005/droplogistics/internal/client/storage"
	"github.com/dmitrijs2005/droplogistics/internal/cryptox"
	"github.com/dmitrijs2005/droplogistics/internal/logging"
)

// SessionService registers accounts, signs users in and out and keeps the
// profile of the signed-in user.
//
// Storage layout:
//   - storage.KeySession holds the signed-in user and its access token;
//   - storage.CredentialKey(email) holds the profile and the password hash.
//
// Register and Login report failure as false; storage errors are logged.
type SessionService struct {
	repo      storage.Repository
	log       logging.Logger
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time

	mu      sync.RWMutex
	session *models.Session
}

func NewSessionService(repo storage.Repository, log logging.Logger, secretKey []byte, ttl time.Duration) *SessionService {
	return &SessionService{
		repo:      repo,
		log:       log.With("store", "session"),
		secretKey: secretKey,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Load restores the session saved by a previous run. A missing, unreadable
// or expired session leaves the store signed out.
func (s *SessionService) Load(ctx context.Context) {
	var sess models.Session
	found, err := readJSON(ctx, s.repo, storage.KeySession, &sess)
	if err != nil {
		s.log.Error(ctx, "failed to load session", "error", err)
		return
	}
	if !found {
		return
	}

	if sess.Token == "" {
		// sessions saved before tokens were issued
		token, err := s.issueToken(sess.User)
		if err != nil {
			s.log.Error(ctx, "failed to issue token", "error", err)
			return
		}
		sess.Token = token
		if err := writeJSON(ctx, s.repo, storage.KeySession, sess); err != nil {
			s.log.Error(ctx, "failed to save session", "error", err)
			return
		}
	} else if _, err := auth.ParseToken(sess.Token, s.secretKey); err != nil {
		s.log.Warn(ctx, "discarding stored session", "error", err)
		return
	}

	s.mu.Lock()
	s.session = &sess
	s.mu.Unlock()
}

// Register creates the account and signs it in. Any earlier account with
// the same email is replaced.
func (s *SessionService) Register(ctx context.Context, fullName, email, phone, password string) bool {
	user := models.User{
		ID:        uuid.NewString(),
		FullName:  strings.TrimSpace(fullName),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		Address:   "",
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	hash := cryptox.HashPassword([]byte(password))
	cred := models.Credential{User: user, PasswordHash: &hash}
	if err := writeJSON(ctx, s.repo, storage.CredentialKey(user.Email), cred); err != nil {
		s.log.Error(ctx, "registration failed", "email", user.Email, "error", err)
		return false
	}

	if err := s.startSession(ctx, user); err != nil {
		s.log.Error(ctx, "registration failed", "email", user.Email, "error", err)
		return false
	}
	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return true
}

// Login verifies the password against the credential record for email.
func (s *SessionService) Login(ctx context.Context, email, password string) bool {
	email = strings.TrimSpace(email)
	key := storage.CredentialKey(email)

	var cred models.Credential
	found, err := readJSON(ctx, s.repo, key, &cred)
	if err != nil {
		s.log.Error(ctx, "login failed", "email", email, "error", err)
		return false
	}
	if !found {
		return false
	}

	switch {
	case cred.PasswordHash != nil:
		if !cryptox.VerifyPassword([]byte(password), *cred.PasswordHash) {
			return false
		}
	case cred.LegacyPassword != "":
		if subtle.ConstantTimeCompare([]byte(cred.LegacyPassword), []byte(password)) != 1 {
			return false
		}
		hash := cryptox.HashPassword([]byte(password))
		cred.PasswordHash = &hash
		cred.LegacyPassword = ""
		if err := writeJSON(ctx, s.repo, key, cred); err != nil {
			s.log.Warn(ctx, "failed to rehash legacy credential", "email", email, "error", err)
		}
	default:
		return false
	}

	if err := s.startSession(ctx, cred.User); err != nil {
		s.log.Error(ctx, "login failed", "email", email, "error", err)
		return false
	}
	s.log.Info(ctx, "user signed in", "user_id", cred.ID)
	return true
}

// Logout removes the session record. The credential record is kept so
// the user can sign in again.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.repo.Delete(ctx, storage.KeySession); err != nil {
		s.log.Error(ctx, "logout failed", "error", err)
		return
	}
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
}

// UpdateUser merges upd into the session and, when it exists, into the
// credential record so the change survives a logout. It does nothing when
// no user is signed in.
func (s *SessionService) UpdateUser(ctx context.Context, upd models.UserUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return
	}

	next := *s.session
	next.User.Apply(upd)
	if err := writeJSON(ctx, s.repo, storage.KeySession, next); err != nil {
		s.log.Error(ctx, "failed to update user", "error", err)
		return
	}
	s.session = &next

	key := storage.CredentialKey(next.Email)
	var cred models.Credential
	found, err := readJSON(ctx, s.repo, key, &cred)
	if err != nil {
		s.log.Error(ctx, "failed to update credential record", "error", err)
		return
	}
	if !found {
		return
	}
	cred.User.Apply(upd)
	if err := writeJSON(ctx, s.repo, key, cred); err != nil {
		s.log.Error(ctx, "failed to update credential record", "error", err)
	}
}

// User returns a copy of the signed-in user, or nil.
func (s *SessionService) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil
	}
	u := s.session.User
	return &u
}

func (s *SessionService) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

// Token is the access token of the current session, empty when signed out.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return ""
	}
	return s.session.Token
}

func (s *SessionService) issueToken(u models.User) (string, error) {
	token, err := auth.GenerateToken(u.ID, u.Email, s.secretKey, s.ttl)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *SessionService) startSession(ctx context.Context, u models.User) error {
	token, err := s.issueToken(u)
	if err != nil {
		return err
	}

	sess := models.Session{User: u, Token: token}
	if err := writeJSON(ctx, s.repo, storage.KeySession, sess); err != nil {
		return err
	}

	s.mu.Lock()
	s.session = &sess
	s.mu.Unlock()
	return nil
}

// readJSON decodes the value at key into v. It reports false when the key
// is absent.
func readJSON(ctx context.Context, repo storage.Repository, key string, v any) (bool, error) {
	data, err := repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func writeJSON(ctx context.Context, repo storage.Repository, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return repo.Set(ctx, key, data)
}
