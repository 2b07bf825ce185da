package services

import (
	"crypto/subtle"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"royal-palace-backend/utils"
)

// AdminService validates the injected admin credential and tracks issued
// session tokens. Credentials come from configuration, not from storage;
// this is a front-desk gate, not a security boundary.
type AdminService struct {
	username     string
	password     string // plain credential, used when passwordHash is empty
	passwordHash string // bcrypt hash, preferred when set

	mu     sync.Mutex
	tokens map[string]struct{}
}

func NewAdminService(username, password, passwordHash string) *AdminService {
	return &AdminService{
		username:     username,
		password:     password,
		passwordHash: passwordHash,
		tokens:       map[string]struct{}{},
	}
}

// Login validates the credential pair and returns a session token for the
// read-only admin views.
func (s *AdminService) Login(username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return "", ErrInvalidCredentials
	}
	if s.passwordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) != nil {
			return "", ErrInvalidCredentials
		}
	} else if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return token, nil
}

// ValidToken reports whether token belongs to an active admin session.
func (s *AdminService) ValidToken(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}

// Logout revokes a session token.
func (s *AdminService) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
