package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"microblog/internal/core/domain"
	"microblog/internal/core/repository"
)

const (
	TokenExpirationHours = 24
	BcryptCost           = 10

	UsernameMinLength = 3
	UsernameMaxLength = 10
	PasswordMinLength = 3
	PasswordMaxLength = 10
)

// A fixed bcrypt digest compared against when the username does not exist, so
// the unknown-user and wrong-password paths cost the same.
const unknownUserHash = "$2a$10$huK0TmK7pCWlAS3o8c1/7eqH8gs4TNMEnw1Ger/v4ZXiW29pwxFCa"

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Identity is the decoded {user id, username} pair carried by a valid
// session token.
type Identity struct {
	UserID   int64
	Username string
}

// SessionClaims is the JWT claim set embedded in the session cookie.
type SessionClaims struct {
	UserID   int64  `json:"userid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users        repository.UserRepository
	jwtSecret    string
	jwtAlgorithm string
}

func NewAuthService(users repository.UserRepository, jwtSecret, jwtAlgorithm string) *AuthService {
	return &AuthService{
		users:        users,
		jwtSecret:    jwtSecret,
		jwtAlgorithm: jwtAlgorithm,
	}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Register validates the submitted credentials, hashes the password and
// creates the user. Constraint violations come back as *ValidationError.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)

	var messages []string
	switch {
	case username == "":
		messages = append(messages, "Username is required")
	case len(username) < UsernameMinLength:
		messages = append(messages, fmt.Sprintf("Username must be at least %d characters", UsernameMinLength))
	case len(username) > UsernameMaxLength:
		messages = append(messages, fmt.Sprintf("Username must be at most %d characters", UsernameMaxLength))
	case !usernamePattern.MatchString(username):
		messages = append(messages, "Username may only contain letters and numbers")
	}
	switch {
	case password == "":
		messages = append(messages, "Password is required")
	case len(password) < PasswordMinLength:
		messages = append(messages, fmt.Sprintf("Password must be at least %d characters", PasswordMinLength))
	case len(password) > PasswordMaxLength:
		messages = append(messages, fmt.Sprintf("Password must be at most %d characters", PasswordMaxLength))
	}
	if len(messages) > 0 {
		return nil, NewValidationError(messages...)
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("checking username: %w", err)
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(username, hash)
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			// Lost the race between the pre-check and the insert.
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// Login authenticates a user by username and password. Unknown usernames and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(unknownUserHash), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}

	if !s.VerifyPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a session token for the user, expiring 24 hours from now.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpirationHours * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(s.signingMethod(), claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken decodes a session token into an identity. It fails closed: any
// malformed, mis-signed or expired token yields no identity, never an error.
func (s *AuthService) VerifyToken(tokenString string) (*Identity, bool) {
	if tokenString == "" {
		return nil, false
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.signingMethod().Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, false
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, false
	}

	return &Identity{UserID: claims.UserID, Username: claims.Username}, true
}

func (s *AuthService) signingMethod() jwt.SigningMethod {
	switch s.jwtAlgorithm {
	case "HS384":
		return jwt.SigningMethodHS384
	case "HS512":
		return jwt.SigningMethodHS512
	default:
		return jwt.SigningMethodHS256
	}
}
