package auth

import (
	"errors"
	"fmt"
	"time"

	"lucrofacil/internal/pkg/apperr"
	"lucrofacil/internal/pkg/config"
	"lucrofacil/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	repo   UserRepository
	config *config.Config
	logger *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(repo UserRepository, cfg *config.Config, log *logger.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		config: cfg,
		logger: log,
	}
}

// Register creates a new user account
func (s *AuthService) Register(dto RegisterDTO) (*User, error) {
	exists, err := s.repo.ExistsByEmail(dto.Email)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	if exists {
		return nil, apperr.Invalid("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		Email:    dto.Email,
		Password: string(hashedPassword),
		Name:     dto.Name,
	}

	if err := s.repo.Create(&user); err != nil {
		return nil, apperr.Upstream(err)
	}

	return &user, nil
}

// Login authenticates a user and returns a JWT token
func (s *AuthService) Login(dto LoginDTO) (*TokenResponse, error) {
	user, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Invalid("invalid credentials")
		}
		return nil, apperr.Upstream(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)); err != nil {
		return nil, apperr.Invalid("invalid credentials")
	}

	return s.issueToken(user)
}

// LoginWithSupabase validates a Supabase access token against the configured
// anon key, provisions the local user row on first sight, and issues an app
// JWT. The provisioned user carries the Supabase user id so product ownership
// survives a later switch of identity provider.
func (s *AuthService) LoginWithSupabase(dto SupabaseLoginDTO) (*TokenResponse, error) {
	if s.config.Supabase.AnonKey == "" {
		return nil, apperr.Invalid("supabase login is not configured")
	}

	claims, err := s.validateSupabaseJWT(dto.SupabaseAccessToken)
	if err != nil {
		return nil, apperr.Invalid("invalid supabase token")
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || email == "" {
		return nil, apperr.Invalid("supabase token missing subject or email")
	}

	user, err := s.repo.GetByID(sub)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Upstream(err)
		}

		name := email
		if meta, ok := claims["user_metadata"].(map[string]interface{}); ok {
			if n, ok := meta["name"].(string); ok && n != "" {
				name = n
			}
		}

		user = &User{ID: sub, Email: email, Name: name}
		if err := s.repo.Create(user); err != nil {
			return nil, apperr.Upstream(err)
		}
	}

	return s.issueToken(user)
}

// validateSupabaseJWT validates a Supabase JWT with the anon key
func (s *AuthService) validateSupabaseJWT(tokenString string) (jwt.MapClaims, error) {
	key := []byte(s.config.Supabase.AnonKey)
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// issueToken generates the app token response for a user
func (s *AuthService) issueToken(user *User) (*TokenResponse, error) {
	token, expiresAt, err := s.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.ToUserResponse(),
	}, nil
}

// GenerateToken generates a JWT token for a user
func (s *AuthService) GenerateToken(user *User) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.config.JWT.ExpireHour) * time.Hour)

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the user context
func (s *AuthService) ValidateToken(tokenString string) (*UserContext, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWT.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if userID == "" {
		return nil, errors.New("token missing user id")
	}

	return &UserContext{
		UserID: userID,
		Email:  email,
		Name:   name,
	}, nil
}

// GetProfile retrieves the profile for an authenticated user. A valid token
// without a matching user row is a fatal auth state requiring re-login.
func (s *AuthService) GetProfile(userID string) (*User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrInvalidProfile
		}
		return nil, apperr.Upstream(err)
	}
	return user, nil
}
