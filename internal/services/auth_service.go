package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"cookbook/internal/models"
	"cookbook/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

var allowedUsernameSymbols = regexp.MustCompile(models.AllowedUsernameSymbols)

// ValidateUsername rejects usernames containing characters outside the
// allowed set. The error message lists every offending character once.
func ValidateUsername(username string) error {
	denied := allowedUsernameSymbols.ReplaceAllString(username, "")
	if denied == "" {
		return nil
	}
	seen := make(map[rune]bool)
	var unique []rune
	for _, r := range denied {
		if !seen[r] {
			seen[r] = true
			unique = append(unique, r)
		}
	}
	return FieldErrors{
		"username": fmt.Sprintf("characters not allowed in username: %s", string(unique)),
	}
}

// AuthService handles registration, token issuance, revocation and
// validation. Tokens are HS256 JWTs recorded in the token store, so a
// revoked token stops authenticating even before it expires.
type AuthService struct {
	userRepo   repositories.UserRepository
	tokenRepo  repositories.TokenRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Register validates the username character set, checks email/username
// uniqueness, hashes the password and stores the account. user.Password
// holds the plaintext on input and the hash after return.
func (s *AuthService) Register(user *models.User) error {
	if err := ValidateUsername(user.Username); err != nil {
		return err
	}
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return ErrEmailTaken
	}
	if existing, err := s.userRepo.GetByUsername(user.Username); err == nil && existing != nil {
		return ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if err := s.userRepo.Create(user); err != nil {
		// Uniqueness is ultimately decided by the database index.
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Login authenticates by email and password and issues a bearer token.
// A blocked account never receives a token, even with correct credentials.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if user.IsBlocked {
		return "", ErrBlocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     now.Add(s.tokenDurat).Unix(),
		"iat":     now.Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.tokenRepo.Save(&models.AuthToken{UserID: user.ID, Token: tokenString}); err != nil {
		return "", fmt.Errorf("failed to record token: %w", err)
	}
	return tokenString, nil
}

// Logout revokes the caller's token.
func (s *AuthService) Logout(tokenString string) error {
	if err := s.tokenRepo.Delete(tokenString); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// Authenticate resolves a bearer token to its account. The signature must
// verify, the token row must still exist and the account must not be
// blocked.
func (s *AuthService) Authenticate(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	live, err := s.tokenRepo.Exists(tokenString)
	if err != nil {
		return nil, fmt.Errorf("failed to check token: %w", err)
	}
	if !live {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.IsBlocked {
		return nil, ErrBlocked
	}
	return user, nil
}

// SetPassword changes the account password after verifying the current one.
func (s *AuthService) SetPassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(userID, string(hashed))
}
