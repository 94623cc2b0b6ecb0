package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"barterBack/internal/models"
	"barterBack/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 24 * 30 * 2 * time.Hour
)

// UserService covers the minimal identity surface: registration, sign-in and
// refresh-token sessions. The marketplace services only ever see the
// authenticated username.
type UserService struct {
	UserRepo     UserStore
	TokenManager *utils.Manager
	JWTSecret    string
}

func (s *UserService) SignUp(ctx context.Context, username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, errors.New("username and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.UserRepo.CreateUser(ctx, models.User{
		Username: username,
		Password: string(hashedPassword),
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (s *UserService) SignIn(ctx context.Context, username, password string) (models.Tokens, error) {
	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		log.Printf("User not found: %s", username)
		return models.Tokens{}, errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Invalid password for user: %s", username)
		return models.Tokens{}, errors.New("invalid password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID:   uint(user.ID),
		Username: user.Username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})

	accessToken, err := token.SignedString([]byte(s.JWTSecret))
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return models.Tokens{}, err
	}

	return s.createSession(ctx, user, accessToken)
}

func (s *UserService) createSession(ctx context.Context, user models.User, accessToken string) (models.Tokens, error) {
	tokens := models.Tokens{AccessToken: accessToken}

	// UUID as a fallback when no token manager is wired.
	tokens.RefreshToken = uuid.New().String()
	if s.TokenManager != nil {
		refreshToken, err := s.TokenManager.NewRefreshToken()
		if err != nil {
			return models.Tokens{}, err
		}
		tokens.RefreshToken = refreshToken
	}

	err := s.UserRepo.CreateSession(ctx, models.Session{
		UserID:       user.ID,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	})
	if err != nil {
		return models.Tokens{}, err
	}

	return tokens, nil
}
