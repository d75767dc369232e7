package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adityakumar003/TrainX/models"
	"github.com/adityakumar003/TrainX/utils"
)

// AuthService handles signup and login against the user store.
type AuthService struct {
	users     UserStore
	jwtSecret []byte
}

func NewAuthService(users UserStore, jwtSecret []byte) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// Register creates a new account with a hashed password and an empty workout
// log. An already registered email is ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, password, name string) error {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		Name:     name,
		Workouts: []models.Workout{},
	}
	if _, err := s.users.Insert(ctx, user); err != nil {
		return err
	}
	return nil
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID.Hex(), user.Email, user.Name)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, user, nil
}
