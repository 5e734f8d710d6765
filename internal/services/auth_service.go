package services

import (
	"errors"
	"log"

	"github.com/croftside/farmbase/internal/events"
	"github.com/croftside/farmbase/internal/models"
	"github.com/croftside/farmbase/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMismatch      = errors.New("token does not match")
)

type AuthService struct {
	userRepo     *repository.UserRepository
	tokenService *TokenService
	bus          *events.Bus
}

func NewAuthService(userRepo *repository.UserRepository, tokenService *TokenService, bus *events.Bus) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
		bus:          bus,
	}
}

type RegisterInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

type LoginResult struct {
	NeedsVerification bool
	AccessToken       string
}

func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = s.userRepo.FindByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        input.Email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
		Verified:     false,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.bus.Emit(events.Event{
		Name:      events.EventWelcomeEmail,
		Recipient: user.Email,
		Data:      map[string]string{"name": user.DisplayName()},
	})

	return user, nil
}

// Login verifies credentials. For an unverified account it issues a fresh
// one-time verification code instead of a session token.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Verified {
		code, err := s.tokenService.GenerateCode()
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.SetVerificationToken(user.ID, &code); err != nil {
			return nil, err
		}

		s.bus.Emit(events.Event{
			Name:      events.EventSendVerification,
			Recipient: user.Email,
			Data:      map[string]string{"name": user.DisplayName(), "token": code},
		})

		return &LoginResult{NeedsVerification: true}, nil
	}

	token, err := s.tokenService.IssueSession(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: token}, nil
}

func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	code, err := s.tokenService.GenerateCode()
	if err != nil {
		return err
	}
	if err := s.userRepo.SetResetToken(user.ID, &code); err != nil {
		return err
	}

	s.bus.Emit(events.Event{
		Name:      events.EventSendResetToken,
		Recipient: user.Email,
		Data:      map[string]string{"name": user.DisplayName(), "token": code},
	})

	return nil
}

// VerifyToken flips the account to verified on an exact match and invalidates
// the code so it cannot be replayed.
func (s *AuthService) VerifyToken(email, submitted string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.VerificationToken == nil || *user.VerificationToken != submitted {
		return ErrTokenMismatch
	}

	return s.userRepo.MarkVerified(user.ID)
}

// ResetPassword requires the previously issued reset code before overwriting
// the stored hash. The code is cleared on success.
func (s *AuthService) ResetPassword(email, token, newPassword string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.ResetToken == nil || *user.ResetToken != token {
		return ErrTokenMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(user.ID, string(hash)); err != nil {
		return err
	}

	log.Printf("password reset for user %d", user.ID)
	return nil
}

func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
