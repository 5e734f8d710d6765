package services

import (
	"testing"
	"time"

	"github.com/croftside/farmbase/internal/database"
	"github.com/croftside/farmbase/internal/events"
	"github.com/croftside/farmbase/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthTestDB(t *testing.T) (*repository.UserRepository, *AuthService, chan events.Event) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	err = database.Migrate(db)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	tokenService := NewTokenService("test-secret", time.Hour)

	bus := events.NewBus(16)
	emitted := make(chan events.Event, 16)
	bus.Subscribe(func(e events.Event) {
		emitted <- e
	})
	t.Cleanup(bus.Close)

	authService := NewAuthService(userRepo, tokenService, bus)
	return userRepo, authService, emitted
}

func waitForEvent(t *testing.T, emitted chan events.Event, name string) events.Event {
	t.Helper()
	for {
		select {
		case e := <-emitted:
			if e.Name == name {
				return e
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %s", name)
		}
	}
}

func registerAlice(t *testing.T, authService *AuthService) {
	t.Helper()
	_, err := authService.Register(RegisterInput{
		Email:     "alice@example.com",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Hay",
		Password:  "correcthorse",
	})
	require.NoError(t, err)
}

func TestAuthService_Register(t *testing.T) {
	userRepo, authService, emitted := setupAuthTestDB(t)

	user, err := authService.Register(RegisterInput{
		Email:     "alice@example.com",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Hay",
		Password:  "correcthorse",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.Verified)
	assert.NotEqual(t, "correcthorse", user.PasswordHash)

	stored, err := userRepo.FindByEmail("alice@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correcthorse")))

	event := waitForEvent(t, emitted, events.EventWelcomeEmail)
	assert.Equal(t, "alice@example.com", event.Recipient)
	assert.Equal(t, "Alice Hay", event.Data["name"])
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	_, authService, _ := setupAuthTestDB(t)
	registerAlice(t, authService)

	_, err := authService.Register(RegisterInput{
		Email:     "alice@example.com",
		Username:  "alice2",
		FirstName: "Alice",
		LastName:  "Other",
		Password:  "correcthorse",
	})
	assert.Equal(t, ErrEmailTaken, err)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	_, authService, _ := setupAuthTestDB(t)
	registerAlice(t, authService)

	_, err := authService.Register(RegisterInput{
		Email:     "other@example.com",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Other",
		Password:  "correcthorse",
	})
	assert.Equal(t, ErrUsernameTaken, err)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	_, authService, _ := setupAuthTestDB(t)
	registerAlice(t, authService)

	_, err := authService.Login("alice@example.com", "wrongpassword")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestAuthService_Login_UnknownAccount(t *testing.T) {
	_, authService, _ := setupAuthTestDB(t)

	// Same sentinel whether or not the account exists.
	_, err := authService.Login("nobody@example.com", "whatever")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestAuthService_Login_UnverifiedIssuesCode(t *testing.T) {
	userRepo, authService, emitted := setupAuthTestDB(t)
	registerAlice(t, authService)

	result, err := authService.Login("alice@example.com", "correcthorse")
	assert.NoError(t, err)
	assert.True(t, result.NeedsVerification)
	assert.Empty(t, result.AccessToken)

	user, _ := userRepo.FindByEmail("alice@example.com")
	require.NotNil(t, user.VerificationToken)
	assert.Len(t, *user.VerificationToken, 6)
	firstCode := *user.VerificationToken

	event := waitForEvent(t, emitted, events.EventSendVerification)
	assert.Equal(t, firstCode, event.Data["token"])

	// A second unverified login persists a fresh code.
	_, err = authService.Login("alice@example.com", "correcthorse")
	assert.NoError(t, err)

	user, _ = userRepo.FindByEmail("alice@example.com")
	require.NotNil(t, user.VerificationToken)
	assert.NotEqual(t, firstCode, *user.VerificationToken)
}

func TestAuthService_VerifyToken(t *testing.T) {
	userRepo, authService, _ := setupAuthTestDB(t)
	registerAlice(t, authService)

	_, err := authService.Login("alice@example.com", "correcthorse")
	require.NoError(t, err)

	user, _ := userRepo.FindByEmail("alice@example.com")
	require.NotNil(t, user.VerificationToken)
	code := *user.VerificationToken

	err = authService.VerifyToken("alice@example.com", "nope")
	assert.Equal(t, ErrTokenMismatch, err)

	user, _ = userRepo.FindByEmail("alice@example.com")
	assert.False(t, user.Verified)

	err = authService.VerifyToken("alice@example.com", code)
	assert.NoError(t, err)

	user, _ = userRepo.FindByEmail("alice@example.com")
	assert.True(t, user.Verified)
	assert.Nil(t, user.VerificationToken)
}

func TestAuthService_VerifyToken_UnknownAccount(t *testing.T) {
	_, authService, _ := setupAuthTestDB(t)

	err := authService.VerifyToken("nobody@example.com", "abc123")
	assert.Equal(t, ErrUserNotFound, err)
}

func TestAuthService_Login_VerifiedIssuesSession(t *testing.T) {
	userRepo, authService, _ := setupAuthTestDB(t)
	registerAlice(t, authService)

	_, err := authService.Login("alice@example.com", "correcthorse")
	require.NoError(t, err)

	user, _ := userRepo.FindByEmail("alice@example.com")
	require.NoError(t, authService.VerifyToken("alice@example.com", *user.VerificationToken))

	result, err := authService.Login("alice@example.com", "correcthorse")
	assert.NoError(t, err)
	assert.False(t, result.NeedsVerification)
	assert.NotEmpty(t, result.AccessToken)

	tokenService := NewTokenService("test-secret", time.Hour)
	claims, err := tokenService.ValidateSession(result.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)

	userID, err := claims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	userRepo, authService, emitted := setupAuthTestDB(t)
	registerAlice(t, authService)

	err := authService.ForgotPassword("alice@example.com")
	assert.NoError(t, err)

	user, _ := userRepo.FindByEmail("alice@example.com")
	require.NotNil(t, user.ResetToken)
	assert.Len(t, *user.ResetToken, 6)

	event := waitForEvent(t, emitted, events.EventSendResetToken)
	assert.Equal(t, *user.ResetToken, event.Data["token"])
}

func TestAuthService_ForgotPassword_UnknownAccount(t *testing.T) {
	_, authService, _ := setupAuthTestDB(t)

	err := authService.ForgotPassword("nobody@example.com")
	assert.Equal(t, ErrUserNotFound, err)
}

func TestAuthService_ResetPassword(t *testing.T) {
	userRepo, authService, _ := setupAuthTestDB(t)
	registerAlice(t, authService)

	require.NoError(t, authService.ForgotPassword("alice@example.com"))

	user, _ := userRepo.FindByEmail("alice@example.com")
	require.NotNil(t, user.ResetToken)
	code := *user.ResetToken

	err := authService.ResetPassword("alice@example.com", "wrong", "newpassword1")
	assert.Equal(t, ErrTokenMismatch, err)

	err = authService.ResetPassword("alice@example.com", code, "newpassword1")
	assert.NoError(t, err)

	user, _ = userRepo.FindByEmail("alice@example.com")
	assert.Nil(t, user.ResetToken)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpassword1")))

	// Old password no longer works.
	_, err = authService.Login("alice@example.com", "correcthorse")
	assert.Equal(t, ErrInvalidCredentials, err)
}
