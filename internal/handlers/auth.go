package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/croftside/farmbase/internal/middleware"
	"github.com/croftside/farmbase/internal/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,min=3"`
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

type RegisteredUser struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginData struct {
	AccessToken string `json:"access_token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type ProfileData struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Verified  bool   `json:"verified"`
}

// Register godoc
// @Summary Register a new account
// @Description Create a user account and send a welcome email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		log.Printf("register failed for %s: %v", req.Email, err)
		switch {
		case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrUsernameTaken):
			respondError(c, http.StatusConflict, "Unable to create account")
		default:
			respondError(c, http.StatusInternalServerError, "Unable to create account")
		}
		return
	}

	respondSuccess(c, http.StatusCreated, "Account created successfully", RegisteredUser{
		Email:    user.Email,
		Username: user.Username,
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticate and receive a session token. Unverified accounts
// @Description receive a fresh verification code by email instead.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		// Wrong credentials and unexpected faults share one message at the
		// boundary; the cause stays in the log.
		log.Printf("login failed for %s: %v", req.Email, err)
		respondError(c, http.StatusUnauthorized, "Login failed, please try again")
		return
	}

	if result.NeedsVerification {
		respondSuccess(c, http.StatusOK, "Please verify your account", nil)
		return
	}

	respondSuccess(c, http.StatusOK, "Login successful", LoginData{
		AccessToken: result.AccessToken,
	})
}

// ForgotPassword godoc
// @Summary Request a password reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		log.Printf("forgot password failed for %s: %v", req.Email, err)
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "Account not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Unable to process request")
		return
	}

	respondSuccess(c, http.StatusOK, "Reset code sent", nil)
}

// Verify godoc
// @Summary Verify account with one-time code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Email and code"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.authService.VerifyToken(req.Email, req.Token); err != nil {
		log.Printf("verification failed for %s: %v", req.Email, err)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "Account not found")
		case errors.Is(err, services.ErrTokenMismatch):
			respondError(c, http.StatusBadRequest, "Invalid verification code")
		default:
			respondError(c, http.StatusInternalServerError, "Unable to verify account")
		}
		return
	}

	respondSuccess(c, http.StatusOK, "Account verified", nil)
}

// ResetPassword godoc
// @Summary Reset password with one-time code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Email, reset code and new password"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.authService.ResetPassword(req.Email, req.Token, req.NewPassword); err != nil {
		log.Printf("password reset failed for %s: %v", req.Email, err)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "Account not found")
		case errors.Is(err, services.ErrTokenMismatch):
			respondError(c, http.StatusBadRequest, "Invalid reset code")
		default:
			respondError(c, http.StatusInternalServerError, "Unable to reset password")
		}
		return
	}

	respondSuccess(c, http.StatusOK, "Password reset successfully", nil)
}

// Profile godoc
// @Summary Current user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		log.Printf("profile lookup failed for user %d: %v", userID, err)
		respondError(c, http.StatusNotFound, "Account not found")
		return
	}

	respondSuccess(c, http.StatusOK, "Profile retrieved", ProfileData{
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Verified:  user.Verified,
	})
}
