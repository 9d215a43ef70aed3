package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/service"
	"github.com/eyesdeal/eyesdeal-backend/internal/errors"
	"github.com/eyesdeal/eyesdeal-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

type RegisterRequest struct {
	AdminName string   `json:"adminName" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=8"`
	Type      string   `json:"type"`
	Stores    []string `json:"stores"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse pairs the session user with its bearer token.
type LoginResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates an operator account (admin only)
// POST /auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	userType := model.UserType(req.Type)
	if userType != model.UserTypeAdmin && userType != model.UserTypeStore {
		userType = model.UserTypeStore
	}

	user, err := ctrl.authService.Register(req.AdminName, req.Email, req.Password, userType, req.Stores)
	if err != nil {
		if stderrors.Is(err, service.ErrEmailExists) {
			errors.Conflict(c, errors.AuthEmailAlreadyExists, "This email is already in use")
			return
		}
		log.Error("Failed to register user", err, map[string]interface{}{
			"email": req.Email,
		})
		errors.InternalError(c, "Failed to register user")
		return
	}

	log.Info("User registered", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"type":    user.Type,
	})

	errors.RespondWithMessage(c, http.StatusCreated, user, "User registered successfully")
}

// Login trades credentials for a token and the session user
// POST /auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Email and password are required")
		return
	}

	user, token, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if stderrors.Is(err, service.ErrInvalidCredentials) {
			log.Warn("Login failed", map[string]interface{}{
				"email": req.Email,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthInvalidCredentials, "Invalid email or password")
			return
		}
		log.Error("Login error", err, map[string]interface{}{
			"email": req.Email,
		})
		errors.InternalError(c, "Failed to log in")
		return
	}

	log.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
	})

	errors.RespondWithData(c, http.StatusOK, LoginResponse{User: user, Token: token})
}

// Me returns the session user for the presented token
// GET /auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID := c.GetString("user_id")
	if userID == "" {
		errors.Unauthorized(c, "")
		return
	}

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		if stderrors.Is(err, service.ErrUserNotFound) {
			errors.Unauthorized(c, "Session user no longer exists")
			return
		}
		log.Error("Failed to fetch session user", err, map[string]interface{}{
			"user_id": userID,
		})
		errors.InternalError(c, "Failed to fetch session user")
		return
	}

	errors.RespondWithData(c, http.StatusOK, user)
}
