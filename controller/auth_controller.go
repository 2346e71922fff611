// controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/snipvault/api/errors"
	"github.com/snipvault/api/model"
	"github.com/snipvault/api/service"
	"github.com/snipvault/api/util"
)

type AuthController struct {
	userService service.IUserService
}

func NewAuthController(userService service.IUserService) *AuthController {
	return &AuthController{
		userService: userService,
	}
}

// RegisterPublicRoutes registers the routes reachable without a token.
func (ac *AuthController) RegisterPublicRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.POST("/refresh", ac.Refresh)
	}
}

// RegisterAdminRoutes registers the admin-gated account routes.
func (ac *AuthController) RegisterAdminRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register/staff", ac.RegisterStaff)
		auth.POST("/register/admin", ac.RegisterAdmin)
	}
}

// Register endpoint creates a regular account.
func (ac *AuthController) Register(c *gin.Context) {
	ac.register(c, model.RoleUser)
}

// RegisterStaff endpoint creates a staff account.
func (ac *AuthController) RegisterStaff(c *gin.Context) {
	ac.register(c, model.RoleStaff)
}

// RegisterAdmin endpoint creates an admin account.
func (ac *AuthController) RegisterAdmin(c *gin.Context) {
	ac.register(c, model.RoleAdmin)
}

func (ac *AuthController) register(c *gin.Context, role string) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid registration data", err)
		return
	}

	user, err := ac.userService.Register(c, req, role)
	if err != nil {
		switch {
		case errors.Is(err, apierrors.ErrInvalidUserData):
			util.RespondWithError(c, http.StatusBadRequest, "Registration failed", err)
		case errors.Is(err, apierrors.ErrUserConflict):
			util.RespondWithError(c, http.StatusConflict, "User already exists", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to register user", err)
		}
		return
	}

	util.RespondCreated(c, "User registered successfully.", user)
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid credentials.", err)
		return
	}

	pair, err := ac.userService.Login(c, req)
	if err != nil {
		if errors.Is(err, apierrors.ErrInvalidCredentials) {
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Login failed", err)
		}
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Login successful.", pair)
}

// Refresh endpoint
func (ac *AuthController) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid Token.", err)
		return
	}

	pair, err := ac.userService.Refresh(c, req.Refresh)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Invalid Token.", err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Token refreshed successfully.", pair)
}
