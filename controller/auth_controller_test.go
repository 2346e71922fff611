// controller/auth_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/snipvault/api/controller"
	apierrors "github.com/snipvault/api/errors"
	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/model"
	mock_service "github.com/snipvault/api/test/service_mock"
)

func TestAuthController(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserService := mock_service.NewMockIUserService(ctrl)
	authController := controller.NewAuthController(mockUserService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	public := router.Group("/")
	authController.RegisterPublicRoutes(public)
	admin := router.Group("/")
	authController.RegisterAdminRoutes(admin)

	t.Run("Register_Success", func(t *testing.T) {
		mockUserService.EXPECT().
			Register(gomock.Any(), gomock.Any(), model.RoleUser).
			Return(&model.User{ID: 1, Username: "alice", Role: model.RoleUser}, nil)

		body := strings.NewReader(`{"username":"alice","password":"correct-horse","confirm_password":"correct-horse"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/register", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Register_Failure_Conflict", func(t *testing.T) {
		mockUserService.EXPECT().
			Register(gomock.Any(), gomock.Any(), model.RoleUser).
			Return(nil, apierrors.ErrUserConflict)

		body := strings.NewReader(`{"username":"alice","password":"correct-horse","confirm_password":"correct-horse"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/register", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("RegisterStaff_UsesStaffRole", func(t *testing.T) {
		mockUserService.EXPECT().
			Register(gomock.Any(), gomock.Any(), model.RoleStaff).
			Return(&model.User{ID: 2, Username: "bob", Role: model.RoleStaff}, nil)

		body := strings.NewReader(`{"username":"bob","password":"correct-horse","confirm_password":"correct-horse"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/register/staff", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Login_Success", func(t *testing.T) {
		mockUserService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(&model.TokenPair{Access: "a", Refresh: "r"}, nil)

		body := strings.NewReader(`{"username":"alice","password":"correct-horse"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/login", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Login_Failure_BadCredentials", func(t *testing.T) {
		mockUserService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, apierrors.ErrInvalidCredentials)

		body := strings.NewReader(`{"username":"alice","password":"wrong"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/login", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Refresh_Failure_InvalidToken", func(t *testing.T) {
		mockUserService.EXPECT().
			Refresh(gomock.Any(), "stale").
			Return(nil, apierrors.ErrInvalidToken)

		body := strings.NewReader(`{"refresh":"stale"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/refresh", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
