// service/user_service.go
package service

import (
	"context"
	"fmt"

	"github.com/alexedwards/argon2id"

	apierrors "github.com/snipvault/api/errors"
	"github.com/snipvault/api/model"
	"github.com/snipvault/api/util"
)

// UserStore is the durable-store surface the user service needs.
// dao.UserDAO is the production implementation.
type UserStore interface {
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// IUserService defines the interface for account operations
type IUserService interface {
	Register(ctx context.Context, req model.RegisterRequest, role string) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error)
}

type UserService struct {
	userStore       UserStore
	validationUtil  *util.ValidationUtil
	tokens          *util.TokenManager
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IUserService = &UserService{}

func NewUserService(userStore UserStore, validationUtil *util.ValidationUtil, tokens *util.TokenManager, notificationSvc *util.NotificationService, eventBus *util.EventBus) *UserService {
	service := &UserService{
		userStore:       userStore,
		validationUtil:  validationUtil,
		tokens:          tokens,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("user.created", service.handleUserCreated)

	return service
}

func (s *UserService) handleUserCreated(ctx context.Context, event util.Event) error {
	user := event.Payload.(model.User)
	if err := s.notificationSvc.NotifyUserChange(ctx, "created", user); err != nil {
		return err
	}
	return nil
}

// Register creates an account with the given role. Username uniqueness
// is enforced by the store constraint.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest, role string) (*model.User, error) {
	if err := s.validationUtil.ValidateRegistration(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apierrors.ErrInvalidUserData, err)
	}

	hash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.CreateUser(ctx, model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, "user.created", *user)
	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (*model.TokenPair, error) {
	user, err := s.userStore.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if err == apierrors.ErrUserNotFound {
			return nil, apierrors.ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := argon2id.ComparePasswordAndHash(req.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, apierrors.ErrInvalidCredentials
	}

	return s.tokens.IssuePair(user.ID, user.Role)
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}
	return s.tokens.IssuePair(claims.UserID, claims.Role)
}
