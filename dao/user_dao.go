// dao/user_dao.go
package dao

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/snipvault/api/audit"
	apierrors "github.com/snipvault/api/errors"
	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/model"
	helper_util "github.com/snipvault/api/util/helper"
)

type UserDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewUserDAO(driver neo4j.Driver, auditService audit.Service) *UserDAO {
	dao := &UserDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for User", zap.Error(err))
	}
	return dao
}

func (dao *UserDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		queries := []string{
			`
        CREATE CONSTRAINT unique_user_username IF NOT EXISTS
        FOR (u:User) REQUIRE u.username IS UNIQUE
        `,
			`
        CREATE CONSTRAINT unique_user_id IF NOT EXISTS
        FOR (u:User) REQUIRE u.id IS UNIQUE
        `,
			counterConstraintQuery,
		}
		for _, query := range queries {
			if _, err := tx.Run(query, nil); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to ensure unique constraints on User", zap.Error(err))
		return err
	}
	return nil
}

func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		id, err := nextID(tx, "user")
		if err != nil {
			return nil, err
		}

		res, err := tx.Run(`
        CREATE (u:User {id: $id, username: $username, email: $email, passwordHash: $passwordHash, role: $role, createdAt: $createdAt})
        RETURN u.id AS id
        `, map[string]interface{}{
			"id":           id,
			"username":     user.Username,
			"email":        user.Email,
			"passwordHash": user.PasswordHash,
			"role":         user.Role,
			"createdAt":    time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			return nil, err
		}
		if res.Next() {
			return res.Record().Values[0], nil
		}
		return nil, apierrors.ErrDatabaseOperation
	})

	duration := time.Since(start)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, apierrors.ErrUserConflict
		}
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
			zap.Duration("duration", duration))
		return nil, err
	}

	user.ID = result.(int64)
	user.PasswordHash = ""
	logger.Info("User created successfully",
		zap.Int64("userID", user.ID),
		zap.String("username", user.Username),
		zap.Duration("duration", duration))

	auditLog := audit.AuditLog{
		Timestamp:    time.Now(),
		UserID:       user.ID,
		Action:       audit.ActionCreateUser,
		ResourceKind: "user",
		ResourceID:   user.ID,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Warn("Failed to index audit log", zap.Error(err), zap.String("action", audit.ActionCreateUser))
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		res, err := tx.Run(`
        MATCH (u:User {username: $username})
        RETURN u
        `, map[string]interface{}{"username": username})
		if err != nil {
			return nil, apierrors.ErrDatabaseOperation
		}
		if !res.Next() {
			return nil, apierrors.ErrUserNotFound
		}
		return mapNodeToUser(res.Record().Values[0].(neo4j.Node))
	})

	if err != nil {
		return nil, err
	}
	return result.(*model.User), nil
}

func mapNodeToUser(node neo4j.Node) (*model.User, error) {
	createdAt, err := helper_util.ParseTime(node.Props["createdAt"].(string))
	if err != nil {
		return nil, err
	}
	return &model.User{
		ID:           node.Props["id"].(int64),
		Username:     node.Props["username"].(string),
		Email:        node.Props["email"].(string),
		PasswordHash: node.Props["passwordHash"].(string),
		Role:         node.Props["role"].(string),
		CreatedAt:    createdAt,
	}, nil
}
