// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifySnippetChange(ctx context.Context, changeType string, snippet model.Snippet) error {
	switch changeType {
	case "created", "updated", "deleted":
		logger.Info("NOTIFICATION: Snippet "+changeType,
			zap.Int64("snippetID", snippet.ID),
			zap.String("title", snippet.Title))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyTagChange(ctx context.Context, changeType string, tag model.Tag) error {
	logger.Info("NOTIFICATION: Tag "+changeType,
		zap.Int64("tagID", tag.ID),
		zap.String("title", tag.Title))
	return nil
}

func (n *NotificationService) NotifyUserChange(ctx context.Context, changeType string, user model.User) error {
	logger.Info("NOTIFICATION: User "+changeType,
		zap.Int64("userID", user.ID),
		zap.String("username", user.Username))
	return nil
}
