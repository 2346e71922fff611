// service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/snipvault/api/audit"
	"github.com/snipvault/api/dao"
	"github.com/snipvault/api/util"
)

type Services struct {
	Snippet ISnippetService
	Tag     ITagService
	User    IUserService
}

func InitializeServices(
	driver neo4j.Driver,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	invalidator *util.CacheInvalidator,
	notificationSvc *util.NotificationService,
	tokens *util.TokenManager,
	eventBus *util.EventBus,
) (*Services, error) {
	snippetDAO := dao.NewSnippetDAO(driver, auditService)
	tagDAO := dao.NewTagDAO(driver, auditService)
	userDAO := dao.NewUserDAO(driver, auditService)

	tagService := NewTagService(tagDAO, cacheService, notificationSvc, eventBus)
	services := &Services{
		Snippet: NewSnippetService(snippetDAO, tagService, validationUtil, cacheService, invalidator, notificationSvc, eventBus),
		Tag:     tagService,
		User:    NewUserService(userDAO, validationUtil, tokens, notificationSvc, eventBus),
	}

	return services, nil
}
