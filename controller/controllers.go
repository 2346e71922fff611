// controller/controllers.go
package controller

import (
	"github.com/snipvault/api/audit"
	"github.com/snipvault/api/service"
)

type Controllers struct {
	Snippet *SnippetController
	Tag     *TagController
	Auth    *AuthController
	Audit   *AuditController
}

func InitializeControllers(services *service.Services, auditService audit.Service) *Controllers {
	return &Controllers{
		Snippet: NewSnippetController(services.Snippet),
		Tag:     NewTagController(services.Tag),
		Auth:    NewAuthController(services.User),
		Audit:   NewAuditController(auditService),
	}
}
