// controller/audit_controller.go
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snipvault/api/audit"
	"github.com/snipvault/api/util"
)

type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// RegisterRoutes registers the admin-gated audit routes.
func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit", ac.QueryLogs)
}

// QueryLogs endpoint returns audit entries in a time window, optionally
// filtered by user or resource.
func (ac *AuditController) QueryLogs(c *gin.Context) {
	to := time.Now().UTC()
	from := to.Add(-24 * time.Hour)

	var err error
	if raw := c.Query("from"); raw != "" {
		from, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid 'from' timestamp", err)
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid 'to' timestamp", err)
			return
		}
	}

	userID, _ := strconv.ParseInt(c.DefaultQuery("user_id", "0"), 10, 64)
	resourceID, _ := strconv.ParseInt(c.DefaultQuery("resource_id", "0"), 10, 64)

	logs, err := ac.auditService.QueryLogs(c, from, to, userID, resourceID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit logs", err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Audit logs retrieved successfully.", logs)
}
