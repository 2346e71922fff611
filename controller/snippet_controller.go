// controller/snippet_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/snipvault/api/errors"
	"github.com/snipvault/api/model"
	"github.com/snipvault/api/service"
	"github.com/snipvault/api/util"
	helper_util "github.com/snipvault/api/util/helper"
)

type SnippetController struct {
	snippetService service.ISnippetService
}

func NewSnippetController(snippetService service.ISnippetService) *SnippetController {
	return &SnippetController{
		snippetService: snippetService,
	}
}

// RegisterRoutes registers the API routes
func (sc *SnippetController) RegisterRoutes(r *gin.RouterGroup) {
	snippets := r.Group("/snippets")
	{
		snippets.GET("", sc.ListSnippets)
		snippets.POST("", sc.CreateSnippet)
		snippets.GET("/:id", sc.GetSnippet)
		snippets.PUT("/:id", sc.UpdateSnippet)
		snippets.DELETE("/:id", sc.DeleteSnippet)
	}
}

// ListSnippets endpoint
func (sc *SnippetController) ListSnippets(c *gin.Context) {
	ownerID, ok := util.GetOwnerIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", apierrors.ErrUnauthorized)
		return
	}

	payload, fromCache, err := sc.snippetService.ListSnippets(c, ownerID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve snippets", err)
		return
	}

	message := "Snippets retrieved successfully."
	if fromCache {
		message = "Snippets retrieved from cache."
	}
	util.RespondSuccess(c, http.StatusOK, message, payload)
}

// CreateSnippet endpoint
func (sc *SnippetController) CreateSnippet(c *gin.Context) {
	ownerID, ok := util.GetOwnerIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", apierrors.ErrUnauthorized)
		return
	}

	var req model.SnippetWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Snippet creation failed.", err)
		return
	}

	snippet, err := sc.snippetService.CreateSnippet(c, ownerID, req)
	if err != nil {
		switch {
		case errors.Is(err, apierrors.ErrInvalidSnippetData):
			util.RespondWithError(c, http.StatusBadRequest, "Snippet creation failed.", err)
		case errors.Is(err, apierrors.ErrTagConflict):
			util.RespondWithError(c, http.StatusConflict, "Snippet creation failed.", err)
		case errors.Is(err, apierrors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create snippet", err)
		}
		return
	}

	util.RespondCreated(c, "Snippet created successfully.", snippet)
}

// GetSnippet endpoint
func (sc *SnippetController) GetSnippet(c *gin.Context) {
	ownerID, ok := util.GetOwnerIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", apierrors.ErrUnauthorized)
		return
	}
	snippetID, err := helper_util.ParseIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid snippet id", err)
		return
	}

	snippet, fromCache, err := sc.snippetService.GetSnippet(c, ownerID, snippetID)
	if err != nil {
		if errors.Is(err, apierrors.ErrSnippetNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Snippet not found.", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve snippet", err)
		}
		return
	}

	message := "Snippet retrieved successfully."
	if fromCache {
		message = "Snippet retrieved from cache."
	}
	util.RespondSuccess(c, http.StatusOK, message, snippet)
}

// UpdateSnippet endpoint
func (sc *SnippetController) UpdateSnippet(c *gin.Context) {
	ownerID, ok := util.GetOwnerIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", apierrors.ErrUnauthorized)
		return
	}
	snippetID, err := helper_util.ParseIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid snippet id", err)
		return
	}

	var req model.SnippetWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Snippet update failed.", err)
		return
	}

	snippet, err := sc.snippetService.UpdateSnippet(c, ownerID, snippetID, req)
	if err != nil {
		switch {
		case errors.Is(err, apierrors.ErrSnippetNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Snippet not found.", err)
		case errors.Is(err, apierrors.ErrInvalidSnippetData):
			util.RespondWithError(c, http.StatusBadRequest, "Snippet update failed.", err)
		case errors.Is(err, apierrors.ErrTagConflict):
			util.RespondWithError(c, http.StatusConflict, "Snippet update failed.", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update snippet", err)
		}
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Snippet updated successfully.", snippet)
}

// DeleteSnippet endpoint
func (sc *SnippetController) DeleteSnippet(c *gin.Context) {
	ownerID, ok := util.GetOwnerIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", apierrors.ErrUnauthorized)
		return
	}
	snippetID, err := helper_util.ParseIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid snippet id", err)
		return
	}

	payload, err := sc.snippetService.DeleteSnippet(c, ownerID, snippetID)
	if err != nil {
		if errors.Is(err, apierrors.ErrSnippetNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Snippet not found.", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete snippet", err)
		}
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Snippet deleted successfully.", payload)
}
