// controller/tag_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/snipvault/api/errors"
	"github.com/snipvault/api/service"
	"github.com/snipvault/api/util"
	helper_util "github.com/snipvault/api/util/helper"
)

type TagController struct {
	tagService service.ITagService
}

func NewTagController(tagService service.ITagService) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

// RegisterRoutes registers the API routes
func (tc *TagController) RegisterRoutes(r *gin.RouterGroup) {
	tags := r.Group("/tags")
	{
		tags.GET("", tc.ListTags)
		tags.GET("/:id", tc.GetTagDetail)
	}
}

// ListTags endpoint
func (tc *TagController) ListTags(c *gin.Context) {
	payload, fromCache, err := tc.tagService.ListTags(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tags", err)
		return
	}

	message := "Tags retrieved successfully."
	if fromCache {
		message = "Tags retrieved from cache."
	}
	util.RespondSuccess(c, http.StatusOK, message, payload)
}

// GetTagDetail endpoint
func (tc *TagController) GetTagDetail(c *gin.Context) {
	ownerID, ok := util.GetOwnerIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", apierrors.ErrUnauthorized)
		return
	}
	tagID, err := helper_util.ParseIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid tag id", err)
		return
	}

	detail, _, err := tc.tagService.GetTagDetail(c, tagID, ownerID)
	if err != nil {
		if errors.Is(err, apierrors.ErrTagNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Tag not found.", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tag", err)
		}
		return
	}

	message := fmt.Sprintf("Snippets associated to Tag '%s' retrieved successfully.", titleCase(detail.Title))
	util.RespondSuccess(c, http.StatusOK, message, detail)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
