// controller/tag_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/snipvault/api/controller"
	apierrors "github.com/snipvault/api/errors"
	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/model"
	mock_service "github.com/snipvault/api/test/service_mock"
	"github.com/snipvault/api/util"
)

func TestTagController(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTagService := mock_service.NewMockITagService(ctrl)
	tagController := controller.NewTagController(mockTagService)
	router := setupRouter()
	api := router.Group("/")
	tagController.RegisterRoutes(api)

	t.Run("ListTags_Success", func(t *testing.T) {
		mockTagService.EXPECT().
			ListTags(gomock.Any()).
			Return(&model.TagListPayload{
				Tags: []model.TagWithCount{{ID: 1, Title: "go", SnippetCount: 2}},
			}, false, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/tags", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp util.APIResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Tags retrieved successfully.", resp.Message)
	})

	t.Run("ListTags_Success_FromCache", func(t *testing.T) {
		mockTagService.EXPECT().
			ListTags(gomock.Any()).
			Return(&model.TagListPayload{Tags: []model.TagWithCount{}}, true, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/tags", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp util.APIResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Tags retrieved from cache.", resp.Message)
	})

	t.Run("GetTagDetail_Success", func(t *testing.T) {
		mockTagService.EXPECT().
			GetTagDetail(gomock.Any(), int64(3), int64(7)).
			Return(&model.TagDetail{
				ID:    3,
				Title: "go",
				Snippets: []model.SnippetOverview{
					{ID: 42, Title: "worker pool"},
				},
			}, false, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/tags/3", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp util.APIResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Snippets associated to Tag 'Go' retrieved successfully.", resp.Message)
	})

	t.Run("GetTagDetail_Failure_NotFound", func(t *testing.T) {
		mockTagService.EXPECT().
			GetTagDetail(gomock.Any(), int64(99), int64(7)).
			Return(nil, false, apierrors.ErrTagNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/tags/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
