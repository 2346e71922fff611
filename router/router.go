// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snipvault/api/controller"
	"github.com/snipvault/api/middleware"
	"github.com/snipvault/api/model"
	"github.com/snipvault/api/util"
)

func SetupRouter(
	controllers *controller.Controllers,
	tokens *util.TokenManager,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	public := router.Group("/api/v1")
	controllers.Auth.RegisterPublicRoutes(public)

	api := router.Group("/api/v1")
	api.Use(middleware.Auth(tokens))

	controllers.Snippet.RegisterRoutes(api)
	controllers.Tag.RegisterRoutes(api)

	admin := api.Group("")
	admin.Use(middleware.RequireRoles(model.RoleAdmin))
	controllers.Auth.RegisterAdminRoutes(admin)
	controllers.Audit.RegisterRoutes(admin)

	return router
}
