package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	botHTTP "integrated-bots/internal/bot/delivery/http"
	"integrated-bots/internal/middleware"
	"integrated-bots/internal/model"
	routerHTTP "integrated-bots/internal/router/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimitPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.CORS())
	srv.gin.Use(mw.RequestID())

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootInfo)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.StaticFile("/ui", "./static/index.html")

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the chat surface. Every query endpoint
// shares one rate limiter.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()

	chat := srv.gin.Group("", mw.RateLimit())

	routerHTTP.RegisterRoutes(chat.Group(""), srv.routerHandler)
	srv.l.Infof(ctx, "Router endpoints registered at POST /chat, POST /classify")

	botHTTP.RegisterRoutes(chat.Group(""), srv.botHandler)
	srv.l.Infof(ctx, "Persona endpoints registered")
}
