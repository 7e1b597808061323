package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	botHTTP "integrated-bots/internal/bot/delivery/http"
	routerHTTP "integrated-bots/internal/router/delivery/http"
	"integrated-bots/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int

	// Routing endpoints (/chat, /classify)
	routerHandler routerHTTP.Handler

	// Direct persona endpoints
	botHandler botHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	RouterHandler routerHTTP.Handler
	BotHandler    botHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		routerHandler:   cfg.RouterHandler,
		botHandler:      cfg.BotHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.routerHandler == nil {
		return errors.New("router handler is required")
	}
	if srv.botHandler == nil {
		return errors.New("bot handler is required")
	}
	return nil
}
