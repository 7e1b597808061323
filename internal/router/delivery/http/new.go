package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"integrated-bots/internal/router"
	"integrated-bots/pkg/log"
)

// UseCase is the routing surface consumed by this delivery layer.
type UseCase interface {
	Classify(ctx context.Context, query string, forceModel bool) router.ClassifyOutput
	Dispatch(ctx context.Context, query string) router.DispatchOutput
}

// Handler is the public interface for the routing HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Classify(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc UseCase
}

// New creates the HTTP handler for the routing endpoints.
func New(l log.Logger, uc UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
