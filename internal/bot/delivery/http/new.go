package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"integrated-bots/internal/bot/genz"
	"integrated-bots/pkg/log"
)

// Answerer is the contract shared by the single-reply personas.
type Answerer interface {
	Answer(ctx context.Context, query string) string
}

// GenZUseCase is the social-content persona surface.
type GenZUseCase interface {
	Generate(ctx context.Context, query string, opts genz.Options) (string, string)
	HandleQuery(ctx context.Context, query string) string
}

// Handler is the public interface for the persona HTTP delivery layer.
type Handler interface {
	Banking(c *gin.Context)
	Cooking(c *gin.Context)
	Finance(c *gin.Context)
	GPTMaster(c *gin.Context)
	GenZ(c *gin.Context)
	GenZQuery(c *gin.Context)
}

type handler struct {
	l         log.Logger
	banking   Answerer
	cooking   Answerer
	finance   Answerer
	gptMaster Answerer
	genz      GenZUseCase
}

// New creates the HTTP handler for the direct persona endpoints.
func New(l log.Logger, banking, cooking, finance, gptMaster Answerer, genzUC GenZUseCase) *handler {
	return &handler{
		l:         l,
		banking:   banking,
		cooking:   cooking,
		finance:   finance,
		gptMaster: gptMaster,
		genz:      genzUC,
	}
}
