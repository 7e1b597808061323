package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"integrated-bots/pkg/response"
)

// Chat godoc
// @Summary     Auto-routed chat
// @Description Classifies the query and dispatches it to the matching bot.
// @Tags        Router
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User query"
// @Success     200  {object} routedResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output := h.uc.Dispatch(ctx, req.Query)

	c.JSON(http.StatusOK, newRoutedResp(output))
}

// Classify godoc
// @Summary     Classify a query
// @Description Returns the routing category without dispatching. Keyword scoring runs first unless use_llm is set.
// @Tags        Router
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Query to classify"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output := h.uc.Classify(ctx, req.Query, req.UseLLM)

	c.JSON(http.StatusOK, newClassifyResp(output))
}
