package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"integrated-bots/internal/bot/banking"
	"integrated-bots/internal/bot/cooking"
	"integrated-bots/internal/bot/finance"
	"integrated-bots/internal/bot/genz"
	"integrated-bots/internal/bot/gptmaster"
	"integrated-bots/pkg/response"
)

// Banking godoc
// @Summary     Banking FAQ bot
// @Description Answers banking questions; account-specific queries get an authentication notice.
// @Tags        Bots
// @Accept      json
// @Produce     json
// @Param       body body askReq true "User query"
// @Success     200  {object} botResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /banking [POST]
func (h *handler) Banking(c *gin.Context) {
	h.ask(c, banking.Label, h.banking)
}

// Cooking godoc
// @Summary     Cooking recipe bot
// @Description Returns a structured recipe for the given ingredients or dish.
// @Tags        Bots
// @Accept      json
// @Produce     json
// @Param       body body askReq true "User query"
// @Success     200  {object} botResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /cooking [POST]
func (h *handler) Cooking(c *gin.Context) {
	h.ask(c, cooking.Label, h.cooking)
}

// Finance godoc
// @Summary     Finance education bot
// @Description Explains finance concepts; every reply carries an educational disclaimer.
// @Tags        Bots
// @Accept      json
// @Produce     json
// @Param       body body askReq true "User query"
// @Success     200  {object} botResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /finance [POST]
func (h *handler) Finance(c *gin.Context) {
	h.ask(c, finance.Label, h.finance)
}

// GPTMaster godoc
// @Summary     Mentor bot
// @Description Step-by-step mentoring answers for general questions.
// @Tags        Bots
// @Accept      json
// @Produce     json
// @Param       body body askReq true "User query"
// @Success     200  {object} botResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /gpt_master [POST]
func (h *handler) GPTMaster(c *gin.Context) {
	h.ask(c, gptmaster.Label, h.gptMaster)
}

// ask binds the common single-query request and runs the persona.
func (h *handler) ask(c *gin.Context, label string, bot Answerer) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, botResp{
		Bot:   label,
		Reply: bot.Answer(ctx, req.Query),
	})
}

// GenZ godoc
// @Summary     GenZ script generator
// @Description Generates a platform-shaped short-video script with optional trending and camera cues.
// @Tags        Bots
// @Accept      json
// @Produce     json
// @Param       body body genzReq true "Script request"
// @Success     200  {object} genzResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /genz [POST]
func (h *handler) GenZ(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenZReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, lang := h.genz.Generate(ctx, req.Query, req.toOptions())

	c.JSON(http.StatusOK, genzResp{
		Reply:            reply,
		LanguageDetected: lang,
	})
}

// GenZQuery godoc
// @Summary     GenZ enriched query
// @Description Sub-classifies the query and answers with news, movie, encyclopedia or creative content.
// @Tags        Bots
// @Accept      json
// @Produce     json
// @Param       body body askReq true "User query"
// @Success     200  {object} botResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /genz/query [POST]
func (h *handler) GenZQuery(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, botResp{
		Bot:   genz.Label,
		Reply: h.genz.HandleQuery(ctx, req.Query),
	})
}
