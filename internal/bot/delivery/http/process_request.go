package http

import (
	"github.com/gin-gonic/gin"
)

// processAskReq binds the shared single-query request body.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processGenZReq binds and validates the script request body.
func (h *handler) processGenZReq(c *gin.Context) (genzReq, error) {
	var req genzReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
