package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markusluicellas/luibot/internal/service"
)

type AskHandler struct {
	answerSvc *service.AnswerService
}

func NewAskHandler(answerSvc *service.AnswerService) *AskHandler {
	return &AskHandler{answerSvc: answerSvc}
}

type AskRequest struct {
	Question      string `json:"question"`
	PostToChannel bool   `json:"post_to_channel"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

func (h *AskHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "validation_error"})
		return
	}

	answer, err := h.answerSvc.Answer(c.Request.Context(), req.Question, req.PostToChannel)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, AskResponse{Answer: answer})
}
