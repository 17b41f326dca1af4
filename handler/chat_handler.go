package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/qanooni/hr-assistant-be/service"
	"github.com/qanooni/hr-assistant-be/types"
)

type ChatHandler struct {
	ragService *service.RAGService
}

func NewChatHandler(ragService *service.RAGService) *ChatHandler {
	return &ChatHandler{
		ragService: ragService,
	}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Message is required",
		})
		return
	}
	if req.Mode != "" && req.Mode != types.DocumentTypeLaw && req.Mode != types.DocumentTypeContract {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid mode",
		})
		return
	}

	response, err := h.ragService.Chat(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "Chat failed",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
