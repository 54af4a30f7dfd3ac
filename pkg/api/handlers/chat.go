package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mfigueredo/hearth/pkg/api/types"
	"github.com/mfigueredo/hearth/pkg/chat"
)

// ChatHandler handles the chat endpoint
type ChatHandler struct {
	dispatcher *chat.Dispatcher
}

// NewChatHandler creates a new chat handler
func NewChatHandler(dispatcher *chat.Dispatcher) *ChatHandler {
	return &ChatHandler{dispatcher: dispatcher}
}

// Chat handles POST /chat
// @Summary      Send a chat message
// @Description  Interprets a free-text command against the user's devices and returns the assistant response plus any device update
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body      types.ChatRequest  true  "Message"
// @Success      200      {object}  types.ChatResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      401      {object}  types.ErrorResponse  "Unauthorized"
// @Security     BearerAuth
// @Router       /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "message is required",
		})
		return
	}

	userID := c.GetString(types.ContextUserID)

	// ProcessMessage never fails without a reply; unexpected faults
	// surface as the generic apology text.
	reply := h.dispatcher.ProcessMessage(c.Request.Context(), userID, req.Message)

	c.JSON(http.StatusOK, types.ChatResponse{
		Response:     reply.Text,
		DeviceUpdate: reply.Update,
	})
}
