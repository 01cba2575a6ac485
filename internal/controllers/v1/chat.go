package v1

import (
	"net/http"
	"strings"

	"github.com/billtrail/backend/internal/chat"
	"github.com/billtrail/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type ChatMessage struct {
	Message string `json:"message" example:"How do I add a bill?"` // The question of the user
}

type ChatReply struct {
	Intent chat.Intent `json:"intent" example:"add_bill"`                                                      // What the message was recognized to be about
	Reply  string      `json:"reply" example:"To add a bill, open Upload Bills and drop a photo or PDF of it"` // The answer
}

type ChatResponse struct {
	Data  *ChatReply `json:"data"`                                          // The reply
	Error *string    `json:"error" example:"the message must not be empty"` // The error, if any occurred
}

func (co Controller) RegisterChatRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsChat)
	r.POST("", co.CreateChatReply)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Support
// @Success		204
// @Router			/v1/chat [options]
func (co Controller) OptionsChat(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Ask support
// @Description	Answers a support question with a canned reply
// @Tags			Support
// @Accept			json
// @Produce		json
// @Success		200		{object}	ChatResponse
// @Failure		400		{object}	ChatResponse
// @Param			message	body		ChatMessage	true	"Message"
// @Router			/v1/chat [post]
func (co Controller) CreateChatReply(c *gin.Context) {
	var message ChatMessage
	if err := httputil.BindData(c, &message); err != nil {
		e := err.Error()
		c.JSON(status(err), ChatResponse{Error: &e})
		return
	}

	if strings.TrimSpace(message.Message) == "" {
		e := errChatMessageEmpty.Error()
		c.JSON(http.StatusBadRequest, ChatResponse{Error: &e})
		return
	}

	intent := chat.Match(message.Message)
	c.JSON(http.StatusOK, ChatResponse{
		Data: &ChatReply{
			Intent: intent,
			Reply:  chat.Reply(intent),
		},
	})
}
