package controller

import (
	"cs_hub_backend/internal/service"
	"cs_hub_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	Service *service.MessageService
}

func NewMessageController(messageService *service.MessageService) *MessageController {
	return &MessageController{Service: messageService}
}

// @Summary Danh sách hội thoại của user hiện tại
// @Tags messages
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/messages/conversations [get]
func (c *MessageController) GetConversations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	conversations, err := c.Service.GetConversations(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, conversations)
}

// @Summary Tin nhắn trong một hội thoại
// @Tags messages
// @Security ApiKeyAuth
// @Param id path int true "ID hội thoại"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/messages/conversations/{id}/messages [get]
func (c *MessageController) GetMessages(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	messages, err := c.Service.GetMessages(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNotParticipant) {
			util.Forbidden(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, messages)
}

// @Summary Gửi tin nhắn
// @Tags messages
// @Security ApiKeyAuth
// @Param id path int true "ID hội thoại"
// @Success 201 {object} util.Response{data=model.Message}
// @Router /api/messages/conversations/{id}/messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	message, err := c.Service.SendMessage(util.MustParseUint(ctx.Param("id")), claims.UserID, req.Content)
	if err != nil {
		if errors.Is(err, util.ErrNotParticipant) {
			util.Forbidden(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, message)
}

// @Summary Tạo hội thoại mới
// @Tags messages
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.Conversation}
// @Router /api/messages/conversations [post]
func (c *MessageController) CreateConversation(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		ParticipantIDs []uint `json:"participantIds" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	conversation, err := c.Service.CreateConversation(claims.UserID, req.ParticipantIDs)
	if err != nil {
		var validationErr *util.ValidationError
		switch {
		case errors.As(err, &validationErr):
			util.BadRequest(ctx, validationErr.Error())
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, conversation)
}
