package server

import (
	"linkup/internal/models"
	"linkup/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SendMessage sends a direct message to another user
//
//	@Summary		Send a message
//	@Description	Creates the pair's conversation on first contact
//	@Tags			messages
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		object{receiver_id=int,content=string}	true	"Message payload"
//	@Success		201		{object}	models.Message
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		404		{object}	models.ErrorResponse
//	@Router			/api/messages [post]
func (s *Server) SendMessage(c *fiber.Ctx) error {
	var input struct {
		ReceiverID uint   `json:"receiver_id"`
		Content    string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.chatService.SendMessage(c.UserContext(), service.SendMessageInput{
		SenderID:   currentUserID(c),
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetUnreadMessageCount returns the total unread message count
//
//	@Summary		Count unread messages
//	@Tags			messages
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	object{count=int}
//	@Router			/api/messages/unread-count [get]
func (s *Server) GetUnreadMessageCount(c *fiber.Ctx) error {
	count, err := s.chatService.UnreadCount(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// GetConversations lists the user's conversations newest activity first
//
//	@Summary		List conversations
//	@Tags			messages
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	models.ConversationSummary
//	@Router			/api/conversations [get]
func (s *Server) GetConversations(c *fiber.Ctx) error {
	conversations, err := s.chatService.ListConversations(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(conversations)
}

// GetMessages returns a conversation's messages and marks them read
//
//	@Summary		List a conversation's messages
//	@Description	Fetching marks messages addressed to the caller as read
//	@Tags			messages
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int	true	"Conversation ID"
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		models.Message
//	@Failure		403		{object}	models.ErrorResponse
//	@Failure		404		{object}	models.ErrorResponse
//	@Router			/api/conversations/{id}/messages [get]
func (s *Server) GetMessages(c *fiber.Ctx) error {
	conversationID, err := parseID(c, "id")
	if err != nil {
		return responseWrittenOr(err)
	}

	page := parsePagination(c, 50)
	messages, err := s.chatService.GetMessages(c.UserContext(), currentUserID(c), conversationID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(messages)
}

// MarkConversationRead marks the conversation's messages as read
//
//	@Summary		Mark a conversation read
//	@Tags			messages
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Conversation ID"
//	@Success		200	{object}	object{marked=int}
//	@Failure		403	{object}	models.ErrorResponse
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/api/conversations/{id}/read [post]
func (s *Server) MarkConversationRead(c *fiber.Ctx) error {
	conversationID, err := parseID(c, "id")
	if err != nil {
		return responseWrittenOr(err)
	}

	marked, err := s.chatService.MarkRead(c.UserContext(), currentUserID(c), conversationID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"marked": marked})
}

// SearchChatUsers finds users to start a conversation with
//
//	@Summary		Search users for messaging
//	@Tags			messages
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q	query		string	true	"Search query"
//	@Success		200	{array}		models.UserSummary
//	@Failure		400	{object}	models.ErrorResponse
//	@Router			/api/conversations/users/search [get]
func (s *Server) SearchChatUsers(c *fiber.Ctx) error {
	users, err := s.chatService.SearchUsers(c.UserContext(), currentUserID(c), c.Query("q"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}
