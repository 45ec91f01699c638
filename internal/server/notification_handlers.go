package server

import (
	"linkup/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications returns the newest notifications for the user
//
//	@Summary		List notifications
//	@Tags			notifications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	models.Notification
//	@Router			/api/notifications [get]
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	notifications, err := s.notificationService.List(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(notifications)
}

// GetUnreadNotificationCount returns the unread notification count
//
//	@Summary		Count unread notifications
//	@Tags			notifications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	object{count=int}
//	@Router			/api/notifications/unread-count [get]
func (s *Server) GetUnreadNotificationCount(c *fiber.Ctx) error {
	count, err := s.notificationService.UnreadCount(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// MarkNotificationRead marks one notification as read
//
//	@Summary		Mark a notification read
//	@Tags			notifications
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Notification ID"
//	@Success		200	{object}	models.Notification
//	@Failure		403	{object}	models.ErrorResponse
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/api/notifications/{id}/read [post]
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	notificationID, err := parseID(c, "id")
	if err != nil {
		return responseWrittenOr(err)
	}

	notification, err := s.notificationService.MarkRead(c.UserContext(), currentUserID(c), notificationID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(notification)
}

// MarkAllNotificationsRead marks every unread notification as read
//
//	@Summary		Mark all notifications read
//	@Tags			notifications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	object{message=string}
//	@Router			/api/notifications/read-all [post]
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	if err := s.notificationService.MarkAllRead(c.UserContext(), currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}

// DeleteNotifications deletes the given notifications
//
//	@Summary		Delete notifications
//	@Tags			notifications
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		object{ids=[]int}	true	"Notification IDs"
//	@Success		200		{object}	object{deleted=int}
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/api/notifications [delete]
func (s *Server) DeleteNotifications(c *fiber.Ctx) error {
	var input struct {
		IDs []uint `json:"ids"`
	}
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	deleted, err := s.notificationService.Delete(c.UserContext(), currentUserID(c), input.IDs)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// DeleteReadNotifications deletes every read notification for the user
//
//	@Summary		Delete read notifications
//	@Tags			notifications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	object{deleted=int}
//	@Router			/api/notifications/read [delete]
func (s *Server) DeleteReadNotifications(c *fiber.Ctx) error {
	deleted, err := s.notificationService.DeleteRead(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
