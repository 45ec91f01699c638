package server

import (
	"linkup/internal/featureflags"

	"github.com/gofiber/fiber/v2"
)

// GetFriends returns the authenticated user's accepted connections
//
//	@Summary		List connections
//	@Tags			friends
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	models.User
//	@Router			/api/friends [get]
func (s *Server) GetFriends(c *fiber.Ctx) error {
	friends, err := s.friendService.GetFriends(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(friends)
}

// SendFriendRequest sends a connection request to another user
//
//	@Summary		Send a connection request
//	@Tags			friends
//	@Produce		json
//	@Security		BearerAuth
//	@Param			userId	path		int	true	"Target user ID"
//	@Success		201		{object}	models.Friendship
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		404		{object}	models.ErrorResponse
//	@Failure		409		{object}	models.ErrorResponse
//	@Router			/api/friends/requests/{userId} [post]
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	targetID, err := parseID(c, "userId")
	if err != nil {
		return responseWrittenOr(err)
	}

	friendship, err := s.friendService.SendRequest(c.UserContext(), currentUserID(c), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(friendship)
}

// GetPendingRequests returns pending requests addressed to the user
//
//	@Summary		List received connection requests
//	@Tags			friends
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	models.Friendship
//	@Router			/api/friends/requests [get]
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	requests, err := s.friendService.GetPendingReceived(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// GetSentRequests returns pending requests the user sent
//
//	@Summary		List sent connection requests
//	@Tags			friends
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	models.Friendship
//	@Router			/api/friends/requests/sent [get]
func (s *Server) GetSentRequests(c *fiber.Ctx) error {
	requests, err := s.friendService.GetSentRequests(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// AcceptFriendRequest accepts a pending connection request
//
//	@Summary		Accept a connection request
//	@Tags			friends
//	@Produce		json
//	@Security		BearerAuth
//	@Param			requestId	path		int	true	"Request ID"
//	@Success		200			{object}	models.Friendship
//	@Failure		400			{object}	models.ErrorResponse
//	@Failure		403			{object}	models.ErrorResponse
//	@Failure		404			{object}	models.ErrorResponse
//	@Router			/api/friends/requests/{requestId}/accept [post]
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	return s.respondToRequest(c, true)
}

// RejectFriendRequest rejects a pending connection request
//
//	@Summary		Reject a connection request
//	@Tags			friends
//	@Produce		json
//	@Security		BearerAuth
//	@Param			requestId	path		int	true	"Request ID"
//	@Success		200			{object}	models.Friendship
//	@Failure		400			{object}	models.ErrorResponse
//	@Failure		403			{object}	models.ErrorResponse
//	@Failure		404			{object}	models.ErrorResponse
//	@Router			/api/friends/requests/{requestId}/reject [post]
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	return s.respondToRequest(c, false)
}

func (s *Server) respondToRequest(c *fiber.Ctx, accept bool) error {
	requestID, err := parseID(c, "requestId")
	if err != nil {
		return responseWrittenOr(err)
	}

	friendship, err := s.friendService.RespondToRequest(c.UserContext(), currentUserID(c), requestID, accept)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(friendship)
}

// CancelFriendRequest withdraws a pending request the user sent
//
//	@Summary		Cancel a sent connection request
//	@Tags			friends
//	@Produce		json
//	@Security		BearerAuth
//	@Param			requestId	path		int	true	"Request ID"
//	@Success		200			{object}	object{message=string}
//	@Failure		403			{object}	models.ErrorResponse
//	@Failure		404			{object}	models.ErrorResponse
//	@Router			/api/friends/requests/{requestId} [delete]
func (s *Server) CancelFriendRequest(c *fiber.Ctx) error {
	requestID, err := parseID(c, "requestId")
	if err != nil {
		return responseWrittenOr(err)
	}

	if err := s.friendService.CancelRequest(c.UserContext(), currentUserID(c), requestID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Connection request cancelled"})
}

// GetFriendshipStatus derives the relation with another user
//
//	@Summary		Get connection status with a user
//	@Tags			friends
//	@Produce		json
//	@Security		BearerAuth
//	@Param			userId	path		int	true	"User ID"
//	@Success		200		{object}	models.FriendshipState
//	@Failure		404		{object}	models.ErrorResponse
//	@Router			/api/friends/status/{userId} [get]
func (s *Server) GetFriendshipStatus(c *fiber.Ctx) error {
	targetID, err := parseID(c, "userId")
	if err != nil {
		return responseWrittenOr(err)
	}

	state, err := s.friendService.GetStatus(c.UserContext(), currentUserID(c), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(state)
}

// GetSuggestions returns users the requester could connect with
//
//	@Summary		List connection suggestions
//	@Tags			friends
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	models.User
//	@Router			/api/friends/suggestions [get]
func (s *Server) GetSuggestions(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if !s.featureFlags.Enabled(featureflags.FlagSuggestions, userID) {
		return c.JSON([]fiber.Map{})
	}

	suggestions, err := s.friendService.GetSuggestions(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(suggestions)
}

// RemoveFriend deletes an accepted connection
//
//	@Summary		Remove a connection
//	@Tags			friends
//	@Produce		json
//	@Security		BearerAuth
//	@Param			userId	path		int	true	"User ID"
//	@Success		200		{object}	object{message=string}
//	@Failure		404		{object}	models.ErrorResponse
//	@Router			/api/friends/{userId} [delete]
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	targetID, err := parseID(c, "userId")
	if err != nil {
		return responseWrittenOr(err)
	}

	if err := s.friendService.RemoveFriend(c.UserContext(), currentUserID(c), targetID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Connection removed"})
}
