package server

import (
	"linkup/internal/models"
	"linkup/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile returns the authenticated user's profile
//
//	@Summary		Get own profile
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	models.User
//	@Failure		401	{object}	models.ErrorResponse
//	@Router			/api/users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userService.GetProfile(c.UserContext(), userID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile applies partial edits to the authenticated user's profile
//
//	@Summary		Update own profile
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		service.UpdateProfileInput	true	"Fields to update"
//	@Success		200		{object}	models.User
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/api/users/me [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var input service.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), currentUserID(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetMyStats returns the authenticated user's profile aggregates
//
//	@Summary		Get own stats
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	models.UserStats
//	@Router			/api/users/me/stats [get]
func (s *Server) GetMyStats(c *fiber.Ctx) error {
	stats, err := s.userService.GetStats(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}

// SearchUsers finds users by name or email
//
//	@Summary		Search users
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q	query		string	true	"Search query"
//	@Success		200	{array}		models.User
//	@Failure		400	{object}	models.ErrorResponse
//	@Router			/api/users/search [get]
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	users, err := s.userService.SearchUsers(c.UserContext(), currentUserID(c), c.Query("q"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// GetUserProfile returns another user's profile
//
//	@Summary		Get a user's profile
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	models.User
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/api/users/{id} [get]
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	targetID, err := parseID(c, "id")
	if err != nil {
		return responseWrittenOr(err)
	}

	user, err := s.userService.GetProfile(c.UserContext(), currentUserID(c), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetUserStats returns a user's profile aggregates
//
//	@Summary		Get a user's stats
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	models.UserStats
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/api/users/{id}/stats [get]
func (s *Server) GetUserStats(c *fiber.Ctx) error {
	targetID, err := parseID(c, "id")
	if err != nil {
		return responseWrittenOr(err)
	}

	stats, err := s.userService.GetStats(c.UserContext(), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}

// GetUserPosts returns a user's posts newest first
//
//	@Summary		List a user's posts
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int	true	"User ID"
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		models.Post
//	@Failure		404		{object}	models.ErrorResponse
//	@Router			/api/users/{id}/posts [get]
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	targetID, err := parseID(c, "id")
	if err != nil {
		return responseWrittenOr(err)
	}

	page := parsePagination(c, 20)
	posts, err := s.postService.ListPosts(c.UserContext(), service.ListPostsInput{
		CurrentUserID: currentUserID(c),
		AuthorID:      targetID,
		Limit:         page.Limit,
		Offset:        page.Offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}
