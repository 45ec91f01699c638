package server

import (
	"linkup/internal/models"

	"github.com/gofiber/fiber/v2"
)

type commentBody struct {
	Content string `json:"content"`
}

// GetComments returns a post's comments oldest first
//
//	@Summary		List a post's comments
//	@Tags			comments
//	@Produce		json
//	@Param			id	path		int	true	"Post ID"
//	@Success		200	{array}		models.Comment
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/api/posts/{id}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return responseWrittenOr(err)
	}

	viewerID, _ := s.optionalUserID(c)
	comments, err := s.commentService.GetComments(c.UserContext(), viewerID, postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}

// CreateComment adds a comment to a post
//
//	@Summary		Comment on a post
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int			true	"Post ID"
//	@Param			body	body		commentBody	true	"Comment payload"
//	@Success		201		{object}	models.Comment
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		404		{object}	models.ErrorResponse
//	@Router			/api/posts/{id}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return responseWrittenOr(err)
	}

	var input commentBody
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), currentUserID(c), postID, input.Content)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment edits a comment the user owns
//
//	@Summary		Update a comment
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		int			true	"Post ID"
//	@Param			commentId	path		int			true	"Comment ID"
//	@Param			body		body		commentBody	true	"Comment payload"
//	@Success		200			{object}	models.Comment
//	@Failure		403			{object}	models.ErrorResponse
//	@Failure		404			{object}	models.ErrorResponse
//	@Router			/api/posts/{id}/comments/{commentId} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return responseWrittenOr(err)
	}

	var input commentBody
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.UserContext(), currentUserID(c), commentID, input.Content)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment removes a comment. The comment owner and the post
// owner may both delete it.
//
//	@Summary		Delete a comment
//	@Tags			comments
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		int	true	"Post ID"
//	@Param			commentId	path		int	true	"Comment ID"
//	@Success		200			{object}	object{message=string}
//	@Failure		403			{object}	models.ErrorResponse
//	@Failure		404			{object}	models.ErrorResponse
//	@Router			/api/posts/{id}/comments/{commentId} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return responseWrittenOr(err)
	}

	if err := s.commentService.DeleteComment(c.UserContext(), currentUserID(c), commentID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
