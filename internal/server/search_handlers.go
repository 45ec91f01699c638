package server

import (
	"linkup/internal/featureflags"
	"linkup/internal/models"

	"github.com/gofiber/fiber/v2"
)

const globalSearchPageSize = 5

type globalSearchResult struct {
	Users []models.User `json:"users"`
	Posts []models.Post `json:"posts"`
}

// GlobalSearch finds users and posts matching the query
//
//	@Summary		Global search
//	@Description	Returns up to five users and five posts matching the query
//	@Tags			search
//	@Produce		json
//	@Param			q	query		string	true	"Search query"
//	@Success		200	{object}	globalSearchResult
//	@Failure		400	{object}	models.ErrorResponse
//	@Router			/api/search [get]
func (s *Server) GlobalSearch(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)
	if !s.featureFlags.Enabled(featureflags.FlagGlobalSearch, viewerID) {
		return c.JSON(globalSearchResult{
			Users: []models.User{},
			Posts: []models.Post{},
		})
	}

	query := c.Query("q")
	if query == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Search query is required"))
	}

	users, err := s.userService.SearchUsers(c.UserContext(), viewerID, query)
	if err != nil {
		return respondServiceError(c, err)
	}
	posts, err := s.postService.SearchPosts(c.UserContext(), viewerID, query, globalSearchPageSize)
	if err != nil {
		return respondServiceError(c, err)
	}

	if users == nil {
		users = []models.User{}
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return c.JSON(globalSearchResult{Users: users, Posts: posts})
}

// GetFeatureFlags returns the evaluated flags for the current user
//
//	@Summary		Get feature flags
//	@Tags			meta
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	map[string]bool
//	@Router			/api/feature-flags [get]
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	return c.JSON(s.featureFlags.Snapshot(currentUserID(c)))
}
