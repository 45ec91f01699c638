package server

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"linkup/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that an error response has already been
// written to the client and the handler should return nil.
var errResponseWritten = errors.New("response written")

// Pagination holds the parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

// parsePagination reads limit/offset from the query string, applying
// defaults and an upper bound on the page size.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return Pagination{Limit: limit, Offset: offset}
}

// parseID extracts and validates a positive numeric path parameter.
// On failure it writes a 400 response and returns errResponseWritten.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, respondInvalidParam(c, param)
	}
	return uint(id), nil
}

func respondInvalidParam(c *fiber.Ctx, param string) error {
	if err := models.RespondWithError(c, fiber.StatusBadRequest,
		models.NewValidationError("Invalid "+humanizeParam(param))); err != nil {
		return err
	}
	return errResponseWritten
}

// humanizeParam converts a camelCase path parameter name into words
// for error messages ("requestId" -> "request id").
func humanizeParam(param string) string {
	words := splitCamel(param)
	return strings.ToLower(strings.Join(words, " "))
}

func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// bearerToken extracts the token from a "Bearer <token>" Authorization
// header, or returns an empty string.
func bearerToken(c *fiber.Ctx) string {
	parts := strings.Split(c.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// currentUserID returns the authenticated user ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// responseWrittenOr returns nil when the error response has already
// been written, otherwise the error itself.
func responseWrittenOr(err error) error {
	if errors.Is(err, errResponseWritten) {
		return nil
	}
	return err
}

// respondServiceError maps an AppError code to its HTTP status and
// writes the response. Unknown errors become a 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		appErr = models.NewInternalError(err)
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case "NOT_FOUND":
		status = fiber.StatusNotFound
	case "VALIDATION_ERROR":
		status = fiber.StatusBadRequest
	case "UNAUTHORIZED":
		status = fiber.StatusUnauthorized
	case "FORBIDDEN":
		status = fiber.StatusForbidden
	case "CONFLICT":
		status = fiber.StatusConflict
	}

	return models.RespondWithError(c, status, appErr)
}
