package server

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"task-planner/internal/calendar"
	"task-planner/internal/model"
	"task-planner/internal/service"
)

const userLocal = "currentUser"

// timeNow is swapped out in tests.
var timeNow = time.Now

// resolveUser turns the opaque X-User-ID header into a loaded user record.
func (s *Server) resolveUser(c *fiber.Ctx) error {
	raw := c.Get("X-User-ID")
	if raw == "" {
		return unauthorized(c, "missing X-User-ID header")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return unauthorized(c, "invalid X-User-ID header")
	}
	user, err := s.users.FindByID(c.UserContext(), uint(id))
	if err != nil {
		return unauthorized(c, "unknown user")
	}
	c.Locals(userLocal, user)
	return c.Next()
}

func userFrom(c *fiber.Ctx) *model.User {
	return c.Locals(userLocal).(*model.User)
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}

// fail maps service errors onto HTTP statuses: validation 422, missing
// records 404, illegal status transitions 409, anything else 500.
func (s *Server) fail(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": verr.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, service.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		s.log.Error("request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseDay(field, value string) (time.Time, error) {
	day, err := time.Parse(calendar.DayFormat, value)
	if err != nil {
		return time.Time{}, &service.ValidationError{Field: field, Reason: "expected YYYY-MM-DD"}
	}
	return day, nil
}

func formatDay(t time.Time) string {
	return t.UTC().Format(calendar.DayFormat)
}
