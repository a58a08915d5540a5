package server

import (
	"github.com/gofiber/fiber/v2"

	"task-planner/internal/model"
)

// registerUser stores an identity record. Credentials and sessions are the
// auth layer's business, not this service's.
func (s *Server) registerUser(c *fiber.Ctx) error {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "name and email are required"})
	}

	user := &model.User{Name: req.Name, Email: req.Email}
	if err := s.users.Create(c.UserContext(), user); err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}
