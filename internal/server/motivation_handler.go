package server

import (
	"github.com/gofiber/fiber/v2"

	"task-planner/internal/model"
	"task-planner/internal/service"
)

type motivationResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

func toMotivationResponse(m *model.Motivation) motivationResponse {
	return motivationResponse{ID: m.ID, Name: m.Name, URL: m.URL}
}

func (s *Server) createMotivation(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	motivation, err := s.motivations.Create(c.UserContext(), userFrom(c), service.MotivationInput{
		Name: req.Name,
		URL:  req.URL,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMotivationResponse(motivation))
}

func (s *Server) listMotivations(c *fiber.Ctx) error {
	motivations, err := s.motivations.List(c.UserContext(), userFrom(c))
	if err != nil {
		return s.fail(c, err)
	}
	resp := make([]motivationResponse, 0, len(motivations))
	for i := range motivations {
		resp = append(resp, toMotivationResponse(&motivations[i]))
	}
	return c.JSON(fiber.Map{"motivations": resp})
}

func (s *Server) deleteMotivation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	if err := s.motivations.Delete(c.UserContext(), userFrom(c), id); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
