package server

import (
	"github.com/gofiber/fiber/v2"

	"task-planner/internal/model"
	"task-planner/internal/service"
)

type entryRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type entryResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

func toEntryResponse(e *model.Entry) entryResponse {
	return entryResponse{ID: e.ID, Name: e.Name, Content: e.Content}
}

func (s *Server) createEntry(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	entry, err := s.entries.Create(c.UserContext(), userFrom(c), service.EntryInput{
		Name:    req.Name,
		Content: req.Content,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toEntryResponse(entry))
}

func (s *Server) listEntries(c *fiber.Ctx) error {
	entries, err := s.entries.List(c.UserContext(), userFrom(c))
	if err != nil {
		return s.fail(c, err)
	}
	resp := make([]entryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, toEntryResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"entries": resp})
}

func (s *Server) updateEntry(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	entry, err := s.entries.Update(c.UserContext(), userFrom(c), id, service.EntryInput{
		Name:    req.Name,
		Content: req.Content,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(toEntryResponse(entry))
}

func (s *Server) deleteEntry(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	if err := s.entries.Delete(c.UserContext(), userFrom(c), id); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
