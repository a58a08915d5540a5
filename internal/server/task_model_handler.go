package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"task-planner/internal/model"
	"task-planner/internal/service"
)

type taskModelRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Days        []model.Weekday `json:"days"`
	StartAt     string          `json:"start_at"`
	EndAt       *string         `json:"end_at"`
}

type taskModelResponse struct {
	ID          uint                  `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Days        []model.Weekday       `json:"days"`
	Status      model.TaskModelStatus `json:"status"`
	StartAt     string                `json:"start_at"`
	EndAt       *string               `json:"end_at,omitempty"`
}

func toTaskModelResponse(m *model.TaskModel) taskModelResponse {
	resp := taskModelResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Days:        m.Days,
		Status:      m.Status,
		StartAt:     formatDay(m.StartAt),
	}
	if m.EndAt != nil {
		end := formatDay(*m.EndAt)
		resp.EndAt = &end
	}
	return resp
}

func (s *Server) createTaskModel(c *fiber.Ctx) error {
	var req taskModelRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	startAt, err := parseDay("start_at", req.StartAt)
	if err != nil {
		return s.fail(c, err)
	}
	var endAt *time.Time
	if req.EndAt != nil && *req.EndAt != "" {
		end, err := parseDay("end_at", *req.EndAt)
		if err != nil {
			return s.fail(c, err)
		}
		endAt = &end
	}

	m, err := s.taskModels.Create(c.UserContext(), userFrom(c), service.CreateTaskModelInput{
		Name:        req.Name,
		Description: req.Description,
		Days:        req.Days,
		StartAt:     startAt,
		EndAt:       endAt,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTaskModelResponse(m))
}

func (s *Server) listTaskModels(c *fiber.Ctx) error {
	models, err := s.taskModels.List(c.UserContext(), userFrom(c))
	if err != nil {
		return s.fail(c, err)
	}
	resp := make([]taskModelResponse, 0, len(models))
	for i := range models {
		resp = append(resp, toTaskModelResponse(&models[i]))
	}
	return c.JSON(fiber.Map{"task_models": resp})
}

func (s *Server) getTaskModel(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	m, err := s.taskModels.Get(c.UserContext(), userFrom(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(toTaskModelResponse(m))
}

func (s *Server) updateTaskModel(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	m, err := s.taskModels.Update(c.UserContext(), userFrom(c), id, service.UpdateTaskModelInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(toTaskModelResponse(m))
}

func (s *Server) stopTaskModel(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	m, err := s.taskModels.Stop(c.UserContext(), userFrom(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(toTaskModelResponse(m))
}

func (s *Server) deleteTaskModel(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	if err := s.taskModels.Delete(c.UserContext(), userFrom(c), id); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
