package server

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"task-planner/internal/calendar"
	"task-planner/internal/model"
	"task-planner/internal/service"
)

type taskResponse struct {
	ID          uint             `json:"id"`
	TaskModelID *uint            `json:"task_model_id,omitempty"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Status      model.TaskStatus `json:"status"`
	DueAt       string           `json:"due_at"`
	Comment     string           `json:"comment,omitempty"`
}

func toTaskResponse(t *model.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		TaskModelID: t.TaskModelID,
		Name:        t.DisplayName(),
		Description: t.DisplayDescription(),
		Status:      t.Status,
		DueAt:       formatDay(t.DueAt),
		Comment:     t.Comment,
	}
}

type dayBoardResponse struct {
	Day   string         `json:"day"`
	Tasks []taskResponse `json:"tasks"`
}

// listDayBoards renders the user's tasks grouped per day over a range; the
// range defaults to the current week starting today.
func (s *Server) listDayBoards(c *fiber.Ctx) error {
	user := userFrom(c)

	from := calendar.DateOf(timeNow())
	to := from.AddDate(0, 0, 6)
	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDay("from", raw)
		if err != nil {
			return s.fail(c, err)
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDay("to", raw)
		if err != nil {
			return s.fail(c, err)
		}
		to = parsed
	}

	boards, err := s.tasks.DayBoards(c.UserContext(), user, from, to)
	if err != nil {
		return s.fail(c, err)
	}

	resp := make([]dayBoardResponse, 0, len(boards))
	for _, board := range boards {
		day := dayBoardResponse{Day: formatDay(board.Day), Tasks: []taskResponse{}}
		for i := range board.Tasks {
			day.Tasks = append(day.Tasks, toTaskResponse(&board.Tasks[i]))
		}
		resp = append(resp, day)
	}
	return c.JSON(fiber.Map{"days": resp})
}

func (s *Server) createStandaloneTask(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		DueAt       string `json:"due_at"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	dueAt, err := parseDay("due_at", req.DueAt)
	if err != nil {
		return s.fail(c, err)
	}
	task, err := s.tasks.CreateStandalone(c.UserContext(), userFrom(c), service.StandaloneTaskInput{
		Name:        req.Name,
		Description: req.Description,
		DueAt:       dueAt,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTaskResponse(task))
}

func (s *Server) getTask(c *fiber.Ctx) error {
	return s.transitionTask(c, s.tasks.Get)
}

func (s *Server) startTask(c *fiber.Ctx) error {
	return s.transitionTask(c, s.tasks.Start)
}

func (s *Server) completeTask(c *fiber.Ctx) error {
	return s.transitionTask(c, s.tasks.Complete)
}

func (s *Server) cancelTask(c *fiber.Ctx) error {
	return s.transitionTask(c, s.tasks.Cancel)
}

func (s *Server) transitionTask(c *fiber.Ctx, action func(ctx context.Context, user *model.User, taskID uint) (*model.Task, error)) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	task, err := action(c.UserContext(), userFrom(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(toTaskResponse(task))
}

func (s *Server) reprogramTask(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	var req struct {
		DueAt string `json:"due_at"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	dueAt, err := parseDay("due_at", req.DueAt)
	if err != nil {
		return s.fail(c, err)
	}
	task, err := s.tasks.Reprogram(c.UserContext(), userFrom(c), id, dueAt)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(toTaskResponse(task))
}

func (s *Server) commentTask(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	task, err := s.tasks.Comment(c.UserContext(), userFrom(c), id, req.Comment)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(toTaskResponse(task))
}

func (s *Server) deleteTask(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	if err := s.tasks.Delete(c.UserContext(), userFrom(c), id); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
