package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"task-planner/internal/repository"
	"task-planner/internal/service"
)

// Server exposes the planner services over HTTP. Authentication lives in
// front of this API; requests arrive with the acting user's identifier in the
// X-User-ID header and the server only resolves it against the users table.
type Server struct {
	app *fiber.App
	log *slog.Logger

	users       *repository.UserRepository
	taskModels  *service.TaskModelService
	tasks       *service.TaskService
	entries     *service.EntryService
	meals       *service.MealService
	motivations *service.MotivationService
}

func New(
	log *slog.Logger,
	users *repository.UserRepository,
	taskModels *service.TaskModelService,
	tasks *service.TaskService,
	entries *service.EntryService,
	meals *service.MealService,
	motivations *service.MotivationService,
) *Server {
	s := &Server{
		log:         log,
		users:       users,
		taskModels:  taskModels,
		tasks:       tasks,
		entries:     entries,
		meals:       meals,
		motivations: motivations,
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "task-planner",
		DisableStartupMessage: true,
	})
	s.routes()
	return s
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) routes() {
	api := s.app.Group("/api/v1")

	api.Post("/users", s.registerUser)

	authed := api.Group("", s.resolveUser)

	models := authed.Group("/task-models")
	models.Post("/", s.createTaskModel)
	models.Get("/", s.listTaskModels)
	models.Get("/:id", s.getTaskModel)
	models.Put("/:id", s.updateTaskModel)
	models.Post("/:id/stop", s.stopTaskModel)
	models.Delete("/:id", s.deleteTaskModel)

	tasks := authed.Group("/tasks")
	tasks.Get("/", s.listDayBoards)
	tasks.Post("/", s.createStandaloneTask)
	tasks.Get("/:id", s.getTask)
	tasks.Post("/:id/start", s.startTask)
	tasks.Post("/:id/complete", s.completeTask)
	tasks.Post("/:id/cancel", s.cancelTask)
	tasks.Put("/:id/due-date", s.reprogramTask)
	tasks.Put("/:id/comment", s.commentTask)
	tasks.Delete("/:id", s.deleteTask)

	entries := authed.Group("/entries")
	entries.Post("/", s.createEntry)
	entries.Get("/", s.listEntries)
	entries.Put("/:id", s.updateEntry)
	entries.Delete("/:id", s.deleteEntry)

	meals := authed.Group("/meals")
	meals.Post("/", s.createMeal)
	meals.Get("/", s.listMeals)
	meals.Put("/:id", s.updateMeal)
	meals.Delete("/:id", s.deleteMeal)

	motivations := authed.Group("/motivations")
	motivations.Post("/", s.createMotivation)
	motivations.Get("/", s.listMotivations)
	motivations.Delete("/:id", s.deleteMotivation)
}
