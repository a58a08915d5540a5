package server

import (
	"github.com/gofiber/fiber/v2"

	"task-planner/internal/model"
	"task-planner/internal/service"
)

type mealRequest struct {
	Type        model.MealType `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
}

type mealResponse struct {
	ID          uint           `json:"id"`
	Type        model.MealType `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
}

func toMealResponse(m *model.Meal) mealResponse {
	return mealResponse{ID: m.ID, Type: m.Type, Name: m.Name, Description: m.Description}
}

func (s *Server) createMeal(c *fiber.Ctx) error {
	var req mealRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	meal, err := s.meals.Create(c.UserContext(), userFrom(c), service.MealInput{
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMealResponse(meal))
}

func (s *Server) listMeals(c *fiber.Ctx) error {
	meals, err := s.meals.List(c.UserContext(), userFrom(c))
	if err != nil {
		return s.fail(c, err)
	}
	resp := make([]mealResponse, 0, len(meals))
	for i := range meals {
		resp = append(resp, toMealResponse(&meals[i]))
	}
	return c.JSON(fiber.Map{"meals": resp})
}

func (s *Server) updateMeal(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	var req mealRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	meal, err := s.meals.Update(c.UserContext(), userFrom(c), id, service.MealInput{
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(toMealResponse(meal))
}

func (s *Server) deleteMeal(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badBody(c)
	}
	if err := s.meals.Delete(c.UserContext(), userFrom(c), id); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
