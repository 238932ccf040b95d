package server

import (
	"trailpost/internal/middleware"
	"trailpost/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCamping handles POST /api/camping
func (s *Server) CreateCamping(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title  string   `json:"title"`
		Review string   `json:"review"`
		Tags   []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" || req.Review == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and review are required"))
	}

	camping := &models.Camping{
		Title:  req.Title,
		Review: req.Review,
		UserID: userID,
	}

	if err := s.campingRepo.Create(ctx, camping); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	if len(req.Tags) > 0 {
		if err := s.campingRepo.ReplaceTags(ctx, camping, req.Tags); err != nil {
			return models.RespondWithError(c, errorStatus(err), err)
		}
	}

	camping, err := s.campingRepo.GetByID(ctx, camping.ID, userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	middleware.EntriesCreated.WithLabelValues("camping").Inc()

	return c.Status(fiber.StatusCreated).JSON(camping)
}

// GetCampings handles GET /api/camping, returning the caller's entries in
// insertion order.
func (s *Server) GetCampings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	campings, err := s.campingRepo.List(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(campings)
}

// GetCamping handles GET /api/camping/:id
func (s *Server) GetCamping(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	camping, err := s.campingRepo.GetByID(c.Context(), id, userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(camping)
}

// UpdateCamping handles PUT /api/camping/:id (full update)
func (s *Server) UpdateCamping(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title  string    `json:"title"`
		Review string    `json:"review"`
		Tags   *[]string `json:"tags"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" || req.Review == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and review are required"))
	}

	camping, err := s.campingRepo.GetByID(ctx, id, userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	camping.Title = req.Title
	camping.Review = req.Review

	if err := s.campingRepo.Update(ctx, camping); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	if req.Tags != nil {
		if err := s.campingRepo.ReplaceTags(ctx, camping, *req.Tags); err != nil {
			return models.RespondWithError(c, errorStatus(err), err)
		}
	}

	return c.JSON(camping)
}

// PatchCamping handles PATCH /api/camping/:id (partial update)
func (s *Server) PatchCamping(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title  *string   `json:"title"`
		Review *string   `json:"review"`
		Tags   *[]string `json:"tags"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title != nil && *req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title may not be blank"))
	}

	camping, err := s.campingRepo.GetByID(ctx, id, userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	if req.Title != nil {
		camping.Title = *req.Title
	}
	if req.Review != nil {
		camping.Review = *req.Review
	}

	if err := s.campingRepo.Update(ctx, camping); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	if req.Tags != nil {
		if err := s.campingRepo.ReplaceTags(ctx, camping, *req.Tags); err != nil {
			return models.RespondWithError(c, errorStatus(err), err)
		}
	}

	return c.JSON(camping)
}

// DeleteCamping handles DELETE /api/camping/:id
func (s *Server) DeleteCamping(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.campingRepo.Delete(c.Context(), id, userID); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
