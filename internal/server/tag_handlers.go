package server

import (
	"trailpost/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Tag handlers cover the listing and maintenance surface for both tag
// namespaces. Tags are created implicitly when entries reference them;
// there is no direct create endpoint.

// GetBlogTags handles GET /api/blog/tags
func (s *Server) GetBlogTags(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	tags, err := s.blogTagRepo.List(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(tags)
}

// UpdateBlogTag handles PUT /api/blog/tags/:id; the slug is re-derived
// from the new name and cannot be supplied by the caller.
func (s *Server) UpdateBlogTag(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Name string `json:"name"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}

	tag, err := s.blogTagRepo.GetByID(ctx, id, userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	tag.Name = req.Name
	if err := s.blogTagRepo.Save(ctx, tag); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(tag)
}

// PatchBlogTag handles PATCH /api/blog/tags/:id
func (s *Server) PatchBlogTag(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Name *string `json:"name"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name != nil && *req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name may not be blank"))
	}

	tag, err := s.blogTagRepo.GetByID(ctx, id, userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	if err := s.blogTagRepo.Save(ctx, tag); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(tag)
}

// DeleteBlogTag handles DELETE /api/blog/tags/:id
func (s *Server) DeleteBlogTag(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.blogTagRepo.Delete(c.Context(), id, userID); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetCampingTags handles GET /api/camping/tags
func (s *Server) GetCampingTags(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	tags, err := s.campingTagRepo.List(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(tags)
}

// UpdateCampingTag handles PUT /api/camping/tags/:id
func (s *Server) UpdateCampingTag(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Name string `json:"name"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}

	tag, err := s.campingTagRepo.GetByID(ctx, id, userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	tag.Name = req.Name
	if err := s.campingTagRepo.Save(ctx, tag); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(tag)
}

// PatchCampingTag handles PATCH /api/camping/tags/:id
func (s *Server) PatchCampingTag(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Name *string `json:"name"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name != nil && *req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name may not be blank"))
	}

	tag, err := s.campingTagRepo.GetByID(ctx, id, userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	if err := s.campingTagRepo.Save(ctx, tag); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(tag)
}

// DeleteCampingTag handles DELETE /api/camping/tags/:id
func (s *Server) DeleteCampingTag(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.campingTagRepo.Delete(c.Context(), id, userID); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
