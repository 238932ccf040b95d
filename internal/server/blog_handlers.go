package server

import (
	"trailpost/internal/middleware"
	"trailpost/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateBlog handles POST /api/blog
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title   string   `json:"title"`
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Validate required fields
	if req.Title == "" || req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and content are required"))
	}

	// Owner is always the authenticated user; any owner/user field in the
	// payload is ignored.
	blog := &models.Blog{
		Title:   req.Title,
		Content: req.Content,
		UserID:  userID,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	if len(req.Tags) > 0 {
		if err := s.blogRepo.ReplaceTags(ctx, blog, req.Tags); err != nil {
			return models.RespondWithError(c, errorStatus(err), err)
		}
	}

	// Reload so the response carries the owner and tags
	blog, err := s.blogRepo.GetByID(ctx, blog.ID, userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	middleware.EntriesCreated.WithLabelValues("blog").Inc()

	return c.Status(fiber.StatusCreated).JSON(blog)
}

// GetBlogs handles GET /api/blog, returning the caller's entries ordered
// by most recent update.
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	blogs, err := s.blogRepo.List(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(blogs)
}

// GetBlog handles GET /api/blog/:id
func (s *Server) GetBlog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	blog, err := s.blogRepo.GetByID(c.Context(), id, userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(blog)
}

// UpdateBlog handles PUT /api/blog/:id (full update)
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title   string    `json:"title"`
		Content string    `json:"content"`
		Tags    *[]string `json:"tags"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// A full update must carry the full field set
	if req.Title == "" || req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and content are required"))
	}

	blog, err := s.blogRepo.GetByID(ctx, id, userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	blog.Title = req.Title
	blog.Content = req.Content

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	if req.Tags != nil {
		if err := s.blogRepo.ReplaceTags(ctx, blog, *req.Tags); err != nil {
			return models.RespondWithError(c, errorStatus(err), err)
		}
	}

	return c.JSON(blog)
}

// PatchBlog handles PATCH /api/blog/:id (partial update); fields absent
// from the payload are left untouched.
func (s *Server) PatchBlog(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title   *string   `json:"title"`
		Content *string   `json:"content"`
		Tags    *[]string `json:"tags"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title != nil && *req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title may not be blank"))
	}

	blog, err := s.blogRepo.GetByID(ctx, id, userID)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	if req.Tags != nil {
		if err := s.blogRepo.ReplaceTags(ctx, blog, *req.Tags); err != nil {
			return models.RespondWithError(c, errorStatus(err), err)
		}
	}

	return c.JSON(blog)
}

// DeleteBlog handles DELETE /api/blog/:id. Deletion is immediate and does
// not cascade into tags shared with other entries.
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.blogRepo.Delete(c.Context(), id, userID); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
