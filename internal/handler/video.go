package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cliptrim/api/internal/storage"
	"github.com/cliptrim/api/pkg/response"
)

type VideoHandler struct {
	store *storage.Store
}

func NewVideoHandler(store *storage.Store) *VideoHandler {
	return &VideoHandler{store: store}
}

// Serve handles GET /video/:filename
// @Summary      Retrieve a stored video
// @Description  Stream a previously trimmed video by filename
// @Tags         Video
// @Produce      video/mp4
// @Param        filename path string true "Stored video filename"
// @Success      200 {file} binary
// @Failure      404 {object} response.ErrorResponse
// @Router       /video/{filename} [get]
func (h *VideoHandler) Serve(c *fiber.Ctx) error {
	name := c.Params("filename")

	// Path rejects traversal attempts, Stat rejects anything that is not a
	// stored regular file; both look like a missing video to the client.
	path, err := h.store.Path(name)
	if err != nil {
		return response.NotFound(c, "Video not found")
	}
	if _, err := h.store.Stat(name); err != nil {
		return response.NotFound(c, "Video not found")
	}

	c.Set(fiber.HeaderContentType, "video/mp4")
	return c.SendFile(path)
}
