package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/cliptrim/api/internal/model"
	"github.com/cliptrim/api/internal/service"
	"github.com/cliptrim/api/internal/storage"
	"github.com/cliptrim/api/pkg/response"
)

// Version reported by the status endpoint.
const Version = "3.0 - Self-hosted with auto-cleanup"

type StatusHandler struct {
	store   *storage.Store
	cleanup *service.CleanupService
}

func NewStatusHandler(store *storage.Store, cleanup *service.CleanupService) *StatusHandler {
	return &StatusHandler{
		store:   store,
		cleanup: cleanup,
	}
}

// Root handles GET /
// @Summary      Service status
// @Description  Static service description: version, storage backend, cleanup policy
// @Tags         Status
// @Produce      json
// @Success      200 {object} model.StatusResponse
// @Router       / [get]
func (h *StatusHandler) Root(c *fiber.Ctx) error {
	return response.OK(c, model.StatusResponse{
		Status:  "Video trim service running",
		Version: Version,
		Storage: "Local filesystem",
		Cleanup: fmt.Sprintf("%s, deletes videos older than %s", h.cleanup.Schedule(), h.cleanup.Retention()),
	})
}

// Health handles GET /health
// @Summary      Health check
// @Description  Current stored-file count and cleanup configuration
// @Tags         Status
// @Produce      json
// @Success      200 {object} model.HealthResponse
// @Router       /health [get]
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	count, err := h.store.Count()
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, model.HealthResponse{
		Status:          "healthy",
		VideosStored:    count,
		CleanupSchedule: h.cleanup.Schedule(),
		Retention:       h.cleanup.Retention(),
	})
}

// Cleanup handles GET /cleanup
// @Summary      Trigger cleanup
// @Description  Run one retention sweep immediately
// @Tags         Status
// @Produce      json
// @Success      200 {object} model.CleanupResponse
// @Router       /cleanup [get]
func (h *StatusHandler) Cleanup(c *fiber.Ctx) error {
	h.cleanup.Sweep()

	remaining, err := h.store.Count()
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, model.CleanupResponse{
		Message:         "Cleanup triggered",
		VideosRemaining: remaining,
	})
}
