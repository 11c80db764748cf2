package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/cliptrim/api/internal/client"
	"github.com/cliptrim/api/internal/model"
	"github.com/cliptrim/api/internal/service"
	"github.com/cliptrim/api/internal/transcoder"
	"github.com/cliptrim/api/pkg/response"
)

type TrimHandler struct {
	service   *service.TrimService
	validator *validator.Validate
}

func NewTrimHandler(svc *service.TrimService, v *validator.Validate) *TrimHandler {
	return &TrimHandler{
		service:   svc,
		validator: v,
	}
}

// Trim handles POST /trim
// @Summary      Trim a video
// @Description  Download a source video, trim it to the requested range with a fade-out, and host the result
// @Tags         Trim
// @Accept       json
// @Produce      json
// @Param        request body model.TrimRequest true "Trim request"
// @Success      200 {object} model.TrimResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /trim [post]
func (h *TrimHandler) Trim(c *fiber.Ctx) error {
	var req model.TrimRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	params := req.Params()
	if err := params.Validate(); err != nil {
		return response.ValidationError(c, err.Error(), nil)
	}

	result, err := h.service.Trim(c.Context(), params)
	if err != nil {
		var fetchErr *client.FetchError
		var transcodeErr *transcoder.TranscodeError
		switch {
		case errors.As(err, &fetchErr):
			return response.FetchError(c, err.Error())
		case errors.As(err, &transcodeErr):
			return response.TranscodeError(c, err.Error())
		default:
			return response.ServiceError(c, err.Error())
		}
	}

	return response.OK(c, result)
}

func formatValidationErrors(err error) interface{} {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string)
		for _, e := range validationErrors {
			fields[e.Field()] = e.Tag()
		}
		return fields
	}
	return nil
}
