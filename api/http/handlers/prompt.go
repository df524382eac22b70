package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/formforge/backend/api/http/presenter"
	"github.com/formforge/backend/pkg/formschema"
)

type PromptHandler struct {
	uc formschema.UseCase
}

func NewPromptHandler(uc formschema.UseCase) *PromptHandler {
	return &PromptHandler{uc: uc}
}

type promptRequest struct {
	Text string `json:"text"`
}

// Generate turns a free-text form description into a field-definition schema.
// @Summary Generate a form schema from a text description
// @Tags    prompt
// @Accept  json
// @Produce json
// @Param   input body promptRequest true "form description"
// @Success 200 {object} presenter.DataResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /prompt [post]
func (h *PromptHandler) Generate(c *fiber.Ctx) error {
	var req promptRequest
	// An absent or malformed body behaves like an empty text parameter.
	_ = c.BodyParser(&req)

	data, err := h.uc.Generate(c.Context(), req.Text)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.Data(c, http.StatusOK, data)
}
