package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/formforge/backend/api/http/presenter"
	"github.com/formforge/backend/pkg/user"
)

type UserHandler struct {
	uc user.UseCase
}

func NewUserHandler(uc user.UseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Create persists a new user record.
// @Summary Create user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body createUserRequest true "user payload"
// @Success 200 {object} presenter.DataResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /user [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	// An absent or malformed body falls through to the presence checks.
	_ = c.BodyParser(&req)

	u, err := h.uc.Create(c.Context(), req.Username, req.Email)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.Data(c, http.StatusOK, u)
}

// List returns all user records.
// @Summary List users
// @Tags    users
// @Produce json
// @Success 200 {object} presenter.DataResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List(c.Context())
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.Data(c, http.StatusOK, users)
}
