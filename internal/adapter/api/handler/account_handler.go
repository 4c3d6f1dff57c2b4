package handler

import (
	"localmart/internal/domain/entity"
	"localmart/internal/usecase"
	"localmart/pkg/response"

	"github.com/labstack/echo/v4"
)

type AccountHandler struct {
	accountUseCase *usecase.AccountUseCase
}

func NewAccountHandler(accountUseCase *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
	}
}

type registerRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"required,oneof=buyer seller admin"`
}

func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	account, err := h.accountUseCase.Register(c.Request().Context(), uid, usecase.RegisterInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Role:        entity.Role(req.Role),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, account)
}

func (h *AccountHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	account, err := h.accountUseCase.Resolve(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, account)
}

type updateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email" validate:"omitempty,email"`
}

func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	account, err := h.accountUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, account)
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=buyer seller admin"`
}

func (h *AccountHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	accountID := c.Param("id")

	account, err := h.accountUseCase.ChangeRole(c.Request().Context(), uid, accountID, entity.Role(req.Role))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, account)
}
