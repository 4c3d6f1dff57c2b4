package handler

import (
	"localmart/internal/domain/entity"
	"localmart/internal/usecase"
	"localmart/pkg/response"
	"localmart/pkg/utils"

	"github.com/labstack/echo/v4"
)

type VerificationHandler struct {
	verificationUseCase *usecase.VerificationUseCase
}

func NewVerificationHandler(verificationUseCase *usecase.VerificationUseCase) *VerificationHandler {
	return &VerificationHandler{
		verificationUseCase: verificationUseCase,
	}
}

type submitVerificationRequest struct {
	BusinessName string   `json:"business_name" validate:"required"`
	Address      string   `json:"address" validate:"required"`
	DocumentURLs []string `json:"document_urls" validate:"dive,url"`
}

func (h *VerificationHandler) SubmitForReview(c echo.Context) error {
	var req submitVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	shopID := c.Param("id")

	request, err := h.verificationUseCase.SubmitForReview(c.Request().Context(), uid, shopID, usecase.SubmitVerificationInput{
		BusinessName: req.BusinessName,
		Address:      req.Address,
		DocumentURLs: req.DocumentURLs,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *VerificationHandler) GetShopStatus(c echo.Context) error {
	uid := c.Get("uid").(string)
	shopID := c.Param("id")

	request, err := h.verificationUseCase.GetShopStatus(c.Request().Context(), uid, shopID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

type decideRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

func (h *VerificationHandler) Decide(c echo.Context) error {
	var req decideRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	shopID := c.Param("id")

	request, err := h.verificationUseCase.Decide(c.Request().Context(), uid, shopID, entity.Decision(req.Decision))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *VerificationHandler) ListPending(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	requests, total, err := h.verificationUseCase.ListPending(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, pagination.Page, pagination.PageSize)
}
