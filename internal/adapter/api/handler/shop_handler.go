package handler

import (
	"localmart/internal/usecase"
	"localmart/pkg/response"
	"localmart/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ShopHandler struct {
	shopUseCase *usecase.ShopUseCase
}

func NewShopHandler(shopUseCase *usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{
		shopUseCase: shopUseCase,
	}
}

type createShopRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Contact     string  `json:"contact" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"latitude"`
	Longitude   float64 `json:"longitude" validate:"longitude"`
	Address     string  `json:"address" validate:"required"`
}

func (h *ShopHandler) CreateShop(c echo.Context) error {
	var req createShopRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	shop, err := h.shopUseCase.CreateShop(c.Request().Context(), uid, usecase.CreateShopInput{
		Name:        req.Name,
		Description: req.Description,
		Contact:     req.Contact,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, shop)
}

type updateShopRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Contact     string   `json:"contact"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     string   `json:"address"`
}

func (h *ShopHandler) UpdateShop(c echo.Context) error {
	var req updateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	shopID := c.Param("id")

	shop, err := h.shopUseCase.UpdateShopDetails(c.Request().Context(), uid, shopID, usecase.UpdateShopInput{
		Name:        req.Name,
		Description: req.Description,
		Contact:     req.Contact,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shop)
}

func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, err := h.shopUseCase.GetShop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shop)
}

func (h *ShopHandler) ListMyShops(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	shops, total, err := h.shopUseCase.ListMyShops(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, shops, total, pagination.Page, pagination.PageSize)
}

func (h *ShopHandler) DeleteShop(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.shopUseCase.DeleteShop(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
