package handler

import (
	"strconv"

	"localmart/internal/domain/entity"
	"localmart/internal/usecase"
	"localmart/pkg/errors"
	"localmart/pkg/response"
	"localmart/pkg/utils"

	"github.com/labstack/echo/v4"
)

type DiscoveryHandler struct {
	discoveryUseCase *usecase.DiscoveryUseCase
}

func NewDiscoveryHandler(discoveryUseCase *usecase.DiscoveryUseCase) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
	}
}

// viewerUID is empty for anonymous callers; OptionalAuthenticate sets it
// when a valid token was sent.
func viewerUID(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

func (h *DiscoveryHandler) FindShops(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("lat must be a number", err))
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("lon must be a number", err))
	}
	radius, err := strconv.ParseFloat(c.QueryParam("radius"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("radius must be a number", err))
	}

	pagination := utils.GetPaginationParams(c)

	shops, total, err := h.discoveryUseCase.FindShops(c.Request().Context(), viewerUID(c), lat, lon, radius, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, shops, total, pagination.Page, pagination.PageSize)
}

func (h *DiscoveryHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("q")
	category := entity.Category(c.QueryParam("category"))

	var shopIDs []string
	if bound := c.QueryParams()["shop_id"]; len(bound) > 0 {
		shopIDs = bound
	}

	pagination := utils.GetPaginationParams(c)

	products, total, err := h.discoveryUseCase.SearchProducts(c.Request().Context(), viewerUID(c), query, category, shopIDs, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}
