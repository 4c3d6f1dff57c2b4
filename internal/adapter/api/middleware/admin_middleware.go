package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
)

// AdminMiddleware is a coarse route gate for the admin dashboard surface.
// The fine-grained check still runs in the authorization guard; this just
// keeps non-admins from reaching admin handlers at all.
type AdminMiddleware struct {
	accountRepo repository.AccountRepository
}

func NewAdminMiddleware(accountRepo repository.AccountRepository) *AdminMiddleware {
	return &AdminMiddleware{
		accountRepo: accountRepo,
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		account, err := m.accountRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		if account.Role != entity.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
