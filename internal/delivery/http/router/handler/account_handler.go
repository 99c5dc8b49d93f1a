package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "lumera/internal/delivery/context"
	"lumera/internal/delivery/http/response"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for the profile handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, logger: logger}
}

// GetAccount serves the profile overview.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrLoginRequired
	}

	account, err := h.uc.GetAccount(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "")
}

// ListOrders serves the caller's full order history.
func (h *AccountHandler) ListOrders(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrLoginRequired
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), identity.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}
