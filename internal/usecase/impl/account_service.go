package impl

import (
	"context"
	"log/slog"

	deliverycontext "lumera/internal/delivery/context"
	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/internal/errors"
	"lumera/internal/usecase"
)

// recentOrdersLimit caps the order preview on the account page.
const recentOrdersLimit = 3

type accountService struct {
	userRepo     repository.UserRepository
	cartRepo     repository.CartRepository
	wishlistRepo repository.WishlistRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	wishlistRepo repository.WishlistRepository,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		userRepo:     userRepo,
		cartRepo:     cartRepo,
		wishlistRepo: wishlistRepo,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

// GetAccount assembles the profile overview. Count reads degrade to zero
// rather than failing the whole page.
func (s *accountService) GetAccount(ctx context.Context, identity *entity.Identity) (*usecase.AccountOutput, error) {
	user, err := s.userRepo.FindByID(ctx, identity.UID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(err)
		}

		// Account predates the record layout; heal it now.
		user = &entity.User{ID: identity.UID, Email: identity.Email}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	cartItems, err := s.cartRepo.ListItems(ctx, identity.UID)
	if err != nil {
		logger.Error("cart count unavailable", slog.Any("error", err))
		cartItems = nil
	}

	wishlistItems, err := s.wishlistRepo.ListItems(ctx, identity.UID)
	if err != nil {
		logger.Error("wishlist count unavailable", slog.Any("error", err))
		wishlistItems = nil
	}

	orders, err := s.orderRepo.ListRecent(ctx, identity.UID, 0)
	if err != nil {
		logger.Error("order history unavailable", slog.Any("error", err))
		orders = nil
	}

	recent := orders
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}

	return &usecase.AccountOutput{
		User:          user,
		CartCount:     len(cartItems),
		WishlistCount: len(wishlistItems),
		OrderCount:    len(orders),
		RecentOrders:  recent,
	}, nil
}

// ListOrders returns the user's full order history, newest first.
func (s *accountService) ListOrders(ctx context.Context, uid string) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListRecent(ctx, uid, 0)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return orders, nil
}
