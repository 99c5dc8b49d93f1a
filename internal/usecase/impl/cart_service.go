package impl

import (
	"context"
	"log/slog"
	"time"

	"lumera/internal/domain/entity"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/domain/repository"
	"lumera/internal/errors"
	"lumera/internal/usecase"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart returns the user's cart items and total.
func (s *cartService) GetCart(ctx context.Context, uid string) (*usecase.CartOutput, error) {
	items, err := s.cartRepo.ListItems(ctx, uid)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &usecase.CartOutput{
		Items: items,
		Total: entity.CartTotal(items),
	}, nil
}

// AddProduct snapshots the product into the cart. The document is keyed by
// product ID, so re-adding overwrites instead of duplicating.
func (s *cartService) AddProduct(ctx context.Context, uid, productID string, quantity int) (*usecase.CartOutput, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.WithStack(err)
	}

	if quantity <= 0 {
		quantity = 1
	}

	item := &entity.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.PrimaryImage(),
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	}

	if err := s.cartRepo.PutItem(ctx, uid, item); err != nil {
		return nil, errors.WithStack(err)
	}

	return s.GetCart(ctx, uid)
}

// RemoveProduct deletes the cart entry. Removing an absent product is a
// no-op, matching the idempotent keying.
func (s *cartService) RemoveProduct(ctx context.Context, uid, productID string) (*usecase.CartOutput, error) {
	if err := s.cartRepo.RemoveItem(ctx, uid, productID); err != nil {
		return nil, errors.WithStack(err)
	}

	return s.GetCart(ctx, uid)
}
