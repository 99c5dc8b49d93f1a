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

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// NewWishlistService creates a new wishlist service instance
func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// GetWishlist returns the user's saved items.
func (s *wishlistService) GetWishlist(ctx context.Context, uid string) ([]*entity.WishlistItem, error) {
	items, err := s.wishlistRepo.ListItems(ctx, uid)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return items, nil
}

// AddProduct snapshots the product into the wishlist.
func (s *wishlistService) AddProduct(ctx context.Context, uid, productID string) ([]*entity.WishlistItem, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.WithStack(err)
	}

	item := &entity.WishlistItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.PrimaryImage(),
		AddedAt:   time.Now().UTC(),
	}

	if err := s.wishlistRepo.PutItem(ctx, uid, item); err != nil {
		return nil, errors.WithStack(err)
	}

	return s.GetWishlist(ctx, uid)
}

// RemoveProduct deletes the wishlist entry for the product.
func (s *wishlistService) RemoveProduct(ctx context.Context, uid, productID string) ([]*entity.WishlistItem, error) {
	if err := s.wishlistRepo.RemoveItem(ctx, uid, productID); err != nil {
		return nil, errors.WithStack(err)
	}

	return s.GetWishlist(ctx, uid)
}

// MoveToCart promotes a saved item into the cart using the wishlist snapshot,
// not a fresh product read, so a delisted product can still be moved. The
// cart write lands before the wishlist delete; a failure in between leaves
// the item in both places rather than in neither.
func (s *wishlistService) MoveToCart(ctx context.Context, uid, productID string) error {
	items, err := s.wishlistRepo.ListItems(ctx, uid)
	if err != nil {
		return errors.WithStack(err)
	}

	var saved *entity.WishlistItem
	for _, item := range items {
		if item.ProductID == productID {
			saved = item
			break
		}
	}
	if saved == nil {
		return domainerrors.ErrProductNotFound
	}

	cartItem := &entity.CartItem{
		ProductID: saved.ProductID,
		Name:      saved.Name,
		Price:     saved.Price,
		Image:     saved.Image,
		Quantity:  1,
		AddedAt:   time.Now().UTC(),
	}

	if err := s.cartRepo.PutItem(ctx, uid, cartItem); err != nil {
		return errors.WithStack(err)
	}

	if err := s.wishlistRepo.RemoveItem(ctx, uid, productID); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
