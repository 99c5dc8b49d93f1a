package impl

import (
	"context"
	"io"
	"log/slog"

	"lumera/config"
	deliverycontext "lumera/internal/delivery/context"
	"lumera/internal/domain/entity"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/domain/repository"
	"lumera/internal/domain/service"
	"lumera/internal/errors"
	"lumera/internal/usecase"

	"github.com/spf13/cast"
)

type adminService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	contentRepo  repository.ContentRepository
	userRepo     repository.UserRepository
	uploader     service.MediaUploader
	publisher    service.EventPublisher
	importRating float64
	logger       *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	contentRepo repository.ContentRepository,
	userRepo repository.UserRepository,
	uploader service.MediaUploader,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		contentRepo:  contentRepo,
		userRepo:     userRepo,
		uploader:     uploader,
		publisher:    publisher,
		importRating: cfg.Catalog.ImportRating,
		logger:       logger,
	}
}

// CreateProduct persists a new product and returns it with its assigned ID.
func (s *adminService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)

	id, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, domainerrors.ErrProductSaveFailed.WrapMessage(err.Error())
	}
	product.ID = id

	s.publish(ctx, &service.CatalogEvent{
		Type:      service.EventProductCreated,
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
	})

	return product, nil
}

// UpdateProduct replaces an existing product document.
func (s *adminService) UpdateProduct(ctx context.Context, id string, input usecase.ProductInput) (*entity.Product, error) {
	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.WithStack(err)
	}

	product := productFromInput(input)
	product.ID = id
	// The form never carries the creation timestamp; a zero value would be
	// rewritten to the edit time by the server-timestamp tag.
	product.CreatedAt = existing.CreatedAt

	// Images are replaced only when the edit supplies new ones.
	if len(input.Images) == 0 {
		product.Images = existing.Images
		if input.Image == "" {
			product.Image = existing.Image
		}
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, domainerrors.ErrProductSaveFailed.WrapMessage(err.Error())
	}

	s.publish(ctx, &service.CatalogEvent{
		Type:      service.EventProductUpdated,
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
	})

	return product, nil
}

// DeleteProduct removes a product.
func (s *adminService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.WithStack(err)
	}

	s.publish(ctx, &service.CatalogEvent{
		Type:      service.EventProductDeleted,
		ProductID: id,
	})

	return nil
}

// ImportProducts creates one product per usable CSV row. Creates run
// sequentially; the first store error aborts the run and rows already
// written stay written.
func (s *adminService) ImportProducts(ctx context.Context, csv io.Reader, defaultCategory string) (*usecase.ImportReport, error) {
	data, err := io.ReadAll(csv)
	if err != nil {
		return nil, domainerrors.ErrImportFailed.WrapMessage(err.Error())
	}

	rows := parseCatalogCSV(string(data))
	report := &usecase.ImportReport{Products: []string{}}

	for _, row := range rows {
		product, ok := productFromImportRow(row, defaultCategory, s.importRating)
		if !ok {
			report.Skipped++
			continue
		}

		if _, err := s.productRepo.Create(ctx, product); err != nil {
			logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
			logger.Error("bulk import aborted",
				slog.Int("created", report.Created),
				slog.String("product", product.Name),
				slog.Any("error", err),
			)

			return nil, domainerrors.ErrImportFailed.WrapMessage(err.Error())
		}

		report.Created++
		report.Products = append(report.Products, product.Name)
	}

	if report.Created > 0 {
		s.publish(ctx, &service.CatalogEvent{
			Type:  service.EventCatalogImported,
			Count: report.Created,
		})
	}

	return report, nil
}

// CreateCategory persists a new collection tile. The form submits order as
// free text; anything unparseable lands at zero.
func (s *adminService) CreateCategory(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Image:    input.Image,
		Order:    cast.ToInt(input.Order),
	}

	id, err := s.categoryRepo.Create(ctx, category)
	if err != nil {
		return nil, domainerrors.ErrCategorySaveFailed.WrapMessage(err.Error())
	}
	category.ID = id

	s.publish(ctx, &service.CatalogEvent{
		Type: service.EventCategoryCreated,
		Name: category.Title,
	})

	return category, nil
}

// DeleteCategory removes a collection tile.
func (s *adminService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	s.publish(ctx, &service.CatalogEvent{
		Type: service.EventCategoryDeleted,
	})

	return nil
}

// SaveHomeContent merge-writes the homepage content overrides.
func (s *adminService) SaveHomeContent(ctx context.Context, content *entity.HomeContent) error {
	if err := s.contentRepo.SaveHome(ctx, content); err != nil {
		return domainerrors.ErrContentSaveFailed.WrapMessage(err.Error())
	}

	return nil
}

// UploadMedia hands a file to the media host and returns its public URL.
func (s *adminService) UploadMedia(ctx context.Context, file service.UploadFile) (string, error) {
	url, err := s.uploader.Upload(ctx, file)
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Error("media upload failed",
			slog.String("file", file.Name),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrUploadFailed
	}

	return url, nil
}

// ListUsers returns every registered user, newest first.
func (s *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return users, nil
}

// publish announces a catalog mutation. Publish failures are logged and
// swallowed; the console operation already succeeded.
func (s *adminService) publish(ctx context.Context, event *service.CatalogEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishCatalogEvent(ctx, event); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Warn("catalog event publish failed",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}

// productFromInput maps a console form submission onto a product entity.
func productFromInput(input usecase.ProductInput) *entity.Product {
	stockStatus := input.StockStatus
	if stockStatus == "" {
		stockStatus = entity.StockStatusInStock
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	return &entity.Product{
		Name:          input.Name,
		Category:      input.Category,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Discount:      input.Discount,
		StockStatus:   stockStatus,
		SuitableFor:   input.SuitableFor,
		Rating:        input.Rating,
		NetQuantity:   input.NetQuantity,
		Ingredients:   input.Ingredients,
		HowToUse:      input.HowToUse,
		Image:         input.Image,
		Images:        images,
	}
}
