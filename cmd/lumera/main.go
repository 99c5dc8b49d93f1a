package main

import (
	"context"
	"log/slog"
	"os"

	"lumera/config"
	"lumera/internal/delivery"
	"lumera/internal/delivery/http"
	httpmiddleware "lumera/internal/delivery/http/middleware"
	"lumera/internal/delivery/http/router/handler"
	deliverymiddleware "lumera/internal/delivery/middleware"
	"lumera/internal/domain/service"
	"lumera/internal/infra/auth"
	"lumera/internal/infra/firebase"
	logs "lumera/internal/infra/log"
	"lumera/internal/infra/media"
	"lumera/internal/infra/persistence/firestore"
	"lumera/internal/infra/pubsub"
	"lumera/internal/infra/qrcode"
	"lumera/internal/usecase/impl"

	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		firebase.NewAuthClient,
		firestore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewProductRepository,
			firestore.NewCategoryRepository,
			firestore.NewContentRepository,
			firestore.NewUserRepository,
			firestore.NewCartRepository,
			firestore.NewWishlistRepository,
			firestore.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newIdentityService,
			newQRCodeService,
			media.NewUploader,
			pubsub.NewEventPublisher,
		),
	)
}

// newIdentityService creates the identity collaborator with the web API key
// from configuration
func newIdentityService(client *firebaseauth.Client, cfg *config.Config, logger *slog.Logger) service.IdentityService {
	return auth.NewIdentityService(client, cfg.Firebase.WebAPIKey, logger)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", cfg.Catalog.PublicBaseURL)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.Catalog.PublicBaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewSessionService,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewAccountService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewWishlistHandler,
			handler.NewAccountHandler,
			handler.NewAdminHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
