package main

import (
	"context"
	"log/slog"
	"os"

	"domkarta/config"
	"domkarta/internal/delivery"
	"domkarta/internal/delivery/http"
	"domkarta/internal/delivery/http/middleware"
	"domkarta/internal/delivery/http/router/handler"
	"domkarta/internal/domain/service"
	"domkarta/internal/infra/auth"
	"domkarta/internal/infra/geocoding/nominatim"
	"domkarta/internal/infra/kvstore"
	logs "domkarta/internal/infra/log"
	"domkarta/internal/infra/persistence/firestore"
	"domkarta/internal/infra/pubsub"
	"domkarta/internal/infra/qrcode"
	"domkarta/internal/usecase/impl"

	cloudfirestore "cloud.google.com/go/firestore"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
		newFirestoreClient,
	)
}

// newFirestoreClient creates the document-store client backing the directory
func newFirestoreClient(ctx context.Context, cfg *config.Config) (*cloudfirestore.Client, error) {
	return firestore.NewClient(ctx, cfg.Firebase)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewHouseRepository,
			firestore.NewAdminRoleRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newGeocodingService,
			newTokenVerifier,
			newKeyValueStore,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newGeocodingService creates the external lookup gateway client
func newGeocodingService(cfg *config.Config, logger *slog.Logger) service.GeocodingService {
	return nominatim.NewClient(cfg.Geocoding, logger)
}

// newTokenVerifier picks the identity verifier. Debug mode skips signature
// checks so local admin UIs can run without a Firebase project.
func newTokenVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.TokenVerifier, error) {
	if cfg.Env.Debug {
		return auth.NewDebugVerifier(logger), nil
	}

	return auth.NewFirebaseVerifier(ctx, cfg.Firebase)
}

// newKeyValueStore creates the last-location memory store
func newKeyValueStore(cfg *config.Config) service.KeyValueStore {
	return kvstore.NewFileStore(cfg.LastLocation.StatePath)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "http://localhost:3000")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewResolverService,
			impl.NewHouseService,
			impl.NewSearchService,
			impl.NewGeocodeService,
			impl.NewMapLocationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHouseHandler,
			handler.NewGeocodeHandler,
			handler.NewMapHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
