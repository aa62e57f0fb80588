package main

import (
	"context"
	"log/slog"
	"os"

	"comfortstay/config"
	"comfortstay/internal/delivery"
	"comfortstay/internal/delivery/http"
	"comfortstay/internal/delivery/http/middleware"
	"comfortstay/internal/delivery/http/router/handler"
	"comfortstay/internal/delivery/worker"
	workerhandler "comfortstay/internal/delivery/worker/handler"
	"comfortstay/internal/domain/service"
	"comfortstay/internal/infra/auth"
	"comfortstay/internal/infra/cache"
	logs "comfortstay/internal/infra/log"
	"comfortstay/internal/infra/mail"
	"comfortstay/internal/infra/persistence/postgres"
	"comfortstay/internal/infra/qrcode"
	"comfortstay/internal/infra/queue"
	"comfortstay/internal/infra/report"
	"comfortstay/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewResidentRepository,
			postgres.NewRoomRepository,
			postgres.NewArchiveRepository,
			postgres.NewPaymentRepository,
			postgres.NewComplaintRepository,
			postgres.NewVisitRequestRepository,
			postgres.NewExpenseRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewCredentialService,
			cache.New,
			queue.NewPublisher,
			mail.NewRestyMailer,
			report.NewExcelReportService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewCheckoutService,
			impl.NewRoomService,
			impl.NewResidentService,
			impl.NewAuthService,
			impl.NewPaymentService,
			impl.NewComplaintService,
			impl.NewVisitService,
			impl.NewExpenseService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegistrationHandler,
			handler.NewAuthHandler,
			handler.NewRoomHandler,
			handler.NewResidentHandler,
			handler.NewCheckoutHandler,
			handler.NewPaymentHandler,
			handler.NewComplaintHandler,
			handler.NewVisitHandler,
			handler.NewExpenseHandler,
			handler.NewNotificationHandler,
			workerhandler.NewEventHandler,
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
			fx.Annotate(
				worker.NewServer,
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
