package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudonetech/console-api/internal/application/analytics"
	"github.com/cloudonetech/console-api/internal/application/auth"
	"github.com/cloudonetech/console-api/internal/application/backup"
	appbilling "github.com/cloudonetech/console-api/internal/application/billing"
	"github.com/cloudonetech/console-api/internal/application/catalog"
	"github.com/cloudonetech/console-api/internal/application/crm"
	"github.com/cloudonetech/console-api/internal/application/events"
	"github.com/cloudonetech/console-api/internal/application/team"
	infrapdf "github.com/cloudonetech/console-api/internal/infrastructure/pdf"
	"github.com/cloudonetech/console-api/internal/infrastructure/postgres"
	httpRouter "github.com/cloudonetech/console-api/internal/interfaces/http"
	"github.com/cloudonetech/console-api/pkg/config"
	"github.com/cloudonetech/console-api/pkg/logger"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios (atados al pool; los casos de uso transaccionales reciben
	// además el TxRunner, que ata sus propios repos a la tx)
	customerRepo := postgres.NewCustomerRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Feed de cambios: toda mutación publica; los clientes sondean /api/changes
	feed := events.NewFeed()

	customerUC := crm.NewCustomerUseCase(customerRepo, feed)
	serviceUC := catalog.NewServiceUseCase(serviceRepo, feed)
	quotationUC := appbilling.NewQuotationUseCase(txRunner, customerRepo, serviceRepo, quotationRepo, cfg.Billing, feed)
	convertUC := appbilling.NewConvertQuoteUseCase(txRunner, cfg.Billing, feed)
	invoiceUC := appbilling.NewInvoiceUseCase(txRunner, customerRepo, serviceRepo, invoiceRepo, cfg.Billing, feed)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := appbilling.NewPDFUseCase(quotationRepo, invoiceRepo, customerRepo, pdfGenerator, cfg.Org)

	teamUC := team.NewTeamUseCase(userRepo, feed)
	dashboardUC := analytics.NewDashboardUseCase(customerRepo, quotationRepo, invoiceRepo)
	backupUC := backup.NewExportUseCase(customerRepo, serviceRepo, quotationRepo, invoiceRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la generación de PDF puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Console API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		ServiceUC:   serviceUC,
		QuotationUC: quotationUC,
		ConvertUC:   convertUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       pdfUC,
		TeamUC:      teamUC,
		DashboardUC: dashboardUC,
		BackupUC:    backupUC,
		Feed:        feed,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
