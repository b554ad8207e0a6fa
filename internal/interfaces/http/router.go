package http

import (
	"github.com/cloudonetech/console-api/internal/application/analytics"
	"github.com/cloudonetech/console-api/internal/application/auth"
	"github.com/cloudonetech/console-api/internal/application/backup"
	appbilling "github.com/cloudonetech/console-api/internal/application/billing"
	"github.com/cloudonetech/console-api/internal/application/catalog"
	"github.com/cloudonetech/console-api/internal/application/crm"
	"github.com/cloudonetech/console-api/internal/application/events"
	"github.com/cloudonetech/console-api/internal/application/team"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CustomerUC  *crm.CustomerUseCase
	ServiceUC   *catalog.ServiceUseCase
	QuotationUC *appbilling.QuotationUseCase
	ConvertUC   *appbilling.ConvertQuoteUseCase
	InvoiceUC   *appbilling.InvoiceUseCase
	PDFUC       *appbilling.PDFUseCase
	TeamUC      *team.TeamUseCase
	DashboardUC *analytics.DashboardUseCase
	BackupUC    *backup.ExportUseCase
	Feed        *events.Feed
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (CRM)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Services (catálogo; sin Delete)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)

	// Quotations
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.ConvertUC, deps.PDFUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Patch("/:id/status", quotationHandler.UpdateStatus)
	quotations.Post("/:id/convert", quotationHandler.Convert)
	quotations.Get("/:id/pdf", quotationHandler.DownloadPDF)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)

	// Feed de cambios (sondeo)
	changesHandler := NewChangesHandler(deps.Feed)
	protected.Get("/changes", changesHandler.List)

	// Team management (solo ADMIN)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.TeamUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Backup (solo ADMIN)
	backupGroup := protected.Group("/backup", RequireRole(entity.RoleAdmin))
	backupHandler := NewBackupHandler(deps.BackupUC)
	backupGroup.Get("/csv/:collection", backupHandler.ExportCSV)
	backupGroup.Get("/json", backupHandler.ExportJSON)
}
