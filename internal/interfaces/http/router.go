package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taller-api/internal/application/auth"
	"github.com/jhoicas/taller-api/internal/application/usecase"
	"github.com/jhoicas/taller-api/internal/domain/permission"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WorkerUC     *usecase.WorkerUseCase
	AssistenceUC *usecase.AssistenceUseCase
	DeliveryUC   *usecase.DeliveryUseCase
	FactoryUC    *usecase.FactoryUseCase
	UserUC       *usecase.UserUseCase
	CostingUC    *usecase.CostingUseCase
	ReportUC     *usecase.ReportUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. La tabla rol → capacidad se aplica en
// el borde con RequirePermission; las operaciones sin capacidad asociada solo
// exigen un token válido.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/login/factory", authHandler.LoginFactory)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Workers (protegido, por capacidad)
	workers := protected.Group("/workers")
	workerHandler := NewWorkerHandler(deps.WorkerUC)
	workers.Post("/", RequirePermission(permission.AgregarTrabajador), workerHandler.Create)
	workers.Get("/", RequirePermission(permission.VerTrabajadores), workerHandler.List)
	workers.Get("/active", RequirePermission(permission.VerTrabajadores), workerHandler.ListActive)
	workers.Get("/:id", RequirePermission(permission.VerTrabajadores), workerHandler.GetByID)
	workers.Put("/:id", RequirePermission(permission.EditarTrabajador), workerHandler.Update)
	workers.Delete("/:id", RequirePermission(permission.EliminarTrabajador), workerHandler.Deactivate)

	// Assistences (protegido; el control diario no tiene capacidad propia)
	assistences := protected.Group("/assistences")
	assistenceHandler := NewAssistenceHandler(deps.AssistenceUC)
	assistences.Post("/arrival", assistenceHandler.MarkArrival)
	assistences.Post("/arrival/code", assistenceHandler.MarkArrivalByCode)
	assistences.Post("/departure", assistenceHandler.MarkDeparture)
	assistences.Get("/today", assistenceHandler.ListToday)
	assistences.Get("/worker/:id", assistenceHandler.ListByWorker)

	// Deliveries (protegido, por capacidad)
	deliveries := protected.Group("/deliveries", RequirePermission(permission.GestionarEntregas))
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Get("/", deliveryHandler.ListActive)
	deliveries.Get("/all", deliveryHandler.ListAll)
	deliveries.Get("/groups", deliveryHandler.ListOnePerGroup)
	deliveries.Get("/group/:id_group", deliveryHandler.ListByGroup)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Put("/:id", deliveryHandler.Update)
	deliveries.Delete("/:id", deliveryHandler.SoftDelete)

	// Factories (protegido, misma capacidad que entregas)
	factories := protected.Group("/factories", RequirePermission(permission.GestionarEntregas))
	factoryHandler := NewFactoryHandler(deps.FactoryUC)
	factories.Post("/", factoryHandler.Create)
	factories.Get("/", factoryHandler.List)
	factories.Get("/:id", factoryHandler.GetByID)
	factories.Put("/:id", factoryHandler.Update)
	factories.Delete("/:id", factoryHandler.Delete)

	// Costing + reportes (protegido, por capacidad)
	costing := protected.Group("/costing", RequirePermission(permission.VerCalculos))
	costingHandler := NewCostingHandler(deps.CostingUC)
	costing.Post("/operation", costingHandler.OperatingCost)
	costing.Post("/break-even", costingHandler.BreakEven)
	costing.Post("/payment-fairness", costingHandler.PaymentFairness)
	costing.Post("/production", costingHandler.Production)

	reports := protected.Group("/reports", RequirePermission(permission.VerCalculos))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Post("/production", reportHandler.ProductionPDF)

	// Users (protegido; crear y eliminar son capacidades explícitas)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequirePermission(permission.CrearUsuario), userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/active", userHandler.ListActive)
	users.Get("/permissions", userHandler.Permissions)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", RequirePermission(permission.EliminarUsuario), userHandler.Deactivate)
}
