package http

import (
	"github.com/gofiber/fiber/v2"

	apptally "github.com/jhoicas/stocktally-api/internal/application/tally"
	"github.com/jhoicas/stocktally-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC    *usecase.ItemUseCase
	ExportUC  *apptally.ExportUseCase
	PreviewUC *apptally.PreviewUseCase
	CommitUC  *apptally.CommitUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Todo va protegido con Bearer Token;
// el commit además exige rol de operador o admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (solo lectura; alimenta el export)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/:id/adjustments", itemHandler.Adjustments)
	items.Get("/:id", itemHandler.GetByID)

	// Conteo físico: export → preview → commit
	tallyGroup := protected.Group("/tally")
	tallyHandler := NewTallyHandler(deps.ExportUC, deps.PreviewUC, deps.CommitUC)
	tallyGroup.Get("/export", tallyHandler.Export)
	tallyGroup.Post("/preview", tallyHandler.Preview)
	tallyGroup.Post("/commit", RequireRole(RoleAdmin, RoleOperator), tallyHandler.Commit)
}
