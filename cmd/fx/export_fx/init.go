package export_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"roamio/internal/api/controllers"
	"roamio/internal/services"
)

var Module = fx.Provide(
	ProvideExportService,
	ProvideExportController,
)

func ProvideExportService(logger *zap.Logger) services.ExportServiceInterface {
	return services.NewExportService(logger)
}

func ProvideExportController(exportService services.ExportServiceInterface) *controllers.ExportController {
	return controllers.NewExportController(exportService)
}
