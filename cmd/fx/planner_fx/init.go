package planner_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"roamio/internal/api/controllers"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlannerService,
	ProvidePackingService,
	ProvidePlannerController,
)

func ProvidePlannerService(
	ai utils.CompletionClientInterface,
	cache *utils.ResultCache,
	logger *zap.Logger,
) services.PlannerServiceInterface {
	return services.NewPlannerService(ai, cache, logger)
}

func ProvidePackingService() services.PackingServiceInterface {
	return services.NewPackingService()
}

func ProvidePlannerController(
	plannerService services.PlannerServiceInterface,
	packingService services.PackingServiceInterface,
) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService, packingService)
}
