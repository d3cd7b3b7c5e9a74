package trips_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideTripService,
	provideExportService,
	provideTripsController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}

func provideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}

func provideTripsController(
	tripService services.TripServiceInterface,
	exportService services.ExportServiceInterface,
) *controllers.TripsController {
	return controllers.NewTripsController(tripService, exportService)
}
