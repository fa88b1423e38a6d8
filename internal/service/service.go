package service

import (
	"escala-equipe/internal/config"
	"escala-equipe/internal/store"
)

type Services struct {
	Auth         AuthService
	Catalog      CatalogService
	Employee     EmployeeService
	Schedule     ScheduleService
	Summary      SummaryService
	Notification NotificationService
	Export       ExportService
}

func NewServices(stores *store.Stores, cfg *config.Config) *Services {
	return &Services{
		Auth:         NewAuthService(stores.User, cfg),
		Catalog:      NewCatalogService(stores.Catalog),
		Employee:     NewEmployeeService(stores.Employee, stores.Schedule, stores.Catalog),
		Schedule:     NewScheduleService(stores.Schedule, stores.Catalog, stores.Employee, cfg.Population),
		Summary:      NewSummaryService(stores.Schedule, stores.Catalog, stores.Employee, cfg.StandardMonthlyHours, cfg.BreakDeduction.Hours()),
		Notification: NewNotificationService(stores.Notification),
		Export:       NewExportService(stores.Schedule, stores.Catalog),
	}
}
