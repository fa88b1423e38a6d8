package handler

import "escala-equipe/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	Catalog      *CatalogHandler
	Employee     *EmployeeHandler
	Schedule     *ScheduleHandler
	Summary      *SummaryHandler
	Notification *NotificationHandler
	Export       *ExportHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Catalog:      NewCatalogHandler(services.Catalog),
		Employee:     NewEmployeeHandler(services.Employee),
		Schedule:     NewScheduleHandler(services.Schedule),
		Summary:      NewSummaryHandler(services.Summary),
		Notification: NewNotificationHandler(services.Notification),
		Export:       NewExportHandler(services.Export),
	}
}
