package service

import (
	"github.com/MKhiriev/study-planner/internal/config"
	"github.com/MKhiriev/study-planner/internal/logger"
	"github.com/MKhiriev/study-planner/internal/store"
)

type Services struct {
	AuthService    AuthService
	PlannerService PlannerService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.Auth, logger),
		PlannerService: NewPlannerService(storages.RecordRepository, logger),
	}
}
