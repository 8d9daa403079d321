// Package handler aggregates the transport-specific handler constructors.
package handler

import (
	httphandler "github.com/MKhiriev/study-planner/internal/handler/http"
	"github.com/MKhiriev/study-planner/internal/logger"
	"github.com/MKhiriev/study-planner/internal/service"
)

type Handlers struct {
	HTTP *httphandler.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: httphandler.NewHandler(services, logger),
	}
}
