package service

import (
	"github.com/carson-networks/card-dashboard/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Dashboard *DashboardService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Dashboard: NewDashboardService(store),
	}
}
