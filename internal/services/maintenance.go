package services

import (
	"context"
	"math"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/internal/billing"
	"github.com/jumaanebey/tbd-property-management/internal/models"
	"github.com/jumaanebey/tbd-property-management/internal/store"
)

// MaintenanceStats summarizes a tenant's request history.
// AverageResolutionTime is whole days from filing to completion.
type MaintenanceStats struct {
	Total                 int `json:"total"`
	Pending               int `json:"pending"`
	InProgress            int `json:"in_progress"`
	Completed             int `json:"completed"`
	AverageResolutionTime int `json:"average_resolution_time"`
}

type MaintenanceService struct {
	Store *store.MaintenanceStore
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{Store: store.NewMaintenanceStore(db)}
}

// Stats aggregates over the tenant's requests. Completed requests without
// a recorded completion date do not feed the average.
func (s *MaintenanceService) Stats(ctx context.Context, tenantID string) (MaintenanceStats, error) {
	requests, err := s.Store.List(ctx, tenantID)
	if err != nil {
		return MaintenanceStats{}, err
	}
	stats := MaintenanceStats{Total: len(requests)}
	resolved := 0
	totalDays := 0
	for _, r := range requests {
		switch r.Status {
		case models.MaintenanceStatusPending:
			stats.Pending++
		case models.MaintenanceStatusInProgress:
			stats.InProgress++
		case models.MaintenanceStatusCompleted:
			stats.Completed++
			if r.ActualCompletion != nil {
				totalDays += billing.DaysBetween(r.CreatedAt, *r.ActualCompletion)
				resolved++
			}
		}
	}
	if resolved > 0 {
		stats.AverageResolutionTime = int(math.Round(float64(totalDays) / float64(resolved)))
	}
	return stats, nil
}
