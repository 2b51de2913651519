package services

import (
	"context"

	"karttem-admin/internal/models"
	"karttem-admin/internal/transformers"
	"karttem-admin/pkg/inmobiliaria"
)

const (
	recentListings = 5
	recentActivity = 10
)

type DashboardService struct {
	properties *PropertyService
	trans      transformers.PropertyTransformer
	activity   *ActivityRecorder
}

func NewDashboardService(properties *PropertyService, trans transformers.PropertyTransformer, activity *ActivityRecorder) *DashboardService {
	return &DashboardService{properties: properties, trans: trans, activity: activity}
}

// Summary counts listings per status and picks the newest ones.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardData, error) {
	properties, err := s.properties.All(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(inmobiliaria.Statuses))
	for _, status := range inmobiliaria.Statuses {
		counts[string(status)] = 0
	}
	for _, p := range properties {
		if _, ok := counts[string(p.Status)]; ok {
			counts[string(p.Status)]++
		}
	}

	return &models.DashboardData{
		Total:    len(properties),
		Counts:   counts,
		Recent:   s.trans.ToRows(transformers.MostRecent(properties, recentListings)),
		Activity: s.activity.Recent(ctx, recentActivity),
	}, nil
}
