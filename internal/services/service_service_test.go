package services

import (
	"context"
	"errors"
	"testing"

	"ayudamosBack/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

// stubServiceStore keeps bare rows and enriched detail views apart, the way
// the real repository does.
type stubServiceStore struct {
	rows     map[int]models.Service
	enriched map[int]models.Service
	updates  []models.UpdateServiceRequest
}

func (s *stubServiceStore) ListServices(ctx context.Context, f models.ServiceFilter) ([]models.Service, int, error) {
	return []models.Service{}, 0, nil
}

func (s *stubServiceStore) GetServiceByID(ctx context.Context, id int) (models.Service, error) {
	svc, ok := s.enriched[id]
	if !ok || !svc.IsActive {
		return models.Service{}, models.ErrServiceNotFound
	}
	return svc, nil
}

func (s *stubServiceStore) GetServiceAnyStatus(ctx context.Context, id int) (models.Service, error) {
	svc, ok := s.enriched[id]
	if !ok {
		return models.Service{}, models.ErrServiceNotFound
	}
	return svc, nil
}

func (s *stubServiceStore) GetServiceRow(ctx context.Context, id int) (models.Service, error) {
	svc, ok := s.rows[id]
	if !ok {
		return models.Service{}, models.ErrServiceNotFound
	}
	return svc, nil
}

func (s *stubServiceStore) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	return svc, nil
}

func (s *stubServiceStore) UpdateService(ctx context.Context, id int, req models.UpdateServiceRequest) error {
	s.updates = append(s.updates, req)
	return nil
}

func (s *stubServiceStore) DeleteService(ctx context.Context, id int) error { return nil }

func (s *stubServiceStore) IncrementViews(ctx context.Context, id int) error { return nil }

func (s *stubServiceStore) GetServicesByProviderID(ctx context.Context, providerID int) ([]models.Service, error) {
	return []models.Service{}, nil
}

func TestNormalizeFilter(t *testing.T) {
	tests := []struct {
		name      string
		in        models.ServiceFilter
		wantPage  int
		wantLimit int
	}{
		{"zero values get defaults", models.ServiceFilter{}, 1, defaultPageSize},
		{"negative page clamped", models.ServiceFilter{Page: -5, Limit: 10}, 1, 10},
		{"limit capped", models.ServiceFilter{Page: 2, Limit: 500}, 2, maxPageSize},
		{"valid values untouched", models.ServiceFilter{Page: 4, Limit: 24}, 4, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeFilter(tt.in)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("normalizeFilter = page %d limit %d, want page %d limit %d",
					got.Page, got.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
	t.Run("other fields pass through", func(t *testing.T) {
		got := normalizeFilter(models.ServiceFilter{Search: "pintura", SortBy: "views"})
		if got.Search != "pintura" || got.SortBy != "views" {
			t.Errorf("filter fields mangled: %+v", got)
		}
	})
}

// A successful update responds with the same enriched shape the detail
// endpoint serves, even for a listing the update just deactivated.
func TestUpdateServiceReturnsEnrichedView(t *testing.T) {
	store := &stubServiceStore{
		rows: map[int]models.Service{
			10: {ID: 10, ProviderID: 5, MaxPrice: floatPtr(100)},
		},
		enriched: map[int]models.Service{
			10: {
				ID:         10,
				ProviderID: 5,
				IsActive:   false,
				Provider:   models.ProviderSummary{ID: 5, FirstName: "Marta"},
				Category:   models.CategorySummary{ID: 2, Name: "Limpieza"},
				Reviews:    []models.Review{{ID: 1, Rating: 5}},
			},
		},
	}
	s := &ServiceService{ServiceRepo: store}

	inactive := false
	got, err := s.UpdateService(context.Background(), 10, 5, models.UpdateServiceRequest{IsActive: &inactive})
	if err != nil {
		t.Fatal(err)
	}
	if len(store.updates) != 1 {
		t.Fatalf("recorded %d updates, want 1", len(store.updates))
	}
	if got.Provider.FirstName != "Marta" || got.Category.Name != "Limpieza" {
		t.Errorf("update must return the enriched view, got %+v", got)
	}
	if len(got.Reviews) != 1 {
		t.Errorf("enriched view carries reviews, got %d", len(got.Reviews))
	}
	if got.IsActive {
		t.Error("deactivated listing must still come back to its owner")
	}
}

func TestUpdateServiceChecks(t *testing.T) {
	store := &stubServiceStore{
		rows: map[int]models.Service{
			10: {ID: 10, ProviderID: 5, MaxPrice: floatPtr(100)},
		},
		enriched: map[int]models.Service{
			10: {ID: 10, ProviderID: 5},
		},
	}
	s := &ServiceService{ServiceRepo: store}
	ctx := context.Background()

	if _, err := s.UpdateService(ctx, 10, 6, models.UpdateServiceRequest{}); !errors.Is(err, models.ErrNotServiceOwner) {
		t.Fatalf("err = %v, want ErrNotServiceOwner", err)
	}
	req := models.UpdateServiceRequest{MinPrice: models.OptFloat{Set: true, Value: floatPtr(200)}}
	if _, err := s.UpdateService(ctx, 10, 5, req); !errors.Is(err, models.ErrPriceRange) {
		t.Fatalf("err = %v, want ErrPriceRange against the stored max price", err)
	}
	if len(store.updates) != 0 {
		t.Fatalf("rejected updates must not reach the store, got %d", len(store.updates))
	}
}
