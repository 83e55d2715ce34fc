package services

import (
	"context"

	"ayudamosBack/internal/models"
)

const (
	defaultPageSize = 12
	maxPageSize     = 50
)

// ServiceStore is the slice of the service repository the listing logic
// needs; *repositories.ServiceRepository satisfies it.
type ServiceStore interface {
	ListServices(ctx context.Context, f models.ServiceFilter) ([]models.Service, int, error)
	GetServiceByID(ctx context.Context, id int) (models.Service, error)
	GetServiceAnyStatus(ctx context.Context, id int) (models.Service, error)
	GetServiceRow(ctx context.Context, id int) (models.Service, error)
	CreateService(ctx context.Context, s models.Service) (models.Service, error)
	UpdateService(ctx context.Context, id int, req models.UpdateServiceRequest) error
	DeleteService(ctx context.Context, id int) error
	IncrementViews(ctx context.Context, id int) error
	GetServicesByProviderID(ctx context.Context, providerID int) ([]models.Service, error)
}

// CategoryFinder resolves category ids during listing validation.
type CategoryFinder interface {
	GetCategoryByID(ctx context.Context, id int) (models.Category, error)
}

type ServiceService struct {
	ServiceRepo  ServiceStore
	CategoryRepo CategoryFinder
}

// normalizeFilter clamps pagination to sane values. Out-of-range pages are
// kept as-is; they simply return an empty list.
func normalizeFilter(f models.ServiceFilter) models.ServiceFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	return f
}

func (s *ServiceService) ListServices(ctx context.Context, f models.ServiceFilter) (models.ServiceListResponse, error) {
	f = normalizeFilter(f)
	services, total, err := s.ServiceRepo.ListServices(ctx, f)
	if err != nil {
		return models.ServiceListResponse{}, err
	}
	return models.ServiceListResponse{
		Services:   services,
		Pagination: models.NewPagination(f.Page, f.Limit, total),
	}, nil
}

// GetServiceByID returns the enriched detail view and counts the visit.
// The provider browsing their own listing does not move the counter, and a
// failed bump never fails the read.
func (s *ServiceService) GetServiceByID(ctx context.Context, id, viewerID int) (models.Service, error) {
	service, err := s.ServiceRepo.GetServiceByID(ctx, id)
	if err != nil {
		return models.Service{}, err
	}
	if viewerID != service.ProviderID {
		if err := s.ServiceRepo.IncrementViews(ctx, id); err == nil {
			service.Views++
		}
	}
	return service, nil
}

// CreateService validates and stores a new listing for the authenticated
// provider. The service-areas list defaults to the primary location, and
// min price may not exceed max price when both are set.
func (s *ServiceService) CreateService(ctx context.Context, providerID int, req models.CreateServiceRequest) (models.Service, error) {
	if req.Title == "" || req.Description == "" || req.Location == "" || req.CategoryID == 0 {
		return models.Service{}, models.ErrMissingFields
	}
	if _, err := s.CategoryRepo.GetCategoryByID(ctx, req.CategoryID); err != nil {
		return models.Service{}, err
	}
	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return models.Service{}, models.ErrPriceRange
	}

	service := models.Service{
		ProviderID:     providerID,
		CategoryID:     req.CategoryID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		MinPrice:       req.MinPrice,
		MaxPrice:       req.MaxPrice,
		Images:         req.Images,
		ServiceAreas:   req.ServiceAreas,
		AvailableHours: req.AvailableHours,
	}
	if service.Images == nil {
		service.Images = []string{}
	}
	if len(service.ServiceAreas) == 0 {
		service.ServiceAreas = []string{req.Location}
	}
	if service.AvailableHours == nil {
		service.AvailableHours = map[string]models.HourRange{}
	}
	return s.ServiceRepo.CreateService(ctx, service)
}

// UpdateService applies a partial update after an ownership check. The price
// bounds are validated against the values the row will hold after the update,
// mixing stored and incoming fields as needed.
func (s *ServiceService) UpdateService(ctx context.Context, id, userID int, req models.UpdateServiceRequest) (models.Service, error) {
	current, err := s.ServiceRepo.GetServiceRow(ctx, id)
	if err != nil {
		return models.Service{}, err
	}
	if current.ProviderID != userID {
		return models.Service{}, models.ErrNotServiceOwner
	}

	min := current.MinPrice
	if req.MinPrice.Set {
		min = req.MinPrice.Value
	}
	max := current.MaxPrice
	if req.MaxPrice.Set {
		max = req.MaxPrice.Value
	}
	if min != nil && max != nil && *min > *max {
		return models.Service{}, models.ErrPriceRange
	}

	if err := s.ServiceRepo.UpdateService(ctx, id, req); err != nil {
		return models.Service{}, err
	}
	// the caller gets the same enriched shape the detail endpoint serves,
	// even when the update just deactivated the listing
	return s.ServiceRepo.GetServiceAnyStatus(ctx, id)
}

func (s *ServiceService) DeleteService(ctx context.Context, id, userID int) error {
	current, err := s.ServiceRepo.GetServiceRow(ctx, id)
	if err != nil {
		return err
	}
	if current.ProviderID != userID {
		return models.ErrNotServiceOwner
	}
	return s.ServiceRepo.DeleteService(ctx, id)
}

// GetMyServices lists every service of the authenticated provider, active or
// not, with contact history attached.
func (s *ServiceService) GetMyServices(ctx context.Context, providerID int) ([]models.Service, error) {
	return s.ServiceRepo.GetServicesByProviderID(ctx, providerID)
}
