package services

import (
	"context"

	"ayudamosBack/internal/models"
	"ayudamosBack/internal/repositories"
)

type PortfolioService struct {
	PortfolioRepo *repositories.PortfolioRepository
	ServiceRepo   *repositories.ServiceRepository
}

// CreatePortfolio adds a past-work entry to one of the caller's services.
func (s *PortfolioService) CreatePortfolio(ctx context.Context, userID int, req models.CreatePortfolioRequest) (models.Portfolio, error) {
	if req.Title == "" || req.ServiceID == 0 {
		return models.Portfolio{}, models.ErrMissingFields
	}
	service, err := s.ServiceRepo.GetServiceRow(ctx, req.ServiceID)
	if err != nil {
		return models.Portfolio{}, err
	}
	if service.ProviderID != userID {
		return models.Portfolio{}, models.ErrNotServiceOwner
	}

	p := models.Portfolio{
		ServiceID:   req.ServiceID,
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
		Link:        req.Link,
		CompletedAt: req.CompletedAt,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return s.PortfolioRepo.CreatePortfolio(ctx, p)
}

func (s *PortfolioService) ListServicePortfolios(ctx context.Context, serviceID int) ([]models.Portfolio, error) {
	if _, err := s.ServiceRepo.GetServiceRow(ctx, serviceID); err != nil {
		return nil, err
	}
	return s.PortfolioRepo.ListByServiceID(ctx, serviceID)
}

// ownedPortfolio resolves the entry and checks the parent service belongs to
// the caller.
func (s *PortfolioService) ownedPortfolio(ctx context.Context, id, userID int) (models.Portfolio, error) {
	p, err := s.PortfolioRepo.GetPortfolioByID(ctx, id)
	if err != nil {
		return models.Portfolio{}, err
	}
	service, err := s.ServiceRepo.GetServiceRow(ctx, p.ServiceID)
	if err != nil {
		return models.Portfolio{}, err
	}
	if service.ProviderID != userID {
		return models.Portfolio{}, models.ErrNotServiceOwner
	}
	return p, nil
}

func (s *PortfolioService) UpdatePortfolio(ctx context.Context, id, userID int, req models.UpdatePortfolioRequest) (models.Portfolio, error) {
	if _, err := s.ownedPortfolio(ctx, id, userID); err != nil {
		return models.Portfolio{}, err
	}
	if err := s.PortfolioRepo.UpdatePortfolio(ctx, id, req); err != nil {
		return models.Portfolio{}, err
	}
	return s.PortfolioRepo.GetPortfolioByID(ctx, id)
}

func (s *PortfolioService) DeletePortfolio(ctx context.Context, id, userID int) error {
	if _, err := s.ownedPortfolio(ctx, id, userID); err != nil {
		return err
	}
	return s.PortfolioRepo.DeletePortfolio(ctx, id)
}
