package services

import (
	"context"

	"ayudamosBack/internal/models"
	"ayudamosBack/internal/repositories"
)

type ContactLogService struct {
	ContactLogRepo *repositories.ContactLogRepository
	ServiceRepo    *repositories.ServiceRepository
}

// RecordContact logs that the authenticated client reached out about a
// service. The contact method is free-form ("phone", "whatsapp", ...).
func (s *ContactLogService) RecordContact(ctx context.Context, clientID, serviceID int, method string) (models.ContactLog, error) {
	if method == "" || serviceID == 0 {
		return models.ContactLog{}, models.ErrMissingFields
	}
	return s.ContactLogRepo.RecordContact(ctx, models.ContactLog{
		ClientID:      clientID,
		ServiceID:     serviceID,
		ContactMethod: method,
	})
}

// ListServiceContacts returns a service's contact history to its owner.
func (s *ContactLogService) ListServiceContacts(ctx context.Context, serviceID, userID int) ([]models.ContactLog, error) {
	service, err := s.ServiceRepo.GetServiceRow(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service.ProviderID != userID {
		return nil, models.ErrNotServiceOwner
	}
	return s.ContactLogRepo.ListByServiceID(ctx, serviceID)
}
