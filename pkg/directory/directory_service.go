package directory

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/pkg/snapshot"
	"context"
)

type (
	DirectoryService interface {
		GetProviderContacts(ctx context.Context, cache *snapshot.Cache) ([]domain.ContactResponse, error)
		GetReceiverContacts(ctx context.Context, cache *snapshot.Cache) ([]domain.ContactResponse, error)
	}

	directoryService struct{}
)

func NewDirectoryService() DirectoryService {
	return &directoryService{}
}

func (s *directoryService) GetProviderContacts(ctx context.Context, cache *snapshot.Cache) ([]domain.ContactResponse, error) {
	snap, err := cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	contacts := make([]domain.ContactResponse, 0, len(snap.Providers))
	for _, p := range snap.Providers {
		contacts = append(contacts, domain.ContactResponse{
			ID:      p.ProviderID,
			Name:    p.Name,
			Type:    p.Type,
			City:    p.City,
			Contact: p.Contact,
		})
	}
	return contacts, nil
}

func (s *directoryService) GetReceiverContacts(ctx context.Context, cache *snapshot.Cache) ([]domain.ContactResponse, error) {
	snap, err := cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	contacts := make([]domain.ContactResponse, 0, len(snap.Receivers))
	for _, r := range snap.Receivers {
		contacts = append(contacts, domain.ContactResponse{
			ID:      r.ReceiverID,
			Name:    r.Name,
			Type:    r.Type,
			City:    r.City,
			Contact: r.Contact,
		})
	}
	return contacts, nil
}
