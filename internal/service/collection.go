package service

import (
	"context"
	"fmt"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/logger"
	"ecowaste-backend/internal/repository"
)

type collectionService struct {
	collectionRepo repository.CollectionRepository
	noteRepo       repository.NotificationRepository
}

func NewCollectionService(
	collectionRepo repository.CollectionRepository,
	noteRepo repository.NotificationRepository,
) CollectionService {
	return &collectionService{collectionRepo: collectionRepo, noteRepo: noteRepo}
}

func (s *collectionService) RequestCollection(ctx context.Context, c *domain.Collection) error {
	if !c.WasteType.Valid() {
		return fmt.Errorf("%w: unknown waste type %q", ErrInvalidInput, c.WasteType)
	}
	if c.Zone == "" || c.Address == "" {
		return fmt.Errorf("%w: zone and address are required", ErrInvalidInput)
	}
	if c.Priority == "" {
		c.Priority = domain.PriorityNormal
	}
	c.Status = domain.CollectionStatusPending

	if err := s.collectionRepo.Create(ctx, c); err != nil {
		return err
	}

	note := &domain.Notification{
		UserID:  c.UserID,
		Type:    domain.NotificationCollectionReminder,
		Title:   "Collection Request Submitted",
		Message: fmt.Sprintf("Your %s collection request has been submitted successfully.", c.WasteType),
		Link:    fmt.Sprintf("/collections/%d", c.ID),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to create submission notification", "collection_id", c.ID, "error", err)
	}
	return nil
}

func (s *collectionService) GetCollection(ctx context.Context, userID int32, role domain.Role, id int32) (*domain.Collection, error) {
	c, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !role.IsStaff() && c.UserID != userID {
		return nil, ErrForbidden
	}
	return c, nil
}

func (s *collectionService) ListCollections(ctx context.Context, userID int32, role domain.Role, filter repository.CollectionFilter) ([]domain.Collection, int32, error) {
	if !role.IsStaff() {
		filter.UserID = userID
	}
	return s.collectionRepo.List(ctx, filter)
}

func (s *collectionService) DeleteCollection(ctx context.Context, userID int32, role domain.Role, id int32) error {
	c, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// Residents may only withdraw their own still-pending requests.
	if !role.IsStaff() && (c.UserID != userID || c.Status != domain.CollectionStatusPending) {
		return ErrForbidden
	}
	return s.collectionRepo.Delete(ctx, id)
}
