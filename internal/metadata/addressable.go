package metadata

import (
	"context"

	"github.com/edgefleet-io/edgefleet/internal/callback"
	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/google/uuid"
)

func (s *Service) AddAddressable(ctx context.Context, request models.AddAddressable) (*models.Addressable, error) {
	if request.Name == "" {
		return nil, DataValidationError{Reason: "addressable name is required"}
	}
	addressable := models.Addressable{
		Name:      request.Name,
		Protocol:  request.Protocol,
		Address:   request.Address,
		Port:      request.Port,
		Path:      request.Path,
		Publisher: request.Publisher,
		Topic:     request.Topic,
		User:      request.User,
		Password:  request.Password,
		Origin:    request.Origin,
	}
	if res := s.db.WithContext(ctx).Create(&addressable); res.Error != nil {
		return nil, storeErr(res.Error, "addressable")
	}
	return &addressable, nil
}

func (s *Service) GetAddressableByID(ctx context.Context, id uuid.UUID) (*models.Addressable, error) {
	var addressable models.Addressable
	if res := s.db.WithContext(ctx).First(&addressable, "id = ?", id); res.Error != nil {
		return nil, notFoundOrService(res.Error, "addressable")
	}
	return &addressable, nil
}

func (s *Service) GetAddressableByName(ctx context.Context, name string) (*models.Addressable, error) {
	var addressable models.Addressable
	if res := s.db.WithContext(ctx).First(&addressable, "name = ?", name); res.Error != nil {
		return nil, notFoundOrService(res.Error, "addressable")
	}
	return &addressable, nil
}

func (s *Service) ListAddressables(ctx context.Context) ([]models.Addressable, error) {
	if err := s.checkLimit(ctx, &models.Addressable{}); err != nil {
		return nil, err
	}
	addressables := make([]models.Addressable, 0)
	if res := s.db.WithContext(ctx).Order("name").Find(&addressables); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	return addressables, nil
}

// UpdateAddressable overlays the non-nil request fields onto the stored
// entity. A rename is disallowed while any Device or DeviceService still
// references the addressable.
func (s *Service) UpdateAddressable(ctx context.Context, target models.EntityRef, request models.UpdateAddressable) (*models.Addressable, error) {
	clause, arg := idOrNameClause(target)
	var addressable models.Addressable
	if res := s.db.WithContext(ctx).First(&addressable, clause, arg); res.Error != nil {
		return nil, notFoundOrService(res.Error, "addressable")
	}

	if request.Name != nil && *request.Name != addressable.Name {
		referenced, err := s.addressableReferenced(ctx, addressable.ID)
		if err != nil {
			return nil, err
		}
		if referenced {
			return nil, DataValidationError{Reason: "addressable is still referenced by existing devices or device services and cannot be renamed"}
		}
		addressable.Name = *request.Name
	}
	if request.Protocol != nil {
		addressable.Protocol = *request.Protocol
	}
	if request.Address != nil {
		addressable.Address = *request.Address
	}
	if request.Port != nil {
		addressable.Port = *request.Port
	}
	if request.Path != nil {
		addressable.Path = *request.Path
	}
	if request.Publisher != nil {
		addressable.Publisher = *request.Publisher
	}
	if request.Topic != nil {
		addressable.Topic = *request.Topic
	}
	if request.User != nil {
		addressable.User = *request.User
	}
	if request.Password != nil {
		addressable.Password = *request.Password
	}
	if request.Origin != nil {
		addressable.Origin = *request.Origin
	}

	if res := s.db.WithContext(ctx).Save(&addressable); res.Error != nil {
		return nil, storeErr(res.Error, "addressable")
	}

	owners, err := s.ownersOfAddressable(ctx, addressable.ID)
	if err != nil {
		s.logger.Warnf("failed to locate owners of addressable %s: %v", addressable.ID, err)
	} else {
		s.notifier.Notify(owners, models.SubjectAddressable, addressable.ID.String(), callback.ChangeUpdate)
	}
	return &addressable, nil
}

func (s *Service) DeleteAddressableByID(ctx context.Context, id uuid.UUID) error {
	addressable, err := s.GetAddressableByID(ctx, id)
	if err != nil {
		return err
	}
	return s.deleteAddressable(ctx, addressable)
}

func (s *Service) DeleteAddressableByName(ctx context.Context, name string) error {
	addressable, err := s.GetAddressableByName(ctx, name)
	if err != nil {
		return err
	}
	return s.deleteAddressable(ctx, addressable)
}

func (s *Service) deleteAddressable(ctx context.Context, addressable *models.Addressable) error {
	referenced, err := s.addressableReferenced(ctx, addressable.ID)
	if err != nil {
		return err
	}
	if referenced {
		return DataValidationError{Reason: "addressable is still referenced by existing devices or device services"}
	}
	if res := s.db.WithContext(ctx).Delete(&models.Addressable{}, "id = ?", addressable.ID); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	return nil
}
