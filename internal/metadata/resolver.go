package metadata

import (
	"context"

	"github.com/edgefleet-io/edgefleet/internal/models"
)

// The resolvers turn an id-or-name reference into the stored entity. The id
// wins when both are set. They are pure reads; callers decide whether a
// NotFoundError is fatal for their path.

func (s *Service) resolveAddressable(ctx context.Context, ref models.EntityRef) (*models.Addressable, error) {
	if ref.IsZero() {
		return nil, NotFoundError{Resource: "addressable"}
	}
	clause, arg := idOrNameClause(ref)
	var addressable models.Addressable
	if res := s.db.WithContext(ctx).First(&addressable, clause, arg); res.Error != nil {
		return nil, notFoundOrService(res.Error, "addressable")
	}
	return &addressable, nil
}

func (s *Service) resolveDeviceService(ctx context.Context, ref models.EntityRef) (*models.DeviceService, error) {
	if ref.IsZero() {
		return nil, NotFoundError{Resource: "device service"}
	}
	clause, arg := idOrNameClause(ref)
	var service models.DeviceService
	if res := s.db.WithContext(ctx).Preload("Addressable").First(&service, clause, arg); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device service")
	}
	return &service, nil
}

func (s *Service) resolveDeviceProfile(ctx context.Context, ref models.EntityRef) (*models.DeviceProfile, error) {
	if ref.IsZero() {
		return nil, NotFoundError{Resource: "device profile"}
	}
	clause, arg := idOrNameClause(ref)
	var profile models.DeviceProfile
	if res := s.db.WithContext(ctx).Preload("Commands").First(&profile, clause, arg); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device profile")
	}
	return &profile, nil
}
