package metadata

import (
	"context"
	"errors"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/google/uuid"
)

// The ownership locator computes the set of device services that must be
// told about a change. An empty result means no notification is dispatched;
// it is never an error.

// servicesByID loads the given device services with their Addressables
// preloaded, de-duplicated by id.
func (s *Service) servicesByID(ctx context.Context, ids []uuid.UUID) ([]models.DeviceService, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	var services []models.DeviceService
	if res := s.db.WithContext(ctx).Preload("Addressable").Find(&services, "id IN ?", unique); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	return services, nil
}

// ownersOfAddressable walks every Device referencing the Addressable and
// collects their services.
func (s *Service) ownersOfAddressable(ctx context.Context, id uuid.UUID) ([]models.DeviceService, error) {
	var devices []models.Device
	if res := s.db.WithContext(ctx).Where("addressable_id = ?", id).Find(&devices); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	ids := make([]uuid.UUID, 0, len(devices))
	for _, device := range devices {
		ids = append(ids, device.ServiceID)
	}
	return s.servicesByID(ctx, ids)
}

// ownersOfProfile walks every Device referencing the DeviceProfile and
// collects their services.
func (s *Service) ownersOfProfile(ctx context.Context, id uuid.UUID) ([]models.DeviceService, error) {
	var devices []models.Device
	if res := s.db.WithContext(ctx).Where("profile_id = ?", id).Find(&devices); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	ids := make([]uuid.UUID, 0, len(devices))
	for _, device := range devices {
		ids = append(ids, device.ServiceID)
	}
	return s.servicesByID(ctx, ids)
}

// ownersOfSchedule resolves the weak service name on every ScheduleEvent
// attached to the schedule. Names that fail to resolve are skipped.
func (s *Service) ownersOfSchedule(ctx context.Context, scheduleName string) ([]models.DeviceService, error) {
	var events []models.ScheduleEvent
	if res := s.db.WithContext(ctx).Where("schedule = ?", scheduleName).Find(&events); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	names := make([]string, 0, len(events))
	for _, event := range events {
		if event.Service != "" {
			names = append(names, event.Service)
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	var services []models.DeviceService
	if res := s.db.WithContext(ctx).Preload("Addressable").Find(&services, "name IN ?", names); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	return services, nil
}

// ownersOfEvent resolves the event's own weak service name, or nothing.
func (s *Service) ownersOfEvent(ctx context.Context, event *models.ScheduleEvent) ([]models.DeviceService, error) {
	if event.Service == "" {
		return nil, nil
	}
	service, err := s.resolveDeviceService(ctx, models.EntityRef{Name: event.Service})
	if err != nil {
		var notFound NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	return []models.DeviceService{*service}, nil
}

// ownersOfServiceID returns the single directly-referenced service; used for
// Device and ProvisionWatcher notifications.
func (s *Service) ownersOfServiceID(ctx context.Context, id uuid.UUID) ([]models.DeviceService, error) {
	return s.servicesByID(ctx, []uuid.UUID{id})
}
