package metadata

import (
	"context"

	"github.com/edgefleet-io/edgefleet/internal/callback"
	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AddDevice registers a device. All three strong references must resolve to
// already-persisted entities.
func (s *Service) AddDevice(ctx context.Context, request models.AddDevice) (*models.Device, error) {
	if request.Name == "" {
		return nil, DataValidationError{Reason: "device name is required"}
	}
	addressable, err := s.resolveAddressable(ctx, request.Addressable)
	if err != nil {
		return nil, refValidation(err, "addressable")
	}
	service, err := s.resolveDeviceService(ctx, request.Service)
	if err != nil {
		return nil, refValidation(err, "service")
	}
	profile, err := s.resolveDeviceProfile(ctx, request.Profile)
	if err != nil {
		return nil, refValidation(err, "profile")
	}

	device := models.Device{
		Name:           request.Name,
		Description:    request.Description,
		AdminState:     request.AdminState,
		OperatingState: request.OperatingState,
		Labels:         pq.StringArray(request.Labels),
		AddressableID:  addressable.ID,
		ServiceID:      service.ID,
		ProfileID:      profile.ID,
		Origin:         request.Origin,
	}
	if res := s.db.WithContext(ctx).Create(&device); res.Error != nil {
		return nil, storeErr(res.Error, "device")
	}
	device.Addressable = addressable
	device.Service = service
	device.Profile = profile

	s.notifyDevice(ctx, &device, callback.ChangeCreate)
	return &device, nil
}

func (s *Service) deviceQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Addressable").
		Preload("Service").
		Preload("Service.Addressable").
		Preload("Profile").
		Preload("Profile.Commands")
}

func (s *Service) GetDeviceByID(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	var device models.Device
	if res := s.deviceQuery(ctx).First(&device, "id = ?", id); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device")
	}
	return &device, nil
}

func (s *Service) GetDeviceByName(ctx context.Context, name string) (*models.Device, error) {
	var device models.Device
	if res := s.deviceQuery(ctx).First(&device, "name = ?", name); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device")
	}
	return &device, nil
}

func (s *Service) ListDevices(ctx context.Context) ([]models.Device, error) {
	if err := s.checkLimit(ctx, &models.Device{}); err != nil {
		return nil, err
	}
	devices := make([]models.Device, 0)
	if res := s.deviceQuery(ctx).Order("name").Find(&devices); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	return devices, nil
}

// UpdateDevice overlays the non-nil request fields onto the stored entity.
// Replacement references must resolve; an explicit zero for the numeric
// timestamp fields is expressed with a non-nil pointer to zero.
func (s *Service) UpdateDevice(ctx context.Context, target models.EntityRef, request models.UpdateDevice) (*models.Device, error) {
	clause, arg := idOrNameClause(target)
	var device models.Device
	if res := s.db.WithContext(ctx).First(&device, clause, arg); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device")
	}

	if request.Addressable != nil {
		addressable, err := s.resolveAddressable(ctx, *request.Addressable)
		if err != nil {
			return nil, refValidation(err, "addressable")
		}
		device.AddressableID = addressable.ID
	}
	if request.Service != nil {
		service, err := s.resolveDeviceService(ctx, *request.Service)
		if err != nil {
			return nil, refValidation(err, "service")
		}
		device.ServiceID = service.ID
	}
	if request.Profile != nil {
		profile, err := s.resolveDeviceProfile(ctx, *request.Profile)
		if err != nil {
			return nil, refValidation(err, "profile")
		}
		device.ProfileID = profile.ID
	}
	if request.Name != nil {
		device.Name = *request.Name
	}
	if request.Description != nil {
		device.Description = *request.Description
	}
	if request.AdminState != nil {
		device.AdminState = *request.AdminState
	}
	if request.OperatingState != nil {
		device.OperatingState = *request.OperatingState
	}
	if request.Labels != nil {
		device.Labels = pq.StringArray(request.Labels)
	}
	if request.LastConnected != nil {
		device.LastConnected = *request.LastConnected
	}
	if request.LastReported != nil {
		device.LastReported = *request.LastReported
	}
	if request.Origin != nil {
		device.Origin = *request.Origin
	}

	if res := s.db.WithContext(ctx).Save(&device); res.Error != nil {
		return nil, storeErr(res.Error, "device")
	}

	updated, err := s.GetDeviceByID(ctx, device.ID)
	if err != nil {
		return nil, err
	}
	s.notifyDevice(ctx, updated, callback.ChangeUpdate)
	return updated, nil
}

func (s *Service) DeleteDeviceByID(ctx context.Context, id uuid.UUID) error {
	device, err := s.GetDeviceByID(ctx, id)
	if err != nil {
		return err
	}
	return s.deleteDevice(ctx, device)
}

func (s *Service) DeleteDeviceByName(ctx context.Context, name string) error {
	device, err := s.GetDeviceByName(ctx, name)
	if err != nil {
		return err
	}
	return s.deleteDevice(ctx, device)
}

// deleteDevice removes the device and cascades to every DeviceReport
// referencing it by name. Its Addressable, Service and Profile are left
// alone.
func (s *Service) deleteDevice(ctx context.Context, device *models.Device) error {
	if err := s.cascadeDeleteDeviceReports(ctx, device.Name); err != nil {
		return err
	}
	if res := s.db.WithContext(ctx).Delete(&models.Device{}, "id = ?", device.ID); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	s.notifyDevice(ctx, device, callback.ChangeDelete)
	return nil
}

// notifyDevice tells the device's own service about the change. Locator
// failures are logged and swallowed; the mutation has already committed.
func (s *Service) notifyDevice(ctx context.Context, device *models.Device, change callback.Change) {
	owners, err := s.ownersOfServiceID(ctx, device.ServiceID)
	if err != nil {
		s.logger.Warnf("failed to locate owning service of device %s: %v", device.ID, err)
		return
	}
	s.notifier.Notify(owners, models.SubjectDevice, device.ID.String(), change)
}
