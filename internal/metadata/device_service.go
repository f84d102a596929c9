package metadata

import (
	"context"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

func (s *Service) AddDeviceService(ctx context.Context, request models.AddDeviceService) (*models.DeviceService, error) {
	if request.Name == "" {
		return nil, DataValidationError{Reason: "device service name is required"}
	}
	addressable, err := s.resolveAddressable(ctx, request.Addressable)
	if err != nil {
		return nil, refValidation(err, "addressable")
	}
	service := models.DeviceService{
		Name:           request.Name,
		Description:    request.Description,
		AdminState:     request.AdminState,
		OperatingState: request.OperatingState,
		Labels:         pq.StringArray(request.Labels),
		AddressableID:  addressable.ID,
		Origin:         request.Origin,
	}
	if res := s.db.WithContext(ctx).Create(&service); res.Error != nil {
		return nil, storeErr(res.Error, "device service")
	}
	service.Addressable = addressable
	return &service, nil
}

func (s *Service) GetDeviceServiceByID(ctx context.Context, id uuid.UUID) (*models.DeviceService, error) {
	var service models.DeviceService
	if res := s.db.WithContext(ctx).Preload("Addressable").First(&service, "id = ?", id); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device service")
	}
	return &service, nil
}

func (s *Service) GetDeviceServiceByName(ctx context.Context, name string) (*models.DeviceService, error) {
	var service models.DeviceService
	if res := s.db.WithContext(ctx).Preload("Addressable").First(&service, "name = ?", name); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device service")
	}
	return &service, nil
}

func (s *Service) ListDeviceServices(ctx context.Context) ([]models.DeviceService, error) {
	if err := s.checkLimit(ctx, &models.DeviceService{}); err != nil {
		return nil, err
	}
	services := make([]models.DeviceService, 0)
	if res := s.db.WithContext(ctx).Preload("Addressable").Order("name").Find(&services); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	return services, nil
}

// UpdateDeviceService overlays the non-nil request fields onto the stored
// entity. A replacement addressable reference must resolve.
func (s *Service) UpdateDeviceService(ctx context.Context, target models.EntityRef, request models.UpdateDeviceService) (*models.DeviceService, error) {
	clause, arg := idOrNameClause(target)
	var service models.DeviceService
	if res := s.db.WithContext(ctx).First(&service, clause, arg); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device service")
	}

	if request.Addressable != nil {
		addressable, err := s.resolveAddressable(ctx, *request.Addressable)
		if err != nil {
			return nil, refValidation(err, "addressable")
		}
		service.AddressableID = addressable.ID
	}
	if request.Name != nil {
		service.Name = *request.Name
	}
	if request.Description != nil {
		service.Description = *request.Description
	}
	if request.AdminState != nil {
		service.AdminState = *request.AdminState
	}
	if request.OperatingState != nil {
		service.OperatingState = *request.OperatingState
	}
	if request.Labels != nil {
		service.Labels = pq.StringArray(request.Labels)
	}
	if request.LastConnected != nil {
		service.LastConnected = *request.LastConnected
	}
	if request.LastReported != nil {
		service.LastReported = *request.LastReported
	}
	if request.Origin != nil {
		service.Origin = *request.Origin
	}

	if res := s.db.WithContext(ctx).Save(&service); res.Error != nil {
		return nil, storeErr(res.Error, "device service")
	}
	return s.GetDeviceServiceByID(ctx, service.ID)
}

func (s *Service) DeleteDeviceServiceByID(ctx context.Context, id uuid.UUID) error {
	service, err := s.GetDeviceServiceByID(ctx, id)
	if err != nil {
		return err
	}
	return s.deleteDeviceService(ctx, service)
}

func (s *Service) DeleteDeviceServiceByName(ctx context.Context, name string) error {
	service, err := s.GetDeviceServiceByName(ctx, name)
	if err != nil {
		return err
	}
	return s.deleteDeviceService(ctx, service)
}

// deleteDeviceService is the one deep cascade: every Device referencing the
// service goes first (with their DeviceReports), then every
// ProvisionWatcher, then the service itself. The steps are sequenced, not
// transactional.
func (s *Service) deleteDeviceService(ctx context.Context, service *models.DeviceService) error {
	if err := s.cascadeDeleteServiceDependents(ctx, service.ID); err != nil {
		return err
	}
	if res := s.db.WithContext(ctx).Delete(&models.DeviceService{}, "id = ?", service.ID); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	return nil
}
