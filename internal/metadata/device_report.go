package metadata

import (
	"context"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AddDeviceReport registers a report. The device and event names must name
// existing entities; an unresolved name fails with NotFoundError.
func (s *Service) AddDeviceReport(ctx context.Context, request models.AddDeviceReport) (*models.DeviceReport, error) {
	if request.Name == "" {
		return nil, DataValidationError{Reason: "device report name is required"}
	}
	if _, err := s.GetDeviceByName(ctx, request.Device); err != nil {
		return nil, err
	}
	if _, err := s.GetScheduleEventByName(ctx, request.Event); err != nil {
		return nil, err
	}
	report := models.DeviceReport{
		Name:     request.Name,
		Device:   request.Device,
		Event:    request.Event,
		Expected: pq.StringArray(request.Expected),
		Origin:   request.Origin,
	}
	if res := s.db.WithContext(ctx).Create(&report); res.Error != nil {
		return nil, storeErr(res.Error, "device report")
	}
	return &report, nil
}

func (s *Service) GetDeviceReportByID(ctx context.Context, id uuid.UUID) (*models.DeviceReport, error) {
	var report models.DeviceReport
	if res := s.db.WithContext(ctx).First(&report, "id = ?", id); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device report")
	}
	return &report, nil
}

func (s *Service) GetDeviceReportByName(ctx context.Context, name string) (*models.DeviceReport, error) {
	var report models.DeviceReport
	if res := s.db.WithContext(ctx).First(&report, "name = ?", name); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device report")
	}
	return &report, nil
}

func (s *Service) ListDeviceReports(ctx context.Context) ([]models.DeviceReport, error) {
	if err := s.checkLimit(ctx, &models.DeviceReport{}); err != nil {
		return nil, err
	}
	reports := make([]models.DeviceReport, 0)
	if res := s.db.WithContext(ctx).Order("name").Find(&reports); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	return reports, nil
}

// UpdateDeviceReport overlays the non-nil request fields onto the stored
// entity. Replacement device or event names must resolve.
func (s *Service) UpdateDeviceReport(ctx context.Context, target models.EntityRef, request models.UpdateDeviceReport) (*models.DeviceReport, error) {
	clause, arg := idOrNameClause(target)
	var report models.DeviceReport
	if res := s.db.WithContext(ctx).First(&report, clause, arg); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device report")
	}

	if request.Device != nil && *request.Device != report.Device {
		if _, err := s.GetDeviceByName(ctx, *request.Device); err != nil {
			return nil, err
		}
		report.Device = *request.Device
	}
	if request.Event != nil && *request.Event != report.Event {
		if _, err := s.GetScheduleEventByName(ctx, *request.Event); err != nil {
			return nil, err
		}
		report.Event = *request.Event
	}
	if request.Name != nil {
		report.Name = *request.Name
	}
	if request.Expected != nil {
		report.Expected = pq.StringArray(request.Expected)
	}
	if request.Origin != nil {
		report.Origin = *request.Origin
	}

	if res := s.db.WithContext(ctx).Save(&report); res.Error != nil {
		return nil, storeErr(res.Error, "device report")
	}
	return &report, nil
}

func (s *Service) DeleteDeviceReportByID(ctx context.Context, id uuid.UUID) error {
	report, err := s.GetDeviceReportByID(ctx, id)
	if err != nil {
		return err
	}
	return s.deleteDeviceReport(ctx, report)
}

func (s *Service) DeleteDeviceReportByName(ctx context.Context, name string) error {
	report, err := s.GetDeviceReportByName(ctx, name)
	if err != nil {
		return err
	}
	return s.deleteDeviceReport(ctx, report)
}

func (s *Service) deleteDeviceReport(ctx context.Context, report *models.DeviceReport) error {
	if res := s.db.WithContext(ctx).Delete(&models.DeviceReport{}, "id = ?", report.ID); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	return nil
}
