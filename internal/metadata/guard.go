package metadata

import (
	"context"
	"fmt"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// cronParser accepts the six-field second-granularity form device schedules
// use, e.g. "0 0 12 * * ?".
var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional | cron.Descriptor,
)

func validCronExpression(expr string) bool {
	_, err := cronParser.Parse(expr)
	return err == nil
}

// checkCron gates Schedule writes whenever the cron field is set.
func checkCron(expr string) error {
	if expr == "" {
		return nil
	}
	if !validCronExpression(expr) {
		return DataValidationError{Reason: fmt.Sprintf("invalid cron expression %q", expr)}
	}
	return nil
}

// checkCommandNames enforces command-name uniqueness within a single
// profile's command list. Names may repeat across profiles.
func checkCommandNames(commands []models.AddCommand) error {
	seen := make(map[string]struct{}, len(commands))
	for _, command := range commands {
		if _, ok := seen[command.Name]; ok {
			return DataValidationError{Reason: fmt.Sprintf("duplicate command name %q in device profile", command.Name)}
		}
		seen[command.Name] = struct{}{}
	}
	return nil
}

// countWhere answers "does any dependent row point at this entity" style
// guard questions.
func (s *Service) countWhere(ctx context.Context, model interface{}, query string, args ...interface{}) (int64, error) {
	var count int64
	res := s.db.WithContext(ctx).Model(model).Where(query, args...).Count(&count)
	if res.Error != nil {
		return 0, ServiceError{Cause: res.Error}
	}
	return count, nil
}

// addressableReferenced reports whether any Device or DeviceService still
// references the Addressable. Both delete and rename are gated on it.
func (s *Service) addressableReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	devices, err := s.countWhere(ctx, &models.Device{}, "addressable_id = ?", id)
	if err != nil {
		return false, err
	}
	if devices > 0 {
		return true, nil
	}
	services, err := s.countWhere(ctx, &models.DeviceService{}, "addressable_id = ?", id)
	if err != nil {
		return false, err
	}
	return services > 0, nil
}

// profileReferenced reports whether any Device or ProvisionWatcher still
// references the DeviceProfile.
func (s *Service) profileReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	devices, err := s.countWhere(ctx, &models.Device{}, "profile_id = ?", id)
	if err != nil {
		return false, err
	}
	if devices > 0 {
		return true, nil
	}
	watchers, err := s.countWhere(ctx, &models.ProvisionWatcher{}, "profile_id = ?", id)
	if err != nil {
		return false, err
	}
	return watchers > 0, nil
}

// scheduleReferenced reports whether any ScheduleEvent references the
// Schedule by name. Both delete and rename are gated on it.
func (s *Service) scheduleReferenced(ctx context.Context, name string) (bool, error) {
	events, err := s.countWhere(ctx, &models.ScheduleEvent{}, "schedule = ?", name)
	if err != nil {
		return false, err
	}
	return events > 0, nil
}

// eventReferenced reports whether any DeviceReport references the
// ScheduleEvent by name.
func (s *Service) eventReferenced(ctx context.Context, name string) (bool, error) {
	reports, err := s.countWhere(ctx, &models.DeviceReport{}, "event = ?", name)
	if err != nil {
		return false, err
	}
	return reports > 0, nil
}

// The cascades below run as sequenced individual deletes; a crash mid-way
// can leave a dangling dependent record, matching the store's lack of
// cross-collection transactions.

// cascadeDeleteDeviceReports removes every DeviceReport referencing the
// device by name.
func (s *Service) cascadeDeleteDeviceReports(ctx context.Context, deviceName string) error {
	if res := s.db.WithContext(ctx).Where("device = ?", deviceName).Delete(&models.DeviceReport{}); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	return nil
}

// cascadeDeleteServiceDependents removes every Device, then every
// ProvisionWatcher, referencing the service. Device removal runs the device
// cascade so their reports go too.
func (s *Service) cascadeDeleteServiceDependents(ctx context.Context, serviceID uuid.UUID) error {
	var devices []models.Device
	if res := s.db.WithContext(ctx).Where("service_id = ?", serviceID).Find(&devices); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	for _, device := range devices {
		if err := s.cascadeDeleteDeviceReports(ctx, device.Name); err != nil {
			return err
		}
		if res := s.db.WithContext(ctx).Delete(&models.Device{}, "id = ?", device.ID); res.Error != nil {
			return ServiceError{Cause: res.Error}
		}
	}
	if res := s.db.WithContext(ctx).Where("service_id = ?", serviceID).Delete(&models.ProvisionWatcher{}); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	return nil
}

// cascadeDeleteProfileCommands removes the commands owned by a profile.
func (s *Service) cascadeDeleteProfileCommands(ctx context.Context, profileID uuid.UUID) error {
	if res := s.db.WithContext(ctx).Where("profile_id = ?", profileID).Delete(&models.Command{}); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	return nil
}
