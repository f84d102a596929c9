package metadata

import (
	"context"

	"github.com/edgefleet-io/edgefleet/internal/callback"
	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/google/uuid"
)

func (s *Service) AddSchedule(ctx context.Context, request models.AddSchedule) (*models.Schedule, error) {
	if request.Name == "" {
		return nil, DataValidationError{Reason: "schedule name is required"}
	}
	if err := checkCron(request.Cron); err != nil {
		return nil, err
	}
	schedule := models.Schedule{
		Name:      request.Name,
		Start:     request.Start,
		End:       request.End,
		Frequency: request.Frequency,
		Cron:      request.Cron,
		RunOnce:   request.RunOnce,
		Origin:    request.Origin,
	}
	if res := s.db.WithContext(ctx).Create(&schedule); res.Error != nil {
		return nil, storeErr(res.Error, "schedule")
	}
	return &schedule, nil
}

func (s *Service) GetScheduleByID(ctx context.Context, id uuid.UUID) (*models.Schedule, error) {
	var schedule models.Schedule
	if res := s.db.WithContext(ctx).First(&schedule, "id = ?", id); res.Error != nil {
		return nil, notFoundOrService(res.Error, "schedule")
	}
	return &schedule, nil
}

func (s *Service) GetScheduleByName(ctx context.Context, name string) (*models.Schedule, error) {
	var schedule models.Schedule
	if res := s.db.WithContext(ctx).First(&schedule, "name = ?", name); res.Error != nil {
		return nil, notFoundOrService(res.Error, "schedule")
	}
	return &schedule, nil
}

func (s *Service) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	if err := s.checkLimit(ctx, &models.Schedule{}); err != nil {
		return nil, err
	}
	schedules := make([]models.Schedule, 0)
	if res := s.db.WithContext(ctx).Order("name").Find(&schedules); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	return schedules, nil
}

// UpdateSchedule overlays the non-nil request fields onto the stored entity.
// A rename is disallowed while any ScheduleEvent still references the
// schedule by name; a changed cron field is re-validated.
func (s *Service) UpdateSchedule(ctx context.Context, target models.EntityRef, request models.UpdateSchedule) (*models.Schedule, error) {
	clause, arg := idOrNameClause(target)
	var schedule models.Schedule
	if res := s.db.WithContext(ctx).First(&schedule, clause, arg); res.Error != nil {
		return nil, notFoundOrService(res.Error, "schedule")
	}

	if request.Name != nil && *request.Name != schedule.Name {
		referenced, err := s.scheduleReferenced(ctx, schedule.Name)
		if err != nil {
			return nil, err
		}
		if referenced {
			return nil, DataValidationError{Reason: "schedule is still referenced by existing schedule events and cannot be renamed"}
		}
		schedule.Name = *request.Name
	}
	if request.Cron != nil {
		if err := checkCron(*request.Cron); err != nil {
			return nil, err
		}
		schedule.Cron = *request.Cron
	}
	if request.Start != nil {
		schedule.Start = *request.Start
	}
	if request.End != nil {
		schedule.End = *request.End
	}
	if request.Frequency != nil {
		schedule.Frequency = *request.Frequency
	}
	if request.RunOnce != nil {
		schedule.RunOnce = *request.RunOnce
	}
	if request.Origin != nil {
		schedule.Origin = *request.Origin
	}

	if res := s.db.WithContext(ctx).Save(&schedule); res.Error != nil {
		return nil, storeErr(res.Error, "schedule")
	}

	owners, err := s.ownersOfSchedule(ctx, schedule.Name)
	if err != nil {
		s.logger.Warnf("failed to locate owners of schedule %s: %v", schedule.ID, err)
	} else {
		s.notifier.Notify(owners, models.SubjectSchedule, schedule.ID.String(), callback.ChangeUpdate)
	}
	return &schedule, nil
}

func (s *Service) DeleteScheduleByID(ctx context.Context, id uuid.UUID) error {
	schedule, err := s.GetScheduleByID(ctx, id)
	if err != nil {
		return err
	}
	return s.deleteSchedule(ctx, schedule)
}

func (s *Service) DeleteScheduleByName(ctx context.Context, name string) error {
	schedule, err := s.GetScheduleByName(ctx, name)
	if err != nil {
		return err
	}
	return s.deleteSchedule(ctx, schedule)
}

func (s *Service) deleteSchedule(ctx context.Context, schedule *models.Schedule) error {
	referenced, err := s.scheduleReferenced(ctx, schedule.Name)
	if err != nil {
		return err
	}
	if referenced {
		return DataValidationError{Reason: "schedule is still referenced by existing schedule events"}
	}
	if res := s.db.WithContext(ctx).Delete(&models.Schedule{}, "id = ?", schedule.ID); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	return nil
}
