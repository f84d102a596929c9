package metadata

import (
	"context"

	"github.com/edgefleet-io/edgefleet/internal/callback"
	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/google/uuid"
)

// AddScheduleEvent registers an event. The schedule name and the strong
// addressable reference must resolve; the service name is weak and is not
// checked.
func (s *Service) AddScheduleEvent(ctx context.Context, request models.AddScheduleEvent) (*models.ScheduleEvent, error) {
	if request.Name == "" {
		return nil, DataValidationError{Reason: "schedule event name is required"}
	}
	if request.Schedule == "" {
		return nil, DataValidationError{Reason: "schedule event must name a schedule"}
	}
	if _, err := s.GetScheduleByName(ctx, request.Schedule); err != nil {
		return nil, refValidation(err, "schedule")
	}
	addressable, err := s.resolveAddressable(ctx, request.Addressable)
	if err != nil {
		return nil, refValidation(err, "addressable")
	}

	event := models.ScheduleEvent{
		Name:          request.Name,
		Schedule:      request.Schedule,
		Service:       request.Service,
		Parameters:    request.Parameters,
		AddressableID: addressable.ID,
		Origin:        request.Origin,
	}
	if res := s.db.WithContext(ctx).Create(&event); res.Error != nil {
		return nil, storeErr(res.Error, "schedule event")
	}
	event.Addressable = addressable

	s.notifyEvent(ctx, &event, callback.ChangeCreate)
	return &event, nil
}

func (s *Service) GetScheduleEventByID(ctx context.Context, id uuid.UUID) (*models.ScheduleEvent, error) {
	var event models.ScheduleEvent
	if res := s.db.WithContext(ctx).Preload("Addressable").First(&event, "id = ?", id); res.Error != nil {
		return nil, notFoundOrService(res.Error, "schedule event")
	}
	return &event, nil
}

func (s *Service) GetScheduleEventByName(ctx context.Context, name string) (*models.ScheduleEvent, error) {
	var event models.ScheduleEvent
	if res := s.db.WithContext(ctx).Preload("Addressable").First(&event, "name = ?", name); res.Error != nil {
		return nil, notFoundOrService(res.Error, "schedule event")
	}
	return &event, nil
}

func (s *Service) ListScheduleEvents(ctx context.Context) ([]models.ScheduleEvent, error) {
	if err := s.checkLimit(ctx, &models.ScheduleEvent{}); err != nil {
		return nil, err
	}
	events := make([]models.ScheduleEvent, 0)
	if res := s.db.WithContext(ctx).Preload("Addressable").Order("name").Find(&events); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	return events, nil
}

// UpdateScheduleEvent overlays the non-nil request fields onto the stored
// entity. A rename is disallowed while any DeviceReport still references the
// event by name; a replacement schedule name must resolve.
func (s *Service) UpdateScheduleEvent(ctx context.Context, target models.EntityRef, request models.UpdateScheduleEvent) (*models.ScheduleEvent, error) {
	clause, arg := idOrNameClause(target)
	var event models.ScheduleEvent
	if res := s.db.WithContext(ctx).First(&event, clause, arg); res.Error != nil {
		return nil, notFoundOrService(res.Error, "schedule event")
	}

	if request.Name != nil && *request.Name != event.Name {
		referenced, err := s.eventReferenced(ctx, event.Name)
		if err != nil {
			return nil, err
		}
		if referenced {
			return nil, DataValidationError{Reason: "schedule event is still referenced by existing device reports and cannot be renamed"}
		}
		event.Name = *request.Name
	}
	if request.Schedule != nil && *request.Schedule != event.Schedule {
		if _, err := s.GetScheduleByName(ctx, *request.Schedule); err != nil {
			return nil, err
		}
		event.Schedule = *request.Schedule
	}
	if request.Service != nil {
		event.Service = *request.Service
	}
	if request.Parameters != nil {
		event.Parameters = *request.Parameters
	}
	if request.Addressable != nil {
		addressable, err := s.resolveAddressable(ctx, *request.Addressable)
		if err != nil {
			return nil, refValidation(err, "addressable")
		}
		event.AddressableID = addressable.ID
	}
	if request.Origin != nil {
		event.Origin = *request.Origin
	}

	if res := s.db.WithContext(ctx).Save(&event); res.Error != nil {
		return nil, storeErr(res.Error, "schedule event")
	}

	updated, err := s.GetScheduleEventByID(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	s.notifyEvent(ctx, updated, callback.ChangeUpdate)
	return updated, nil
}

func (s *Service) DeleteScheduleEventByID(ctx context.Context, id uuid.UUID) error {
	event, err := s.GetScheduleEventByID(ctx, id)
	if err != nil {
		return err
	}
	return s.deleteScheduleEvent(ctx, event)
}

func (s *Service) DeleteScheduleEventByName(ctx context.Context, name string) error {
	event, err := s.GetScheduleEventByName(ctx, name)
	if err != nil {
		return err
	}
	return s.deleteScheduleEvent(ctx, event)
}

func (s *Service) deleteScheduleEvent(ctx context.Context, event *models.ScheduleEvent) error {
	referenced, err := s.eventReferenced(ctx, event.Name)
	if err != nil {
		return err
	}
	if referenced {
		return DataValidationError{Reason: "schedule event is still referenced by existing device reports"}
	}
	if res := s.db.WithContext(ctx).Delete(&models.ScheduleEvent{}, "id = ?", event.ID); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	s.notifyEvent(ctx, event, callback.ChangeDelete)
	return nil
}

// notifyEvent resolves the event's weak service name and dispatches to it.
// An unresolvable name means no notification, not an error.
func (s *Service) notifyEvent(ctx context.Context, event *models.ScheduleEvent, change callback.Change) {
	owners, err := s.ownersOfEvent(ctx, event)
	if err != nil {
		s.logger.Warnf("failed to locate owning service of schedule event %s: %v", event.ID, err)
		return
	}
	s.notifier.Notify(owners, models.SubjectScheduleEvent, event.ID.String(), change)
}
