package metadata

import (
	"context"

	"github.com/edgefleet-io/edgefleet/internal/callback"
	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddProvisionWatcher registers a watcher. Both strong references must
// resolve to already-persisted entities.
func (s *Service) AddProvisionWatcher(ctx context.Context, request models.AddProvisionWatcher) (*models.ProvisionWatcher, error) {
	if request.Name == "" {
		return nil, DataValidationError{Reason: "provision watcher name is required"}
	}
	profile, err := s.resolveDeviceProfile(ctx, request.Profile)
	if err != nil {
		return nil, refValidation(err, "profile")
	}
	service, err := s.resolveDeviceService(ctx, request.Service)
	if err != nil {
		return nil, refValidation(err, "service")
	}

	watcher := models.ProvisionWatcher{
		Name:           request.Name,
		Identifiers:    request.Identifiers,
		ProfileID:      profile.ID,
		ServiceID:      service.ID,
		OperatingState: request.OperatingState,
		Origin:         request.Origin,
	}
	if res := s.db.WithContext(ctx).Create(&watcher); res.Error != nil {
		return nil, storeErr(res.Error, "provision watcher")
	}
	watcher.Profile = profile
	watcher.Service = service

	s.notifyWatcher(ctx, &watcher, callback.ChangeCreate)
	return &watcher, nil
}

func (s *Service) watcherQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Profile").
		Preload("Profile.Commands").
		Preload("Service").
		Preload("Service.Addressable")
}

func (s *Service) GetProvisionWatcherByID(ctx context.Context, id uuid.UUID) (*models.ProvisionWatcher, error) {
	var watcher models.ProvisionWatcher
	if res := s.watcherQuery(ctx).First(&watcher, "id = ?", id); res.Error != nil {
		return nil, notFoundOrService(res.Error, "provision watcher")
	}
	return &watcher, nil
}

func (s *Service) GetProvisionWatcherByName(ctx context.Context, name string) (*models.ProvisionWatcher, error) {
	var watcher models.ProvisionWatcher
	if res := s.watcherQuery(ctx).First(&watcher, "name = ?", name); res.Error != nil {
		return nil, notFoundOrService(res.Error, "provision watcher")
	}
	return &watcher, nil
}

func (s *Service) ListProvisionWatchers(ctx context.Context) ([]models.ProvisionWatcher, error) {
	if err := s.checkLimit(ctx, &models.ProvisionWatcher{}); err != nil {
		return nil, err
	}
	watchers := make([]models.ProvisionWatcher, 0)
	if res := s.watcherQuery(ctx).Order("name").Find(&watchers); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	return watchers, nil
}

// UpdateProvisionWatcher overlays the non-nil request fields onto the stored
// entity. Replacement references must resolve.
func (s *Service) UpdateProvisionWatcher(ctx context.Context, target models.EntityRef, request models.UpdateProvisionWatcher) (*models.ProvisionWatcher, error) {
	clause, arg := idOrNameClause(target)
	var watcher models.ProvisionWatcher
	if res := s.db.WithContext(ctx).First(&watcher, clause, arg); res.Error != nil {
		return nil, notFoundOrService(res.Error, "provision watcher")
	}

	if request.Profile != nil {
		profile, err := s.resolveDeviceProfile(ctx, *request.Profile)
		if err != nil {
			return nil, refValidation(err, "profile")
		}
		watcher.ProfileID = profile.ID
	}
	if request.Service != nil {
		service, err := s.resolveDeviceService(ctx, *request.Service)
		if err != nil {
			return nil, refValidation(err, "service")
		}
		watcher.ServiceID = service.ID
	}
	if request.Name != nil {
		watcher.Name = *request.Name
	}
	if request.Identifiers != nil {
		watcher.Identifiers = request.Identifiers
	}
	if request.OperatingState != nil {
		watcher.OperatingState = *request.OperatingState
	}
	if request.Origin != nil {
		watcher.Origin = *request.Origin
	}

	if res := s.db.WithContext(ctx).Save(&watcher); res.Error != nil {
		return nil, storeErr(res.Error, "provision watcher")
	}

	updated, err := s.GetProvisionWatcherByID(ctx, watcher.ID)
	if err != nil {
		return nil, err
	}
	s.notifyWatcher(ctx, updated, callback.ChangeUpdate)
	return updated, nil
}

func (s *Service) DeleteProvisionWatcherByID(ctx context.Context, id uuid.UUID) error {
	watcher, err := s.GetProvisionWatcherByID(ctx, id)
	if err != nil {
		return err
	}
	return s.deleteProvisionWatcher(ctx, watcher)
}

func (s *Service) DeleteProvisionWatcherByName(ctx context.Context, name string) error {
	watcher, err := s.GetProvisionWatcherByName(ctx, name)
	if err != nil {
		return err
	}
	return s.deleteProvisionWatcher(ctx, watcher)
}

func (s *Service) deleteProvisionWatcher(ctx context.Context, watcher *models.ProvisionWatcher) error {
	if res := s.db.WithContext(ctx).Delete(&models.ProvisionWatcher{}, "id = ?", watcher.ID); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	s.notifyWatcher(ctx, watcher, callback.ChangeDelete)
	return nil
}

// notifyWatcher tells the watcher's own service about the change.
func (s *Service) notifyWatcher(ctx context.Context, watcher *models.ProvisionWatcher, change callback.Change) {
	owners, err := s.ownersOfServiceID(ctx, watcher.ServiceID)
	if err != nil {
		s.logger.Warnf("failed to locate owning service of provision watcher %s: %v", watcher.ID, err)
		return
	}
	s.notifier.Notify(owners, models.SubjectProvisionWatcher, watcher.ID.String(), change)
}
