package metadata

import (
	"context"

	"github.com/edgefleet-io/edgefleet/internal/callback"
	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

func commandsFromPayload(commands []models.AddCommand) []models.Command {
	out := make([]models.Command, 0, len(commands))
	for _, c := range commands {
		out = append(out, models.Command{
			Name:   c.Name,
			Get:    c.Get,
			Put:    c.Put,
			Origin: c.Origin,
		})
	}
	return out
}

// AddDeviceProfile registers a profile together with its owned commands.
// The command-name uniqueness check runs before anything is persisted, so a
// duplicate fails the whole add.
func (s *Service) AddDeviceProfile(ctx context.Context, request models.AddDeviceProfile) (*models.DeviceProfile, error) {
	if request.Name == "" {
		return nil, DataValidationError{Reason: "device profile name is required"}
	}
	if err := checkCommandNames(request.Commands); err != nil {
		return nil, err
	}
	profile := models.DeviceProfile{
		Name:         request.Name,
		Description:  request.Description,
		Manufacturer: request.Manufacturer,
		Model:        request.Model,
		Labels:       pq.StringArray(request.Labels),
		Commands:     commandsFromPayload(request.Commands),
		Origin:       request.Origin,
	}
	if res := s.db.WithContext(ctx).Create(&profile); res.Error != nil {
		return nil, storeErr(res.Error, "device profile")
	}
	return &profile, nil
}

func (s *Service) GetDeviceProfileByID(ctx context.Context, id uuid.UUID) (*models.DeviceProfile, error) {
	var profile models.DeviceProfile
	if res := s.db.WithContext(ctx).Preload("Commands").First(&profile, "id = ?", id); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device profile")
	}
	return &profile, nil
}

func (s *Service) GetDeviceProfileByName(ctx context.Context, name string) (*models.DeviceProfile, error) {
	var profile models.DeviceProfile
	if res := s.db.WithContext(ctx).Preload("Commands").First(&profile, "name = ?", name); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device profile")
	}
	return &profile, nil
}

func (s *Service) ListDeviceProfiles(ctx context.Context) ([]models.DeviceProfile, error) {
	if err := s.checkLimit(ctx, &models.DeviceProfile{}); err != nil {
		return nil, err
	}
	profiles := make([]models.DeviceProfile, 0)
	if res := s.db.WithContext(ctx).Preload("Commands").Order("name").Find(&profiles); res.Error != nil {
		return nil, ServiceError{Cause: res.Error}
	}
	return profiles, nil
}

// UpdateDeviceProfile overlays the non-nil request fields onto the stored
// entity. A non-nil Commands list replaces the owned command set wholesale,
// subject to the same per-profile name-uniqueness check.
func (s *Service) UpdateDeviceProfile(ctx context.Context, target models.EntityRef, request models.UpdateDeviceProfile) (*models.DeviceProfile, error) {
	clause, arg := idOrNameClause(target)
	var profile models.DeviceProfile
	if res := s.db.WithContext(ctx).First(&profile, clause, arg); res.Error != nil {
		return nil, notFoundOrService(res.Error, "device profile")
	}

	if request.Commands != nil {
		if err := checkCommandNames(request.Commands); err != nil {
			return nil, err
		}
	}
	if request.Name != nil {
		profile.Name = *request.Name
	}
	if request.Description != nil {
		profile.Description = *request.Description
	}
	if request.Manufacturer != nil {
		profile.Manufacturer = *request.Manufacturer
	}
	if request.Model != nil {
		profile.Model = *request.Model
	}
	if request.Labels != nil {
		profile.Labels = pq.StringArray(request.Labels)
	}
	if request.Origin != nil {
		profile.Origin = *request.Origin
	}

	if res := s.db.WithContext(ctx).Save(&profile); res.Error != nil {
		return nil, storeErr(res.Error, "device profile")
	}

	if request.Commands != nil {
		if err := s.cascadeDeleteProfileCommands(ctx, profile.ID); err != nil {
			return nil, err
		}
		commands := commandsFromPayload(request.Commands)
		for i := range commands {
			commands[i].ProfileID = profile.ID
		}
		if len(commands) > 0 {
			if res := s.db.WithContext(ctx).Create(&commands); res.Error != nil {
				return nil, ServiceError{Cause: res.Error}
			}
		}
	}

	owners, err := s.ownersOfProfile(ctx, profile.ID)
	if err != nil {
		s.logger.Warnf("failed to locate owners of device profile %s: %v", profile.ID, err)
	} else {
		s.notifier.Notify(owners, models.SubjectProfile, profile.ID.String(), callback.ChangeUpdate)
	}
	return s.GetDeviceProfileByID(ctx, profile.ID)
}

func (s *Service) DeleteDeviceProfileByID(ctx context.Context, id uuid.UUID) error {
	profile, err := s.GetDeviceProfileByID(ctx, id)
	if err != nil {
		return err
	}
	return s.deleteDeviceProfile(ctx, profile)
}

func (s *Service) DeleteDeviceProfileByName(ctx context.Context, name string) error {
	profile, err := s.GetDeviceProfileByName(ctx, name)
	if err != nil {
		return err
	}
	return s.deleteDeviceProfile(ctx, profile)
}

// deleteDeviceProfile blocks while any Device or ProvisionWatcher references
// the profile, then removes the owned commands and the profile itself.
func (s *Service) deleteDeviceProfile(ctx context.Context, profile *models.DeviceProfile) error {
	referenced, err := s.profileReferenced(ctx, profile.ID)
	if err != nil {
		return err
	}
	if referenced {
		return DataValidationError{Reason: "device profile is still referenced by existing devices or provision watchers"}
	}
	if err := s.cascadeDeleteProfileCommands(ctx, profile.ID); err != nil {
		return err
	}
	if res := s.db.WithContext(ctx).Delete(&models.DeviceProfile{}, "id = ?", profile.ID); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	return nil
}
