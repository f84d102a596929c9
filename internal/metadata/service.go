// Package metadata holds the referential-integrity core of the catalog: the
// per-entity add/update/delete operations, the guard preconditions that gate
// them, the id-or-name reference resolver, and the ownership locator that
// decides which device services get told about a change.
//
// Every mutation follows the same sequence: guard checks, then the store
// write, then owner location, then a best-effort notification dispatch. A
// guard failure aborts before the write; nothing after a successful write can
// fail the operation.
package metadata

import (
	"context"
	"errors"
	"fmt"

	"github.com/edgefleet-io/edgefleet/internal/callback"
	"github.com/edgefleet-io/edgefleet/internal/database"
	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// isDuplicate reports whether the store rejected a write for violating a
// unique index.
var isDuplicate = database.IsDuplicateError

// Notifier is the dispatch side of the notification subsystem. The concrete
// implementation is callback.Dispatcher; tests substitute their own.
type Notifier interface {
	Notify(owners []models.DeviceService, subject models.CallbackSubject, id string, change callback.Change)
}

type Config struct {
	// MaxResultCount caps bulk reads. A list whose stored count exceeds it
	// fails with LimitExceededError before the read executes.
	MaxResultCount int
}

const DefaultMaxResultCount = 50000

// Service exposes the catalog operations to the transport layer. It has no
// knowledge of HTTP; callers map the returned error kinds to status codes.
type Service struct {
	logger   *zap.SugaredLogger
	db       *gorm.DB
	notifier Notifier
	cfg      Config
}

func NewService(logger *zap.SugaredLogger, db *gorm.DB, notifier Notifier, cfg Config) *Service {
	if cfg.MaxResultCount == 0 {
		cfg.MaxResultCount = DefaultMaxResultCount
	}
	return &Service{
		logger:   logger,
		db:       db,
		notifier: notifier,
		cfg:      cfg,
	}
}

// checkLimit enforces the configured maximum result count for a bulk read of
// the given model.
func (s *Service) checkLimit(ctx context.Context, model interface{}) error {
	var count int64
	if res := s.db.WithContext(ctx).Model(model).Count(&count); res.Error != nil {
		return ServiceError{Cause: res.Error}
	}
	if int(count) > s.cfg.MaxResultCount {
		return LimitExceededError{Count: int(count), Limit: s.cfg.MaxResultCount}
	}
	return nil
}

// refValidation converts an unresolved reference into the error kind the
// calling path needs: create and attach paths fail with DataValidationError.
func refValidation(err error, field string) error {
	var notFound NotFoundError
	if errors.As(err, &notFound) {
		return DataValidationError{Reason: fmt.Sprintf("%s reference does not resolve to an existing %s", field, notFound.Resource)}
	}
	return err
}

// storeErr classifies a write failure: duplicate-key conditions become
// DataValidationError, anything else is wrapped as ServiceError.
func storeErr(err error, what string) error {
	if isDuplicate(err) {
		return DataValidationError{Reason: fmt.Sprintf("duplicate %s name", what), Duplicate: true}
	}
	return ServiceError{Cause: err}
}

func notFoundOrService(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError{Resource: resource}
	}
	return ServiceError{Cause: err}
}

func idOrNameClause(ref models.EntityRef) (string, interface{}) {
	if ref.ID != uuid.Nil {
		return "id = ?", ref.ID
	}
	return "name = ?", ref.Name
}
