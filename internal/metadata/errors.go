package metadata

import (
	"fmt"
)

// NotFoundError means a referenced or targeted entity does not exist. It is
// always surfaced to the immediate caller and never retried.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// DataValidationError means a guard precondition failed: duplicate name,
// dangling reference on delete, malformed cron, unresolved embedded
// reference, or a disallowed rename. The store is left untouched. Duplicate
// marks the name-collision case so the transport layer can answer 409.
type DataValidationError struct {
	Reason    string
	Duplicate bool
}

func (e DataValidationError) Error() string {
	return e.Reason
}

// LimitExceededError means a bulk read would exceed the configured maximum
// result count. It is raised before the read executes.
type LimitExceededError struct {
	Count int
	Limit int
}

func (e LimitExceededError) Error() string {
	return fmt.Sprintf("result count %d exceeds the configured maximum of %d", e.Count, e.Limit)
}

// ServiceError wraps any other unexpected failure from the store or a
// collaborator.
type ServiceError struct {
	Cause error
}

func (e ServiceError) Error() string {
	return fmt.Sprintf("metadata service error: %s", e.Cause)
}

func (e ServiceError) Unwrap() error {
	return e.Cause
}
