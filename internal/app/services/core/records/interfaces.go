package records

import (
	"context"

	"policlinico-service/internal/app/models"
)

// SnapshotRepository persists the whole database as one unit. Load returns
// (nil, nil) when nothing has been stored yet.
type SnapshotRepository interface {
	Load(ctx context.Context) (*models.Database, error)
	Save(ctx context.Context, db *models.Database) error
}

// EmailLedger remembers every email that has ever been registered, so an
// address stays taken even after its record is gone.
type EmailLedger interface {
	AddKnownEmail(ctx context.Context, email string) error
	IsKnownEmail(ctx context.Context, email string) (bool, error)
}

// Exclusion lets uniqueness checks skip the record being edited.
type Exclusion struct {
	Collection string
	ID         string
}
