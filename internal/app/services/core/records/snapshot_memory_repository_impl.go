package records

import (
	"context"
	"errors"
	"sync"

	"policlinico-service/internal/app/models"
)

// memorySnapshotRepository backs the store in tests and local runs without
// infrastructure. FailNextSave makes the next Save return an error, which is
// how the rollback path gets exercised.
type memorySnapshotRepository struct {
	mu       sync.Mutex
	snapshot *models.Database
	failNext bool
	Saves    int
}

func NewMemorySnapshotRepository() *memorySnapshotRepository {
	return &memorySnapshotRepository{}
}

func (r *memorySnapshotRepository) Load(ctx context.Context) (*models.Database, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snapshot == nil {
		return nil, nil
	}
	return r.snapshot.Clone(), nil
}

func (r *memorySnapshotRepository) Save(ctx context.Context, db *models.Database) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return errors.New("snapshot store unavailable")
	}
	r.snapshot = db.Clone()
	r.Saves++
	return nil
}

func (r *memorySnapshotRepository) FailNextSave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failNext = true
}
