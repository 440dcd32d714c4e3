package records

import (
	"context"
	"strings"
	"sync"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// RecordStore is the only writer of the database. Every mutation runs under
// the write lock, persists the full snapshot, and rolls back in memory when
// persistence fails, so callers never observe a state that was not stored.
type RecordStore struct {
	mu     sync.RWMutex
	db     *models.Database
	repo   SnapshotRepository
	ledger EmailLedger
	logger *zap.Logger
}

func NewRecordStore(ctx context.Context, repo SnapshotRepository, ledger EmailLedger, logger *zap.Logger) (*RecordStore, error) {
	store := &RecordStore{
		repo:   repo,
		ledger: ledger,
		logger: logger,
	}

	db, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if db == nil {
		db = models.NewDatabase()
	}
	store.db = db
	store.sanitize()

	logger.Info("record store loaded",
		zap.Int("pacientes", len(db.Patients)),
		zap.Int("citas", len(db.Appointments)),
		zap.Int("medicos", len(db.Doctors)),
		zap.Int("especialidades", len(db.Specialties)),
		zap.Int("facturas", len(db.Invoices)),
		zap.Int("historias", len(db.Histories)),
	)
	return store, nil
}

// sanitize repairs snapshots written by older versions: nil collections
// become empty slices, specialties without an identifier or name are
// dropped, and duplicated specialty ids collapse to the first occurrence.
// Name uniqueness is the creation path's job.
func (s *RecordStore) sanitize() {
	if s.db.Patients == nil {
		s.db.Patients = []models.Patient{}
	}
	if s.db.Appointments == nil {
		s.db.Appointments = []models.Appointment{}
	}
	if s.db.Doctors == nil {
		s.db.Doctors = []models.Doctor{}
	}
	if s.db.Specialties == nil {
		s.db.Specialties = []models.Specialty{}
	}
	if s.db.Invoices == nil {
		s.db.Invoices = []models.Invoice{}
	}
	if s.db.Histories == nil {
		s.db.Histories = []models.ClinicalHistory{}
	}

	seen := make(map[string]bool, len(s.db.Specialties))
	deduped := s.db.Specialties[:0]
	for _, specialty := range s.db.Specialties {
		if specialty.ID == "" || strings.TrimSpace(specialty.Name) == "" {
			s.logger.Warn("dropping malformed specialty from snapshot", zap.String("especialidad_id", specialty.ID))
			continue
		}
		if seen[specialty.ID] {
			s.logger.Warn("dropping duplicated specialty from snapshot", zap.String("especialidad_id", specialty.ID))
			continue
		}
		seen[specialty.ID] = true
		deduped = append(deduped, specialty)
	}
	s.db.Specialties = deduped
}

// mutate applies fn under the write lock and persists the result. Either
// both the memory state and the snapshot advance, or neither does.
func (s *RecordStore) mutate(ctx context.Context, fn func(db *models.Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rollback := s.db.Clone()
	if err := fn(s.db); err != nil {
		s.db = rollback
		return err
	}
	if err := s.repo.Save(ctx, s.db); err != nil {
		s.db = rollback
		s.logger.Error("snapshot persist failed, state rolled back", zap.Error(err))
		return exceptions.ErrSnapshotPersist(err)
	}
	return nil
}

// Snapshot returns a deep copy for exports and reports.
func (s *RecordStore) Snapshot() *models.Database {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.Clone()
}

// IsEmailInUse looks across patients, doctors and the known-emails ledger.
func (s *RecordStore) IsEmailInUse(ctx context.Context, email string, exclude *Exclusion) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return false, nil
	}

	s.mu.RLock()
	for _, p := range s.db.Patients {
		if strings.ToLower(strings.TrimSpace(p.Email)) != normalized {
			continue
		}
		if exclude != nil && exclude.Collection == constvars.CollectionPatients && exclude.ID == p.ID {
			continue
		}
		s.mu.RUnlock()
		return true, nil
	}
	for _, m := range s.db.Doctors {
		if strings.ToLower(strings.TrimSpace(m.Email)) != normalized {
			continue
		}
		if exclude != nil && exclude.Collection == constvars.CollectionDoctors && exclude.ID == m.ID {
			continue
		}
		s.mu.RUnlock()
		return true, nil
	}
	s.mu.RUnlock()

	if s.ledger == nil {
		return false, nil
	}
	return s.ledger.IsKnownEmail(ctx, normalized)
}
