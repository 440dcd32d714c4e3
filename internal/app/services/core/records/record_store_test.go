package records

import (
	"context"
	"errors"
	"testing"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubLedger struct {
	known map[string]bool
}

func (l *stubLedger) AddKnownEmail(ctx context.Context, email string) error {
	if l.known == nil {
		l.known = map[string]bool{}
	}
	l.known[email] = true
	return nil
}

func (l *stubLedger) IsKnownEmail(ctx context.Context, email string) (bool, error) {
	return l.known[email], nil
}

func newTestStore(t *testing.T) (*RecordStore, *memorySnapshotRepository, *stubLedger) {
	t.Helper()
	repo := NewMemorySnapshotRepository()
	ledger := &stubLedger{}
	store, err := NewRecordStore(context.Background(), repo, ledger, zap.NewNop())
	require.NoError(t, err)
	return store, repo, ledger
}

func somePatient(id, cedula, email string) models.Patient {
	return models.Patient{
		ID:           id,
		FullName:     "Juan Pérez",
		Cedula:       cedula,
		Email:        email,
		RegisteredAt: "2026-08-01 10:00:00",
	}
}

func TestRecordStoreCreatePatient(t *testing.T) {
	store, repo, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreatePatient(ctx, somePatient("p-1", "1710034065", "juan@live.uleam.edu.ec")))
	assert.Len(t, store.ListPatients(), 1)
	assert.Equal(t, 1, repo.Saves)

	t.Run("duplicate cedula is rejected and nothing is stored", func(t *testing.T) {
		err := store.CreatePatient(ctx, somePatient("p-2", "1710034065", "otro@live.uleam.edu.ec"))
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)

		assert.Len(t, store.ListPatients(), 1)
		assert.Equal(t, 1, repo.Saves)
	})
}

func TestRecordStorePersistFailureRollsBack(t *testing.T) {
	store, repo, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreatePatient(ctx, somePatient("p-1", "1710034065", "")))
	repo.FailNextSave()

	err := store.CreatePatient(ctx, somePatient("p-2", "0926687856", ""))
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientCannotSaveData, customErr.ClientMessage)

	t.Run("memory state matches the last persisted snapshot", func(t *testing.T) {
		patients := store.ListPatients()
		require.Len(t, patients, 1)
		assert.Equal(t, "p-1", patients[0].ID)

		persisted, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, persisted.Patients, 1)
		assert.Equal(t, "p-1", persisted.Patients[0].ID)
	})

	t.Run("store keeps working after the failure", func(t *testing.T) {
		require.NoError(t, store.CreatePatient(ctx, somePatient("p-2", "0926687856", "")))
		assert.Len(t, store.ListPatients(), 2)
	})
}

func TestRecordStoreSanitizeDedupesSpecialties(t *testing.T) {
	repo := NewMemorySnapshotRepository()
	seed := models.NewDatabase()
	seed.Specialties = []models.Specialty{
		{ID: "e-1", Name: "Cardiología"},
		{ID: "e-1", Name: "Cardiología (repetida)"},
		{ID: "", Name: "Sin identificador"},
		{ID: "e-2", Name: "  "},
		{ID: "e-3", Name: "Pediatría"},
		{ID: "e-4", Name: "cardiología"},
	}
	require.NoError(t, repo.Save(context.Background(), seed))

	store, err := NewRecordStore(context.Background(), repo, &stubLedger{}, zap.NewNop())
	require.NoError(t, err)

	specialties := store.ListSpecialties()
	require.Len(t, specialties, 3)
	assert.Equal(t, "e-1", specialties[0].ID)
	assert.Equal(t, "Cardiología", specialties[0].Name)
	assert.Equal(t, "e-3", specialties[1].ID)
	assert.Equal(t, "e-4", specialties[2].ID)
}

func TestRecordStoreLoadWithNilCollections(t *testing.T) {
	repo := NewMemorySnapshotRepository()
	require.NoError(t, repo.Save(context.Background(), &models.Database{}))

	store, err := NewRecordStore(context.Background(), repo, &stubLedger{}, zap.NewNop())
	require.NoError(t, err)

	assert.NotNil(t, store.ListPatients())
	assert.Empty(t, store.ListPatients())
	assert.Empty(t, store.ListHistories())
}

func TestRecordStoreAppointmentConflict(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	base := models.Appointment{
		ID:       "c-1",
		Doctor:   "Dr. Carlos Vera",
		DateTime: "2026-09-10T10:00",
		Status:   models.AppointmentPending,
	}
	require.NoError(t, store.CreateAppointment(ctx, base))

	t.Run("same doctor and exact datetime collide", func(t *testing.T) {
		dup := base
		dup.ID = "c-2"
		err := store.CreateAppointment(ctx, dup)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("one minute apart does not collide", func(t *testing.T) {
		next := base
		next.ID = "c-3"
		next.DateTime = "2026-09-10T10:01"
		assert.NoError(t, store.CreateAppointment(ctx, next))
	})

	t.Run("cancelled appointments free the slot", func(t *testing.T) {
		require.NoError(t, store.UpdateAppointmentStatus(ctx, "c-1", models.AppointmentCancelled))
		again := base
		again.ID = "c-4"
		assert.NoError(t, store.CreateAppointment(ctx, again))
	})
}

func TestRecordStoreAppointmentStatusTransitions(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	create := func(id string, status models.AppointmentStatus, dateTime string) {
		require.NoError(t, store.CreateAppointment(ctx, models.Appointment{
			ID:       id,
			Doctor:   "Dr. Vera",
			DateTime: dateTime,
			Status:   status,
		}))
	}

	t.Run("pending can be confirmed", func(t *testing.T) {
		create("c-1", models.AppointmentPending, "2026-09-10T08:00")
		assert.NoError(t, store.UpdateAppointmentStatus(ctx, "c-1", models.AppointmentConfirmed))
	})

	t.Run("pending cannot jump to attended", func(t *testing.T) {
		create("c-2", models.AppointmentPending, "2026-09-10T09:00")
		err := store.UpdateAppointmentStatus(ctx, "c-2", models.AppointmentAttended)
		assert.Error(t, err)
	})

	t.Run("confirmed can be attended", func(t *testing.T) {
		assert.NoError(t, store.UpdateAppointmentStatus(ctx, "c-1", models.AppointmentAttended))
	})

	t.Run("attended is terminal", func(t *testing.T) {
		err := store.UpdateAppointmentStatus(ctx, "c-1", models.AppointmentPending)
		assert.Error(t, err)
		err = store.UpdateAppointmentStatus(ctx, "c-1", models.AppointmentCancelled)
		assert.Error(t, err)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		create("c-3", models.AppointmentPending, "2026-09-10T11:00")
		require.NoError(t, store.UpdateAppointmentStatus(ctx, "c-3", models.AppointmentCancelled))
		err := store.UpdateAppointmentStatus(ctx, "c-3", models.AppointmentConfirmed)
		assert.Error(t, err)
	})

	t.Run("failed transition does not touch the snapshot", func(t *testing.T) {
		before, err := store.GetAppointment("c-1")
		require.NoError(t, err)
		_ = store.UpdateAppointmentStatus(ctx, "c-1", models.AppointmentPending)
		after, err := store.GetAppointment("c-1")
		require.NoError(t, err)
		assert.Equal(t, before.Status, after.Status)
	})
}

func TestRecordStoreEmailUniqueOnMutation(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreatePatient(ctx, somePatient("p-1", "1710034065", "juan@live.uleam.edu.ec")))

	t.Run("patient with a taken email is rejected", func(t *testing.T) {
		err := store.CreatePatient(ctx, somePatient("p-2", "0926687856", "JUAN@live.uleam.edu.ec"))
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Len(t, store.ListPatients(), 1)
	})

	t.Run("doctor with a patient's email is rejected", func(t *testing.T) {
		err := store.CreateDoctor(ctx, models.Doctor{ID: "m-1", Name: "Dr. Vera", Email: "juan@live.uleam.edu.ec"})
		assert.Error(t, err)
	})

	t.Run("update keeping its own email passes", func(t *testing.T) {
		edited := somePatient("p-1", "1710034065", "juan@live.uleam.edu.ec")
		edited.FullName = "Juan A. Pérez"
		require.NoError(t, store.UpdatePatient(ctx, "p-1", edited))
	})
}

func TestRecordStoreIsEmailInUse(t *testing.T) {
	store, _, ledger := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreatePatient(ctx, somePatient("p-1", "1710034065", "juan@live.uleam.edu.ec")))
	require.NoError(t, store.CreateDoctor(ctx, models.Doctor{ID: "m-1", Name: "Dr. Vera", Email: "vera@med.uleam.edu.ec"}))
	require.NoError(t, ledger.AddKnownEmail(ctx, "viejo@uleam.edu.ec"))

	t.Run("patient email is taken", func(t *testing.T) {
		used, err := store.IsEmailInUse(ctx, "JUAN@live.uleam.edu.ec", nil)
		require.NoError(t, err)
		assert.True(t, used)
	})

	t.Run("doctor email is taken", func(t *testing.T) {
		used, err := store.IsEmailInUse(ctx, "vera@med.uleam.edu.ec", nil)
		require.NoError(t, err)
		assert.True(t, used)
	})

	t.Run("ledger keeps old emails taken", func(t *testing.T) {
		used, err := store.IsEmailInUse(ctx, "viejo@uleam.edu.ec", nil)
		require.NoError(t, err)
		assert.True(t, used)
	})

	t.Run("excluding the edited record frees its own email", func(t *testing.T) {
		used, err := store.IsEmailInUse(ctx, "juan@live.uleam.edu.ec", &Exclusion{Collection: constvars.CollectionPatients, ID: "p-1"})
		require.NoError(t, err)
		assert.False(t, used)
	})

	t.Run("free email", func(t *testing.T) {
		used, err := store.IsEmailInUse(ctx, "nuevo@live.uleam.edu.ec", nil)
		require.NoError(t, err)
		assert.False(t, used)
	})

	t.Run("empty email is never taken", func(t *testing.T) {
		used, err := store.IsEmailInUse(ctx, "", nil)
		require.NoError(t, err)
		assert.False(t, used)
	})
}

func TestRecordStoreSpecialtyUniqueness(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateSpecialty(ctx, models.Specialty{ID: "e-1", Name: "Cardiología"}))

	err := store.CreateSpecialty(ctx, models.Specialty{ID: "e-2", Name: " cardiología"})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
}

func TestRecordStoreUpdatePreservesRegistration(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	original := somePatient("p-1", "1710034065", "")
	require.NoError(t, store.CreatePatient(ctx, original))

	edited := somePatient("p-1", "1710034065", "")
	edited.FullName = "Juan Carlos Pérez"
	edited.RegisteredAt = "should be ignored"
	require.NoError(t, store.UpdatePatient(ctx, "p-1", edited))

	stored, err := store.GetPatient("p-1")
	require.NoError(t, err)
	assert.Equal(t, "Juan Carlos Pérez", stored.FullName)
	assert.Equal(t, original.RegisteredAt, stored.RegisteredAt)
}

func TestRecordStoreSnapshotIsACopy(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreatePatient(ctx, somePatient("p-1", "1710034065", "")))

	snapshot := store.Snapshot()
	snapshot.Patients[0].FullName = "mutated"

	stored, err := store.GetPatient("p-1")
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", stored.FullName)
}
