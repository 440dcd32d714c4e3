package exports

import (
	"context"
	"strings"
	"testing"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/app/services/core/records"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStorage struct {
	uploaded string
}

func (s *stubStorage) UploadExport(ctx context.Context, bucketName, fileName, contentType string, body []byte) (string, error) {
	s.uploaded = fileName
	return fileName, nil
}

func newTestUsecase(t *testing.T) (ExportUsecase, *records.RecordStore, *stubStorage) {
	t.Helper()
	store, err := records.NewRecordStore(context.Background(), records.NewMemorySnapshotRepository(), nil, zap.NewNop())
	require.NoError(t, err)
	archive := &stubStorage{}
	return NewExportUsecase(store, archive, "exportaciones", zap.NewNop()), store, archive
}

func seedRecords(t *testing.T, store *records.RecordStore) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.CreatePatient(ctx, models.Patient{
		ID: "p-1", FullName: "Juan Pérez", Cedula: "1710034065",
		RegisteredAt: "2026-03-10 09:00:00",
	}))
	require.NoError(t, store.CreatePatient(ctx, models.Patient{
		ID: "p-2", FullName: "Ana Loor", Cedula: "0926687856",
		RegisteredAt: "2026-07-20 11:00:00",
	}))
	require.NoError(t, store.CreateInvoice(ctx, models.Invoice{
		ID: "f-1", Number: "FACT-001", Cedula: "1710034065", PatientName: "Juan Pérez",
		Service: "Consulta", Cost: 25, PaymentMethod: "Efectivo",
		IssuedAt: "2026-03-11", RegisteredAt: "2026-03-11 10:00:00",
	}))
}

func TestExportBuildDocumentXML(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	seedRecords(t, store)

	document, err := uc.BuildDocument(context.Background(), &requests.Export{
		Format:     constvars.ExportFormatXML,
		Collection: constvars.ExportCollectionAll,
	})
	require.NoError(t, err)

	assert.Equal(t, constvars.MIMEApplicationXMLUTF8, document.ContentType)
	assert.True(t, strings.HasSuffix(document.FileName, ".xml"))
	assert.Contains(t, string(document.Body), "<sistema_medico>")
	assert.Contains(t, string(document.Body), "1710034065")
}

func TestExportDateRangeFilter(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	seedRecords(t, store)

	document, err := uc.BuildDocument(context.Background(), &requests.Export{
		Format:     constvars.ExportFormatJSON,
		Collection: "pacientes",
		From:       "2026-07-01",
		To:         "2026-07-31",
	})
	require.NoError(t, err)

	body := string(document.Body)
	assert.Contains(t, body, "Ana Loor")
	assert.NotContains(t, body, "Juan Pérez")
}

func TestExportInvertedDateRange(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	_, err := uc.BuildDocument(context.Background(), &requests.Export{
		Format:     constvars.ExportFormatJSON,
		Collection: constvars.ExportCollectionAll,
		From:       "2026-08-01",
		To:         "2026-07-01",
	})
	assert.Error(t, err)
}

func TestExportPatientFilter(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	seedRecords(t, store)

	document, err := uc.BuildDocument(context.Background(), &requests.Export{
		Format:     constvars.ExportFormatJSON,
		Collection: constvars.ExportCollectionAll,
		Cedula:     "1710034065",
	})
	require.NoError(t, err)

	body := string(document.Body)
	assert.Contains(t, body, "Juan Pérez")
	assert.Contains(t, body, "FACT-001")
	assert.NotContains(t, body, "Ana Loor")
}

func TestExportPatientFilterUnknownCedula(t *testing.T) {
	uc, store, _ := newTestUsecase(t)
	seedRecords(t, store)

	_, err := uc.BuildDocument(context.Background(), &requests.Export{
		Format:     constvars.ExportFormatJSON,
		Collection: constvars.ExportCollectionAll,
		Cedula:     "0604068346",
	})
	assert.Error(t, err)
}

func TestExportArchive(t *testing.T) {
	uc, store, archive := newTestUsecase(t)
	seedRecords(t, store)

	result, err := uc.Archive(context.Background(), &requests.Export{
		Format:     constvars.ExportFormatJSON,
		Collection: "facturas",
	})
	require.NoError(t, err)

	assert.Equal(t, archive.uploaded, result.FileName)
	assert.Equal(t, "exportaciones", result.Bucket)
}
