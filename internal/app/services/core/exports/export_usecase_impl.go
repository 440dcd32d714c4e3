package exports

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/app/services/core/records"
	"policlinico-service/internal/app/services/shared/storage"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/dto/requests"
	"policlinico-service/internal/pkg/dto/responses"
	"policlinico-service/internal/pkg/exceptions"
	"policlinico-service/internal/pkg/exporters"
	"policlinico-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type exportUsecase struct {
	Store      *records.RecordStore
	Storage    storage.Storage
	BucketName string
	Log        *zap.Logger
}

func NewExportUsecase(store *records.RecordStore, archiveStorage storage.Storage, bucketName string, logger *zap.Logger) ExportUsecase {
	return &exportUsecase{
		Store:      store,
		Storage:    archiveStorage,
		BucketName: bucketName,
		Log:        logger,
	}
}

// recordDate picks the date a record is filtered by: appointments by their
// scheduled date, invoices by their issue date, everything else by the
// registration stamp. All layouts start with YYYY-MM-DD so the comparison
// is plain string ordering on the first ten characters.
func recordDate(stamp string) string {
	if len(stamp) < len(constvars.TimeLayoutDate) {
		return stamp
	}
	return stamp[:len(constvars.TimeLayoutDate)]
}

func inRange(stamp, from, to string) bool {
	date := recordDate(stamp)
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

// filterDatabase narrows the snapshot to the requested date range and,
// when a cedula is given, to that patient's records. Doctors and
// specialties are reference data and only the date range applies to them.
func filterDatabase(db *models.Database, from, to, cedula string, patientID string) *models.Database {
	if from == "" && to == "" && cedula == "" {
		return db
	}
	out := models.NewDatabase()
	for _, p := range db.Patients {
		if inRange(p.RegisteredAt, from, to) && (cedula == "" || p.Cedula == cedula) {
			out.Patients = append(out.Patients, p)
		}
	}
	for _, a := range db.Appointments {
		if inRange(a.DateTime, from, to) && (cedula == "" || a.Cedula == cedula) {
			out.Appointments = append(out.Appointments, a)
		}
	}
	for _, d := range db.Doctors {
		if inRange(d.RegisteredAt, from, to) {
			out.Doctors = append(out.Doctors, d)
		}
	}
	for _, s := range db.Specialties {
		if inRange(s.RegisteredAt, from, to) {
			out.Specialties = append(out.Specialties, s)
		}
	}
	for _, f := range db.Invoices {
		if inRange(f.IssuedAt, from, to) && (cedula == "" || f.Cedula == cedula) {
			out.Invoices = append(out.Invoices, f)
		}
	}
	for _, h := range db.Histories {
		if inRange(h.RegisteredAt, from, to) && (cedula == "" || h.PatientID == patientID) {
			out.Histories = append(out.Histories, h)
		}
	}
	return out
}

func (uc *exportUsecase) BuildDocument(ctx context.Context, request *requests.Export) (*responses.ExportDocument, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !utils.ValidateDateRange(request.From, request.To) {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, "the start date must not be after the end date", constvars.ErrDevInvalidInput)
	}

	patientID := ""
	if request.Cedula != "" {
		patient, found := uc.Store.FindPatientByCedula(request.Cedula)
		if !found {
			return nil, exceptions.ErrPatientNotRegistered()
		}
		patientID = patient.ID
	}

	db := filterDatabase(uc.Store.Snapshot(), request.From, request.To, request.Cedula, patientID)

	var body, contentType string
	switch request.Format {
	case constvars.ExportFormatXML:
		contentType = constvars.MIMEApplicationXMLUTF8
		if request.Collection == constvars.ExportCollectionAll {
			body = exporters.EncodeDatabaseXML(db)
		} else {
			encoded, err := exporters.EncodeCollectionXML(db, request.Collection)
			if err != nil {
				return nil, err
			}
			body = encoded
		}
	case constvars.ExportFormatJSON:
		contentType = constvars.MIMEApplicationJSONUTF8
		var (
			encoded string
			err     error
		)
		if request.Collection == constvars.ExportCollectionAll {
			encoded, err = exporters.EncodeDatabaseJSON(db)
		} else {
			encoded, err = exporters.EncodeCollectionJSON(db, request.Collection)
		}
		if err != nil {
			return nil, err
		}
		body = encoded
	default:
		return nil, exceptions.ErrUnknownExportFormat(request.Format)
	}

	fileName := utils.GenerateExportFileName(exportBaseName(request.Collection), request.Format)
	uc.Log.Info("export generated",
		zap.String("collection", request.Collection),
		zap.String("format", request.Format),
		zap.Int("bytes", len(body)),
	)
	return &responses.ExportDocument{
		FileName:    fileName,
		ContentType: contentType,
		Body:        []byte(body),
	}, nil
}

func (uc *exportUsecase) Archive(ctx context.Context, request *requests.Export) (*responses.ExportArchived, error) {
	document, err := uc.BuildDocument(ctx, request)
	if err != nil {
		return nil, err
	}

	objectName, err := uc.Storage.UploadExport(ctx, uc.BucketName, document.FileName, document.ContentType, document.Body)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("export archived",
		zap.String("bucket", uc.BucketName),
		zap.String("object", objectName),
	)
	return &responses.ExportArchived{
		FileName: objectName,
		Bucket:   uc.BucketName,
	}, nil
}

func exportBaseName(collection string) string {
	if collection == constvars.ExportCollectionAll {
		return constvars.ExportFilePrefix
	}
	return collection
}
