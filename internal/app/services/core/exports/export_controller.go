package exports

import (
	"context"
	"net/http"
	"time"

	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/dto/requests"
	"policlinico-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ExportController struct {
	Log           *zap.Logger
	ExportUsecase ExportUsecase
}

func NewExportController(logger *zap.Logger, exportUsecase ExportUsecase) *ExportController {
	return &ExportController{
		Log:           logger,
		ExportUsecase: exportUsecase,
	}
}

// Download streams the document as an attachment, or archives it to the
// object store when ?archive=true.
func (ctrl *ExportController) Download(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := &requests.Export{
		Format:     query.Get("format"),
		Collection: query.Get("collection"),
		From:       query.Get("from"),
		To:         query.Get("to"),
		Cedula:     query.Get("cedula"),
		Archive:    query.Get("archive") == "true",
	}
	if request.Collection == "" {
		request.Collection = constvars.ExportCollectionAll
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if request.Archive {
		result, err := ctrl.ExportUsecase.Archive(ctx, request)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExportSuccessMessage, result)
		return
	}

	document, err := ctrl.ExportUsecase.BuildDocument(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildFileResponse(w, document.ContentType, document.FileName, document.Body)
}
