package histories

import (
	"context"
	"net/http"
	"time"

	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/dto/requests"
	"policlinico-service/internal/pkg/exceptions"
	"policlinico-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type HistoryController struct {
	Log            *zap.Logger
	HistoryUsecase HistoryUsecase
}

func NewHistoryController(logger *zap.Logger, historyUsecase HistoryUsecase) *HistoryController {
	return &HistoryController{
		Log:            logger,
		HistoryUsecase: historyUsecase,
	}
}

func (ctrl *HistoryController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateClinicalHistory)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HistoryUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateHistorySuccessMessage, result)
}

func (ctrl *HistoryController) Delete(w http.ResponseWriter, r *http.Request) {
	historyID := chi.URLParam(r, "historyID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.HistoryUsecase.Delete(ctx, historyID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteHistorySuccessMessage, nil)
}

func (ctrl *HistoryController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HistoryUsecase.FindAll(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListHistoriesSuccessMessage, result)
}

func (ctrl *HistoryController) FindByID(w http.ResponseWriter, r *http.Request) {
	historyID := chi.URLParam(r, "historyID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HistoryUsecase.FindByID(ctx, historyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListHistoriesSuccessMessage, result)
}

func (ctrl *HistoryController) FindByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HistoryUsecase.FindByPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListHistoriesSuccessMessage, result)
}
