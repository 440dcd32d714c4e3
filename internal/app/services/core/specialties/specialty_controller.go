package specialties

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

type SpecialtyController struct {
	Log              *zap.Logger
	SpecialtyUsecase SpecialtyUsecase
}

func NewSpecialtyController(logger *zap.Logger, specialtyUsecase SpecialtyUsecase) *SpecialtyController {
	return &SpecialtyController{
		Log:              logger,
		SpecialtyUsecase: specialtyUsecase,
	}
}

func (ctrl *SpecialtyController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSpecialty)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SpecialtyUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSpecialtySuccessMessage, result)
}

func (ctrl *SpecialtyController) Update(w http.ResponseWriter, r *http.Request) {
	specialtyID := chi.URLParam(r, "specialtyID")

	request := new(requests.UpdateSpecialty)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SpecialtyUsecase.Update(ctx, specialtyID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSpecialtySuccessMessage, result)
}

func (ctrl *SpecialtyController) Delete(w http.ResponseWriter, r *http.Request) {
	specialtyID := chi.URLParam(r, "specialtyID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.SpecialtyUsecase.Delete(ctx, specialtyID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSpecialtySuccessMessage, nil)
}

func (ctrl *SpecialtyController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SpecialtyUsecase.FindAll(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListSpecialtiesSuccessMessage, result)
}

func (ctrl *SpecialtyController) FindByID(w http.ResponseWriter, r *http.Request) {
	specialtyID := chi.URLParam(r, "specialtyID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SpecialtyUsecase.FindByID(ctx, specialtyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListSpecialtiesSuccessMessage, result)
}
