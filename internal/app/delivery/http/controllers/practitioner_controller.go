package controllers

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultPractitionerPageSize = 10

type PractitionerController struct {
	Log                 *zap.Logger
	PractitionerUsecase contracts.PractitionerUsecase
	ReviewUsecase       contracts.ReviewUsecase
}

func NewPractitionerController(logger *zap.Logger, practitionerUsecase contracts.PractitionerUsecase, reviewUsecase contracts.ReviewUsecase) *PractitionerController {
	return &PractitionerController{
		Log:                 logger,
		PractitionerUsecase: practitionerUsecase,
		ReviewUsecase:       reviewUsecase,
	}
}

// FindAll accepts the filter set as query parameters. Rating and date are
// read into the filter shape but never applied; they ride along so the
// query contract stays stable. The filtered list is paginated via page and
// page_size.
func (ctrl *PractitionerController) FindAll(w http.ResponseWriter, r *http.Request) {
	filters := &requests.PractitionerFilters{
		Specialty:        r.URL.Query().Get("specialty"),
		ConsultationType: r.URL.Query().Get("consultation_type"),
		Rating:           r.URL.Query().Get("rating"),
		Date:             r.URL.Query().Get("date"),
	}

	err := utils.ValidateStruct(filters)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	page := positiveQueryInt(r, "page", 1)
	pageSize := positiveQueryInt(r, "page_size", defaultPractitionerPageSize)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response := ctrl.PractitionerUsecase.FindAll(ctx, filters)
	pagination := utils.BuildPaginationResponse(len(response), page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PractitionerListSuccess, pagination, practitionerPage(response, page, pageSize))
}

func positiveQueryInt(r *http.Request, key string, defaultValue int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}

func practitionerPage(practitioners []responses.Practitioner, page, pageSize int) []responses.Practitioner {
	start := (page - 1) * pageSize
	if start >= len(practitioners) {
		return []responses.Practitioner{}
	}
	end := start + pageSize
	if end > len(practitioners) {
		end = len(practitioners)
	}
	return practitioners[start:end]
}

func (ctrl *PractitionerController) FindByID(w http.ResponseWriter, r *http.Request) {
	practitionerID := chi.URLParam(r, "practitionerID")
	if practitionerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "practitionerID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response := ctrl.PractitionerUsecase.FindByID(ctx, practitionerID)
	if response == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPractitionerNotExist(nil))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PractitionerGetSuccess, response)
}

func (ctrl *PractitionerController) FindReviews(w http.ResponseWriter, r *http.Request) {
	practitionerID := chi.URLParam(r, "practitionerID")
	if practitionerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "practitionerID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response := ctrl.ReviewUsecase.FindByPractitioner(ctx, practitionerID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReviewListSuccess, response)
}

func (ctrl *PractitionerController) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := ctrl.PractitionerUsecase.ListSpecialties(ctx)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SpecialtyListSuccess, response)
}
