package controllers

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MedicalRecordController struct {
	Log                  *zap.Logger
	MedicalRecordUsecase contracts.MedicalRecordUsecase
	MaxUploadSizeInMB    int64
}

func NewMedicalRecordController(logger *zap.Logger, medicalRecordUsecase contracts.MedicalRecordUsecase, maxUploadSizeInMB int64) *MedicalRecordController {
	return &MedicalRecordController{
		Log:                  logger,
		MedicalRecordUsecase: medicalRecordUsecase,
		MaxUploadSizeInMB:    maxUploadSizeInMB,
	}
}

func (ctrl *MedicalRecordController) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("MedicalRecordController.CreateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	maxBytes := ctrl.MaxUploadSizeInMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.CreateMedicalRecord{
		PatientID:   r.FormValue("patientId"),
		RecordType:  r.FormValue("recordType"),
		Description: r.FormValue("description"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	file, fileHeader, err := r.FormFile("file")
	if err != nil && err != http.ErrMissingFile {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	var response interface{}
	if file != nil {
		defer file.Close()
		response, err = ctrl.MedicalRecordUsecase.CreateMedicalRecord(ctx, session, request, file, fileHeader.Size, fileHeader.Filename, fileHeader.Header.Get(constvars.HeaderContentType))
	} else {
		response, err = ctrl.MedicalRecordUsecase.CreateMedicalRecord(ctx, session, request, nil, 0, "", "")
	}
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicalRecordSuccess, response)
}

func (ctrl *MedicalRecordController) GetMedicalRecords(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("MedicalRecordController.GetMedicalRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := ctrl.MedicalRecordUsecase.GetMedicalRecordsByPatient(ctx, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordsSuccess, records)
}

func (ctrl *MedicalRecordController) GetMedicalRecordDownloadURL(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	recordID := chi.URLParam(r, "recordId")
	ctrl.Log.Info("MedicalRecordController.GetMedicalRecordDownloadURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	download, err := ctrl.MedicalRecordUsecase.GetMedicalRecordDownloadURL(ctx, session, recordID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DownloadMedicalRecordSuccess, download)
}
