package controllers

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HealthTipController struct {
	Log              *zap.Logger
	HealthTipUsecase contracts.HealthTipUsecase
}

func NewHealthTipController(logger *zap.Logger, healthTipUsecase contracts.HealthTipUsecase) *HealthTipController {
	return &HealthTipController{
		Log:              logger,
		HealthTipUsecase: healthTipUsecase,
	}
}

func (ctrl *HealthTipController) GetHealthTips(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("HealthTipController.GetHealthTips called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	tips, err := ctrl.HealthTipUsecase.GetHealthTips(ctx, r.URL.Query().Get("category"))
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHealthTipsSuccess, tips)
}
