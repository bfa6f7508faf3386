package httpapi

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/apperrors"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/service"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/validator"
)

const maxBodyBytes = 1 << 20

// VitalsHandler 患者读数/告警接口
type VitalsHandler struct {
	ingest *service.IngestionService
	vitals service.VitalsStore
	alerts service.AlertsStore
	logger *zap.Logger
}

func NewVitalsHandler(ingest *service.IngestionService, vitals service.VitalsStore, alerts service.AlertsStore, logger *zap.Logger) *VitalsHandler {
	return &VitalsHandler{ingest: ingest, vitals: vitals, alerts: alerts, logger: logger}
}

// SubmitVitalsResponse POST /patients/{id}/vitals 的响应体
type SubmitVitalsResponse struct {
	Reading models.VitalsReading `json:"reading"`
	Alerts  []models.Alert       `json:"alerts"`
}

// POST /care/api/v1/patients/{id}/vitals
func (h *VitalsHandler) SubmitVitals(w http.ResponseWriter, r *http.Request, patientID string) {
	ctx := r.Context()

	var payload validator.Payload
	if err := readBodyJSON(r, maxBodyBytes, &payload); err != nil {
		writeError(w, fmt.Errorf("decode body: %v: %w", err, apperrors.ErrMalformedInput))
		return
	}

	reading, alerts, err := h.ingest.Submit(ctx, patientID, payload)
	if err != nil {
		h.logger.Warn("Vitals submission rejected",
			zap.String("patient_id", patientID),
			zap.Error(err),
		)
		writeError(w, err)
		return
	}

	if alerts == nil {
		alerts = []models.Alert{}
	}
	writeJSON(w, http.StatusOK, Ok(SubmitVitalsResponse{Reading: reading, Alerts: alerts}))
}

// GET /care/api/v1/patients/{id}/vitals
func (h *VitalsHandler) GetVitals(w http.ResponseWriter, r *http.Request, patientID string) {
	reading, err := h.vitals.GetReading(r.Context(), patientID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(reading))
}

// GET /care/api/v1/patients/{id}/alerts
// 返回全部累积告警，不做时间窗过滤（时间窗是看板的事）
func (h *VitalsHandler) GetAlerts(w http.ResponseWriter, r *http.Request, patientID string) {
	alerts, err := h.alerts.GetAlerts(r.Context(), patientID)
	if err != nil {
		writeError(w, err)
		return
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}
	writeJSON(w, http.StatusOK, Ok(alerts))
}
