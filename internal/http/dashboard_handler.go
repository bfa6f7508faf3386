package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/service"
)

// DashboardHandler 家属看板接口
type DashboardHandler struct {
	dashboard *service.DashboardService
	logger    *zap.Logger
}

func NewDashboardHandler(dashboard *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logger}
}

// GET /care/api/v1/family/{patientId}/dashboard
// 子资源缺失降级为字段缺失；只有存储不可用才报错
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request, patientID string) {
	view, err := h.dashboard.GetDashboard(r.Context(), patientID)
	if err != nil {
		h.logger.Error("Failed to build dashboard view",
			zap.String("patient_id", patientID),
			zap.Error(err),
		)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(view))
}
