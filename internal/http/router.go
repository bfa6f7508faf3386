package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// 所有路由共用的服务前缀
const (
	patientsPrefix = "/care/api/v1/patients/"
	familyPrefix   = "/care/api/v1/family/"
)

// Router 使用标准库 http.ServeMux（避免引入第三方路由依赖）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterVitalsRoutes 注册患者读数/告警路由
// 路径形如 /care/api/v1/patients/{id}/vitals、/care/api/v1/patients/{id}/alerts
func (r *Router) RegisterVitalsRoutes(h *VitalsHandler) {
	r.Handle(patientsPrefix, func(w http.ResponseWriter, req *http.Request) {
		rest := strings.TrimPrefix(req.URL.Path, patientsPrefix)
		parts := strings.Split(rest, "/")
		if len(parts) != 2 || parts[0] == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		patientID := parts[0]

		switch parts[1] {
		case "vitals":
			switch req.Method {
			case http.MethodGet:
				h.GetVitals(w, req, patientID)
			case http.MethodPost:
				h.SubmitVitals(w, req, patientID)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		case "alerts":
			if req.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			h.GetAlerts(w, req, patientID)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

// RegisterFamilyRoutes 注册家属看板路由
// 路径形如 /care/api/v1/family/{patientId}/dashboard
func (r *Router) RegisterFamilyRoutes(h *DashboardHandler) {
	r.Handle(familyPrefix, func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		rest := strings.TrimPrefix(req.URL.Path, familyPrefix)
		parts := strings.Split(rest, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] != "dashboard" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.GetDashboard(w, req, parts[0])
	})
}

// RegisterHealthz 存活探针
func (r *Router) RegisterHealthz() {
	r.Handle("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
