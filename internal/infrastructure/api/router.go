package api

import (
	"encoding/json"
	"net/http"

	"interfaces-generator/internal/application/usecases"
	"interfaces-generator/internal/domain/entities"
	"interfaces-generator/internal/domain/errors"
	"interfaces-generator/internal/domain/services"
	"interfaces-generator/internal/infrastructure/health"
	"interfaces-generator/internal/infrastructure/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Handler는 편집 세션을 HTTP로 노출합니다
type Handler struct {
	editor *usecases.InterfaceEditor
	health *health.HealthService
	logger *logrus.Logger
}

// PatchRequest는 PATCH /interfaces/{id} 요청 본문입니다.
// field가 "dns"이면 index로 슬롯을 지정합니다.
type PatchRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Index *int   `json:"index,omitempty"`
}

// ErrorResponse는 에러 응답 본문입니다
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewHandler는 새로운 Handler를 생성합니다
func NewHandler(editor *usecases.InterfaceEditor, healthService *health.HealthService, logger *logrus.Logger) *Handler {
	return &Handler{
		editor: editor,
		health: healthService,
		logger: logger,
	}
}

// Router는 API, 헬스 체크, 메트릭 라우트를 등록한 라우터를 반환합니다
func (h *Handler) Router() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/interfaces", h.listInterfaces).Methods(http.MethodGet)
	router.HandleFunc("/interfaces", h.addInterface).Methods(http.MethodPost)
	router.HandleFunc("/interfaces/{id}", h.getInterface).Methods(http.MethodGet)
	router.HandleFunc("/interfaces/{id}", h.patchInterface).Methods(http.MethodPatch)
	router.HandleFunc("/interfaces/{id}", h.deleteInterface).Methods(http.MethodDelete)
	router.HandleFunc("/interfaces/{id}/issues", h.interfaceIssues).Methods(http.MethodGet)
	router.HandleFunc("/config", h.config).Methods(http.MethodGet)
	router.HandleFunc("/validate/ipv4", h.validateIPv4).Methods(http.MethodGet)
	router.Handle("/healthz", h.health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

func (h *Handler) listInterfaces(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.editor.List())
}

func (h *Handler) addInterface(w http.ResponseWriter, r *http.Request) {
	record := h.editor.Add()
	h.syncRecords()
	h.writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) getInterface(w http.ResponseWriter, r *http.Request) {
	record, err := h.editor.Get(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, record)
}

func (h *Handler) patchInterface(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var request PatchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, errors.NewValidationError("invalid request body", err))
		return
	}

	var err error
	var updated entities.InterfaceRecord
	if request.Field == string(services.FieldDNS) {
		if request.Index == nil {
			h.writeError(w, errors.NewValidationError("index is required for dns", nil))
			return
		}
		updated, err = h.editor.UpdateDNS(id, *request.Index, request.Value)
	} else {
		updated, err = h.editor.Update(id, request.Field, request.Value)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteInterface(w http.ResponseWriter, r *http.Request) {
	if err := h.editor.Remove(mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	h.syncRecords()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) interfaceIssues(w http.ResponseWriter, r *http.Request) {
	issues, err := h.editor.Validate(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, issues)
}

func (h *Handler) config(w http.ResponseWriter, r *http.Request) {
	config := h.editor.Generate()

	records, issues := h.editor.Stats()
	h.health.RecordGeneration(records, issues)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(config)); err != nil {
		h.logger.WithError(err).Error("failed to write config response")
	}
}

func (h *Handler) validateIPv4(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, services.ValidateIPv4(r.URL.Query().Get("value")))
}

func (h *Handler) syncRecords() {
	records, _ := h.editor.Stats()
	h.health.SetRecords(records)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.WithError(err).Error("failed to encode response")
	}
}

// writeError는 DomainError 타입을 HTTP 상태 코드로 변환합니다
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	errorType := "system"
	switch {
	case errors.IsValidationError(err):
		status = http.StatusBadRequest
		errorType = "validation"
	case errors.IsNotFoundError(err):
		status = http.StatusNotFound
		errorType = "not_found"
	}

	metrics.RecordError(errorType)
	h.health.RecordFailure(err)

	h.logger.WithFields(logrus.Fields{
		"status": status,
		"error":  err,
	}).Warn("API 요청 실패")

	h.writeJSON(w, status, ErrorResponse{Type: errorType, Message: err.Error()})
}
