package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"interfaces-generator/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// HealthService provides health check functionality
type HealthService struct {
	mu               sync.RWMutex
	clock            interfaces.Clock
	logger           *logrus.Logger
	startTime        time.Time
	generations      int64
	failedOperations int64
	lastError        error
	lastGeneratedAt  time.Time
	records          int
	validationIssues int
}

// HealthStatus represents health check status
type HealthStatus string

const (
	StatusHealthy  HealthStatus = "healthy"
	StatusDegraded HealthStatus = "degraded"
)

// HealthResponse is the health check response struct
type HealthResponse struct {
	Status     HealthStatus           `json:"status"`
	Timestamp  string                 `json:"timestamp"`
	Components map[string]interface{} `json:"components"`
	Statistics map[string]interface{} `json:"statistics"`
}

// NewHealthService creates a new HealthService
func NewHealthService(clock interfaces.Clock, logger *logrus.Logger) *HealthService {
	return &HealthService{
		clock:     clock,
		logger:    logger,
		startTime: clock.Now(),
	}
}

// RecordGeneration은 성공한 설정 생성을 기록하고 마지막 에러를 지웁니다
func (h *HealthService) RecordGeneration(records, validationIssues int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.generations++
	h.records = records
	h.validationIssues = validationIssues
	h.lastGeneratedAt = h.clock.Now()
	h.lastError = nil
}

// RecordFailure는 실패한 요청을 기록합니다
func (h *HealthService) RecordFailure(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.failedOperations++
	h.lastError = err
}

// SetRecords는 편집 세션의 현재 레코드 수를 갱신합니다
func (h *HealthService) SetRecords(records int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = records
}

// ServeHTTP handles the HTTP health check endpoint
func (h *HealthService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := h.buildHealthResponse()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.WithError(err).Error("failed to encode health check response")
	}
}

// buildHealthResponse constructs the health check response
func (h *HealthService) buildHealthResponse() HealthResponse {
	h.mu.RLock()
	defer h.mu.RUnlock()

	now := h.clock.Now()

	lastGenerated := ""
	if !h.lastGeneratedAt.IsZero() {
		lastGenerated = h.lastGeneratedAt.Format(time.RFC3339)
	}

	components := map[string]interface{}{
		"renderer": map[string]interface{}{
			"last_generated": lastGenerated,
			"error":          h.formatError(h.lastError),
		},
	}

	statistics := map[string]interface{}{
		"generations":       h.generations,
		"failed_operations": h.failedOperations,
		"records":           h.records,
		"validation_issues": h.validationIssues,
		"uptime":            h.formatUptime(now.Sub(h.startTime)),
	}

	return HealthResponse{
		Status:     h.determineOverallStatus(),
		Timestamp:  now.Format(time.RFC3339),
		Components: components,
		Statistics: statistics,
	}
}

// determineOverallStatus는 마지막 요청이 실패했으면 degraded를 반환합니다.
// 생성기는 외부 의존성이 없으므로 unhealthy 상태는 없습니다.
func (h *HealthService) determineOverallStatus() HealthStatus {
	if h.lastError != nil {
		return StatusDegraded
	}
	return StatusHealthy
}

// formatError formats an error to string
func (h *HealthService) formatError(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// formatUptime formats uptime duration to human-readable format
func (h *HealthService) formatUptime(duration time.Duration) string {
	days := int(duration.Hours()) / 24
	hours := int(duration.Hours()) % 24
	minutes := int(duration.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd%dh%dm", days, hours, minutes)
	} else if hours > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
