package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 설정 생성 관련 메트릭
	ConfigRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ifgen_config_renders_total",
			Help: "Total number of interfaces configurations rendered",
		},
		[]string{"source"}, // document, editor
	)

	ConfigRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ifgen_config_render_duration_seconds",
			Help:    "Time spent rendering an interfaces configuration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	InterfacesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ifgen_interfaces_rendered_total",
			Help: "Total number of enabled interface records passed to the renderer",
		},
		[]string{"type"}, // physical, bond, bridge, vlan
	)

	// 유효성 검증 경고 메트릭
	ValidationIssues = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ifgen_validation_issues_total",
			Help: "Total number of IPv4 validation issues found",
		},
		[]string{"field"}, // ip, gateway, dns
	)

	// 레지스트리 변경 메트릭
	RegistryOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ifgen_registry_operations_total",
			Help: "Total number of interface registry mutations",
		},
		[]string{"operation"}, // add, remove, update, update_dns
	)

	EditorRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ifgen_editor_records",
			Help: "Number of interface records held by the editing session",
		},
	)

	// 에러 메트릭
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ifgen_errors_total",
			Help: "Total number of errors encountered",
		},
		[]string{"error_type"}, // validation, not_found, system
	)

	// 빌드 정보
	GeneratorInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ifgen_info",
			Help: "Generator build information",
		},
		[]string{"version"},
	)
)

// RecordRender는 설정 생성 한 번의 시간과 횟수를 기록합니다
func RecordRender(source string, duration float64) {
	ConfigRendersTotal.WithLabelValues(source).Inc()
	ConfigRenderDuration.WithLabelValues(source).Observe(duration)
}

// RecordInterfaceRendered는 렌더러에 전달된 활성 레코드를 타입별로 기록합니다
func RecordInterfaceRendered(interfaceType string) {
	InterfacesRendered.WithLabelValues(interfaceType).Inc()
}

// RecordValidationIssue는 검증 경고를 필드별로 기록합니다
func RecordValidationIssue(field string) {
	ValidationIssues.WithLabelValues(field).Inc()
}

// RecordRegistryOperation은 레지스트리 변경을 기록합니다
func RecordRegistryOperation(operation string) {
	RegistryOperations.WithLabelValues(operation).Inc()
}

// SetEditorRecords는 편집 세션의 레코드 수를 설정합니다
func SetEditorRecords(count int) {
	EditorRecords.Set(float64(count))
}

// RecordError는 에러 발생을 기록합니다
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// SetGeneratorInfo는 빌드 정보를 설정합니다
func SetGeneratorInfo(version string) {
	GeneratorInfo.WithLabelValues(version).Set(1)
}
