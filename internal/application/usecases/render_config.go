package usecases

import (
	"context"
	"strconv"
	"strings"
	"time"

	"interfaces-generator/internal/domain/entities"
	"interfaces-generator/internal/domain/errors"
	"interfaces-generator/internal/domain/interfaces"
	"interfaces-generator/internal/domain/services"
	"interfaces-generator/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// RenderConfigUseCase는 YAML 인터페이스 문서를 interfaces 설정 텍스트로 변환하는 유스케이스입니다
type RenderConfigUseCase struct {
	fileSystem interfaces.FileSystem
	renderer   interfaces.ConfigRenderer
	ids        interfaces.IDGenerator
	clock      interfaces.Clock
	logger     *logrus.Logger
}

// NewRenderConfigUseCase는 새로운 RenderConfigUseCase를 생성합니다
func NewRenderConfigUseCase(
	fs interfaces.FileSystem,
	renderer interfaces.ConfigRenderer,
	ids interfaces.IDGenerator,
	clock interfaces.Clock,
	logger *logrus.Logger,
) *RenderConfigUseCase {
	return &RenderConfigUseCase{
		fileSystem: fs,
		renderer:   renderer,
		ids:        ids,
		clock:      clock,
		logger:     logger,
	}
}

// RenderConfigInput은 유스케이스의 입력 파라미터입니다
type RenderConfigInput struct {
	DocumentPath string
}

// RecordIssue는 특정 인터페이스에서 발견된 검증 경고입니다
type RecordIssue struct {
	Interface string `json:"interface"`
	services.FieldIssue
}

// RenderConfigOutput은 유스케이스의 출력 결과입니다
type RenderConfigOutput struct {
	Config         string
	InterfaceCount int
	EnabledCount   int
	Warnings       []RecordIssue
}

// Execute는 문서를 읽어 레지스트리에 재생한 뒤 설정 텍스트를 생성합니다.
// 검증 경고는 출력을 막지 않습니다.
func (uc *RenderConfigUseCase) Execute(ctx context.Context, input RenderConfigInput) (*RenderConfigOutput, error) {
	start := time.Now()

	document, err := uc.loadDocument(input.DocumentPath)
	if err != nil {
		metrics.RecordError(errorLabel(err))
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	registry := services.NewInterfaceRegistry(uc.ids, uc.logger)
	for _, spec := range document.Interfaces {
		applySpec(registry, spec)
	}

	records := registry.Records()
	warnings := uc.collectWarnings(records)

	enabled := 0
	for _, record := range records {
		if record.Enabled {
			enabled++
			metrics.RecordInterfaceRendered(string(record.Type))
		}
	}

	config := uc.renderer.Generate(records, uc.clock.Now())
	metrics.RecordRender("document", time.Since(start).Seconds())

	uc.logger.WithFields(logrus.Fields{
		"document":   input.DocumentPath,
		"interfaces": len(records),
		"enabled":    enabled,
		"warnings":   len(warnings),
	}).Info("인터페이스 설정 생성 완료")

	return &RenderConfigOutput{
		Config:         config,
		InterfaceCount: len(records),
		EnabledCount:   enabled,
		Warnings:       warnings,
	}, nil
}

func (uc *RenderConfigUseCase) loadDocument(path string) (*entities.InterfaceDocument, error) {
	if path == "" {
		return nil, errors.NewValidationError("document path is required", nil)
	}
	if !uc.fileSystem.Exists(path) {
		return nil, errors.NewNotFoundError("interface document not found: " + path)
	}

	data, err := uc.fileSystem.ReadFile(path)
	if err != nil {
		return nil, errors.NewSystemError("failed to read interface document", err)
	}

	return ParseInterfaceDocument(data)
}

// collectWarnings는 레코드별 검증 경고를 모으고 로그와 메트릭에 남깁니다
func (uc *RenderConfigUseCase) collectWarnings(records []entities.InterfaceRecord) []RecordIssue {
	warnings := []RecordIssue{}
	for _, record := range records {
		for _, issue := range services.ValidateRecord(record) {
			uc.logger.WithFields(logrus.Fields{
				"interface": record.Name,
				"field":     issue.Field,
				"value":     issue.Value,
			}).Warn(issue.Message)
			metrics.RecordValidationIssue(issueMetricLabel(issue.Field))

			warnings = append(warnings, RecordIssue{Interface: record.Name, FieldIssue: issue})
		}
	}
	return warnings
}

// applySpec은 문서 항목 하나를 레지스트리 변경으로 재생합니다.
// type을 먼저 적용해야 타입 초기화가 문서 값을 지우지 않습니다.
func applySpec(registry *services.InterfaceRegistry, spec entities.InterfaceSpec) {
	id := registry.Add().ID

	if spec.Type != "" {
		registry.Update(id, services.FieldType, spec.Type)
	}
	if spec.Name != "" {
		registry.Update(id, services.FieldName, spec.Name)
	}
	if spec.Method != "" {
		registry.Update(id, services.FieldMethod, spec.Method)
	}

	registry.Update(id, services.FieldIP, spec.IP)
	registry.Update(id, services.FieldNetmask, spec.Netmask)
	registry.Update(id, services.FieldGateway, spec.Gateway)
	registry.Update(id, services.FieldMTU, spec.MTU)
	registry.Update(id, services.FieldSlaves, spec.Slaves)
	registry.Update(id, services.FieldBondMode, spec.BondMode)
	registry.Update(id, services.FieldVLANID, spec.VLANID)
	registry.Update(id, services.FieldParentInterface, spec.ParentInterface)
	registry.Update(id, services.FieldEnabled, strconv.FormatBool(spec.IsEnabled()))

	for i, dns := range spec.DNS {
		registry.UpdateDNS(id, i, dns)
	}
}

// issueMetricLabel은 "dns[1]" 같은 슬롯 필드를 "dns"로 묶습니다
func issueMetricLabel(field string) string {
	name, _, _ := strings.Cut(field, "[")
	return name
}

func errorLabel(err error) string {
	switch {
	case errors.IsValidationError(err):
		return "validation"
	case errors.IsNotFoundError(err):
		return "not_found"
	default:
		return "system"
	}
}
