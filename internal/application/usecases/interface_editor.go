package usecases

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"interfaces-generator/internal/domain/entities"
	"interfaces-generator/internal/domain/errors"
	"interfaces-generator/internal/domain/interfaces"
	"interfaces-generator/internal/domain/services"
	"interfaces-generator/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// InterfaceEditor는 하나의 레지스트리를 감싸는 편집 세션입니다.
// 모든 레지스트리 접근은 mu로 직렬화됩니다.
type InterfaceEditor struct {
	mu       sync.Mutex
	registry *services.InterfaceRegistry
	renderer interfaces.ConfigRenderer
	clock    interfaces.Clock
	logger   *logrus.Logger
}

// NewInterfaceEditor는 비어 있는 편집 세션을 생성합니다
func NewInterfaceEditor(
	ids interfaces.IDGenerator,
	renderer interfaces.ConfigRenderer,
	clock interfaces.Clock,
	logger *logrus.Logger,
) *InterfaceEditor {
	metrics.SetEditorRecords(0)
	return &InterfaceEditor{
		registry: services.NewInterfaceRegistry(ids, logger),
		renderer: renderer,
		clock:    clock,
		logger:   logger,
	}
}

// Add는 기본값을 가진 레코드를 추가합니다
func (e *InterfaceEditor) Add() entities.InterfaceRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	record := e.registry.Add()
	e.recordOperation("add")
	return record
}

// Remove는 레코드를 삭제하고 다른 레코드의 참조를 정리합니다
func (e *InterfaceEditor) Remove(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.registry.Get(id); !ok {
		return errors.NewNotFoundError("interface not found: " + id)
	}

	e.registry.Remove(id)
	e.recordOperation("remove")
	return nil
}

// Update는 필드 하나를 변경하고 변경된 레코드를 반환합니다.
// 레지스트리는 잘못된 type/method/enabled 값을 조용히 무시하지만, 편집 세션은 호출자에게 알려줍니다.
func (e *InterfaceEditor) Update(id, field, value string) (entities.InterfaceRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.registry.Get(id); !ok {
		return entities.InterfaceRecord{}, errors.NewNotFoundError("interface not found: " + id)
	}

	parsed, ok := services.ParseField(field)
	if !ok {
		return entities.InterfaceRecord{}, errors.NewValidationError("unknown field: "+field, nil)
	}
	if err := checkFieldValue(parsed, value); err != nil {
		return entities.InterfaceRecord{}, err
	}

	e.registry.Update(id, parsed, value)
	e.recordOperation("update")

	record, _ := e.registry.Get(id)
	return record, nil
}

// UpdateDNS는 DNS 슬롯 하나를 변경하고 변경된 레코드를 반환합니다
func (e *InterfaceEditor) UpdateDNS(id string, index int, value string) (entities.InterfaceRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.registry.Get(id); !ok {
		return entities.InterfaceRecord{}, errors.NewNotFoundError("interface not found: " + id)
	}
	if index < 0 || index >= entities.DNSSlots {
		return entities.InterfaceRecord{}, errors.NewValidationError(
			fmt.Sprintf("dns index must be between 0 and %d", entities.DNSSlots-1), nil)
	}

	e.registry.UpdateDNS(id, index, value)
	e.recordOperation("update_dns")

	record, _ := e.registry.Get(id)
	return record, nil
}

// List는 모든 레코드를 순서대로 반환합니다
func (e *InterfaceEditor) List() []entities.InterfaceRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.registry.Records()
}

// Get은 ID로 레코드를 조회합니다
func (e *InterfaceEditor) Get(id string) (entities.InterfaceRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	record, ok := e.registry.Get(id)
	if !ok {
		return entities.InterfaceRecord{}, errors.NewNotFoundError("interface not found: " + id)
	}
	return record, nil
}

// Validate는 레코드의 주소 필드 검증 결과를 반환합니다
func (e *InterfaceEditor) Validate(id string) ([]services.FieldIssue, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	record, ok := e.registry.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("interface not found: " + id)
	}

	issues := services.ValidateRecord(record)
	if issues == nil {
		issues = []services.FieldIssue{}
	}
	return issues, nil
}

// Generate는 현재 레코드로 설정 텍스트를 생성합니다
func (e *InterfaceEditor) Generate() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	records := e.registry.Records()
	config := e.renderer.Generate(records, e.clock.Now())
	metrics.RecordRender("editor", time.Since(start).Seconds())

	e.logger.WithField("records", len(records)).Debug("편집 세션 설정 생성")
	return config
}

// Stats는 전체 레코드 수와 검증 경고 수를 반환합니다
func (e *InterfaceEditor) Stats() (records, issues int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	all := e.registry.Records()
	for _, record := range all {
		issues += len(services.ValidateRecord(record))
	}
	return len(all), issues
}

func (e *InterfaceEditor) recordOperation(operation string) {
	metrics.RecordRegistryOperation(operation)
	metrics.SetEditorRecords(e.registry.Len())
}

func checkFieldValue(field services.Field, value string) error {
	switch field {
	case services.FieldDNS:
		return errors.NewValidationError("dns slots are updated by index", nil)
	case services.FieldType:
		if _, ok := entities.ParseInterfaceType(value); !ok {
			return errors.NewValidationError("unsupported type: "+value, nil)
		}
	case services.FieldMethod:
		if _, ok := entities.ParseAddressMethod(value); !ok {
			return errors.NewValidationError("unsupported method: "+value, nil)
		}
	case services.FieldEnabled:
		if _, err := strconv.ParseBool(value); err != nil {
			return errors.NewValidationError("enabled must be a boolean", err)
		}
	}
	return nil
}
