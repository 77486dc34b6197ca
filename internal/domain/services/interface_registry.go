package services

import (
	"fmt"
	"strconv"

	"interfaces-generator/internal/domain/entities"
	"interfaces-generator/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Field는 Update로 변경할 수 있는 레코드 필드 이름입니다
type Field string

const (
	FieldName            Field = "name"
	FieldType            Field = "type"
	FieldMethod          Field = "method"
	FieldIP              Field = "ip"
	FieldNetmask         Field = "netmask"
	FieldGateway         Field = "gateway"
	FieldDNS             Field = "dns"
	FieldMTU             Field = "mtu"
	FieldSlaves          Field = "slaves"
	FieldBondMode        Field = "bondMode"
	FieldVLANID          Field = "vlanId"
	FieldParentInterface Field = "parentInterface"
	FieldEnabled         Field = "enabled"
)

var knownFields = []Field{
	FieldName, FieldType, FieldMethod, FieldIP, FieldNetmask, FieldGateway, FieldDNS,
	FieldMTU, FieldSlaves, FieldBondMode, FieldVLANID, FieldParentInterface, FieldEnabled,
}

// ParseField는 필드 이름을 Field로 변환합니다
func ParseField(name string) (Field, bool) {
	for _, field := range knownFields {
		if string(field) == name {
			return field, true
		}
	}
	return "", false
}

// DNSFieldName은 DNS 슬롯의 표시용 필드 이름을 반환합니다 (e.g., "dns[1]")
func DNSFieldName(index int) string {
	return fmt.Sprintf("%s[%d]", FieldDNS, index)
}

// InterfaceRegistry는 순서가 있는 인터페이스 레코드 컬렉션입니다.
// 레코드 간 이름 기반 참조(슬레이브 목록, VLAN 부모)를 일관되게 유지합니다.
// 동시 접근은 호출자가 직렬화해야 합니다.
type InterfaceRegistry struct {
	records []entities.InterfaceRecord
	ids     interfaces.IDGenerator
	logger  *logrus.Logger
}

// NewInterfaceRegistry는 비어 있는 InterfaceRegistry를 생성합니다
func NewInterfaceRegistry(ids interfaces.IDGenerator, logger *logrus.Logger) *InterfaceRegistry {
	return &InterfaceRegistry{
		records: []entities.InterfaceRecord{},
		ids:     ids,
		logger:  logger,
	}
}

// Add는 새 ID와 기본값을 가진 레코드를 끝에 추가하고 그 복사본을 반환합니다
func (r *InterfaceRegistry) Add() entities.InterfaceRecord {
	record := entities.NewInterfaceRecord(r.ids.NewID(), DefaultInterfaceName(len(r.records)))
	r.records = append(r.records, record)

	r.logger.WithFields(logrus.Fields{
		"id":   record.ID,
		"name": record.Name,
	}).Debug("인터페이스 레코드 추가")

	return record.Clone()
}

// Remove는 레코드를 삭제하고, 남은 레코드에서 삭제된 이름을 가리키는 참조를 정리합니다.
// 알 수 없는 ID는 무시합니다.
func (r *InterfaceRegistry) Remove(id string) {
	idx := r.indexOf(id)
	if idx < 0 {
		r.logger.WithField("id", id).Debug("삭제할 레코드 없음, 무시")
		return
	}

	removedName := r.records[idx].Name
	r.records = append(r.records[:idx], r.records[idx+1:]...)

	for i := range r.records {
		record := &r.records[i]
		switch record.Type {
		case entities.TypeBond, entities.TypeBridge:
			record.Slaves = withoutName(record.Slaves, removedName)
		case entities.TypeVLAN:
			if record.ParentInterface == removedName {
				record.ParentInterface = ""
			}
		}
	}

	r.logger.WithFields(logrus.Fields{
		"id":   id,
		"name": removedName,
	}).Debug("인터페이스 레코드 삭제")
}

// Update는 필드 하나를 변경합니다.
// slaves는 자유 입력을 파싱하고, type은 새 타입에서 의미 없는 필드를 함께 초기화합니다.
// 알 수 없는 ID, 알 수 없는 필드, 허용되지 않는 type/method 값은 무시합니다.
// DNS 슬롯은 UpdateDNS로 변경합니다.
func (r *InterfaceRegistry) Update(id string, field Field, value string) {
	record := r.find(id)
	if record == nil {
		r.logger.WithField("id", id).Debug("갱신할 레코드 없음, 무시")
		return
	}

	switch field {
	case FieldName:
		record.Name = value
	case FieldType:
		interfaceType, ok := entities.ParseInterfaceType(value)
		if !ok {
			r.ignore(id, field, value)
			return
		}
		record.ResetForType(interfaceType)
	case FieldMethod:
		method, ok := entities.ParseAddressMethod(value)
		if !ok {
			r.ignore(id, field, value)
			return
		}
		record.Method = method
	case FieldIP:
		record.IP = value
	case FieldNetmask:
		record.Netmask = value
	case FieldGateway:
		record.Gateway = value
	case FieldMTU:
		record.MTU = value
	case FieldSlaves:
		record.Slaves = ParseSlaveList(value)
	case FieldBondMode:
		record.BondMode = entities.BondMode(value)
	case FieldVLANID:
		record.VLANID = value
	case FieldParentInterface:
		record.ParentInterface = value
	case FieldEnabled:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			r.ignore(id, field, value)
			return
		}
		record.Enabled = enabled
	default:
		r.ignore(id, field, value)
	}
}

// UpdateDNS는 DNS 슬롯 하나만 교체합니다. 범위를 벗어난 index는 무시합니다.
func (r *InterfaceRegistry) UpdateDNS(id string, index int, value string) {
	record := r.find(id)
	if record == nil {
		r.logger.WithField("id", id).Debug("갱신할 레코드 없음, 무시")
		return
	}
	if index < 0 || index >= len(record.DNS) {
		r.ignore(id, FieldDNS, value)
		return
	}
	record.DNS[index] = value
}

// Records는 현재 레코드를 순서대로 복사해서 반환합니다
func (r *InterfaceRegistry) Records() []entities.InterfaceRecord {
	records := make([]entities.InterfaceRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record.Clone())
	}
	return records
}

// Get은 ID로 레코드 복사본을 조회합니다
func (r *InterfaceRegistry) Get(id string) (entities.InterfaceRecord, bool) {
	if record := r.find(id); record != nil {
		return record.Clone(), true
	}
	return entities.InterfaceRecord{}, false
}

// Len은 레코드 수를 반환합니다
func (r *InterfaceRegistry) Len() int {
	return len(r.records)
}

func (r *InterfaceRegistry) indexOf(id string) int {
	for i := range r.records {
		if r.records[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *InterfaceRegistry) find(id string) *entities.InterfaceRecord {
	if idx := r.indexOf(id); idx >= 0 {
		return &r.records[idx]
	}
	return nil
}

func (r *InterfaceRegistry) ignore(id string, field Field, value string) {
	r.logger.WithFields(logrus.Fields{
		"id":    id,
		"field": field,
		"value": value,
	}).Debug("지원하지 않는 필드 값, 무시")
}

func withoutName(names []string, name string) []string {
	kept := []string{}
	for _, n := range names {
		if n != name {
			kept = append(kept, n)
		}
	}
	return kept
}
