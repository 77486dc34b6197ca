package services

import (
	"regexp"
	"strconv"

	"interfaces-generator/internal/domain/entities"
)

const (
	MessageInvalidIPFormat = "Invalid IP format"
	MessageOctetRange      = "IP octets must be between 0 and 255"
)

var ipv4Pattern = regexp.MustCompile(`^(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})$`)

// ValidationResult는 단일 필드 값의 검증 결과입니다
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// FieldIssue는 레코드의 특정 필드에서 발견된 검증 실패입니다
type FieldIssue struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ValidateIPv4는 점으로 구분된 IPv4 주소를 검증합니다. 빈 값은 유효합니다.
// 결과는 권고용이며 렌더링을 막지 않습니다.
func ValidateIPv4(value string) ValidationResult {
	if value == "" {
		return ValidationResult{Valid: true}
	}

	groups := ipv4Pattern.FindStringSubmatch(value)
	if groups == nil {
		return ValidationResult{Valid: false, Message: MessageInvalidIPFormat}
	}

	for _, group := range groups[1:] {
		octet, err := strconv.Atoi(group)
		if err != nil || octet < 0 || octet > 255 {
			return ValidationResult{Valid: false, Message: MessageOctetRange}
		}
	}

	return ValidationResult{Valid: true}
}

// ValidateRecord는 레코드의 주소 필드(ip, gateway, dns 슬롯)를 검증합니다
func ValidateRecord(record entities.InterfaceRecord) []FieldIssue {
	var issues []FieldIssue

	check := func(field, value string) {
		if result := ValidateIPv4(value); !result.Valid {
			issues = append(issues, FieldIssue{Field: field, Value: value, Message: result.Message})
		}
	}

	check(string(FieldIP), record.IP)
	check(string(FieldGateway), record.Gateway)
	for i, dns := range record.DNS {
		check(DNSFieldName(i), dns)
	}

	return issues
}
