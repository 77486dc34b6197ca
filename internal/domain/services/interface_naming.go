package services

import (
	"fmt"
	"strings"

	"interfaces-generator/internal/domain/constants"
)

// DefaultInterfaceName은 현재 레코드 수로부터 새 레코드의 기본 이름을 만듭니다.
// 기존 이름과의 충돌은 검사하지 않습니다.
func DefaultInterfaceName(count int) string {
	return fmt.Sprintf("%s%d", constants.DefaultNamePrefix, count+1)
}

// ParseSlaveList는 쉼표로 구분된 자유 입력을 슬레이브 이름 목록으로 변환합니다.
// 각 항목은 공백이 제거되며 빈 항목은 버려지고, 중복은 그대로 유지됩니다.
func ParseSlaveList(raw string) []string {
	slaves := []string{}
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			slaves = append(slaves, name)
		}
	}
	return slaves
}
