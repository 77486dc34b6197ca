package adapters

import (
	"github.com/google/uuid"

	"interfaces-generator/internal/domain/interfaces"
)

// UUIDGenerator는 랜덤 UUID(v4)로 레코드 ID를 발급합니다
type UUIDGenerator struct{}

// NewUUIDGenerator는 새로운 UUIDGenerator를 생성합니다
func NewUUIDGenerator() interfaces.IDGenerator {
	return &UUIDGenerator{}
}

// NewID는 새 UUID 문자열을 반환합니다
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
