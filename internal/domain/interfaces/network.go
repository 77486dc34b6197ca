package interfaces

import (
	"context"
	"time"

	"interfaces-generator/internal/domain/entities"
)

// ConfigRenderer는 인터페이스 레코드 목록을 설정 파일 텍스트로 변환합니다
type ConfigRenderer interface {
	// Generate는 같은 입력에 대해 항상 같은 텍스트를 반환합니다
	Generate(records []entities.InterfaceRecord, now time.Time) string
}

// LinkSource는 호스트에 존재하는 네트워크 링크를 조회합니다
type LinkSource interface {
	// ListLinks는 호스트의 모든 링크를 인덱스 순서로 반환합니다
	ListLinks(ctx context.Context) ([]entities.HostLink, error)
}
