package interfaces

import (
	"time"
)

// FileSystem은 파일 시스템 작업을 추상화하는 인터페이스입니다
type FileSystem interface {
	// ReadFile은 파일을 읽습니다
	ReadFile(path string) ([]byte, error)

	// Exists는 파일이나 디렉토리가 존재하는지 확인합니다
	Exists(path string) bool
}

// Clock은 시간 관련 작업을 추상화하는 인터페이스입니다
type Clock interface {
	// Now는 현재 시간을 반환합니다
	Now() time.Time
}

// IDGenerator는 인터페이스 레코드의 고유 ID를 발급합니다
type IDGenerator interface {
	// NewID는 한 번도 발급된 적 없는 ID를 반환합니다
	NewID() string
}
