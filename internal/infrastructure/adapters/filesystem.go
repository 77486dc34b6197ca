package adapters

import (
	"os"

	"interfaces-generator/internal/domain/interfaces"
)

// RealFileSystem은 실제 파일 시스템을 사용하는 FileSystem 구현체입니다.
// 생성기는 파일을 쓰지 않으므로 읽기 작업만 제공합니다.
type RealFileSystem struct{}

// NewRealFileSystem은 새로운 RealFileSystem을 생성합니다
func NewRealFileSystem() interfaces.FileSystem {
	return &RealFileSystem{}
}

// ReadFile은 파일을 읽습니다
func (fs *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists는 일반 파일이 존재하는지 확인합니다
func (fs *RealFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
