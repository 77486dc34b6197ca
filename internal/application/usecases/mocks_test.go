package usecases

import (
	"context"
	"fmt"
	"io"
	"time"

	"interfaces-generator/internal/domain/entities"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// Mock 구현체들
type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileSystem) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

type MockClock struct {
	mock.Mock
}

func (m *MockClock) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

type MockConfigRenderer struct {
	mock.Mock
}

func (m *MockConfigRenderer) Generate(records []entities.InterfaceRecord, now time.Time) string {
	args := m.Called(records, now)
	return args.String(0)
}

type MockLinkSource struct {
	mock.Mock
}

func (m *MockLinkSource) ListLinks(ctx context.Context) ([]entities.HostLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.HostLink), args.Error(1)
}

// sequenceIDs는 id-1, id-2, ... 순서로 ID를 발급합니다
type sequenceIDs struct {
	next int
}

func (s *sequenceIDs) NewID() string {
	s.next++
	return fmt.Sprintf("id-%d", s.next)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
