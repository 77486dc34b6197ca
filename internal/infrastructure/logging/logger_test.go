package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactFormatter_Format(t *testing.T) {
	entryTime := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		formatter *CompactFormatter
		data      logrus.Fields
		expected  string
	}{
		{
			name:      "필드 없음",
			formatter: &CompactFormatter{},
			data:      logrus.Fields{},
			expected:  "[INFO] 설정 생성\n",
		},
		{
			name:      "시간 포함",
			formatter: &CompactFormatter{ShowTime: true},
			data:      logrus.Fields{},
			expected:  "[03:04:05][INFO] 설정 생성\n",
		},
		{
			name:      "component와 interface는 괄호, 나머지는 정렬",
			formatter: &CompactFormatter{},
			data: logrus.Fields{
				FieldComponent: "render",
				FieldInterface: "eth0",
				"records":      2,
				"enabled":      1,
			},
			expected: "[INFO][render][eth0] 설정 생성 (enabled=1, records=2)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &logrus.Entry{
				Time:    entryTime,
				Level:   logrus.InfoLevel,
				Message: "설정 생성",
				Data:    tt.data,
			}

			out, err := tt.formatter.Format(entry)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("레벨과 JSON 포맷 적용", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: "warn", Format: "json", Output: &buf})

		assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

		logger.Info("무시됨")
		logger.WithField("id", "abc").Warn("경고")

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "경고", line["msg"])
		assert.Equal(t, "abc", line["id"])
	})

	t.Run("simple 포맷", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: "info", Format: "simple", Output: &buf})

		WithComponent(logger, "serve").Info("시작")

		assert.Equal(t, "[INFO][serve] 시작\n", buf.String())
	})

	t.Run("잘못된 레벨은 info로 대체", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: "loud", Format: "text", Output: &buf})

		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
		assert.Contains(t, buf.String(), "Invalid log level")
	})

	t.Run("잘못된 포맷은 text로 대체", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: "info", Format: "xml", Output: &buf})

		_, isText := logger.Formatter.(*logrus.TextFormatter)
		assert.True(t, isText)
		assert.Contains(t, buf.String(), "Invalid log format")
	})
}
