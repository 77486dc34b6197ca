package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// 괄호로 묶어 메시지 앞에 출력하는 필드
const (
	FieldComponent = "component"
	FieldInterface = "interface"
)

const timestampFormat = "2006-01-02 15:04:05"

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string
	Format string // json, text, simple, or compact

	// Output은 기본적으로 stderr입니다. render/discover가 stdout으로 결과를 내보내기 때문입니다.
	Output io.Writer
}

// CompactFormatter는 한 줄짜리 간결한 로그 포맷입니다
type CompactFormatter struct {
	ShowTime bool
}

// Format renders a single log entry
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if f.ShowTime {
		fmt.Fprintf(b, "[%s]", entry.Time.Format("15:04:05"))
	}
	fmt.Fprintf(b, "[%s]", strings.ToUpper(entry.Level.String()))

	if component, ok := entry.Data[FieldComponent]; ok {
		fmt.Fprintf(b, "[%v]", component)
	}
	if iface, ok := entry.Data[FieldInterface]; ok {
		fmt.Fprintf(b, "[%v]", iface)
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != FieldComponent && k != FieldInterface {
			keys = append(keys, k)
		}
	}

	if len(keys) > 0 {
		sort.Strings(keys)
		b.WriteString(" (")
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%v", key, entry.Data[key])
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// NewLogger는 설정에 맞는 레벨과 포맷의 logrus 로거를 생성합니다.
// 잘못된 레벨/포맷은 info/text로 대체하고 경고를 남깁니다.
func NewLogger(config LogConfig) *logrus.Logger {
	logger := logrus.New()

	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	logger.SetOutput(output)

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
		logger.Warnf("Invalid log level '%s', defaulting to 'info'", config.Level)
	}
	logger.SetLevel(level)

	switch strings.ToLower(config.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		})
	case "simple":
		logger.SetFormatter(&CompactFormatter{ShowTime: false})
	case "compact":
		logger.SetFormatter(&CompactFormatter{ShowTime: true})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
		logger.Warnf("Invalid log format '%s', defaulting to 'text'", config.Format)
	}

	logger.WithFields(logrus.Fields{
		"level":  level.String(),
		"format": config.Format,
	}).Debug("로거 초기화 완료")

	return logger
}

// WithComponent는 component 필드가 붙은 엔트리를 반환합니다
func WithComponent(logger *logrus.Logger, component string) *logrus.Entry {
	return logger.WithField(FieldComponent, component)
}
