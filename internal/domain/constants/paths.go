package constants

// 설정 파일 관련 상수들
const (
	// Debian/Ubuntu ifupdown 설정 파일 경로
	InterfacesFilePath = "/etc/network/interfaces"

	// 새 레코드 이름 접두사 (eth1, eth2, ...)
	DefaultNamePrefix = "eth"

	// 출력 들여쓰기
	StanzaIndent = "    "
)

// 렌더링 고정값들
const (
	BondMIIMonitor        = "100"
	BondXmitHashPolicy    = "layer2+3"
	BridgeSTP             = "on"
	BridgeForwardDelay    = "0"
	HeaderTimestampFormat = "2006-01-02T15:04:05Z07:00"
)

// 기본값 상수들
const (
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultListenAddr = ":8080"
)
