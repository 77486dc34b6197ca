package entities

import (
	"fmt"
	"strings"
)

// BondMode는 리눅스 bonding 드라이버의 모드입니다.
// 값은 모드 이름("active-backup") 또는 레이블("1 - active-backup") 어느 쪽이든 허용됩니다.
type BondMode string

const (
	BondModeBalanceRR    BondMode = "balance-rr"
	BondModeActiveBackup BondMode = "active-backup"
	BondModeBalanceXOR   BondMode = "balance-xor"
	BondModeBroadcast    BondMode = "broadcast"
	BondMode8023AD       BondMode = "802.3ad"
	BondModeBalanceTLB   BondMode = "balance-tlb"
	BondModeBalanceALB   BondMode = "balance-alb"
)

// labelSeparator는 레이블에서 숫자 코드와 모드 이름을 구분합니다
const labelSeparator = " - "

// BondModes는 숫자 코드 순서대로 정의된 모든 bond 모드입니다
var BondModes = []BondMode{
	BondModeBalanceRR,
	BondModeActiveBackup,
	BondModeBalanceXOR,
	BondModeBroadcast,
	BondMode8023AD,
	BondModeBalanceTLB,
	BondModeBalanceALB,
}

// IsSet은 모드가 지정되었는지 확인합니다
func (m BondMode) IsSet() bool {
	return m != ""
}

// Code는 설정 파일에 출력할 숫자 코드를 반환합니다.
// 레이블이면 " - " 앞의 토큰을, 알려진 모드 이름이면 해당 코드를, 그 외에는 값을 그대로 반환합니다.
func (m BondMode) Code() string {
	value := string(m)
	if code, _, found := strings.Cut(value, labelSeparator); found {
		return code
	}
	for i, mode := range BondModes {
		if mode == m {
			return fmt.Sprintf("%d", i)
		}
	}
	return value
}

// Label은 "<코드> - <이름>" 형식의 설명 레이블을 반환합니다
func (m BondMode) Label() string {
	if strings.Contains(string(m), labelSeparator) {
		return string(m)
	}
	for i, mode := range BondModes {
		if mode == m {
			return fmt.Sprintf("%d%s%s", i, labelSeparator, mode)
		}
	}
	return string(m)
}

// BondModeFromLinux는 커널이 보고하는 모드 이름을 BondMode로 변환합니다
func BondModeFromLinux(name string) (BondMode, bool) {
	for _, mode := range BondModes {
		if string(mode) == name {
			return mode, true
		}
	}
	return "", false
}
