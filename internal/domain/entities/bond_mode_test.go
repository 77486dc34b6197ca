package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBondMode_Code(t *testing.T) {
	tests := []struct {
		name     string
		mode     BondMode
		expected string
	}{
		{"balance-rr", BondModeBalanceRR, "0"},
		{"active-backup", BondModeActiveBackup, "1"},
		{"balance-xor", BondModeBalanceXOR, "2"},
		{"broadcast", BondModeBroadcast, "3"},
		{"802.3ad", BondMode8023AD, "4"},
		{"balance-tlb", BondModeBalanceTLB, "5"},
		{"balance-alb", BondModeBalanceALB, "6"},
		{"레이블 형식", BondMode("4 - 802.3ad (LACP)"), "4"},
		{"알 수 없는 값은 그대로", BondMode("mystery"), "mystery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.Code())
		})
	}
}

func TestBondMode_Label(t *testing.T) {
	assert.Equal(t, "1 - active-backup", BondModeActiveBackup.Label())
	assert.Equal(t, "4 - 802.3ad", BondMode8023AD.Label())
	assert.Equal(t, "6 - custom", BondMode("6 - custom").Label())
	assert.Equal(t, "mystery", BondMode("mystery").Label())
}

func TestBondModeFromLinux(t *testing.T) {
	mode, ok := BondModeFromLinux("802.3ad")
	assert.True(t, ok)
	assert.Equal(t, BondMode8023AD, mode)

	_, ok = BondModeFromLinux("unknown")
	assert.False(t, ok)
}
