package network

import (
	"strings"
	"time"

	"interfaces-generator/internal/domain/constants"
	"interfaces-generator/internal/domain/entities"
)

// InterfacesRenderer는 인터페이스 레코드를 Debian/Ubuntu /etc/network/interfaces 문법으로 변환합니다.
// 검증기가 아닌 렌더러이므로 값은 그대로 출력되며 실패하지 않습니다.
type InterfacesRenderer struct {
	targetPath string
}

// NewInterfacesRenderer는 헤더에 targetPath를 표기하는 렌더러를 생성합니다
func NewInterfacesRenderer(targetPath string) *InterfacesRenderer {
	if targetPath == "" {
		targetPath = constants.InterfacesFilePath
	}
	return &InterfacesRenderer{
		targetPath: targetPath,
	}
}

// Generate는 레코드 순서대로 설정 텍스트를 생성합니다.
// 같은 records와 now에 대해 항상 같은 결과를 반환합니다.
func (r *InterfacesRenderer) Generate(records []entities.InterfaceRecord, now time.Time) string {
	w := &stanzaWriter{}
	r.writeHeader(w, now)

	for i := range records {
		record := &records[i]
		if !record.Enabled {
			continue
		}

		var written bool
		switch record.Type {
		case entities.TypePhysical:
			written = r.writePhysical(w, record)
		case entities.TypeBond:
			written = r.writeBond(w, record)
		case entities.TypeBridge:
			written = r.writeBridge(w, record)
		case entities.TypeVLAN:
			written = r.writeVLAN(w, record)
		}

		if written {
			w.blank()
		}
	}

	return w.String()
}

func (r *InterfacesRenderer) writeHeader(w *stanzaWriter, now time.Time) {
	w.line("# Network interfaces configuration")
	w.line("# Generated on " + now.Format(constants.HeaderTimestampFormat))
	w.line("# Target: " + r.targetPath)
	w.blank()
	w.line("auto lo")
	w.line("iface lo inet loopback")
	w.blank()
}

func (r *InterfacesRenderer) writePhysical(w *stanzaWriter, record *entities.InterfaceRecord) bool {
	r.writeStanza(w, "Physical", record)
	return true
}

func (r *InterfacesRenderer) writeBond(w *stanzaWriter, record *entities.InterfaceRecord) bool {
	r.writeStanza(w, "Bond", record)

	if record.BondMode.IsSet() {
		w.option("bond-mode", record.BondMode.Code())
		w.option("bond-miimon", constants.BondMIIMonitor)
	}
	if record.HasSlaves() {
		w.option("bond-slaves", strings.Join(record.Slaves, " "))
		w.option("bond-xmit-hash-policy", constants.BondXmitHashPolicy)
	}

	r.writeDependents(w, record, "bond-master")
	return true
}

func (r *InterfacesRenderer) writeBridge(w *stanzaWriter, record *entities.InterfaceRecord) bool {
	r.writeStanza(w, "Bridge", record)

	if record.HasSlaves() {
		w.option("bridge-ports", strings.Join(record.Slaves, " "))
		w.option("bridge-stp", constants.BridgeSTP)
		w.option("bridge-fd", constants.BridgeForwardDelay)
	}

	r.writeDependents(w, record, "bridge-master")
	return true
}

// writeVLAN은 부모와 VLAN ID가 모두 있을 때만 출력합니다
func (r *InterfacesRenderer) writeVLAN(w *stanzaWriter, record *entities.InterfaceRecord) bool {
	if record.ParentInterface == "" || record.VLANID == "" {
		return false
	}

	r.writeStanza(w, "VLAN", record)
	w.option("vlan-raw-device", record.ParentInterface)
	w.option("vlan-id", record.VLANID)
	return true
}

// writeStanza는 주석, auto, iface 줄과 공통 블록을 출력합니다
func (r *InterfacesRenderer) writeStanza(w *stanzaWriter, kind string, record *entities.InterfaceRecord) {
	w.line("# " + kind + " interface " + record.Name)
	w.line("auto " + record.Name)
	w.line("iface " + record.Name + " inet " + string(record.Method))

	if record.IsStatic() {
		w.option("address", record.IP+"/"+record.Netmask)
		if record.Gateway != "" {
			w.option("gateway", record.Gateway)
		}
		if servers := record.Nameservers(); len(servers) > 0 {
			w.option("dns-nameservers", strings.Join(servers, " "))
		}
	}
	if record.MTU != "" {
		w.option("mtu", record.MTU)
	}
}

// writeDependents는 슬레이브/포트마다 manual stanza를 출력합니다
func (r *InterfacesRenderer) writeDependents(w *stanzaWriter, record *entities.InterfaceRecord, masterKey string) {
	for _, slave := range record.Slaves {
		w.blank()
		w.line("auto " + slave)
		w.line("iface " + slave + " inet " + string(entities.MethodManual))
		w.option(masterKey, record.Name)
	}
}

type stanzaWriter struct {
	b strings.Builder
}

func (w *stanzaWriter) line(s string) {
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *stanzaWriter) option(key, value string) {
	w.line(constants.StanzaIndent + key + " " + value)
}

func (w *stanzaWriter) blank() {
	w.b.WriteByte('\n')
}

func (w *stanzaWriter) String() string {
	return w.b.String()
}
