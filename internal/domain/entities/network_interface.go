package entities

// InterfaceType는 인터페이스 레코드의 종류를 나타냅니다
type InterfaceType string

const (
	TypePhysical InterfaceType = "physical"
	TypeBond     InterfaceType = "bond"
	TypeBridge   InterfaceType = "bridge"
	TypeVLAN     InterfaceType = "vlan"
)

// AddressMethod는 interfaces 파일의 inet 주소 할당 방식입니다
type AddressMethod string

const (
	MethodStatic AddressMethod = "static"
	MethodDHCP   AddressMethod = "dhcp"
	MethodManual AddressMethod = "manual"
)

// DNSSlots는 레코드가 가지는 DNS 슬롯 수입니다
const DNSSlots = 3

// InterfaceRecord는 물리/가상 네트워크 인터페이스 하나를 나타내는 도메인 엔티티입니다.
// Type에 따라 일부 필드만 의미를 가지며, 나머지는 무시됩니다.
type InterfaceRecord struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Type            InterfaceType    `json:"type"`
	Method          AddressMethod    `json:"method"`
	IP              string           `json:"ip"`
	Netmask         string           `json:"netmask"`
	Gateway         string           `json:"gateway"`
	DNS             [DNSSlots]string `json:"dns"`
	MTU             string           `json:"mtu"`
	Slaves          []string         `json:"slaves"`
	BondMode        BondMode         `json:"bondMode"`
	VLANID          string           `json:"vlanId"`
	ParentInterface string           `json:"parentInterface"`
	Enabled         bool             `json:"enabled"`
}

// NewInterfaceRecord는 기본값이 채워진 새 레코드를 생성합니다
func NewInterfaceRecord(id, name string) InterfaceRecord {
	return InterfaceRecord{
		ID:      id,
		Name:    name,
		Type:    TypePhysical,
		Method:  MethodStatic,
		Slaves:  []string{},
		Enabled: true,
	}
}

// Clone은 슬라이스까지 복사한 레코드를 반환합니다
func (r InterfaceRecord) Clone() InterfaceRecord {
	clone := r
	clone.Slaves = append([]string{}, r.Slaves...)
	return clone
}

// IsStatic은 주소 필드를 출력해야 하는지 확인합니다
func (r *InterfaceRecord) IsStatic() bool {
	return r.Method == MethodStatic
}

// HasSlaves는 bond/bridge 멤버가 하나 이상 있는지 확인합니다
func (r *InterfaceRecord) HasSlaves() bool {
	return len(r.Slaves) > 0
}

// Nameservers는 비어 있지 않은 DNS 값을 슬롯 순서대로 반환합니다
func (r *InterfaceRecord) Nameservers() []string {
	var servers []string
	for _, dns := range r.DNS {
		if dns != "" {
			servers = append(servers, dns)
		}
	}
	return servers
}

// ResetForType은 새 타입에서 의미 없는 필드를 비웁니다
func (r *InterfaceRecord) ResetForType(t InterfaceType) {
	r.Type = t
	if t != TypeBond {
		r.BondMode = ""
	}
	if t != TypeBond && t != TypeBridge {
		r.Slaves = []string{}
	}
	if t != TypeVLAN {
		r.VLANID = ""
		r.ParentInterface = ""
	}
}

// ParseInterfaceType은 문자열을 InterfaceType으로 변환합니다
func ParseInterfaceType(value string) (InterfaceType, bool) {
	switch t := InterfaceType(value); t {
	case TypePhysical, TypeBond, TypeBridge, TypeVLAN:
		return t, true
	}
	return "", false
}

// ParseAddressMethod는 문자열을 AddressMethod로 변환합니다
func ParseAddressMethod(value string) (AddressMethod, bool) {
	switch m := AddressMethod(value); m {
	case MethodStatic, MethodDHCP, MethodManual:
		return m, true
	}
	return "", false
}
