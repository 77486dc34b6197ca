package entities

// HostLink는 호스트 커널이 보고하는 링크 하나의 스냅샷입니다
type HostLink struct {
	Index       int
	Name        string
	Kind        string // device, bond, bridge, vlan, veth 등 netlink 링크 타입
	MTU         int
	MasterIndex int
	ParentIndex int
	BondMode    string
	VLANID      int
	Loopback    bool
	Addresses   []string // IPv4 CIDR 표기 (e.g., "192.168.1.10/24")
}
