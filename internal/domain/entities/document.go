package entities

// InterfaceDocument는 CLI가 읽고 쓰는 YAML 인터페이스 목록입니다
type InterfaceDocument struct {
	Interfaces []InterfaceSpec `yaml:"interfaces" json:"interfaces"`
}

// InterfaceSpec은 문서 안의 인터페이스 하나입니다. 비어 있는 type/method는 기본값을 사용합니다.
type InterfaceSpec struct {
	Name            string   `yaml:"name" json:"name"`
	Type            string   `yaml:"type,omitempty" json:"type,omitempty"`
	Method          string   `yaml:"method,omitempty" json:"method,omitempty"`
	IP              string   `yaml:"ip,omitempty" json:"ip,omitempty"`
	Netmask         string   `yaml:"netmask,omitempty" json:"netmask,omitempty"`
	Gateway         string   `yaml:"gateway,omitempty" json:"gateway,omitempty"`
	DNS             []string `yaml:"dns,omitempty" json:"dns,omitempty"`
	MTU             string   `yaml:"mtu,omitempty" json:"mtu,omitempty"`
	Slaves          string   `yaml:"slaves,omitempty" json:"slaves,omitempty"`
	BondMode        string   `yaml:"bond_mode,omitempty" json:"bond_mode,omitempty"`
	VLANID          string   `yaml:"vlan_id,omitempty" json:"vlan_id,omitempty"`
	ParentInterface string   `yaml:"parent_interface,omitempty" json:"parent_interface,omitempty"`
	Enabled         *bool    `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

// IsEnabled는 enabled가 생략되면 true를 반환합니다
func (s InterfaceSpec) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}
