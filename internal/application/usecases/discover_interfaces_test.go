package usecases

import (
	"context"
	"errors"
	"testing"

	"interfaces-generator/internal/domain/entities"
	domainErrors "interfaces-generator/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDiscoverInterfacesUseCase_Execute(t *testing.T) {
	links := []entities.HostLink{
		{Index: 1, Name: "lo", Kind: "device", MTU: 65536, Loopback: true, Addresses: []string{"127.0.0.1/8"}},
		{Index: 2, Name: "eth0", Kind: "device", MTU: 1500, Addresses: []string{"10.0.0.5/24", "10.0.0.6/24"}},
		{Index: 3, Name: "eth1", Kind: "device", MTU: 1500, MasterIndex: 5},
		{Index: 4, Name: "eth2", Kind: "device", MTU: 1500, MasterIndex: 5},
		{Index: 5, Name: "bond0", Kind: "bond", MTU: 1500, BondMode: "802.3ad"},
		{Index: 6, Name: "br0", Kind: "bridge", MTU: 1500, Addresses: []string{"192.168.1.1/16"}},
		{Index: 7, Name: "veth1", Kind: "veth", MTU: 1500, MasterIndex: 6},
		{Index: 8, Name: "eth0.10", Kind: "vlan", MTU: 1500, ParentIndex: 2, VLANID: 10},
		{Index: 9, Name: "wg0", Kind: "wireguard", MTU: 1420},
	}

	source := new(MockLinkSource)
	source.On("ListLinks", mock.Anything).Return(links, nil)

	document, err := NewDiscoverInterfacesUseCase(source, newTestLogger()).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []entities.InterfaceSpec{
		{Name: "eth0", Type: "physical", Method: "static", IP: "10.0.0.5", Netmask: "24", MTU: "1500"},
		{Name: "bond0", Type: "bond", Method: "manual", MTU: "1500", Slaves: "eth1, eth2", BondMode: "4 - 802.3ad"},
		{Name: "br0", Type: "bridge", Method: "static", IP: "192.168.1.1", Netmask: "16", MTU: "1500", Slaves: "veth1"},
		{Name: "eth0.10", Type: "vlan", Method: "manual", MTU: "1500", VLANID: "10", ParentInterface: "eth0"},
	}, document.Interfaces)
	source.AssertExpectations(t)
}

func TestDiscoverInterfacesUseCase_Execute_UnknownBondMode(t *testing.T) {
	source := new(MockLinkSource)
	source.On("ListLinks", mock.Anything).Return([]entities.HostLink{
		{Index: 3, Name: "bond1", Kind: "bond", BondMode: "unknown"},
	}, nil)

	document, err := NewDiscoverInterfacesUseCase(source, newTestLogger()).Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, document.Interfaces, 1)
	assert.Equal(t, "unknown", document.Interfaces[0].BondMode)
	assert.Empty(t, document.Interfaces[0].Slaves)
	assert.Empty(t, document.Interfaces[0].MTU)
}

func TestDiscoverInterfacesUseCase_Execute_LinkSourceError(t *testing.T) {
	source := new(MockLinkSource)
	source.On("ListLinks", mock.Anything).Return(nil, errors.New("netlink: operation not permitted"))

	document, err := NewDiscoverInterfacesUseCase(source, newTestLogger()).Execute(context.Background())

	assert.Nil(t, document)
	assert.True(t, domainErrors.IsSystemError(err))
}
