package adapters

import (
	"context"
	"fmt"
	"net"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"

	"interfaces-generator/internal/domain/entities"
	"interfaces-generator/internal/domain/interfaces"
)

// NetlinkLinkSource는 netlink로 호스트 링크를 조회하는 LinkSource 구현체입니다
type NetlinkLinkSource struct {
	logger *logrus.Logger
}

// NewNetlinkLinkSource는 새로운 NetlinkLinkSource를 생성합니다
func NewNetlinkLinkSource(logger *logrus.Logger) interfaces.LinkSource {
	return &NetlinkLinkSource{
		logger: logger,
	}
}

// ListLinks는 모든 링크와 IPv4 주소를 인덱스 순서로 반환합니다
func (s *NetlinkLinkSource) ListLinks(ctx context.Context) ([]entities.HostLink, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	result := make([]entities.HostLink, 0, len(links))
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
		if err != nil {
			// 주소 조회 실패는 링크 자체를 버리지 않음
			s.logger.WithFields(logrus.Fields{
				"link":  link.Attrs().Name,
				"error": err,
			}).Warn("IPv4 주소 조회 실패")
			addrs = nil
		}

		result = append(result, toHostLink(link, addrs))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Index < result[j].Index
	})

	s.logger.WithField("count", len(result)).Debug("호스트 링크 조회 완료")
	return result, nil
}

// toHostLink는 netlink 링크를 도메인 스냅샷으로 변환합니다
func toHostLink(link netlink.Link, addrs []netlink.Addr) entities.HostLink {
	attrs := link.Attrs()
	hostLink := entities.HostLink{
		Index:       attrs.Index,
		Name:        attrs.Name,
		Kind:        link.Type(),
		MTU:         attrs.MTU,
		MasterIndex: attrs.MasterIndex,
		ParentIndex: attrs.ParentIndex,
		Loopback:    attrs.Flags&net.FlagLoopback != 0,
		Addresses:   []string{},
	}

	switch l := link.(type) {
	case *netlink.Bond:
		hostLink.BondMode = l.Mode.String()
	case *netlink.Vlan:
		hostLink.VLANID = l.VlanId
	}

	for _, addr := range addrs {
		if addr.IPNet == nil || addr.IP.To4() == nil {
			continue
		}
		hostLink.Addresses = append(hostLink.Addresses, addr.IPNet.String())
	}

	return hostLink
}
