package usecases

import (
	"context"
	"strconv"
	"strings"

	"interfaces-generator/internal/domain/entities"
	"interfaces-generator/internal/domain/errors"
	"interfaces-generator/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// 커널 링크 타입 → 레코드 타입
var linkKindTypes = map[string]entities.InterfaceType{
	"device": entities.TypePhysical,
	"bond":   entities.TypeBond,
	"bridge": entities.TypeBridge,
	"vlan":   entities.TypeVLAN,
}

// DiscoverInterfacesUseCase는 호스트 링크로부터 시작용 인터페이스 문서를 만듭니다
type DiscoverInterfacesUseCase struct {
	links  interfaces.LinkSource
	logger *logrus.Logger
}

// NewDiscoverInterfacesUseCase는 새로운 DiscoverInterfacesUseCase를 생성합니다
func NewDiscoverInterfacesUseCase(links interfaces.LinkSource, logger *logrus.Logger) *DiscoverInterfacesUseCase {
	return &DiscoverInterfacesUseCase{
		links:  links,
		logger: logger,
	}
}

// Execute는 호스트 링크를 인터페이스 문서로 변환합니다.
// loopback, 지원하지 않는 링크 타입, bond/bridge에 속한 링크는 제외됩니다.
func (uc *DiscoverInterfacesUseCase) Execute(ctx context.Context) (*entities.InterfaceDocument, error) {
	links, err := uc.links.ListLinks(ctx)
	if err != nil {
		return nil, errors.NewSystemError("호스트 링크 조회 실패", err)
	}

	byIndex := make(map[int]entities.HostLink, len(links))
	for _, link := range links {
		byIndex[link.Index] = link
	}

	document := &entities.InterfaceDocument{Interfaces: []entities.InterfaceSpec{}}
	for _, link := range links {
		interfaceType, ok := linkKindTypes[link.Kind]
		if link.Loopback || !ok {
			uc.logger.WithFields(logrus.Fields{
				"link": link.Name,
				"kind": link.Kind,
			}).Debug("지원하지 않는 링크, 건너뜀")
			continue
		}
		if master, ok := byIndex[link.MasterIndex]; ok && (master.Kind == "bond" || master.Kind == "bridge") {
			// 마스터의 슬레이브 stanza로 출력됨
			continue
		}

		document.Interfaces = append(document.Interfaces, toInterfaceSpec(link, interfaceType, links, byIndex))
	}

	uc.logger.WithFields(logrus.Fields{
		"links":      len(links),
		"interfaces": len(document.Interfaces),
	}).Info("호스트 인터페이스 탐색 완료")

	return document, nil
}

func toInterfaceSpec(
	link entities.HostLink,
	interfaceType entities.InterfaceType,
	links []entities.HostLink,
	byIndex map[int]entities.HostLink,
) entities.InterfaceSpec {
	spec := entities.InterfaceSpec{
		Name:   link.Name,
		Type:   string(interfaceType),
		Method: string(entities.MethodManual),
	}

	if len(link.Addresses) > 0 {
		ip, prefix, _ := strings.Cut(link.Addresses[0], "/")
		spec.Method = string(entities.MethodStatic)
		spec.IP = ip
		spec.Netmask = prefix
	}
	if link.MTU > 0 {
		spec.MTU = strconv.Itoa(link.MTU)
	}

	switch interfaceType {
	case entities.TypeBond, entities.TypeBridge:
		var members []string
		for _, candidate := range links {
			if candidate.MasterIndex == link.Index {
				members = append(members, candidate.Name)
			}
		}
		spec.Slaves = strings.Join(members, ", ")

		if interfaceType == entities.TypeBond {
			if mode, ok := entities.BondModeFromLinux(link.BondMode); ok {
				spec.BondMode = mode.Label()
			} else {
				spec.BondMode = link.BondMode
			}
		}
	case entities.TypeVLAN:
		if link.VLANID > 0 {
			spec.VLANID = strconv.Itoa(link.VLANID)
		}
		if parent, ok := byIndex[link.ParentIndex]; ok {
			spec.ParentInterface = parent.Name
		}
	}

	return spec
}
