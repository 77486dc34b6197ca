package usecases

import (
	"fmt"

	"interfaces-generator/internal/domain/entities"
	"interfaces-generator/internal/domain/errors"

	"gopkg.in/yaml.v3"
)

// ParseInterfaceDocument는 YAML 문서를 파싱하고 type/method/dns 형식을 검증합니다.
// IP 주소 형식은 검증하지 않습니다. 그것은 렌더링을 막지 않는 경고 대상입니다.
func ParseInterfaceDocument(data []byte) (*entities.InterfaceDocument, error) {
	var document entities.InterfaceDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, errors.NewValidationError("invalid interface document", err)
	}

	for i, spec := range document.Interfaces {
		if spec.Type != "" {
			if _, ok := entities.ParseInterfaceType(spec.Type); !ok {
				return nil, errors.NewValidationError(
					fmt.Sprintf("interfaces[%d]: unsupported type %q", i, spec.Type), nil)
			}
		}
		if spec.Method != "" {
			if _, ok := entities.ParseAddressMethod(spec.Method); !ok {
				return nil, errors.NewValidationError(
					fmt.Sprintf("interfaces[%d]: unsupported method %q", i, spec.Method), nil)
			}
		}
		if len(spec.DNS) > entities.DNSSlots {
			return nil, errors.NewValidationError(
				fmt.Sprintf("interfaces[%d]: at most %d dns servers allowed, got %d", i, entities.DNSSlots, len(spec.DNS)), nil)
		}
	}

	return &document, nil
}

// MarshalInterfaceDocument는 문서를 YAML로 직렬화합니다
func MarshalInterfaceDocument(document *entities.InterfaceDocument) ([]byte, error) {
	data, err := yaml.Marshal(document)
	if err != nil {
		return nil, errors.NewSystemError("failed to marshal interface document", err)
	}
	return data, nil
}
