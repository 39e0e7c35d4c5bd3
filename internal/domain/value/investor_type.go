package value

import (
	"fmt"
	"strings"
)

// InvestorType tags the legal shape of the investing entity. The provider
// requires a distinct minimal field set per type when creating a profile.
type InvestorType string

const (
	InvestorTypeIndividual  InvestorType = "individual"
	InvestorTypeJoint       InvestorType = "joint"
	InvestorTypeCorporation InvestorType = "corporation"
	InvestorTypeTrust       InvestorType = "trust"
	InvestorTypeManaged     InvestorType = "managed"
)

func (t InvestorType) String() string {
	return string(t)
}

// RequiresEntityName reports whether the type captures an entity name
// instead of relying on the holder's personal name alone.
func (t InvestorType) RequiresEntityName() bool {
	return t == InvestorTypeCorporation || t == InvestorTypeTrust
}

func (t InvestorType) RequiresJointHolder() bool {
	return t == InvestorTypeJoint
}

func ParseInvestorType(s string) (InvestorType, error) {
	switch InvestorType(strings.ToLower(strings.TrimSpace(s))) {
	case InvestorTypeIndividual:
		return InvestorTypeIndividual, nil
	case InvestorTypeJoint:
		return InvestorTypeJoint, nil
	case InvestorTypeCorporation:
		return InvestorTypeCorporation, nil
	case InvestorTypeTrust:
		return InvestorTypeTrust, nil
	case InvestorTypeManaged:
		return InvestorTypeManaged, nil
	}

	return "", fmt.Errorf("unknown investor type %q", s)
}
