package room

import "errors"

var ErrInvalidType = errors.New("invalid room type")

type Type string

const (
	TypeStandard          Type = "Standard"
	TypeDeluxe            Type = "Deluxe"
	TypeSuite             Type = "Suite"
	TypeExecutive         Type = "Executive"
	TypeFamilyRoom        Type = "Family Room"
	TypeTwinRoom          Type = "Twin Room"
	TypeKingRoom          Type = "King Room"
	TypePresidentialSuite Type = "Presidential Suite"
	TypeStudio            Type = "Studio"
)

var allTypes = map[Type]struct{}{
	TypeStandard:          {},
	TypeDeluxe:            {},
	TypeSuite:             {},
	TypeExecutive:         {},
	TypeFamilyRoom:        {},
	TypeTwinRoom:          {},
	TypeKingRoom:          {},
	TypePresidentialSuite: {},
	TypeStudio:            {},
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	_, ok := allTypes[t]
	return ok
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
