package enums

import "fmt"

// IdentityKind separates the two kinds of dashboard session.
// Admin and shop sessions live side by side and never share a record.
type IdentityKind string

const (
	IdentityKindAdmin IdentityKind = "admin"
	IdentityKindShop  IdentityKind = "shop"
)

var validIdentityKinds = []IdentityKind{
	IdentityKindAdmin,
	IdentityKindShop,
}

func (k IdentityKind) String() string {
	return string(k)
}

func (k IdentityKind) IsValid() bool {
	for _, candidate := range validIdentityKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// Role is the role a session record of this kind must carry.
func (k IdentityKind) Role() string {
	return string(k)
}

// LoginPath is where an unauthenticated caller of this kind is sent.
func (k IdentityKind) LoginPath() string {
	switch k {
	case IdentityKindShop:
		return "/login/shop"
	default:
		return "/admin/login"
	}
}

// ParseIdentityKind converts raw input into an IdentityKind.
func ParseIdentityKind(value string) (IdentityKind, error) {
	for _, candidate := range validIdentityKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid identity kind %q", value)
}
