package dictionary

import "fmt"

// Role is the structural category a name token can be assigned to.
type Role uint8

const (
	// RoleUnassigned marks a token that has not been classified yet.
	RoleUnassigned Role = iota
	// RoleSurname is a family name (фамилия).
	RoleSurname
	// RoleGiven is a given name (имя).
	RoleGiven
	// RolePatronymic is a patronymic (отчество).
	RolePatronymic
	// RoleUnknown marks a token no dictionary or suffix rule could place.
	RoleUnknown
)

// roleCount sizes per-role arrays.
const roleCount = int(RoleUnknown) + 1

// Roles lists the dictionary-backed roles in lookup priority order.
var Roles = [...]Role{RoleSurname, RoleGiven, RolePatronymic}

func (r Role) String() string {
	switch r {
	case RoleUnassigned:
		return "unassigned"
	case RoleSurname:
		return "surname"
	case RoleGiven:
		return "given"
	case RolePatronymic:
		return "patronymic"
	case RoleUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// MarshalText renders the role by name in JSON output.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a role name produced by MarshalText.
func (r *Role) UnmarshalText(text []byte) error {
	for candidate := RoleUnassigned; candidate <= RoleUnknown; candidate++ {
		if candidate.String() == string(text) {
			*r = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown role %q", text)
}

// IsNamed reports whether r is one of the three dictionary-backed roles.
func (r Role) IsNamed() bool {
	return r == RoleSurname || r == RoleGiven || r == RolePatronymic
}
