// Package domain contains the core types shared between the gateway, the
// Icinga client, and the TUI.
package domain

import "fmt"

// ObjectType selects whether a query targets hosts or services.
type ObjectType string

const (
	ObjectTypeHosts    ObjectType = "hosts"
	ObjectTypeServices ObjectType = "services"
)

// ObjectTypes lists all recognized object types in display order.
var ObjectTypes = []ObjectType{ObjectTypeHosts, ObjectTypeServices}

// ParseObjectType validates a raw objtype value.
func ParseObjectType(s string) (ObjectType, error) {
	switch ObjectType(s) {
	case ObjectTypeHosts:
		return ObjectTypeHosts, nil
	case ObjectTypeServices:
		return ObjectTypeServices, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidObjectType, s)
	}
}

// Monitoring states as reported by Icinga. Hosts use 0 (up) and 1 (down),
// services use 0 (ok) through 3 (unknown).
const (
	// StateMissing is used when a result carries no state attribute.
	StateMissing uint8 = 5

	// StateInvalid is used when the state attribute is out of range.
	StateInvalid uint8 = 6
)

// StatusRow is one host or service check result.
type StatusRow struct {
	Host    string `json:"host"`
	Service string `json:"service,omitempty"`
	Output  string `json:"output"`
	State   uint8  `json:"state"`
}

// Less orders rows worst-state first, then by host, service, and output.
func (r StatusRow) Less(other StatusRow) bool {
	if r.State != other.State {
		// state is reversed: higher (worse) states sort first
		return r.State > other.State
	}
	if r.Host != other.Host {
		return r.Host < other.Host
	}
	if r.Service != other.Service {
		return r.Service < other.Service
	}
	return r.Output < other.Output
}

// StateName returns a human-readable label for a state value.
func StateName(objType ObjectType, state uint8) string {
	if objType == ObjectTypeHosts {
		switch state {
		case 0:
			return "UP"
		case 1:
			return "DOWN"
		}
	} else {
		switch state {
		case 0:
			return "OK"
		case 1:
			return "WARNING"
		case 2:
			return "CRITICAL"
		case 3:
			return "UNKNOWN"
		}
	}
	return fmt.Sprintf("STATE %d", state)
}
