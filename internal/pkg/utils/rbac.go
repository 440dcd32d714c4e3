package utils

import (
	"policlinico-service/internal/pkg/constvars"
)

// roleCapabilities is the single source of truth for what each role may
// reach. Both the route guard and the capabilities endpoint read from it.
var roleCapabilities = map[string][]string{
	constvars.RoleAdmin: {
		constvars.CapabilityPatients,
		constvars.CapabilityAppointments,
		constvars.CapabilityDoctors,
		constvars.CapabilitySpecialties,
		constvars.CapabilityInvoices,
		constvars.CapabilityHistories,
		constvars.CapabilityExports,
	},
	constvars.RoleDoctor: {
		constvars.CapabilityPatients,
		constvars.CapabilityHistories,
	},
	constvars.RoleNurse: {
		constvars.CapabilityPatients,
		constvars.CapabilityAppointments,
		constvars.CapabilityHistories,
		constvars.CapabilityExports,
	},
}

func CapabilitiesForRole(role string) []string {
	capabilities, ok := roleCapabilities[role]
	if !ok {
		return []string{}
	}
	out := make([]string, len(capabilities))
	copy(out, capabilities)
	return out
}

func RoleHasCapability(role, capability string) bool {
	for _, c := range roleCapabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}

func IsKnownRole(role string) bool {
	_, ok := roleCapabilities[role]
	return ok
}
