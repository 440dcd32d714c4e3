package utils

import (
	"testing"

	"policlinico-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestCapabilitiesForRole(t *testing.T) {
	t.Run("admin reaches every capability", func(t *testing.T) {
		assert.ElementsMatch(t, []string{
			constvars.CapabilityPatients,
			constvars.CapabilityAppointments,
			constvars.CapabilityDoctors,
			constvars.CapabilitySpecialties,
			constvars.CapabilityInvoices,
			constvars.CapabilityHistories,
			constvars.CapabilityExports,
		}, CapabilitiesForRole(constvars.RoleAdmin))
	})

	t.Run("doctor is limited to patients and histories", func(t *testing.T) {
		assert.ElementsMatch(t, []string{
			constvars.CapabilityPatients,
			constvars.CapabilityHistories,
		}, CapabilitiesForRole(constvars.RoleDoctor))
	})

	t.Run("nurse gets appointments and exports too", func(t *testing.T) {
		assert.ElementsMatch(t, []string{
			constvars.CapabilityPatients,
			constvars.CapabilityAppointments,
			constvars.CapabilityHistories,
			constvars.CapabilityExports,
		}, CapabilitiesForRole(constvars.RoleNurse))
	})

	t.Run("unknown role gets nothing", func(t *testing.T) {
		assert.Empty(t, CapabilitiesForRole("recepcion"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		first := CapabilitiesForRole(constvars.RoleDoctor)
		first[0] = "mutated"
		second := CapabilitiesForRole(constvars.RoleDoctor)
		assert.NotContains(t, second, "mutated")
	})
}

func TestRoleHasCapability(t *testing.T) {
	assert.True(t, RoleHasCapability(constvars.RoleAdmin, constvars.CapabilityInvoices))
	assert.True(t, RoleHasCapability(constvars.RoleNurse, constvars.CapabilityAppointments))
	assert.False(t, RoleHasCapability(constvars.RoleDoctor, constvars.CapabilityInvoices))
	assert.False(t, RoleHasCapability(constvars.RoleDoctor, constvars.CapabilityDoctors))
	assert.False(t, RoleHasCapability("recepcion", constvars.CapabilityPatients))
}

func TestIsKnownRole(t *testing.T) {
	assert.True(t, IsKnownRole(constvars.RoleAdmin))
	assert.True(t, IsKnownRole(constvars.RoleDoctor))
	assert.True(t, IsKnownRole(constvars.RoleNurse))
	assert.False(t, IsKnownRole("recepcion"))
	assert.False(t, IsKnownRole(""))
}
