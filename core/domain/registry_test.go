package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCoversAllDomains(t *testing.T) {
	reg := NewRegistry()

	for _, d := range ValidDomains() {
		rec, ok := reg.Get(d)
		require.True(t, ok, "domain %s has no registry record", d)
		assert.Equal(t, d, rec.Domain)
		assert.GreaterOrEqual(t, len(rec.Roles), 3, "domain %s needs at least 3 roles", d)
		assert.NotEmpty(t, rec.Terminology, "domain %s has no terminology", d)
		assert.NotEmpty(t, rec.KeyMetrics, "domain %s has no key metrics", d)
	}
}

func TestRegistryFallsBackToGeneric(t *testing.T) {
	reg := NewRegistry()

	rec, ok := reg.Get(BusinessDomain(9999))
	assert.False(t, ok)
	assert.Equal(t, DomainGeneric, rec.Domain)
	assert.NotEmpty(t, rec.Roles, "generic fallback must still carry roles")
}

func TestRolesHaveDistinctWorkflowPositions(t *testing.T) {
	reg := NewRegistry()

	for _, d := range ValidDomains() {
		rec, _ := reg.Get(d)
		seen := make(map[int]bool, len(rec.Roles))
		for _, role := range rec.Roles {
			assert.False(t, seen[role.WorkflowPosition],
				"domain %s has duplicate workflow position %d", d, role.WorkflowPosition)
			seen[role.WorkflowPosition] = true
		}
	}
}

func TestIsRegulated(t *testing.T) {
	assert.True(t, DomainHealthcare.IsRegulated())
	assert.True(t, DomainFinancialServices.IsRegulated())
	assert.True(t, DomainGovernment.IsRegulated())
	assert.True(t, DomainLegal.IsRegulated())
	assert.False(t, DomainRetail.IsRegulated())
	assert.False(t, DomainGeneric.IsRegulated())
}
