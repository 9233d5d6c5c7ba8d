package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildContextOrdersWorkflowSteps(t *testing.T) {
	reg := NewRegistry()
	rec, _ := reg.Get(DomainProcurement)

	ctx := BuildContext(reg, DomainProcurement, nil)

	assert.Len(t, ctx.WorkflowSteps, len(rec.Roles))
	assert.Len(t, ctx.RoleTitles, len(rec.Roles))

	// Titles come back in workflow-position order regardless of table order.
	ordered := orderedRoles(rec.Roles)
	for i, role := range ordered {
		assert.Equal(t, role.Title, ctx.RoleTitles[i])
	}
}

func TestBuildContextMergesCompanySystems(t *testing.T) {
	reg := NewRegistry()
	rec, _ := reg.Get(DomainRetail)

	ctx := BuildContext(reg, DomainRetail, []string{"Shopify", rec.Tools[0], "", "Shopify"})

	assert.Contains(t, ctx.Tools, "Shopify")

	seen := make(map[string]int)
	for _, tool := range ctx.Tools {
		seen[tool]++
	}
	for tool, n := range seen {
		assert.Equal(t, 1, n, "tool %q duplicated", tool)
	}
	assert.NotContains(t, ctx.Tools, "")
}

func TestBuildContextUnknownDomainUsesGeneric(t *testing.T) {
	reg := NewRegistry()

	ctx := BuildContext(reg, BusinessDomain(1234), nil)

	assert.Equal(t, DomainGeneric, ctx.Domain)
	assert.NotEmpty(t, ctx.WorkflowSteps)
}
