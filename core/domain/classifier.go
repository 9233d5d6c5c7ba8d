package domain

import (
	"regexp"
	"strings"
)

// classifierRule binds a domain to its compiled keyword patterns. Rules are
// evaluated in declaration order; the first rule with any keyword hit wins.
type classifierRule struct {
	domain   BusinessDomain
	patterns []*regexp.Regexp
}

// Classifier maps free-text business signals to a BusinessDomain. It is a
// pure function of its inputs: identical inputs always produce identical
// output, and there is no fallible path: unmatched input lands on
// DomainGeneric.
type Classifier struct {
	rules []classifierRule
}

func NewClassifier() *Classifier {
	keywordRules := classifierKeywords()
	rules := make([]classifierRule, 0, len(keywordRules))
	for _, kr := range keywordRules {
		rules = append(rules, classifierRule{
			domain:   kr.domain,
			patterns: compileKeywordPatterns(kr.keywords),
		})
	}
	return &Classifier{rules: rules}
}

// Classify concatenates category, description, and industry, lower-cases the
// result, and returns the first domain whose keyword set matches.
func (c *Classifier) Classify(category, description, industry string) BusinessDomain {
	haystack := strings.ToLower(category + " " + description + " " + industry)

	for _, rule := range c.rules {
		if matchesAny(haystack, rule.patterns) {
			return rule.domain
		}
	}
	return DomainGeneric
}

func matchesAny(haystack string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(haystack) {
			return true
		}
	}
	return false
}

func compileKeywordPatterns(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		escaped := regexp.QuoteMeta(strings.ToLower(kw))
		re, err := regexp.Compile(`\b` + escaped + `\b`)
		if err == nil {
			patterns = append(patterns, re)
		}
	}
	return patterns
}

type keywordRule struct {
	domain   BusinessDomain
	keywords []string
}

func classifierKeywords() []keywordRule {
	return []keywordRule{
		{DomainProcurement, []string{"rfp", "rfq", "vendor", "sourcing", "contract negotiation", "purchase order", "supplier", "procurement"}},
		{DomainFinancialServices, []string{"loan", "banking", "underwriting", "portfolio", "trading", "insurance claim", "payment processing", "financial services"}},
		{DomainHealthcare, []string{"patient", "clinical", "medical", "hospital", "hipaa", "claim denial", "care gap", "healthcare"}},
		{DomainManufacturing, []string{"production line", "assembly", "factory", "quality control", "shop floor", "work order", "manufacturing"}},
		{DomainTechnology, []string{"software", "devops", "api", "deployment", "code review", "incident response", "infrastructure"}},
		{DomainEducation, []string{"student", "curriculum", "enrollment", "course", "learning outcome", "education"}},
		{DomainRetail, []string{"inventory", "merchandising", "e-commerce", "storefront", "checkout", "shopper", "retail"}},
		{DomainGovernment, []string{"citizen", "public sector", "municipal", "agency", "constituent", "government"}},
		{DomainLegal, []string{"litigation", "paralegal", "case law", "attorney", "privilege", "contract review", "legal"}},
		{DomainRealEstate, []string{"property", "leasing", "tenant", "listing", "escrow", "real estate"}},
		{DomainConsulting, []string{"engagement", "advisory", "client deliverable", "proposal development", "consulting"}},
		{DomainMedia, []string{"editorial", "publishing", "audience", "content calendar", "subscriber", "media"}},
		{DomainLogistics, []string{"shipment", "freight", "warehouse", "routing", "fleet", "delivery", "logistics"}},
		{DomainEnergy, []string{"grid", "utility", "renewable", "drilling", "power generation", "energy"}},
		{DomainConstruction, []string{"jobsite", "subcontractor", "submittal", "punch list", "construction"}},
	}
}
