// Package extract derives industry, company, and implementation context from
// a business profile. Every record is independently reconstructable with
// safe fallbacks when profile fields are missing.
package extract

import "strings"

// IndustryContext is the static per-industry record used to ground prompts.
type IndustryContext struct {
	Industry    string   `json:"industry"`
	Terminology []string `json:"terminology"`
	CommonTools []string `json:"common_tools"`
	TypicalKPIs []string `json:"typical_kpis"`
	Regulatory  []string `json:"regulatory"`
	RiskFactors []string `json:"risk_factors"`
}

// regulatedIndustries force elevated risk handling in the implementation
// context.
var regulatedIndustries = map[string]bool{
	"healthcare":         true,
	"financial services": true,
}

// IsRegulatedIndustry reports whether the named industry carries a
// heightened regulatory regime.
func IsRegulatedIndustry(industry string) bool {
	return regulatedIndustries[normalizeIndustry(industry)]
}

// IndustryFor looks up the static industry record, returning the generic
// record for unknown industries.
func IndustryFor(industry string) IndustryContext {
	if rec, ok := industryTable[normalizeIndustry(industry)]; ok {
		return rec
	}
	generic := industryTable["generic"]
	if industry != "" {
		generic.Industry = industry
	}
	return generic
}

func normalizeIndustry(industry string) string {
	return strings.ToLower(strings.TrimSpace(industry))
}

var industryTable = map[string]IndustryContext{
	"healthcare": {
		Industry:    "Healthcare",
		Terminology: []string{"payer", "provider", "prior authorization", "revenue cycle", "care coordination"},
		CommonTools: []string{"Epic", "Cerner", "Availity"},
		TypicalKPIs: []string{"days in A/R", "clean claim rate", "patient satisfaction", "readmission rate"},
		Regulatory:  []string{"HIPAA", "HITECH", "CMS billing rules"},
		RiskFactors: []string{"Protected health information exposure", "Clinical decision liability", "Payer audit exposure"},
	},
	"financial services": {
		Industry:    "Financial Services",
		Terminology: []string{"KYC", "AML", "exposure", "underwriting", "reconciliation"},
		CommonTools: []string{"Bloomberg Terminal", "Actimize", "Workiva"},
		TypicalKPIs: []string{"time to decision", "false positive rate", "cost per account"},
		Regulatory:  []string{"SOX", "Basel III", "AML/BSA"},
		RiskFactors: []string{"Regulatory penalties", "Model risk", "Fraud exposure"},
	},
	"manufacturing": {
		Industry:    "Manufacturing",
		Terminology: []string{"OEE", "takt time", "work order", "first pass yield"},
		CommonTools: []string{"SAP S/4HANA", "Ignition SCADA"},
		TypicalKPIs: []string{"overall equipment effectiveness", "scrap rate", "on-time delivery"},
		Regulatory:  []string{"ISO 9001", "OSHA"},
		RiskFactors: []string{"Production disruption", "Supply chain dependency", "Safety incidents"},
	},
	"technology": {
		Industry:    "Technology",
		Terminology: []string{"SLO", "error budget", "CI/CD", "incident response"},
		CommonTools: []string{"GitHub", "Jira", "Datadog"},
		TypicalKPIs: []string{"deployment frequency", "change failure rate", "mean time to recovery"},
		Regulatory:  []string{"SOC 2", "GDPR where user data applies"},
		RiskFactors: []string{"Service outages", "Security vulnerabilities", "Technical debt accumulation"},
	},
	"retail": {
		Industry:    "Retail",
		Terminology: []string{"sell-through", "shrinkage", "omnichannel", "basket size"},
		CommonTools: []string{"Shopify", "Blue Yonder", "Zendesk"},
		TypicalKPIs: []string{"inventory turnover", "conversion rate", "out-of-stock rate"},
		Regulatory:  []string{"PCI DSS", "Consumer protection regulations"},
		RiskFactors: []string{"Demand volatility", "Margin pressure", "Channel conflict"},
	},
	"education": {
		Industry:    "Education",
		Terminology: []string{"enrollment funnel", "retention cohort", "learning outcomes"},
		CommonTools: []string{"Canvas", "Banner"},
		TypicalKPIs: []string{"enrollment yield", "course completion rate", "student retention"},
		Regulatory:  []string{"FERPA", "Title IV compliance"},
		RiskFactors: []string{"Enrollment decline", "Accreditation findings"},
	},
	"government": {
		Industry:    "Government",
		Terminology: []string{"constituent services", "records retention", "FOIA"},
		CommonTools: []string{"Tyler Technologies", "Accela"},
		TypicalKPIs: []string{"case resolution time", "backlog size", "constituent satisfaction"},
		Regulatory:  []string{"Public records laws", "Section 508 accessibility"},
		RiskFactors: []string{"Public scrutiny", "Budget cycles", "Procurement constraints"},
	},
	"energy": {
		Industry:    "Energy",
		Terminology: []string{"load profile", "curtailment", "rate case"},
		CommonTools: []string{"OSIsoft PI", "Esri ArcGIS"},
		TypicalKPIs: []string{"system average interruption duration", "forecast error"},
		Regulatory:  []string{"FERC", "NERC CIP"},
		RiskFactors: []string{"Grid reliability", "Commodity price swings", "Critical infrastructure exposure"},
	},
	"generic": {
		Industry:    "General Business",
		Terminology: []string{"workflow", "service level", "handoff"},
		CommonTools: []string{"Microsoft 365", "Slack"},
		TypicalKPIs: []string{"cycle time", "error rate", "throughput"},
		Regulatory:  []string{"General data protection obligations"},
		RiskFactors: []string{"Process disruption during rollout", "Change fatigue"},
	},
}
