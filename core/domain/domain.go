package domain

import (
	"encoding/json"
	"fmt"
)

// BusinessDomain classifies a business problem into one of the supported
// sectors. Classification is immutable once assigned.
type BusinessDomain int

const (
	DomainProcurement BusinessDomain = iota
	DomainFinancialServices
	DomainHealthcare
	DomainManufacturing
	DomainTechnology
	DomainEducation
	DomainRetail
	DomainGovernment
	DomainLegal
	DomainRealEstate
	DomainConsulting
	DomainMedia
	DomainLogistics
	DomainEnergy
	DomainConstruction
	DomainGeneric
)

var domainNames = map[BusinessDomain]string{
	DomainProcurement:       "procurement",
	DomainFinancialServices: "financial-services",
	DomainHealthcare:        "healthcare",
	DomainManufacturing:     "manufacturing",
	DomainTechnology:        "technology",
	DomainEducation:         "education",
	DomainRetail:            "retail",
	DomainGovernment:        "government",
	DomainLegal:             "legal",
	DomainRealEstate:        "real-estate",
	DomainConsulting:        "consulting",
	DomainMedia:             "media",
	DomainLogistics:         "logistics",
	DomainEnergy:            "energy",
	DomainConstruction:      "construction",
	DomainGeneric:           "generic",
}

var nameToDomain = map[string]BusinessDomain{
	"procurement":        DomainProcurement,
	"financial-services": DomainFinancialServices,
	"healthcare":         DomainHealthcare,
	"manufacturing":      DomainManufacturing,
	"technology":         DomainTechnology,
	"education":          DomainEducation,
	"retail":             DomainRetail,
	"government":         DomainGovernment,
	"legal":              DomainLegal,
	"real-estate":        DomainRealEstate,
	"consulting":         DomainConsulting,
	"media":              DomainMedia,
	"logistics":          DomainLogistics,
	"energy":             DomainEnergy,
	"construction":       DomainConstruction,
	"generic":            DomainGeneric,
}

func (d BusinessDomain) String() string {
	if name, ok := domainNames[d]; ok {
		return name
	}
	return fmt.Sprintf("domain(%d)", d)
}

func (d BusinessDomain) IsValid() bool {
	_, ok := domainNames[d]
	return ok
}

func ParseBusinessDomain(s string) (BusinessDomain, bool) {
	d, ok := nameToDomain[s]
	return d, ok
}

func ValidDomains() []BusinessDomain {
	return []BusinessDomain{
		DomainProcurement,
		DomainFinancialServices,
		DomainHealthcare,
		DomainManufacturing,
		DomainTechnology,
		DomainEducation,
		DomainRetail,
		DomainGovernment,
		DomainLegal,
		DomainRealEstate,
		DomainConsulting,
		DomainMedia,
		DomainLogistics,
		DomainEnergy,
		DomainConstruction,
		DomainGeneric,
	}
}

func (d BusinessDomain) IsRegulated() bool {
	switch d {
	case DomainFinancialServices, DomainHealthcare, DomainGovernment, DomainLegal:
		return true
	default:
		return false
	}
}

func (d BusinessDomain) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *BusinessDomain) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, ok := ParseBusinessDomain(s)
	if !ok {
		return fmt.Errorf("invalid business domain: %s", s)
	}

	*d = parsed
	return nil
}
