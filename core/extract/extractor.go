package extract

import "github.com/veltaire/planforge/core/profile"

// BusinessContext bundles the three derived views of a profile.
type BusinessContext struct {
	Industry       IndustryContext       `json:"industry"`
	Company        CompanyContext        `json:"company"`
	Implementation ImplementationContext `json:"implementation"`
}

// FromProfile derives the complete business context. Each sub-record is
// independently computed; a missing or sparse profile degrades to safe
// defaults rather than failing.
func FromProfile(p *profile.Profile) BusinessContext {
	industry := ""
	if p != nil {
		industry = p.Industry
	}

	return BusinessContext{
		Industry:       IndustryFor(industry),
		Company:        CompanyFor(p),
		Implementation: ImplementationFor(p),
	}
}
