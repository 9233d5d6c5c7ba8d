package generate

import (
	"context"
	"log/slog"

	"github.com/veltaire/planforge/core/blueprint"
	"github.com/veltaire/planforge/core/domain"
	"github.com/veltaire/planforge/core/errors"
	"github.com/veltaire/planforge/core/extract"
	"github.com/veltaire/planforge/core/opportunity"
	"github.com/veltaire/planforge/core/pattern"
	"github.com/veltaire/planforge/core/profile"
	"github.com/veltaire/planforge/core/prompt"
	"github.com/veltaire/planforge/core/providers"
)

// DomainClassifier labels a request with a business domain. Satisfied by
// both domain.Classifier and the ristretto-backed cache wrapper.
type DomainClassifier interface {
	Classify(category, description, industry string) domain.BusinessDomain
}

// Request carries everything one blueprint generation needs. Profile is the
// only mandatory field.
type Request struct {
	Profile *profile.Profile

	// UserID and CredentialsRef identify the caller for audit logging;
	// provider credentials themselves live in the provider registry.
	UserID         string
	CredentialsRef string

	// PreferredProvider routes to a registered provider by name. Empty
	// selects the registry default.
	PreferredProvider string

	// InitiativeIndex, when non-nil, narrows generation to a single
	// strategic initiative.
	InitiativeIndex *int

	SpecialInstructions string

	// Opportunity is the raw, untrusted opportunity document. Any shape is
	// accepted; malformed fields degrade to defaults rather than failing.
	Opportunity any
}

// Service wires the full pipeline: context extraction, domain and pattern
// classification, prompt composition, orchestrated invocation, validation,
// scoring, and assembly.
type Service struct {
	domains    *domain.Registry
	classifier DomainClassifier
	patterns   *pattern.Registry
	selector   *pattern.Selector
	providers  *providers.Registry
	validator  *blueprint.Validator
	logger     *slog.Logger
}

func NewService(
	domains *domain.Registry,
	classifier DomainClassifier,
	patterns *pattern.Registry,
	reg *providers.Registry,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		domains:    domains,
		classifier: classifier,
		patterns:   patterns,
		selector:   pattern.NewSelector(patterns, logger),
		providers:  reg,
		validator:  blueprint.NewValidator(logger),
		logger:     logger,
	}
}

// GenerateBlueprint runs one end-to-end generation and returns the scored,
// assembled blueprint.
func (s *Service) GenerateBlueprint(ctx context.Context, req *Request) (*blueprint.AgenticBlueprint, error) {
	if req == nil || req.Profile == nil {
		return nil, errors.NewPrecondition("a business profile is required")
	}
	if len(req.Profile.Initiatives) == 0 {
		return nil, errors.NewPrecondition("profile has no strategic initiatives to plan for")
	}

	initiative, err := s.resolveInitiative(req)
	if err != nil {
		return nil, err
	}

	opp := opportunity.Sanitize(req.Opportunity, s.logger)

	business := extract.FromProfile(req.Profile)

	dom := s.classifyDomain(req.Profile, opp)
	domainCtx := domain.BuildContext(s.domains, dom, req.Profile.SystemNames())

	selected := s.selector.Select(opp.RecommendedPattern, req.Profile.BusinessProblems())

	invoker, err := s.providers.Resolve(req.PreferredProvider)
	if err != nil {
		return nil, err
	}
	caps := providers.CapabilitiesFor(invoker.Name() + " " + invoker.DefaultModel())

	focus := s.resolveFocus(req, opp)

	s.logger.Info("starting blueprint generation",
		"user", req.UserID,
		"company", req.Profile.CompanyName,
		"domain", dom.String(),
		"pattern", string(selected.Name),
		"provider", invoker.Name(),
		"focus", string(focus))

	prompts := prompt.Compose(prompt.Input{
		Profile:      req.Profile,
		Business:     business,
		Domain:       domainCtx,
		Pattern:      selected,
		Opportunity:  opp,
		Focus:        focus,
		Initiative:   initiative,
		Capabilities: caps,
		Instructions: req.SpecialInstructions,
	})

	orch := NewOrchestrator(invoker, s.validator, s.logger)
	result, err := orch.Run(ctx, prompts, caps, selected)
	if err != nil {
		return nil, err
	}

	model := result.Response.Model
	if model == "" {
		model = invoker.DefaultModel()
	}

	bp, err := blueprint.Assemble(result.Plan, blueprint.AssemblyInput{
		Pattern:             selected,
		PatternRationale:    opp.PatternRationale,
		FallbackROI:         blueprint.ProjectROI(s.roiInitiative(req.Profile, initiative)),
		SpecialInstructions: req.SpecialInstructions,
		Provider:            invoker.Name(),
		Model:               model,
		PromptVersion:       prompt.Version,
		Attempts:            result.Attempts,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("blueprint assembled",
		"blueprint_id", bp.Provenance.BlueprintID,
		"quality_score", bp.QualityScore,
		"attempts", result.Attempts)
	return bp, nil
}

// resolveInitiative validates an explicit initiative index and returns the
// focused initiative, or nil for comprehensive generation.
func (s *Service) resolveInitiative(req *Request) (*profile.StrategicInitiative, error) {
	if req.InitiativeIndex == nil {
		return nil, nil
	}
	idx := *req.InitiativeIndex
	if idx < 0 || idx >= len(req.Profile.Initiatives) {
		return nil, errors.NewPrecondition(
			"selected initiative index is out of range for this profile")
	}
	return &req.Profile.Initiatives[idx], nil
}

// classifyDomain labels the request from the opportunity's own category and
// description. With no opportunity context both are empty and the profile
// industry carries the classification alone.
func (s *Service) classifyDomain(p *profile.Profile, opp opportunity.Sanitized) domain.BusinessDomain {
	return s.classifier.Classify(opp.Category, opp.Description, p.Industry)
}

func (s *Service) resolveFocus(req *Request, opp opportunity.Sanitized) prompt.FocusMode {
	switch {
	case req.InitiativeIndex != nil:
		return prompt.FocusSingleInitiative
	case opp.Present:
		return prompt.FocusOpportunity
	default:
		return prompt.FocusComprehensive
	}
}

// roiInitiative picks the initiative whose financial baselines anchor the
// independent ROI projection: the focused one when set, otherwise the first
// high-priority initiative, otherwise the first.
func (s *Service) roiInitiative(p *profile.Profile, focused *profile.StrategicInitiative) *profile.StrategicInitiative {
	if focused != nil {
		return focused
	}
	for i := range p.Initiatives {
		if p.Initiatives[i].Priority.IsHigh() {
			return &p.Initiatives[i]
		}
	}
	return &p.Initiatives[0]
}
