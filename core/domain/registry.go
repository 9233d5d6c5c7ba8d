package domain

// SpecialistRole describes a domain-typical agent role and where it sits in
// the domain's standard workflow.
type SpecialistRole struct {
	Role             string `json:"role"`
	Title            string `json:"title"`
	WorkflowPosition int    `json:"workflow_position"`
	Responsibility   string `json:"responsibility"`
}

// Record holds everything the pipeline knows about one business domain:
// specialist roles in workflow order, sector terminology, starter tooling,
// the metrics that matter, and the regulatory regime.
type Record struct {
	Domain      BusinessDomain   `json:"domain"`
	Roles       []SpecialistRole `json:"roles"`
	Terminology []string         `json:"terminology"`
	Tools       []string         `json:"tools"`
	KeyMetrics  []string         `json:"key_metrics"`
	Regulatory  []string         `json:"regulatory"`
}

// Registry is the static domain table. It is built once at process start and
// shared read-only across requests; nothing mutates it afterwards.
type Registry struct {
	records map[BusinessDomain]Record
}

// NewRegistry builds the full domain table.
func NewRegistry() *Registry {
	records := make(map[BusinessDomain]Record, len(ValidDomains()))
	for _, rec := range allRecords() {
		records[rec.Domain] = rec
	}
	return &Registry{records: records}
}

// Get returns the record for a domain, falling back to the generic record
// for anything unknown. The second return reports whether the lookup was an
// exact hit.
func (r *Registry) Get(d BusinessDomain) (Record, bool) {
	rec, ok := r.records[d]
	if !ok {
		return r.records[DomainGeneric], false
	}
	return rec, true
}

func (r *Registry) Domains() []BusinessDomain {
	return ValidDomains()
}

func allRecords() []Record {
	return []Record{
		{
			Domain: DomainProcurement,
			Roles: []SpecialistRole{
				{Role: "intake-analyst", Title: "Requisition Intake Analyst", WorkflowPosition: 1, Responsibility: "Captures and normalizes purchase requests and requirements"},
				{Role: "sourcing-agent", Title: "Strategic Sourcing Agent", WorkflowPosition: 2, Responsibility: "Identifies and shortlists qualified suppliers"},
				{Role: "rfp-drafter", Title: "RFP Drafting Agent", WorkflowPosition: 3, Responsibility: "Produces RFP documents from structured requirements"},
				{Role: "bid-evaluator", Title: "Bid Evaluation Agent", WorkflowPosition: 4, Responsibility: "Scores supplier responses against weighted criteria"},
				{Role: "contract-coordinator", Title: "Contract Coordination Agent", WorkflowPosition: 5, Responsibility: "Assembles award packages and tracks contract milestones"},
			},
			Terminology: []string{"RFP", "RFQ", "purchase order", "supplier qualification", "spend under management", "maverick spend", "three-way match"},
			Tools:       []string{"SAP Ariba", "Coupa", "Jaggaer", "DocuSign"},
			KeyMetrics:  []string{"cycle time per sourcing event", "cost savings percentage", "supplier compliance rate", "contract leakage"},
			Regulatory:  []string{"Competitive bidding policies", "Anti-bribery controls (FCPA)", "Supplier diversity mandates"},
		},
		{
			Domain: DomainFinancialServices,
			Roles: []SpecialistRole{
				{Role: "kyc-screener", Title: "KYC Screening Agent", WorkflowPosition: 1, Responsibility: "Performs identity and sanctions screening on counterparties"},
				{Role: "risk-assessor", Title: "Risk Assessment Agent", WorkflowPosition: 2, Responsibility: "Scores credit and operational risk from application data"},
				{Role: "portfolio-monitor", Title: "Portfolio Monitoring Agent", WorkflowPosition: 3, Responsibility: "Tracks exposure drift and covenant breaches"},
				{Role: "compliance-reporter", Title: "Compliance Reporting Agent", WorkflowPosition: 4, Responsibility: "Prepares regulatory filings and audit trails"},
			},
			Terminology: []string{"KYC", "AML", "underwriting", "exposure", "covenant", "basis points", "reconciliation"},
			Tools:       []string{"Bloomberg Terminal", "Moody's Analytics", "Actimize", "Workiva"},
			KeyMetrics:  []string{"time to decision", "false positive rate", "regulatory finding count", "cost per account"},
			Regulatory:  []string{"SOX", "Basel III", "AML/BSA", "SEC reporting requirements"},
		},
		{
			Domain: DomainHealthcare,
			Roles: []SpecialistRole{
				{Role: "intake-coordinator", Title: "Patient Intake Agent", WorkflowPosition: 1, Responsibility: "Collects referrals, eligibility, and prior-authorization data"},
				{Role: "coding-assistant", Title: "Clinical Coding Agent", WorkflowPosition: 2, Responsibility: "Suggests ICD/CPT codes from encounter documentation"},
				{Role: "denial-analyst", Title: "Denial Management Agent", WorkflowPosition: 3, Responsibility: "Triages claim denials and drafts appeal packages"},
				{Role: "care-gap-finder", Title: "Care Gap Analysis Agent", WorkflowPosition: 4, Responsibility: "Flags patients with missed screenings or follow-ups"},
			},
			Terminology: []string{"prior authorization", "ICD-10", "CPT", "payer mix", "denial rate", "care pathway", "HCAHPS"},
			Tools:       []string{"Epic", "Cerner", "Availity", "3M 360 Encompass"},
			KeyMetrics:  []string{"days in accounts receivable", "clean claim rate", "denial overturn rate", "patient wait time"},
			Regulatory:  []string{"HIPAA", "HITECH", "CMS billing rules", "State privacy statutes"},
		},
		{
			Domain: DomainManufacturing,
			Roles: []SpecialistRole{
				{Role: "demand-planner", Title: "Demand Planning Agent", WorkflowPosition: 1, Responsibility: "Forecasts demand from orders, seasonality, and signals"},
				{Role: "scheduler", Title: "Production Scheduling Agent", WorkflowPosition: 2, Responsibility: "Sequences work orders across lines and shifts"},
				{Role: "quality-inspector", Title: "Quality Inspection Agent", WorkflowPosition: 3, Responsibility: "Monitors defect signals and triggers containment"},
				{Role: "maintenance-predictor", Title: "Predictive Maintenance Agent", WorkflowPosition: 4, Responsibility: "Predicts equipment failures from sensor trends"},
			},
			Terminology: []string{"OEE", "takt time", "work order", "bill of materials", "first pass yield", "andon", "kanban"},
			Tools:       []string{"SAP S/4HANA", "Siemens Opcenter", "Ignition SCADA", "Tableau"},
			KeyMetrics:  []string{"overall equipment effectiveness", "scrap rate", "on-time delivery", "unplanned downtime hours"},
			Regulatory:  []string{"ISO 9001", "OSHA", "Environmental permits"},
		},
		{
			Domain: DomainTechnology,
			Roles: []SpecialistRole{
				{Role: "triage-engineer", Title: "Ticket Triage Agent", WorkflowPosition: 1, Responsibility: "Classifies and routes incoming issues and requests"},
				{Role: "code-reviewer", Title: "Code Review Agent", WorkflowPosition: 2, Responsibility: "Reviews changes for defects and convention drift"},
				{Role: "release-coordinator", Title: "Release Coordination Agent", WorkflowPosition: 3, Responsibility: "Tracks release readiness and change windows"},
				{Role: "incident-responder", Title: "Incident Response Agent", WorkflowPosition: 4, Responsibility: "Correlates alerts and drafts incident timelines"},
			},
			Terminology: []string{"CI/CD", "SLO", "error budget", "pull request", "runbook", "blameless postmortem"},
			Tools:       []string{"GitHub", "Jira", "PagerDuty", "Datadog"},
			KeyMetrics:  []string{"deployment frequency", "change failure rate", "mean time to recovery", "ticket backlog age"},
			Regulatory:  []string{"SOC 2", "GDPR where user data applies"},
		},
		{
			Domain: DomainEducation,
			Roles: []SpecialistRole{
				{Role: "enrollment-advisor", Title: "Enrollment Advising Agent", WorkflowPosition: 1, Responsibility: "Guides applicants through admission and registration"},
				{Role: "curriculum-mapper", Title: "Curriculum Mapping Agent", WorkflowPosition: 2, Responsibility: "Aligns course content to learning outcomes"},
				{Role: "progress-monitor", Title: "Student Progress Agent", WorkflowPosition: 3, Responsibility: "Flags at-risk students from engagement signals"},
			},
			Terminology: []string{"enrollment funnel", "learning outcomes", "retention cohort", "credit hour", "FAFSA"},
			Tools:       []string{"Canvas", "Banner", "Salesforce Education Cloud"},
			KeyMetrics:  []string{"enrollment yield", "course completion rate", "student retention rate"},
			Regulatory:  []string{"FERPA", "Title IV compliance", "Accreditation standards"},
		},
		{
			Domain: DomainRetail,
			Roles: []SpecialistRole{
				{Role: "assortment-planner", Title: "Assortment Planning Agent", WorkflowPosition: 1, Responsibility: "Optimizes product mix by location and season"},
				{Role: "inventory-balancer", Title: "Inventory Balancing Agent", WorkflowPosition: 2, Responsibility: "Rebalances stock across stores and channels"},
				{Role: "pricing-analyst", Title: "Pricing Analysis Agent", WorkflowPosition: 3, Responsibility: "Recommends markdowns and promotional pricing"},
				{Role: "service-responder", Title: "Customer Service Agent", WorkflowPosition: 4, Responsibility: "Resolves order and return inquiries"},
			},
			Terminology: []string{"sell-through", "shrinkage", "planogram", "omnichannel", "basket size", "markdown cadence"},
			Tools:       []string{"Shopify", "Salesforce Commerce Cloud", "Blue Yonder", "Zendesk"},
			KeyMetrics:  []string{"inventory turnover", "gross margin return on investment", "conversion rate", "out-of-stock rate"},
			Regulatory:  []string{"PCI DSS", "Consumer protection regulations"},
		},
		{
			Domain: DomainGovernment,
			Roles: []SpecialistRole{
				{Role: "case-intake", Title: "Case Intake Agent", WorkflowPosition: 1, Responsibility: "Registers citizen requests and verifies eligibility"},
				{Role: "records-clerk", Title: "Records Management Agent", WorkflowPosition: 2, Responsibility: "Files and retrieves records under retention rules"},
				{Role: "permit-reviewer", Title: "Permit Review Agent", WorkflowPosition: 3, Responsibility: "Checks applications against code requirements"},
			},
			Terminology: []string{"constituent services", "records retention", "FOIA", "grant compliance", "procurement thresholds"},
			Tools:       []string{"Tyler Technologies", "Granicus", "Accela"},
			KeyMetrics:  []string{"case resolution time", "backlog size", "constituent satisfaction"},
			Regulatory:  []string{"Public records laws", "Section 508 accessibility", "Procurement statutes"},
		},
		{
			Domain: DomainLegal,
			Roles: []SpecialistRole{
				{Role: "matter-intake", Title: "Matter Intake Agent", WorkflowPosition: 1, Responsibility: "Runs conflict checks and opens matters"},
				{Role: "doc-reviewer", Title: "Document Review Agent", WorkflowPosition: 2, Responsibility: "First-pass relevance and privilege review"},
				{Role: "clause-analyst", Title: "Clause Analysis Agent", WorkflowPosition: 3, Responsibility: "Compares contract language against playbook positions"},
			},
			Terminology: []string{"privilege log", "discovery", "engagement letter", "billable hours", "redline", "playbook"},
			Tools:       []string{"Relativity", "iManage", "Clio"},
			KeyMetrics:  []string{"review throughput per hour", "matter cycle time", "realization rate"},
			Regulatory:  []string{"Attorney-client privilege rules", "Bar ethics rules", "Data residency obligations"},
		},
		{
			Domain: DomainRealEstate,
			Roles: []SpecialistRole{
				{Role: "listing-curator", Title: "Listing Curation Agent", WorkflowPosition: 1, Responsibility: "Drafts and maintains property listings"},
				{Role: "lead-qualifier", Title: "Lead Qualification Agent", WorkflowPosition: 2, Responsibility: "Scores inbound buyer and tenant inquiries"},
				{Role: "transaction-tracker", Title: "Transaction Tracking Agent", WorkflowPosition: 3, Responsibility: "Monitors escrow milestones and document status"},
			},
			Terminology: []string{"comparables", "escrow", "cap rate", "net operating income", "tenant improvement"},
			Tools:       []string{"MLS", "Yardi", "CoStar", "DocuSign"},
			KeyMetrics:  []string{"days on market", "lead conversion rate", "occupancy rate"},
			Regulatory:  []string{"Fair housing laws", "RESPA", "State licensing rules"},
		},
		{
			Domain: DomainConsulting,
			Roles: []SpecialistRole{
				{Role: "research-analyst", Title: "Research Analysis Agent", WorkflowPosition: 1, Responsibility: "Gathers market and client intelligence"},
				{Role: "deliverable-drafter", Title: "Deliverable Drafting Agent", WorkflowPosition: 2, Responsibility: "Produces first drafts of client deliverables"},
				{Role: "engagement-tracker", Title: "Engagement Tracking Agent", WorkflowPosition: 3, Responsibility: "Monitors scope, budget, and staffing burn"},
			},
			Terminology: []string{"statement of work", "utilization", "deliverable", "engagement economics", "leverage model"},
			Tools:       []string{"PowerPoint", "Smartsheet", "Harvest"},
			KeyMetrics:  []string{"utilization rate", "proposal win rate", "engagement margin"},
			Regulatory:  []string{"Client confidentiality agreements", "Independence requirements"},
		},
		{
			Domain: DomainMedia,
			Roles: []SpecialistRole{
				{Role: "content-planner", Title: "Content Planning Agent", WorkflowPosition: 1, Responsibility: "Builds editorial calendars from audience signals"},
				{Role: "draft-writer", Title: "Draft Writing Agent", WorkflowPosition: 2, Responsibility: "Produces first drafts for editorial review"},
				{Role: "audience-analyst", Title: "Audience Analytics Agent", WorkflowPosition: 3, Responsibility: "Tracks engagement and recommends distribution"},
			},
			Terminology: []string{"editorial calendar", "engagement rate", "syndication", "paywall conversion", "churn"},
			Tools:       []string{"WordPress", "Chartbeat", "Sprout Social"},
			KeyMetrics:  []string{"time on page", "subscriber growth", "content production cycle time"},
			Regulatory:  []string{"Copyright law", "Advertising disclosure rules"},
		},
		{
			Domain: DomainLogistics,
			Roles: []SpecialistRole{
				{Role: "route-optimizer", Title: "Route Optimization Agent", WorkflowPosition: 1, Responsibility: "Plans delivery routes under time and cost constraints"},
				{Role: "shipment-tracker", Title: "Shipment Tracking Agent", WorkflowPosition: 2, Responsibility: "Monitors in-transit exceptions and ETAs"},
				{Role: "dock-scheduler", Title: "Dock Scheduling Agent", WorkflowPosition: 3, Responsibility: "Coordinates inbound and outbound dock appointments"},
				{Role: "claims-handler", Title: "Freight Claims Agent", WorkflowPosition: 4, Responsibility: "Prepares damage and loss claims with carriers"},
			},
			Terminology: []string{"less-than-truckload", "bill of lading", "detention", "cross-dock", "last mile"},
			Tools:       []string{"project44", "Manhattan TMS", "Samsara"},
			KeyMetrics:  []string{"on-time in-full rate", "cost per mile", "dwell time", "claim resolution days"},
			Regulatory:  []string{"DOT hours-of-service", "Customs documentation", "Hazmat rules"},
		},
		{
			Domain: DomainEnergy,
			Roles: []SpecialistRole{
				{Role: "load-forecaster", Title: "Load Forecasting Agent", WorkflowPosition: 1, Responsibility: "Predicts demand from weather and usage patterns"},
				{Role: "outage-analyst", Title: "Outage Analysis Agent", WorkflowPosition: 2, Responsibility: "Correlates grid telemetry to locate faults"},
				{Role: "compliance-tracker", Title: "Regulatory Filing Agent", WorkflowPosition: 3, Responsibility: "Assembles rate case and compliance filings"},
			},
			Terminology: []string{"load profile", "interconnection queue", "curtailment", "rate case", "SCADA"},
			Tools:       []string{"OSIsoft PI", "GE Grid Solutions", "Esri ArcGIS"},
			KeyMetrics:  []string{"system average interruption duration", "forecast error", "asset utilization"},
			Regulatory:  []string{"FERC", "NERC CIP", "State utility commissions"},
		},
		{
			Domain: DomainConstruction,
			Roles: []SpecialistRole{
				{Role: "bid-estimator", Title: "Bid Estimation Agent", WorkflowPosition: 1, Responsibility: "Builds cost estimates from drawings and takeoffs"},
				{Role: "submittal-coordinator", Title: "Submittal Coordination Agent", WorkflowPosition: 2, Responsibility: "Tracks submittals, RFIs, and approvals"},
				{Role: "schedule-monitor", Title: "Schedule Monitoring Agent", WorkflowPosition: 3, Responsibility: "Flags critical-path slippage across trades"},
			},
			Terminology: []string{"RFI", "submittal", "change order", "critical path", "punch list", "takeoff"},
			Tools:       []string{"Procore", "Autodesk Construction Cloud", "Primavera P6"},
			KeyMetrics:  []string{"schedule variance", "change order rate", "safety incident rate"},
			Regulatory:  []string{"OSHA", "Building codes", "Lien law requirements"},
		},
		{
			Domain: DomainGeneric,
			Roles: []SpecialistRole{
				{Role: "intake-agent", Title: "Work Intake Agent", WorkflowPosition: 1, Responsibility: "Receives and structures incoming work items"},
				{Role: "processing-agent", Title: "Processing Agent", WorkflowPosition: 2, Responsibility: "Executes the core repeatable task"},
				{Role: "qa-agent", Title: "Quality Assurance Agent", WorkflowPosition: 3, Responsibility: "Checks outputs before handoff"},
				{Role: "reporting-agent", Title: "Reporting Agent", WorkflowPosition: 4, Responsibility: "Summarizes throughput and exceptions"},
			},
			Terminology: []string{"workflow", "handoff", "exception queue", "service level"},
			Tools:       []string{"Microsoft 365", "Slack", "Zapier"},
			KeyMetrics:  []string{"cycle time", "error rate", "throughput per day"},
			Regulatory:  []string{"General data protection obligations"},
		},
	}
}
