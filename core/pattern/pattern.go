// Package pattern holds the static coordination-pattern table and the
// heuristic selector that picks one pattern per blueprint request.
package pattern

import "strings"

// Name identifies a coordination pattern.
type Name string

const (
	ManagerWorkers         Name = "manager-workers"
	PlanActReflect         Name = "plan-act-reflect"
	HierarchicalPlanning   Name = "hierarchical-planning"
	ReAct                  Name = "react"
	MarketBasedAuction     Name = "market-based-auction"
	BlackboardSharedMemory Name = "blackboard-shared-memory"

	// Default is substituted whenever selection cannot produce a registered
	// pattern.
	Default = ManagerWorkers
)

// Record describes one coordination pattern. AgentCount is an invariant: a
// valid generated team for this pattern has exactly that many members.
type Record struct {
	Name         Name   `json:"name"`
	DisplayName  string `json:"display_name"`
	Description  string `json:"description"`
	Coordination string `json:"coordination"`
	AgentCount   int    `json:"agent_count"`
	BestFor      string `json:"best_for"`
}

// Registry is the static pattern table, built once at process start and
// never mutated.
type Registry struct {
	records map[Name]Record
}

func NewRegistry() *Registry {
	records := make(map[Name]Record, len(allRecords()))
	for _, rec := range allRecords() {
		records[rec.Name] = rec
	}
	return &Registry{records: records}
}

func (r *Registry) Get(name Name) (Record, bool) {
	rec, ok := r.records[name]
	return rec, ok
}

func (r *Registry) Has(name Name) bool {
	_, ok := r.records[name]
	return ok
}

func (r *Registry) Names() []Name {
	return []Name{
		ManagerWorkers,
		PlanActReflect,
		HierarchicalPlanning,
		ReAct,
		MarketBasedAuction,
		BlackboardSharedMemory,
	}
}

// Normalize maps free-text pattern names ("Manager-Workers", "plan act
// reflect") onto registry keys. It does not guarantee the result is
// registered.
func Normalize(raw string) Name {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-'
	}), "-")
	return Name(s)
}

func allRecords() []Record {
	return []Record{
		{
			Name:         ManagerWorkers,
			DisplayName:  "Manager-Workers",
			Description:  "A manager agent decomposes work and dispatches it to specialized worker agents, then merges their results.",
			Coordination: "centralized delegation",
			AgentCount:   4,
			BestFor:      "high-volume repeatable processes with clear task boundaries",
		},
		{
			Name:         PlanActReflect,
			DisplayName:  "Plan-Act-Reflect",
			Description:  "Agents iterate through planning, execution, and reflection cycles, revising the plan as evidence accumulates.",
			Coordination: "iterative self-correction",
			AgentCount:   3,
			BestFor:      "research and analysis work in changing conditions",
		},
		{
			Name:         HierarchicalPlanning,
			DisplayName:  "Hierarchical-Planning",
			Description:  "A strategic planner sets objectives, tactical agents decompose them, and operational agents execute leaf tasks.",
			Coordination: "layered goal decomposition",
			AgentCount:   5,
			BestFor:      "strategic allocation decisions spanning multiple horizons",
		},
		{
			Name:         ReAct,
			DisplayName:  "ReAct",
			Description:  "Interleaved reasoning and acting: an agent reasons about the next step, acts through a tool, and incorporates the observation.",
			Coordination: "interleaved reasoning and tool use",
			AgentCount:   2,
			BestFor:      "exploratory tasks where each step depends on live observations",
		},
		{
			Name:         MarketBasedAuction,
			DisplayName:  "Market-Based-Auction",
			Description:  "Tasks are auctioned to bidding agents; the allocation emerges from bids rather than a central planner.",
			Coordination: "decentralized bidding",
			AgentCount:   5,
			BestFor:      "load balancing across agents with heterogeneous capabilities",
		},
		{
			Name:         BlackboardSharedMemory,
			DisplayName:  "Blackboard-Shared-Memory",
			Description:  "Agents contribute partial solutions to a shared blackboard, each triggering on the state others leave behind.",
			Coordination: "opportunistic shared state",
			AgentCount:   4,
			BestFor:      "problems needing many specialist perspectives on one artifact",
		},
	}
}
