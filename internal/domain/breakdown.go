package domain

type BreakdownKind string

const (
	BreakdownTask    BreakdownKind = "task"
	BreakdownTravel  BreakdownKind = "travel"
	BreakdownNoTasks BreakdownKind = "no-tasks"
)

// A single unit of worker activity.
//
// Vehicle is the 0-based route position: the vehicle a task was performed
// at, or the vehicle a travel segment starts from (it ends at Vehicle+1).
// Count is only meaningful for task items. A no-tasks item carries no data.
type BreakdownItem struct {
	Kind    BreakdownKind
	Vehicle int
	Count   int
	Minutes int
}

// Describes everything one worker did on a route.
type WorkerBreakdown struct {
	Worker  Worker
	Minutes int
	Items   []BreakdownItem
}

// Result of a route time calculation.
// TotalMinutes is the sum of the worker totals; workers are independent
// passes over the same route, not a shared clock.
type TotalTimeResult struct {
	TotalMinutes int
	Workers      []WorkerBreakdown
}
