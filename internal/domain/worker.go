package domain

// One of the three fixed worker roles on a route.
// Each worker performs exactly one kind of task and follows the route
// only as far as its own last task.
type Worker struct {
	Name  string
	Task  TaskCode
	Color string
}

var (
	Swapper  = Worker{Name: "Swapper", Task: TaskSwap, Color: "#4caf50"}
	Fixer    = Worker{Name: "Fixer", Task: TaskFix, Color: "#ff9800"}
	Mechanic = Worker{Name: "Mechanic", Task: TaskRepair, Color: "#f44336"}
)

// Workers returns the worker roles in result order.
func Workers() []Worker {
	return []Worker{Swapper, Fixer, Mechanic}
}
