package services

import "moped-route-service/internal/domain"

// CalculateTotalTime computes how long each worker spends on a route.
//
// Each worker is simulated independently over the shared route: it walks
// from the first vehicle to the last vehicle carrying its task, performing
// its tasks and travelling in between, and stops there. A worker with no
// tasks on the route does not travel at all.
//
// Inputs must already be validated (see domain.ParseRoute and domain.NewRoute):
// len(travelTimes) == len(vehicles)-1 and only S, F and M task letters.
// Behaviour on anything else is undefined.
func CalculateTotalTime(vehicles []string, travelTimes []int) *domain.TotalTimeResult {
	workers := domain.Workers()

	result := &domain.TotalTimeResult{
		Workers: make([]domain.WorkerBreakdown, 0, len(workers)),
	}

	for _, w := range workers {
		breakdown := workerBreakdown(w, vehicles, travelTimes)
		result.TotalMinutes += breakdown.Minutes
		result.Workers = append(result.Workers, breakdown)
	}

	return result
}

// CalculateRoute runs CalculateTotalTime over a validated route.
func CalculateRoute(route domain.Route) *domain.TotalTimeResult {
	return CalculateTotalTime(route.Vehicles, route.TravelTimes)
}

func workerBreakdown(w domain.Worker, vehicles []string, travelTimes []int) domain.WorkerBreakdown {
	lastTaskIndex := -1
	for i, v := range vehicles {
		if w.Task.CountIn(v) > 0 {
			lastTaskIndex = i
		}
	}

	if lastTaskIndex < 0 {
		return domain.WorkerBreakdown{
			Worker: w,
			Items:  []domain.BreakdownItem{{Kind: domain.BreakdownNoTasks}},
		}
	}

	minutes := 0
	items := make([]domain.BreakdownItem, 0, 2*lastTaskIndex+1)

	for i := 0; i <= lastTaskIndex; i++ {
		if n := w.Task.CountIn(vehicles[i]); n > 0 {
			taskMinutes := n * w.Task.Minutes()
			minutes += taskMinutes
			items = append(items, domain.BreakdownItem{
				Kind:    domain.BreakdownTask,
				Vehicle: i,
				Count:   n,
				Minutes: taskMinutes,
			})
		}

		// The worker stops at its last task; no travel beyond it.
		if i < lastTaskIndex {
			minutes += travelTimes[i]
			items = append(items, domain.BreakdownItem{
				Kind:    domain.BreakdownTravel,
				Vehicle: i,
				Minutes: travelTimes[i],
			})
		}
	}

	return domain.WorkerBreakdown{
		Worker:  w,
		Minutes: minutes,
		Items:   items,
	}
}
