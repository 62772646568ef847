package services

import (
	"moped-route-service/internal/domain"
	"reflect"
	"slices"
	"testing"
)

func TestCalculateTotalTimeMixedRoute(t *testing.T) {
	result := CalculateTotalTime([]string{"S", "F", "SF", "FF"}, []int{2, 4, 3})

	// Swapper 8 (last swap at vehicle 2), Fixer 29, Mechanic 0.
	if result.TotalMinutes != 37 {
		t.Fatalf("total = %d, want 37", result.TotalMinutes)
	}
	if len(result.Workers) != 3 {
		t.Fatalf("expected 3 workers, got %d", len(result.Workers))
	}

	swapper := result.Workers[0]
	if swapper.Worker.Name != "Swapper" || swapper.Minutes != 8 {
		t.Fatalf("swapper = %s %d, want Swapper 8", swapper.Worker.Name, swapper.Minutes)
	}
	wantSwapper := []domain.BreakdownItem{
		{Kind: domain.BreakdownTask, Vehicle: 0, Count: 1, Minutes: 1},
		{Kind: domain.BreakdownTravel, Vehicle: 0, Minutes: 2},
		{Kind: domain.BreakdownTravel, Vehicle: 1, Minutes: 4},
		{Kind: domain.BreakdownTask, Vehicle: 2, Count: 1, Minutes: 1},
	}
	if !reflect.DeepEqual(swapper.Items, wantSwapper) {
		t.Fatalf("swapper items = %+v, want %+v", swapper.Items, wantSwapper)
	}

	fixer := result.Workers[1]
	if fixer.Worker.Name != "Fixer" || fixer.Minutes != 29 {
		t.Fatalf("fixer = %s %d, want Fixer 29", fixer.Worker.Name, fixer.Minutes)
	}
	wantFixer := []domain.BreakdownItem{
		{Kind: domain.BreakdownTravel, Vehicle: 0, Minutes: 2},
		{Kind: domain.BreakdownTask, Vehicle: 1, Count: 1, Minutes: 5},
		{Kind: domain.BreakdownTravel, Vehicle: 1, Minutes: 4},
		{Kind: domain.BreakdownTask, Vehicle: 2, Count: 1, Minutes: 5},
		{Kind: domain.BreakdownTravel, Vehicle: 2, Minutes: 3},
		{Kind: domain.BreakdownTask, Vehicle: 3, Count: 2, Minutes: 10},
	}
	if !reflect.DeepEqual(fixer.Items, wantFixer) {
		t.Fatalf("fixer items = %+v, want %+v", fixer.Items, wantFixer)
	}

	mechanic := result.Workers[2]
	if mechanic.Minutes != 0 {
		t.Fatalf("mechanic minutes = %d, want 0", mechanic.Minutes)
	}
	if len(mechanic.Items) != 1 || mechanic.Items[0].Kind != domain.BreakdownNoTasks {
		t.Fatalf("mechanic items = %+v, want single no-tasks item", mechanic.Items)
	}
}

func TestCalculateTotalTimeSingleVehicle(t *testing.T) {
	result := CalculateTotalTime([]string{"M"}, []int{})

	if result.TotalMinutes != 8 {
		t.Fatalf("total = %d, want 8", result.TotalMinutes)
	}

	mechanic := result.Workers[2]
	want := []domain.BreakdownItem{{Kind: domain.BreakdownTask, Vehicle: 0, Count: 1, Minutes: 8}}
	if !reflect.DeepEqual(mechanic.Items, want) {
		t.Fatalf("mechanic items = %+v, want %+v", mechanic.Items, want)
	}

	for _, wb := range result.Workers[:2] {
		if wb.Minutes != 0 || len(wb.Items) != 1 || wb.Items[0].Kind != domain.BreakdownNoTasks {
			t.Errorf("%s = %+v, want no-tasks with 0 minutes", wb.Worker.Name, wb)
		}
	}
}

func TestCalculateTotalTimeStopsAfterLastTask(t *testing.T) {
	vehicles := []string{"S", "M", "F", "F"}
	travel := []int{5, 6, 7}
	result := CalculateTotalTime(vehicles, travel)

	// Swapper's only task is at vehicle 0: it never travels.
	swapper := result.Workers[0]
	if swapper.Minutes != 1 {
		t.Fatalf("swapper minutes = %d, want 1", swapper.Minutes)
	}

	// Mechanic stops at vehicle 1.
	mechanic := result.Workers[2]
	if mechanic.Minutes != 5+8 {
		t.Fatalf("mechanic minutes = %d, want 13", mechanic.Minutes)
	}

	for _, wb := range result.Workers {
		last := -1
		for i, v := range vehicles {
			if wb.Worker.Task.CountIn(v) > 0 {
				last = i
			}
		}
		for _, item := range wb.Items {
			if item.Kind == domain.BreakdownTravel && item.Vehicle >= last {
				t.Errorf("%s travels from vehicle %d past its last task at %d", wb.Worker.Name, item.Vehicle, last)
			}
		}
	}
}

func TestCalculateTotalTimeRepeatedTask(t *testing.T) {
	result := CalculateTotalTime([]string{"SS"}, []int{})

	swapper := result.Workers[0]
	want := []domain.BreakdownItem{{Kind: domain.BreakdownTask, Vehicle: 0, Count: 2, Minutes: 2}}
	if !reflect.DeepEqual(swapper.Items, want) {
		t.Fatalf("swapper items = %+v, want %+v", swapper.Items, want)
	}
}

func TestCalculateTotalTimeIgnoresCase(t *testing.T) {
	lower := CalculateTotalTime([]string{"sf", "mm"}, []int{4})
	upper := CalculateTotalTime([]string{"SF", "MM"}, []int{4})

	if !reflect.DeepEqual(lower, upper) {
		t.Fatalf("lowercase result %+v differs from uppercase %+v", lower, upper)
	}
}

func TestCalculateTotalTimeProperties(t *testing.T) {
	routes := []struct {
		vehicles []string
		travel   []int
	}{
		{[]string{"S"}, []int{}},
		{[]string{"F", "F"}, []int{0}},
		{[]string{"SFM", "M", "S", "FS"}, []int{3, 1, 9}},
		{[]string{"MMM", "SS", "F", "S", "M"}, []int{2, 2, 2, 2}},
	}

	for _, r := range routes {
		vehicles := slices.Clone(r.vehicles)
		travel := slices.Clone(r.travel)

		first := CalculateTotalTime(r.vehicles, r.travel)
		second := CalculateTotalTime(r.vehicles, r.travel)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%v: results differ between calls", r.vehicles)
		}

		if !slices.Equal(vehicles, r.vehicles) || !slices.Equal(travel, r.travel) {
			t.Fatalf("%v: inputs were mutated", r.vehicles)
		}

		sum := 0
		for _, wb := range first.Workers {
			itemSum := 0
			for _, item := range wb.Items {
				itemSum += item.Minutes
			}
			if itemSum != wb.Minutes {
				t.Errorf("%v: %s items sum to %d, worker total %d", r.vehicles, wb.Worker.Name, itemSum, wb.Minutes)
			}
			sum += wb.Minutes
		}
		if sum != first.TotalMinutes {
			t.Errorf("%v: worker sum %d != total %d", r.vehicles, sum, first.TotalMinutes)
		}
	}
}
