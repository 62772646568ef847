package domain

import "strings"

// A single kind of maintenance task performed on a moped.
// Each TaskCode has a fixed duration; durations are part of the domain
// and are not configurable.
type TaskCode byte

const (
	TaskSwap   TaskCode = 'S'
	TaskFix    TaskCode = 'F'
	TaskRepair TaskCode = 'M'
)

var taskMinutes = map[TaskCode]int{
	TaskSwap:   1,
	TaskFix:    5,
	TaskRepair: 8,
}

// TaskCodes returns all task codes in display order.
func TaskCodes() []TaskCode {
	return []TaskCode{TaskSwap, TaskFix, TaskRepair}
}

// Minutes one instance of the task takes.
func (c TaskCode) Minutes() int { return taskMinutes[c] }

func (c TaskCode) String() string { return string(rune(c)) }

// Count occurrences of the task in a vehicle task string, ignoring case.
func (c TaskCode) CountIn(tasks string) int {
	return strings.Count(strings.ToUpper(tasks), string(rune(c)))
}
