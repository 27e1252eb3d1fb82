package schedulers

import (
	"golang.org/x/exp/slices"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/responses"
	"os-scheduler-simulator/internal/util"
)

func generateResponse(algorithm string, timeQuantum int, processes []core.Process) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(processes)
	cpuMetric := core.MeasureCpu(processes)

	details := make([]responses.ProcessResponse, 0, len(processes))
	for i := range processes {
		details = append(details, generateProcessDetails(&processes[i]))
	}
	slices.SortFunc(details, func(a, b responses.ProcessResponse) bool {
		return a.ProcessId < b.ProcessId
	})

	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		TimeQuantum:           timeQuantum,
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        cpuMetric.Utilization(),
		CpuThroughput:         cpuMetric.Throughput(len(processes)),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               details,
	}
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		ResponseTime:   process.ResponseTime(),
		WaitingTime:    process.WaitingTime,
		TurnAroundTime: process.TurnaroundTime,
		CompletionTime: process.CompletionTime,
	}
}

// arrivalOrder returns pointers into processes sorted by arrival time. Equal arrivals
// keep their relative order in processes.
func arrivalOrder(processes []core.Process) []*core.Process {
	order := make([]*core.Process, 0, len(processes))
	for i := range processes {
		order = append(order, &processes[i])
	}
	slices.SortStableFunc(order, func(a, b *core.Process) bool {
		return a.ArrivalTime < b.ArrivalTime
	})
	return order
}

// shortestArrived returns the index of the arrived candidate with the smallest length,
// breaking ties by earlier arrival and then lower id. It returns -1 when nothing has
// arrived by clock.
func shortestArrived(candidates []*core.Process, clock int, length func(*core.Process) int) int {
	shortest := -1
	for i, p := range candidates {
		if p.ArrivalTime > clock {
			continue
		}
		if shortest < 0 || shorter(p, candidates[shortest], length) {
			shortest = i
		}
	}
	return shortest
}

func shorter(a, b *core.Process, length func(*core.Process) int) bool {
	if length(a) != length(b) {
		return length(a) < length(b)
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}
