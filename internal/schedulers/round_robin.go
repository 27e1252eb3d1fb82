package schedulers

import (
	"fmt"
	"log"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/responses"
	"os-scheduler-simulator/internal/util"
)

// AutoTimeQuantum asks for the quantum to be the longest burst of the workload,
// which makes round robin behave like first come first serve.
const AutoTimeQuantum = -1

type roundRobinSlot struct {
	process *core.Process
	readyAt int
}

// RoundRobin serves a fifo queue, initially every process in arrival order, granting at
// most timeQuantum units per dispatch and re-enqueueing unfinished processes at the tail.
// Waiting time accumulates from the moment a process last became ready, which equals the
// turnaround minus burst that Complete records on termination. It panics if
// timeQuantum < 1.
func RoundRobin(processes []core.Process, timeQuantum int) float64 {
	if timeQuantum < 1 {
		panic(fmt.Sprintf("round robin time quantum must be positive, got %d", timeQuantum))
	}

	queue := make([]roundRobinSlot, 0, len(processes))
	for _, process := range arrivalOrder(processes) {
		queue = append(queue, roundRobinSlot{process: process, readyAt: process.ArrivalTime})
	}

	var clock int
	for len(queue) > 0 {
		slot := queue[0]
		queue = queue[1:]
		process := slot.process

		if clock < process.ArrivalTime {
			clock = process.ArrivalTime
		}
		process.Dispatch(clock)
		process.WaitingTime += clock - slot.readyAt

		if process.RemainingTime > timeQuantum {
			clock += timeQuantum
			process.RemainingTime -= timeQuantum
			queue = append(queue, roundRobinSlot{process: process, readyAt: clock})
			continue
		}

		clock += process.RemainingTime
		process.Complete(clock)
	}
	return util.AverageWaitingTime(processes)
}

// ResolveTimeQuantum replaces AutoTimeQuantum with the longest burst in processes.
func ResolveTimeQuantum(timeQuantum int, processes []core.Process) int {
	if timeQuantum == AutoTimeQuantum {
		return core.MaxBurstTime(processes)
	}
	return timeQuantum
}

// ScheduleRoundRobin uses the request's quantum, or defaultTimeQuantum when the request leaves it unset.
func ScheduleRoundRobin(request requests.ScheduleRequests, defaultTimeQuantum int) (responses.ScheduleResponse, error) {
	processes, err := processesFromRequest(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeQuantum, err := requestTimeQuantum(request, defaultTimeQuantum, processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)

	RoundRobin(processes, timeQuantum)

	response := generateResponse(RoundRobinName, timeQuantum, processes)
	log.Printf("response is: %+v", response)
	return response, nil
}

func requestTimeQuantum(request requests.ScheduleRequests, defaultTimeQuantum int, processes []core.Process) (int, error) {
	timeQuantum := request.TimeQuantum
	if timeQuantum == 0 {
		timeQuantum = defaultTimeQuantum
	}
	timeQuantum = ResolveTimeQuantum(timeQuantum, processes)
	if timeQuantum < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTimeQuantum, timeQuantum)
	}
	return timeQuantum, nil
}
