package schedulers

import (
	"log"

	"golang.org/x/exp/slices"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/responses"
	"os-scheduler-simulator/internal/util"
)

// ShortestRemainingTimeFirst is the preemptive shortest job first. The decision is
// re-evaluated every time unit: newly arrived processes join the ready set and the one
// with the least remaining time runs for one unit. Waiting time is derived from the
// final turnaround, not tracked per slice.
func ShortestRemainingTimeFirst(processes []core.Process) float64 {
	pending := arrivalOrder(processes)
	ready := make([]*core.Process, 0, len(processes))

	var clock, completed int
	for completed < len(processes) {
		for len(pending) > 0 && pending[0].ArrivalTime <= clock {
			ready = append(ready, pending[0])
			pending = pending[1:]
		}
		if len(ready) == 0 {
			clock++
			continue
		}

		index := shortestArrived(ready, clock, remainingTime)
		process := ready[index]
		process.Dispatch(clock)
		clock++
		process.RemainingTime--

		if process.RemainingTime == 0 {
			process.Complete(clock)
			ready = slices.Delete(ready, index, index+1)
			completed++
		}
	}
	return util.AverageWaitingTime(processes)
}

func remainingTime(process *core.Process) int {
	return process.RemainingTime
}

func ScheduleShortestRemainingTimeFirst(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	processes, err := processesFromRequest(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("running srtf algorithm with", len(processes), "processes")

	ShortestRemainingTimeFirst(processes)

	response := generateResponse(ShortestRemainingTimeFirstName, 0, processes)
	log.Printf("response is: %+v", response)
	return response, nil
}
