package schedulers

import (
	"log"

	"golang.org/x/exp/slices"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/responses"
	"os-scheduler-simulator/internal/util"
)

// ShortestJobFirst is the non-preemptive variant: whenever the cpu is free it picks the
// arrived process with the smallest burst time and runs it to completion. With nothing
// arrived the clock advances one unit at a time.
func ShortestJobFirst(processes []core.Process) float64 {
	remaining := arrivalOrder(processes)

	var clock int
	for len(remaining) > 0 {
		index := shortestArrived(remaining, clock, burstTime)
		if index < 0 {
			clock++
			continue
		}
		process := remaining[index]
		remaining = slices.Delete(remaining, index, index+1)

		process.Dispatch(clock)
		clock += process.BurstTime
		process.Complete(clock)
	}
	return util.AverageWaitingTime(processes)
}

func burstTime(process *core.Process) int {
	return process.BurstTime
}

func ScheduleShortestJobFirst(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	processes, err := processesFromRequest(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("running sjf algorithm with", len(processes), "processes")

	ShortestJobFirst(processes)

	response := generateResponse(ShortestJobFirstName, 0, processes)
	log.Printf("response is: %+v", response)
	return response, nil
}
