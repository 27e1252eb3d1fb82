package schedulers

import (
	"log"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/responses"
	"os-scheduler-simulator/internal/util"
)

// FirstComeFirstServe runs processes to completion in arrival order and returns
// the mean waiting time. The cpu idles until the next arrival when nothing is ready.
func FirstComeFirstServe(processes []core.Process) float64 {
	var clock int
	for _, process := range arrivalOrder(processes) {
		if clock < process.ArrivalTime {
			clock = process.ArrivalTime
		}
		process.Dispatch(clock)
		clock += process.BurstTime
		process.Complete(clock)
	}
	return util.AverageWaitingTime(processes)
}

func ScheduleFirstComeFirstServe(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	processes, err := processesFromRequest(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("running fcfs algorithm with", len(processes), "processes")

	FirstComeFirstServe(processes)

	response := generateResponse(FirstComeFirstServeName, 0, processes)
	log.Printf("response is: %+v", response)
	return response, nil
}
