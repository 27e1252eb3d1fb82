package schedulers

import (
	"errors"
	"fmt"
	"log"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/responses"
)

const (
	FirstComeFirstServeName        = "FCFS"
	ShortestJobFirstName           = "SJF(NP)"
	ShortestRemainingTimeFirstName = "SJF(P)"
	RoundRobinName                 = "RR"
)

// Request workloads are bounded so that the tick-by-tick algorithms finish quickly and
// the clock, which never exceeds the latest arrival plus the sum of bursts, cannot overflow.
const (
	MaxJobs           = 1000
	MaxScheduleLength = 100000
)

var (
	ErrInvalidJob         = errors.New("invalid job")
	ErrInvalidTimeQuantum = errors.New("invalid time quantum")
)

// processesFromRequest validates the jobs of a request and turns them into fresh processes.
func processesFromRequest(request requests.ScheduleRequests) ([]core.Process, error) {
	if len(request.Jobs) == 0 {
		return nil, fmt.Errorf("%w: no jobs to schedule", ErrInvalidJob)
	}
	if len(request.Jobs) > MaxJobs {
		return nil, fmt.Errorf("%w: %d jobs exceed the limit of %d", ErrInvalidJob, len(request.Jobs), MaxJobs)
	}

	seen := make(map[int]bool, len(request.Jobs))
	processes := make([]core.Process, 0, len(request.Jobs))
	var latestArrival, totalBurst int
	for _, job := range request.Jobs {
		switch {
		case job.ArrivalTime < 0:
			return nil, fmt.Errorf("%w: pid %d has negative arrival time %d", ErrInvalidJob, job.ProcessId, job.ArrivalTime)
		case job.ArrivalTime > MaxScheduleLength:
			return nil, fmt.Errorf("%w: pid %d arrival time %d exceeds %d", ErrInvalidJob, job.ProcessId, job.ArrivalTime, MaxScheduleLength)
		case job.BurstTime < 1:
			return nil, fmt.Errorf("%w: pid %d has non-positive burst time %d", ErrInvalidJob, job.ProcessId, job.BurstTime)
		case job.BurstTime > MaxScheduleLength:
			return nil, fmt.Errorf("%w: pid %d burst time %d exceeds %d", ErrInvalidJob, job.ProcessId, job.BurstTime, MaxScheduleLength)
		case seen[job.ProcessId]:
			return nil, fmt.Errorf("%w: duplicate pid %d", ErrInvalidJob, job.ProcessId)
		}
		seen[job.ProcessId] = true
		if job.ArrivalTime > latestArrival {
			latestArrival = job.ArrivalTime
		}
		totalBurst += job.BurstTime
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime))
	}
	if latestArrival+totalBurst > MaxScheduleLength {
		return nil, fmt.Errorf("%w: schedule may run until %d, limit is %d", ErrInvalidJob, latestArrival+totalBurst, MaxScheduleLength)
	}
	return processes, nil
}

// ScheduleAll runs every algorithm against its own copy of the request's jobs.
func ScheduleAll(request requests.ScheduleRequests, defaultTimeQuantum int) ([]responses.ScheduleResponse, error) {
	processes, err := processesFromRequest(request)
	if err != nil {
		return nil, err
	}
	timeQuantum, err := requestTimeQuantum(request, defaultTimeQuantum, processes)
	if err != nil {
		return nil, err
	}
	log.Println("running all algorithms with", len(processes), "processes, timeQuantum = ", timeQuantum)

	fcfs := core.CloneProcesses(processes)
	FirstComeFirstServe(fcfs)
	sjf := core.CloneProcesses(processes)
	ShortestJobFirst(sjf)
	srtf := core.CloneProcesses(processes)
	ShortestRemainingTimeFirst(srtf)
	rr := core.CloneProcesses(processes)
	RoundRobin(rr, timeQuantum)

	return []responses.ScheduleResponse{
		generateResponse(FirstComeFirstServeName, 0, fcfs),
		generateResponse(ShortestJobFirstName, 0, sjf),
		generateResponse(ShortestRemainingTimeFirstName, 0, srtf),
		generateResponse(RoundRobinName, timeQuantum, rr),
	}, nil
}
