package util

import "os-scheduler-simulator/internal/core"

func CalculateAverage(processes []core.Process) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processes) == 0 {
		return
	}
	var waitingTimeSum int
	var responseTimeSum int
	var turnAroundTimeSum int

	for i := range processes {
		waitingTimeSum += processes[i].WaitingTime
		responseTimeSum += processes[i].ResponseTime()
		turnAroundTimeSum += processes[i].TurnaroundTime
	}

	processCount := float64(len(processes))

	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageResponseTime = float64(responseTimeSum) / processCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / processCount
	return
}

func AverageWaitingTime(processes []core.Process) float64 {
	averageWaitingTime, _, _ := CalculateAverage(processes)
	return averageWaitingTime
}

// Mean is the unweighted arithmetic mean of values, 0 for none.
func Mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
