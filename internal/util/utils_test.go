package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"os-scheduler-simulator/internal/core"
)

func TestCalculateAverage(t *testing.T) {
	processes := []core.Process{core.NewProcess(0, 0, 5), core.NewProcess(1, 1, 3)}
	processes[0].Dispatch(0)
	processes[0].Complete(5)
	processes[1].Dispatch(5)
	processes[1].Complete(8)

	waiting, response, turnaround := CalculateAverage(processes)

	assert.InDelta(t, 2.0, waiting, 1e-9)
	assert.InDelta(t, 2.0, response, 1e-9)
	assert.InDelta(t, 6.0, turnaround, 1e-9)
	assert.InDelta(t, 2.0, AverageWaitingTime(processes), 1e-9)
}

func TestCalculateAverageEmpty(t *testing.T) {
	waiting, response, turnaround := CalculateAverage(nil)

	assert.Zero(t, waiting)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}

func TestMean(t *testing.T) {
	assert.Zero(t, Mean())
	assert.InDelta(t, 2.5, Mean(1, 2, 3, 4), 1e-9)
}
