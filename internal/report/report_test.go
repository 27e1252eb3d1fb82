package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"os-scheduler-simulator/internal/responses"
)

func TestWriteSimulation(t *testing.T) {
	var buf bytes.Buffer
	WriteSimulation(&buf, responses.SimulationResponse{
		Batches: []responses.BatchResponse{
			{Batch: 1, FCFS: 10.0 / 3, SJFNP: 8.0 / 3, SJFP: 5.0 / 3, RoundRobin: 10.0 / 3, TimeQuantum: 5},
		},
		Summary: responses.SummaryResponse{FCFS: 3.333, SJFNP: 2.667, SJFP: 1.667, RoundRobin: 3.333, Overall: 2.75},
	})

	out := buf.String()
	assert.Contains(t, out, "SJF(NP)")
	assert.Contains(t, out, "Quantum")
	assert.Contains(t, out, "3.33")
	assert.Contains(t, out, "1.67")
	assert.Contains(t, out, "Average Waiting Time: 2.75")
}

func TestWriteSchedule(t *testing.T) {
	var buf bytes.Buffer
	WriteSchedule(&buf, "First-come, first-serve", responses.ScheduleResponse{
		Algorithm:          "FCFS",
		TotalTime:          9,
		AverageWaitingTime: 10.0 / 3,
		CpuUtilization:     1,
		Details: []responses.ProcessResponse{
			{ProcessId: 0, ArrivalTime: 0, BurstTime: 5, TurnAroundTime: 5, CompletionTime: 5},
			{ProcessId: 1, ArrivalTime: 1, BurstTime: 3, WaitingTime: 4, TurnAroundTime: 7, CompletionTime: 8},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "First-come, first-serve")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "3.33")
	assert.Contains(t, out, "Total time: 9, idle: 0, utilization: 1.00")
}
