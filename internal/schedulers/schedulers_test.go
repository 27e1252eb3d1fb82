package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/workload"
)

type expectedTiming struct {
	waiting    int
	completion int
	start      int
}

func sampleWorkload() []core.Process {
	return []core.Process{
		core.NewProcess(0, 0, 5),
		core.NewProcess(1, 1, 3),
		core.NewProcess(2, 2, 1),
	}
}

func byID(processes []core.Process) map[int]core.Process {
	index := make(map[int]core.Process, len(processes))
	for _, p := range processes {
		index[p.ID] = p
	}
	return index
}

func TestAlgorithmsOnSampleWorkload(t *testing.T) {
	tests := []struct {
		name    string
		run     func([]core.Process) float64
		mean    float64
		timings map[int]expectedTiming
	}{
		{
			name: "fcfs",
			run:  FirstComeFirstServe,
			mean: 10.0 / 3,
			timings: map[int]expectedTiming{
				0: {waiting: 0, completion: 5, start: 0},
				1: {waiting: 4, completion: 8, start: 5},
				2: {waiting: 6, completion: 9, start: 8},
			},
		},
		{
			name: "sjf non-preemptive",
			run:  ShortestJobFirst,
			mean: 8.0 / 3,
			timings: map[int]expectedTiming{
				0: {waiting: 0, completion: 5, start: 0},
				1: {waiting: 5, completion: 9, start: 6},
				2: {waiting: 3, completion: 6, start: 5},
			},
		},
		{
			name: "sjf preemptive",
			run:  ShortestRemainingTimeFirst,
			mean: 5.0 / 3,
			timings: map[int]expectedTiming{
				0: {waiting: 4, completion: 9, start: 0},
				1: {waiting: 1, completion: 5, start: 1},
				2: {waiting: 0, completion: 3, start: 2},
			},
		},
		{
			name: "round robin quantum 2",
			run: func(processes []core.Process) float64 {
				return RoundRobin(processes, 2)
			},
			mean: 10.0 / 3,
			timings: map[int]expectedTiming{
				0: {waiting: 4, completion: 9, start: 0},
				1: {waiting: 4, completion: 8, start: 2},
				2: {waiting: 2, completion: 5, start: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processes := sampleWorkload()
			mean := tt.run(processes)

			assert.InDelta(t, tt.mean, mean, 1e-9)
			got := byID(processes)
			for id, want := range tt.timings {
				p := got[id]
				assert.Equal(t, want.waiting, p.WaitingTime, "waiting time of pid %d", id)
				assert.Equal(t, want.completion, p.CompletionTime, "completion time of pid %d", id)
				assert.Equal(t, want.start, p.StartTime, "start time of pid %d", id)
			}
		})
	}
}

func TestPreemptionNeverWaitsLonger(t *testing.T) {
	fcfs := FirstComeFirstServe(sampleWorkload())
	sjf := ShortestJobFirst(sampleWorkload())
	srtf := ShortestRemainingTimeFirst(sampleWorkload())

	assert.LessOrEqual(t, srtf, sjf)
	assert.LessOrEqual(t, sjf, fcfs)

	generator := workload.NewSeededGenerator(2024)
	for i := 0; i < 200; i++ {
		processes := generator.Generate(8)
		srtf := ShortestRemainingTimeFirst(core.CloneProcesses(processes))
		assert.LessOrEqual(t, srtf, ShortestJobFirst(core.CloneProcesses(processes))+1e-9)
		assert.LessOrEqual(t, srtf, FirstComeFirstServe(core.CloneProcesses(processes))+1e-9)
	}
}

func TestTimingInvariantsHoldForEveryAlgorithm(t *testing.T) {
	algorithms := map[string]func([]core.Process) float64{
		"fcfs": FirstComeFirstServe,
		"sjf":  ShortestJobFirst,
		"srtf": ShortestRemainingTimeFirst,
		"rr1":  func(p []core.Process) float64 { return RoundRobin(p, 1) },
		"rr3":  func(p []core.Process) float64 { return RoundRobin(p, 3) },
	}

	generator := workload.NewSeededGenerator(11)
	for i := 0; i < 100; i++ {
		processes := generator.Generate(1 + i%12)
		for name, run := range algorithms {
			copies := core.CloneProcesses(processes)
			mean := run(copies)

			var waitingSum int
			for _, p := range copies {
				assert.Zero(t, p.RemainingTime, name)
				assert.Equal(t, p.WaitingTime+p.BurstTime, p.TurnaroundTime, name)
				assert.Equal(t, p.CompletionTime-p.ArrivalTime, p.TurnaroundTime, name)
				assert.GreaterOrEqual(t, p.WaitingTime, 0, name)
				assert.GreaterOrEqual(t, p.CompletionTime, p.ArrivalTime+p.BurstTime, name)
				assert.GreaterOrEqual(t, p.StartTime, p.ArrivalTime, name)
				waitingSum += p.WaitingTime
			}
			assert.InDelta(t, float64(waitingSum)/float64(len(copies)), mean, 1e-9, name)
		}
	}
}

func TestFirstComeFirstServePreservesArrivalOrder(t *testing.T) {
	generator := workload.NewSeededGenerator(5)
	for i := 0; i < 50; i++ {
		processes := generator.Generate(10)
		FirstComeFirstServe(processes)

		for _, a := range processes {
			for _, b := range processes {
				if a.ArrivalTime < b.ArrivalTime {
					assert.LessOrEqual(t, a.CompletionTime, b.CompletionTime)
				}
			}
		}
	}
}

func TestFirstComeFirstServeKeepsCallerOrder(t *testing.T) {
	processes := []core.Process{core.NewProcess(0, 6, 1), core.NewProcess(1, 0, 2)}
	FirstComeFirstServe(processes)

	assert.Equal(t, 0, processes[0].ID)
	assert.Equal(t, 7, processes[0].CompletionTime)
	assert.Equal(t, 2, processes[1].CompletionTime)
}

func TestRoundRobinWithLargeQuantumMatchesFirstComeFirstServe(t *testing.T) {
	generator := workload.NewSeededGenerator(77)
	for i := 0; i < 100; i++ {
		processes := generator.Generate(1 + i%10)
		fcfs := core.CloneProcesses(processes)
		rr := core.CloneProcesses(processes)

		fcfsMean := FirstComeFirstServe(fcfs)
		rrMean := RoundRobin(rr, core.MaxBurstTime(processes)+i%3)

		assert.InDelta(t, fcfsMean, rrMean, 1e-9)
		for j := range fcfs {
			assert.Equal(t, fcfs[j].WaitingTime, rr[j].WaitingTime)
			assert.Equal(t, fcfs[j].CompletionTime, rr[j].CompletionTime)
		}
	}
}

func TestShortestJobFirstTieBreaksByLowestID(t *testing.T) {
	processes := []core.Process{
		core.NewProcess(2, 1, 3),
		core.NewProcess(0, 0, 2),
		core.NewProcess(1, 1, 3),
	}
	ShortestJobFirst(processes)

	got := byID(processes)
	assert.Equal(t, 5, got[1].CompletionTime)
	assert.Equal(t, 8, got[2].CompletionTime)
}

func TestShortestJobFirstTieBreaksByEarlierArrival(t *testing.T) {
	processes := []core.Process{
		core.NewProcess(0, 0, 4),
		core.NewProcess(1, 3, 2),
		core.NewProcess(2, 2, 2),
	}
	ShortestJobFirst(processes)

	got := byID(processes)
	assert.Equal(t, 6, got[2].CompletionTime)
	assert.Equal(t, 8, got[1].CompletionTime)
}

func TestShortestJobFirstIdlesUntilArrival(t *testing.T) {
	processes := []core.Process{core.NewProcess(0, 3, 2)}
	mean := ShortestJobFirst(processes)

	assert.Zero(t, mean)
	assert.Equal(t, 3, processes[0].StartTime)
	assert.Equal(t, 5, processes[0].CompletionTime)
}

func TestShortestRemainingTimeFirstTieBreaksByLowestID(t *testing.T) {
	processes := []core.Process{core.NewProcess(1, 0, 2), core.NewProcess(0, 0, 2)}
	ShortestRemainingTimeFirst(processes)

	got := byID(processes)
	assert.Equal(t, 2, got[0].CompletionTime)
	assert.Equal(t, 4, got[1].CompletionTime)
	assert.Equal(t, 2, got[1].WaitingTime)
}

func TestShortestRemainingTimeFirstIdleGap(t *testing.T) {
	processes := []core.Process{core.NewProcess(0, 0, 1), core.NewProcess(1, 4, 2)}
	mean := ShortestRemainingTimeFirst(processes)

	assert.Zero(t, mean)
	assert.Equal(t, 6, processes[1].CompletionTime)
	assert.Equal(t, core.CpuMetric{TotalTime: 6, UtilizationTime: 3, IdleTime: 3}, core.MeasureCpu(processes))
}

func TestRoundRobinCompletesEveryProcess(t *testing.T) {
	processes := sampleWorkload()
	RoundRobin(processes, 1)

	want := map[int]core.Process{
		0: {ID: 0, ArrivalTime: 0, BurstTime: 5, StartTime: 0, WaitingTime: 4, CompletionTime: 9, TurnaroundTime: 9},
		1: {ID: 1, ArrivalTime: 1, BurstTime: 3, StartTime: 1, WaitingTime: 3, CompletionTime: 7, TurnaroundTime: 6},
		2: {ID: 2, ArrivalTime: 2, BurstTime: 1, StartTime: 2, WaitingTime: 0, CompletionTime: 3, TurnaroundTime: 1},
	}
	for _, p := range processes {
		assert.True(t, p.Completed())
		assert.Equal(t, want[p.ID], p)
	}
}

func TestRoundRobinRejectsNonPositiveQuantum(t *testing.T) {
	assert.Panics(t, func() { RoundRobin(sampleWorkload(), 0) })
}

func TestResolveTimeQuantum(t *testing.T) {
	assert.Equal(t, 5, ResolveTimeQuantum(AutoTimeQuantum, sampleWorkload()))
	assert.Equal(t, 3, ResolveTimeQuantum(3, sampleWorkload()))
}

func TestSingleProcessNeverWaits(t *testing.T) {
	for _, run := range []func([]core.Process) float64{
		FirstComeFirstServe,
		ShortestJobFirst,
		ShortestRemainingTimeFirst,
		func(p []core.Process) float64 { return RoundRobin(p, 1) },
	} {
		processes := []core.Process{core.NewProcess(0, 7, 4)}
		require.Zero(t, run(processes))
		assert.Equal(t, 11, processes[0].CompletionTime)
	}
}
