// Package workload produces randomized process sets for the batch simulation.
package workload

import (
	"math/rand"
	"time"

	"os-scheduler-simulator/internal/core"
)

const (
	MaxArrivalTime = 10
	MinBurstTime   = 1
	MaxBurstTime   = 10
)

// IntSource is the random source the generator draws from. *rand.Rand satisfies it.
type IntSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

type Generator struct {
	source IntSource
}

func NewGenerator(source IntSource) *Generator {
	return &Generator{source: source}
}

// NewSeededGenerator returns a generator backed by math/rand. A zero seed is
// replaced by the current time.
func NewSeededGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// Generate returns processCount processes with ids 0..processCount-1, arrival times
// uniform in [0, MaxArrivalTime] and burst times uniform in [MinBurstTime, MaxBurstTime].
func (g *Generator) Generate(processCount int) []core.Process {
	processes := make([]core.Process, 0, processCount)
	for id := 0; id < processCount; id++ {
		arrival := g.source.Intn(MaxArrivalTime + 1)
		burst := MinBurstTime + g.source.Intn(MaxBurstTime-MinBurstTime+1)
		processes = append(processes, core.NewProcess(id, arrival, burst))
	}
	return processes
}
