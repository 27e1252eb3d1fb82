// Package simulation runs batches of randomly generated workloads through every
// scheduling algorithm and aggregates their mean waiting times.
package simulation

import (
	"errors"
	"fmt"
	"log"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/responses"
	"os-scheduler-simulator/internal/schedulers"
	"os-scheduler-simulator/internal/util"
	"os-scheduler-simulator/internal/workload"
)

const (
	MaxBatchCount   = 10000
	MaxProcessCount = 1000
)

var ErrInvalidConfiguration = errors.New("invalid simulation configuration")

type Simulator struct {
	generator *workload.Generator
}

func NewSimulator(generator *workload.Generator) *Simulator {
	return &Simulator{generator: generator}
}

// Validate checks a request before any batch is generated.
func Validate(request requests.SimulationRequest) error {
	switch {
	case request.BatchCount < 1:
		return fmt.Errorf("%w: batch count must be at least 1, got %d", ErrInvalidConfiguration, request.BatchCount)
	case request.BatchCount > MaxBatchCount:
		return fmt.Errorf("%w: batch count must be at most %d, got %d", ErrInvalidConfiguration, MaxBatchCount, request.BatchCount)
	case request.ProcessCount < 1:
		return fmt.Errorf("%w: process count must be at least 1, got %d", ErrInvalidConfiguration, request.ProcessCount)
	case request.ProcessCount > MaxProcessCount:
		return fmt.Errorf("%w: process count must be at most %d, got %d", ErrInvalidConfiguration, MaxProcessCount, request.ProcessCount)
	case request.Quantum < 1 && request.Quantum != schedulers.AutoTimeQuantum:
		return fmt.Errorf("%w: quantum must be at least 1 or %d, got %d",
			ErrInvalidConfiguration, schedulers.AutoTimeQuantum, request.Quantum)
	}
	return nil
}

// Run simulates request.BatchCount batches. request.Seed is not read here: randomness
// comes from the generator the simulator was built with. Each batch draws one workload and gives every
// algorithm its own clone of it. The summary holds the unweighted mean of the per-batch means.
func (s *Simulator) Run(request requests.SimulationRequest) (responses.SimulationResponse, error) {
	if err := Validate(request); err != nil {
		return responses.SimulationResponse{}, err
	}
	log.Printf("simulating %d batches of %d processes, quantum = %d", request.BatchCount, request.ProcessCount, request.Quantum)

	batches := make([]responses.BatchResponse, 0, request.BatchCount)
	for batch := 1; batch <= request.BatchCount; batch++ {
		batches = append(batches, s.runBatch(batch, request))
	}

	response := responses.SimulationResponse{
		Batches: batches,
		Summary: summarize(batches),
	}
	log.Printf("simulation summary: %+v", response.Summary)
	return response, nil
}

func (s *Simulator) runBatch(batch int, request requests.SimulationRequest) responses.BatchResponse {
	processes := s.generator.Generate(request.ProcessCount)
	timeQuantum := schedulers.ResolveTimeQuantum(request.Quantum, processes)

	return responses.BatchResponse{
		Batch:       batch,
		FCFS:        schedulers.FirstComeFirstServe(core.CloneProcesses(processes)),
		SJFNP:       schedulers.ShortestJobFirst(core.CloneProcesses(processes)),
		SJFP:        schedulers.ShortestRemainingTimeFirst(core.CloneProcesses(processes)),
		RoundRobin:  schedulers.RoundRobin(core.CloneProcesses(processes), timeQuantum),
		TimeQuantum: timeQuantum,
	}
}

func summarize(batches []responses.BatchResponse) responses.SummaryResponse {
	var fcfs, sjfNP, sjfP, rr []float64
	for _, b := range batches {
		fcfs = append(fcfs, b.FCFS)
		sjfNP = append(sjfNP, b.SJFNP)
		sjfP = append(sjfP, b.SJFP)
		rr = append(rr, b.RoundRobin)
	}

	summary := responses.SummaryResponse{
		FCFS:       util.Mean(fcfs...),
		SJFNP:      util.Mean(sjfNP...),
		SJFP:       util.Mean(sjfP...),
		RoundRobin: util.Mean(rr...),
	}
	summary.Overall = util.Mean(summary.FCFS, summary.SJFNP, summary.SJFP, summary.RoundRobin)
	return summary
}
