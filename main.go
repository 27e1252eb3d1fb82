package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"os-scheduler-simulator/api"
	"os-scheduler-simulator/config"
	"os-scheduler-simulator/internal/report"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/schedulers"
	"os-scheduler-simulator/internal/simulation"
	"os-scheduler-simulator/internal/workload"
)

func main() {
	cfg := config.GetSchedulerConfig()

	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "serve":
		serve(cfg)
	case "simulate":
		if err := simulate(cfg, os.Args[2:]); err != nil {
			log.Fatalln(err)
		}
	case "schedule":
		if err := schedule(cfg, os.Args[2:]); err != nil {
			log.Fatalln(err)
		}
	default:
		log.Fatalf("unknown command %q, expected serve, simulate or schedule", command)
	}
}

func serve(cfg *config.SchedulerConfig) {
	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func simulate(cfg *config.SchedulerConfig, args []string) error {
	flags := flag.NewFlagSet("simulate", flag.ContinueOnError)
	quantum := flags.Int("quantum", cfg.Simulation.Quantum, "round robin quantum (-1 for the longest burst of each batch)")
	batches := flags.Int("batches", cfg.Simulation.BatchCount, "number of batches")
	processes := flags.Int("processes", cfg.Simulation.ProcessCount, "processes per batch")
	seed := flags.Int64("seed", cfg.Simulation.Seed, "random seed (0 seeds from the clock)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	simulator := simulation.NewSimulator(workload.NewSeededGenerator(*seed))
	response, err := simulator.Run(requests.SimulationRequest{
		Quantum:      *quantum,
		BatchCount:   *batches,
		ProcessCount: *processes,
		Seed:         *seed,
	})
	if err != nil {
		return err
	}

	report.WriteSimulation(os.Stdout, response)
	return nil
}

// schedule runs every algorithm on the jobs of a json request file and prints one table per algorithm.
func schedule(cfg *config.SchedulerConfig, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("must give a scheduling file to process")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("%w: error opening scheduling file", err)
	}
	defer f.Close()

	var request requests.ScheduleRequests
	if err := json.NewDecoder(f).Decode(&request); err != nil {
		return fmt.Errorf("%w: decoding scheduling file", err)
	}

	all, err := schedulers.ScheduleAll(request, cfg.RoundRobinTimeQuantum)
	if err != nil {
		return err
	}
	for _, response := range all {
		report.WriteSchedule(os.Stdout, response.Algorithm, response)
	}
	return nil
}
