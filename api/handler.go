package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"os-scheduler-simulator/config"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/responses"
	"os-scheduler-simulator/internal/schedulers"
	"os-scheduler-simulator/internal/simulation"
	"os-scheduler-simulator/internal/workload"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return schedule(ctx, schedulers.ScheduleFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return schedule(ctx, func(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
		return schedulers.ScheduleRoundRobin(request, s.config.RoundRobinTimeQuantum)
	})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return schedule(ctx, schedulers.ScheduleShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return schedule(ctx, schedulers.ScheduleShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	response, err := schedulers.ScheduleAll(request, s.config.RoundRobinTimeQuantum)
	if err != nil {
		return requestFailed(ctx, err)
	}
	return ctx.JSON(response)
}

// Simulate runs the batch harness. Fields missing from the body fall back to the simulation config.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	request := requests.SimulationRequest{
		Quantum:      s.config.Simulation.Quantum,
		BatchCount:   s.config.Simulation.BatchCount,
		ProcessCount: s.config.Simulation.ProcessCount,
		Seed:         s.config.Simulation.Seed,
	}
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&request); err != nil {
			return invalidRequestFormat(ctx)
		}
	}

	simulator := simulation.NewSimulator(workload.NewSeededGenerator(request.Seed))
	response, err := simulator.Run(request)
	if err != nil {
		return requestFailed(ctx, err)
	}
	return ctx.JSON(response)
}

func schedule(ctx *fiber.Ctx, run func(requests.ScheduleRequests) (responses.ScheduleResponse, error)) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	response, err := run(request)
	if err != nil {
		return requestFailed(ctx, err)
	}
	return ctx.JSON(response)
}

func invalidRequestFormat(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
	})
}

func requestFailed(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, schedulers.ErrInvalidJob) ||
		errors.Is(err, schedulers.ErrInvalidTimeQuantum) ||
		errors.Is(err, simulation.ErrInvalidConfiguration) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	log.Println("can not process request:", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
