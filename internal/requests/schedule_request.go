package requests

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}

// ScheduleRequests carries a fixed workload. TimeQuantum is read by round robin only:
// -1 derives it from the longest burst, 0 falls back to the configured default.
type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum"`
}

// SimulationRequest configures one batch simulation. Seed is consumed by the callers that
// build the simulator's generator (http handler, cli); the simulator itself never reads it.
type SimulationRequest struct {
	Quantum      int   `json:"quantum"`
	BatchCount   int   `json:"batch_count"`
	ProcessCount int   `json:"process_count"`
	Seed         int64 `json:"seed"`
}
