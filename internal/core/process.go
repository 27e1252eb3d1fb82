package core

// Process is one unit of simulated CPU work. ID, ArrivalTime and BurstTime are fixed
// at creation; the rest is timing state written by a single scheduling run.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int

	RemainingTime  int
	StartTime      int // -1 until first dispatched
	WaitingTime    int
	CompletionTime int
	TurnaroundTime int
}

func NewProcess(id, arrivalTime, burstTime int) Process {
	return Process{
		ID:            id,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		RemainingTime: burstTime,
		StartTime:     -1,
	}
}

// ResponseTime is the delay between arrival and first dispatch.
func (p *Process) ResponseTime() int {
	if p.StartTime < 0 {
		return 0
	}
	return p.StartTime - p.ArrivalTime
}

func (p *Process) Completed() bool {
	return p.RemainingTime == 0 && p.StartTime >= 0
}

// Dispatch marks the process as running at time t.
func (p *Process) Dispatch(t int) {
	if p.StartTime < 0 {
		p.StartTime = t
	}
}

// Complete records termination at time t and derives turnaround and waiting time from it.
func (p *Process) Complete(t int) {
	p.RemainingTime = 0
	p.CompletionTime = t
	p.TurnaroundTime = t - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}

// CloneProcesses returns fresh processes with the same identity, arrival and burst
// times. Timing state is reset, so the clone never observes another run's mutations.
func CloneProcesses(processes []Process) []Process {
	clones := make([]Process, 0, len(processes))
	for _, p := range processes {
		clones = append(clones, NewProcess(p.ID, p.ArrivalTime, p.BurstTime))
	}
	return clones
}

// MaxBurstTime returns the largest burst time in processes, or 0 if there are none.
func MaxBurstTime(processes []Process) int {
	var max int
	for _, p := range processes {
		if p.BurstTime > max {
			max = p.BurstTime
		}
	}
	return max
}
