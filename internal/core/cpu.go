package core

// CpuMetric summarises how the single simulated CPU was used during one run.
// All values are in simulated time units.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// MeasureCpu derives the cpu metric of a completed run. The clock starts at 0 and
// stops at the last completion; every time unit not spent on a burst was idle.
func MeasureCpu(processes []Process) CpuMetric {
	var metric CpuMetric
	for _, p := range processes {
		if p.CompletionTime > metric.TotalTime {
			metric.TotalTime = p.CompletionTime
		}
		metric.UtilizationTime += p.BurstTime
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}
