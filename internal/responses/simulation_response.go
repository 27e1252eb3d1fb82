package responses

// BatchResponse is one simulated batch: the mean waiting time of every algorithm
// and the round robin quantum that batch actually used.
type BatchResponse struct {
	Batch       int     `json:"batch"`
	FCFS        float64 `json:"fcfs"`
	SJFNP       float64 `json:"sjf_np"`
	SJFP        float64 `json:"sjf_p"`
	RoundRobin  float64 `json:"rr"`
	TimeQuantum int     `json:"quantum"`
}

type SummaryResponse struct {
	FCFS       float64 `json:"fcfs"`
	SJFNP      float64 `json:"sjf_np"`
	SJFP       float64 `json:"sjf_p"`
	RoundRobin float64 `json:"rr"`
	Overall    float64 `json:"overall"`
}

type SimulationResponse struct {
	Batches []BatchResponse `json:"batches"`
	Summary SummaryResponse `json:"summary"`
}
