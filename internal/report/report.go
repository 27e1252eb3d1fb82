// Package report renders schedules and simulation results as text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler-simulator/internal/responses"
)

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteSchedule outputs one algorithm's per-process timing with the averages in the footer.
func WriteSchedule(w io.Writer, title string, response responses.ScheduleResponse) {
	outputTitle(w, title)

	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Response", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()

	_, _ = fmt.Fprintf(w, "Total time: %d, idle: %d, utilization: %.2f\n\n",
		response.TotalTime, response.IdleTime, response.CpuUtilization)
}

// WriteSimulation outputs one row per batch followed by the grand averages.
func WriteSimulation(w io.Writer, response responses.SimulationResponse) {
	outputTitle(w, "CPU Scheduling Simulator")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Batch", "FCFS", "SJF(NP)", "SJF(P)", "RR", "Quantum"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, b := range response.Batches {
		table.Append([]string{
			fmt.Sprint(b.Batch),
			fmt.Sprintf("%.2f", b.FCFS),
			fmt.Sprintf("%.2f", b.SJFNP),
			fmt.Sprintf("%.2f", b.SJFP),
			fmt.Sprintf("%.2f", b.RoundRobin),
			fmt.Sprint(b.TimeQuantum),
		})
	}
	table.Render()

	s := response.Summary
	_, _ = fmt.Fprintf(w, "FCFS: %.2f\nSJF(NP): %.2f\nSJF(P): %.2f\nRound Robin: %.2f\n\nAverage Waiting Time: %.2f\n",
		s.FCFS, s.SJFNP, s.SJFP, s.RoundRobin, s.Overall)
}
