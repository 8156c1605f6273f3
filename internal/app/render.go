package app

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vk/taskrank/internal/task"
)

// jsonTask is the wire shape of a task in JSON output.
type jsonTask struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Deadline       string   `json:"deadline"`
	Priority       int      `json:"priority"`
	DependsOn      []string `json:"depends_on,omitempty"`
	EstimatedHours float64  `json:"estimated_hours"`
}

func toJSONTasks(tasks []task.Task) []jsonTask {
	out := make([]jsonTask, len(tasks))
	for i, t := range tasks {
		out[i] = jsonTask{
			ID:             t.ID,
			Name:           t.Name,
			Deadline:       t.Deadline.String(),
			Priority:       t.Priority,
			DependsOn:      t.DependsOn,
			EstimatedHours: t.EstimatedHours,
		}
	}
	return out
}

// hoursString trims trailing zeros so whole-hour estimates read as integers.
func hoursString(h float64) string {
	return strconv.FormatFloat(h, 'g', -1, 64)
}

func (a *App) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.outW, string(data))
	return err
}

const taskRowFormat = "%-4v %-14s %-32s %-8v %-20s %6s\n"

func (a *App) printTaskHeader() {
	fmt.Fprintf(a.outW, taskRowFormat, "#", "ID", "NAME", "PRIORITY", "DEADLINE", "HOURS")
}

func (a *App) printTaskRow(position int, t task.Task) {
	fmt.Fprintf(a.outW, taskRowFormat,
		position, t.ID, t.Name, t.Priority, t.Deadline.String(), hoursString(t.EstimatedHours))
}

// renderOrder writes the ranked sequence in the configured encoding.
func (a *App) renderOrder(tasks []task.Task) error {
	if a.cfg.Output == OutputJSON {
		type output struct {
			Tasks []jsonTask `json:"tasks"`
		}
		return a.writeJSON(output{Tasks: toJSONTasks(tasks)})
	}

	a.printTaskHeader()
	for i, t := range tasks {
		a.printTaskRow(i+1, t)
	}
	return nil
}

// renderGroups writes the dependency waves in the configured encoding.
func (a *App) renderGroups(waves [][]task.Task) error {
	if a.cfg.Output == OutputJSON {
		type output struct {
			Waves [][]jsonTask `json:"waves"`
		}
		o := output{Waves: make([][]jsonTask, len(waves))}
		for i, wave := range waves {
			o.Waves[i] = toJSONTasks(wave)
		}
		return a.writeJSON(o)
	}

	for i, wave := range waves {
		fmt.Fprintf(a.outW, "WAVE %d\n", i+1)
		for _, t := range wave {
			fmt.Fprintf(a.outW, "  %-14s %-32s %-8v %-20s %6s\n",
				t.ID, t.Name, t.Priority, t.Deadline.String(), hoursString(t.EstimatedHours))
		}
	}
	return nil
}

// renderCriticalPath writes the schedule-dominating chain and its total.
func (a *App) renderCriticalPath(chain []task.Task, hours float64) error {
	if a.cfg.Output == OutputJSON {
		type output struct {
			EstimatedHours float64    `json:"estimated_hours"`
			Tasks          []jsonTask `json:"tasks"`
		}
		return a.writeJSON(output{EstimatedHours: hours, Tasks: toJSONTasks(chain)})
	}

	fmt.Fprintf(a.outW, "CRITICAL PATH (%s hours)\n", hoursString(hours))
	a.printTaskHeader()
	for i, t := range chain {
		a.printTaskRow(i+1, t)
	}
	return nil
}
