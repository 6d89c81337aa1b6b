package optimizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

type Request struct {
	Horizon        int          `json:"horizon"`
	CurrentSlot    int          `json:"current_slot"`
	BlockedDays    []int        `json:"blocked_days"`
	PreferenceTime string       `json:"preference_time"`
	FixedBlocks    []FixedBlock `json:"fixed_blocks"`
	Tasks          []TaskDemand `json:"tasks"`
}

type FixedBlock struct {
	Start    int `json:"start"`
	Duration int `json:"duration"`
}

type TaskDemand struct {
	ID       string             `json:"id"`
	Duration int                `json:"duration"`
	Start    int                `json:"start"`
	Deadline int                `json:"deadline"`
	Costs    []domain.CostEntry `json:"costs"`
}

// Assignment is one placed interval. ID has the form "<taskId>_<index>".
type Assignment struct {
	ID    string `json:"id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type Response []Assignment

// TaskID splits the task identifier off the assignment id.
func (a Assignment) TaskID() (string, error) {
	idx := strings.LastIndex(a.ID, "_")
	if idx <= 0 {
		return "", fmt.Errorf("%w: malformed assignment id %q", domain.ErrOptimizerResponse, a.ID)
	}
	if _, err := strconv.Atoi(a.ID[idx+1:]); err != nil {
		return "", fmt.Errorf("%w: malformed assignment index in %q", domain.ErrOptimizerResponse, a.ID)
	}
	return a.ID[:idx], nil
}
