package stub

import (
	"fmt"
	"math"

	"github.com/KasumiMercury/primind-learning-planner/internal/infra/optimizer"
)

const slotsPerDay = 288

// Place assigns each task one contiguous interval, choosing the cheapest free window
// that stays within a single non-blocked day. Tasks that do not fit are left out.
func Place(req *optimizer.Request) optimizer.Response {
	horizon := req.Horizon
	if horizon <= 0 {
		horizon = 7 * slotsPerDay
	}

	occupied := make([]bool, horizon)
	for _, b := range req.FixedBlocks {
		for s := max(b.Start, 0); s < b.Start+b.Duration && s < horizon; s++ {
			occupied[s] = true
		}
	}

	blocked := make(map[int]bool, len(req.BlockedDays))
	for _, d := range req.BlockedDays {
		blocked[d] = true
	}

	resp := make(optimizer.Response, 0, len(req.Tasks))
	for _, task := range req.Tasks {
		start, ok := bestWindow(req, task, occupied, blocked, horizon)
		if !ok {
			continue
		}
		for s := start; s < start+task.Duration; s++ {
			occupied[s] = true
		}
		resp = append(resp, optimizer.Assignment{
			ID:    fmt.Sprintf("%s_0", task.ID),
			Start: start,
			End:   start + task.Duration,
		})
	}
	return resp
}

func bestWindow(req *optimizer.Request, task optimizer.TaskDemand, occupied []bool, blocked map[int]bool, horizon int) (int, bool) {
	if task.Duration <= 0 {
		return 0, false
	}

	costs := make(map[int]int, len(task.Costs))
	for _, c := range task.Costs {
		costs[c.Offset] += c.Cost
	}

	deadline := min(task.Deadline, horizon)
	best, bestScore := -1, math.MaxInt
	for s := max(task.Start, req.CurrentSlot, 0); s+task.Duration <= deadline; s++ {
		day := s / slotsPerDay
		if blocked[day] || (s+task.Duration-1)/slotsPerDay != day {
			continue
		}

		score, free := 0, true
		for t := s; t < s+task.Duration; t++ {
			if occupied[t] {
				free = false
				break
			}
			score += costs[t]
		}
		if free && score < bestScore {
			best, bestScore = s, score
		}
	}
	return best, best >= 0
}
