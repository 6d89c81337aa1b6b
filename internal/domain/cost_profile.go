package domain

import (
	"encoding/json"
	"sort"
	"time"
)

// CostEntry is a single slot preference. The JSON shape is shared with the optimizer contract.
type CostEntry struct {
	Offset int `json:"t"`
	Cost   int `json:"c"`
}

// CostProfile stores a task's cost entries as opaque blobs. Penalties are kept apart
// from rating-derived entries so that a recomputation does not forget them.
type CostProfile struct {
	TaskID      string
	Data        []byte
	PenaltyData []byte
	Stale       bool
	UpdatedAt   time.Time
}

func NewCostProfile(taskID string) *CostProfile {
	return &CostProfile{
		TaskID: taskID,
	}
}

func (p *CostProfile) Entries() ([]CostEntry, error) {
	return decodeEntries(p.Data)
}

func (p *CostProfile) Penalties() ([]CostEntry, error) {
	return decodeEntries(p.PenaltyData)
}

func (p *CostProfile) SetEntries(entries []CostEntry) error {
	data, err := json.Marshal(normalizeEntries(entries))
	if err != nil {
		return err
	}
	p.Data = data
	return nil
}

func (p *CostProfile) SetPenalties(entries []CostEntry) error {
	data, err := json.Marshal(normalizeEntries(entries))
	if err != nil {
		return err
	}
	p.PenaltyData = data
	return nil
}

func decodeEntries(data []byte) ([]CostEntry, error) {
	if len(data) == 0 {
		return []CostEntry{}, nil
	}
	var entries []CostEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []CostEntry{}
	}
	return entries, nil
}

func normalizeEntries(entries []CostEntry) []CostEntry {
	if entries == nil {
		return []CostEntry{}
	}
	return entries
}

// OverlayEntries replaces (or adds) the entries of base at every offset present in top.
// The result is ordered by offset.
func OverlayEntries(base, top []CostEntry) []CostEntry {
	byOffset := make(map[int]int, len(base)+len(top))
	for _, e := range base {
		byOffset[e.Offset] = e.Cost
	}
	for _, e := range top {
		byOffset[e.Offset] = e.Cost
	}
	return entriesFromMap(byOffset)
}

// MergeEntries sums costs that share an offset. The result is ordered by offset.
func MergeEntries(entries []CostEntry) []CostEntry {
	byOffset := make(map[int]int, len(entries))
	for _, e := range entries {
		byOffset[e.Offset] += e.Cost
	}
	return entriesFromMap(byOffset)
}

func entriesFromMap(byOffset map[int]int) []CostEntry {
	out := make([]CostEntry, 0, len(byOffset))
	for offset, cost := range byOffset {
		out = append(out, CostEntry{Offset: offset, Cost: cost})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})
	return out
}
