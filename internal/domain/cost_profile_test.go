package domain

import (
	"reflect"
	"testing"
)

func TestCostProfileEntriesRoundTrip(t *testing.T) {
	p := NewCostProfile("task-1")

	entries, err := p.Entries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty entries for new profile, got %v", entries)
	}

	want := []CostEntry{{Offset: 5, Cost: -10}, {Offset: 120, Cost: -2}}
	if err := p.SetEntries(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(p.Data) != `[{"t":5,"c":-10},{"t":120,"c":-2}]` {
		t.Errorf("unexpected blob: %s", p.Data)
	}

	got, err := p.Entries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
}

func TestCostProfileEntriesCorruptBlob(t *testing.T) {
	p := &CostProfile{TaskID: "task-1", Data: []byte("{not json")}
	if _, err := p.Entries(); err == nil {
		t.Error("expected error for corrupt blob")
	}
}

func TestOverlayEntries(t *testing.T) {
	base := []CostEntry{{Offset: 10, Cost: -1}, {Offset: 20, Cost: -3}}
	top := []CostEntry{{Offset: 20, Cost: -60}, {Offset: 5, Cost: -30}}

	got := OverlayEntries(base, top)
	want := []CostEntry{{Offset: 5, Cost: -30}, {Offset: 10, Cost: -1}, {Offset: 20, Cost: -60}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OverlayEntries() = %v, want %v", got, want)
	}
}

func TestMergeEntries(t *testing.T) {
	got := MergeEntries([]CostEntry{{Offset: 30, Cost: -2}, {Offset: 10, Cost: 1}, {Offset: 30, Cost: -3}})
	want := []CostEntry{{Offset: 10, Cost: 1}, {Offset: 30, Cost: -5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeEntries() = %v, want %v", got, want)
	}
}
