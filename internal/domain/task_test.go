package domain

import (
	"testing"
	"time"
)

func TestTaskHardDeadline(t *testing.T) {
	due := time.Date(2024, 1, 20, 18, 30, 0, 0, time.UTC)
	exam := time.Date(2024, 2, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		task   Task
		want   time.Time
		wantOK bool
	}{
		{
			name:   "deadline task uses due date",
			task:   Task{Category: CategoryDeadline, DueDate: &due},
			want:   due,
			wantOK: true,
		},
		{
			name:   "exam task ends at start of exam day",
			task:   Task{Category: CategoryExam, ExamDate: &exam},
			want:   time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "open task has no deadline",
			task:   Task{Category: CategoryOpen},
			wantOK: false,
		},
		{
			name:   "deadline task without due date",
			task:   Task{Category: CategoryDeadline},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.task.HardDeadline()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("HardDeadline() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskIsActive(t *testing.T) {
	due := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	task := Task{Category: CategoryDeadline, DueDate: &due}

	tests := []struct {
		name       string
		now        time.Time
		bufferDays int
		want       bool
	}{
		{name: "well before soft deadline", now: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), bufferDays: 2, want: true},
		{name: "exactly at soft deadline", now: time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC), bufferDays: 2, want: false},
		{name: "inside buffer", now: time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC), bufferDays: 2, want: false},
		{name: "no buffer before due date", now: time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC), bufferDays: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := task.IsActive(tt.now, tt.bufferDays); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}

	open := Task{Category: CategoryOpen}
	if !open.IsActive(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC), 30) {
		t.Error("open task should always be active")
	}
}
