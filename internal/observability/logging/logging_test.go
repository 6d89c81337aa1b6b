package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

func TestValidateAndExtractRequestID(t *testing.T) {
	valid := uuid.NewString()

	if got := ValidateAndExtractRequestID(valid); got != valid {
		t.Errorf("ValidateAndExtractRequestID(valid) = %q, want %q", got, valid)
	}

	for _, in := range []string{"", "not-a-uuid"} {
		got := ValidateAndExtractRequestID(in)
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("ValidateAndExtractRequestID(%q) = %q, not a uuid", in, got)
		}
	}
}

func TestContextHandlerAddsRequestIDAndModule(t *testing.T) {
	var buf bytes.Buffer
	h := &contextHandler{
		Handler:       slog.NewJSONHandler(&buf, nil),
		defaultModule: Module("planner"),
	}
	logger := slog.New(h)

	ctx := WithRequestID(context.Background(), "req-1")
	logger.InfoContext(ctx, "hello")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log record: %v", err)
	}
	if rec["request_id"] != "req-1" {
		t.Errorf("request_id = %v, want req-1", rec["request_id"])
	}
	if rec["module"] != "planner" {
		t.Errorf("module = %v, want planner", rec["module"])
	}

	buf.Reset()
	logger.InfoContext(WithModule(ctx, Module("analytics")), "hello")
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log record: %v", err)
	}
	if rec["module"] != "analytics" {
		t.Errorf("module = %v, want analytics", rec["module"])
	}
}
