package database

import (
	"context"
	"testing"
)

func TestNewPGX_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "empty address", opts: NewOptions("", "user", "pass", "notes")},
		{name: "address without port", opts: NewOptions("localhost", "user", "pass", "notes")},
		{name: "empty user", opts: NewOptions("localhost:5432", "", "pass", "notes")},
		{name: "zero attempts", opts: NewOptions("localhost:5432", "user", "pass", "notes", WithRetryAttempts(0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPGX(context.Background(), tt.opts); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestNewOptions_Defaults(t *testing.T) {
	opts := NewOptions("localhost:5432", "user", "pass", "notes")

	if !opts.retry || opts.retryAttempts != 3 || opts.maxConns != 5 {
		t.Errorf("unexpected defaults: %+v", opts)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}
