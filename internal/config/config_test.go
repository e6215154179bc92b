package config

import (
	"testing"

	"github.com/yndnr/hashsnap-go/internal/hashtable"
)

func TestDefaultVerifies(t *testing.T) {
	if err := Default().Verify(); err != nil {
		t.Fatalf("Default().Verify() = %v", err)
	}
}

func TestVerifyRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"empty data dir", func(s *Spec) { s.Storage.DataDir = "" }},
		{"zero shards", func(s *Spec) { s.Table.Shards = 0 }},
		{"non power of two shards", func(s *Spec) { s.Table.Shards = 12 }},
		{"negative key size", func(s *Spec) { s.Table.MaxKeySize = -1 }},
		{"bad log level", func(s *Spec) { s.Log.Level = "verbose" }},
		{"bad log format", func(s *Spec) { s.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			if err := s.Verify(); err == nil {
				t.Error("Verify accepted an invalid config")
			}
		})
	}
}

func TestTableSettingsConversion(t *testing.T) {
	s := Default()
	s.Table.Shards = 64
	s.Table.MaxKeySize = 128

	set := s.TableSettings()
	if set.NumShards != 64 || set.MaxKeySize != 128 {
		t.Fatalf("TableSettings = %+v", set)
	}
	if err := set.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if _, err := hashtable.New(set, s.Allocator()); err != nil {
		t.Fatalf("hashtable.New: %v", err)
	}
}
