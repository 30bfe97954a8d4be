package handler

import (
	"testing"

	"github.com/mpattadkal/baxi/core"
)

func TestLevelExact(t *testing.T) {
	f := LevelExact(core.InfoLevel)

	tests := []struct {
		level core.Level
		want  bool
	}{
		{core.DebugLevel, false},
		{core.InfoLevel, true},
		{core.WarnLevel, false},
		{core.ErrorLevel, false},
		{core.CriticalLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := f(&core.Record{Level: tt.level}); got != tt.want {
				t.Errorf("LevelExact(INFO)(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestLevelAtLeast(t *testing.T) {
	f := LevelAtLeast(core.WarnLevel)

	tests := []struct {
		level core.Level
		want  bool
	}{
		{core.DebugLevel, false},
		{core.InfoLevel, false},
		{core.WarnLevel, true},
		{core.ErrorLevel, true},
		{core.CriticalLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := f(&core.Record{Level: tt.level}); got != tt.want {
				t.Errorf("LevelAtLeast(WARNING)(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
