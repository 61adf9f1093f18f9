package clock_test

import (
	"testing"
	"time"

	"github.com/xraph/sigil/clock"
)

func TestSystemNow(t *testing.T) {
	before := time.Now().Add(-time.Second)
	got := clock.System{}.Now()
	after := time.Now().Add(time.Second)

	if got.Before(before) || got.After(after) {
		t.Errorf("System.Now() = %v, outside [%v, %v]", got, before, after)
	}
	if got.Location() != time.UTC {
		t.Errorf("System.Now() location = %v, want UTC", got.Location())
	}
}

func TestManualSetAndAdvance(t *testing.T) {
	start := time.Unix(1700000000, 0)
	m := clock.NewManual(start)

	if !m.Now().Equal(start) {
		t.Fatalf("Now() = %v, want %v", m.Now(), start)
	}

	m.Advance(90 * time.Second)
	if got := m.Now(); !got.Equal(start.Add(90 * time.Second)) {
		t.Errorf("after Advance, Now() = %v", got)
	}

	m.Advance(-30 * time.Second)
	if got := m.Now(); !got.Equal(start.Add(60 * time.Second)) {
		t.Errorf("after negative Advance, Now() = %v", got)
	}

	m.Set(start)
	if !m.Now().Equal(start) {
		t.Errorf("after Set, Now() = %v, want %v", m.Now(), start)
	}
}
