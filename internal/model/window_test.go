package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_PushAndLen(t *testing.T) {
	w := NewWindow[int](5)
	assert.Equal(t, 0, w.Len())

	w.Push(1)
	assert.Equal(t, 1, w.Len())

	w.Push(2)
	w.Push(3)
	assert.Equal(t, 3, w.Len())
}

func TestWindow_OverwritesOldest(t *testing.T) {
	w := NewWindow[int](3)

	w.Push(10)
	w.Push(20)
	w.Push(30)
	require.Equal(t, 3, w.Len())

	// Push beyond capacity, 10 is overwritten
	w.Push(40)
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, []int{20, 30, 40}, w.Values())

	w.Push(50)
	assert.Equal(t, []int{30, 40, 50}, w.Values())
	assert.Equal(t, []int{50, 40, 30}, w.Newest())
}

func TestWindow_DefaultCapacity(t *testing.T) {
	w := NewWindow[string](0)
	for _, s := range []string{"a", "b", "c", "d"} {
		w.Push(s)
	}
	assert.Equal(t, defaultWindowCap, w.Len())
	assert.Equal(t, []string{"b", "c", "d"}, w.Values())
}

func TestWindow_Empty(t *testing.T) {
	w := NewWindow[int](4)
	assert.Empty(t, w.Values())
	assert.Empty(t, w.Newest())
}

func TestIndexRecordHealth(t *testing.T) {
	tests := []struct {
		name   string
		states map[string]int
		want   string
	}{
		{"all started", map[string]int{"STARTED": 4}, "green"},
		{"unassigned replica", map[string]int{"STARTED": 1, "UNASSIGNED": 1}, "yellow"},
		{"initializing", map[string]int{"INITIALIZING": 2}, "yellow"},
		{"relocating only", map[string]int{"STARTED": 1, "RELOCATING": 1}, "red"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndexRecord{States: tt.states}.Health())
		})
	}
}

func TestNodeRecordPrimaryRole(t *testing.T) {
	assert.Equal(t, "master", NodeRecord{Roles: []string{"data", "master"}}.PrimaryRole())
	assert.Equal(t, "data", NodeRecord{Roles: []string{"ingest", "data"}}.PrimaryRole())
	assert.Equal(t, "ingest", NodeRecord{Roles: []string{"ingest"}}.PrimaryRole())
	assert.Equal(t, "coordinating", NodeRecord{}.PrimaryRole())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "critical", SeverityCritical.String())
	assert.Equal(t, "degraded", VerdictDegraded.String())
	assert.Equal(t, "low", PriorityLow.String())
	assert.Equal(t, "Priority(9)", Priority(9).String())
}
