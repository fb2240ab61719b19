package prommetrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/arraylist"
)

func TestCollectorExportsTracker(t *testing.T) {
	tr := arraylist.NewTracker()
	l := arraylist.New[int](arraylist.WithTracker(tr))
	for i := 0; i < 5; i++ {
		_, err := l.Add(i)
		require.NoError(t, err)
	}
	// capacities 1, 2, 4, 8: four allocations, three freed

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector(tr, "test")))

	expected := `
# HELP test_arraylist_allocations_total Buffer allocations performed.
# TYPE test_arraylist_allocations_total counter
test_arraylist_allocations_total 4
# HELP test_arraylist_frees_total Buffer allocations freed.
# TYPE test_arraylist_frees_total counter
test_arraylist_frees_total 3
# HELP test_arraylist_live_allocations Buffer allocations not yet freed.
# TYPE test_arraylist_live_allocations gauge
test_arraylist_live_allocations 1
# HELP test_arraylist_live_slots Element slots held by live allocations.
# TYPE test_arraylist_live_slots gauge
test_arraylist_live_slots 8
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))

	l.Clear()
	require.Equal(t, 4, testutil.CollectAndCount(NewCollector(tr, "test")))
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP test_arraylist_live_allocations Buffer allocations not yet freed.
# TYPE test_arraylist_live_allocations gauge
test_arraylist_live_allocations 0
`), "test_arraylist_live_allocations"))
}

func TestCollectorNilTracker(t *testing.T) {
	c := NewCollector(nil, "")
	require.Equal(t, 4, testutil.CollectAndCount(c))
}
