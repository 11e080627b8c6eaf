package tablefind_test

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/halvorsen/tablefind"
)

func TestRegistererWiresBothCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, tablefind.Registerer(reg))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["tablefind_stage_duration_seconds"])
	require.True(t, names["tablefind_stage_items_total"])
}

func TestRegistererRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, tablefind.Registerer(reg))
	require.Error(t, tablefind.Registerer(reg))
}

func TestDetectTablesRecordsStageMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, tablefind.Registerer(reg))

	_, err := tablefind.DetectTables(gridPage(), tablefind.DefaultTableSettings())
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() != "tablefind_stage_items_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			if counterValue(m) > 0 {
				found = true
			}
		}
	}
	require.True(t, found, "at least one pipeline stage should have recorded items")
}

func counterValue(m *dto.Metric) float64 {
	if c := m.GetCounter(); c != nil {
		return c.GetValue()
	}
	return 0
}
