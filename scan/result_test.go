package scan

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportHelpers(t *testing.T) {
	start := time.Now()
	report := Report{
		Targets: []string{"a", "b"},
		Ports:   []int{80, 443, 8080},
		Results: []Result{
			{Target: "b", Port: 443, State: PortClosed},
			{Target: "a", Port: 8080, State: PortOpen},
			{Target: "a", Port: 80, State: PortOpen},
		},
		StartTime: start,
		EndTime:   start.Add(time.Millisecond * 1500),
	}

	assert.Equal(t, 6, report.TotalProbes())
	assert.Equal(t, 2, report.OpenCount())
	assert.Equal(t, time.Millisecond*1500, report.Elapsed())

	sorted := report.Sorted()
	assert.Equal(t, []Result{
		{Target: "a", Port: 80, State: PortOpen},
		{Target: "a", Port: 8080, State: PortOpen},
		{Target: "b", Port: 443, State: PortClosed},
	}, sorted)

	// Sorted works on a copy.
	assert.Equal(t, "b", report.Results[0].Target)
}

func TestPortStateText(t *testing.T) {
	assert.Equal(t, "open", PortOpen.String())
	assert.Equal(t, "closed", PortClosed.String())

	data, err := json.Marshal(Result{Target: "h", Port: 22, State: PortOpen})
	require.Nil(t, err)
	assert.Contains(t, string(data), `"state":"open"`)

	var result Result
	require.Nil(t, json.Unmarshal(data, &result))
	assert.Equal(t, PortOpen, result.State)

	var state PortState
	assert.NotNil(t, state.UnmarshalText([]byte("filtered")))
}
