package promstatus_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xgxstatus "github.com/xgx-io/xgx-status"
	"github.com/xgx-io/xgx-status/promstatus"
)

type cacheError uint8

const (
	cacheMiss cacheError = iota
	cacheStale
)

func (cacheError) Conditions() []xgxstatus.ConditionEntry {
	return []xgxstatus.ConditionEntry{
		{Name: "CACHE_MISS", Message: "Key not cached."},
		{Name: "CACHE_STALE", Message: "Cached value expired."},
	}
}

// gather returns metric values keyed by family name then domain label.
func gather(t *testing.T, reg *prometheus.Registry) map[string]map[string]float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]map[string]float64)
	for _, mf := range mfs {
		byDomain := make(map[string]float64)
		for _, m := range mf.GetMetric() {
			var domain string
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "domain" {
					domain = lp.GetValue()
				}
			}
			switch {
			case m.GetCounter() != nil:
				byDomain[domain] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				byDomain[domain] = m.GetGauge().GetValue()
			}
		}
		out[mf.GetName()] = byDomain
	}
	return out
}

func TestCollector(t *testing.T) {
	d := xgxstatus.NewEnumDomain[cacheError]("cache", xgxstatus.WithCapacity(4))
	reg := prometheus.NewRegistry()

	c, err := promstatus.Register(reg, d)
	require.NoError(t, err)
	require.NotNil(t, c)

	got := gather(t, reg)
	assert.Equal(t, float64(0), got["xgx_status_incidents_raised_total"]["cache"])
	assert.Equal(t, float64(4), got["xgx_status_incident_capacity"]["cache"])

	for range 6 {
		d.Raise(cacheMiss, "")
	}
	d.Raise(cacheStale, "ttl elapsed")

	got = gather(t, reg)
	assert.Equal(t, float64(7), got["xgx_status_incidents_raised_total"]["cache"])
	assert.Equal(t, float64(4), got["xgx_status_incident_capacity"]["cache"])
}

func TestCollector_Add(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := promstatus.Register(reg)
	require.NoError(t, err)

	local := xgxstatus.LocalDomain[cacheError](xgxstatus.NewLocal())
	c.Add(local)
	local.Raise(cacheStale, "")

	got := gather(t, reg)
	require.Contains(t, got, "xgx_status_incidents_raised_total")
	assert.Equal(t, float64(1), got["xgx_status_incidents_raised_total"][local.Name()])
	assert.Equal(t, float64(xgxstatus.LocalCapacity), got["xgx_status_incident_capacity"][local.Name()])
}

func TestRegister_Duplicate(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := promstatus.Register(reg)
	require.NoError(t, err)

	_, err = promstatus.Register(reg)
	assert.Error(t, err)
}
