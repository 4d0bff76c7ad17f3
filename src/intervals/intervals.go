package intervals

import (
	"sort"
	"time"
)

// -----------------------------------------------------------------------------
// Supported interval set
// -----------------------------------------------------------------------------

// Interval describes one supported granularity. Resolution is what the
// provider is asked for; WindowSeconds, when larger than NativeSeconds, means
// the native bars must be resampled into synthetic windows of that size.
type Interval struct {
	Name          string
	Resolution    string
	NativeSeconds int64
	WindowSeconds int64
}

// -----------------------------------------------------------------------------

// DefaultName is the finest supported granularity, used when a subscribe
// message omits the interval.
const DefaultName = "in_1_minute"

var supported = map[string]Interval{
	"in_1_minute":   {Name: "in_1_minute", Resolution: "1", NativeSeconds: 60, WindowSeconds: 60},
	"in_3_minute":   {Name: "in_3_minute", Resolution: "3", NativeSeconds: 180, WindowSeconds: 180},
	"in_5_minute":   {Name: "in_5_minute", Resolution: "5", NativeSeconds: 300, WindowSeconds: 300},
	"in_10_minute":  {Name: "in_10_minute", Resolution: "5", NativeSeconds: 300, WindowSeconds: 600},
	"in_15_minute":  {Name: "in_15_minute", Resolution: "15", NativeSeconds: 900, WindowSeconds: 900},
	"in_30_minute":  {Name: "in_30_minute", Resolution: "30", NativeSeconds: 1800, WindowSeconds: 1800},
	"in_45_minute":  {Name: "in_45_minute", Resolution: "45", NativeSeconds: 2700, WindowSeconds: 2700},
	"in_75_minute":  {Name: "in_75_minute", Resolution: "15", NativeSeconds: 900, WindowSeconds: 4500},
	"in_125_minute": {Name: "in_125_minute", Resolution: "5", NativeSeconds: 300, WindowSeconds: 7500},
	"in_1_hour":     {Name: "in_1_hour", Resolution: "60", NativeSeconds: 3600, WindowSeconds: 3600},
	"in_2_hour":     {Name: "in_2_hour", Resolution: "120", NativeSeconds: 7200, WindowSeconds: 7200},
	"in_3_hour":     {Name: "in_3_hour", Resolution: "180", NativeSeconds: 10800, WindowSeconds: 10800},
	"in_4_hour":     {Name: "in_4_hour", Resolution: "240", NativeSeconds: 14400, WindowSeconds: 14400},
	"in_5_hour":     {Name: "in_5_hour", Resolution: "60", NativeSeconds: 3600, WindowSeconds: 18000},
	"in_6_hour":     {Name: "in_6_hour", Resolution: "180", NativeSeconds: 10800, WindowSeconds: 21600},
	"in_8_hour":     {Name: "in_8_hour", Resolution: "240", NativeSeconds: 14400, WindowSeconds: 28800},
	"in_10_hour":    {Name: "in_10_hour", Resolution: "60", NativeSeconds: 3600, WindowSeconds: 36000},
	"in_12_hour":    {Name: "in_12_hour", Resolution: "60", NativeSeconds: 3600, WindowSeconds: 43200},
	"in_daily":      {Name: "in_daily", Resolution: "1D", NativeSeconds: 86400, WindowSeconds: 86400},
	"in_weekly":     {Name: "in_weekly", Resolution: "1W", NativeSeconds: 604800, WindowSeconds: 604800},
	"in_monthly":    {Name: "in_monthly", Resolution: "1M", NativeSeconds: 2592000, WindowSeconds: 2592000},
}

// -----------------------------------------------------------------------------

// Lookup resolves a public interval name to its mapping.
func Lookup(name string) (Interval, bool) {
	iv, ok := supported[name]
	return iv, ok
}

// -----------------------------------------------------------------------------

// IsSupported reports whether name belongs to the supported set.
func IsSupported(name string) bool {
	_, ok := supported[name]
	return ok
}

// -----------------------------------------------------------------------------

// Names returns the supported interval names in a stable order.
func Names() []string {
	names := make([]string, 0, len(supported))
	for name := range supported {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// -----------------------------------------------------------------------------

// NeedsResample reports whether the provider cannot deliver this granularity
// natively and the fetched bars must be aggregated.
func (iv Interval) NeedsResample() bool {
	return iv.WindowSeconds != iv.NativeSeconds
}

// -----------------------------------------------------------------------------

// BarsPerWindow returns how many native bars make up one target window.
func (iv Interval) BarsPerWindow() int {
	if iv.NativeSeconds == 0 {
		return 1
	}
	return int(iv.WindowSeconds / iv.NativeSeconds)
}

// -----------------------------------------------------------------------------

// Window returns the target window size as a duration.
func (iv Interval) Window() time.Duration {
	return time.Duration(iv.WindowSeconds) * time.Second
}
