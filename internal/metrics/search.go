package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Supports exact match or prefix match. Empty query matches all.
func matchesNamespace(metricNS, queryNS []string) (matches bool) {
	if len(queryNS) == 0 {
		matches = true
		return
	}

	if len(metricNS) < len(queryNS) {
		return
	}

	for i := 0; i < len(queryNS); i++ {
		if metricNS[i] != queryNS[i] {
			return
		}
	}

	matches = true
	return
}

// Returns all metrics matching given name and namespace prefix.
// If name is empty, returns all names.
// If namespacePrefix is empty, returns all namespaces.
// Optional: start/end time window filter.
// Results are ordered oldest first, then by namespace and name.
func (registry *Registry) Search(name string, namespacePrefix []string, start, end time.Time) (results []Metric) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	// Collect all timestamps
	var timestamps []time.Time
	for ts := range registry.metrics {
		if !start.IsZero() && ts.Before(start) {
			continue
		}
		if !end.IsZero() && ts.After(end) {
			continue
		}
		timestamps = append(timestamps, ts)
	}

	// Sort timestamps oldest -> newest
	sort.Slice(timestamps, func(i, j int) bool {
		return timestamps[i].Before(timestamps[j])
	})

	for _, ts := range timestamps {
		var slice []Metric

		nsMap := registry.metrics[ts]
		for nsStr, metricsMap := range nsMap {
			ns := strings.Split(nsStr, "/")
			if !matchesNamespace(ns, namespacePrefix) {
				continue
			}

			for metricName, metric := range metricsMap {
				if name == "" || metricName == name {
					slice = append(slice, metric)
				}
			}
		}

		// Stable output within a time slice
		sort.Slice(slice, func(i, j int) bool {
			nsI := strings.Join(slice[i].Namespace, "/")
			nsJ := strings.Join(slice[j].Namespace, "/")
			if nsI != nsJ {
				return nsI < nsJ
			}
			return slice[i].Name < slice[j].Name
		})
		results = append(results, slice...)
	}
	return
}

// One line summary, e.g. 'Collector/Reader/Syslog chunks_read=12 count'
func (metric Metric) String() (text string) {
	text = fmt.Sprintf("%s %s=%v", strings.Join(metric.Namespace, "/"), metric.Name, metric.Value.Raw)
	if metric.Value.Unit != "" {
		text += " " + metric.Value.Unit
	}
	return
}
