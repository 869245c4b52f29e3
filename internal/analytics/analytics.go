// Package analytics summarises decoded responses for inspection: item and warning counts and the
// distribution of attached file sizes.
package analytics

import (
	"moodle/internal/catalog"
	"moodle/internal/models"
	"sort"
)

// Percentiles is a generic struct for storing percentiles for any distribution of data.
type Percentiles struct {
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
	P99 float64 `json:"p99"`
}

// Summary describes one decoded response.
type Summary struct {
	Function string `json:"function"`
	Items    int    `json:"items"`

	// WarningsByCode counts warnings per warning code.
	WarningsByCode map[string]int `json:"warningsByCode"`

	// Files is the number of attached files that report a size; FileSizes is their distribution in
	// bytes.
	Files     int         `json:"files"`
	FileSizes Percentiles `json:"fileSizes"`
}

// Summarize builds the summary of a decoded response.
func Summarize(res catalog.Result) *Summary {
	summary := &Summary{
		Function:       res.Function.Name,
		Items:          len(res.Items),
		WarningsByCode: make(map[string]int),
	}

	for _, w := range res.Warnings {
		summary.WarningsByCode[w.WarningCode]++
	}

	var sizes []int
	for _, item := range res.Items {
		sizes = append(sizes, fileSizes(item)...)
	}
	summary.Files = len(sizes)
	summary.FileSizes = CalculatePercentiles(sizes)

	return summary
}

// fileSizes returns the sizes of the files attached to a list item. Files without a size are skipped.
func fileSizes(item interface{}) []int {
	var sizes []int
	switch v := item.(type) {
	case models.Resource:
		for _, f := range append(append([]models.File{}, v.IntroFiles...), v.ContentFiles...) {
			if size, ok := f.FileSize.Get(); ok {
				sizes = append(sizes, size)
			}
		}
	case models.Forum:
		for _, f := range v.IntroFiles {
			if size, ok := f.FileSize.Get(); ok {
				sizes = append(sizes, size)
			}
		}
	}
	return sizes
}

// CalculatePercentiles returns the 50th, 90th and 99th percentiles of data, interpolating linearly
// between ranks. data is not modified.
func CalculatePercentiles(data []int) Percentiles {
	if len(data) == 0 {
		return Percentiles{}
	}

	sorted := append([]int{}, data...)
	sort.Ints(sorted)

	calculatePercentile := func(percentile float64) float64 {
		rank := percentile / 100 * float64(len(sorted)-1)
		rankInt := int(rank)

		// If the rank is an integer, return the value at that index
		if rank == float64(rankInt) {
			return float64(sorted[rankInt])
		}

		// Otherwise, linearly interpolate
		baseline := sorted[rankInt]
		interpolation := (rank - float64(rankInt)) * float64(sorted[rankInt+1]-sorted[rankInt])

		return float64(baseline) + interpolation
	}

	return Percentiles{
		P50: calculatePercentile(50),
		P90: calculatePercentile(90),
		P99: calculatePercentile(99),
	}
}
