package analytics

import (
	"moodle/internal/catalog"
	"moodle/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createResource(id int, sizes ...int) models.Resource {
	r := models.Resource{ID: id, Name: "resource"}
	for _, size := range sizes {
		r.ContentFiles = append(r.ContentFiles, models.File{FileSize: models.Some(size)})
	}
	// a file without a size is not counted
	r.IntroFiles = append(r.IntroFiles, models.File{FileName: models.Some("intro.png")})
	return r
}

func TestSummarize(t *testing.T) {
	f, ok := catalog.Lookup("mod_resource_get_resources_by_courses")
	require.True(t, ok)

	res := catalog.Result{
		Function: f,
		IsList:   true,
		Items: []interface{}{
			createResource(1, 2, 5),
			createResource(2, 10),
		},
		Warnings: []models.Warning{
			{WarningCode: "1", Message: "No access rights in course context"},
			{WarningCode: "1", Message: "No access rights in course context"},
			{WarningCode: "coursenotfound", Message: "Course not found"},
		},
	}

	summary := Summarize(res)
	assert.Equal(t, "mod_resource_get_resources_by_courses", summary.Function)
	assert.Equal(t, 2, summary.Items)
	assert.Equal(t, map[string]int{"1": 2, "coursenotfound": 1}, summary.WarningsByCode)
	assert.Equal(t, 3, summary.Files)
	assert.InDelta(t, 5, summary.FileSizes.P50, 0.00001)
}

func TestSummarizeForums(t *testing.T) {
	forum := models.Forum{ID: 1, IntroFiles: []models.ForumFile{{FileSize: models.Some(100)}}}

	summary := Summarize(catalog.Result{IsList: true, Items: []interface{}{forum}})
	assert.Equal(t, 1, summary.Files)
	assert.Empty(t, summary.WarningsByCode)
}

func TestCalculatePercentiles(t *testing.T) {
	basicDistribution := []int{10, 2, 5}
	basicPercentiles := CalculatePercentiles(basicDistribution)

	assert.InDelta(t, 5, basicPercentiles.P50, 0.00001)
	assert.InDelta(t, 9, basicPercentiles.P90, 0.00001)
	assert.InDelta(t, 9.9, basicPercentiles.P99, 0.00001)
	assert.Equal(t, []int{10, 2, 5}, basicDistribution)

	assert.Equal(t, Percentiles{}, CalculatePercentiles(nil))
	assert.Equal(t, Percentiles{P50: 7, P90: 7, P99: 7}, CalculatePercentiles([]int{7}))
}
