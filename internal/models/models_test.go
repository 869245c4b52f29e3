package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsNeverNil(t *testing.T) {
	assert.NotNil(t, Resources{}.Items())
	assert.NotNil(t, ForumList(nil).Items())
	assert.NotNil(t, CourseByField{}.Items())
	assert.NotNil(t, SearchResult{}.Items())
	assert.NotNil(t, CourseList(nil).Items())
	assert.NotNil(t, CoursesBTC{}.Items())
}

func TestItemsOrder(t *testing.T) {
	courses := []Course{{ID: 3}, {ID: 1}, {ID: 2}}

	var lists = []ListResponse[Course]{
		CourseByField{Courses: courses},
		SearchResult{Total: 3, Courses: courses},
		CourseList(courses),
	}
	for _, l := range lists {
		assert.Equal(t, courses, l.Items())
	}

	forums := ForumList{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}
	assert.Equal(t, []Forum(forums), forums.Items())
	assert.Equal(t, "b", forums.Items()[0].String())
}

func TestWarningList(t *testing.T) {
	warnings := []Warning{{WarningCode: "x", Message: "m", ItemID: Some(4)}}

	var warners = []Warner{
		Resources{Warnings: warnings},
		CourseByField{Warnings: warnings},
		SearchResult{Warnings: warnings},
		WarningsResponse{Warnings: warnings},
		ContactRequest{Warnings: warnings},
	}
	for _, w := range warners {
		assert.Equal(t, warnings, w.WarningList())
	}
}

func TestPagingMetadata(t *testing.T) {
	assert.Equal(t, 40, SearchResult{Total: 40}.TotalCount())
	assert.Equal(t, 20, CoursesBTC{NextOffset: 20}.NextPageOffset())
}
