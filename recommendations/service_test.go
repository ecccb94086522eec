package recommendations

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shipekarrohit/backend-project/courses"
)

func makeCourses(owners ...int64) []courses.Course {
	out := make([]courses.Course, len(owners))
	for i, owner := range owners {
		out[i] = courses.Course{
			ID:        int64(i + 1),
			Title:     fmt.Sprintf("course-%d", i+1),
			CreatedBy: owner,
		}
	}
	return out
}

func TestSelectExcludesOwnCourses(t *testing.T) {
	candidates := makeCourses(1, 2, 1, 3, 1)

	got := Select(candidates, 1)

	assert.Len(t, got, 2)
	for _, c := range got {
		assert.NotEqual(t, int64(1), c.CreatedBy)
	}
}

func TestSelectCapsAtFive(t *testing.T) {
	candidates := makeCourses(2, 2, 2, 2, 2, 2, 2)

	got := Select(candidates, 1)

	assert.Len(t, got, 5)
}

func TestSelectFallsBackWhenAllOwned(t *testing.T) {
	// When every candidate belongs to the user, the unfiltered head is
	// returned rather than an empty list.
	candidates := makeCourses(1, 1, 1)

	got := Select(candidates, 1)

	assert.Len(t, got, 3)
}

func TestSelectEmptyCandidates(t *testing.T) {
	assert.Empty(t, Select(nil, 1))
}
