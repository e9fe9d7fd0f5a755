package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverage(t *testing.T) {
	coverage := NewCoverage()
	coverage.mark(PathNameClause)
	coverage.mark(PathNameClause)
	coverage.mark(PathFullName)

	assert.Equal(t, 2, coverage.Count(PathNameClause))
	assert.Equal(t, []string{PathNameClause, PathFullName}, coverage.Paths())
	assert.Equal(t, []string{PathTruncated}, coverage.Missing(PathNameClause, PathTruncated))

	coverage.Reset()
	assert.Empty(t, coverage.Paths())
}

func TestCoverage_Nil(t *testing.T) {
	var coverage *Coverage
	coverage.mark(PathNameClause)
	coverage.Reset()

	assert.Zero(t, coverage.Count(PathNameClause))
	assert.Nil(t, coverage.Paths())
	assert.Equal(t, []string{PathNameClause}, coverage.Missing(PathNameClause))
}
