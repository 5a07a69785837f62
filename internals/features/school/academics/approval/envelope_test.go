// file: internals/features/school/academics/approval/envelope_test.go
package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanMove(t *testing.T) {
	tbl := Table{
		"draft":     {"submitted"},
		"submitted": {"approved", "returned"},
		"returned":  {"submitted"},
	}

	assert.True(t, tbl.CanMove("draft", "submitted"))
	assert.True(t, tbl.CanMove("submitted", "approved"))
	assert.True(t, tbl.CanMove("submitted", "returned"))
	assert.True(t, tbl.CanMove("returned", "submitted"))

	assert.False(t, tbl.CanMove("draft", "approved"))
	assert.False(t, tbl.CanMove("approved", "submitted"))
	assert.False(t, tbl.CanMove("approved", "returned"))
	assert.False(t, tbl.CanMove("unknown", "submitted"))
}

func TestTerminal(t *testing.T) {
	tbl := Table{
		"pending": {"approved", "rejected"},
	}

	assert.False(t, tbl.Terminal("pending"))
	assert.True(t, tbl.Terminal("approved"))
	assert.True(t, tbl.Terminal("rejected"))
}
