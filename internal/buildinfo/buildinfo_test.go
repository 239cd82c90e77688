package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentDefaults(t *testing.T) {
	info := Current()

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "N/A", info.Commit)
}

func TestString(t *testing.T) {
	info := Info{Version: "v1.2.3", Date: "2026-08-29", Commit: "abc1234"}

	assert.Equal(t, "Version: v1.2.3, Date: 2026-08-29, Commit: abc1234", info.String())
}
