package galois

import (
	"testing"

	"github.com/blang/semver/v4"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert := require.New(t)

	assert.NoError(Version.Validate())

	// MustParse would have panicked on an invalid literal; make sure the
	// version is not the zero value either
	assert.NotEqual(semver.Version{}, Version)
}
