package account

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/commercekit/authbridge/pkg/auth"
)

func TestSurfaceTable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "customers", surfaceTable(auth.SurfaceStore))
	assert.Equal(t, "users", surfaceTable(auth.SurfaceAdmin))
}
