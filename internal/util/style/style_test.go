package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	require.Equal(t, "zone", Styler{}.Wrap("zone", Bold, Cyan))
	require.Equal(t, "\033[1;36mzone\033[0m", Styler{Enabled: true}.Wrap("zone", Bold, Cyan))
	require.Equal(t, "zone", Styler{Enabled: true}.Wrap("zone"))
}
