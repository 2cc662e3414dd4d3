package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run("IsContextDone", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		require.False(t, IsContextDone(ctx))
		cancel()
		require.True(t, IsContextDone(ctx))
	})
	t.Run("NormalizeEmail", func(t *testing.T) {
		require.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
	})
	t.Run("FormatDate", func(t *testing.T) {
		require.Equal(t, "", FormatDate(time.Time{}))
		require.Equal(t, "05.03.2024", FormatDate(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))
	})
	t.Run("SafeFileName", func(t *testing.T) {
		require.Equal(t, "Desenvolvedor_Go_Sênior", SafeFileName("Desenvolvedor Go / Sênior", "job"))
		require.Equal(t, "job", SafeFileName(" / ", "job"))
	})
}
