package walletwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestWatch_FromConfig(t *testing.T) {
	assert.True(t, Watch{Source: SourceConfig}.FromConfig())
	assert.False(t, Watch{Source: SourceRuntime}.FromConfig())
	assert.False(t, Watch{}.FromConfig())
}

func TestFilter_Allows(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		tx     Transaction
		want   bool
	}{
		{
			name:   "empty filter allows everything",
			filter: Filter{},
			tx:     Transaction{Type: "swap"},
			want:   true,
		},
		{
			name:   "amount above threshold",
			filter: Filter{MinUSDValue: 50},
			tx:     Transaction{Type: "transfer", AmountUSD: ptr(100.0)},
			want:   true,
		},
		{
			name:   "threshold is inclusive",
			filter: Filter{MinUSDValue: 50},
			tx:     Transaction{Type: "transfer", AmountUSD: ptr(50.0)},
			want:   true,
		},
		{
			name:   "amount below threshold",
			filter: Filter{MinUSDValue: 50},
			tx:     Transaction{Type: "transfer", AmountUSD: ptr(10.0)},
			want:   false,
		},
		{
			name:   "missing amount fails an enabled threshold",
			filter: Filter{MinUSDValue: 50},
			tx:     Transaction{Type: "transfer"},
			want:   false,
		},
		{
			name:   "type in allow-list, case-insensitive",
			filter: Filter{TxTypes: []string{"TRANSFER", "swap"}},
			tx:     Transaction{Type: "transfer"},
			want:   true,
		},
		{
			name:   "upper-case event type matches a lower-case allow-list",
			filter: Filter{TxTypes: []string{"swap"}},
			tx:     Transaction{Type: "SWAP"},
			want:   true,
		},
		{
			name:   "mixed case still has to name the same type",
			filter: Filter{TxTypes: []string{"Transfer"}},
			tx:     Transaction{Type: "transfers"},
			want:   false,
		},
		{
			name:   "type not in allow-list",
			filter: Filter{TxTypes: []string{"swap"}},
			tx:     Transaction{Type: "transfer"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Allows(tt.tx))
		})
	}
}

func TestFilter_Merge(t *testing.T) {
	global := Filter{MinUSDValue: 50, TxTypes: []string{"transfer"}}

	t.Run("no overrides keeps the global filter", func(t *testing.T) {
		assert.Equal(t, global, global.Merge(FilterOverrides{}))
	})

	t.Run("overrides replace individual fields", func(t *testing.T) {
		merged := global.Merge(FilterOverrides{MinUSDValue: ptr(0.0)})
		assert.Equal(t, Filter{MinUSDValue: 0, TxTypes: []string{"transfer"}}, merged)

		merged = global.Merge(FilterOverrides{TxTypes: []string{"swap"}})
		assert.Equal(t, Filter{MinUSDValue: 50, TxTypes: []string{"swap"}}, merged)
	})

	t.Run("merge does not mutate the receiver", func(t *testing.T) {
		_ = global.Merge(FilterOverrides{MinUSDValue: ptr(1.0)})
		assert.Equal(t, 50.0, global.MinUSDValue)
	})
}
