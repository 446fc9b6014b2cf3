package walletwatch

import (
	"strings"
	"time"
)

// FilterOverrides holds per-watch replacements for the global Filter. A nil
// field keeps the global value.
type FilterOverrides struct {
	MinUSDValue *float64 `json:"min_usd_value,omitempty"`
	TxTypes     []string `json:"tx_types,omitempty"`
}

// Watch sources.
const (
	// SourceConfig marks a watch declared in the configuration file. Stored
	// copies are only kept while the configuration still declares them.
	SourceConfig = "config"

	// SourceRuntime marks a watch registered while running, such as from the
	// command line. An empty source is treated as runtime.
	SourceRuntime = "runtime"
)

// Watch is an (address, chain) pair being monitored, with the ordered list of
// notifiers that receive its events.
type Watch struct {
	Address   string          `json:"address"`
	Chain     string          `json:"chain"`
	Label     string          `json:"label"`
	Notify    []string        `json:"notify"`
	Filters   FilterOverrides `json:"filters"`
	Source    string          `json:"source,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// FromConfig reports whether w was declared in the configuration file.
func (w Watch) FromConfig() bool {
	return w.Source == SourceConfig
}

// Filter decides whether a transaction is worth notifying about.
type Filter struct {
	// MinUSDValue is an inclusive lower bound. Zero disables the check; when
	// enabled, transactions without a USD amount are rejected.
	MinUSDValue float64

	// TxTypes is an allow-list compared case-insensitively. Empty allows all.
	TxTypes []string
}

// Merge returns a copy of f with the non-nil overrides applied.
func (f Filter) Merge(o FilterOverrides) Filter {
	if o.MinUSDValue != nil {
		f.MinUSDValue = *o.MinUSDValue
	}

	if o.TxTypes != nil {
		f.TxTypes = o.TxTypes
	}

	return f
}

// Allows reports whether tx passes the filter.
func (f Filter) Allows(tx Transaction) bool {
	if f.MinUSDValue > 0 {
		if tx.AmountUSD == nil || *tx.AmountUSD < f.MinUSDValue {
			return false
		}
	}

	if len(f.TxTypes) == 0 {
		return true
	}

	for _, t := range f.TxTypes {
		if strings.EqualFold(t, tx.Type) {
			return true
		}
	}

	return false
}
