package walletwatch

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Transaction is a normalized record of one piece of on-chain activity that
// involves a watched address. Signature is unique per chain and is the
// natural key used for idempotent persistence.
type Transaction struct {
	Signature   string         `json:"signature"`
	Chain       string         `json:"chain"`
	Address     string         `json:"address"`
	Type        string         `json:"tx_type"`
	Description string         `json:"description"`
	AmountUSD   *float64       `json:"amount_usd,omitempty"`
	Timestamp   *time.Time     `json:"timestamp,omitempty"`
	Raw         map[string]any `json:"raw,omitempty"`
}

// StoredTransaction is a Transaction as read back from storage.
type StoredTransaction struct {
	Transaction
	CreatedAt time.Time `json:"created_at"`
}

// SignatureInfo describes a recent transaction signature reported by a chain node.
type SignatureInfo struct {
	Signature string     `json:"signature"`
	Slot      uint64     `json:"slot"`
	BlockTime *time.Time `json:"block_time,omitempty"`
	Failed    bool       `json:"failed"`
	Memo      string     `json:"memo,omitempty"`
}

// Button is a labelled action attached to a notification. Exactly one of URL
// or CallbackData is set.
type Button struct {
	Text         string `json:"text"`
	URL          string `json:"url,omitempty"`
	CallbackData string `json:"callback_data,omitempty"`
}

var explorers = map[string]struct {
	name string
	url  string
}{
	"solana":   {name: "Solscan", url: "https://solscan.io/tx/%s"},
	"ethereum": {name: "Etherscan", url: "https://etherscan.io/tx/%s"},
}

// ExplorerLink returns a button pointing at the transaction on the chain's
// block explorer. The boolean is false for chains without a known explorer.
func (tx Transaction) ExplorerLink() (Button, bool) {
	explorer, ok := explorers[tx.Chain]
	if !ok {
		return Button{}, false
	}

	return Button{
		Text: "View on " + explorer.name,
		URL:  fmt.Sprintf(explorer.url, tx.Signature),
	}, true
}

// walletName is the label when set, otherwise a shortened address.
func walletName(address, label string) string {
	if label != "" {
		return label
	}

	if len(address) > 8 {
		address = address[:8]
	}

	return address + "..."
}

// Message renders the notification text for tx. The output is plain text;
// each notifier applies its own markup through FormatMessage.
func (tx Transaction) Message(label string) string {
	lines := []string{
		fmt.Sprintf("%s on %s", strings.ToUpper(tx.Type), cases.Title(language.English).String(tx.Chain)),
		"Wallet: " + walletName(tx.Address, label),
	}

	if tx.Description != "" {
		lines = append(lines, "", tx.Description)
	}

	if tx.AmountUSD != nil && *tx.AmountUSD != 0 {
		lines = append(lines, message.NewPrinter(language.English).Sprintf("Value: $%.2f", *tx.AmountUSD))
	}

	if link, ok := tx.ExplorerLink(); ok {
		lines = append(lines, "", fmt.Sprintf("%s: %s", link.Text, link.URL))
	}

	return strings.Join(lines, "\n")
}
