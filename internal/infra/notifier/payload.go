// Package notifier holds what the structured notifier transports share.
package notifier

import (
	"time"

	"github.com/samber/lo"

	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

// Link is a URL button rendered for transports without native buttons.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Payload builds the JSON document sent by structured transports: the
// message, its RFC 3339 timestamp, the URL buttons as links and the extra
// fields. Extra fields win over the built-in keys.
func Payload(message string, o walletwatch.SendOptions) map[string]any {
	payload := map[string]any{
		"message":   message,
		"timestamp": o.Timestamp.UTC().Format(time.RFC3339),
	}

	links := lo.FilterMap(lo.Flatten(o.Buttons), func(b walletwatch.Button, _ int) (Link, bool) {
		return Link{Text: b.Text, URL: b.URL}, b.URL != ""
	})
	if len(links) > 0 {
		payload["links"] = links
	}

	for k, v := range o.Extra {
		payload[k] = v
	}

	return payload
}

// Key returns the transaction signature carried in the extra fields, used
// to key messages on partitioned transports.
func Key(o walletwatch.SendOptions) string {
	signature, _ := o.Extra["signature"].(string)
	return signature
}
