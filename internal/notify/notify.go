// Package notify delivers desktop notifications when analysis runs finish.
package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/huangsam/gitbars/internal/contract"
)

// Send pushes a desktop notification. Delivery failures are reported as
// warnings since notifications are best-effort.
func Send(title, body string) {
	if err := beeep.Notify(title, body, ""); err != nil {
		contract.LogWarn("could not deliver desktop notification", err)
	}
}
