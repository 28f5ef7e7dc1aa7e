// Package notify delivers one-shot user notifications.
package notify

import (
	"log"

	"github.com/gen2brain/beeep"
)

// Desktop sends OS notifications through beeep.
type Desktop struct {
	// Icon is an optional path to an image shown with the notification.
	Icon string
}

// NewDesktop creates a desktop notifier.
func NewDesktop(appName string) *Desktop {
	if appName != "" {
		beeep.AppName = appName
	}
	return &Desktop{}
}

// Notify shows title and message as a desktop notification.
func (d *Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, d.Icon)
}

// Log writes notifications to the log instead of the desktop. It is used in
// foreground mode and as a fallback when the desktop notifier fails.
type Log struct{}

// Notify logs the notification.
func (Log) Notify(title, message string) error {
	log.Printf("[notify] %s: %s", title, message)
	return nil
}

// Fallback tries Primary and logs through Secondary when it fails.
type Fallback struct {
	Primary   interface{ Notify(title, message string) error }
	Secondary interface{ Notify(title, message string) error }
}

// Notify delivers through Primary, falling back to Secondary on error.
func (f Fallback) Notify(title, message string) error {
	err := f.Primary.Notify(title, message)
	if err == nil {
		return nil
	}
	log.Printf("[notify] Desktop notification failed: %v", err)
	if f.Secondary == nil {
		return err
	}
	return f.Secondary.Notify(title, message)
}
