package tray

import (
	"errors"
	"strings"

	"github.com/ncruces/zenity"
)

// Dialog prompts with a native entry dialog. It implements menu.Prompter.
type Dialog struct{}

// Prompt shows an entry dialog with text as its label.
func (Dialog) Prompt(text string) (string, bool, error) {
	value, err := zenity.Entry(text, zenity.Title("New Project"))
	if errors.Is(err, zenity.ErrCanceled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(value), true, nil
}
