package tool

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName returns a human-readable name for the tool: the annotation
// title if present, then the descriptor title, then the tool name with
// separators replaced and each word title-cased ("get_current_time" becomes
// "Get Current Time").
func DisplayName(d Descriptor) string {
	if d.Annotations != nil && d.Annotations.Title != "" {
		return d.Annotations.Title
	}
	if d.Title != "" {
		return d.Title
	}
	name := strings.NewReplacer("_", " ", "-", " ").Replace(d.Name)
	// Casers are stateful transformers; build one per call.
	return cases.Title(language.English).String(name)
}
