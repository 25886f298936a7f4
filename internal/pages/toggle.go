package pages

import "strings"

// visibleClass marks an open panel
const visibleClass = "visible"

// shouldToggle reports whether a toggle control has to be clicked to go
// from the current state to the desired one
func shouldToggle(current, desired bool) bool {
	return current != desired
}

// hasClass reports whether class occurs anywhere in the class attribute value.
// Partial tokens match too: "visible-panel" counts as visible.
func hasClass(classAttr, class string) bool {
	return strings.Contains(classAttr, class)
}
