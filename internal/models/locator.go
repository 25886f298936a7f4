package models

import (
	"fmt"
	"strings"
)

// Strategy names how a locator value is interpreted
type Strategy string

const (
	// StrategyCSS matches elements with a CSS selector
	StrategyCSS Strategy = "css"
	// StrategyID matches the element whose id attribute equals the value
	StrategyID Strategy = "id"
	// StrategyClassName matches elements carrying every class in the value
	StrategyClassName Strategy = "class_name"
	// StrategyXPath matches elements with an XPath expression
	StrategyXPath Strategy = "xpath"
)

// Locator identifies a UI element within a scope.
// Page objects treat it as opaque reference data; drivers interpret it.
type Locator struct {
	By    Strategy `toml:"by" yaml:"by" validate:"required,oneof=css id class_name xpath"`
	Value string   `toml:"value" yaml:"value" validate:"required"`
}

// ByCSS returns a CSS selector locator
func ByCSS(selector string) Locator {
	return Locator{By: StrategyCSS, Value: selector}
}

// ByID returns an id locator. Ids may contain characters that are
// special in CSS, such as the dots in "status.editor.mode".
func ByID(id string) Locator {
	return Locator{By: StrategyID, Value: id}
}

// ByClassName returns a class locator. Space separated classes must all match.
func ByClassName(class string) Locator {
	return Locator{By: StrategyClassName, Value: class}
}

// ByXPath returns an XPath locator
func ByXPath(expr string) Locator {
	return Locator{By: StrategyXPath, Value: expr}
}

// CSS renders the locator as a CSS selector.
// The second result is false for strategies without a CSS form (xpath).
func (l Locator) CSS() (string, bool) {
	switch l.By {
	case StrategyCSS:
		return l.Value, true
	case StrategyID:
		return fmt.Sprintf(`[id="%s"]`, escapeAttrValue(l.Value)), true
	case StrategyClassName:
		classes := strings.Fields(l.Value)
		if len(classes) == 0 {
			return "", false
		}
		return "." + strings.Join(classes, "."), true
	default:
		return "", false
	}
}

// IsZero reports whether the locator is unset
func (l Locator) IsZero() bool {
	return l.By == "" && l.Value == ""
}

// String returns a readable form used in logs and errors, e.g. id=status.editor.mode
func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.By, l.Value)
}

func escapeAttrValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `"`, `\"`)
}
