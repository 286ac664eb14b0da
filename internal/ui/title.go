package ui

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title builds the window and panel title for an engine and rule.
func Title(engine, rule string) string {
	engine = strings.TrimSpace(engine)
	if engine == "" {
		return "Lifeview"
	}
	name := titleCaser.String(engine)
	if rule == "" {
		return fmt.Sprintf("Lifeview - %s", name)
	}
	return fmt.Sprintf("Lifeview - %s %s", name, rule)
}

// FormatValue renders a control value with a precision that suits its step.
func FormatValue(step float64, integer bool, value float64) string {
	if integer {
		return fmt.Sprintf("%d", int64(value))
	}
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return fmt.Sprintf("%.*f", precision, value)
}
