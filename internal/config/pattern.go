package config

import (
	"fmt"
	"strings"
)

// ColorPlaceholder is substituted by TemplatePattern.
const ColorPlaceholder = "{color}"

// TemplatePattern is a plain string pattern where every `{color}` is
// replaced with the colour name.
type TemplatePattern string

// NewTemplatePattern validates that raw references the colour at least once.
func NewTemplatePattern(raw string) (TemplatePattern, error) {
	if !strings.Contains(raw, ColorPlaceholder) {
		return "", fmt.Errorf("pattern %q does not reference %s", raw, ColorPlaceholder)
	}
	return TemplatePattern(raw), nil
}

// Expand implements NamePattern.
func (p TemplatePattern) Expand(color string) (string, error) {
	return strings.ReplaceAll(string(p), ColorPlaceholder, color), nil
}

func (p TemplatePattern) String() string {
	return string(p)
}
