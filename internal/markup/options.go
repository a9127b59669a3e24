package markup

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options names the attributes and classes the markup uses. Selectors are
// attribute names; the bracketed CSS form ("[data-x]") is accepted as well.
type Options struct {
	// SelectorInit marks each navigation root element.
	SelectorInit string `yaml:"selectorInit"`
	// SelectorList marks the top-level list inside a root.
	SelectorList string `yaml:"selectorList"`
	// SelectorNestedList marks the list owned by a branch item.
	SelectorNestedList string `yaml:"selectorNestedList"`
	// SelectorItem marks top-level items.
	SelectorItem string `yaml:"selectorItem"`
	// SelectorItemLink marks the link element of an item.
	SelectorItemLink string `yaml:"selectorItemLink"`
	// SelectorNestedItem marks items inside a nested list.
	SelectorNestedItem string `yaml:"selectorNestedItem"`
	// ClassActive is added to the single active item.
	ClassActive string `yaml:"classActive"`
	// ClassExpanded is added to open branches.
	ClassExpanded string `yaml:"classExpanded"`
	// ClassHasChildren declares a top-level item as a branch.
	ClassHasChildren string `yaml:"classHasChildren"`
}

// DefaultOptions returns the stock attribute and class names.
func DefaultOptions() Options {
	return Options{
		SelectorInit:       "data-inline-left-nav",
		SelectorList:       "data-inline-left-nav-list",
		SelectorNestedList: "data-inline-left-nav-nested-list",
		SelectorItem:       "data-inline-left-nav-item",
		SelectorItemLink:   "data-inline-left-nav-item-link",
		SelectorNestedItem: "data-inline-left-nav-nested-item",
		ClassActive:        "left-nav-list__item--active",
		ClassExpanded:      "left-nav-list__item--expanded",
		ClassHasChildren:   "left-nav-list__item--has-children",
	}
}

// Merge returns a copy of o where every non-empty field of override wins.
func (o Options) Merge(override Options) Options {
	merged := o
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&merged.SelectorInit, override.SelectorInit)
	set(&merged.SelectorList, override.SelectorList)
	set(&merged.SelectorNestedList, override.SelectorNestedList)
	set(&merged.SelectorItem, override.SelectorItem)
	set(&merged.SelectorItemLink, override.SelectorItemLink)
	set(&merged.SelectorNestedItem, override.SelectorNestedItem)
	set(&merged.ClassActive, override.ClassActive)
	set(&merged.ClassExpanded, override.ClassExpanded)
	set(&merged.ClassHasChildren, override.ClassHasChildren)
	return merged.normalized()
}

func (o Options) normalized() Options {
	o.SelectorInit = attrName(o.SelectorInit)
	o.SelectorList = attrName(o.SelectorList)
	o.SelectorNestedList = attrName(o.SelectorNestedList)
	o.SelectorItem = attrName(o.SelectorItem)
	o.SelectorItemLink = attrName(o.SelectorItemLink)
	o.SelectorNestedItem = attrName(o.SelectorNestedItem)
	return o
}

// Validate ensures no option is blank after merging.
func (o Options) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"selectorInit", o.SelectorInit},
		{"selectorList", o.SelectorList},
		{"selectorNestedList", o.SelectorNestedList},
		{"selectorItem", o.SelectorItem},
		{"selectorItemLink", o.SelectorItemLink},
		{"selectorNestedItem", o.SelectorNestedItem},
		{"classActive", o.ClassActive},
		{"classExpanded", o.ClassExpanded},
		{"classHasChildren", o.ClassHasChildren},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("option %s must not be empty", f.name)
		}
	}
	if o.SelectorItem == o.SelectorNestedItem {
		return fmt.Errorf("selectorItem and selectorNestedItem must differ (both %q)", o.SelectorItem)
	}
	return nil
}

// LoadOptions reads a YAML file of overrides and merges it over the defaults.
// An empty path yields the defaults.
func LoadOptions(path string) (Options, error) {
	defaults := DefaultOptions()
	if strings.TrimSpace(path) == "" {
		return defaults, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes YAML overrides and merges them over the defaults.
func ParseOptions(data []byte) (Options, error) {
	var override Options
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	merged := DefaultOptions().Merge(override)
	if err := merged.Validate(); err != nil {
		return Options{}, err
	}
	return merged, nil
}

func attrName(selector string) string {
	s := strings.TrimSpace(selector)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	return strings.TrimSpace(s)
}
