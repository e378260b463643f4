package css

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySelector is returned when a selector (or one member of a
// selector group) has no content.
var ErrEmptySelector = errors.New("empty selector")

type Combinator int

const (
	DescendantCombinator      Combinator = iota // a b
	ChildCombinator                             // a > b
	AdjacentSiblingCombinator                   // a + b
	GeneralSiblingCombinator                    // a ~ b
)

// AttributeSelector is one [name op value] test.
type AttributeSelector struct {
	Name     string
	Operator string // "", "=", "~=", "|=", "^=", "$=", "*="
	Value    string
}

// SelectorPart is a compound selector such as div.tip[data-close].
type SelectorPart struct {
	Element       string
	ID            string
	Classes       []string
	Attributes    []AttributeSelector
	PseudoClasses []string
}

// Selector is a complex selector: compound parts joined by combinators.
// Combinators[i] sits between Parts[i] and Parts[i+1].
type Selector struct {
	Raw         string
	Parts       []SelectorPart
	Combinators []Combinator
}

// ParseSelectorGroup parses a comma-separated selector list.
func ParseSelectorGroup(raw string) ([]Selector, error) {
	var group []Selector
	for _, member := range splitSelectorGroup(raw) {
		sel, err := ParseSelector(member)
		if err != nil {
			return nil, err
		}
		group = append(group, sel)
	}
	if len(group) == 0 {
		return nil, ErrEmptySelector
	}
	return group, nil
}

// splitSelectorGroup splits on commas that are not inside [...] or quotes.
func splitSelectorGroup(raw string) []string {
	var parts []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, raw[start:i])
			start = i + 1
		}
	}
	return append(parts, raw[start:])
}

// ParseSelector parses a single complex selector.
func ParseSelector(raw string) (Selector, error) {
	s := strings.TrimSpace(raw)
	sel := Selector{Raw: s}
	if s == "" {
		return sel, ErrEmptySelector
	}

	var (
		pending  Combinator
		hasComb  bool
		explicit bool
	)
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isSpace(c):
			if len(sel.Parts) > 0 && !hasComb {
				pending, hasComb = DescendantCombinator, true
			}
			i++
		case c == '>' || c == '+' || c == '~':
			if len(sel.Parts) == 0 || explicit {
				return sel, fmt.Errorf("selector %q: unexpected %q", s, c)
			}
			pending, hasComb, explicit = combinatorFor(c), true, true
			i++
		default:
			part, next, err := parseCompound(s, i)
			if err != nil {
				return sel, fmt.Errorf("selector %q: %w", s, err)
			}
			if hasComb {
				sel.Combinators = append(sel.Combinators, pending)
			}
			sel.Parts = append(sel.Parts, part)
			hasComb, explicit = false, false
			i = next
		}
	}
	if explicit {
		return sel, fmt.Errorf("selector %q: dangling combinator", s)
	}
	return sel, nil
}

func combinatorFor(c byte) Combinator {
	switch c {
	case '>':
		return ChildCombinator
	case '+':
		return AdjacentSiblingCombinator
	}
	return GeneralSiblingCombinator
}

// parseCompound reads one compound selector starting at s[i] and returns
// the index just past it.
func parseCompound(s string, i int) (SelectorPart, int, error) {
	var part SelectorPart
	for i < len(s) {
		c := s[i]
		switch {
		case isSpace(c) || c == '>' || c == '+' || c == '~':
			return part, i, nil
		case c == '*':
			part.Element = "*"
			i++
		case isIdentChar(c):
			if part.Element != "" {
				return part, i, fmt.Errorf("unexpected %q", c)
			}
			var name string
			name, i = readIdent(s, i)
			part.Element = strings.ToLower(name)
		case c == '.' || c == '#':
			name, next := readIdent(s, i+1)
			if name == "" {
				return part, i, fmt.Errorf("missing name after %q", c)
			}
			if c == '.' {
				part.Classes = append(part.Classes, name)
			} else {
				part.ID = name
			}
			i = next
		case c == '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return part, i, fmt.Errorf("unterminated attribute selector")
			}
			attr, err := parseAttributeSelector(s[i+1 : i+end])
			if err != nil {
				return part, i, err
			}
			part.Attributes = append(part.Attributes, attr)
			i += end + 1
		case c == ':':
			i++
			if i < len(s) && s[i] == ':' {
				i++
			}
			name, next := readIdent(s, i)
			if name == "" {
				return part, i, fmt.Errorf("missing pseudo-class name")
			}
			part.PseudoClasses = append(part.PseudoClasses, strings.ToLower(name))
			i = next
		default:
			return part, i, fmt.Errorf("unexpected %q", c)
		}
	}
	return part, i, nil
}

func parseAttributeSelector(body string) (AttributeSelector, error) {
	body = strings.TrimSpace(body)
	eq := strings.IndexByte(body, '=')
	if eq < 0 {
		if body == "" {
			return AttributeSelector{}, fmt.Errorf("empty attribute selector")
		}
		return AttributeSelector{Name: strings.ToLower(body)}, nil
	}
	nameEnd, op := eq, "="
	if eq > 0 && strings.IndexByte("~|^$*", body[eq-1]) >= 0 {
		nameEnd, op = eq-1, body[eq-1:eq+1]
	}
	name := strings.ToLower(strings.TrimSpace(body[:nameEnd]))
	if name == "" {
		return AttributeSelector{}, fmt.Errorf("missing attribute name in [%s]", body)
	}
	value := strings.TrimSpace(body[eq+1:])
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
		value = value[1 : len(value)-1]
	}
	return AttributeSelector{Name: name, Operator: op, Value: value}, nil
}

func readIdent(s string, i int) (string, int) {
	start := i
	for i < len(s) && isIdentChar(s[i]) {
		i++
	}
	return s[start:i], i
}

func isIdentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
