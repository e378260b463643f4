package css

import (
	"strings"

	"tooltipper/pkg/html"
)

// MatchesSelector returns true if the node matches the complex selector
func MatchesSelector(node *html.Node, selector Selector) bool {
	if node.Type != html.ElementNode || len(selector.Parts) == 0 {
		return false
	}
	// Start matching from the rightmost part (the target element)
	return matchesCompoundSelector(node, selector, len(selector.Parts)-1)
}

// Matches parses selector and reports whether node matches any member of
// the group.
func Matches(node *html.Node, selector string) (bool, error) {
	group, err := ParseSelectorGroup(selector)
	if err != nil {
		return false, err
	}
	return matchesGroup(node, group), nil
}

// QuerySelectorAll returns the descendants of root (root excluded) that
// match selector, in document order.
func QuerySelectorAll(root *html.Node, selector string) ([]*html.Node, error) {
	group, err := ParseSelectorGroup(selector)
	if err != nil {
		return nil, err
	}
	var results []*html.Node
	root.Walk(func(n *html.Node) bool {
		if n != root && matchesGroup(n, group) {
			results = append(results, n)
		}
		return false
	})
	return results, nil
}

// QuerySelector returns the first match of QuerySelectorAll, or nil.
func QuerySelector(root *html.Node, selector string) (*html.Node, error) {
	group, err := ParseSelectorGroup(selector)
	if err != nil {
		return nil, err
	}
	var found *html.Node
	root.Walk(func(n *html.Node) bool {
		if n != root && matchesGroup(n, group) {
			found = n
			return true
		}
		return false
	})
	return found, nil
}

func matchesGroup(node *html.Node, group []Selector) bool {
	for _, sel := range group {
		if MatchesSelector(node, sel) {
			return true
		}
	}
	return false
}

// matchesCompoundSelector checks if the node matches the selector at the given part index
// and all ancestor requirements
func matchesCompoundSelector(node *html.Node, selector Selector, partIndex int) bool {
	if !matchesSelectorPart(node, selector.Parts[partIndex]) {
		return false
	}
	if partIndex == 0 {
		return true
	}

	prev := partIndex - 1
	switch selector.Combinators[prev] {
	case DescendantCombinator:
		for ancestor := node.Parent; ancestor != nil; ancestor = ancestor.Parent {
			if isElement(ancestor) && matchesCompoundSelector(ancestor, selector, prev) {
				return true
			}
		}
	case ChildCombinator:
		if isElement(node.Parent) {
			return matchesCompoundSelector(node.Parent, selector, prev)
		}
	case AdjacentSiblingCombinator:
		if sibling := previousElementSibling(node); sibling != nil {
			return matchesCompoundSelector(sibling, selector, prev)
		}
	case GeneralSiblingCombinator:
		for sibling := previousElementSibling(node); sibling != nil; sibling = previousElementSibling(sibling) {
			if matchesCompoundSelector(sibling, selector, prev) {
				return true
			}
		}
	}
	return false
}

// isElement excludes the synthetic document node from ancestor matching.
func isElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && n.TagName != "document"
}

// matchesSelectorPart checks if a node matches a single selector part
func matchesSelectorPart(node *html.Node, part SelectorPart) bool {
	if part.Element != "" && part.Element != "*" && node.TagName != part.Element {
		return false
	}

	if part.ID != "" {
		if id, ok := node.GetAttribute("id"); !ok || id != part.ID {
			return false
		}
	}

	for _, cls := range part.Classes {
		if !node.HasClass(cls) {
			return false
		}
	}

	for _, attrSel := range part.Attributes {
		if !matchesAttributeSelector(node, attrSel) {
			return false
		}
	}

	for _, pc := range part.PseudoClasses {
		if !matchesPseudoClass(node, pc) {
			return false
		}
	}

	return true
}

// matchesPseudoClass supports the structural pseudo-classes. Dynamic ones
// (hover, focus, ...) never match: the host tracks hover through events.
func matchesPseudoClass(node *html.Node, pc string) bool {
	switch pc {
	case "first-child":
		return previousElementSibling(node) == nil
	case "last-child":
		return nextElementSibling(node) == nil
	}
	return false
}

// matchesAttributeSelector checks if a node matches an attribute selector
func matchesAttributeSelector(node *html.Node, attr AttributeSelector) bool {
	value, ok := node.GetAttribute(attr.Name)
	if !ok {
		return false
	}

	switch attr.Operator {
	case "":
		return true
	case "=":
		return value == attr.Value
	case "^=":
		return attr.Value != "" && strings.HasPrefix(value, attr.Value)
	case "$=":
		return attr.Value != "" && strings.HasSuffix(value, attr.Value)
	case "*=":
		return attr.Value != "" && strings.Contains(value, attr.Value)
	case "~=":
		for _, word := range strings.Fields(value) {
			if word == attr.Value {
				return true
			}
		}
		return false
	case "|=":
		// Language prefix (value or value-)
		return value == attr.Value || strings.HasPrefix(value, attr.Value+"-")
	}
	return false
}

func previousElementSibling(node *html.Node) *html.Node {
	if node.Parent == nil {
		return nil
	}
	var prev *html.Node
	for _, sibling := range node.Parent.Children {
		if sibling == node {
			return prev
		}
		if sibling.Type == html.ElementNode {
			prev = sibling
		}
	}
	return nil
}

func nextElementSibling(node *html.Node) *html.Node {
	if node.Parent == nil {
		return nil
	}
	siblings := node.Parent.Children
	for i, sibling := range siblings {
		if sibling != node {
			continue
		}
		for _, next := range siblings[i+1:] {
			if next.Type == html.ElementNode {
				return next
			}
		}
		return nil
	}
	return nil
}
