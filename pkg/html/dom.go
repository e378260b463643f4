package html

import (
	"sort"
	"strings"
)

type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node
}

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

type Document struct {
	Root    *Node
	Scripts []string // JavaScript from <script> tags, in document order
	Styles  []string // raw CSS from <style> tags
}

func NewDocument() *Document {
	return &Document{
		Root: &Node{
			Type:     ElementNode,
			TagName:  "document",
			Children: make([]*Node, 0),
		},
		Scripts: make([]string, 0),
		Styles:  make([]string, 0),
	}
}

// NewElement returns a detached element node with no attributes.
func NewElement(tag string) *Node {
	return &Node{
		Type:       ElementNode,
		TagName:    strings.ToLower(tag),
		Attributes: make(map[string]string),
		Children:   make([]*Node, 0),
	}
}

// Body returns the document's <body> element, creating one under the
// document root when the markup did not contain any.
func (d *Document) Body() *Node {
	var body *Node
	d.Root.Walk(func(n *Node) bool {
		if n.Type == ElementNode && n.TagName == "body" {
			body = n
			return true
		}
		return false
	})
	if body != nil {
		return body
	}
	body = NewElement("body")
	parent := d.Root
	for _, c := range d.Root.Children {
		if c.Type == ElementNode && c.TagName == "html" {
			parent = c
			break
		}
	}
	parent.AddChild(body)
	return body
}

// GetElementByID returns the first element under the root with the given id.
func (d *Document) GetElementByID(id string) *Node {
	var found *Node
	d.Root.Walk(func(n *Node) bool {
		if v, ok := n.GetAttribute("id"); ok && n.Type == ElementNode && v == id {
			found = n
			return true
		}
		return false
	})
	return found
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

func (n *Node) HasAttribute(name string) bool {
	_, ok := n.GetAttribute(name)
	return ok
}

func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
}

// AddChild adds a child node and sets up the parent relationship
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AppendChild moves child to the end of n's children, detaching it from
// its current parent first.
func (n *Node) AppendChild(child *Node) *Node {
	return n.InsertBefore(child, nil)
}

// AppendText creates a text node and adds it as a child
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	n.AddChild(&Node{Type: TextNode, Text: text})
}

// RemoveChild removes the given child from this node's children list,
// clears its parent pointer, and returns the removed child.
// Returns nil if child is not found.
func (n *Node) RemoveChild(child *Node) *Node {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return child
		}
	}
	return nil
}

// InsertBefore inserts newChild before refChild in this node's children.
// If refChild is nil or not a child of n, newChild is appended.
func (n *Node) InsertBefore(newChild, refChild *Node) *Node {
	if newChild.Parent != nil {
		newChild.Parent.RemoveChild(newChild)
	}
	if refChild != nil {
		for i, c := range n.Children {
			if c == refChild {
				n.Children = append(n.Children, nil)
				copy(n.Children[i+1:], n.Children[i:])
				n.Children[i] = newChild
				newChild.Parent = n
				return newChild
			}
		}
	}
	n.AddChild(newChild)
	return newChild
}

// Contains returns true if other is a descendant of n (or n itself).
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants in document order. Returning true
// from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if fn(n) {
		return true
	}
	for _, child := range n.Children {
		if child.Walk(fn) {
			return true
		}
	}
	return false
}

// TextContent concatenates the text of all descendant text nodes.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Type == TextNode {
			sb.WriteString(c.Text)
		}
		return false
	})
	return strings.TrimSpace(sb.String())
}

// Classes returns the tokens of the class attribute.
func (n *Node) Classes() []string {
	attr, _ := n.GetAttribute("class")
	return strings.Fields(attr)
}

func (n *Node) HasClass(cls string) bool {
	for _, c := range n.Classes() {
		if c == cls {
			return true
		}
	}
	return false
}

// AddClass appends cls to the class attribute unless it is already present.
func (n *Node) AddClass(cls string) {
	if cls == "" || n.HasClass(cls) {
		return
	}
	n.SetAttribute("class", strings.Join(append(n.Classes(), cls), " "))
}

// RemoveClass drops every occurrence of cls from the class attribute.
func (n *Node) RemoveClass(cls string) {
	classes := n.Classes()
	kept := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != cls {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(classes) {
		return
	}
	n.SetAttribute("class", strings.Join(kept, " "))
}

// Dataset returns the element's data-* attributes keyed by their camelCased
// name without the prefix: data-close-on-click becomes closeOnClick.
func (n *Node) Dataset() map[string]string {
	data := make(map[string]string)
	for name, value := range n.Attributes {
		if !strings.HasPrefix(name, "data-") || len(name) == len("data-") {
			continue
		}
		data[camelCase(name[len("data-"):])] = value
	}
	return data
}

func camelCase(s string) string {
	parts := strings.Split(s, "-")
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	return sb.String()
}

// SerializeOuter returns the outerHTML of this node: the node's own tags
// plus all descendants.
func (n *Node) SerializeOuter() string {
	var sb strings.Builder
	serializeNode(&sb, n)
	return sb.String()
}

func serializeNode(sb *strings.Builder, n *Node) {
	if n.Type == TextNode {
		sb.WriteString(escapeHTML(n.Text))
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.TagName)

	// Sort attributes for deterministic output
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(n.Attributes[k]))
		sb.WriteByte('"')
	}

	sb.WriteByte('>')
	if isVoidElement(n.TagName) {
		return
	}
	for _, child := range n.Children {
		serializeNode(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(n.TagName)
	sb.WriteByte('>')
}

var (
	htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
)

func escapeHTML(s string) string { return htmlEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }

func isVoidElement(tag string) bool {
	switch tag {
	case "br", "hr", "img", "input", "meta", "link", "area", "base",
		"col", "embed", "param", "source", "track", "wbr":
		return true
	}
	return false
}
