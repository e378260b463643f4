package html

import "testing"

func TestParser_NestedElements(t *testing.T) {
	doc, err := Parse(`<div id="anchor">Hover me <span class="tooltipper">Tip</span></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(doc.Root.Children))
	}
	div := doc.Root.Children[0]
	if div.TagName != "div" || len(div.Children) != 2 {
		t.Fatalf("expected div with 2 children, got %s with %d", div.TagName, len(div.Children))
	}
	if div.Children[0].Type != TextNode || div.Children[0].Text != "Hover me" {
		t.Errorf("unexpected text node %q", div.Children[0].Text)
	}
	span := div.Children[1]
	if span.Parent != div {
		t.Error("span should point at its parent")
	}
	if span.TextContent() != "Tip" {
		t.Errorf("TextContent = %q", span.TextContent())
	}
}

func TestParser_DataAttributes(t *testing.T) {
	doc, err := Parse(`<span class="tooltipper" data-event='click' data-position="right|top"><b data-close>x</b></span>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	span := doc.Root.Children[0]
	if v, _ := span.GetAttribute("data-event"); v != "click" {
		t.Errorf("data-event = %q", v)
	}
	if v, _ := span.GetAttribute("data-position"); v != "right|top" {
		t.Errorf("data-position = %q", v)
	}
	if !span.Children[0].HasAttribute("data-close") {
		t.Error("valueless attribute should be present")
	}
}

func TestParser_ScriptsAndStyles(t *testing.T) {
	doc, err := Parse(`<style>.tooltipper { display: none }</style>
<div></div>
<script>if (1 < 2) { tooltipper(document.body); }</script>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Styles) != 1 || len(doc.Scripts) != 1 {
		t.Fatalf("expected 1 style and 1 script, got %d and %d", len(doc.Styles), len(doc.Scripts))
	}
	if doc.Scripts[0] != "if (1 < 2) { tooltipper(document.body); }" {
		t.Errorf("script = %q", doc.Scripts[0])
	}
	if len(doc.Root.Children) != 1 {
		t.Errorf("raw text elements should not enter the tree, got %d children", len(doc.Root.Children))
	}
}

func TestParser_VoidAndAutoClose(t *testing.T) {
	doc, err := Parse(`<p>one<br><div>two</div><img/></p>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Root.Children) != 3 {
		t.Fatalf("expected p, div, img at top level, got %d", len(doc.Root.Children))
	}
	p := doc.Root.Children[0]
	if len(p.Children) != 2 || p.Children[1].TagName != "br" {
		t.Error("br should be a void child of p")
	}
	if doc.Root.Children[2].TagName != "img" {
		t.Error("self-closing img should not swallow siblings")
	}
}

func TestParser_Error(t *testing.T) {
	if _, err := Parse(`<div class="unterminated`); err == nil {
		t.Error("expected an error for an unterminated attribute")
	}
}
