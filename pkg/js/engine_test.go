package js

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"tooltipper/pkg/dom"
)

func loadPage(t *testing.T, markup string) *dom.Page {
	t.Helper()
	page, err := dom.Load(markup)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return page
}

// execute appends script to the page and runs every script on a new engine.
func execute(t *testing.T, page *dom.Page, script string, opts ...Option) *Engine {
	t.Helper()
	engine := New(opts...)
	page.Doc.Scripts = append(page.Doc.Scripts, script)
	if err := engine.Execute(page); err != nil {
		t.Fatal(err)
	}
	return engine
}

func TestGetElementById(t *testing.T) {
	page := loadPage(t, `<div id="foo">hello</div>`)
	execute(t, page, `
		var el = document.getElementById("foo");
		if (el === null) throw new Error("element not found");
		if (el.id !== "foo") throw new Error("wrong id: " + el.id);
		if (el.tagName !== "DIV") throw new Error("wrong tagName: " + el.tagName);
		if (document.getElementById("nonexistent") !== null) throw new Error("expected null");
		if (document.getElementById("foo") !== el) throw new Error("proxies should be cached");
	`)
}

func TestGetElementsByClassName(t *testing.T) {
	page := loadPage(t, `<div class="a b">one</div><div class="a">two</div><div class="c">three</div>`)
	execute(t, page, `
		var els = document.getElementsByClassName("a");
		if (els.length !== 2) throw new Error("expected 2 elements with class a, got: " + els.length);
	`)
}

func TestDocumentBody(t *testing.T) {
	page := loadPage(t, `<html><body><p id="p">x</p></body></html>`)
	execute(t, page, `
		var p = document.getElementById("p");
		if (p.parentNode !== document.body) throw new Error("p should be a child of body");
		if (document.body.tagName !== "BODY") throw new Error("body tag: " + document.body.tagName);
	`)
}

func TestSetTextContent(t *testing.T) {
	page := loadPage(t, `<div id="target">original</div>`)
	execute(t, page, `document.getElementById("target").textContent = "changed";`)
	if got := page.Doc.GetElementByID("target").TextContent(); got != "changed" {
		t.Errorf("textContent = %q, want %q", got, "changed")
	}
}

func TestSetStyleCamelCase(t *testing.T) {
	page := loadPage(t, `<div id="box" style="top: 4px"></div>`)
	execute(t, page, `
		var el = document.getElementById("box");
		el.style.backgroundColor = "yellow";
		el.style.fontSize = "20px";
		if (el.style.top !== "4px") throw new Error("top: " + el.style.top);
	`)
	style, _ := page.Doc.GetElementByID("box").GetAttribute("style")
	if style != "background-color: yellow; font-size: 20px; top: 4px" {
		t.Errorf("style = %q", style)
	}
}

func TestAttributesAndDataset(t *testing.T) {
	page := loadPage(t, `<span id="target" data-event="click" data-close-on-click="yes"></span>`)
	execute(t, page, `
		var el = document.getElementById("target");
		if (el.getAttribute("data-event") !== "click") throw new Error("getAttribute");
		if (el.getAttribute("missing") !== null) throw new Error("missing attribute should be null");
		if (el.dataset.closeOnClick !== "yes") throw new Error("dataset: " + el.dataset.closeOnClick);
		el.setAttribute("data-position", "bottom|left");
		el.removeAttribute("data-event");
		if (el.hasAttribute("data-event")) throw new Error("attribute not removed");
	`)
	node := page.Doc.GetElementByID("target")
	if v, _ := node.GetAttribute("data-position"); v != "bottom|left" {
		t.Errorf("data-position = %q", v)
	}
}

func TestAppendAndRemoveChild(t *testing.T) {
	page := loadPage(t, `<div id="a"><span id="s">x</span></div><div id="b"></div>`)
	execute(t, page, `
		var s = document.getElementById("s");
		var b = document.getElementById("b");
		b.appendChild(s);
		if (s.parentNode !== b) throw new Error("appendChild should reparent");
		if (document.getElementById("a").children.length !== 0) throw new Error("old parent not emptied");
		b.removeChild(s);
		if (s.parentNode !== null) throw new Error("removed node still attached");
		try {
			b.removeChild(s);
			throw new Error("no throw");
		} catch (e) {
			if (e.message === "no throw") throw e;
		}
	`)
}

func TestScriptError(t *testing.T) {
	page := loadPage(t, `<div></div>`)
	page.Doc.Scripts = append(page.Doc.Scripts, `var ok = 1;`, `throw new Error("test error");`)
	err := New().Execute(page)
	if err == nil {
		t.Fatal("expected error from script")
	}
	if !strings.HasPrefix(err.Error(), "script 1:") {
		t.Errorf("error should name the failing script: %v", err)
	}
}

func TestScriptExtraction(t *testing.T) {
	page := loadPage(t, `<script>var x = 1;</script><div id="d"></div><script>var y = x + 1;</script>`)
	engine := New()
	if err := engine.Execute(page); err != nil {
		t.Fatal(err)
	}
	v, err := engine.Run("y")
	if err != nil {
		t.Fatal(err)
	}
	if v.ToInteger() != 2 {
		t.Errorf("y = %v, want 2", v)
	}
}

func TestConsoleUsesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	page := loadPage(t, `<div></div>`)
	execute(t, page, `console.log("hello", 42); console.warn("careful");`, WithLogger(logger))

	out := buf.String()
	for _, want := range []string{"hello 42", "WARN", "careful", "console"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
