package js

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"tooltipper/pkg/dom"
)

func TestAddEventListenerBubbles(t *testing.T) {
	page := loadPage(t, `<div id="outer"><a id="inner">x</a></div>`)
	engine := execute(t, page, `
		var seen = [];
		var outer = document.getElementById("outer");
		var inner = document.getElementById("inner");
		outer.addEventListener("click", function (e) {
			seen.push("outer:" + e.target.id + ":" + e.currentTarget.id);
		});
		inner.addEventListener("click", function (e) { seen.push("inner"); });
		inner.click();
	`)
	v, err := engine.Run(`seen.join(",")`)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.String(); got != "inner,outer:inner:outer" {
		t.Errorf("seen = %q", got)
	}
}

func TestRemoveEventListener(t *testing.T) {
	page := loadPage(t, `<a id="a">x</a>`)
	execute(t, page, `
		var count = 0;
		var a = document.getElementById("a");
		function inc() { count++; }
		a.addEventListener("click", inc);
		a.addEventListener("click", inc);
		a.click();
		a.removeEventListener("click", inc);
		a.click();
		if (count !== 1) throw new Error("count: " + count);
	`)
	if n := page.ListenerCount(page.Doc.GetElementByID("a"), dom.EventClick); n != 0 {
		t.Errorf("listener count = %d, want 0", n)
	}
}

func TestDispatchAndStopPropagation(t *testing.T) {
	page := loadPage(t, `<div id="outer"><a id="inner">x</a></div>`)
	execute(t, page, `
		var outerClicks = 0, entered = 0;
		var outer = document.getElementById("outer");
		var inner = document.getElementById("inner");
		outer.addEventListener("click", function () { outerClicks++; });
		outer.addEventListener("mouseenter", function () { entered++; });
		inner.addEventListener("click", function (e) { e.stopPropagation(); });
		dispatch(inner, "click");
		dispatch(inner, "mouseenter");
		if (outerClicks !== 0) throw new Error("stopPropagation ignored");
		if (entered !== 0) throw new Error("mouseenter should not bubble");
	`)
}

func TestListenerErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	page := loadPage(t, `<a id="a">x</a>`)
	execute(t, page, `
		var a = document.getElementById("a");
		a.addEventListener("click", function () { throw new Error("boom"); });
		a.click();
	`, WithLogger(logger))
	if out := buf.String(); !strings.Contains(out, "event listener failed") || !strings.Contains(out, "boom") {
		t.Errorf("listener failure not logged:\n%s", out)
	}
}
