package js

import (
	"testing"

	"tooltipper/pkg/dom"
	"tooltipper/pkg/tooltip"
)

const pluginPage = `<body>
<section id="one">
  <a id="a1" style="top: 40px; left: 10px; width: 100px; height: 20px">One
    <span id="t1" class="tooltipper" style="width: 60px; height: 10px">1</span></a>
  <a id="a2">Two <em id="t2" class="hint">2</em></a>
</section>
<section id="two">
  <a id="a3">Three <span id="t3" class="tooltipper" data-event="click">3</span></a>
</section>
</body>`

func TestTooltipperTwiceWiresOneController(t *testing.T) {
	page := loadPage(t, pluginPage)
	engine := execute(t, page, `
		tooltipper(document.body);
		tooltipper(document.body);
	`)
	if n := len(engine.Collector().Controllers()); n != 2 {
		t.Fatalf("controllers = %d, want 2", n)
	}
	if n := page.ListenerCount(page.Doc.GetElementByID("a1"), dom.EventMouseEnter); n != 1 {
		t.Errorf("a1 mouseenter listeners = %d, want 1", n)
	}
	if n := page.ListenerCount(page.Doc.GetElementByID("a3"), dom.EventClick); n != 1 {
		t.Errorf("a3 click listeners = %d, want 1", n)
	}
}

func TestTooltipperSelectorAndOptions(t *testing.T) {
	page := loadPage(t, pluginPage)
	engine := execute(t, page, `tooltipper("#one", { baseSelector: "em.hint" });`)
	ctrls := engine.Collector().Controllers()
	if len(ctrls) != 1 || ctrls[0].Element() != page.Doc.GetElementByID("t2") {
		t.Fatalf("expected only t2 to be controlled, got %d controllers", len(ctrls))
	}
}

func TestTooltipperArrayTarget(t *testing.T) {
	page := loadPage(t, pluginPage)
	engine := execute(t, page, `
		var r = tooltipper(document.querySelectorAll("section"));
		if (r.length !== 2) throw new Error("should return its target");
	`)
	if n := len(engine.Collector().Controllers()); n != 2 {
		t.Errorf("controllers = %d, want 2", n)
	}
}

func TestTooltipperShowFromScript(t *testing.T) {
	page := loadPage(t, pluginPage)
	execute(t, page, `
		tooltipper(document.body);
		var tip = document.getElementById("t1");
		dispatch(document.getElementById("a1"), "mouseenter");
		if (tip.parentNode !== document.body) throw new Error("tooltip should move to body");
		if (!tip.classList.contains("tooltipper-block")) throw new Error("visible class missing");
		if (tip.style.top !== "30px") throw new Error("top: " + tip.style.top);
		if (tip.style.left !== "30px") throw new Error("left: " + tip.style.left);
		dispatch(document.getElementById("a1"), "mouseleave");
		if (tip.parentNode.id !== "a1") throw new Error("tooltip should return to its anchor");
	`)
}

func TestTooltipperBadSelectorThrows(t *testing.T) {
	page := loadPage(t, pluginPage)
	engine := execute(t, page, `
		try {
			tooltipper(document.body, { baseSelector: "span >" });
			throw new Error("no throw");
		} catch (e) {
			if (e.message === "no throw") throw e;
		}
		tooltipper(document.body);
	`)
	if n := len(engine.Collector().Controllers()); n != 2 {
		t.Errorf("retry after a failed call should wire 2 controllers, got %d", n)
	}
}

func TestTooltipperRejectsBadTarget(t *testing.T) {
	page := loadPage(t, pluginPage)
	execute(t, page, `
		try {
			tooltipper(42);
			throw new Error("no throw");
		} catch (e) {
			if (!(e instanceof TypeError)) throw e;
		}
	`)
}

func TestCollectorOptionsPassThrough(t *testing.T) {
	page := loadPage(t, pluginPage)
	execute(t, page, `
		tooltipper(document.body);
		document.getElementById("a3").click();
		if (!document.getElementById("t3").classList.contains("on")) throw new Error("custom class missing");
	`, WithCollectorOptions(tooltip.WithVisibleClass("on")))
}
