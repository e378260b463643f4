package js

import "testing"

func TestQuerySelector(t *testing.T) {
	page := loadPage(t, `<div><p class="a">first</p><p class="b">second</p></div>`)
	execute(t, page, `
		var el = document.querySelector(".b");
		if (el === null) throw new Error("not found");
		if (el.textContent !== "second") throw new Error("wrong element: " + el.textContent);
		if (document.querySelector(".nonexistent") !== null) throw new Error("should be null");
	`)
}

func TestQuerySelectorAllGroup(t *testing.T) {
	page := loadPage(t, `<p>a</p><div>b</div><span>c</span>`)
	execute(t, page, `
		var items = document.querySelectorAll("p, span");
		if (items.length !== 2) throw new Error("expected 2, got: " + items.length);
	`)
}

func TestElementQuerySelectorScoped(t *testing.T) {
	page := loadPage(t, `<div id="scope"><span class="a">inside</span><span>b</span></div><span class="a">outside</span>`)
	execute(t, page, `
		var scope = document.getElementById("scope");
		if (scope.querySelector(".a").textContent !== "inside") throw new Error("should find inside scope");
		if (scope.querySelectorAll("span").length !== 2) throw new Error("expected 2 spans in scope");
	`)
}

func TestMatchesAndClosest(t *testing.T) {
	page := loadPage(t, `<div class="outer"><div class="inner"><span id="target" class="foo bar">text</span></div></div>`)
	execute(t, page, `
		var el = document.getElementById("target");
		if (!el.matches("div > span.bar")) throw new Error("should match child selector");
		if (el.matches(".baz")) throw new Error("should not match .baz");
		if (!el.matches(".baz, .foo")) throw new Error("should match comma group");

		if (el.closest(".outer").className !== "outer") throw new Error("closest should find .outer");
		if (el.closest("span") !== el) throw new Error("closest should match self");
		if (el.closest(".nonexistent") !== null) throw new Error("should be null for no match");
	`)
}

func TestMalformedSelectorThrows(t *testing.T) {
	page := loadPage(t, `<div></div>`)
	execute(t, page, `
		try {
			document.querySelectorAll("div >");
			throw new Error("no throw");
		} catch (e) {
			if (e.message === "no throw") throw e;
			if (e.message.indexOf("querySelectorAll") < 0) throw new Error("message: " + e.message);
		}
	`)
}
