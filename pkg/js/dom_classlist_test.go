package js

import "testing"

func TestClassListAddRemove(t *testing.T) {
	page := loadPage(t, `<div id="el" class="a"></div>`)
	execute(t, page, `
		var el = document.getElementById("el");
		el.classList.add("b", "c", "a");
		if (el.className !== "a b c") throw new Error("after add: " + el.className);
		el.classList.remove("b");
		if (el.className !== "a c") throw new Error("after remove: " + el.className);
		if (el.classList.length !== 2) throw new Error("length: " + el.classList.length);
		if (el.classList[1] !== "c") throw new Error("index 1: " + el.classList[1]);
	`)
}

func TestClassListToggle(t *testing.T) {
	page := loadPage(t, `<div id="el" class="a"></div>`)
	execute(t, page, `
		var el = document.getElementById("el");
		if (!el.classList.toggle("b")) throw new Error("toggle add should return true");
		if (el.className !== "a b") throw new Error("after add: " + el.className);
		if (el.classList.toggle("a")) throw new Error("toggle remove should return false");
		if (el.className !== "b") throw new Error("after remove: " + el.className);

		el.classList.toggle("b", true);
		if (el.className !== "b") throw new Error("force true should keep: " + el.className);
		el.classList.toggle("c", false);
		if (el.className !== "b") throw new Error("force false should not add: " + el.className);
	`)
}

func TestClassListContainsReplace(t *testing.T) {
	page := loadPage(t, `<div id="el" class="a b c"></div>`)
	execute(t, page, `
		var el = document.getElementById("el");
		if (!el.classList.contains("a")) throw new Error("should contain a");
		if (el.classList.contains("z")) throw new Error("should not contain z");
		if (!el.classList.replace("b", "x")) throw new Error("replace should return true");
		if (el.className !== "a x c") throw new Error("className: " + el.className);
		if (el.classList.replace("nonexistent", "y")) throw new Error("replace of nonexistent should return false");
		if (el.classList.item(9) !== null) throw new Error("item out of range should be null");
	`)
}
