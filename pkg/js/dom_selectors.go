package js

import (
	"github.com/dop251/goja"

	"tooltipper/pkg/css"
	"tooltipper/pkg/html"
)

// registerQuerySelectors adds querySelector/querySelectorAll to a document object.
func registerQuerySelectors(ctx *domContext, obj *goja.Object, root *html.Node) {
	obj.Set("querySelector", querySelectorFn(ctx, root))
	obj.Set("querySelectorAll", querySelectorAllFn(ctx, root))
}

// selectorArg returns the first argument, throwing a TypeError when absent.
func selectorArg(ctx *domContext, call goja.FunctionCall, method string) string {
	if len(call.Arguments) == 0 {
		panic(ctx.vm.NewTypeError("Failed to execute '%s': 1 argument required", method))
	}
	return call.Arguments[0].String()
}

// throwSyntaxError raises a malformed selector as a JS exception.
func throwSyntaxError(ctx *domContext, method string, err error) {
	panic(ctx.vm.NewGoError(&selectorError{method: method, err: err}))
}

type selectorError struct {
	method string
	err    error
}

func (e *selectorError) Error() string {
	return "Failed to execute '" + e.method + "': " + e.err.Error()
}

func (e *selectorError) Unwrap() error { return e.err }

// querySelectorFn returns a JS function implementing querySelector.
func querySelectorFn(ctx *domContext, root *html.Node) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		n, err := css.QuerySelector(root, selectorArg(ctx, call, "querySelector"))
		if err != nil {
			throwSyntaxError(ctx, "querySelector", err)
		}
		if n == nil {
			return goja.Null()
		}
		return ctx.elementProxy(n)
	}
}

// querySelectorAllFn returns a JS function implementing querySelectorAll.
func querySelectorAllFn(ctx *domContext, root *html.Node) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		nodes, err := css.QuerySelectorAll(root, selectorArg(ctx, call, "querySelectorAll"))
		if err != nil {
			throwSyntaxError(ctx, "querySelectorAll", err)
		}
		return ctx.elementArray(nodes)
	}
}

// matchesFn returns a JS function implementing element.matches(selector).
func matchesFn(ctx *domContext, node *html.Node) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		ok, err := css.Matches(node, selectorArg(ctx, call, "matches"))
		if err != nil {
			throwSyntaxError(ctx, "matches", err)
		}
		return ctx.vm.ToValue(ok)
	}
}

// closestFn returns a JS function implementing element.closest(selector).
func closestFn(ctx *domContext, node *html.Node) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		group, err := css.ParseSelectorGroup(selectorArg(ctx, call, "closest"))
		if err != nil {
			throwSyntaxError(ctx, "closest", err)
		}
		for current := node; current != nil; current = current.Parent {
			if current.Type != html.ElementNode || current.TagName == "document" {
				continue
			}
			for _, sel := range group {
				if css.MatchesSelector(current, sel) {
					return ctx.elementProxy(current)
				}
			}
		}
		return goja.Null()
	}
}
