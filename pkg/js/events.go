package js

import (
	"github.com/dop251/goja"

	"tooltipper/pkg/dom"
	"tooltipper/pkg/html"
)

// jsListener remembers a script callback so removeEventListener can find
// the page subscription it created.
type jsListener struct {
	typ string
	fn  goja.Value
	sub dom.Subscription
}

// registerEvents installs the global dispatch(el, type) used by scripts
// to simulate pointer input.
func registerEvents(ctx *domContext) {
	ctx.vm.Set("dispatch", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(ctx.vm.NewTypeError("Failed to execute 'dispatch': 2 arguments required"))
		}
		n := ctx.mustNode(call.Arguments[0], "dispatch")
		ctx.page.Dispatch(n, call.Arguments[1].String())
		return goja.Undefined()
	})
}

// eventObject snapshots ev for a script listener.
func (ctx *domContext) eventObject(ev *dom.Event) goja.Value {
	obj := ctx.vm.NewObject()
	obj.Set("type", ev.Type)
	obj.Set("target", ctx.elementProxy(ev.Target))
	obj.Set("currentTarget", ctx.elementProxy(ev.CurrentTarget))
	obj.Set("stopPropagation", func(goja.FunctionCall) goja.Value {
		ev.StopPropagation()
		return goja.Undefined()
	})
	return obj
}

func addEventListenerFn(ctx *domContext, node *html.Node) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		typ := call.Argument(0).String()
		fnVal := call.Argument(1)
		fn, ok := goja.AssertFunction(fnVal)
		if !ok {
			panic(ctx.vm.NewTypeError("Failed to execute 'addEventListener': parameter 2 is not a function"))
		}
		for _, l := range ctx.listeners[node] {
			if l.typ == typ && l.fn.SameAs(fnVal) {
				return goja.Undefined()
			}
		}
		sub := ctx.page.On(node, typ, func(ev *dom.Event) {
			this := ctx.elementProxy(ev.CurrentTarget)
			if _, err := fn(this, ctx.eventObject(ev)); err != nil {
				ctx.logger.Error("event listener failed", "type", ev.Type, "err", err)
			}
		})
		ctx.listeners[node] = append(ctx.listeners[node], jsListener{typ: typ, fn: fnVal, sub: sub})
		return goja.Undefined()
	}
}

func removeEventListenerFn(ctx *domContext, node *html.Node) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		typ := call.Argument(0).String()
		fnVal := call.Argument(1)
		list := ctx.listeners[node]
		for i, l := range list {
			if l.typ == typ && l.fn.SameAs(fnVal) {
				l.sub.Cancel()
				ctx.listeners[node] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
		return goja.Undefined()
	}
}
