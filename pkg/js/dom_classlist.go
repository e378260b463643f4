package js

import (
	"strconv"
	"strings"

	"github.com/dop251/goja"

	"tooltipper/pkg/html"
)

// newClassListProxy creates a JS DynamicObject implementing the DOMTokenList
// interface for element.classList.
func newClassListProxy(ctx *domContext, node *html.Node) goja.Value {
	return ctx.vm.NewDynamicObject(&classListAccessor{ctx: ctx, node: node})
}

type classListAccessor struct {
	ctx  *domContext
	node *html.Node
}

var classListKeys = []string{"length", "value", "add", "remove", "toggle", "contains", "replace", "item", "toString"}

func (cl *classListAccessor) tokens(call goja.FunctionCall) []string {
	tokens := make([]string, len(call.Arguments))
	for i, arg := range call.Arguments {
		tokens[i] = arg.String()
	}
	return tokens
}

func (cl *classListAccessor) Get(key string) goja.Value {
	vm := cl.ctx.vm
	classes := cl.node.Classes()

	switch key {
	case "length":
		return vm.ToValue(len(classes))
	case "value":
		return vm.ToValue(strings.Join(classes, " "))
	case "add":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			for _, token := range cl.tokens(call) {
				cl.node.AddClass(token)
			}
			return goja.Undefined()
		})
	case "remove":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			for _, token := range cl.tokens(call) {
				cl.node.RemoveClass(token)
			}
			return goja.Undefined()
		})
	case "toggle":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				panic(vm.NewTypeError("Failed to execute 'toggle': 1 argument required"))
			}
			token := call.Arguments[0].String()
			add := !cl.node.HasClass(token)
			if len(call.Arguments) > 1 {
				add = call.Arguments[1].ToBoolean()
			}
			if add {
				cl.node.AddClass(token)
			} else {
				cl.node.RemoveClass(token)
			}
			return vm.ToValue(add)
		})
	case "contains":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return vm.ToValue(len(call.Arguments) > 0 && cl.node.HasClass(call.Arguments[0].String()))
		})
	case "replace":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 2 {
				panic(vm.NewTypeError("Failed to execute 'replace': 2 arguments required"))
			}
			oldToken, newToken := call.Arguments[0].String(), call.Arguments[1].String()
			cls := cl.node.Classes()
			for i, c := range cls {
				if c == oldToken {
					cls[i] = newToken
					cl.node.SetAttribute("class", strings.Join(cls, " "))
					return vm.ToValue(true)
				}
			}
			return vm.ToValue(false)
		})
	case "item":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			idx := int(call.Argument(0).ToInteger())
			if idx < 0 || idx >= len(classes) {
				return goja.Null()
			}
			return vm.ToValue(classes[idx])
		})
	case "toString":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return vm.ToValue(strings.Join(classes, " "))
		})
	default:
		if idx, err := strconv.Atoi(key); err == nil && idx >= 0 && idx < len(classes) {
			return vm.ToValue(classes[idx])
		}
	}
	return goja.Undefined()
}

func (cl *classListAccessor) Set(key string, val goja.Value) bool {
	if key == "value" {
		cl.node.SetAttribute("class", val.String())
		return true
	}
	return false
}

func (cl *classListAccessor) Has(key string) bool {
	for _, k := range classListKeys {
		if k == key {
			return true
		}
	}
	idx, err := strconv.Atoi(key)
	return err == nil && idx >= 0 && idx < len(cl.node.Classes())
}

func (cl *classListAccessor) Delete(key string) bool {
	return false
}

func (cl *classListAccessor) Keys() []string {
	return append([]string(nil), classListKeys...)
}
