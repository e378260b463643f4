package js

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dop251/goja"

	"tooltipper/pkg/css"
	"tooltipper/pkg/dom"
	"tooltipper/pkg/html"
)

// domContext holds shared state for DOM bindings within a single execution.
// It maintains a node-to-proxy cache so the same JS object is returned for
// the same underlying *html.Node (needed for === identity checks).
type domContext struct {
	vm        *goja.Runtime
	page      *dom.Page
	logger    *log.Logger
	cache     map[*html.Node]goja.Value
	listeners map[*html.Node][]jsListener
}

func newDOMContext(vm *goja.Runtime, page *dom.Page, logger *log.Logger) *domContext {
	return &domContext{
		vm:        vm,
		page:      page,
		logger:    logger,
		cache:     make(map[*html.Node]goja.Value),
		listeners: make(map[*html.Node][]jsListener),
	}
}

// registerDocument sets up the global `document` object on the goja runtime.
func registerDocument(vm *goja.Runtime, page *dom.Page, logger *log.Logger) *domContext {
	ctx := newDOMContext(vm, page, logger)
	doc := page.Doc

	docObj := vm.NewObject()
	docObj.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		node := doc.GetElementByID(call.Arguments[0].String())
		if node == nil {
			return goja.Null()
		}
		return ctx.elementProxy(node)
	})
	docObj.Set("getElementsByClassName", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return ctx.elementArray(nil)
		}
		return ctx.elementArray(getElementsByClassName(doc.Root, call.Arguments[0].String()))
	})
	docObj.Set("createElement", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("Failed to execute 'createElement' on 'Document': 1 argument required"))
		}
		return ctx.elementProxy(html.NewElement(call.Arguments[0].String()))
	})

	registerQuerySelectors(ctx, docObj, doc.Root)
	docObj.Set("body", ctx.elementProxy(page.Body()))

	vm.Set("document", docObj)
	return ctx
}

// getElementsByClassName collects all element nodes that have the given class.
func getElementsByClassName(root *html.Node, cls string) []*html.Node {
	var result []*html.Node
	root.Walk(func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.HasClass(cls) {
			result = append(result, n)
		}
		return false
	})
	return result
}

// elementArray creates a JS array of Element proxies.
func (ctx *domContext) elementArray(nodes []*html.Node) goja.Value {
	vals := make([]interface{}, len(nodes))
	for i, n := range nodes {
		vals[i] = ctx.elementProxy(n)
	}
	return ctx.vm.NewArray(vals...)
}

// elementProxy creates (or retrieves from cache) a JS DynamicObject wrapping an html.Node.
func (ctx *domContext) elementProxy(node *html.Node) goja.Value {
	if v, ok := ctx.cache[node]; ok {
		return v
	}
	v := ctx.vm.NewDynamicObject(&elementAccessor{ctx: ctx, node: node})
	ctx.cache[node] = v
	return v
}

// unwrapNode extracts the *html.Node behind an element proxy, or nil.
func (ctx *domContext) unwrapNode(val goja.Value) *html.Node {
	if val == nil || goja.IsNull(val) || goja.IsUndefined(val) {
		return nil
	}
	obj, ok := val.(*goja.Object)
	if !ok {
		return nil
	}
	for node, cached := range ctx.cache {
		if cached.SameAs(obj) {
			return node
		}
	}
	return nil
}

// mustNode is unwrapNode for arguments that have to be elements.
func (ctx *domContext) mustNode(val goja.Value, method string) *html.Node {
	n := ctx.unwrapNode(val)
	if n == nil {
		panic(ctx.vm.NewTypeError("Failed to execute '%s': parameter is not an element", method))
	}
	return n
}

// elementAccessor implements goja.DynamicObject to intercept property access
// on DOM element proxies.
type elementAccessor struct {
	ctx  *domContext
	node *html.Node
}

var elementKeys = []string{
	"tagName", "nodeName", "nodeType", "id", "className", "textContent", "outerHTML",
	"getAttribute", "setAttribute", "hasAttribute", "removeAttribute",
	"dataset", "style", "classList",
	"children", "parentElement", "parentNode",
	"appendChild", "removeChild", "contains",
	"querySelector", "querySelectorAll", "matches", "closest",
	"addEventListener", "removeEventListener", "click",
}

func (e *elementAccessor) Get(key string) goja.Value {
	vm := e.ctx.vm

	switch key {
	case "nodeType":
		if e.node.Type == html.TextNode {
			return vm.ToValue(3) // Node.TEXT_NODE
		}
		return vm.ToValue(1) // Node.ELEMENT_NODE
	case "nodeName", "tagName":
		if e.node.Type == html.TextNode {
			if key == "nodeName" {
				return vm.ToValue("#text")
			}
			return goja.Undefined()
		}
		return vm.ToValue(strings.ToUpper(e.node.TagName))
	case "id":
		id, _ := e.node.GetAttribute("id")
		return vm.ToValue(id)
	case "className":
		cls, _ := e.node.GetAttribute("class")
		return vm.ToValue(cls)
	case "textContent":
		return vm.ToValue(e.node.TextContent())
	case "outerHTML":
		return vm.ToValue(e.node.SerializeOuter())
	case "getAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			val, ok := e.node.GetAttribute(call.Argument(0).String())
			if !ok {
				return goja.Null()
			}
			return vm.ToValue(val)
		})
	case "setAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 2 {
				panic(vm.NewTypeError("Failed to execute 'setAttribute': 2 arguments required"))
			}
			e.node.SetAttribute(call.Arguments[0].String(), call.Arguments[1].String())
			return goja.Undefined()
		})
	case "hasAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return vm.ToValue(e.node.HasAttribute(call.Argument(0).String()))
		})
	case "removeAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			delete(e.node.Attributes, call.Argument(0).String())
			return goja.Undefined()
		})
	case "dataset":
		obj := vm.NewObject()
		for k, v := range e.node.Dataset() {
			obj.Set(k, v)
		}
		return obj
	case "style":
		return vm.NewDynamicObject(&styleAccessor{vm: vm, node: e.node})
	case "classList":
		return newClassListProxy(e.ctx, e.node)
	case "children":
		var elChildren []*html.Node
		for _, child := range e.node.Children {
			if child.Type == html.ElementNode {
				elChildren = append(elChildren, child)
			}
		}
		return e.ctx.elementArray(elChildren)
	case "parentElement", "parentNode":
		if p := e.node.Parent; p != nil && p.Type == html.ElementNode && p.TagName != "document" {
			return e.ctx.elementProxy(p)
		}
		return goja.Null()
	case "appendChild":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			child := e.ctx.mustNode(call.Argument(0), "appendChild")
			if child.Contains(e.node) {
				panic(vm.NewTypeError("Failed to execute 'appendChild': the new child contains the parent"))
			}
			e.node.AppendChild(child)
			return call.Argument(0)
		})
	case "removeChild":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			child := e.ctx.mustNode(call.Argument(0), "removeChild")
			if child.Parent != e.node {
				panic(vm.NewTypeError("Failed to execute 'removeChild': the node is not a child of this node"))
			}
			e.node.RemoveChild(child)
			return call.Argument(0)
		})
	case "contains":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			other := e.ctx.unwrapNode(call.Argument(0))
			return vm.ToValue(other != nil && e.node.Contains(other))
		})
	case "querySelector":
		return vm.ToValue(querySelectorFn(e.ctx, e.node))
	case "querySelectorAll":
		return vm.ToValue(querySelectorAllFn(e.ctx, e.node))
	case "matches":
		return vm.ToValue(matchesFn(e.ctx, e.node))
	case "closest":
		return vm.ToValue(closestFn(e.ctx, e.node))
	case "addEventListener":
		return vm.ToValue(addEventListenerFn(e.ctx, e.node))
	case "removeEventListener":
		return vm.ToValue(removeEventListenerFn(e.ctx, e.node))
	case "click":
		return vm.ToValue(func(goja.FunctionCall) goja.Value {
			e.ctx.page.Click(e.node)
			return goja.Undefined()
		})
	}
	return goja.Undefined()
}

func (e *elementAccessor) Set(key string, val goja.Value) bool {
	switch key {
	case "textContent":
		e.node.Children = nil
		if s := val.String(); s != "" {
			e.node.AppendText(s)
		}
		return true
	case "className":
		e.node.SetAttribute("class", val.String())
		return true
	case "id":
		e.node.SetAttribute("id", val.String())
		return true
	}
	return false
}

func (e *elementAccessor) Has(key string) bool {
	for _, k := range elementKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (e *elementAccessor) Delete(key string) bool {
	return false
}

func (e *elementAccessor) Keys() []string {
	return append([]string(nil), elementKeys...)
}

// styleAccessor maps JS camelCase property access to CSS kebab-case on
// the node's inline style attribute.
type styleAccessor struct {
	vm   *goja.Runtime
	node *html.Node
}

func (s *styleAccessor) style() *css.Style {
	attr, _ := s.node.GetAttribute("style")
	return css.ParseInlineStyle(attr)
}

func (s *styleAccessor) Get(key string) goja.Value {
	val, _ := s.style().Get(camelToKebab(key))
	return s.vm.ToValue(val)
}

func (s *styleAccessor) Set(key string, val goja.Value) bool {
	st := s.style()
	st.Set(camelToKebab(key), val.String())
	s.node.SetAttribute("style", st.String())
	return true
}

func (s *styleAccessor) Has(key string) bool {
	return true
}

func (s *styleAccessor) Delete(key string) bool {
	st := s.style()
	delete(st.Properties, camelToKebab(key))
	s.node.SetAttribute("style", st.String())
	return true
}

func (s *styleAccessor) Keys() []string {
	st := s.style()
	keys := make([]string, 0, len(st.Properties))
	for k := range st.Properties {
		keys = append(keys, k)
	}
	return keys
}

// camelToKebab converts a JS camelCase property name to CSS kebab-case.
func camelToKebab(s string) string {
	if s == "cssFloat" {
		return "float"
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			sb.WriteByte('-')
			c += 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// index reads element i of an array-like JS object.
func index(obj *goja.Object, i int) goja.Value {
	return obj.Get(strconv.Itoa(i))
}
