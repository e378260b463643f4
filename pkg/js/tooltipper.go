package js

import (
	"github.com/dop251/goja"

	"tooltipper/pkg/html"
	"tooltipper/pkg/tooltip"
)

// tooltipBinding implements the script entry point
//
//	tooltipper(target, { baseSelector: ".tooltipper" })
//
// where target is an element, an array of elements or a selector. Each
// target element is handed to the Collector at most once.
type tooltipBinding struct {
	ctx         *domContext
	collector   *tooltip.Collector
	initialized map[*html.Node]bool
}

func registerTooltipper(ctx *domContext, collector *tooltip.Collector) *tooltipBinding {
	b := &tooltipBinding{
		ctx:         ctx,
		collector:   collector,
		initialized: make(map[*html.Node]bool),
	}
	ctx.vm.Set("tooltipper", b.call)
	return b
}

func (b *tooltipBinding) call(call goja.FunctionCall) goja.Value {
	vm := b.ctx.vm
	if len(call.Arguments) == 0 {
		panic(vm.NewTypeError("Failed to execute 'tooltipper': 1 argument required"))
	}
	roots := b.targets(call.Arguments[0])
	opts := b.options(call.Argument(1))

	for _, root := range roots {
		if b.initialized[root] {
			b.ctx.logger.Debug("tooltipper already applied", "root", root.TagName)
			continue
		}
		if _, err := b.collector.Initialize(root, opts); err != nil {
			panic(vm.NewGoError(err))
		}
		b.initialized[root] = true
	}
	return call.Arguments[0]
}

func (b *tooltipBinding) targets(val goja.Value) []*html.Node {
	ctx := b.ctx
	if s, ok := val.Export().(string); ok {
		nodes, err := ctx.page.QuerySelectorAll(ctx.page.Doc.Root, s)
		if err != nil {
			throwSyntaxError(ctx, "tooltipper", err)
		}
		return nodes
	}
	if n := ctx.unwrapNode(val); n != nil {
		return []*html.Node{n}
	}
	obj, ok := val.(*goja.Object)
	if !ok {
		panic(ctx.vm.NewTypeError("Failed to execute 'tooltipper': target must be an element, array or selector"))
	}
	length := obj.Get("length")
	if length == nil || goja.IsUndefined(length) {
		panic(ctx.vm.NewTypeError("Failed to execute 'tooltipper': target must be an element, array or selector"))
	}
	var nodes []*html.Node
	for i := 0; i < int(length.ToInteger()); i++ {
		nodes = append(nodes, ctx.mustNode(index(obj, i), "tooltipper"))
	}
	return nodes
}

func (b *tooltipBinding) options(val goja.Value) tooltip.Options {
	var opts tooltip.Options
	obj, ok := val.(*goja.Object)
	if !ok {
		return opts
	}
	if sel := obj.Get("baseSelector"); sel != nil && !goja.IsUndefined(sel) && !goja.IsNull(sel) {
		opts.BaseSelector = sel.String()
	}
	return opts
}
