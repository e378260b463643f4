package js

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dop251/goja"
)

// consoleAPI implements console.log, console.warn, console.error and
// console.debug on top of the engine's logger.
type consoleAPI struct {
	logger *log.Logger
}

func (c *consoleAPI) register(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", c.level(log.InfoLevel))
	console.Set("info", c.level(log.InfoLevel))
	console.Set("debug", c.level(log.DebugLevel))
	console.Set("warn", c.level(log.WarnLevel))
	console.Set("error", c.level(log.ErrorLevel))
	vm.Set("console", console)
}

func (c *consoleAPI) level(lvl log.Level) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		c.logger.Log(lvl, formatArgs(call.Arguments))
		return goja.Undefined()
	}
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
