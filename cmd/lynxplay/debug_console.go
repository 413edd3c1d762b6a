// debug_console.go - Lua-scripted breakpoint predicates and a
// save-state-to-clipboard debug command. Neither the core nor its tests
// depend on this; it's purely a host-side development aid.
package main

import (
	"encoding/base64"
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"golang.design/x/clipboard"

	"github.com/TheAnsarya/nexen"
)

// debugConsole evaluates a user-supplied Lua script once per frame. The
// script must define a global function `shouldBreak(pc, a, x, y, sp, cycles)`
// returning true when lynxplay should stop the frame loop.
type debugConsole struct {
	vm *lua.LState
}

func newDebugConsole(scriptPath string) (*debugConsole, error) {
	vm := lua.NewState()
	if err := vm.DoFile(scriptPath); err != nil {
		vm.Close()
		return nil, fmt.Errorf("debug console: %w", err)
	}
	if vm.GetGlobal("shouldBreak").Type() != lua.LTFunction {
		vm.Close()
		return nil, fmt.Errorf("debug console: script must define shouldBreak(pc, a, x, y, sp, cycles)")
	}
	return &debugConsole{vm: vm}, nil
}

func (c *debugConsole) shouldBreak(core *lynx.Core) bool {
	cpu := core.CPU
	err := c.vm.CallByParam(lua.P{
		Fn:      c.vm.GetGlobal("shouldBreak"),
		NRet:    1,
		Protect: true,
	},
		lua.LNumber(cpu.PC),
		lua.LNumber(cpu.A),
		lua.LNumber(cpu.X),
		lua.LNumber(cpu.Y),
		lua.LNumber(cpu.SP),
		lua.LNumber(cpu.Cycles),
	)
	if err != nil {
		fmt.Println("debug console:", err)
		return false
	}
	defer c.vm.Pop(1)
	return lua.LVAsBool(c.vm.Get(-1))
}

// copySaveStateToClipboard base64-encodes a save state and places it on
// the system clipboard, letting a developer paste a repro state into a
// bug report without ever touching the filesystem.
func copySaveStateToClipboard(core *lynx.Core) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	blob, err := lynx.SaveState(core)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(blob)
	clipboard.Write(clipboard.FmtText, []byte(encoded))
	return nil
}
