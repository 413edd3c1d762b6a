// main.go - lynxplay: a thin host binary around the lynx core. Loads a
// cartridge image, wires one of three frontends (windowed/Ebiten,
// raw-terminal, or headless) and drives the frame loop.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/TheAnsarya/nexen"
)

func main() {
	var (
		romPath    = flag.String("rom", "", "path to a .lnx cartridge image or headerless ROM")
		frontend   = flag.String("frontend", "window", "frontend: window, terminal, headless")
		scale      = flag.Int("scale", 4, "window scale factor (window frontend only)")
		frames     = flag.Int("frames", 0, "headless frontend: number of frames to run before exiting (0 = forever)")
		screenshot = flag.String("screenshot", "", "headless frontend: write a PNG of the last frame to this path")
		luaScript  = flag.String("breakpoints", "", "optional Lua script evaluated each frame for breakpoint conditions")
		copyState  = flag.Bool("copy-state", false, "headless frontend: copy a base64 save state to the clipboard on exit")
	)
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "lynxplay: -rom is required")
		flag.Usage()
		os.Exit(2)
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lynxplay: reading rom: %v\n", err)
		os.Exit(1)
	}

	tracer := &lynx.RecordingTracer{}
	core, err := lynx.New(rom, lynx.Config{Tracer: tracer})
	if err != nil {
		fmt.Fprintf(os.Stderr, "lynxplay: loading cartridge: %v\n", err)
		os.Exit(1)
	}

	var console *debugConsole
	if *luaScript != "" {
		console, err = newDebugConsole(*luaScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lynxplay: loading breakpoint script: %v\n", err)
			os.Exit(1)
		}
	}

	switch *frontend {
	case "window":
		if err := runWindowed(core, console, *scale); err != nil {
			fmt.Fprintf(os.Stderr, "lynxplay: %v\n", err)
			os.Exit(1)
		}
	case "terminal":
		if err := runTerminal(core, console); err != nil {
			fmt.Fprintf(os.Stderr, "lynxplay: %v\n", err)
			os.Exit(1)
		}
	case "headless":
		if err := runHeadless(core, console, *frames, *screenshot); err != nil {
			fmt.Fprintf(os.Stderr, "lynxplay: %v\n", err)
			os.Exit(1)
		}
		if *copyState {
			if err := copySaveStateToClipboard(core); err != nil {
				fmt.Fprintf(os.Stderr, "lynxplay: %v\n", err)
			}
		}
	default:
		fmt.Fprintf(os.Stderr, "lynxplay: unknown -frontend %q\n", *frontend)
		os.Exit(2)
	}

	reportTraps(tracer)
}

func reportTraps(tr *lynx.RecordingTracer) {
	if len(tr.UnknownOpcodes) > 0 {
		fmt.Fprintf(os.Stderr, "lynxplay: %d unknown opcode traps\n", len(tr.UnknownOpcodes))
	}
	if tr.DivideByZeroCount > 0 {
		fmt.Fprintf(os.Stderr, "lynxplay: %d suzy divide-by-zero traps\n", tr.DivideByZeroCount)
	}
}

// runHeadless drives RunFrame directly with no display or audio backend,
// useful for benchmarking and for producing the -screenshot output.
func runHeadless(core *lynx.Core, console *debugConsole, frames int, screenshotPath string) error {
	var last lynx.FrameOutput
	i := 0
	for frames == 0 || i < frames {
		last = core.RunFrame()
		if console != nil && console.shouldBreak(core) {
			break
		}
		i++
	}
	if screenshotPath != "" {
		return writeScreenshot(last.Framebuffer, &core.Mikey.Palette, screenshotPath)
	}
	return nil
}
