// terminal_frontend.go - raw-mode terminal renderer: no GUI dependency,
// draws the framebuffer as ASCII '#'/' ' characters (one text row per two
// pixel rows) and reads single keystrokes non-blocking for input.
//
// Grounded on the teacher's TerminalHost (term.MakeRaw, syscall.SetNonblock
// stdin, a goroutine reading one byte at a time with CR->LF / DEL->BS
// translation), adapted from "pipe a byte stream to a text console" to
// "poll a keymap once per frame and render pixels as text".
package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"

	"golang.org/x/term"

	"github.com/TheAnsarya/nexen"
)

type terminalFrontend struct {
	fd          int
	oldState    *term.State
	nonblockSet bool
	keysMu      sync.Mutex
	keysHeld    map[byte]bool
	stop        chan struct{}
}

var terminalKeyMap = map[byte]lynx.ButtonSet{
	'w': lynx.ButtonUp,
	's': lynx.ButtonDown,
	'a': lynx.ButtonLeft,
	'd': lynx.ButtonRight,
	'j': lynx.ButtonA,
	'k': lynx.ButtonB,
	'p': lynx.ButtonPause,
}

func runTerminal(core *lynx.Core, console *debugConsole) error {
	f := &terminalFrontend{fd: int(os.Stdin.Fd()), keysHeld: map[byte]bool{}, stop: make(chan struct{})}

	oldState, err := term.MakeRaw(f.fd)
	if err != nil {
		return fmt.Errorf("terminal: raw mode: %w", err)
	}
	f.oldState = oldState
	defer term.Restore(f.fd, f.oldState)

	if err := syscall.SetNonblock(f.fd, true); err == nil {
		f.nonblockSet = true
	}

	go f.readLoop()
	defer close(f.stop)

	player, err := newOtoPlayer()
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	player.attach(core)

	for {
		select {
		case <-f.stop:
			return nil
		default:
		}

		core.SetButtons(f.snapshotButtons())
		out := core.RunFrame()
		player.push(out.Audio)
		f.render(out.Framebuffer, &core.Mikey.Palette)

		if console != nil && console.shouldBreak(core) {
			return nil
		}
	}
}

// readLoop mirrors the teacher's one-byte-at-a-time nonblocking read,
// translating a quit keystroke ('q') into a stop signal and otherwise
// latching keys held until the next poll clears them.
func (f *terminalFrontend) readLoop() {
	buf := make([]byte, 1)
	for {
		select {
		case <-f.stop:
			return
		default:
		}
		n, err := syscall.Read(f.fd, buf)
		if err != nil || n == 0 {
			continue
		}
		b := buf[0]
		if b == 'q' {
			close(f.stop)
			return
		}
		f.keysMu.Lock()
		f.keysHeld[b] = true
		f.keysMu.Unlock()
	}
}

// snapshotButtons reads and clears the held-key latch; a terminal has no
// key-up event, so lynxplay treats every keystroke as a single frame of
// input rather than a sustained press.
func (f *terminalFrontend) snapshotButtons() lynx.ButtonSet {
	f.keysMu.Lock()
	defer f.keysMu.Unlock()
	var buttons lynx.ButtonSet
	for b, held := range f.keysHeld {
		if !held {
			continue
		}
		if mapped, ok := terminalKeyMap[b]; ok {
			buttons |= mapped
		}
		delete(f.keysHeld, b)
	}
	return buttons
}

// render draws the framebuffer as one '#'/' ' character per vertical pixel
// pair, taken from the upper pixel of the pair (nonzero index = '#'),
// cheap enough to redraw every frame and legible enough for smoke-testing
// a cartridge without a GUI.
func (f *terminalFrontend) render(packed []byte, pal *[lynx.PaletteEntries]uint16) {
	idx := lynx.UnpackFramebuffer(packed)
	var out []byte
	out = append(out, "\x1b[H"...) // cursor home, no clear (avoids flicker)
	for y := 0; y < lynx.ScreenHeight; y += 2 {
		for x := 0; x < lynx.ScreenWidth; x++ {
			if idx[y*lynx.ScreenWidth+x] != 0 {
				out = append(out, '#')
			} else {
				out = append(out, ' ')
			}
		}
		out = append(out, '\n')
	}
	os.Stdout.Write(out)
}
