// video_ebiten.go - windowed frontend: an ebiten.Game that drives
// Core.RunFrame once per tick, blits the resulting framebuffer, and polls
// the keyboard into a lynx.ButtonSet.
//
// Grounded on the teacher's EbitenOutput backend (ebiten.Image ownership,
// frameBuffer/bufferMutex pair, Draw/Layout split) adapted from that
// engine's generic PixelFormat blit to lynx.RenderRGB's fixed RGB24
// output.
package main

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/TheAnsarya/nexen"
)

type ebitenFrontend struct {
	core    *lynx.Core
	console *debugConsole
	screen  *ebiten.Image
	audio   *otoPlayer

	mu  sync.Mutex
	rgb []byte
}

var keyMap = map[ebiten.Key]lynx.ButtonSet{
	ebiten.KeyArrowUp:    lynx.ButtonUp,
	ebiten.KeyArrowDown:  lynx.ButtonDown,
	ebiten.KeyArrowLeft:  lynx.ButtonLeft,
	ebiten.KeyArrowRight: lynx.ButtonRight,
	ebiten.KeyZ:          lynx.ButtonA,
	ebiten.KeyX:          lynx.ButtonB,
	ebiten.KeyEnter:      lynx.ButtonPause,
	ebiten.Key1:          lynx.ButtonOptB,
	ebiten.Key2:          lynx.ButtonOptC,
}

func runWindowed(core *lynx.Core, console *debugConsole, scale int) error {
	player, err := newOtoPlayer()
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	player.attach(core)

	f := &ebitenFrontend{
		core:    core,
		console: console,
		screen:  ebiten.NewImage(lynx.ScreenWidth, lynx.ScreenHeight),
		audio:   player,
	}

	ebiten.SetWindowSize(lynx.ScreenWidth*scale, lynx.ScreenHeight*scale)
	ebiten.SetWindowTitle("lynxplay")
	return ebiten.RunGame(f)
}

func (f *ebitenFrontend) Update() error {
	var buttons lynx.ButtonSet
	for key, b := range keyMap {
		if ebiten.IsKeyPressed(key) {
			buttons |= b
		}
	}
	f.core.SetButtons(buttons)

	out := f.core.RunFrame()
	f.audio.push(out.Audio)

	f.mu.Lock()
	f.rgb = lynx.RenderRGB(out.Framebuffer, &f.core.Mikey.Palette)
	f.mu.Unlock()

	if f.console != nil && f.console.shouldBreak(f.core) {
		return fmt.Errorf("breakpoint condition hit")
	}
	return nil
}

func (f *ebitenFrontend) Draw(screen *ebiten.Image) {
	f.mu.Lock()
	rgb := f.rgb
	f.mu.Unlock()
	if rgb == nil {
		return
	}

	pix := make([]byte, lynx.ScreenWidth*lynx.ScreenHeight*4)
	for i := 0; i < lynx.ScreenWidth*lynx.ScreenHeight; i++ {
		pix[i*4+0] = rgb[i*3+0]
		pix[i*4+1] = rgb[i*3+1]
		pix[i*4+2] = rgb[i*3+2]
		pix[i*4+3] = 0xFF
	}
	f.screen.WritePixels(pix)
	screen.DrawImage(f.screen, nil)
}

func (f *ebitenFrontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return lynx.ScreenWidth, lynx.ScreenHeight
}
