// mikey_display.go - scanline counter, vblank NMI and framebuffer capture.
//
// Grounded on the teacher's video_chip.go frame-cadence idiom (a cycle
// counter that rolls over into a scanline counter, then a frame
// counter), adapted to the Lynx's documented behaviour of pulsing NMI at
// the end of the visible frame so ROM code can synchronise sprite work
// to vblank (spec section 4.4).
package lynx

// Display owns the DISPADR pointer and the scanline/vblank cadence. The
// actual pixel DMA is modelled as a single end-of-frame capture
// (CaptureFramebuffer) rather than a byte-at-a-time per-scanline copy,
// since nothing on the CPU side can observe partial scanline state
// within a frame.
type Display struct {
	Addr uint16

	cyclesThisScanline uint32
	scanline           int
}

func (d *Display) reset() {
	d.Addr = 0
	d.cyclesThisScanline = 0
	d.scanline = 0
}

const cyclesPerScanline = CpuCyclesPerFrame / ScreenHeight

func (d *Display) tick(m *Mikey) {
	d.cyclesThisScanline++
	if d.cyclesThisScanline < cyclesPerScanline {
		return
	}
	d.cyclesThisScanline = 0
	d.scanline++
	if d.scanline < ScreenHeight {
		return
	}
	d.scanline = 0
	if m.cpu != nil {
		m.cpu.PulseNMI()
	}
}

// CaptureFramebuffer copies the 4bpp packed framebuffer out of work RAM
// starting at DISPADR. DISPADR may run upward or downward across frames
// (Suzy's screen-flip control decides the direction by choosing which end
// of the buffer the ROM points DISPADR at); this only ever reads forward
// from whatever base the ROM has set; vertical/horizontal mirroring is a
// host-side concern once pixels are unpacked (see palette.go).
func (m *Mikey) CaptureFramebuffer(ram *MemoryManager) []byte {
	buf := make([]byte, FramebufferSize)
	addr := m.Display.Addr
	for i := 0; i < FramebufferSize; i++ {
		buf[i] = ram.RAM[addr]
		addr++
	}
	return buf
}
