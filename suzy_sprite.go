// suzy_sprite.go - SCB chain walker, line decoder and framebuffer blit.
//
// Grounded on the teacher's video_screen_buffer.go scanline-composition
// idiom (walk a list of drawable objects, rasterise each into a shared
// buffer, respect a per-object transparency key) generalised to Suzy's
// Sprite Control Block chain: each SCB names a sprite type, a pen
// remap table, a position and a scale factor, and points at packed pixel
// data stored as one run-length-coded segment per scanline.
//
// Reproduces the documented SCB-chain termination bug: the chain stops
// when the high byte of the next-SCB pointer is zero, not when the whole
// 16-bit pointer is zero. A ROM that places a valid SCB at $00xx (low
// page) is therefore unreachable as a "next" link; this is exactly the
// hardware's behaviour, not a bug in this implementation.
package lynx

// SPRCTL0 bits (type nibble plus a handful of shape flags).
const (
	sprCtl0TypeMask = 0x07
	sprCtl0Literal  = 0x08 // pixel data is literal nibbles, not RLE
	sprCtl0FlipH    = 0x20
	sprCtl0Skip     = 0x80 // sprite entirely disabled, SCB still consumes a chain link
)

// SPRCTL1 bits.
const (
	sprCtl1FlipV       = 0x01
	sprCtl1ReloadPalette = 0x02
)

// scbHeader is one decoded Sprite Control Block. Fixed-format: every SCB
// carries the same field set (no optional-field bitmap), a deliberate
// simplification over the real ASIC's variable-length SCBs, documented
// in the design notes.
type scbHeader struct {
	ctl0, ctl1, collNum byte
	nextPtr             uint16
	dataPtr             uint16
	hpos, vpos          int16
	hsize, vsize        uint16 // 8.8 fixed-point scale, 0x0100 == 1x
	penRemap            [8]byte
}

func readSCB(bus Bus, ptr uint16) scbHeader {
	read := func(off uint16) byte { return bus.Read(ptr + off) }
	readWord := func(off uint16) uint16 {
		return uint16(read(off)) | uint16(read(off+1))<<8
	}

	var h scbHeader
	h.ctl0 = read(0)
	h.ctl1 = read(1)
	h.collNum = read(2)
	h.nextPtr = readWord(3)
	h.dataPtr = readWord(5)
	h.hpos = int16(readWord(7))
	h.vpos = int16(readWord(9))
	h.hsize = readWord(11)
	h.vsize = readWord(13)
	for i := 0; i < 8; i++ {
		h.penRemap[i] = read(uint16(15 + i))
	}
	return h
}

func (h scbHeader) pen(nibble byte) byte {
	b := h.penRemap[nibble/2]
	if nibble%2 == 0 {
		return b & 0x0F
	}
	return b >> 4
}

func (h scbHeader) spriteType() int { return int(h.ctl0 & sprCtl0TypeMask) }

// decodeLine reads one scanline's worth of packed pixel nibbles starting
// at addr, returning the nibbles and the address of the following line
// (0-length line, a single zero count byte, ends the sprite).
func decodeLine(bus Bus, addr uint16, literal bool) (nibbles []byte, next uint16, done bool) {
	count := bus.Read(addr)
	addr++
	if count == 0 {
		return nil, addr, true
	}
	end := addr + uint16(count) - 1

	if literal {
		for addr < end {
			b := bus.Read(addr)
			addr++
			nibbles = append(nibbles, b&0x0F, b>>4)
		}
		return nibbles, end, false
	}

	// RLE: each packet is (controlByte, [literal nibbles | one repeated
	// nibble]). High bit of the control byte selects the mode; the low 7
	// bits are the run length in nibbles.
	for addr < end {
		ctrl := bus.Read(addr)
		addr++
		n := int(ctrl & 0x7F)
		if n == 0 {
			continue
		}
		if ctrl&0x80 != 0 {
			// literal run: ceil(n/2) data bytes follow
			for i := 0; i < n; i += 2 {
				if addr >= end {
					break
				}
				b := bus.Read(addr)
				addr++
				nibbles = append(nibbles, b&0x0F)
				if i+1 < n {
					nibbles = append(nibbles, b>>4)
				}
			}
		} else {
			if addr >= end {
				break
			}
			v := bus.Read(addr) & 0x0F
			addr++
			for i := 0; i < n; i++ {
				nibbles = append(nibbles, v)
			}
		}
	}
	return nibbles, end, false
}

// RenderFrame walks the SCB chain starting at Suzy.scbStart, rasterising
// every sprite into ram's framebuffer window (at mikey.Display.Addr) and
// recording collisions. It never runs more than maxSCBChainLength links,
// matching spec section 4.6's guard against a corrupt chain hanging the
// frame.
const maxSCBChainLength = 4096

func (s *Suzy) RenderFrame(bus Bus, ram *MemoryManager, mikey *Mikey) {
	ptr := s.scbStart
	for i := 0; i < maxSCBChainLength; i++ {
		if ptr>>8 == 0 {
			// Bug 13.12: the chain terminates when the high byte of the
			// pointer is zero, independent of the low byte.
			return
		}
		h := readSCB(bus, ptr)
		if h.ctl0&sprCtl0Skip == 0 {
			s.drawSprite(bus, ram, mikey.Display.Addr, h)
		}
		ptr = h.nextPtr
	}
}

func (s *Suzy) drawSprite(bus Bus, ram *MemoryManager, fbBase uint16, h scbHeader) {
	literal := h.ctl0&sprCtl0Literal != 0
	flipH := h.ctl0&sprCtl0FlipH != 0
	flipV := h.ctl1&sprCtl1FlipV != 0
	spriteType := h.spriteType()

	addr := h.dataPtr
	row := 0
	for {
		nibbles, next, done := decodeLine(bus, addr, literal)
		addr = next
		if done {
			break
		}

		y := int(h.vpos) + scaleCoord(row, h.vsize)
		if flipV {
			y = int(h.vpos) - scaleCoord(row, h.vsize)
		}
		row++

		if y < 0 || y >= ScreenHeight {
			continue
		}

		for col, nibble := range nibbles {
			if nibble == 0 && spriteType != SpriteTypeBackground {
				continue // pen 0 is transparent except for background sprites
			}
			x := int(h.hpos) + scaleCoord(col, h.hsize)
			if flipH {
				x = int(h.hpos) - scaleCoord(col, h.hsize)
			}
			if x < 0 || x >= ScreenWidth {
				continue
			}

			pen := h.pen(nibble)
			if spriteType != SpriteTypeNonCollidable {
				if prev := s.collision.Plot(x, y, h.collNum); prev != 0 {
					s.lastCollision = prev
				}
			}
			plotPixel(ram, fbBase, x, y, pen, spriteType)
		}
	}
}

// scaleCoord applies an 8.8 fixed-point stretch factor to a line/column
// index. 0x0100 (1.0) is the identity scale.
func scaleCoord(i int, scale16_16 uint16) int {
	if scale16_16 == 0 {
		return i
	}
	return (i * int(scale16_16)) / 0x0100
}

func plotPixel(ram *MemoryManager, fbBase uint16, x, y int, pen byte, spriteType int) {
	// fbBase (mikey.Display.Addr) is the framebuffer base; Suzy draws
	// directly into the same window Mikey's DMA later scans out, matching
	// the real ASIC sharing one buffer between the two chips.
	byteIdx := int(fbBase) + y*BytesPerScanline + x/2
	if byteIdx < 0 || byteIdx >= len(ram.RAM) {
		return
	}
	cur := ram.RAM[byteIdx]
	curPen := nibbleAt(cur, x)

	switch spriteType {
	case SpriteTypeBackground:
		// A background sprite only fills in still-blank pixels; it never
		// paints over something another sprite already drew.
		if curPen != 0 {
			return
		}
	case SpriteTypeNormalShadow, SpriteTypeBoundaryShadow, SpriteTypeXorShadow, SpriteTypeShadow:
		pen ^= curPen
	}
	ram.RAM[byteIdx] = setNibble(cur, x, pen)
}

func nibbleAt(b byte, x int) byte {
	if x%2 == 0 {
		return b & 0x0F
	}
	return b >> 4
}

func setNibble(b byte, x int, v byte) byte {
	if x%2 == 0 {
		return (b &^ 0x0F) | (v & 0x0F)
	}
	return (b &^ 0xF0) | (v << 4)
}
