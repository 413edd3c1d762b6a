// palette.go - 12-bit Mikey palette to 24-bit RGB expansion, and
// unpacking the 4bpp framebuffer into a pixel-per-byte index buffer.
//
// Grounded on the teacher's video_screen_buffer.go pixel-format
// conversion helpers, adapted from that engine's 8bpp indexed buffers to
// the Lynx's 4-bit nibble pairs and 4-bit-per-channel palette entries.
package lynx

// nibbleTo8 expands a 4-bit channel value to 8 bits by replicating the
// nibble into both halves of the byte (0xF -> 0xFF, 0x8 -> 0x88), the
// standard way to expand a low-bit-depth DAC without darkening the top of
// the range.
func nibbleTo8(n uint16) byte {
	b := byte(n & 0x0F)
	return b<<4 | b
}

// RGB24 unpacks one palette entry (stored as the two Mikey palette bytes
// describe: high byte = green in its low nibble, low byte = blue<<4|red) into 8-bit
// per-channel red, green, blue.
func RGB24(entry uint16) (r, g, b byte) {
	red := (entry >> 0) & 0x0F
	green := (entry >> 8) & 0x0F
	blue := (entry >> 4) & 0x0F
	return nibbleTo8(red), nibbleTo8(green), nibbleTo8(blue)
}

// UnpackFramebuffer expands a packed 4bpp framebuffer (BytesPerScanline
// bytes per line, two pixels per byte, low nibble first) into one
// palette-index byte per pixel.
func UnpackFramebuffer(packed []byte) [ScreenWidth * ScreenHeight]byte {
	var out [ScreenWidth * ScreenHeight]byte
	pixel := 0
	for _, b := range packed {
		out[pixel] = b & 0x0F
		pixel++
		out[pixel] = b >> 4
		pixel++
		if pixel >= len(out) {
			break
		}
	}
	return out
}

// RenderRGB converts a packed framebuffer straight to an interleaved RGB
// byte triple buffer using pal, for hosts (cmd/lynxplay, screenshot
// export) that want pixels rather than palette indices.
func RenderRGB(packed []byte, pal *[PaletteEntries]uint16) []byte {
	idx := UnpackFramebuffer(packed)
	out := make([]byte, 0, len(idx)*3)
	for _, p := range idx {
		r, g, b := RGB24(pal[p])
		out = append(out, r, g, b)
	}
	return out
}
