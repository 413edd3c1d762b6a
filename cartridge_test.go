// cartridge_test.go - LNX header parsing and bank counter independence.

package lynx

import "testing"

func buildLNX(bank0, bank1 []byte, rotation byte) []byte {
	header := make([]byte, lnxHeaderSize)
	copy(header[0:4], lnxMagic[:])
	header[4] = byte(len(bank0) / 256)
	header[5] = byte((len(bank0) / 256) >> 8)
	header[6] = byte(len(bank1) / 256)
	header[58] = rotation
	out := append(header, bank0...)
	out = append(out, bank1...)
	return out
}

func TestHeaderlessROMDefaultsToNoRotationNoEeprom(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03, 0x04}
	c, err := NewCartridge(raw)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if c.Info.Rotation != RotationNone || c.Info.Eeprom != EepromNone {
		t.Fatalf("headerless defaults wrong: rotation=%v eeprom=%v", c.Info.Rotation, c.Info.Eeprom)
	}
}

func TestLNXHeaderParsesRotation(t *testing.T) {
	raw := buildLNX(make([]byte, 256), nil, 1)
	c, err := NewCartridge(raw)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if c.Info.Rotation != RotationLeft {
		t.Fatalf("Rotation=%v, want RotationLeft", c.Info.Rotation)
	}
}

func TestBankCounterHalvesAreIndependent(t *testing.T) {
	c := &Cartridge{bank0: make([]byte, 512)}
	c.SetCounter0Hi(0x01) // counter = 0x0100
	c.SetCounter0Lo(0x10) // counter = 0x0110, high byte preserved
	if c.counter0 != 0x0110 {
		t.Fatalf("counter0=0x%04X, want 0x0110", c.counter0)
	}
	c.SetCounter0Lo(0x00) // rewinds within the page; high byte must survive
	if c.counter0 != 0x0100 {
		t.Fatalf("counter0=0x%04X, want 0x0100 after low-byte-only write", c.counter0)
	}
}

func TestReadBank0AutoIncrements(t *testing.T) {
	c := &Cartridge{bank0: []byte{0xAA, 0xBB, 0xCC}}
	if v := c.ReadBank0(); v != 0xAA {
		t.Fatalf("first read=0x%02X, want 0xAA", v)
	}
	if v := c.ReadBank0(); v != 0xBB {
		t.Fatalf("second read=0x%02X, want 0xBB", v)
	}
}

func TestCRC32DistinguishesImages(t *testing.T) {
	a, _ := NewCartridge([]byte{1, 2, 3})
	b, _ := NewCartridge([]byte{1, 2, 4})
	if a.Info.CRC32 == b.Info.CRC32 {
		t.Fatalf("distinct ROM images produced the same CRC32")
	}
}
