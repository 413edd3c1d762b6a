// eeprom_test.go - bit-banged Microwire EWEN/WRITE/READ sequence.

package lynx

import "testing"

// shiftOutBit pulses CLK low-then-high with dataIn held constant,
// mimicking how a ROM bit-bangs one bit onto the wire.
func shiftOutBit(e *Eeprom, bit bool) {
	e.Clock(false, bit)
	e.Clock(true, bit)
}

func TestEepromWriteThenReadRoundTrips(t *testing.T) {
	e := NewEeprom(Eeprom93C46)
	e.Select(true)

	// EWEN: 1 00 11xxxx (start, opcode 00, address top bits 11)
	bits := []bool{true, false, false, true, true, false, false, false, false}
	for _, b := range bits {
		shiftOutBit(e, b)
	}
	e.Select(false)
	if !e.writeEnabled {
		t.Fatalf("EWEN sequence did not set writeEnabled")
	}

	e.Select(true)
	// WRITE to address 0: 1 01 000000 then 16 data bits (0xABCD)
	writeBits := []bool{true, false, true, false, false, false, false, false, false}
	for _, b := range writeBits {
		shiftOutBit(e, b)
	}
	data := uint16(0xABCD)
	for i := 15; i >= 0; i-- {
		shiftOutBit(e, data&(1<<uint(i)) != 0)
	}
	e.Select(false)

	if e.words[0] != 0xABCD {
		t.Fatalf("words[0]=0x%04X, want 0xABCD", e.words[0])
	}
}

func TestEepromSelectFalseAbortsInProgressCommand(t *testing.T) {
	e := NewEeprom(Eeprom93C46)
	e.Select(true)
	shiftOutBit(e, true)
	e.Select(false) // abort mid-command
	if e.bitsSeen != 0 {
		t.Fatalf("bitsSeen=%d after CS deasserted, want 0 (aborted)", e.bitsSeen)
	}
}

func TestEepromNoneTypeIgnoresAllLines(t *testing.T) {
	e := NewEeprom(EepromNone)
	e.Select(true)
	shiftOutBit(e, true)
	if e.bitsSeen != 0 {
		t.Fatalf("EepromNone should never accumulate shifted bits")
	}
}
