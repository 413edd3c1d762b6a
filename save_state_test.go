// save_state_test.go - round-trip save state, grounded on the teacher's
// debug_snapshot.go round-trip test style.

package lynx

import "testing"

func TestSaveStateRoundTrip(t *testing.T) {
	core, err := New(make([]byte, 64), Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	core.CPU.A = 0x42
	core.CPU.PC = 0x1234
	core.Memory.RAM[0x100] = 0x99
	core.Suzy.scbStart = 0xABCD

	blob, err := SaveState(core)
	if err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	core.CPU.A = 0
	core.CPU.PC = 0
	core.Memory.RAM[0x100] = 0
	core.Suzy.scbStart = 0

	if err := LoadState(core, blob); err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	if core.CPU.A != 0x42 {
		t.Fatalf("A=0x%02X, want 0x42 after restore", core.CPU.A)
	}
	if core.CPU.PC != 0x1234 {
		t.Fatalf("PC=0x%04X, want 0x1234 after restore", core.CPU.PC)
	}
	if core.Memory.RAM[0x100] != 0x99 {
		t.Fatalf("RAM[0x100]=0x%02X, want 0x99 after restore", core.Memory.RAM[0x100])
	}
	if core.Suzy.scbStart != 0xABCD {
		t.Fatalf("scbStart=0x%04X, want 0xABCD after restore", core.Suzy.scbStart)
	}
}

func TestLoadStateRejectsWrongCartridge(t *testing.T) {
	coreA, _ := New([]byte{1, 2, 3}, Config{})
	coreB, _ := New([]byte{4, 5, 6}, Config{})

	blob, err := SaveState(coreA)
	if err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if err := LoadState(coreB, blob); err == nil {
		t.Fatalf("expected LoadState to reject a save state from a different cartridge")
	}
}

func TestLoadStateRejectsBadMagic(t *testing.T) {
	core, _ := New([]byte{1, 2, 3}, Config{})
	if err := LoadState(core, []byte("not a save state")); err == nil {
		t.Fatalf("expected LoadState to reject garbage input")
	}
}
