// memory_test.go - MAPCTL window visibility and vector-write blocking.

package lynx

import "testing"

type stubIO struct {
	reads  map[uint16]byte
	writes map[uint16]byte
}

func newStubIO() *stubIO { return &stubIO{reads: map[uint16]byte{}, writes: map[uint16]byte{}} }

func (s *stubIO) ReadIO(offset uint16) byte { return s.reads[offset] }
func (s *stubIO) WriteIO(offset uint16, v byte) { s.writes[offset] = v }

func TestSuzyWindowVisibleByDefault(t *testing.T) {
	mm := NewMemoryManager(nil)
	suzy := newStubIO()
	suzy.reads[0x10] = 0x42
	mm.AttachDevices(suzy, newStubIO())

	if got := mm.Read(SuzyBase + 0x10); got != 0x42 {
		t.Fatalf("Read(SuzyBase+0x10)=0x%02X, want 0x42", got)
	}
}

func TestMapCtlHidesSuzyBehindRAM(t *testing.T) {
	mm := NewMemoryManager(nil)
	suzy := newStubIO()
	suzy.reads[0x10] = 0x42
	mm.AttachDevices(suzy, newStubIO())

	mm.Write(MAPCTLAddr, MapCtlSuzyRAM)
	mm.RAM[SuzyBase+0x10] = 0x99

	if got := mm.Read(SuzyBase + 0x10); got != 0x99 {
		t.Fatalf("Read with Suzy window disabled = 0x%02X, want 0x99 (RAM)", got)
	}
}

func TestVectorWriteBlockedReportsToTracer(t *testing.T) {
	tr := &RecordingTracer{}
	mm := NewMemoryManager(tr)
	mm.Write(resetVector, 0xAB)
	if len(tr.BlockedVectorWrites) != 1 {
		t.Fatalf("expected one blocked vector write, got %d", len(tr.BlockedVectorWrites))
	}
}

func TestMapCtlRegisterItselfAlwaysVisible(t *testing.T) {
	mm := NewMemoryManager(nil)
	mm.Write(MAPCTLAddr, 0x0F)
	if mm.Read(MAPCTLAddr) != 0x0F {
		t.Fatalf("MAPCTL readback = 0x%02X, want 0x0F", mm.Read(MAPCTLAddr))
	}
}
