// save_state.go - gzip-compressed save states.
//
// Grounded directly on the teacher's debug_snapshot.go: magic + version
// header, binary.Write/Read in little-endian order, gzip over the bulk
// payload. The cartridge ROM/header (CartInfo) is deliberately excluded
// from the payload - a save state is meaningless without the matching
// ROM already loaded, and CRC32 (cartridge.go) is how a host verifies the
// two match before restoring.
package lynx

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
)

var saveStateMagic = [4]byte{'L', 'N', 'X', 'S'}

const saveStateVersion uint32 = 1

// SaveState serialises core's full runtime state (everything but the
// cartridge image) into a gzip-compressed blob.
func SaveState(c *Core) ([]byte, error) {
	var raw bytes.Buffer
	w := &raw

	write := func(v interface{}) error { return binary.Write(w, binary.LittleEndian, v) }

	if err := write(c.CPU.A); err != nil {
		return nil, err
	}
	_ = write(c.CPU.X)
	_ = write(c.CPU.Y)
	_ = write(c.CPU.SP)
	_ = write(c.CPU.PC)
	_ = write(c.CPU.PS)
	_ = write(c.CPU.Cycles)
	_ = write(int32(c.CPU.RunState))

	_ = write(c.Memory.RAM)
	_ = write(c.Memory.MapCtl)

	for i := range c.Mikey.Timers {
		t := &c.Mikey.Timers[i]
		_ = write(t.ctlA)
		_ = write(t.ctlB)
		_ = write(t.Backup)
		_ = write(t.Count)
		_ = write(t.prescaleCounter)
	}

	u := &c.Mikey.UART
	_ = write(u.intTxEnable)
	_ = write(u.intRxEnable)
	_ = write(u.parityEnable)
	_ = write(u.parityEven)
	_ = write(int32(u.rxHead))
	_ = write(int32(u.rxTail))
	_ = write(int32(u.rxCount))
	_ = write(u.rxQueue)
	_ = write(u.txCountdown)
	_ = write(u.rxCountdown)
	_ = write(u.gapCountdown)
	_ = write(u.txByte)
	_ = write(u.txBusy)
	_ = write(u.overrun)
	_ = write(u.framingErr)
	_ = write(u.breakRecv)
	_ = write(u.parityBit)
	_ = write(int32(len(u.rxArriving)))
	_ = write(u.rxArriving)

	for i := range c.Mikey.Audio {
		a := &c.Mikey.Audio[i]
		_ = write(a.Volume)
		_ = write(a.Feedback)
		_ = write(a.Output)
		_ = write(a.Shift)
		_ = write(a.ctl)
		_ = write(a.Backup)
		_ = write(a.Count)
		_ = write(a.prescaleCounter)
	}

	_ = write(c.Mikey.Display.Addr)
	_ = write(c.Mikey.Palette)
	_ = write(c.Mikey.irqPending)

	_ = write(c.Suzy.scbStart)
	_ = write(c.Suzy.lastCollision)
	_ = write(c.Suzy.ShiftRegister)
	_ = write(c.Suzy.math)
	_ = write(c.Suzy.buttons)

	if err := write(c.Eeprom.words); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := binary.Write(&out, binary.LittleEndian, saveStateMagic); err != nil {
		return nil, err
	}
	if err := binary.Write(&out, binary.LittleEndian, saveStateVersion); err != nil {
		return nil, err
	}
	if err := binary.Write(&out, binary.LittleEndian, c.Cart.Info.CRC32); err != nil {
		return nil, err
	}

	gz := gzip.NewWriter(&out)
	if _, err := gz.Write(raw.Bytes()); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// LoadState restores core's runtime state from a blob produced by
// SaveState. It refuses to load a state saved against a different
// cartridge image (CRC32 mismatch) or a future version.
func LoadState(c *Core, blob []byte) error {
	r := bytes.NewReader(blob)

	var magic [4]byte
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return err
	}
	if magic != saveStateMagic {
		return newLoadError("save state", ErrBadMagic)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return err
	}
	if version != saveStateVersion {
		return newLoadError("save state", ErrSaveStateVersionMismatch)
	}

	var crc uint32
	if err := binary.Read(r, binary.LittleEndian, &crc); err != nil {
		return err
	}
	if crc != c.Cart.Info.CRC32 {
		return newLoadError("save state", ErrBadMagic)
	}

	gz, err := gzip.NewReader(r)
	if err != nil {
		return err
	}
	defer gz.Close()

	read := func(v interface{}) error { return binary.Read(gz, binary.LittleEndian, v) }

	if err := read(&c.CPU.A); err != nil {
		return err
	}
	_ = read(&c.CPU.X)
	_ = read(&c.CPU.Y)
	_ = read(&c.CPU.SP)
	_ = read(&c.CPU.PC)
	_ = read(&c.CPU.PS)
	_ = read(&c.CPU.Cycles)
	var runState int32
	_ = read(&runState)
	c.CPU.RunState = RunState(runState)

	_ = read(&c.Memory.RAM)
	_ = read(&c.Memory.MapCtl)

	for i := range c.Mikey.Timers {
		t := &c.Mikey.Timers[i]
		_ = read(&t.ctlA)
		_ = read(&t.ctlB)
		_ = read(&t.Backup)
		_ = read(&t.Count)
		_ = read(&t.prescaleCounter)
	}

	u := &c.Mikey.UART
	_ = read(&u.intTxEnable)
	_ = read(&u.intRxEnable)
	_ = read(&u.parityEnable)
	_ = read(&u.parityEven)
	var rxHead, rxTail, rxCount int32
	_ = read(&rxHead)
	_ = read(&rxTail)
	_ = read(&rxCount)
	u.rxHead, u.rxTail, u.rxCount = int(rxHead), int(rxTail), int(rxCount)
	_ = read(&u.rxQueue)
	_ = read(&u.txCountdown)
	_ = read(&u.rxCountdown)
	_ = read(&u.gapCountdown)
	_ = read(&u.txByte)
	_ = read(&u.txBusy)
	_ = read(&u.overrun)
	_ = read(&u.framingErr)
	_ = read(&u.breakRecv)
	_ = read(&u.parityBit)
	var rxArrivingLen int32
	_ = read(&rxArrivingLen)
	u.rxArriving = make([]byte, rxArrivingLen)
	_ = read(&u.rxArriving)

	for i := range c.Mikey.Audio {
		a := &c.Mikey.Audio[i]
		_ = read(&a.Volume)
		_ = read(&a.Feedback)
		_ = read(&a.Output)
		_ = read(&a.Shift)
		_ = read(&a.ctl)
		_ = read(&a.Backup)
		_ = read(&a.Count)
		_ = read(&a.prescaleCounter)
	}

	_ = read(&c.Mikey.Display.Addr)
	_ = read(&c.Mikey.Palette)
	_ = read(&c.Mikey.irqPending)

	_ = read(&c.Suzy.scbStart)
	_ = read(&c.Suzy.lastCollision)
	_ = read(&c.Suzy.ShiftRegister)
	_ = read(&c.Suzy.math)
	_ = read(&c.Suzy.buttons)

	return read(&c.Eeprom.words)
}
