// suzy.go - Suzy coprocessor: register window, SCB chain start pointer,
// math unit wiring and the controller latch.
//
// Grounded on the teacher's machine_bus.go region-dispatch idiom, reused
// for Suzy's $FC00-$FCFF register window the same way mikey.go reuses it
// for Mikey's.
package lynx

// Suzy register offsets within $FC00-$FCFF. A fixed, simplified layout
// (see suzy_sprite.go's scbHeader comment) rather than the real ASIC's
// page of individually-addressable sprite-engine registers.
const (
	suzyRegSCBStartLo = 0x00
	suzyRegSCBStartHi = 0x01
	suzyRegSprSys     = 0x02
	suzyRegSprColl    = 0x03
	suzyRegSwitches   = 0x04 // read-only controller latch

	suzyRegMathA = 0x10
	suzyRegMathB = 0x11
	suzyRegMathC = 0x12
	suzyRegMathD = 0x13
	suzyRegMathSigned = 0x14
	suzyRegMathAccum  = 0x15
	suzyRegMathGo     = 0x16 // write: bit0 = multiply, bit1 = divide

	suzyRegEFGH0 = 0x20 // 4 bytes, little-endian
	suzyRegJK0   = 0x24 // 2 bytes, little-endian

	suzyRegCartBank0Data = 0x30 // read: auto-increments Cartridge bank0 counter
	suzyRegCartBank1Data = 0x31
	suzyRegCartCounter0Lo = 0x32
	suzyRegCartCounter0Hi = 0x33
	suzyRegCartCounter1Lo = 0x34
	suzyRegCartCounter1Hi = 0x35

	suzyRegEepromCS   = 0x38 // bit0 = CS
	suzyRegEepromClk  = 0x39 // bit0 = CLK level, bit1 = DI
	suzyRegEepromData = 0x3A // read-only: bit0 = DO
)

// SPRSYS bits.
const (
	sprSysMathOverflow = 0x01
	sprSysMathBusy     = 0x02
)

// Suzy implements the Lynx's sprite/math coprocessor.
type Suzy struct {
	scbStart uint16

	collision     *CollisionBuffer
	lastCollision byte

	math MathUnit

	buttons  ButtonSet
	rotation Rotation

	cart   *Cartridge
	eeprom *Eeprom

	// ShiftRegister mirrors the last byte shifted in off the cart port.
	// Real hardware never reads it back; it exists purely so a debugger
	// (or a save state) can show what the cart shifter last saw.
	ShiftRegister byte

	tracer Tracer
}

// NewSuzy constructs a Suzy. tracer may be nil.
func NewSuzy(tracer Tracer) *Suzy {
	s := &Suzy{tracer: tracer, collision: newCollisionBuffer()}
	s.Reset()
	return s
}

// AttachCartridge wires the cart port and EEPROM in; Core does this once
// the cartridge image has been parsed.
func (s *Suzy) AttachCartridge(cart *Cartridge, eeprom *Eeprom) {
	s.cart = cart
	s.eeprom = eeprom
}

func (s *Suzy) Reset() {
	s.scbStart = 0
	s.lastCollision = 0
	s.ShiftRegister = 0
	s.math.reset()
	s.collision.reset()
}

// SetButtons latches the host's current controller state; Remap is
// applied according to the cartridge's reported rotation.
func (s *Suzy) SetButtons(b ButtonSet, rotation Rotation) {
	s.buttons = b
	s.rotation = rotation
}

func (s *Suzy) ReadIO(offset uint16) byte {
	switch offset {
	case suzyRegSCBStartLo:
		return byte(s.scbStart)
	case suzyRegSCBStartHi:
		return byte(s.scbStart >> 8)
	case suzyRegSprSys:
		var v byte
		if s.math.Overflow {
			v |= sprSysMathOverflow
		}
		if s.math.Busy {
			v |= sprSysMathBusy
		}
		return v
	case suzyRegSprColl:
		return s.lastCollision
	case suzyRegSwitches:
		return s.buttons.Remap(s.rotation).switchesByte()
	case suzyRegMathA:
		return byte(s.math.A)
	case suzyRegMathB:
		return byte(s.math.B)
	case suzyRegMathC:
		return byte(s.math.C)
	case suzyRegMathD:
		return byte(s.math.D)
	}
	if offset >= suzyRegEFGH0 && offset < suzyRegEFGH0+4 {
		return byte(s.math.EFGH >> (8 * (offset - suzyRegEFGH0)))
	}
	if offset >= suzyRegJK0 && offset < suzyRegJK0+2 {
		return byte(s.math.JK >> (8 * (offset - suzyRegJK0)))
	}
	switch offset {
	case suzyRegCartBank0Data:
		if s.cart != nil {
			s.ShiftRegister = s.cart.ReadBank0()
			return s.ShiftRegister
		}
	case suzyRegCartBank1Data:
		if s.cart != nil {
			s.ShiftRegister = s.cart.ReadBank1()
			return s.ShiftRegister
		}
	case suzyRegEepromData:
		if s.eeprom != nil && s.eeprom.DataOut() {
			return 0x01
		}
		return 0x00
	}
	return 0xFF
}

func (s *Suzy) WriteIO(offset uint16, v byte) {
	switch offset {
	case suzyRegSCBStartLo:
		s.scbStart = (s.scbStart &^ 0x00FF) | uint16(v)
	case suzyRegSCBStartHi:
		s.scbStart = (s.scbStart &^ 0xFF00) | uint16(v)<<8
	case suzyRegMathA:
		s.math.A = (s.math.A &^ 0xFF) | uint16(v)
	case suzyRegMathB:
		s.math.B = (s.math.B &^ 0xFF) | uint16(v)
	case suzyRegMathC:
		s.math.C = (s.math.C &^ 0xFF) | uint16(v)
	case suzyRegMathD:
		s.math.D = (s.math.D &^ 0xFF) | uint16(v)
	case suzyRegMathSigned:
		s.math.Signed = v&0x01 != 0
	case suzyRegMathAccum:
		s.math.Accumulate = v&0x01 != 0
	case suzyRegMathGo:
		s.math.Busy = true
		if v&0x01 != 0 {
			s.math.Multiply()
		}
		if v&0x02 != 0 {
			s.math.Divide(s.tracer)
		}
		s.math.Busy = false
	case suzyRegCartCounter0Lo:
		if s.cart != nil {
			s.cart.SetCounter0Lo(v)
		}
	case suzyRegCartCounter0Hi:
		if s.cart != nil {
			s.cart.SetCounter0Hi(v)
		}
	case suzyRegCartCounter1Lo:
		if s.cart != nil {
			s.cart.SetCounter1Lo(v)
		}
	case suzyRegCartCounter1Hi:
		if s.cart != nil {
			s.cart.SetCounter1Hi(v)
		}
	case suzyRegEepromCS:
		if s.eeprom != nil {
			s.eeprom.Select(v&0x01 != 0)
		}
	case suzyRegEepromClk:
		if s.eeprom != nil {
			s.eeprom.Clock(v&0x01 != 0, v&0x02 != 0)
		}
	}
}
