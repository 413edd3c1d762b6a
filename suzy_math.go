// suzy_math.go - Suzy's hardware multiply/divide unit, including the
// four documented silicon quirks this core reproduces deliberately
// rather than "fixing":
//
//   - signed multiply treats an operand of $8000 as +32768: the
//     two's-complement negation of $8000 is $8000 again, so its sign is
//     never applied ($8000 * $0002 = $00010000, $8000 * $8000 =
//     $40000000).
//   - divide-by-zero leaves EFGH/the remainder registers completely
//     unmodified and only sets MathOverflow (spec Open Question,
//     resolved that way rather than zeroing the outputs).
//   - divide's remainder is always written back as a positive magnitude,
//     even when the division was a signed one with a negative dividend.
//   - MathOverflow is overwritten by every multiply/divide, never OR'd
//     with whatever was already set: back-to-back operations don't
//     accumulate a sticky overflow flag.
//
// Grounded on the teacher's audio_chip.go style of small bit-twiddling
// state machines with no hidden allocation, applied here to 32x16 and
// 16x16 fixed-point hardware math rather than LFSR noise.
package lynx

// MathUnit implements Suzy's multiply/divide coprocessor.
type MathUnit struct {
	A, B uint16 // multiplicand/multiplier, or divisor components
	C, D uint16

	EFGH uint32 // product, or dividend/quotient
	JK   uint16 // divide remainder

	Signed     bool
	Accumulate bool
	Overflow   bool
	Busy       bool
}

func (m *MathUnit) reset() {
	*m = MathUnit{}
}

// Multiply computes A*B (AB is the conventional register pair name used
// in the real hardware's documentation) into EFGH. When Signed, both
// operands are interpreted as two's-complement 16-bit values, except
// that $8000 counts as +32768 (the documented quirk above, see
// toMagnitude16).
func (m *MathUnit) Multiply() {
	overflow := false

	if m.Signed {
		sa, na := toMagnitude16(m.A)
		sb, nb := toMagnitude16(m.B)
		product := uint32(na) * uint32(nb)
		if sa != sb {
			product = -product & 0xFFFFFFFF
		}
		if m.Accumulate {
			sum := uint64(m.EFGH) + uint64(product)
			overflow = sum > 0xFFFFFFFF
			m.EFGH = uint32(sum)
		} else {
			m.EFGH = product
		}
	} else {
		product := uint32(m.A) * uint32(m.B)
		if m.Accumulate {
			sum := uint64(m.EFGH) + uint64(product)
			overflow = sum > 0xFFFFFFFF
			m.EFGH = uint32(sum)
		} else {
			m.EFGH = product
		}
	}

	m.Overflow = overflow
}

// toMagnitude16 returns (negative, magnitude) for v interpreted as a
// signed 16-bit value. $8000 reports non-negative with magnitude $8000:
// negating it yields $8000 again, so the sign is never applied - this is
// the documented quirk.
func toMagnitude16(v uint16) (negative bool, magnitude uint16) {
	if v&0x8000 == 0 {
		return false, v
	}
	if v == 0x8000 {
		return false, 0x8000
	}
	return true, ^v + 1
}

// Divide computes EFGH / C (the divisor register pair) leaving the
// quotient in EFGH and the remainder (always a positive magnitude, per
// the documented bug) in JK. A division by zero leaves EFGH/JK untouched
// and only raises Overflow; tracer (if non-nil) is notified here.
func (m *MathUnit) Divide(tracer Tracer) {
	divisor := uint32(m.C)
	if divisor == 0 {
		m.Overflow = true
		if tracer != nil {
			tracer.SuzyDivideByZero()
		}
		return
	}

	if m.Signed {
		dividend := int64(int32(m.EFGH))
		div := int64(int16(m.C))
		q := dividend / div
		r := dividend % div
		if r < 0 {
			r = -r
		}
		m.EFGH = uint32(q)
		m.JK = uint16(r)
	} else {
		dividend := m.EFGH
		m.EFGH = dividend / divisor
		m.JK = uint16(dividend % divisor)
	}
	m.Overflow = false
}
