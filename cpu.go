// cpu.go - 65C02-derived "Mikey CPU" register file, flags and run loop.
//
// Grounded on the teacher's cpu_six5go2.go (register layout, flag constants,
// the nzTable idiom for N/Z lookup) generalised from NMOS 6502 to the CMOS
// 65C02 semantics spec section 4.2 requires (decimal N/Z from BCD result,
// parenthesised IRQ-push masking, WAI/STP run states).

package lynx

const (
	stackBase   = 0x0100
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
	nmiVector   = 0xFFFA
)

// Status register flags.
const (
	FlagC byte = 0x01
	FlagZ byte = 0x02
	FlagI byte = 0x04
	FlagD byte = 0x08
	FlagB byte = 0x10
	FlagR byte = 0x20 // reserved, always 1
	FlagV byte = 0x40
	FlagN byte = 0x80
)

// RunState is the CPU's stop/wait state (spec section 4.2).
type RunState int

const (
	CPURunning RunState = iota
	CPUWaitingForIrq
	CPUStopped
)

// Bus is the CPU's view of the address space. The MemoryManager implements
// it.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

var nzTable [256]byte

func init() {
	for i := 0; i < 256; i++ {
		if i == 0 {
			nzTable[i] |= FlagZ
		}
		if i&0x80 != 0 {
			nzTable[i] |= FlagN
		}
	}
}

// CPU implements the 65C02-derived Mikey CPU.
type CPU struct {
	A, X, Y, SP byte
	PC          uint16
	PS          byte

	Cycles uint64

	irqLine bool // level-sensitive aggregate IRQ input from Mikey
	nmiLine bool
	nmiPrev bool

	RunState RunState

	bus    Bus
	tracer Tracer

	// onCycle is invoked once per billed CPU cycle, driving the timer
	// cascade/DMA/IRQ-check described in spec section 4.1. Set by Core.
	onCycle func()
}

// NewCPU constructs a CPU wired to bus. tracer may be nil.
func NewCPU(bus Bus, tracer Tracer) *CPU {
	c := &CPU{bus: bus, tracer: tracer}
	c.Reset()
	return c
}

// Reset reinitialises the CPU to power-on defaults, reading the reset
// vector from the bus.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.PS = FlagI | FlagR
	c.Cycles = 0
	c.irqLine = false
	c.nmiLine = false
	c.nmiPrev = false
	c.RunState = CPURunning
	if c.bus != nil {
		c.PC = c.readWord(resetVector)
	}
}

func (c *CPU) getFlag(f byte) bool { return c.PS&f != 0 }

func (c *CPU) setFlag(f byte, on bool) {
	if on {
		c.PS |= f
	} else {
		c.PS &^= f
	}
}

// setZeroNeg sets Z/N from v, preserving every other flag bit. Exercises
// spec testable property 1.
func (c *CPU) setZeroNeg(v byte) {
	c.PS = (c.PS &^ (FlagZ | FlagN)) | nzTable[v]
}

// setPS writes the live status register from v: Break is always masked off
// and Reserved is always forced on, per spec testable property 2. This is
// what PLP/RTI call; pushing PHP/BRK/IRQ/NMI instead computes an explicit
// push byte (see pushPS).
func (c *CPU) setPS(v byte) {
	c.PS = (v &^ (FlagB | FlagR)) | FlagR
}

func (c *CPU) billCycles(n int) {
	for i := 0; i < n; i++ {
		c.Cycles++
		if c.onCycle != nil {
			c.onCycle()
		}
	}
}

// SetIRQLine sets the level-sensitive aggregate IRQ input. Mikey calls this
// every time IrqPending/IrqEnabled changes.
func (c *CPU) SetIRQLine(asserted bool) {
	c.irqLine = asserted
	if asserted && c.RunState == CPUWaitingForIrq {
		c.RunState = CPURunning
	}
}

// PulseNMI schedules an edge-triggered NMI on the next Step.
func (c *CPU) PulseNMI() { c.nmiLine = true }

func (c *CPU) readByte(addr uint16) byte  { return c.bus.Read(addr) }
func (c *CPU) writeByte(addr uint16, v byte) { c.bus.Write(addr, v) }

func (c *CPU) readWord(addr uint16) uint16 {
	lo := uint16(c.readByte(addr))
	hi := uint16(c.readByte(addr + 1))
	return lo | hi<<8
}

func (c *CPU) fetch() byte {
	v := c.readByte(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetchWord() uint16 {
	lo := uint16(c.fetch())
	hi := uint16(c.fetch())
	return lo | hi<<8
}

func (c *CPU) push(v byte) {
	c.writeByte(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pull() byte {
	c.SP++
	return c.readByte(stackBase + uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) pullWord() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return lo | hi<<8
}

// pushPS pushes the status register for PHP/BRK (break=1) or a hardware
// IRQ/NMI (break=0). Reserved is always forced on. Matches spec section 4.2:
// naive expressions that omit the parentheses around "&^ break" fail this.
func (c *CPU) pushPS(isBreak bool) {
	v := c.PS | FlagR
	if isBreak {
		v |= FlagB
	} else {
		v = (v &^ FlagB) | FlagR
	}
	c.push(v)
}

// Step either services one pending NMI/IRQ or executes exactly one
// instruction, and returns the number of CPU cycles it consumed. onCycle (if
// set) fires once per billed cycle, which is how the Mikey timer cascade,
// sprite DMA and IRQ line stay synchronised to the CPU clock per spec
// section 4.1.
func (c *CPU) Step() int {
	before := c.Cycles

	nmiEdge := c.nmiLine && !c.nmiPrev
	c.nmiPrev = c.nmiLine
	c.nmiLine = false

	if nmiEdge {
		c.serviceInterrupt(nmiVector, false)
		return int(c.Cycles - before)
	}

	if c.RunState == CPUStopped {
		c.billCycles(1)
		return int(c.Cycles - before)
	}

	if c.irqLine && !c.getFlag(FlagI) {
		if c.RunState == CPUWaitingForIrq {
			c.RunState = CPURunning
		}
		c.serviceInterrupt(irqVector, false)
		return int(c.Cycles - before)
	}

	if c.RunState == CPUWaitingForIrq {
		c.billCycles(1)
		return int(c.Cycles - before)
	}

	opcode := c.fetch()
	entry := &opcodeTable[opcode]
	c.billCycles(entry.cycles)
	entry.exec(c, entry.mode)

	return int(c.Cycles - before)
}

func (c *CPU) serviceInterrupt(vector uint16, isBreak bool) {
	c.billCycles(2)
	c.pushWord(c.PC)
	c.pushPS(isBreak)
	c.setFlag(FlagI, true)
	c.setFlag(FlagD, false) // 65C02: D cleared on interrupt entry
	c.PC = c.readWord(vector)
	c.billCycles(3)
}
