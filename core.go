// core.go - top-level wiring: CPU + MemoryManager + Mikey + Suzy +
// Cartridge, and the per-frame cycle-budget scheduler.
//
// Grounded on the teacher's main.go chip-wiring sequence (construct each
// component, hand each one the references it needs, then drive a top
// level Run loop) adapted from "run until the user quits" to "advance
// exactly one frame's worth of CPU cycles and hand back pixels/audio",
// which is the shape spec section 5 describes for the host-facing API.
package lynx

// AudioSampleRateHz is the rate FrameOutput.Audio is generated at, the
// fixed-rate PCM stream the teacher's audio backends expect. It does not
// divide CPUClockHz evenly, so samples are spaced 90 or 91 CPU cycles
// apart to average out to exactly this rate.
const AudioSampleRateHz = 44100

// FrameOutput is everything a host needs after one RunFrame call.
type FrameOutput struct {
	Framebuffer []byte  // packed 4bpp, BytesPerScanline*ScreenHeight bytes
	Audio       []int16 // mono PCM samples generated during the frame
}

// Core wires every subsystem together and drives the frame loop.
type Core struct {
	CPU    *CPU
	Memory *MemoryManager
	Mikey  *Mikey
	Suzy   *Suzy
	Cart   *Cartridge
	Eeprom *Eeprom

	tracer Tracer

	cycleRemainder int
	sampleCounter  int
	audioBuf       []int16

	buttons ButtonSet
}

// Config configures a new Core. Tracer may be nil.
type Config struct {
	Tracer  Tracer
	BootROM []byte // optional boot ROM image, $FE00-$FFFF
}

// New parses romBytes as a cartridge image and wires up a fully
// constructed Core ready to run.
func New(romBytes []byte, cfg Config) (*Core, error) {
	cart, err := NewCartridge(romBytes)
	if err != nil {
		return nil, newLoadError("cartridge", err)
	}

	eeprom := NewEeprom(cart.Info.Eeprom)

	mm := NewMemoryManager(cfg.Tracer)
	mm.BootROM = cfg.BootROM

	cpu := NewCPU(mm, cfg.Tracer)
	mikey := NewMikey(cpu, cfg.Tracer)
	suzy := NewSuzy(cfg.Tracer)
	suzy.AttachCartridge(cart, eeprom)
	mm.AttachDevices(suzy, mikey)

	core := &Core{
		CPU:    cpu,
		Memory: mm,
		Mikey:  mikey,
		Suzy:   suzy,
		Cart:   cart,
		Eeprom: eeprom,
		tracer: cfg.Tracer,
	}

	cpu.onCycle = func() {
		mikey.Tick()
		core.sampleCounter += AudioSampleRateHz
		if core.sampleCounter >= CPUClockHz {
			core.sampleCounter -= CPUClockHz
			core.audioBuf = append(core.audioBuf, mikey.Mix())
		}
	}

	cpu.Reset()
	return core, nil
}

// Reset reinitialises every component to power-on defaults without
// re-parsing the cartridge image.
func (c *Core) Reset() {
	c.Memory.Reset()
	c.Mikey.Reset()
	c.Suzy.Reset()
	c.Cart.Reset()
	c.Eeprom.Reset()
	c.CPU.Reset()
	c.cycleRemainder = 0
	c.sampleCounter = 0
	c.audioBuf = nil
}

// SetButtons latches the host's controller state for the next frame,
// remapped for the cartridge's reported rotation.
func (c *Core) SetButtons(b ButtonSet) {
	c.buttons = b
	c.Suzy.SetButtons(b, c.Cart.Info.Rotation)
}

// OnComlynxTx registers cb to be called with every byte this Core's UART
// transmits onto the ComLynx bus.
func (c *Core) OnComlynxTx(cb func(b byte)) {
	c.Mikey.UART.onTransmit = cb
}

// ComlynxRx delivers a byte received from an external ComLynx peer.
func (c *Core) ComlynxRx(b byte) {
	c.Mikey.UART.Receive(b)
}

// RunFrame advances the machine by exactly one frame's worth of CPU
// cycles (CpuCyclesPerFrame, spec section 3.1), carrying any cycle
// overrun from the last instruction of the frame into the next frame's
// budget so long-running instructions never get truncated mid-execution.
func (c *Core) RunFrame() FrameOutput {
	c.audioBuf = c.audioBuf[:0]

	budget := CpuCyclesPerFrame - c.cycleRemainder
	spent := 0
	for spent < budget {
		spent += c.CPU.Step()
	}
	c.cycleRemainder = spent - budget

	c.Suzy.RenderFrame(c.Memory, c.Memory, c.Mikey)

	fb := c.Mikey.CaptureFramebuffer(c.Memory)

	audio := make([]int16, len(c.audioBuf))
	copy(audio, c.audioBuf)

	return FrameOutput{Framebuffer: fb, Audio: audio}
}
