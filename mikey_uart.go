// mikey_uart.go - ComLynx UART: SERCTL/SERDAT, the 32-entry RX queue and
// the TX/RX countdown state machines.
//
// Grounded on the teacher's debug_snapshot.go style of small, explicit
// state (no hidden goroutines) and the audio LFSR tick idiom from
// audio_chip.go, generalised to a circular queue with two insertion
// modes: back-insert for bytes that genuinely arrived over the wire, and
// front-insert for the UART's own loopback of bytes it just transmitted
// (spec section 4.4, self-listen is how a ComLynx node hears its own
// break/start bit). Reproduces the documented level-sensitive IRQ
// reassertion: clearing IRQ bit 4 in INTRST while RX-ready or TX-ready
// still holds causes it to be set again on the very next tick.

package lynx

// UART implements Mikey's serial port.
type UART struct {
	owner *Mikey

	intTxEnable bool
	intRxEnable bool
	parityEnable bool
	parityEven   bool

	rxQueue      [UARTQueueCapacity]byte
	rxHead       int
	rxTail       int
	rxCount      int

	txCountdown uint32 // uartInactive when idle
	rxCountdown uint32
	gapCountdown uint32

	// rxArriving holds bytes that have reached the wire (via Receive) but
	// haven't yet cleared the RX period / inter-byte gap; tick() moves the
	// front one into rxQueue when rxCountdown expires.
	rxArriving []byte

	txByte byte
	txBusy bool

	overrun    bool
	framingErr bool
	breakRecv  bool
	parityBit  bool

	onTransmit func(b byte)
}

func (u *UART) reset() {
	u.intTxEnable = false
	u.intRxEnable = false
	u.parityEnable = false
	u.parityEven = false
	u.rxHead, u.rxTail, u.rxCount = 0, 0, 0
	u.txCountdown = uartInactive
	u.rxCountdown = uartInactive
	u.gapCountdown = uartInactive
	u.rxArriving = nil
	u.txByte = 0
	u.txBusy = false
	u.overrun = false
	u.framingErr = false
	u.breakRecv = false
	u.parityBit = false
}

func (u *UART) txReady() bool { return !u.txBusy }
func (u *UART) rxReady() bool { return u.rxCount > 0 }

func (u *UART) readCtl() byte {
	var v byte
	if u.txReady() {
		v |= SERCTLTxReady | SERCTLTxEmpty
	}
	if u.rxReady() {
		v |= SERCTLRxReady
	}
	if u.overrun {
		v |= SERCTLOverrun
	}
	if u.framingErr {
		v |= SERCTLFraming
	}
	if u.breakRecv {
		v |= SERCTLBreakRecv
	}
	if u.parityBit {
		v |= SERCTLParityBit
	}
	return v
}

func (u *UART) writeCtl(v byte) {
	u.intTxEnable = v&SERCTLTxIntEnable != 0
	u.intRxEnable = v&SERCTLRxIntEnable != 0
	u.parityEnable = v&SERCTLParityEnable != 0
	u.parityEven = v&SERCTLParityEven != 0

	if v&SERCTLResetErrors != 0 {
		u.overrun = false
		u.framingErr = false
		u.breakRecv = false
	}

	if v&SERCTLSendBreak != 0 {
		u.breakRecv = true
		u.pushFront(0x00)
	}
}

func (u *UART) readData() byte {
	if u.rxCount == 0 {
		return 0xFF
	}
	b := u.rxQueue[u.rxHead]
	u.rxHead = (u.rxHead + 1) % UARTQueueCapacity
	u.rxCount--
	return b
}

func (u *UART) writeData(v byte) {
	u.txByte = v
	u.txBusy = true
	u.txCountdown = UARTTxPeriodTicks
}

// pushBack queues a byte that genuinely arrived over the wire (ComlynxRx).
func (u *UART) pushBack(b byte) {
	if u.rxCount >= UARTQueueCapacity {
		u.overrun = true
		if u.owner != nil && u.owner.tracer != nil {
			u.owner.tracer.UARTByteDropped(b)
		}
		return
	}
	u.rxQueue[u.rxTail] = b
	u.rxTail = (u.rxTail + 1) % UARTQueueCapacity
	u.rxCount++
}

// pushFront queues a byte ahead of everything else already queued: used
// for the UART's self-loopback of its own transmitted byte and for BREAK.
func (u *UART) pushFront(b byte) {
	if u.rxCount >= UARTQueueCapacity {
		u.overrun = true
		if u.owner != nil && u.owner.tracer != nil {
			u.owner.tracer.UARTByteDropped(b)
		}
		return
	}
	u.rxHead = (u.rxHead - 1 + UARTQueueCapacity) % UARTQueueCapacity
	u.rxQueue[u.rxHead] = b
	u.rxCount++
}

// tick advances the TX and RX countdowns by one step (Mikey.Tick calls it
// on each timer-4 underflow) and re-derives the level-sensitive IRQ bit
// every pass.
func (u *UART) tick() {
	if u.txCountdown != uartInactive {
		if u.txCountdown == 0 {
			u.completeTx()
		} else {
			u.txCountdown--
		}
	}

	if u.rxCountdown != uartInactive {
		if u.rxCountdown == 0 {
			if len(u.rxArriving) > 0 {
				b := u.rxArriving[0]
				u.rxArriving = u.rxArriving[1:]
				u.pushBack(b)
			}
			if len(u.rxArriving) > 0 {
				u.rxCountdown = UARTInterByteGapTicks
			} else {
				u.rxCountdown = uartInactive
			}
		} else {
			u.rxCountdown--
		}
	}

	if (u.intTxEnable && u.txReady()) || (u.intRxEnable && u.rxReady()) {
		u.owner.raiseIRQ(4)
	}
}

func (u *UART) completeTx() {
	u.txCountdown = uartInactive
	b := u.txByte
	u.txBusy = false
	if u.onTransmit != nil {
		u.onTransmit(b)
	}
	// ComLynx is an open-collector bus: every node hears its own byte.
	// Self-loopback (and BREAK, see writeCtl) must be consumed ahead of
	// anything already queued from an external peer.
	u.pushFront(b)
	u.gapCountdown = UARTInterByteGapTicks
}

// Receive accepts a byte from an external ComLynx peer (spec section
// 4.4's loopback-bus stub drives this). The byte isn't visible in the RX
// queue until the RX period (and, for subsequent queued arrivals, the
// inter-byte gap) elapses in tick().
func (u *UART) Receive(b byte) {
	u.rxArriving = append(u.rxArriving, b)
	if u.rxCountdown == uartInactive {
		u.rxCountdown = UARTRxPeriodTicks
	}
}
