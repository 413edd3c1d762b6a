// comlynx_bus.go - a minimal loopback bus connecting two or more Cores'
// UARTs, for testing multi-unit ComLynx link play without real hardware.
//
// Grounded on the teacher's machine_bus.go style of a small shared
// mediator object wiring independent components together, adapted from
// memory-mapped I/O to ComLynx's actual topology: an open-collector bus
// where every transmitted byte is heard by every other node.
package lynx

// ComlynxBus fans a byte transmitted by any attached Core out to every
// other attached Core's UART receiver. It does not model line contention
// or timing skew between nodes; every transmission is delivered
// instantly to all peers.
type ComlynxBus struct {
	peers []*Core
}

// NewComlynxBus constructs an empty bus.
func NewComlynxBus() *ComlynxBus { return &ComlynxBus{} }

// Attach wires core into the bus and installs the transmit hook that
// fans its outgoing bytes out to every peer already/later attached.
func (b *ComlynxBus) Attach(core *Core) {
	b.peers = append(b.peers, core)
	core.OnComlynxTx(func(v byte) {
		for _, peer := range b.peers {
			if peer != core {
				peer.ComlynxRx(v)
			}
		}
	})
}
