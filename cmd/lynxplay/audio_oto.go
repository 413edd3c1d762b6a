// audio_oto.go - Oto v3 pull-model audio output. The core produces audio
// in per-frame batches (Core.RunFrame().Audio); otoPlayer buffers those
// batches into a ring and oto.Player.Read drains it at its own pace.
//
// Grounded on the teacher's OtoPlayer (oto.NewContextOptions with
// FormatFloat32LE, mono, pull-model Read(p []byte)), adapted from the
// teacher's atomic.Pointer[SoundChip] single-producer-single-consumer
// pattern to a mutex-guarded []int16 ring since lynxplay pushes whole
// frame batches rather than sampling a live chip on demand.
package main

import (
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/TheAnsarya/nexen"
)

type otoPlayer struct {
	ctx    *oto.Context
	player *oto.Player

	mu  sync.Mutex
	buf []int16
}

func newOtoPlayer() (*otoPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   lynx.AudioSampleRateHz,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	p := &otoPlayer{ctx: ctx}
	p.player = ctx.NewPlayer(p)
	p.player.Play()
	return p, nil
}

// attach is a no-op placeholder mirroring the teacher's SetupPlayer split
// between construction and wiring; lynxplay's player is fed directly
// through push() each frame rather than holding a live chip reference.
func (p *otoPlayer) attach(core *lynx.Core) {}

// push appends one frame's worth of mono PCM samples to the playback
// ring. Called once per RunFrame from the active frontend.
func (p *otoPlayer) push(samples []int16) {
	if len(samples) == 0 {
		return
	}
	p.mu.Lock()
	p.buf = append(p.buf, samples...)
	// Cap the ring so a frontend that stalls doesn't grow this forever;
	// a few frames of latency is inaudible but unbounded growth isn't.
	const maxBuffered = lynx.AudioSampleRateHz / 2
	if len(p.buf) > maxBuffered {
		p.buf = p.buf[len(p.buf)-maxBuffered:]
	}
	p.mu.Unlock()
}

// Read implements io.Reader for oto.Player, converting buffered int16
// samples to little-endian float32 in [-1, 1] as they drain.
func (p *otoPlayer) Read(out []byte) (int, error) {
	numSamples := len(out) / 4

	p.mu.Lock()
	n := numSamples
	if n > len(p.buf) {
		n = len(p.buf)
	}
	chunk := append([]int16(nil), p.buf[:n]...)
	p.buf = p.buf[n:]
	p.mu.Unlock()

	for i := 0; i < numSamples; i++ {
		var sample float32
		if i < len(chunk) {
			sample = float32(chunk[i]) / 32768.0
		}
		putFloat32LE(out[i*4:i*4+4], sample)
	}
	return len(out), nil
}

func putFloat32LE(b []byte, f float32) {
	bits := math.Float32bits(f)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}
