// Package memview gives typed access to fixed-offset fields inside memory
// owned by the host process. All raw-pointer arithmetic in the module lives
// here; callers only ever see typed reads and writes at named offsets.
package memview

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// View reads and writes 32-bit fields at byte offsets from some base.
// The base is externally owned; a View performs no bounds or validity
// checking beyond what its implementation can afford.
type View interface {
	Float32(off uintptr) float32
	PutFloat32(off uintptr, v float32)
	Uint32(off uintptr) uint32
}

// Raw is a View over a live address inside the host process. The address
// must stay valid for the duration of every call; that is the caller's
// contract, not Raw's.
type Raw uintptr

var _ View = Raw(0)

func (r Raw) Float32(off uintptr) float32 {
	return *(*float32)(unsafe.Pointer(uintptr(r) + off))
}

func (r Raw) PutFloat32(off uintptr, v float32) {
	*(*float32)(unsafe.Pointer(uintptr(r) + off)) = v
}

func (r Raw) Uint32(off uintptr) uint32 {
	return *(*uint32)(unsafe.Pointer(uintptr(r) + off))
}

// Buffer is a View over a byte slice, laid out little-endian like the host
// process memory it stands in for. Used by tests and the simulator.
type Buffer []byte

var _ View = Buffer(nil)

func (b Buffer) Float32(off uintptr) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func (b Buffer) PutFloat32(off uintptr, v float32) {
	binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v))
}

func (b Buffer) Uint32(off uintptr) uint32 {
	return binary.LittleEndian.Uint32(b[off:])
}

func (b Buffer) PutUint32(off uintptr, v uint32) {
	binary.LittleEndian.PutUint32(b[off:], v)
}
