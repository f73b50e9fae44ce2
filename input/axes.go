package input

import (
	"math"
	"sync/atomic"
)

// AxisTable is an AxisSource backed by atomically updated slots. A platform
// layer writes it from its own thread; processors read it on the logic thread.
type AxisTable struct {
	values    [AxisCount]atomic.Uint64
	available [AxisCount]atomic.Bool
}

// Set stores v for a and marks it available.
func (t *AxisTable) Set(a InputAxis, v float64) {
	if !a.Valid() {
		return
	}
	t.values[a].Store(math.Float64bits(v))
	t.available[a].Store(true)
}

// Add accumulates v into a, for relative axes such as the wheel.
func (t *AxisTable) Add(a InputAxis, v float64) {
	if !a.Valid() {
		return
	}
	for {
		old := t.values[a].Load()
		next := math.Float64bits(math.Float64frombits(old) + v)
		if t.values[a].CompareAndSwap(old, next) {
			break
		}
	}
	t.available[a].Store(true)
}

// Clear marks a unavailable, as when its gamepad disconnects.
func (t *AxisTable) Clear(a InputAxis) {
	if !a.Valid() {
		return
	}
	t.available[a].Store(false)
	t.values[a].Store(0)
}

// ClearDevice marks every axis of device unavailable.
func (t *AxisTable) ClearDevice(device InputDevice) {
	for a := InputAxis(1); int(a) < AxisCount; a++ {
		if a.Device() == device {
			t.Clear(a)
		}
	}
}

// Value returns the stored value of a regardless of its device.
func (t *AxisTable) Value(a InputAxis) (float64, bool) {
	if !a.Valid() || !t.available[a].Load() {
		return 0, false
	}
	return math.Float64frombits(t.values[a].Load()), true
}

// CheckAxisState implements AxisSource. An axis only resolves on the device
// that owns it.
func (t *AxisTable) CheckAxisState(device InputDevice, axis InputAxis) (float64, bool) {
	if axis.Device() != device {
		return 0, false
	}
	return t.Value(axis)
}
