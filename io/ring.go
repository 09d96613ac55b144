package io

const (
	// RING_DEFAULT_CAPACITY is the default capacity in bytes for a new ring.
	RING_DEFAULT_CAPACITY = 4096
)

// Ring is a circular output buffer that keeps the most recent Capacity
// bytes written to it.
type Ring struct {
	Capacity int

	WriteIndex int // Total bytes written since Rewind.
	Data       []byte
}

// Rewind discards all data. Initializes the data buffer if not already
// allocated.
func (ring *Ring) Rewind() {
	if ring.Capacity <= 0 {
		ring.Capacity = RING_DEFAULT_CAPACITY
	}
	if cap(ring.Data) != ring.Capacity {
		ring.Data = make([]byte, 0, ring.Capacity)
	}

	ring.Data = ring.Data[:0]
	ring.WriteIndex = 0
}

// Write appends p to the ring, overwriting the oldest data once full.
// It never fails.
func (ring *Ring) Write(p []byte) (n int, err error) {
	if ring.Data == nil {
		ring.Rewind()
	}

	for _, value := range p {
		if len(ring.Data) < ring.Capacity {
			ring.Data = append(ring.Data, value)
		} else {
			ring.Data[ring.WriteIndex%ring.Capacity] = value
		}
		ring.WriteIndex++
	}

	n = len(p)
	return
}

// Len is the number of bytes held.
func (ring *Ring) Len() int {
	return len(ring.Data)
}

// Dropped is the number of bytes overwritten.
func (ring *Ring) Dropped() int {
	return ring.WriteIndex - len(ring.Data)
}

// Bytes returns the held data, oldest first.
func (ring *Ring) Bytes() (data []byte) {
	if len(ring.Data) < ring.Capacity {
		return append(data, ring.Data...)
	}

	head := ring.WriteIndex % ring.Capacity
	data = append(data, ring.Data[head:]...)
	data = append(data, ring.Data[:head]...)
	return
}

func (ring *Ring) String() string {
	return string(ring.Bytes())
}
