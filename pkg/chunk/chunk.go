// Package chunk frames values for the streaming RPCs. A value is split into
// ordered fixed-size pieces on the sending side and reassembled in arrival
// order on the receiving side; reassembly must reproduce the value
// bit-identically for any split.
package chunk

// DefaultSize is the frame size used when none is configured. Values at or
// above one frame travel over the streaming RPCs instead of a single message.
const DefaultSize = 1 << 20

// Split cuts value into ordered chunks of at most size bytes. The final chunk
// carries the remainder. An empty value yields no chunks; size must be
// positive.
func Split(value []byte, size int) [][]byte {
	if size <= 0 {
		size = DefaultSize
	}
	var chunks [][]byte
	for len(value) > size {
		chunks = append(chunks, value[:size])
		value = value[size:]
	}
	if len(value) > 0 {
		chunks = append(chunks, value)
	}
	return chunks
}

// Assemble concatenates chunks in order into a single value.
func Assemble(chunks [][]byte) []byte {
	var n int
	for _, c := range chunks {
		n += len(c)
	}
	value := make([]byte, 0, n)
	for _, c := range chunks {
		value = append(value, c...)
	}
	return value
}
