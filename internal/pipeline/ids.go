package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// IDs are 26-character Crockford Base32 strings: a 48-bit millisecond
// timestamp followed by 80 random bits. Lexicographic order tracks
// creation time, which keeps job and document listings stable.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewID returns a fresh sortable identifier.
func NewID() string {
	var b [16]byte

	ts := uint64(time.Now().UnixMilli())
	for i := 5; i >= 0; i-- {
		b[i] = byte(ts)
		ts >>= 8
	}
	if _, err := rand.Read(b[6:]); err != nil {
		// crypto/rand never fails on supported platforms, but a
		// nanosecond fallback beats a zeroed suffix.
		binary.BigEndian.PutUint64(b[8:], uint64(time.Now().UnixNano()))
	}
	return encodeBase32(b)
}

// encodeBase32 packs 128 bits into 26 base32 characters, top bits
// zero-padded.
func encodeBase32(b [16]byte) string {
	var out [26]byte
	var acc uint64
	var bits int
	pos := len(out) - 1
	for i := len(b) - 1; i >= 0; i-- {
		acc |= uint64(b[i]) << bits
		bits += 8
		for bits >= 5 && pos > 0 {
			out[pos] = crockford[acc&31]
			acc >>= 5
			bits -= 5
			pos--
		}
	}
	for pos >= 0 {
		out[pos] = crockford[acc&31]
		acc >>= 5
		pos--
	}
	return string(out[:])
}
