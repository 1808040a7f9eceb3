// Package rand generates short random identifier tokens for session
// entities (documents, groups, gradients). Tokens are not security
// sensitive; they only need to be cheap and unlikely to collide, and the
// allocator re-draws on the rare collision anyway.
package rand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	charsetLen = len(charset)

	mu  sync.Mutex
	rng = newRNG()
)

func newRNG() *rand.Rand {
	var seed [16]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		panic("unreachable")
	}
	//nolint:gosec // identifier tokens, not secrets
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}

// Token returns a random lowercase alphanumeric string of the given length.
func Token(length int) string {
	buf := make([]byte, length)

	mu.Lock()
	for i := range buf {
		buf[i] = charset[rng.IntN(charsetLen)]
	}
	mu.Unlock()

	return string(buf)
}
