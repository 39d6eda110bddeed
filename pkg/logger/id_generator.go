package logger

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

type IDGenerator interface {
	NewLogID(ctx context.Context) LogID
}

// randomIDGenerator is shared by all router workers; ChaCha8 is not safe for
// concurrent use so reads are serialized.
type randomIDGenerator struct {
	mu         sync.Mutex
	randSource *rand.ChaCha8
}

var _ IDGenerator = &randomIDGenerator{}

// NewLogID returns a non-zero log ID from a randomly-chosen sequence.
func (gen *randomIDGenerator) NewLogID(context.Context) LogID {
	gen.mu.Lock()
	defer gen.mu.Unlock()

	sid := LogID{}
	for {
		_, _ = gen.randSource.Read(sid[:])
		if sid.IsValid() {
			break
		}
	}
	return sid
}

func defaultIDGenerator() IDGenerator {
	var seed [32]byte
	_ = binary.Read(crand.Reader, binary.LittleEndian, &seed)
	return &randomIDGenerator{randSource: rand.NewChaCha8(seed)}
}
