package cacheinfra

import (
	"github.com/vmihailenco/msgpack/v5"
)

// estimateSize returns the msgpack-encoded length of value. Values msgpack cannot
// encode count as zero.
func estimateSize(value any) int64 {
	if value == nil {
		return 0
	}
	b, err := msgpack.Marshal(value)
	if err != nil {
		return 0
	}
	return int64(len(b))
}
