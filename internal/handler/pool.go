package handler

import (
	"bytes"
	"sync"
)

// responseBufCap sizes new encode buffers. Most payloads here are a single
// entity or a short list, so 1KB covers them without a grow.
const responseBufCap = 1024

// Oversized buffers are not pooled again; one huge list response should not
// pin its allocation for the life of the process.
const responseBufMax = 64 * 1024

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufCap))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > responseBufMax {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
