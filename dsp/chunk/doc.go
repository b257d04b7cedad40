// Package chunk generates and processes a signal in bounded pieces so a
// caller can follow progress and cancel between pieces.
//
// A [Driver] runs each [Request] as a [Job] on its own goroutine. Chunks are
// handled strictly in order and the filter history of the active
// configuration is carried from one chunk to the next, so the result equals
// whole-buffer processing. Configurations that need the whole buffer are
// applied once after the last chunk.
//
// Cancellation is cooperative: the context is checked before every chunk.
package chunk
