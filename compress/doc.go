// Package compress provides the optional second stage applied to packed Fibonacci
// payloads inside a blob.
//
// # Overview
//
// A blob stores values in two stages:
//
//  1. Fibonacci coding turns each value into a self-delimiting code word and packs
//     the code words MSB-first into bytes
//  2. A general purpose compressor may shrink the packed bytes further
//
// This package implements the second stage:
//   - None: No compression (default)
//   - Zstd: Best ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fastest decompression
//
// # Choosing an Algorithm
//
// Fibonacci code words are not byte aligned, so a repeated value only produces
// repeated bytes when its code word length lines up with byte boundaries. In practice:
//
//   - Short blobs and varied values: None, since any codec adds framing overhead
//   - Long runs of the same few values: Zstd
//   - Latency sensitive readers: LZ4 or S2
//
// Measure reports sizes and timings for a concrete payload:
//
//	stats, err := compress.Measure(format.CompressionZstd, payload)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%.1f%% saved\n", stats.SpaceSavings())
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Zstd and LZ4 keep pooled encoder state
// internally.
package compress
