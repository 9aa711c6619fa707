// Package ryu converts binary floating point numbers to the shortest decimal
// that reads back as the same bits.
//
// The conversion follows Ulf Adams' Ryu algorithm. It only uses 64-bit
// integer arithmetic and a table of powers of five, so the output is the
// same on every platform and no allocation happens on the formatting paths.
//
// Guarantees
//
// For every finite input the digits produced:
//
//  1. parse back to exactly the input (round trip),
//  2. are as few as possible (shortest),
//  3. are the closest to the exact binary value among the shortest
//     candidates, with ties going to the even digit.
//
// Notations
//
// Two renderings are provided. The scientific one matches the reference C
// library byte for byte:
//
//  | Input                  | D2S / F2S                 | Pretty64 / Pretty32     |
//  |------------------------|---------------------------|-------------------------|
//  | 1.234                  | 1.234E0                   | 1.234                   |
//  | 12340000000            | 1.234E10                  | 12340000000.0           |
//  | 0.001234               | 1.234E-3                  | 0.001234                |
//  | 1e30                   | 1E30                      | 1e30                    |
//  | 1.234e33               | 1.234E33                  | 1.234e33                |
//  | 0 / -0                 | 0E0 / -0E0                | 0.0 / -0.0              |
//  | +Inf / -Inf            | Infinity / -Infinity      | inf / -inf              |
//  | NaN                    | NaN                       | NaN                     |
//  |------------------------|---------------------------|-------------------------|
//
// The pretty notation writes up to 16 integer digits (13 for float32) before
// switching to an exponent, and up to four zeros after the decimal point.
//
// Buffers
//
// The *Buffered functions write into a caller supplied slice of at least
// MaxLen64 or MaxLen32 bytes and panic if it is shorter. Buffer owns such an
// array and hands out views of it:
//
//  var b ryu.Buffer
//  os.Stdout.Write(b.Format(0.3)) // 0.3
//
// Power table
//
// By default the full table of 668 128-bit entries is compiled in. Building
// with the ryu_small tag swaps it for a table of 28 anchors and correction
// bits that computes entries on demand. Output is identical.
package ryu
