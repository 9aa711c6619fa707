// Package decimal provides a compact binary encoding for base 10 numbers,
// typically the shortest decimal form of a float.
//
// A decimal number is:
//
//  number = value * 10 ^ scale
//
// For example:
//
//  1.23 = 123 * 10^-2
//
// FromFloat64 and FromFloat32 pick the value with the fewest digits that
// still reads back as the original float, so 0.1 costs two bytes instead of
// the eight of an IEEE double.
//
// Encoding
//
// The unscaled value comes first (with a trailing sign bit), then the scale
// (with a trailing sign bit), and finally two bits of scale size. The whole is
// one big-endian integer without leading zero bytes, framed by a control
// block.
//
// The scale size is encoded as two bits:
//
//  | 0 | 1 | Scale bits | Available Scale |
//  |-------|------------|-----------------|
//  | 0 . 0 | 0          | 0               |
//  | 0 . 1 | 6          | ±31             |
//  | 1 . 0 | 14         | ±8191           |
//  | 1 . 1 | 22         | ±2097151        |
//  |-------|------------|-----------------|
//
// The smallest size that holds the scale is always used; decoding rejects
// anything else so every number has exactly one encoding.
//
// Examples
//
// 15 (1 byte)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 1 | 1 . 1 . 1 . 1 | 0 | 0 . 0 | Data block: value +15, no scale.
//  |---------------|---------------|
//
// 0.0001 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 1 | 0 . 0 . 0 . 1 | 0 | Data + 1 block: value +1.
//  |-------------------------------|
//  | 0 . 0 . 1 . 0 . 0 | 1 | 0 . 1 | 6 bit scale of -4.
//  |---------------|---------------|
//
// 20.47 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 1 | 1 . 1 . 1 . 1 | Data + 2 block: value +2047.
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 | 0 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 1 . 0 | 1 | 0 . 1 | 6 bit scale of -2.
//  |---------------|---------------|
//
// The largest float64, 17976931348623157 * 10^292, takes 10 bytes.
package decimal
