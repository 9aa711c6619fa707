// Package control frames binary payloads in prefix coded control blocks.
//
// The first byte of every field is a control byte. Its leading zero bits select
// the block type and the remaining bits carry either data or a size. Small
// payloads fit entirely inside the control byte so a typical short decimal
// costs one or two bytes on the wire.
//
// Control Block
//
// Fixed bits are filled in, blanks carry data or size:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                       |
//  |---------------|---------------||----------------|---------------------------------------|
//  | 1 |                           || Data           | 7 bits in the control byte            |
//  | 0 . 1 |                       || Data Size      | 1 to 64 payload bytes follow          |
//  | 0 . 0 . 1 |                   || Data + 1       | 5 + 8 = 13 bits                       |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 4 + 8 + 8 = 20 bits                   |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 1 to 8 size bytes, then the payload   |
//  | 0 . 0 . 0 . 0 . 0 . x . x . x || (reserved)     |                                       |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | Empty value                           |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (for nullable fields)      |
//  |---------------|---------------||----------------|---------------------------------------|
//
// Sizes are stored minus one so zero length payloads cannot be written; use
// Empty for those.
//
// The encoder always picks the smallest block: a payload of one byte below
// 0x80 becomes a Data block, two bytes whose first byte is below 0x20 a Data +
// 1 block and so on. Payloads are expected to be minimal big-endian integers,
// which is what math/big produces.
//
// Data Size Size payloads are limited to MaxDataSize bytes.
package control
