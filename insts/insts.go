// Package insts provides decode-time interpretation of A32/T32 operand
// encodings.
//
// This package maps raw bitfields, already extracted from an instruction
// word by the surrounding decoder, to structured operand descriptions. It
// covers:
//   - Shift-type decoding: the 2-bit type selector plus 5-bit immediate of
//     shifted-register operands, and the register-controlled variant
//   - Scattered-immediate gathering: the i:imm3:imm8 field of T32 encodings
//     and the word-scaled 7-bit displacement field
//   - Bit-field helpers shared with the surrounding decoder
//
// Execute-time semantics (applying a decoded shift to a value, expanding a
// modified immediate to its runtime constant and carry) live in the emu
// package.
package insts

import "errors"

// ErrInvalidEncoding reports a bitfield outside its documented domain, such
// as a shift-type selector above 3 or a reversed bit range. Callers should
// treat a wrapped ErrInvalidEncoding as a decode failure for the
// instruction, not as a recoverable condition.
var ErrInvalidEncoding = errors.New("invalid encoding")
