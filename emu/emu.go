// Package emu provides execute-time semantics for A32/T32 data-processing
// operands: the five shift/rotate operations with their carry-flag side
// effects, and the two modified-immediate expansion algorithms.
//
// Every function is pure and stateless. Results are computed modulo 2^32;
// wraparound is part of the architecture-defined semantics. Carry flags are
// threaded explicitly as bool inputs and outputs; callers that only need
// the numeric result use the variants without WithCarry in the name.
package emu
