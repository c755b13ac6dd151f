package insts

import (
	"fmt"
	"math/bits"
)

// Bits extracts the inclusive bit range [msb:lsb] of value, right-justified.
// Both indices must be within 0..31 and msb must not be below lsb.
func Bits(value uint32, msb, lsb uint32) (uint32, error) {
	if msb > 31 || lsb > 31 || msb < lsb {
		return 0, fmt.Errorf("bit range [%d:%d] out of range: %w",
			msb, lsb, ErrInvalidEncoding)
	}
	mask := uint32(0xFFFFFFFF) >> (31 - (msb - lsb))
	return (value >> lsb) & mask, nil
}

// Bit extracts the single bit at index, as 0 or 1.
func Bit(value uint32, index uint32) (uint32, error) {
	return Bits(value, index, index)
}

// RotateRight32 rotates value right by amount within 32 bits. The amount is
// taken modulo 32, so rotating by 0 or 32 returns the value unchanged.
func RotateRight32(value, amount uint32) uint32 {
	return bits.RotateLeft32(value, -int(amount))
}

// BadReg reports whether n names a register that shifted-register and many
// other T32 operand positions forbid: SP (13) or PC (15).
func BadReg(n uint32) bool {
	return n == 13 || n == 15
}
