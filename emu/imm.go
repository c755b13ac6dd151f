package emu

import "github.com/sarchlab/a32dec/insts"

// ARMExpandImmWithCarry expands an A32 modified immediate to its 32-bit
// runtime value and carry flag. The low 8 bits of imm12 are the immediate
// and the high 4 bits select a rotation of twice their value. A zero
// rotation passes the carry through; otherwise the carry-out is bit 31 of
// the result.
func ARMExpandImmWithCarry(imm12 uint32, carryIn bool) (uint32, bool) {
	imm := imm12 & 0xFF
	amount := 2 * ((imm12 >> 8) & 0xF)
	if amount == 0 {
		return imm, carryIn
	}
	result := insts.RotateRight32(imm, amount)
	return result, result>>31 == 1
}

// ARMExpandImm expands an A32 modified immediate to its 32-bit runtime
// value. The carry-in never affects the numeric result.
func ARMExpandImm(imm12 uint32) uint32 {
	result, _ := ARMExpandImmWithCarry(imm12, false)
	return result
}

// ThumbExpandImmWithCarry expands a T32 modified immediate to its 32-bit
// runtime value and carry flag. The 12-bit field is the gathered i:imm3:imm8
// value (see insts.ThumbImm12). When bits [11:10] are zero, bits [9:8]
// select a byte-replication pattern and the carry passes through; otherwise
// bits [11:7] rotate 0x80|bits[6:0] and the carry-out is bit 31 of the
// result.
func ThumbExpandImmWithCarry(imm12 uint32, carryIn bool) (uint32, bool) {
	if (imm12>>10)&0x3 == 0 {
		imm8 := imm12 & 0xFF
		var result uint32
		switch (imm12 >> 8) & 0x3 {
		case 0b00:
			result = imm8
		case 0b01:
			result = imm8<<16 | imm8
		case 0b10:
			result = imm8<<24 | imm8<<8
		case 0b11:
			result = imm8<<24 | imm8<<16 | imm8<<8 | imm8
		}
		return result, carryIn
	}
	unrotated := 0x80 | (imm12 & 0x7F)
	result := insts.RotateRight32(unrotated, (imm12>>7)&0x1F)
	return result, result>>31 == 1
}

// ThumbExpandImm expands a T32 modified immediate to its 32-bit runtime
// value. The carry-in never affects the numeric result.
func ThumbExpandImm(imm12 uint32) uint32 {
	result, _ := ThumbExpandImmWithCarry(imm12, false)
	return result
}
