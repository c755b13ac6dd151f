package insts

// ThumbImm12 gathers the scattered i:imm3:imm8 immediate of a 32-bit T32
// instruction word into a single 12-bit value, without expansion: word bit
// 26 becomes bit 11, word bits [14:12] become bits [10:8], and word bits
// [7:0] become bits [7:0]. Instructions whose immediate is used directly
// take this value as-is; instructions with a modified immediate pass it to
// emu.ThumbExpandImmWithCarry.
func ThumbImm12(word uint32) uint32 {
	i := (word >> 26) & 0x1
	imm3 := (word >> 12) & 0x7
	imm8 := word & 0xFF
	return i<<11 | imm3<<8 | imm8
}

// ThumbImmScaled extracts the 7-bit immediate in word bits [6:0] and scales
// it by 4, for the SP-relative and PC-relative displacement encodings that
// are always word-aligned.
func ThumbImmScaled(word uint32) uint32 {
	imm7 := word & 0x7F
	return imm7 * 4
}
