package insts

import "fmt"

// ShiftType represents a shift or rotate operation applied to a register
// operand.
type ShiftType uint8

// Shift types. The first four match the 2-bit encoding of the type
// selector; ShiftRRX is never encoded directly and is produced only by
// DecodeImmShift for the type=0b11, imm5=0 case.
const (
	ShiftLSL ShiftType = 0b00 // Logical shift left
	ShiftLSR ShiftType = 0b01 // Logical shift right
	ShiftASR ShiftType = 0b10 // Arithmetic shift right
	ShiftROR ShiftType = 0b11 // Rotate right
	ShiftRRX ShiftType = 4    // Rotate right with extend (carry into bit 31)
)

// String returns the assembler mnemonic for the shift type.
func (t ShiftType) String() string {
	switch t {
	case ShiftLSL:
		return "LSL"
	case ShiftLSR:
		return "LSR"
	case ShiftASR:
		return "ASR"
	case ShiftROR:
		return "ROR"
	case ShiftRRX:
		return "RRX"
	}
	return fmt.Sprintf("ShiftType(%d)", uint8(t))
}

// ShiftOperand is a decoded immediate-shift specifier: a shift type and a
// normalized amount. Amount is 1..32 for LSR and ASR, 0..31 for LSL and
// ROR, and exactly 1 for RRX.
type ShiftOperand struct {
	Type   ShiftType
	Amount uint32
}

// DecodeImmShift decodes the type:imm5 fields of a shifted-register
// operand. An imm5 of zero selects the encoding-specific special case:
// a 32-position shift for LSR and ASR, and RRX (amount 1) for ROR.
func DecodeImmShift(typeCode, imm5 uint32) (ShiftOperand, error) {
	switch typeCode {
	case 0b00:
		return ShiftOperand{Type: ShiftLSL, Amount: imm5}, nil
	case 0b01:
		if imm5 == 0 {
			return ShiftOperand{Type: ShiftLSR, Amount: 32}, nil
		}
		return ShiftOperand{Type: ShiftLSR, Amount: imm5}, nil
	case 0b10:
		if imm5 == 0 {
			return ShiftOperand{Type: ShiftASR, Amount: 32}, nil
		}
		return ShiftOperand{Type: ShiftASR, Amount: imm5}, nil
	case 0b11:
		if imm5 == 0 {
			return ShiftOperand{Type: ShiftRRX, Amount: 1}, nil
		}
		return ShiftOperand{Type: ShiftROR, Amount: imm5}, nil
	}
	return ShiftOperand{}, fmt.Errorf("shift type %d out of range: %w",
		typeCode, ErrInvalidEncoding)
}

// DecodeRegShift decodes the type field of a register-controlled shift.
// Register-controlled shifts have no RRX form, so the selector maps
// directly to LSL, LSR, ASR, or ROR.
func DecodeRegShift(typeCode uint32) (ShiftType, error) {
	switch typeCode {
	case 0b00:
		return ShiftLSL, nil
	case 0b01:
		return ShiftLSR, nil
	case 0b10:
		return ShiftASR, nil
	case 0b11:
		return ShiftROR, nil
	}
	return 0, fmt.Errorf("shift type %d out of range: %w",
		typeCode, ErrInvalidEncoding)
}
