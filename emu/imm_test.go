package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a32dec/emu"
	"github.com/sarchlab/a32dec/insts"
)

var _ = Describe("Immediate Expansion", func() {
	Describe("ARMExpandImmWithCarry", func() {
		It("should pass an unrotated immediate through", func() {
			result, carry := emu.ARMExpandImmWithCarry(0x0FF, true)

			Expect(result).To(Equal(uint32(0xFF)))
			Expect(carry).To(BeTrue())
		})

		It("should rotate by twice the selector", func() {
			// selector 4 -> rotate right 8: 0xFF lands in the top byte
			result, carry := emu.ARMExpandImmWithCarry(0x4FF, false)

			Expect(result).To(Equal(uint32(0xFF000000)))
			Expect(carry).To(BeTrue())
		})

		It("should take the carry from bit 31 of the result", func() {
			// selector 15 -> rotate right 30: 0x3F becomes 0xFC + top bits clear
			result, carry := emu.ARMExpandImmWithCarry(0xF3F, true)

			Expect(result).To(Equal(uint32(0xFC)))
			Expect(carry).To(BeFalse())
		})

		It("should not let the carry-in affect the numeric result", func() {
			withClear, _ := emu.ARMExpandImmWithCarry(0x2AB, false)
			withSet, _ := emu.ARMExpandImmWithCarry(0x2AB, true)

			Expect(emu.ARMExpandImm(0x2AB)).To(Equal(withClear))
			Expect(withSet).To(Equal(withClear))
		})
	})

	Describe("ThumbExpandImmWithCarry", func() {
		It("should zero-extend when the selector is 0", func() {
			result, carry := emu.ThumbExpandImmWithCarry(0x0AB, true)

			Expect(result).To(Equal(uint32(0xAB)))
			Expect(carry).To(BeTrue())
		})

		It("should replicate into bytes 2 and 0 for selector 1", func() {
			result, carry := emu.ThumbExpandImmWithCarry(0x1AB, false)

			Expect(result).To(Equal(uint32(0x00AB00AB)))
			Expect(carry).To(BeFalse())
		})

		It("should replicate into bytes 3 and 1 for selector 2", func() {
			result, carry := emu.ThumbExpandImmWithCarry(0x2AB, false)

			Expect(result).To(Equal(uint32(0xAB00AB00)))
			Expect(carry).To(BeFalse())
		})

		It("should replicate into all four bytes for selector 3", func() {
			result, carry := emu.ThumbExpandImmWithCarry(0x3AB, true)

			Expect(result).To(Equal(uint32(0xABABABAB)))
			Expect(carry).To(BeTrue())
		})

		It("should rotate 0x80|bits[6:0] when bits [11:10] are nonzero", func() {
			// gathered from a word with only imm3=0b100 set
			imm12 := insts.ThumbImm12(0x4000)
			Expect(imm12).To(Equal(uint32(0x400)))

			result, carry := emu.ThumbExpandImmWithCarry(imm12, false)

			Expect(result).To(Equal(uint32(0x80000000)))
			Expect(carry).To(BeTrue())
		})

		It("should rotate by bits [11:7]", func() {
			// imm12 = 0xC81: rotate 0x80|0x01 right by 25
			result, carry := emu.ThumbExpandImmWithCarry(0xC81, false)

			Expect(result).To(Equal(uint32(0x81)<<7 | 0))
			Expect(carry).To(BeFalse())
		})

		It("should not let the carry-in affect the numeric result", func() {
			withClear, _ := emu.ThumbExpandImmWithCarry(0x3AB, false)
			withSet, _ := emu.ThumbExpandImmWithCarry(0x3AB, true)

			Expect(emu.ThumbExpandImm(0x3AB)).To(Equal(withClear))
			Expect(withSet).To(Equal(withClear))
		})
	})
})
