// This file is part of EE.
//
// EE is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// EE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with EE.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/d100/ee/disassembly"
)

// instructionSet returns the handlers for every documented opcode. Each
// handler decodes the register, pair or condition fields from the opcode
// itself so the same handler serves every opcode in a group.
func instructionSet() [256]Handler {
	var h [256]Handler

	h[0x00] = nop

	// 00rp0001 LXI, 00rp0011 INX, 00rp1001 DAD, 00rp1011 DCX
	for rp := uint8(0); rp < 4; rp++ {
		h[0x01|rp<<4] = lxi
		h[0x03|rp<<4] = inx
		h[0x09|rp<<4] = dad
		h[0x0b|rp<<4] = dcx
	}

	// 00ddd100 INR, 00ddd101 DCR, 00ddd110 MVI
	for r := uint8(0); r < 8; r++ {
		h[0x04|r<<3] = inr
		h[0x05|r<<3] = dcr
		h[0x06|r<<3] = mvi
	}

	h[0x02] = stax
	h[0x12] = stax
	h[0x0a] = ldax
	h[0x1a] = ldax
	h[0x22] = shld
	h[0x2a] = lhld
	h[0x32] = sta
	h[0x3a] = lda

	h[0x07] = rlc
	h[0x0f] = rrc
	h[0x17] = ral
	h[0x1f] = rar
	h[0x27] = daa
	h[0x2f] = cma
	h[0x37] = stc
	h[0x3f] = cmc

	// 01dddsss MOV. the encoding for MOV M,M is HLT
	for op := 0x40; op <= 0x7f; op++ {
		h[op] = mov
	}
	h[0x76] = hlt

	// 10aaasss arithmetic and logic with register and 11aaa110 with immediate
	for op := 0x80; op <= 0xbf; op++ {
		h[op] = alu
	}
	for a := uint8(0); a < 8; a++ {
		h[0xc6|a<<3] = alui
	}

	// 11ccc000 Rcc, 11ccc010 Jcc, 11ccc100 Ccc, 11nnn111 RST
	for c := uint8(0); c < 8; c++ {
		h[0xc0|c<<3] = rcc
		h[0xc2|c<<3] = jcc
		h[0xc4|c<<3] = ccc
		h[0xc7|c<<3] = rst
	}

	// 11rp0001 POP, 11rp0101 PUSH
	for rp := uint8(0); rp < 4; rp++ {
		h[0xc1|rp<<4] = pop
		h[0xc5|rp<<4] = push
	}

	h[0xc3] = jmp
	h[0xc9] = ret
	h[0xcd] = call
	h[0xe3] = xthl
	h[0xe9] = pchl
	h[0xeb] = xchg
	h[0xf9] = sphl
	h[0xf3] = di
	h[0xfb] = ei
	h[0xd3] = out
	h[0xdb] = in

	return h
}

// advance the program counter past the instruction and return the base
// number of cycles. the common ending of most handlers
func next(mc *CPU, ins disassembly.Instruction) int {
	mc.PC.Add(uint16(ins.Length))
	return ins.Cycles
}

func nop(mc *CPU, ins disassembly.Instruction) int {
	return next(mc, ins)
}

func hlt(mc *CPU, ins disassembly.Instruction) int {
	mc.Halt()
	return next(mc, ins)
}

func ei(mc *CPU, ins disassembly.Instruction) int {
	mc.Flags.InterruptEnable = true
	return next(mc, ins)
}

func di(mc *CPU, ins disassembly.Instruction) int {
	mc.Flags.InterruptEnable = false
	return next(mc, ins)
}

// the generic IN and OUT instructions are not connected to anything. machines
// should install overrides
func in(mc *CPU, ins disassembly.Instruction) int {
	mc.A.Load(0)
	return next(mc, ins)
}

func out(mc *CPU, ins disassembly.Instruction) int {
	return next(mc, ins)
}
