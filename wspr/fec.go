package wspr

import "math/bits"

const (
	polynom1 = uint32(0xf2d05351)
	polynom2 = uint32(0xe4613c47)
)

// the message is padded with zeros to flush the shift registers
const paddedMessageSize = 11

var syncWord = [SymbolCount]byte{
	1, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0,
	0, 0, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 0, 1, 1, 0, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0,
	1, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 0, 1,
	1, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 1, 0, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0,
}

// convolve applies the rate 1/2, K=32 convolutional code to the message. The output is cut off after 162 bits.
func convolve(msg Message) (parity [SymbolCount]byte) {
	var c [paddedMessageSize]byte
	copy(c[:], msg[:])

	var reg0, reg1 uint32

	parityIndex := 0
	for i := 0; i < len(c); i++ {
		for j := 7; j >= 0; j-- {
			bit := uint32((c[i] >> uint8(j)) & 0x01)
			reg0 = (reg0 << 1) | bit
			reg1 = (reg1 << 1) | bit

			parity[parityIndex] = parityOf(reg0 & polynom1)
			parityIndex++
			parity[parityIndex] = parityOf(reg1 & polynom2)
			parityIndex++

			if parityIndex >= len(parity) {
				return
			}
		}
	}
	return
}

func parityOf(v uint32) byte {
	return byte(bits.OnesCount32(v) & 0x01)
}

// interleave reorders the parity bits by bit reversed addressing.
func interleave(parity [SymbolCount]byte) (interleaved [SymbolCount]byte) {
	p := 0
	for k := 0; k < 255 && p < len(parity); k++ {
		j := int(bits.Reverse8(uint8(k)))
		if j < len(interleaved) {
			interleaved[j] = parity[p]
			p++
		}
	}
	return
}

// synchronize merges the interleaved data bits with the sync word: symbol = 2*data + sync.
func synchronize(interleaved [SymbolCount]byte) (transmission Transmission) {
	for i := range transmission {
		transmission[i] = Symbols[syncWord[i]+2*interleaved[i]]
	}
	return
}
