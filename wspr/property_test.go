package wspr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const (
	alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ "
	digits       = "0123456789"
	fieldChars   = "ABCDEFGHIJKLMNOPQR"
)

func drawChar(t *rapid.T, alphabet string, label string) byte {
	return rapid.SampledFrom([]byte(alphabet)).Draw(t, label)
}

func drawStation(t *rapid.T) Station {
	callsign := []byte{
		drawChar(t, alphanumeric+" ", "c0"),
		drawChar(t, alphanumeric, "c1"),
		drawChar(t, digits, "c2"),
		drawChar(t, suffixChars, "c3"),
		drawChar(t, suffixChars, "c4"),
		drawChar(t, suffixChars, "c5"),
	}
	locator := []byte{
		drawChar(t, fieldChars, "l0"),
		drawChar(t, fieldChars, "l1"),
		drawChar(t, digits, "l2"),
		drawChar(t, digits, "l3"),
	}
	dBm := rapid.Uint8Range(0, MaxPower).Draw(t, "dBm")

	return NewStation(string(callsign), string(locator), dBm)
}

func TestEncodeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		station := drawStation(t)

		transmission, err := station.Encode()
		require.NoError(t, err)
		assert.Len(t, transmission, SymbolCount)

		for i, s := range transmission {
			assert.LessOrEqual(t, s, Sym3, "symbol %d out of range", i)
			assert.Equal(t, syncWord[i], byte(s)&0x01, "sync bit %d", i)
		}

		again, err := station.Encode()
		require.NoError(t, err)
		assert.Equal(t, transmission, again, "encoding is not deterministic")
	})
}

func TestMessageProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		station := drawStation(t)

		msg, err := station.Message()
		require.NoError(t, err)
		assert.Len(t, msg, 7)
		assert.Equal(t, byte(0), msg[6]&0x3F, "padding bits are not zero")

		n, err := encodeCall(station.Callsign())
		require.NoError(t, err)
		assert.Less(t, n, uint32(1)<<28)

		m, err := encodeM(station.Locator(), station.DBm())
		require.NoError(t, err)
		assert.Less(t, m, uint32(1)<<22)
	})
}

func TestInvalidCallsignLengthComesFirst(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		callsign := rapid.SliceOfN(rapid.Byte(), 0, 12).Filter(func(b []byte) bool { return len(b) != 6 }).Draw(t, "callsign")
		locator := rapid.StringN(0, 8, 8).Draw(t, "locator")
		dBm := rapid.Uint8().Draw(t, "dBm")

		_, err := NewStation(string(callsign), locator, dBm).Encode()
		assert.Equal(t, ErrInvalidCallsign, err)
	})
}

func TestInvalidCharIsReported(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		station := drawStation(t)
		invalid := rapid.SampledFrom([]byte("!#$%&/-_.,:;?abcxyz\x00\x7f\xff")).Draw(t, "invalid")

		callsign := []byte(station.Callsign())
		locator := []byte(station.Locator())
		pos := rapid.IntRange(0, len(callsign)+len(locator)-1).Draw(t, "pos")
		if pos < len(callsign) {
			callsign[pos] = invalid
		} else {
			locator[pos-len(callsign)] = invalid
		}

		_, err := NewStation(string(callsign), string(locator), station.DBm()).Encode()
		assert.Equal(t, InvalidCharError{Char: invalid}, err)
	})
}
