package wspr

import (
	"fmt"
	"strings"
)

// MaxPower is the highest power in dBm that can be reported in a WSPR message.
const MaxPower = 60

// PowerLevels contains the power values in dBm that are commonly accepted by WSPR decoders.
var PowerLevels = []int{0, 3, 7, 10, 13, 17, 20, 23, 27, 30, 33, 37, 40, 43, 47, 50, 53, 57, 60}

// ValidPower indicates if the given power in dBm is one of the PowerLevels.
func ValidPower(dBm int) bool {
	if dBm < 0 || dBm > MaxPower {
		return false
	}
	switch dBm % 10 {
	case 0, 3, 7:
		return true
	default:
		return false
	}
}

// Message is the packed representation of callsign, locator and power: 28 bits callsign, 15 bits locator, 7 bits
// power. The lower six bits of the last byte are always zero.
type Message [7]byte

// String renders the message as space separated hex bytes.
func (m Message) String() string {
	parts := make([]string, len(m))
	for i, b := range m {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

const spaceValue = 36

// encodeNumStr maps 0-9 to 0-9, A-Z to 10-35 and space to 36.
func encodeNumStr(b byte) (uint32, error) {
	switch {
	case isNumber(b):
		return uint32(b - '0'), nil
	case isLetter(b):
		return uint32(b-'A') + 10, nil
	case isSpace(b):
		return spaceValue, nil
	default:
		return 0, InvalidCharError{Char: b}
	}
}

// encodeLocatorChar maps A-R to 0-17.
func encodeLocatorChar(b byte) (uint32, error) {
	if !isLocatorLetter(b) {
		return 0, InvalidCharError{Char: b}
	}
	return uint32(b - 'A'), nil
}

func encodeDigit(b byte) (uint32, error) {
	if !isNumber(b) {
		return 0, InvalidCharError{Char: b}
	}
	return encodeNumStr(b)
}

// encodeSuffixChar maps A-Z to 0-25 and space to 26.
func encodeSuffixChar(b byte) (uint32, error) {
	if !isSuffix(b) {
		return 0, InvalidCharError{Char: b}
	}
	v, err := encodeNumStr(b)
	if err != nil {
		return 0, err
	}
	return v - 10, nil
}

func encodeCall(callsign string) (uint32, error) {
	if len(callsign) != 6 {
		return 0, ErrInvalidCallsign
	}

	packed, err := encodeNumStr(callsign[0])
	if err != nil {
		return 0, err
	}

	c1, err := encodeNumStr(callsign[1])
	if err != nil {
		return 0, err
	}
	if c1 == spaceValue {
		return 0, InvalidCharError{Char: callsign[1]}
	}
	packed = packed*36 + c1

	c2, err := encodeDigit(callsign[2])
	if err != nil {
		return 0, err
	}
	packed = packed*10 + c2

	for i := 3; i < 6; i++ {
		c, err := encodeSuffixChar(callsign[i])
		if err != nil {
			return 0, err
		}
		packed = packed*27 + c
	}

	return packed, nil
}

func encodeM1(locator string) (uint32, error) {
	if len(locator) != 4 {
		return 0, ErrInvalidLocator
	}

	var v [4]uint32
	var err error
	for i := range v {
		if i < 2 {
			v[i], err = encodeLocatorChar(locator[i])
		} else {
			v[i], err = encodeDigit(locator[i])
		}
		if err != nil {
			return 0, err
		}
	}

	return (179-10*v[0]-v[2])*180 + 10*v[1] + v[3], nil
}

func encodeM(locator string, dBm uint8) (uint32, error) {
	m1, err := encodeM1(locator)
	if err != nil {
		return 0, err
	}
	if dBm > MaxPower {
		return 0, ErrInvalidPower
	}
	return m1*128 + uint32(dBm) + 64, nil
}

// pack puts the 28 bit callsign n and the 22 bit locator and power m into a message.
func pack(n, m uint32) (c Message) {
	c[0] = byte((0x0FF00000 & n) >> 20)
	c[1] = byte((0x000FF000 & n) >> 12)
	c[2] = byte((0x00000FF0 & n) >> 4)
	c[3] = byte((0x0000000F&n)<<4) | byte((0x003C0000&m)>>18)
	c[4] = byte((0x0003FC00 & m) >> 10)
	c[5] = byte((0x000003FC & m) >> 2)
	c[6] = byte((0x00000003 & m) << 6)
	return
}

// NormalizeCallsign brings the given callsign into the six character form that is required for encoding: upper case,
// the digit at the third position, padded with spaces.
func NormalizeCallsign(callsign string) (string, error) {
	aligned := strings.ToUpper(strings.TrimSpace(callsign))
	if len(aligned) < 2 {
		return "", ErrInvalidCallsign
	}

	if isNumber(aligned[1]) {
		aligned = " " + aligned
	}
	if len(aligned) > 6 {
		return "", ErrInvalidCallsign
	}
	for len(aligned) < 6 {
		aligned += " "
	}

	if !(isNumber(aligned[0]) || isLetter(aligned[0]) || isSpace(aligned[0])) {
		return "", InvalidCharError{Char: aligned[0]}
	}
	if !isLetter(aligned[1]) {
		return "", InvalidCharError{Char: aligned[1]}
	}
	if !isNumber(aligned[2]) {
		return "", InvalidCharError{Char: aligned[2]}
	}
	for _, b := range []byte(aligned[3:]) {
		if !isSuffix(b) {
			return "", InvalidCharError{Char: b}
		}
	}

	return aligned, nil
}

// NormalizeLocator reduces the given Maidenhead locator with 4, 6 or 8 characters to the upper case four character
// grid square that is used in WSPR messages.
func NormalizeLocator(locator string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(locator))
	if len(normalized) != 4 && len(normalized) != 6 && len(normalized) != 8 {
		return "", ErrInvalidLocator
	}

	for i := 0; i < len(normalized); i++ {
		b := normalized[i]
		var valid bool
		switch i {
		case 0, 1:
			valid = isLocatorLetter(b)
		case 4, 5:
			valid = b >= 'A' && b <= 'X'
		default:
			valid = isNumber(b)
		}
		if !valid {
			return "", InvalidCharError{Char: b}
		}
	}

	return normalized[:4], nil
}

func isNumber(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isLocatorLetter(b byte) bool {
	return b >= 'A' && b <= 'R'
}

func isSpace(b byte) bool {
	return b == ' '
}

func isSuffix(b byte) bool {
	return isLetter(b) || isSpace(b)
}
