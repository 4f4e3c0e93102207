/*
Package wspr implements the transmit side of the WSPR digital mode: it turns a station's callsign, locator and power
into the 162 channel symbols of a WSPR transmission.

This implementation is based on G4JNT's description of the WSPR coding process: http://g4jnt.com/WSPR_Coding_Process.pdf.
Many thanks to Andy/G4JNT for working this out!
*/
package wspr

import (
	"strings"
	"time"
)

// Symbol in WSPR. The value is the index of the tone above the base frequency, 0 to 3.
type Symbol uint8

const symbolDelta = float64(12000) / float64(8192)

// The four WSPR symbols.
const (
	Sym0 Symbol = iota
	Sym1
	Sym2
	Sym3
)

// Symbols contains all WSPR symbols.
var Symbols = []Symbol{Sym0, Sym1, Sym2, Sym3}

// Offset returns the delta of the symbol's tone to the base frequency in Hz.
func (s Symbol) Offset() float64 {
	return float64(s) * symbolDelta
}

// SymbolDuration is the duration of one WSPR symbol.
var SymbolDuration = (8192 * 1000 / 12) * time.Microsecond

// SymbolCount is the number of symbols in one WSPR transmission.
const SymbolCount = 162

// Transmission of WSPR symbols.
type Transmission [SymbolCount]Symbol

// String renders the transmission as a string of symbol digits.
func (t Transmission) String() string {
	var b strings.Builder
	b.Grow(len(t))
	for _, s := range t {
		b.WriteByte('0' + byte(s))
	}
	return b.String()
}

// Station identifies the sender of a WSPR transmission. The callsign must be exactly six characters long, the locator
// exactly four. Use NormalizeCallsign and NormalizeLocator to bring user input into this form.
type Station struct {
	callsign string
	locator  string
	dBm      uint8
}

// NewStation returns a station with the given callsign, locator and power in dBm. The values are not validated until
// the station is encoded.
func NewStation(callsign string, locator string, dBm uint8) Station {
	return Station{
		callsign: callsign,
		locator:  locator,
		dBm:      dBm,
	}
}

func (s Station) Callsign() string { return s.callsign }
func (s Station) Locator() string  { return s.locator }
func (s Station) DBm() uint8       { return s.dBm }

// Encode converts the station into a WSPR transmission.
func (s Station) Encode() (Transmission, error) {
	msg, err := s.Message()
	if err != nil {
		return Transmission{}, err
	}

	parity := convolve(msg)
	interleaved := interleave(parity)
	transmission := synchronize(interleaved)

	return transmission, nil
}

// Message returns the packed 50 bit message of the station.
func (s Station) Message() (Message, error) {
	n, err := encodeCall(s.callsign)
	if err != nil {
		return Message{}, err
	}
	m, err := encodeM(s.locator, s.dBm)
	if err != nil {
		return Message{}, err
	}
	return pack(n, m), nil
}

// MessageString returns the packed message as space separated hex bytes, e.g. "D5 50 1C E1 85 15 C0".
func (s Station) MessageString() (string, error) {
	msg, err := s.Message()
	if err != nil {
		return "", err
	}
	return msg.String(), nil
}

// ToTransmission converts the given data into a WSPR transmission. Callsign and locator are normalized first.
func ToTransmission(callsign string, locator string, dBm int) (Transmission, error) {
	call, err := NormalizeCallsign(callsign)
	if err != nil {
		return Transmission{}, err
	}
	loc, err := NormalizeLocator(locator)
	if err != nil {
		return Transmission{}, err
	}
	if dBm < 0 || dBm > MaxPower {
		return Transmission{}, ErrInvalidPower
	}

	return NewStation(call, loc, uint8(dBm)).Encode()
}
