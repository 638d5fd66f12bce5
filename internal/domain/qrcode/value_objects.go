package qrcode

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"regexp"
)

var ErrInvalidPayload = errors.New("invalid code payload format")

// Payloads are 32 hex chars from a CSPRNG. A timestamp-derived scheme
// was rejected: it leaks issuance time and is guessable.
const payloadBytes = 16

var payloadRegex = regexp.MustCompile(`^[0-9a-f]{32}$`)

type Payload string

func NewPayload() (Payload, error) {
	buf := make([]byte, payloadBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return Payload(hex.EncodeToString(buf)), nil
}

func ParsePayload(s string) (Payload, error) {
	if !payloadRegex.MatchString(s) {
		return "", ErrInvalidPayload
	}
	return Payload(s), nil
}

func (p Payload) String() string {
	return string(p)
}
