// Package signature provides the schemes used to authorize stage
// registration. A scheme maps a stage index to the 64-bit token a caller must
// present, and verifies presented tokens.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PlaceholderConstant is xored with the stage index by the placeholder scheme.
const PlaceholderConstant uint64 = 0xCAFEBABE

const hmacDomain = "sinphase/stage/v1:"

var ErrEmptyKey = errors.New("signature: hmac key is empty")

// Scheme signs and verifies stage registrations.
type Scheme interface {
	Sign(stage int) uint64
	Verify(stage int, sig uint64) bool
	Name() string
}

type placeholder struct{}

// Placeholder returns the structural stand-in scheme: stage XOR 0xCAFEBABE.
// Anyone can compute it; it only checks that the caller knows the stage it
// is registering.
func Placeholder() Scheme {
	return placeholder{}
}

func (placeholder) Sign(stage int) uint64 {
	return uint64(stage) ^ PlaceholderConstant
}

func (p placeholder) Verify(stage int, sig uint64) bool {
	return sig == p.Sign(stage)
}

func (placeholder) Name() string {
	return "placeholder"
}

type hmacScheme struct {
	key []byte
}

// NewHMAC returns a scheme keyed with the trust anchor key. A signature is
// the first eight bytes of HMAC-SHA256(key, domain || stage), big endian.
func NewHMAC(key []byte) (Scheme, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &hmacScheme{key: k}, nil
}

func (h *hmacScheme) mac(stage int) []byte {
	m := hmac.New(sha256.New, h.key)
	_, _ = m.Write([]byte(hmacDomain + strconv.Itoa(stage)))
	return m.Sum(nil)[:8]
}

func (h *hmacScheme) Sign(stage int) uint64 {
	return binary.BigEndian.Uint64(h.mac(stage))
}

func (h *hmacScheme) Verify(stage int, sig uint64) bool {
	var presented [8]byte
	binary.BigEndian.PutUint64(presented[:], sig)
	return hmac.Equal(h.mac(stage), presented[:])
}

func (h *hmacScheme) Name() string {
	return "hmac"
}

// Parse builds a scheme by name. The key is hex encoded and only used by
// "hmac".
func Parse(name, hexKey string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "placeholder":
		return Placeholder(), nil
	case "hmac":
		key, err := hex.DecodeString(strings.TrimSpace(hexKey))
		if err != nil {
			return nil, fmt.Errorf("signature: decode hmac key: %w", err)
		}
		return NewHMAC(key)
	default:
		return nil, fmt.Errorf("signature: unknown scheme %q", name)
	}
}
