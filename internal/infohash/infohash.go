package infohash

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// InfoHash is the SHA1 digest of a torrent's bencoded info dictionary
type InfoHash [20]byte

// Sum hashes b exactly as given; nothing is re-encoded
func Sum(b []byte) InfoHash {
	return InfoHash(sha1.Sum(b))
}

// FromHex parses a 40 character hex digest
func FromHex(s string) (InfoHash, error) {
	if len(s) != 2*len(InfoHash{}) {
		return InfoHash{}, fmt.Errorf("invalid info hash: expected 40 characters, got %d", len(s))
	}
	var h InfoHash
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return InfoHash{}, fmt.Errorf("invalid info hash: %w", err)
	}
	return h, nil
}

func (h InfoHash) Bytes() []byte {
	return h[:]
}

// Hex returns the lowercase hex encoding of h
func (h InfoHash) Hex() string {
	return hex.EncodeToString(h[:])
}

func (h InfoHash) String() string {
	return h.Hex()
}

func (h InfoHash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *InfoHash) UnmarshalText(text []byte) error {
	parsed, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
