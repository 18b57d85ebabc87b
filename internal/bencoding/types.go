package bencoding

import (
	"fmt"
	"torrenthash/internal/infohash"
)

// InfoKeyMarker is the bencoded form of the "info" dictionary key
const InfoKeyMarker = "4:info"

// ScanMode selects how the info value is walked once the marker is found
type ScanMode string

const (
	// ScanStructural reads string length prefixes and skips their payloads
	ScanStructural ScanMode = "structural"
	// ScanNaive counts every 'd', 'l' and 'e' byte, payload bytes included
	ScanNaive ScanMode = "naive"
)

// ParseScanMode maps a config or flag value to a ScanMode. The empty string
// selects ScanStructural.
func ParseScanMode(s string) (ScanMode, error) {
	switch ScanMode(s) {
	case "", ScanStructural:
		return ScanStructural, nil
	case ScanNaive:
		return ScanNaive, nil
	}
	return "", fmt.Errorf("unknown scan mode %q", s)
}

// Span is the half-open byte range [Start, End) of a bencoded value
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Bytes returns the span's bytes within data, without copying
func (s Span) Bytes(data []byte) []byte {
	return data[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// TorrentFile holds the info dictionary located in a .torrent file
type TorrentFile struct {
	Path      string            `json:"path,omitempty"`
	Size      int               `json:"size"`
	InfoSpan  Span              `json:"info_span"`
	InfoBytes []byte            `json:"-"`         // Raw bencoded bytes of the info dict
	InfoHash  infohash.InfoHash `json:"info_hash"` // SHA1 hash of InfoBytes
}
