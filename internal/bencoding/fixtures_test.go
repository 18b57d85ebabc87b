package bencoding

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jackpal/bencode-go"
)

type fixtureInfo struct {
	Length      int64  `bencode:"length"`
	Name        string `bencode:"name"`
	PieceLength int64  `bencode:"piece length"`
	Pieces      string `bencode:"pieces"`
}

type fixtureMetainfo struct {
	Announce string      `bencode:"announce"`
	Comment  string      `bencode:"comment"`
	Info     fixtureInfo `bencode:"info"`
}

func newFixtureInfo() fixtureInfo {
	return fixtureInfo{
		Length:      92063,
		Name:        "sample-release-linux.iso",
		PieceLength: 32768,
		// Three fake piece hashes packed with container marker bytes
		Pieces: strings.Repeat("dle\x00", 15),
	}
}

// encodeFixture returns a bencoded metainfo file and the bencoded info dict on its own
func encodeFixture(t *testing.T, info fixtureInfo) ([]byte, []byte) {
	t.Helper()

	var file bytes.Buffer
	err := bencode.Marshal(&file, fixtureMetainfo{
		Announce: "http://tracker.example.com:6969/announce",
		Comment:  "built for tests",
		Info:     info,
	})
	if err != nil {
		t.Fatalf("Marshal metainfo failed: %v", err)
	}

	var infoOnly bytes.Buffer
	if err := bencode.Marshal(&infoOnly, info); err != nil {
		t.Fatalf("Marshal info failed: %v", err)
	}
	return file.Bytes(), infoOnly.Bytes()
}

func TestExtractInfoFromEncodedTorrent(t *testing.T) {
	data, want := encodeFixture(t, newFixtureInfo())

	got, err := ExtractInfo(data, ScanStructural)
	if err != nil {
		t.Fatalf("ExtractInfo failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected info span\n%q\ngot\n%q", want, got)
	}

	tf, err := ParseTorrentFile(data, ScanStructural)
	if err != nil {
		t.Fatalf("ParseTorrentFile failed: %v", err)
	}
	if !bytes.Equal(tf.InfoBytes, want) {
		t.Errorf("Expected TorrentFile.InfoBytes to equal the encoded info dict")
	}
}

func TestScanNaiveMisreadsEncodedTorrent(t *testing.T) {
	data, want := encodeFixture(t, newFixtureInfo())

	got, err := ExtractInfo(data, ScanNaive)
	if err == nil && bytes.Equal(got, want) {
		t.Errorf("Expected naive scan to stop inside a payload, got the full info dict")
	}
}

func TestInfoHashChangesWithInfoOnly(t *testing.T) {
	info := newFixtureInfo()
	data, _ := encodeFixture(t, info)
	first, err := ParseTorrentFile(data, ScanStructural)
	if err != nil {
		t.Fatalf("ParseTorrentFile failed: %v", err)
	}

	// Different announce URL, same info dict
	var other bytes.Buffer
	err = bencode.Marshal(&other, fixtureMetainfo{
		Announce: "udp://tracker.example.org:1337",
		Info:     info,
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	second, err := ParseTorrentFile(other.Bytes(), ScanStructural)
	if err != nil {
		t.Fatalf("ParseTorrentFile failed: %v", err)
	}
	if first.InfoHash != second.InfoHash {
		t.Errorf("Expected equal info hashes, got %s and %s", first.InfoHash, second.InfoHash)
	}

	info.Length++
	data, _ = encodeFixture(t, info)
	third, err := ParseTorrentFile(data, ScanStructural)
	if err != nil {
		t.Fatalf("ParseTorrentFile failed: %v", err)
	}
	if first.InfoHash == third.InfoHash {
		t.Errorf("Expected info hash to change with the info dict, got %s twice", first.InfoHash)
	}
}
