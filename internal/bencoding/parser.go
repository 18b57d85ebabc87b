// Locates the info dictionary of .torrent files
// https://wiki.theory.org/BitTorrentSpecification#Metainfo_File_Structure
package bencoding

import (
	"fmt"
	"io"
	"os"
	"torrenthash/internal/infohash"
)

// ParseTorrentFile locates the info dictionary in data and hashes its raw bytes.
// InfoBytes aliases data.
func ParseTorrentFile(data []byte, mode ScanMode) (TorrentFile, error) {
	span, err := FindInfoSpan(data, mode)
	if err != nil {
		return TorrentFile{}, err
	}

	infoBytes := span.Bytes(data)
	return TorrentFile{
		Size:      len(data),
		InfoSpan:  span,
		InfoBytes: infoBytes,
		InfoHash:  infohash.Sum(infoBytes),
	}, nil
}

// LoadTorrentFile reads the whole file at path before parsing it. A path of
// "-" reads standard input.
func LoadTorrentFile(path string, mode ScanMode) (TorrentFile, error) {
	data, err := readAll(path)
	if err != nil {
		return TorrentFile{}, err
	}

	tf, err := ParseTorrentFile(data, mode)
	if err != nil {
		return TorrentFile{}, fmt.Errorf("%s: %w", path, err)
	}
	tf.Path = path
	return tf, nil
}

func readAll(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
