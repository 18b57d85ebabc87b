package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"torrenthash/internal/bencoding"
	"torrenthash/internal/config"
	"torrenthash/internal/infohash"
	"torrenthash/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.DefaultConfig()

	fs := flag.NewFlagSet("torrenthash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: torrenthash [-naive] [-v] [-json] [-check HEX] <file.torrent>...")
		fs.PrintDefaults()
	}
	naive := fs.Bool("naive", false, "count every 'd', 'l' and 'e' byte, string payloads included")
	verbose := fs.Bool("v", false, "log the info span of each file")
	fs.BoolVar(&cfg.JSON, "json", false, "print one JSON record per file")
	fs.StringVar(&cfg.ExpectedHash, "check", "", "exit with status 1 unless the info hash equals `HEX`")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *naive {
		cfg.ScanMode = bencoding.ScanNaive
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "Invalid configuration:", err)
		return 2
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return 2
	}
	if cfg.ExpectedHash != "" && len(paths) != 1 {
		fmt.Fprintln(stderr, "-check takes exactly one torrent file")
		return 2
	}

	log, err := logger.NewWithWriter(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "Error creating logger:", err)
		return 2
	}
	defer log.Sync()

	enc := json.NewEncoder(stdout)
	status := 0
	for _, path := range paths {
		tf, err := hashFile(path, cfg, log.WithPrefix(path))
		if err != nil {
			status = 1
			continue
		}

		switch {
		case cfg.JSON:
			if err := enc.Encode(tf); err != nil {
				log.Error("Error writing JSON: %v", err)
				return 1
			}
		case len(paths) == 1:
			fmt.Fprintln(stdout, tf.InfoHash.Hex())
		default:
			fmt.Fprintf(stdout, "%s  %s\n", tf.InfoHash.Hex(), path)
		}

		if cfg.ExpectedHash != "" && !matches(tf.InfoHash, cfg.ExpectedHash, log) {
			status = 1
		}
	}
	return status
}

func hashFile(path string, cfg *config.Config, log *logger.Logger) (bencoding.TorrentFile, error) {
	tf, err := bencoding.LoadTorrentFile(path, cfg.ScanMode)
	switch {
	case err == nil:
	case errors.Is(err, bencoding.ErrInfoKeyNotFound):
		log.Error("No info dictionary: %v", err)
		return tf, err
	case errors.Is(err, bencoding.ErrUnterminatedStructure):
		log.Error("Info dictionary is truncated or malformed: %v", err)
		return tf, err
	default:
		log.Error("Error reading torrent file: %v", err)
		return tf, err
	}

	log.Debug("Info span %s (%d of %d bytes, %s scan)", tf.InfoSpan, tf.InfoSpan.Len(), tf.Size, cfg.ScanMode)
	return tf, nil
}

func matches(got infohash.InfoHash, expected string, log *logger.Logger) bool {
	want, err := infohash.FromHex(expected)
	if err != nil {
		log.Error("Bad -check value: %v", err)
		return false
	}
	if got != want {
		log.Warn("Info hash mismatch: got %s, want %s", got, want)
		return false
	}
	return true
}
