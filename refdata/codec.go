// SPDX-License-Identifier: MIT

package refdata

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format is a snapshot encoding.
type Format string

const (
	JSON    Format = "json"
	MsgPack Format = "msgpack"
)

// ParseFormat accepts "json", "msgpack" and "mp", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "msgpack", "mp":
		return MsgPack, nil
	}

	return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// Encode writes s to w.
func Encode(w io.Writer, f Format, s Snapshot) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("Encode json: %w", err)
		}
	case MsgPack:
		if err := msgpack.NewEncoder(w).Encode(&s); err != nil {
			return fmt.Errorf("Encode msgpack: %w", err)
		}
	default:
		return fmt.Errorf("Encode(%q): %w", f, ErrUnknownFormat)
	}

	return nil
}

// Decode reads one snapshot from r and checks its schema version.
func Decode(r io.Reader, f Format) (Snapshot, error) {
	var s Snapshot
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return Snapshot{}, fmt.Errorf("Decode json: %w", err)
		}
	case MsgPack:
		if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
			return Snapshot{}, fmt.Errorf("Decode msgpack: %w", err)
		}
	default:
		return Snapshot{}, fmt.Errorf("Decode(%q): %w", f, ErrUnknownFormat)
	}
	if s.Version != SchemaVersion {
		return Snapshot{}, fmt.Errorf("Decode: version %d: %w", s.Version, ErrVersion)
	}

	return s, nil
}
