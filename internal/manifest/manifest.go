// Package manifest implements the companion binary artifact (spec_full
// §10.4): a small side-band file recording, for every type the importer
// decided on, its resolved dotted script name and member name table, so
// a later incremental run can detect a minified-name collision against
// a previous build without re-running the importer from scratch.
//
// It is grounded on the teacher's internal/bytecode file format: a
// fixed magic number, a semver-style version header, and a
// backward-compatible minor-version check performed before any payload
// bytes are trusted.
package manifest

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Magic is the 4-byte file signature every manifest begins with.
var Magic = [4]byte{'S', 'G', 'M', 0}

// CurrentMajor/CurrentMinor are the version this package writes.
// IsCompatible allows reading any manifest whose major matches and
// whose minor is less than or equal to CurrentMinor — a newer minor
// version only ever adds fields a reader may ignore.
const (
	CurrentMajor = 1
	CurrentMinor = 0
)

// TypeEntry is one type's recorded identity.
type TypeEntry struct {
	SourceSymbol     string
	DottedScriptName string
	Members          []MemberEntry
	IsGenericErased  bool
}

// MemberEntry is one member's recorded script name.
type MemberEntry struct {
	SourceName string
	ScriptName string
}

// Manifest is the decoded companion artifact.
type Manifest struct {
	Major, Minor uint16
	Types        []TypeEntry
}

// IsCompatible reports whether a manifest at the given version can be
// read by this build.
func IsCompatible(major, minor uint16) bool {
	return major == CurrentMajor && minor <= CurrentMinor
}

// Serializer writes/reads the manifest binary format.
type Serializer struct{}

// SerializeManifest encodes m as: magic, major, minor, type count, then
// each type's symbol/name/generic-erased flag byte/member-count/members,
// all length-prefixed strings, big-endian integers — mirroring the teacher's bytecode
// writer's "length then bytes" string encoding.
func (Serializer) SerializeManifest(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(Magic[:])
	if err := binary.Write(&buf, binary.BigEndian, uint16(CurrentMajor)); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.BigEndian, uint16(CurrentMinor)); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.BigEndian, uint32(len(m.Types))); err != nil {
		return nil, err
	}
	for _, t := range m.Types {
		writeString(&buf, t.SourceSymbol)
		writeString(&buf, t.DottedScriptName)
		writeBool(&buf, t.IsGenericErased)
		if err := binary.Write(&buf, binary.BigEndian, uint32(len(t.Members))); err != nil {
			return nil, err
		}
		for _, mem := range t.Members {
			writeString(&buf, mem.SourceName)
			writeString(&buf, mem.ScriptName)
		}
	}
	return buf.Bytes(), nil
}

// DeserializeManifest decodes the format SerializeManifest writes,
// rejecting a bad magic outright and an incompatible version via
// IsCompatible before reading a single type entry.
func (Serializer) DeserializeManifest(data []byte) (*Manifest, error) {
	r := bytes.NewReader(data)
	var magic [4]byte
	if _, err := r.Read(magic[:]); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("manifest: bad magic %v", magic)
	}
	var major, minor uint16
	if err := binary.Read(r, binary.BigEndian, &major); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &minor); err != nil {
		return nil, err
	}
	if !IsCompatible(major, minor) {
		return nil, fmt.Errorf("manifest: incompatible version %d.%d (this build writes %d.%d)", major, minor, CurrentMajor, CurrentMinor)
	}
	var typeCount uint32
	if err := binary.Read(r, binary.BigEndian, &typeCount); err != nil {
		return nil, err
	}
	m := &Manifest{Major: major, Minor: minor, Types: make([]TypeEntry, 0, typeCount)}
	for i := uint32(0); i < typeCount; i++ {
		var t TypeEntry
		var err error
		if t.SourceSymbol, err = readString(r); err != nil {
			return nil, err
		}
		if t.DottedScriptName, err = readString(r); err != nil {
			return nil, err
		}
		if t.IsGenericErased, err = readBool(r); err != nil {
			return nil, err
		}
		var memberCount uint32
		if err := binary.Read(r, binary.BigEndian, &memberCount); err != nil {
			return nil, err
		}
		t.Members = make([]MemberEntry, memberCount)
		for j := uint32(0); j < memberCount; j++ {
			if t.Members[j].SourceName, err = readString(r); err != nil {
				return nil, err
			}
			if t.Members[j].ScriptName, err = readString(r); err != nil {
				return nil, err
			}
		}
		m.Types = append(m.Types, t)
	}
	return m, nil
}

func writeString(buf *bytes.Buffer, s string) {
	binary.Write(buf, binary.BigEndian, uint32(len(s)))
	buf.WriteString(s)
}

func writeBool(buf *bytes.Buffer, b bool) {
	if b {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}

func readString(r *bytes.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := r.Read(b); err != nil {
		return "", err
	}
	return string(b), nil
}

func readBool(r *bytes.Reader) (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}
