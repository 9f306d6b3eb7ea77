package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/jlrickert/verlaunch/pkg/launcher"
	"gopkg.in/yaml.v3"
)

// Encode serializes rec as YAML.
func Encode(rec launcher.PreferenceRecord) ([]byte, error) {
	if rec.KnownVersions == nil {
		rec.KnownVersions = launcher.VersionSet{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("marshal preference record: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal preference record: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a YAML blob. Empty documents and unknown fields are rejected
// so a damaged blob is reported instead of silently zeroed.
func Decode(data []byte) (launcher.PreferenceRecord, error) {
	var rec launcher.PreferenceRecord
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return launcher.PreferenceRecord{}, errors.New("empty document")
		}
		return launcher.PreferenceRecord{}, err
	}
	if rec.KnownVersions == nil {
		rec.KnownVersions = launcher.VersionSet{}
	}
	return rec, nil
}

func decodeNamespace(namespace string, data []byte) (launcher.PreferenceRecord, error) {
	rec, err := Decode(data)
	if err != nil {
		return launcher.PreferenceRecord{}, &CorruptError{Namespace: namespace, Err: err}
	}
	return rec, nil
}
