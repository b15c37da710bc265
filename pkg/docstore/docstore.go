// Package docstore reads and writes documents in their on-disk and
// at-rest encodings: JSON, YAML, and snappy-compressed JSON, from local
// files or an S3 bucket. The YANG-derived JSON field names are the
// canonical encoding; YAML documents are transcoded through it.
package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lumennet/photonic/pkg/schema"
)

// Format identifies a document encoding.
type Format int

const (
	// FormatUnknown is the zero value for unrecognized extensions.
	FormatUnknown Format = iota
	// FormatJSON is plain JSON.
	FormatJSON
	// FormatYAML is YAML, transcoded through the JSON field names.
	FormatYAML
	// FormatSnappy is snappy-framed JSON (.json.sz).
	FormatSnappy
)

// FormatForPath derives the encoding from a file name or object key.
func FormatForPath(path string) Format {
	switch {
	case strings.HasSuffix(path, ".sz"):
		return FormatSnappy
	case strings.HasSuffix(path, ".json"):
		return FormatJSON
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// Decode reads one document from r in the given format.
func Decode(r io.Reader, format Format) (*schema.Document, error) {
	switch format {
	case FormatJSON, FormatSnappy:
		var doc schema.Document
		dec := json.NewDecoder(r)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding document: %w", err)
		}
		return &doc, nil
	case FormatYAML:
		return decodeYAML(r)
	default:
		return nil, fmt.Errorf("unrecognized document format")
	}
}

// Encode writes one document to w in the given format.
func Encode(w io.Writer, doc *schema.Document, format Format) error {
	switch format {
	case FormatJSON, FormatSnappy:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}
		return nil
	case FormatYAML:
		return encodeYAML(w, doc)
	default:
		return fmt.Errorf("unrecognized document format")
	}
}

// decodeYAML transcodes a YAML document through its JSON form so the
// document types' JSON unmarshalers apply.
func decodeYAML(r io.Reader) (*schema.Document, error) {
	var raw any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding yaml document: %w", err)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("transcoding yaml document: %w", err)
	}

	var doc schema.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &doc, nil
}

// encodeYAML transcodes through JSON in the other direction, preserving
// the YANG field names and the quoted-decimal convention.
func encodeYAML(w io.Writer, doc *schema.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("transcoding document: %w", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("encoding yaml document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding yaml document: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}
