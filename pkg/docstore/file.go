package docstore

import (
	"fmt"
	"os"

	"github.com/golang/snappy"

	"github.com/lumennet/photonic/pkg/schema"
)

// ReadFile loads a document from a local file, deriving the encoding from
// the file extension.
func ReadFile(path string) (*schema.Document, error) {
	format := FormatForPath(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("reading %s: unrecognized document format", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	defer f.Close()

	if format == FormatSnappy {
		doc, err := Decode(snappy.NewReader(f), format)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return doc, nil
	}

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return doc, nil
}

// WriteFile stores a document to a local file, deriving the encoding from
// the file extension. The file is created or truncated.
func WriteFile(path string, doc *schema.Document) error {
	format := FormatForPath(path)
	if format == FormatUnknown {
		return fmt.Errorf("writing %s: unrecognized document format", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	var encodeErr error
	if format == FormatSnappy {
		sw := snappy.NewBufferedWriter(f)
		encodeErr = Encode(sw, doc, format)
		if closeErr := sw.Close(); encodeErr == nil {
			encodeErr = closeErr
		}
	} else {
		encodeErr = Encode(f, doc, format)
	}

	if closeErr := f.Close(); encodeErr == nil {
		encodeErr = closeErr
	}
	if encodeErr != nil {
		return fmt.Errorf("writing %s: %w", path, encodeErr)
	}
	return nil
}
