package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/colorsful/colorsful/internal/compression"
	"github.com/colorsful/colorsful/internal/security"
	httputil "github.com/colorsful/colorsful/internal/util/http"
)

// LoadOptions configures catalog loading.
type LoadOptions struct {
	// MaxBytes caps the raw and decompressed size of the catalog. Zero uses the defaults.
	MaxBytes int64

	// Fetch overrides remote retrieval (tests).
	Fetch func(ctx context.Context, url string) ([]byte, error)

	// Logger receives debug output. Nil discards it.
	Logger hclog.Logger
}

// Load reads a catalog from a local path or an https:// URL. Files ending in
// .xz, .gz or .bz2 are decompressed first.
func Load(ctx context.Context, source string, opts LoadOptions) ([]Record, error) {
	if source == "" {
		return nil, fmt.Errorf("catalog source cannot be empty")
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var (
		data []byte
		err  error
	)
	if security.IsRemote(source) {
		if err := security.ValidateHTTPURL(source); err != nil {
			return nil, fmt.Errorf("invalid catalog URL: %w", err)
		}
		fetch := opts.Fetch
		if fetch == nil {
			fetch = func(ctx context.Context, url string) ([]byte, error) {
				return httputil.Fetch(ctx, url, httputil.FetchOptions{MaxBytes: opts.MaxBytes})
			}
		}
		logger.Debug("fetching catalog", "url", source)
		data, err = fetch(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch catalog: %w", err)
		}
	} else {
		data, err = os.ReadFile(filepath.Clean(source)) // #nosec G304 - user-specified catalog path
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
	}

	format := compression.DetectFormat(source)
	data, err = compression.Decompress(data, source, opts.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress catalog: %w", err)
	}

	records, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logger.Debug("catalog loaded", "source", source, "compression", format, "records", len(records))
	return records, nil
}

// Parse decodes a catalog. It accepts a bare JSON array of records or an
// object with the records under "videos".
func Parse(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	var records []Record
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	case '{':
		var wrapped struct {
			Videos []Record `json:"videos"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
		records = wrapped.Videos
	default:
		return nil, fmt.Errorf("failed to parse catalog: expected a JSON array or object")
	}

	if records == nil {
		records = []Record{}
	}
	return records, nil
}
