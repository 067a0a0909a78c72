package logfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/invoicechaser/lead-api/internal/entity"
)

// Recorder appends one JSON line per lead record to a local file. The file
// is opened in append mode so each single-Write line lands atomically;
// concurrent requests may interleave records but never corrupt them.
type Recorder struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// New opens (or creates) the append-only record file at path.
func New(path string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open lead log %s: %w", path, err)
	}
	return &Recorder{f: f, path: path}, nil
}

// Append writes the record as a single JSON line.
func (r *Recorder) Append(ctx context.Context, rec entity.LogRecord) error {
	buf, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal lead record: %w", err)
	}
	buf = append(buf, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.f.Write(buf); err != nil {
		return fmt.Errorf("append lead record to %s: %w", r.path, err)
	}
	return nil
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.f.Close()
}
