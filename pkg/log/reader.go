package log

import (
	"errors"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/afero"
)

// Filter selects diagnostic events. Zero fields match everything.
type Filter struct {
	// SessionID matches one boot session exactly.
	SessionID string

	Category  *Category
	Component *Component

	// TimeStart and TimeEnd bound the half-open interval [TimeStart, TimeEnd).
	TimeStart *time.Time
	TimeEnd   *time.Time
}

// Match reports whether event satisfies every criterion of f.
func (f Filter) Match(event Event) bool {
	switch {
	case f.SessionID != "" && event.SessionID != f.SessionID:
		return false
	case f.Category != nil && event.Category != *f.Category:
		return false
	case f.Component != nil && event.Component != *f.Component:
		return false
	case f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart):
		return false
	case f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd):
		return false
	}
	return true
}

// Reader streams diagnostic events from a log file.
//
// A record cut short at the end of the file, as left behind by a power
// loss during a write, ends the stream like io.EOF. Truncated reports
// whether that happened.
type Reader struct {
	file      afero.File
	decoder   *cbor.Decoder
	filter    Filter
	truncated bool
}

// NewReader opens a log file on the host filesystem.
func NewReader(path string) (*Reader, error) {
	return OpenReader(afero.NewOsFs(), path, Filter{})
}

// NewFilteredReader opens a log file on the host filesystem and yields only
// events matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	return OpenReader(afero.NewOsFs(), path, filter)
}

// OpenReader opens path on fs and yields events matching filter.
func OpenReader(fs afero.Fs, path string, filter Filter) (*Reader, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{file: f, decoder: NewDecoder(f), filter: filter}, nil
}

// Next returns the next matching event, or io.EOF at the end of the file.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		err := r.decoder.Decode(&event)
		switch {
		case errors.Is(err, io.EOF):
			return Event{}, io.EOF
		case errors.Is(err, io.ErrUnexpectedEOF):
			r.truncated = true
			return Event{}, io.EOF
		case err != nil:
			return Event{}, err
		}
		if r.filter.Match(event) {
			return event, nil
		}
	}
}

// Truncated reports whether the stream ended in a partial record.
func (r *Reader) Truncated() bool {
	return r.truncated
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
