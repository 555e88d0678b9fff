package audit

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// EventKind represents the type of audit event.
type EventKind string

const (
	EventBookingBegin    EventKind = "BOOKING_BEGIN"
	EventBookingCaptured EventKind = "BOOKING_CAPTURED"
)

// Record is a single audit trail entry.
type Record struct {
	ID         string    `json:"id"`
	Kind       EventKind `json:"kind"`
	Actor      string    `json:"actor"`
	DistanceKm float64   `json:"distance_km"`
	At         time.Time `json:"at"`
}

// Recorder appends booking audit records to a sink as JSON lines and keeps
// them in memory for inspection. A nil Recorder discards everything, so
// callers never need to guard their calls.
type Recorder struct {
	mu      sync.Mutex
	out     io.Writer
	records []Record
}

// NewRecorder creates a Recorder writing JSON lines to out. A nil out keeps
// records in memory only.
func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{out: out}
}

// Capture appends one record to the trail.
func (r *Recorder) Capture(ctx context.Context, kind EventKind, actor string, distanceKm float64) error {
	if r == nil {
		return nil
	}

	rec := Record{
		ID:         uuid.New().String(),
		Kind:       kind,
		Actor:      actor,
		DistanceKm: distanceKm,
		At:         time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)

	if r.out == nil {
		return nil
	}
	data, err := jsoniter.ConfigFastest.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = r.out.Write(append(data, '\n'))
	return err
}

// Records returns a copy of all captured records.
func (r *Recorder) Records() []Record {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}
