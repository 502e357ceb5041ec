package atlas

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Range is one animation's contiguous span of sheet indices.
type Range struct {
	Start int `json:"start"`
	Count int `json:"count"`
}

// Entry binds an animation key ("walk_down", "idle") to its range.
type Entry struct {
	Key string
	Range
}

// Animations is the insertion-ordered animation index. Plain Go maps lose
// ordering, so serialization goes through a custom marshaller that writes
// entries in emission order.
type Animations []Entry

// MarshalJSON writes the entries as a JSON object in slice order.
func (a Animations) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(entry.Range)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an animation object back, preserving the order the
// keys appear in the document.
func (a *Animations) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("atlas: animations is not an object")
	}
	*a = (*a)[:0]
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("atlas: animation key %v is not a string", keyTok)
		}
		var rng Range
		if err := dec.Decode(&rng); err != nil {
			return fmt.Errorf("atlas: animation %q: %w", key, err)
		}
		*a = append(*a, Entry{Key: key, Range: rng})
	}
	_, err = dec.Token() // closing brace
	return err
}

// Get looks an animation up by key.
func (a Animations) Get(key string) (Range, bool) {
	for _, entry := range a {
		if entry.Key == key {
			return entry.Range, true
		}
	}
	return Range{}, false
}

// Metadata is the sidecar record written next to the atlas image. Field
// order here fixes the JSON field order.
type Metadata struct {
	FrameSize  [2]int     `json:"frame_size"`
	Columns    int        `json:"columns"`
	Animations Animations `json:"animations"`
	Rows       int        `json:"rows"`
}

// Encode serializes the sidecar with two-space indentation and a trailing
// newline. Output is byte-identical across runs on identical input.
func (m Metadata) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeMetadata parses a sidecar document.
func DecodeMetadata(data []byte) (Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return Metadata{}, fmt.Errorf("parsing metadata: %w", err)
	}
	return m, nil
}

// TotalFrames sums the entry counts.
func (m Metadata) TotalFrames() int {
	total := 0
	for _, entry := range m.Animations {
		total += entry.Count
	}
	return total
}

// Emitter accumulates animation entries in emission order, tracking the
// running sheet index so every entry starts exactly where the previous one
// ended.
type Emitter struct {
	layout  Layout
	entries Animations
	counter int
}

// NewEmitter returns an emitter for the given grid geometry.
func NewEmitter(layout Layout) *Emitter {
	return &Emitter{layout: layout}
}

// Add records the next animation: count frames starting at the current
// cumulative offset. Returns the entry's range.
func (e *Emitter) Add(key string, count int) Range {
	rng := Range{Start: e.counter, Count: count}
	e.entries = append(e.entries, Entry{Key: key, Range: rng})
	e.counter += count
	return rng
}

// Total returns the cumulative frame count emitted so far.
func (e *Emitter) Total() int {
	return e.counter
}

// Finalize produces the sidecar record, deriving the row count from the
// total emitted frames.
func (e *Emitter) Finalize() Metadata {
	return Metadata{
		FrameSize:  [2]int{e.layout.CellSize, e.layout.CellSize},
		Columns:    e.layout.Columns,
		Animations: e.entries,
		Rows:       e.layout.Rows(e.counter),
	}
}
