// Package record splits input lines into an optional identifier and a
// payload, and formats them back.
package record

import "strings"

// Record is one input line. A keyed record carries an identifier separated
// from the payload by the first tab.
type Record struct {
	ID      string
	Keyed   bool
	Payload string
}

// Parse strips line and splits it on the first tab, if any. Further tabs
// stay in the payload.
func Parse(line string) Record {
	line = strings.TrimSpace(line)
	id, payload, found := strings.Cut(line, "\t")
	if !found {
		return Record{Payload: line}
	}
	return Record{ID: id, Keyed: true, Payload: payload}
}

// WithPayload returns a copy of r carrying payload
func (r Record) WithPayload(payload string) Record {
	r.Payload = payload
	return r
}

// Blank reports whether the payload is empty after trimming
func (r Record) Blank() bool {
	return strings.TrimSpace(r.Payload) == ""
}

// Format renders r as an output line with a trailing newline
func (r Record) Format() string {
	if r.Keyed {
		return r.ID + "\t" + r.Payload + "\n"
	}
	return r.Payload + "\n"
}
