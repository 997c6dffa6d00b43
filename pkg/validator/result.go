package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PropertyErrors holds the messages recorded for one property.
type PropertyErrors struct {
	Property string   `json:"property"`
	Messages []string `json:"messages"`
}

// Result is the outcome of one validation run: failure messages grouped by
// property. Properties keep the order in which they first failed and messages
// keep the order in which their checks failed. A Result is built fresh for
// every run and is not safe for concurrent mutation.
type Result struct {
	order    []string
	messages map[string][]string
}

func NewResult() *Result {
	return &Result{messages: make(map[string][]string)}
}

// AddError appends message to property's list, creating the list on first use.
// Duplicates are kept.
func (r *Result) AddError(property, message string) {
	if _, ok := r.messages[property]; !ok {
		r.order = append(r.order, property)
	}
	r.messages[property] = append(r.messages[property], message)
}

func (r *Result) IsValid() bool {
	return len(r.order) == 0
}

// Errors returns a copy of the report in property order.
func (r *Result) Errors() []PropertyErrors {
	out := make([]PropertyErrors, 0, len(r.order))
	for _, p := range r.order {
		out = append(out, PropertyErrors{Property: p, Messages: r.Get(p)})
	}
	return out
}

// Get returns a copy of the messages recorded for property.
func (r *Result) Get(property string) []string {
	msgs := r.messages[property]
	if len(msgs) == 0 {
		return nil
	}
	return append([]string(nil), msgs...)
}

func (r *Result) Has(property string) bool {
	return len(r.messages[property]) > 0
}

// Properties returns the failed property names in first-failure order.
func (r *Result) Properties() []string {
	return append([]string(nil), r.order...)
}

// Len returns the total number of messages across all properties.
func (r *Result) Len() int {
	n := 0
	for _, msgs := range r.messages {
		n += len(msgs)
	}
	return n
}

// Map returns a copy of the report as a plain map. Map iteration order is
// random; use Errors or MarshalJSON when order matters.
func (r *Result) Map() map[string][]string {
	out := make(map[string][]string, len(r.messages))
	for p := range r.messages {
		out[p] = r.Get(p)
	}
	return out
}

// MarshalJSON encodes the report as an object keyed by property name, with
// keys in property order and no key transformation.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.messages[p])
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

// Error makes an invalid Result usable as an error value.
func (r *Result) Error() string {
	if r.IsValid() {
		return "validation failed"
	}
	var parts []string
	for _, p := range r.order {
		for _, msg := range r.messages[p] {
			parts = append(parts, fmt.Sprintf("%s: %s", p, msg))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns nil for a valid Result and the Result itself otherwise, so it
// can be returned up the stack and recovered with errors.As.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return r
}

func (r *Result) merge(failures []failure) {
	for _, f := range failures {
		r.AddError(f.property, f.message)
	}
}
