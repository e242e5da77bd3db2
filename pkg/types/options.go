package types

import (
	"sort"
	"strings"
)

// Option is a single key/value pair attached to a line item, such as a
// size or color choice.
type Option struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Options is the option bag of a line item. Insertion order is preserved
// for display; identity hashing sorts the keys so that order never affects
// a row's identity.
type Options []Option

// Get returns the value for key and whether it is present.
func (o Options) Get(key string) (string, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return "", false
}

// Len returns the number of options in the bag.
func (o Options) Len() int { return len(o) }

// Sorted returns a copy of the options sorted by key.
func (o Options) Sorted() Options {
	out := make(Options, len(o))
	copy(out, o)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Clone returns an independent copy of the options.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	copy(out, o)
	return out
}

// canonical returns the deterministic encoding used for identity hashing:
// options sorted by key, each rendered as "key=value", joined with ";".
func (o Options) canonical() string {
	sorted := o.Sorted()
	var b strings.Builder
	for i, opt := range sorted {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(opt.Key)
		b.WriteByte('=')
		b.WriteString(opt.Value)
	}
	return b.String()
}
