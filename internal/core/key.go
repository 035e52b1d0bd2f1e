package core

import (
	"fmt"
	"strings"
)

// RecordID identifies one physical row: which input it came from and where
// in that input it sits. It backs the synthetic identity used when a key
// column spec is 0, guaranteeing such a key never equals any other row's.
type RecordID struct {
	Source int // 0-based index of the input
	Row    int // 0-based row index within the input
}

func (id RecordID) String() string {
	return literally(fmt.Sprintf("row #%d of the input #%d", id.Row+1, id.Source+1))
}

// KeyItem is one element of a record's identity: either the text of a key
// cell, or the synthetic identity of the row itself.
type KeyItem struct {
	Data string
	ID   RecordID
	IsID bool
}

func (it KeyItem) String() string {
	if it.IsID {
		return it.ID.String()
	}
	return it.Data
}

// Key is a record's identity: one KeyItem per configured key column, in the
// order the user specified the columns. Two rows belong to the same record
// iff their keys are element-wise equal.
type Key struct {
	items []KeyItem
}

// NewKey builds a key from its items.
func NewKey(items []KeyItem) Key {
	return Key{items: items}
}

// Items returns the key's items in user-specified column order.
func (k Key) Items() []KeyItem {
	return k.items
}

// Len returns the number of key items.
func (k Key) Len() int {
	return len(k.items)
}

// Fingerprint returns a collision-free encoding of the key, suitable as a
// map lookup value. Data items are length-prefixed so cell boundaries
// cannot be forged by adjacent values; identity items encode their row
// coordinates, which no data item can produce.
func (k Key) Fingerprint() string {
	var b strings.Builder
	for _, it := range k.items {
		if it.IsID {
			fmt.Fprintf(&b, "i%d:%d;", it.ID.Source, it.ID.Row)
		} else {
			fmt.Fprintf(&b, "d%d:%s;", len(it.Data), it.Data)
		}
	}
	return b.String()
}

// String renders the key for diagnostics: cell values verbatim, synthetic
// identities in angle brackets, items joined by ", ".
func (k Key) String() string {
	if len(k.items) == 0 {
		return literally("empty set of columns")
	}
	parts := make([]string, len(k.items))
	for i, it := range k.items {
		parts[i] = it.String()
	}
	return strings.Join(parts, ", ")
}
