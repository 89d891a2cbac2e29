package yuwe

// Entry is a single unit of translation knowledge.
type Entry struct {
	// Word is the Spanish headword. It is unique within a Dictionary
	// (compared case-insensitively); case is preserved.
	Word string `json:"word"`
	// Translation is the Nasa Yuwe form. Verb roots end with "-".
	Translation string `json:"translation"`
	// Note is a free-text explanation, possibly carrying grammatical
	// hints such as "sustantivo" or "transitivo".
	Note string `json:"note,omitempty"`
}

// Dictionary is an immutable, ordered index over dictionary entries.
// Both directions are indexed by FoldKey; when several entries fold to
// the same key the first one in entry order wins.
type Dictionary struct {
	entries []Entry

	// forward maps FoldKey(Word) → index into entries.
	forward map[string]int

	// reverse maps FoldKey(Translation) → index into entries.
	reverse map[string]int
}

// NewDictionary indexes entries. The slice is copied, so later changes
// to it do not affect the dictionary.
func NewDictionary(entries []Entry) *Dictionary {
	d := &Dictionary{
		entries: make([]Entry, len(entries)),
		forward: make(map[string]int, len(entries)),
		reverse: make(map[string]int, len(entries)),
	}
	copy(d.entries, entries)
	for i, e := range d.entries {
		if k := FoldKey(e.Word); k != "" {
			if _, ok := d.forward[k]; !ok {
				d.forward[k] = i
			}
		}
		if k := FoldKey(e.Translation); k != "" {
			if _, ok := d.reverse[k]; !ok {
				d.reverse[k] = i
			}
		}
	}
	return d
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Get returns the i-th entry in dictionary order.
func (d *Dictionary) Get(i int) Entry {
	return d.entries[i]
}

// Entries returns a copy of all entries in dictionary order.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Lookup finds the entry whose Word matches word case-insensitively.
func (d *Dictionary) Lookup(word string) (Entry, bool) {
	i, ok := d.forward[FoldKey(word)]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i], true
}

// Reverse finds the first entry (in dictionary order) whose Translation
// matches translation case-insensitively. Translations are not unique,
// so other entries sharing it are never returned.
func (d *Dictionary) Reverse(translation string) (Entry, bool) {
	i, ok := d.reverse[FoldKey(translation)]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i], true
}
