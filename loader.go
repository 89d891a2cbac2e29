package yuwe

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// rawEntry is the on-disk form of an entry value.
// Older files used "explicacion" for the note.
type rawEntry struct {
	Traduccion  string `json:"traduccion"`
	Explanation string `json:"explanation"`
	Explicacion string `json:"explicacion,omitempty"`
}

// LoadDictionary reads a dictionary JSON object of the form
//
//	{"casa": {"traduccion": "yat", "explanation": "sustantivo"}, ...}
//
// Key order is preserved since reverse lookups resolve duplicate
// translations by it. A key repeated in the file keeps its first
// position and its last value.
func LoadDictionary(r io.Reader) ([]Entry, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("read dictionary: expected object, got %v", tok)
	}

	entries := []Entry{}
	positions := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read dictionary key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("read dictionary: unexpected token %v", tok)
		}
		var raw rawEntry
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("read dictionary entry %q: %w", key, err)
		}
		note := raw.Explanation
		if note == "" {
			note = raw.Explicacion
		}
		entry := Entry{Word: key, Translation: raw.Traduccion, Note: note}
		if i, seen := positions[key]; seen {
			entries[i] = entry
			continue
		}
		positions[key] = len(entries)
		entries = append(entries, entry)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return entries, nil
}

// LoadDictionaryFile reads the dictionary file at path.
func LoadDictionaryFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	return LoadDictionary(bufio.NewReader(f))
}

// WriteDictionary writes entries in the format read by LoadDictionary,
// in entry order, indented by four spaces and with non-ASCII text kept
// as-is.
func WriteDictionary(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("{")
	for i, e := range entries {
		if i > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n    ")
		bw.WriteString(quoteJSON(e.Word))
		bw.WriteString(": {\n        \"traduccion\": ")
		bw.WriteString(quoteJSON(e.Translation))
		bw.WriteString(",\n        \"explanation\": ")
		bw.WriteString(quoteJSON(e.Note))
		bw.WriteString("\n    }")
	}
	if len(entries) > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("}")
	return bw.Flush()
}

// quoteJSON encodes s as a JSON string without HTML escaping.
func quoteJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.Encode(s) // strings always encode
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
