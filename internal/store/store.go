// Package store edits the dictionary file on behalf of users: adding
// words and applying translation corrections.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nasayuwe/yuwe"
	"github.com/rs/zerolog/log"
)

// FeedbackNote is the note given to entries created from user feedback.
const FeedbackNote = "Agregado por retroalimentación de usuario"

// Store serializes edits to a dictionary file. Every edit re-reads the
// file, so changes made on disk by other tools are never overwritten
// with stale data.
type Store struct {
	path string

	mu       sync.Mutex
	onChange func([]yuwe.Entry)
}

// New returns a Store editing the dictionary file at path. The file
// does not have to exist yet.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the dictionary file location.
func (s *Store) Path() string {
	return s.path
}

// OnChange registers fn to be called with the new entries after every
// successful write. It replaces any earlier hook.
func (s *Store) OnChange(fn func([]yuwe.Entry)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Load reads the current dictionary. A missing file is an empty
// dictionary.
func (s *Store) Load() ([]yuwe.Entry, error) {
	entries, err := yuwe.LoadDictionaryFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("path", s.path).Msg("dictionary file not found, starting empty")
		return []yuwe.Entry{}, nil
	}
	return entries, err
}

// AddWord appends a new entry. All fields are required after trimming;
// a word already present (compared case-insensitively) is rejected with
// a *WordExistsError naming the existing key.
func (s *Store) AddWord(word, translation, note string) (yuwe.Entry, error) {
	entry := yuwe.Entry{
		Word:        strings.TrimSpace(word),
		Translation: strings.TrimSpace(translation),
		Note:        strings.TrimSpace(note),
	}
	if entry.Word == "" || entry.Translation == "" || entry.Note == "" {
		return yuwe.Entry{}, ErrMissingField
	}
	err := s.update(func(entries []yuwe.Entry) ([]yuwe.Entry, error) {
		if i := indexByWord(entries, entry.Word); i >= 0 {
			return nil, &WordExistsError{Word: entries[i].Word}
		}
		return append(entries, entry), nil
	})
	if err != nil {
		return yuwe.Entry{}, err
	}
	log.Info().Str("word", entry.Word).Str("translation", entry.Translation).Msg("word added")
	return entry, nil
}

// Feedback records a user correction of a translation.
//
// From Spanish, original is a headword: its translation is replaced, or
// a new entry is created. From Nasa Yuwe, original is a translation: the
// first entry carrying it gets corrected as its headword (replacing any
// other entry with that headword), or a new entry is created.
func (s *Store) Feedback(original, corrected string, source, target yuwe.Language) error {
	original = strings.TrimSpace(original)
	corrected = strings.TrimSpace(corrected)
	if original == "" || corrected == "" {
		return ErrMissingField
	}

	var apply func([]yuwe.Entry) ([]yuwe.Entry, error)
	switch {
	case source == yuwe.Spanish && target == yuwe.NasaYuwe:
		apply = func(entries []yuwe.Entry) ([]yuwe.Entry, error) {
			return correctTranslation(entries, original, corrected), nil
		}
	case source == yuwe.NasaYuwe && target == yuwe.Spanish:
		apply = func(entries []yuwe.Entry) ([]yuwe.Entry, error) {
			return correctWord(entries, original, corrected), nil
		}
	default:
		return ErrUnsupportedDirection
	}
	if err := s.update(apply); err != nil {
		return err
	}
	log.Info().
		Str("original", original).
		Str("corrected", corrected).
		Str("source", string(source)).
		Msg("feedback applied")
	return nil
}

func correctTranslation(entries []yuwe.Entry, word, translation string) []yuwe.Entry {
	if i := indexByWord(entries, word); i >= 0 {
		entries[i].Translation = translation
		return entries
	}
	return append(entries, yuwe.Entry{Word: word, Translation: translation, Note: FeedbackNote})
}

func correctWord(entries []yuwe.Entry, translation, word string) []yuwe.Entry {
	i := indexByTranslation(entries, translation)
	if i < 0 {
		if j := indexByWord(entries, word); j >= 0 {
			entries[j].Translation = translation
			return entries
		}
		return append(entries, yuwe.Entry{Word: word, Translation: translation, Note: FeedbackNote})
	}
	found := entries[i]
	if yuwe.FoldKey(found.Word) == yuwe.FoldKey(word) {
		entries[i].Word = word
		return entries
	}
	entries = append(entries[:i], entries[i+1:]...)
	if j := indexByWord(entries, word); j >= 0 {
		entries[j].Translation = found.Translation
		entries[j].Note = found.Note
		return entries
	}
	return append(entries, yuwe.Entry{Word: word, Translation: found.Translation, Note: found.Note})
}

func indexByWord(entries []yuwe.Entry, word string) int {
	key := yuwe.FoldKey(word)
	for i, e := range entries {
		if yuwe.FoldKey(e.Word) == key {
			return i
		}
	}
	return -1
}

func indexByTranslation(entries []yuwe.Entry, translation string) int {
	key := yuwe.FoldKey(translation)
	for i, e := range entries {
		if yuwe.FoldKey(e.Translation) == key {
			return i
		}
	}
	return -1
}

// update runs one read-modify-write cycle under the store lock.
func (s *Store) update(apply func([]yuwe.Entry) ([]yuwe.Entry, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.Load()
	if err != nil {
		return err
	}
	entries, err = apply(entries)
	if err != nil {
		return err
	}
	if err := s.save(entries); err != nil {
		return err
	}
	if s.onChange != nil {
		s.onChange(entries)
	}
	return nil
}

// save replaces the dictionary file atomically: readers see either the
// old or the new content, never a partial write.
func (s *Store) save(entries []yuwe.Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".dictionary-*.json")
	if err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := yuwe.WriteDictionary(tmp, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("save dictionary: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("save dictionary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	return nil
}
