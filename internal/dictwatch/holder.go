// Package dictwatch keeps the current translation engine and rebuilds
// it when the dictionary file changes.
package dictwatch

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nasayuwe/yuwe"
	"github.com/rs/zerolog/log"
)

// Holder publishes immutable Engine snapshots. Readers never block;
// a new snapshot replaces the old one atomically.
type Holder struct {
	path    string
	rules   *yuwe.Rules
	current atomic.Pointer[snapshot]

	swapMu   sync.Mutex
	hookMu   sync.Mutex
	onReload []func(*yuwe.Engine)
}

// New loads the dictionary at path. A missing file yields an engine with
// an empty dictionary; a malformed file is an error. A nil rules selects
// the default rule set.
func New(path string, rules *yuwe.Rules) (*Holder, error) {
	if rules == nil {
		rules = yuwe.DefaultRules()
	}
	h := &Holder{path: path, rules: rules}
	entries, err := h.read()
	if err != nil {
		return nil, err
	}
	// generations restart from the start time so that results a previous
	// process left in a shared cache are not reused
	h.current.Store(&snapshot{
		engine:     yuwe.NewWithRules(entries, rules),
		generation: uint64(time.Now().UnixNano()),
	})
	return h, nil
}

// snapshot pairs an engine with its generation, which grows by one on
// every swap.
type snapshot struct {
	engine     *yuwe.Engine
	generation uint64
}

// Engine returns the current snapshot.
func (h *Holder) Engine() *yuwe.Engine {
	return h.current.Load().engine
}

// Snapshot returns the current engine and its generation. Results
// computed on an engine can be tagged with the generation to tell them
// apart from results of later snapshots.
func (h *Holder) Snapshot() (*yuwe.Engine, uint64) {
	s := h.current.Load()
	return s.engine, s.generation
}

// Path returns the watched dictionary file.
func (h *Holder) Path() string {
	return h.path
}

// OnReload registers fn to be called with every new snapshot.
func (h *Holder) OnReload(fn func(*yuwe.Engine)) {
	h.hookMu.Lock()
	h.onReload = append(h.onReload, fn)
	h.hookMu.Unlock()
}

// Reload rebuilds the engine from the dictionary file. On error the
// current snapshot stays in place.
func (h *Holder) Reload() error {
	entries, err := h.read()
	if err != nil {
		return err
	}
	h.Swap(entries)
	return nil
}

// Swap installs a snapshot built from entries.
func (h *Holder) Swap(entries []yuwe.Entry) {
	e := yuwe.NewWithRules(entries, h.rules)
	h.swapMu.Lock()
	h.current.Store(&snapshot{engine: e, generation: h.current.Load().generation + 1})
	h.swapMu.Unlock()
	log.Info().Int("entries", e.Dictionary().Len()).Msg("dictionary loaded")

	h.hookMu.Lock()
	hooks := h.onReload
	h.hookMu.Unlock()
	for _, fn := range hooks {
		fn(e)
	}
}

func (h *Holder) read() ([]yuwe.Entry, error) {
	entries, err := yuwe.LoadDictionaryFile(h.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("path", h.path).Msg("dictionary file not found, using an empty dictionary")
		return []yuwe.Entry{}, nil
	}
	return entries, err
}
