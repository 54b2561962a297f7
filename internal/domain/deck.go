package domain

import (
	"sort"
	"strings"
)

// DeckSeparator separates the levels of a deck name.
const DeckSeparator = "::"

// Defaults used when neither a deck nor any of its parents configure a value.
const (
	DefaultStartingEase = 2500
	DefaultEasyFactor   = 1.3
	DefaultHardFactor   = 1.2
	DefaultLapseMult    = 0.0
	DefaultMaxInterval  = 3650
)

// Deck is a node of the deck tree. ConfigID is nil when the deck inherits
// its parent's configuration.
type Deck struct {
	ID       int64
	Name     string
	ConfigID *int64
}

// ParentName returns the name of the parent deck, or "" for a top-level deck.
func (d Deck) ParentName() string {
	i := strings.LastIndex(d.Name, DeckSeparator)
	if i < 0 {
		return ""
	}
	return d.Name[:i]
}

// IsSameOrChildOf reports whether d is the deck named parent or below it.
func (d Deck) IsSameOrChildOf(parent string) bool {
	return d.Name == parent || strings.HasPrefix(d.Name, parent+DeckSeparator)
}

// DeckConfig holds the per-deck review options the engine reads. Nil fields
// are not set on this config.
type DeckConfig struct {
	ID           int64
	Name         string
	StartingEase *int
	EasyFactor   *float64
	HardFactor   *float64
	LapseMult    *float64
	MaxInterval  *int
}

// ReviewOptions is a fully populated DeckConfig.
type ReviewOptions struct {
	StartingEase int
	EasyFactor   float64
	HardFactor   float64
	LapseMult    float64
	MaxInterval  int
}

// DefaultReviewOptions returns the documented fallback values.
func DefaultReviewOptions() ReviewOptions {
	return ReviewOptions{
		StartingEase: DefaultStartingEase,
		EasyFactor:   DefaultEasyFactor,
		HardFactor:   DefaultHardFactor,
		LapseMult:    DefaultLapseMult,
		MaxInterval:  DefaultMaxInterval,
	}
}

// fillFrom sets every option still missing in set from cfg.
func (o *ReviewOptions) fillFrom(cfg *DeckConfig, set map[string]bool) {
	if cfg == nil {
		return
	}
	if cfg.StartingEase != nil && *cfg.StartingEase > 0 && !set["starting_ease"] {
		o.StartingEase, set["starting_ease"] = *cfg.StartingEase, true
	}
	if cfg.EasyFactor != nil && !set["easy_factor"] {
		o.EasyFactor, set["easy_factor"] = *cfg.EasyFactor, true
	}
	if cfg.HardFactor != nil && !set["hard_factor"] {
		o.HardFactor, set["hard_factor"] = *cfg.HardFactor, true
	}
	if cfg.LapseMult != nil && !set["lapse_mult"] {
		o.LapseMult, set["lapse_mult"] = *cfg.LapseMult, true
	}
	if cfg.MaxInterval != nil && *cfg.MaxInterval > 0 && !set["max_interval"] {
		o.MaxInterval, set["max_interval"] = *cfg.MaxInterval, true
	}
}

// DeckTree indexes decks by id and name and resolves inherited options.
type DeckTree struct {
	byID    map[int64]Deck
	byName  map[string]Deck
	configs map[int64]*DeckConfig
}

// NewDeckTree builds a tree from all decks and deck configs of a collection.
func NewDeckTree(decks []Deck, configs []DeckConfig) *DeckTree {
	t := &DeckTree{
		byID:    make(map[int64]Deck, len(decks)),
		byName:  make(map[string]Deck, len(decks)),
		configs: make(map[int64]*DeckConfig, len(configs)),
	}
	for _, d := range decks {
		t.byID[d.ID] = d
		t.byName[d.Name] = d
	}
	for i := range configs {
		t.configs[configs[i].ID] = &configs[i]
	}
	return t
}

// Deck returns a deck by id.
func (t *DeckTree) Deck(id int64) (Deck, bool) {
	d, ok := t.byID[id]
	return d, ok
}

// ByName returns a deck by its full name.
func (t *DeckTree) ByName(name string) (Deck, bool) {
	d, ok := t.byName[name]
	return d, ok
}

// Name returns the full name of a deck, or "" when the id is unknown.
func (t *DeckTree) Name(id int64) string {
	return t.byID[id].Name
}

// WithChildren returns the id of the deck and of every deck below it,
// sorted ascending.
func (t *DeckTree) WithChildren(id int64) []int64 {
	root, ok := t.byID[id]
	if !ok {
		return nil
	}
	ids := make([]int64, 0, 4)
	for _, d := range t.byID {
		if d.IsSameOrChildOf(root.Name) {
			ids = append(ids, d.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// All returns every deck sorted by name.
func (t *DeckTree) All() []Deck {
	out := make([]Deck, 0, len(t.byID))
	for _, d := range t.byID {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Options resolves the review options of a deck. Values not configured on
// the deck's own config are taken from the closest ancestor that sets them,
// then from the defaults. Unknown decks get the defaults.
func (t *DeckTree) Options(deckID int64) ReviewOptions {
	opts := DefaultReviewOptions()
	set := make(map[string]bool, 5)

	d, ok := t.byID[deckID]
	for ok {
		if d.ConfigID != nil {
			opts.fillFrom(t.configs[*d.ConfigID], set)
		}
		parent := d.ParentName()
		if parent == "" {
			break
		}
		d, ok = t.byName[parent]
	}
	return opts
}
