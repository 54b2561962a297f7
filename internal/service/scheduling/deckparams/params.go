// Package deckparams parses the deck parameter script and resolves the
// parameters that apply to a deck.
//
// The script is a YAML document preceded by a marker comment:
//
//	# Custom Scheduler v1.0.0
//	deckParams:
//	  - deckName: "global config for Custom Scheduler"
//	    daysUpper: 200
//	    minAgainMult: 0
//	  - deckName: "Japanese"
//	    daysUpper: 150
//	skipDecks: ["Archive"]
package deckparams

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// GlobalDeckName names the entry every other entry inherits from.
const GlobalDeckName = "global config for Custom Scheduler"

const (
	markerPrefix = "# Custom Scheduler v"
	// SupportedVersion is the script version this package understands.
	SupportedVersion = "1.0.0"
	// supportedRange accepts any patch release of the supported minor.
	supportedRange = "~1.0"
)

var (
	ErrMissingMarker   = errors.New("custom scheduler marker not found")
	ErrMalformed       = errors.New("malformed deck parameters")
	ErrMissingGlobal   = errors.New("missing global config")
	ErrMissingField    = errors.New("missing required field")
	ErrMissingDeckName = errors.New("missing deck name")
)

// ParseError collects every problem found in a script.
type ParseError struct {
	Errs []error
}

func (e *ParseError) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Unwrap exposes the collected errors to errors.Is.
func (e *ParseError) Unwrap() []error {
	return e.Errs
}

// Messages returns one human-readable line per problem.
func (e *ParseError) Messages() []string {
	out := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		out[i] = err.Error()
	}
	return out
}

// Entry is one record of the script. Nil fields are inherited.
type Entry struct {
	DeckName     *string  `yaml:"deckName"`
	DaysUpper    *float64 `yaml:"daysUpper"`
	MinAgainMult *float64 `yaml:"minAgainMult"`
	EasyFactor   *float64 `yaml:"easyFactor"`
	HardFactor   *float64 `yaml:"hardFactor"`
	AgainMult    *float64 `yaml:"againMult"`
	MaxIvl       *int     `yaml:"maxIvl"`
}

type document struct {
	DeckParams []Entry  `yaml:"deckParams"`
	SkipDecks  []string `yaml:"skipDecks"`
}

// Set is a parsed script.
type Set struct {
	Version *semver.Version
	global  Entry
	// entries are sorted by name length, then name, so overlaying them in
	// order applies the longest matching prefix last.
	entries   []Entry
	skipDecks []string
}

// Params are the parameters in effect for one deck.
type Params struct {
	DaysUpper    float64
	MinAgainMult float64
	EasyFactor   float64
	HardFactor   float64
	AgainMult    float64
	MaxInterval  int
}

// Parse reads a script. Fatal problems are returned together as a
// *ParseError; a version that differs from SupportedVersion in major or
// minor only produces a warning.
func Parse(script string) (*Set, []string, error) {
	var (
		errs     []error
		warnings []string
	)

	version, err := parseMarker(script)
	if err != nil {
		return nil, nil, &ParseError{Errs: []error{err}}
	}
	if c, cerr := semver.NewConstraint(supportedRange); cerr == nil && !c.Check(version) {
		warnings = append(warnings, fmt.Sprintf(
			"script version %s differs from supported version %s", version, SupportedVersion))
	}

	var doc document
	if err := yaml.Unmarshal([]byte(script), &doc); err != nil {
		return nil, warnings, &ParseError{Errs: []error{fmt.Errorf("%w: %v", ErrMalformed, err)}}
	}

	set := &Set{Version: version, skipDecks: doc.SkipDecks}
	var haveGlobal bool
	for i, e := range doc.DeckParams {
		if e.DeckName == nil || strings.TrimSpace(*e.DeckName) == "" {
			errs = append(errs, fmt.Errorf("%w: entry %d", ErrMissingDeckName, i+1))
			continue
		}
		if err := e.validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if *e.DeckName == GlobalDeckName {
			if haveGlobal {
				errs = append(errs, fmt.Errorf("%w: global config defined twice", ErrMalformed))
				continue
			}
			haveGlobal = true
			set.global = e
			continue
		}
		set.entries = append(set.entries, e)
	}

	if !haveGlobal {
		errs = append(errs, fmt.Errorf("%w: no entry named %q", ErrMissingGlobal, GlobalDeckName))
	} else {
		if set.global.DaysUpper == nil {
			errs = append(errs, fmt.Errorf("%w: global config lacks daysUpper", ErrMissingField))
		}
		if set.global.MinAgainMult == nil {
			errs = append(errs, fmt.Errorf("%w: global config lacks minAgainMult", ErrMissingField))
		}
	}

	if len(errs) > 0 {
		return nil, warnings, &ParseError{Errs: errs}
	}

	sort.SliceStable(set.entries, func(i, j int) bool {
		a, b := *set.entries[i].DeckName, *set.entries[j].DeckName
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
	return set, warnings, nil
}

func parseMarker(script string) (*semver.Version, error) {
	sc := bufio.NewScanner(strings.NewReader(script))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, markerPrefix) {
			continue
		}
		raw := strings.Fields(strings.TrimPrefix(line, markerPrefix))
		if len(raw) == 0 {
			break
		}
		v, err := semver.StrictNewVersion(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%w: version %q: %v", ErrMissingMarker, raw[0], err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: add a %q line with the script version", ErrMissingMarker, markerPrefix+SupportedVersion)
}

func (e Entry) validate() error {
	name := *e.DeckName
	switch {
	case e.DaysUpper != nil && *e.DaysUpper < 0:
		return fmt.Errorf("%w: %s: daysUpper must not be negative", ErrMalformed, name)
	case e.MinAgainMult != nil && *e.MinAgainMult < 0:
		return fmt.Errorf("%w: %s: minAgainMult must not be negative", ErrMalformed, name)
	case e.MaxIvl != nil && *e.MaxIvl < 1:
		return fmt.Errorf("%w: %s: maxIvl must be at least 1", ErrMalformed, name)
	}
	return nil
}

// Resolve returns the parameters for the deck with the given full name.
// Entries whose name is a prefix of deckPath are overlaid on the global
// entry, shortest name first. Fields no entry sets come from opts, the
// review options of the deck's configuration.
func (s *Set) Resolve(deckPath string, opts domain.ReviewOptions) Params {
	p := Params{
		EasyFactor:  opts.EasyFactor,
		HardFactor:  opts.HardFactor,
		AgainMult:   opts.LapseMult,
		MaxInterval: opts.MaxInterval,
	}
	p.overlay(s.global)
	for _, e := range s.entries {
		if strings.HasPrefix(deckPath, *e.DeckName) {
			p.overlay(e)
		}
	}
	return p
}

func (p *Params) overlay(e Entry) {
	if e.DaysUpper != nil {
		p.DaysUpper = *e.DaysUpper
	}
	if e.MinAgainMult != nil {
		p.MinAgainMult = *e.MinAgainMult
	}
	if e.EasyFactor != nil {
		p.EasyFactor = *e.EasyFactor
	}
	if e.HardFactor != nil {
		p.HardFactor = *e.HardFactor
	}
	if e.AgainMult != nil {
		p.AgainMult = *e.AgainMult
	}
	if e.MaxIvl != nil {
		p.MaxInterval = *e.MaxIvl
	}
}

// SkipDecks maps the configured skip names to deck ids. A name covers every
// deck whose full name starts with it. Names that match no deck produce a
// warning.
func (s *Set) SkipDecks(decks []domain.Deck) (map[int64]struct{}, []string) {
	ids := make(map[int64]struct{})
	var warnings []string
	for _, name := range s.skipDecks {
		found := false
		for _, d := range decks {
			if strings.HasPrefix(d.Name, name) {
				ids[d.ID] = struct{}{}
				found = true
			}
		}
		if !found {
			warnings = append(warnings, fmt.Sprintf("skip deck %q matches no deck", name))
		}
	}
	return ids, warnings
}
