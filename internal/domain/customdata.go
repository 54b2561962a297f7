package domain

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// CustomDataLimit is the maximum serialized size of a card's side-channel blob.
const CustomDataLimit = 100

// Side-channel keys and the values written under them.
const (
	// KeyInterval records the last operation that moved the card's due day.
	KeyInterval = "v"
	// KeyEase records the last operation that touched the ease factor.
	KeyEase = "e"
	// KeySuccessRate caches the success rate of the last ease computation.
	KeySuccessRate = "sr"

	TagReschedule = "reschedule"
	TagPostpone   = "postpone"
	TagAdvance    = "advance"
	TagDisperse   = "disperse"
	TagReview     = "review"
	TagAdjusted   = "adjusted"
)

// CustomData is a small JSON object attached to a card. The zero value is
// an empty blob.
type CustomData string

// Get returns the string form of key, or "" when absent.
func (d CustomData) Get(key string) string {
	if d == "" {
		return ""
	}
	return gjson.Get(string(d), key).String()
}

// Has reports whether key is present.
func (d CustomData) Has(key string) bool {
	if d == "" {
		return false
	}
	return gjson.Get(string(d), key).Exists()
}

// Float returns key as a number. ok is false when the key is absent or not numeric.
func (d CustomData) Float(key string) (v float64, ok bool) {
	if d == "" {
		return 0, false
	}
	r := gjson.Get(string(d), key)
	if r.Type != gjson.Number {
		return 0, false
	}
	return r.Float(), true
}

// With returns a copy of the blob with key set to value. Existing keys are
// kept. It fails with ErrCustomDataOverflow instead of dropping anything
// when the result would not fit in CustomDataLimit bytes.
func (d CustomData) With(key string, value any) (CustomData, error) {
	base := string(d)
	if base == "" {
		base = "{}"
	}
	if !gjson.Valid(base) {
		return d, fmt.Errorf("custom data %q: %w", base, ErrValidation)
	}

	out, err := sjson.Set(base, key, value)
	if err != nil {
		return d, fmt.Errorf("set custom data %s: %w", key, err)
	}
	if len(out) > CustomDataLimit {
		return d, fmt.Errorf("set %s: %d bytes: %w", key, len(out), ErrCustomDataOverflow)
	}
	return CustomData(out), nil
}

// Without returns a copy of the blob with key removed.
func (d CustomData) Without(key string) (CustomData, error) {
	if !d.Has(key) {
		return d, nil
	}
	out, err := sjson.Delete(string(d), key)
	if err != nil {
		return d, fmt.Errorf("delete custom data %s: %w", key, err)
	}
	return CustomData(out), nil
}
