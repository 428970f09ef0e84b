package icebreakers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"icebreaker-backend/internal/shared/util"
)

//go:embed bank.json
var bankJSON []byte

//go:embed bank_schema.json
var bankSchemaJSON []byte

// Categories is the fixed ordered list used for diversity balancing.
var Categories = []string{
	"career_background",
	"soft_skills",
	"personality_motivation",
}

// Starter is one catalog entry. The catalog is loaded once at startup and
// never mutated afterwards.
type Starter struct {
	ID          int      `json:"id"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Question    string   `json:"question"`
	Tags        []string `json:"tags"`
}

// HasTag reports whether the starter carries the given tag.
func (s Starter) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Bank is the immutable question catalog. Safe for unsynchronized concurrent
// reads.
type Bank struct {
	starters    []Starter
	byID        map[int]Starter
	byCategory  map[string][]Starter
	fingerprint string
}

// LoadBank parses and validates the embedded catalog. A validation failure is
// a build defect and should abort startup.
func LoadBank() (*Bank, error) {
	return loadBankFrom(bankJSON)
}

func loadBankFrom(raw []byte) (*Bank, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(bankSchemaJSON),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("validate question bank: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, fmt.Errorf("question bank schema violations: %s", strings.Join(issues, "; "))
	}

	var starters []Starter
	if err := json.Unmarshal(raw, &starters); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	bank := &Bank{
		starters:    starters,
		byID:        make(map[int]Starter, len(starters)),
		byCategory:  make(map[string][]Starter, len(Categories)),
		fingerprint: util.Fingerprint(raw),
	}
	for _, starter := range starters {
		if _, exists := bank.byID[starter.ID]; exists {
			return nil, fmt.Errorf("question bank: duplicate id %d", starter.ID)
		}
		bank.byID[starter.ID] = starter
		bank.byCategory[starter.Category] = append(bank.byCategory[starter.Category], starter)
	}
	return bank, nil
}

// Len returns the catalog size.
func (b *Bank) Len() int {
	return len(b.starters)
}

// Fingerprint identifies the loaded catalog revision.
func (b *Bank) Fingerprint() string {
	return b.fingerprint
}

// All returns every starter in catalog order. Callers must not mutate.
func (b *Bank) All() []Starter {
	return b.starters
}

// ByID looks a starter up by id.
func (b *Bank) ByID(id int) (Starter, bool) {
	starter, ok := b.byID[id]
	return starter, ok
}

// ByCategory returns the starters in one category, catalog order.
func (b *Bank) ByCategory(category string) []Starter {
	return b.byCategory[category]
}

// BySubcategory returns the starters in one subcategory.
func (b *Bank) BySubcategory(subcategory string) []Starter {
	out := make([]Starter, 0, 8)
	for _, starter := range b.starters {
		if strings.EqualFold(starter.Subcategory, subcategory) {
			out = append(out, starter)
		}
	}
	return out
}

// ByTags returns the starters carrying at least one of the given tags.
func (b *Bank) ByTags(tags []string) []Starter {
	out := make([]Starter, 0, 8)
	for _, starter := range b.starters {
		for _, tag := range tags {
			if starter.HasTag(tag) {
				out = append(out, starter)
				break
			}
		}
	}
	return out
}
