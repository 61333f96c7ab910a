package collection

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Lookup is the static read model for the collection: mint address to display ID
// and mint address to rarity rank. Both maps are built once at startup and never
// mutated, so it is safe to share across request handlers without locking.
type Lookup struct {
	ids   map[string]int
	ranks map[string]int
}

// New builds a Lookup directly from in-memory maps.
func New(ids, ranks map[string]int) *Lookup {
	return &Lookup{ids: ids, ranks: ranks}
}

// Load reads the two lookup tables from JSON files of {"<mint>": <int>} shape.
func Load(idPath, rankPath string) (*Lookup, error) {
	ids, err := loadTable(idPath)
	if err != nil {
		return nil, fmt.Errorf("load display id table: %w", err)
	}
	ranks, err := loadTable(rankPath)
	if err != nil {
		return nil, fmt.Errorf("load rank table: %w", err)
	}
	return New(ids, ranks), nil
}

func loadTable(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var table map[string]int
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// DisplayID resolves the human-facing sequential ID for a mint.
// A missing mint is a valid outcome, not an error.
func (l *Lookup) DisplayID(mint string) (int, bool) {
	id, ok := l.ids[mint]
	return id, ok
}

// Rank resolves the precomputed rarity rank for a mint.
func (l *Lookup) Rank(mint string) (int, bool) {
	rank, ok := l.ranks[mint]
	return rank, ok
}

// Mints returns the full key set of the display ID table, sorted. Every
// configured NFT is watched, so this is the account list sent to the
// webhook registrar.
func (l *Lookup) Mints() []string {
	mints := make([]string, 0, len(l.ids))
	for mint := range l.ids {
		mints = append(mints, mint)
	}
	sort.Strings(mints)
	return mints
}

// Len reports the number of configured NFTs.
func (l *Lookup) Len() int {
	return len(l.ids)
}
