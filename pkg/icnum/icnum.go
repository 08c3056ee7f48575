// Package icnum implements the IC-number hashing demo: realistic 12-digit
// IC generation, a folding hash, and a chained hash table that counts
// collisions.
package icnum

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// ICLength is the number of digits in a Malaysian IC number.
const ICLength = 12

var (
	dobStart = time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)
	dobEnd   = time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// GenerateIC produces a realistic IC number: a yymmdd date of birth, a
// two-digit state code, a three-digit sequence, and a gender digit.
func GenerateIC(rng *rand.Rand) string {
	deltaDays := int(dobEnd.Sub(dobStart).Hours() / 24)
	dob := dobStart.AddDate(0, 0, rng.Intn(deltaDays+1))

	return fmt.Sprintf("%s%02d%03d%d",
		dob.Format("060102"),
		rng.Intn(99)+1,
		rng.Intn(1000),
		rng.Intn(10))
}

// FoldingHash folds the IC into four 3-digit parts and sums them modulo the
// table size. A non-numeric or wrong-length IC is rejected, as is a
// non-positive table size.
func FoldingHash(ic string, tableSize int) (int, error) {
	if tableSize < 1 {
		return 0, fmt.Errorf("table size must be positive, got %d", tableSize)
	}
	if len(ic) != ICLength {
		return 0, fmt.Errorf("IC number must be %d digits", ICLength)
	}
	// Atoi alone would accept signed parts like "-99", so check the digits
	// directly.
	for _, r := range ic {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("IC number must be numeric, got %q", ic)
		}
	}

	sum := 0
	for i := 0; i < ICLength; i += 3 {
		part, _ := strconv.Atoi(ic[i : i+3])
		sum += part
	}
	return sum % tableSize, nil
}

// ChainedTable is a hash table with separate chaining. An insert into a
// non-empty bucket counts as a collision.
type ChainedTable struct {
	buckets    [][]string
	collisions int
	inserted   int
}

// NewChainedTable creates a table with the given number of buckets.
func NewChainedTable(size int) *ChainedTable {
	return &ChainedTable{buckets: make([][]string, size)}
}

// Insert hashes the IC into its bucket.
func (t *ChainedTable) Insert(ic string) error {
	idx, err := FoldingHash(ic, len(t.buckets))
	if err != nil {
		return err
	}
	if len(t.buckets[idx]) > 0 {
		t.collisions++
	}
	t.buckets[idx] = append(t.buckets[idx], ic)
	t.inserted++
	return nil
}

// Size returns the number of buckets.
func (t *ChainedTable) Size() int {
	return len(t.buckets)
}

// Bucket returns the chain at the given index.
func (t *ChainedTable) Bucket(i int) []string {
	return t.buckets[i]
}

// Collisions returns the number of inserts that hit a non-empty bucket.
func (t *ChainedTable) Collisions() int {
	return t.collisions
}

// CollisionRate returns collisions over inserted entries.
func (t *ChainedTable) CollisionRate() float64 {
	if t.inserted == 0 {
		return 0
	}
	return float64(t.collisions) / float64(t.inserted)
}

// LoadFactor returns inserted entries over bucket count.
func (t *ChainedTable) LoadFactor() float64 {
	return float64(t.inserted) / float64(len(t.buckets))
}
