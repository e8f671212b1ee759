package generation

import (
	"fmt"

	"prime-catacombs/config"
	"prime-catacombs/random"
)

// Entry is one slot along a room's wall: an archway or a blank wall
type Entry interface {
	isEntry()
}

// ArchEntry is an enterable archway leading to Number
type ArchEntry struct {
	Number CatacombNumber
}

// BlankEntry is a filler wall that cannot be entered
type BlankEntry struct {
	ShowDecoration bool
}

func (ArchEntry) isEntry()  {}
func (BlankEntry) isEntry() {}

// IndexBounds returns the inclusive relative index range for n entries.
// Index 0 is always in range when n > 0; both bounds are 0 for n <= 1.
func IndexBounds(n int) (smallest, largest int) {
	span := max(n-1, 0)
	return -(span / 2), (span + 1) / 2
}

// EntriesSeed and StartSeed key the two independent streams of a room
func EntriesSeed(value string) string { return value + "-Entries" }
func StartSeed(value string) string   { return value + "-Start" }

// BuildEntries lays out the room for current and picks where the camera starts.
// It is a pure function of (current.Value, base, allowComposite). A room whose
// number is not prime, or which has nothing to enter, comes back empty.
func BuildEntries(current CatacombNumber, base int, allowComposite bool) ([]Entry, int, error) {
	if !current.IsPrime {
		return nil, 0, nil
	}

	extensions, err := ComputeExtensions(current.Value, base)
	if err != nil {
		return nil, 0, fmt.Errorf("build entries for %s: %w", current.Value, err)
	}
	if len(extensions) == 0 {
		return nil, 0, nil
	}

	entries := make([]Entry, 0, len(extensions))
	for _, ext := range extensions {
		if admissible(ext, allowComposite) {
			entries = append(entries, ArchEntry{Number: ext})
		}
	}

	// Stream A: blank walls, their decoration and the interleave order
	composition := random.New(EntriesSeed(current.Value))
	numBlanks, err := composition.RandomInt(0, (len(entries)+1)/2)
	if err != nil {
		return nil, 0, fmt.Errorf("build entries for %s: %w", current.Value, err)
	}
	for i := 0; i < numBlanks; i++ {
		entries = append(entries, BlankEntry{
			ShowDecoration: composition.Next() < config.DecorationProbability,
		})
	}
	random.Shuffle(entries, composition)

	// Stream B: starting position only
	smallest, largest := IndexBounds(len(entries))
	start, err := random.New(StartSeed(current.Value)).RandomInt(smallest, largest)
	if err != nil {
		return nil, 0, fmt.Errorf("build entries for %s: %w", current.Value, err)
	}

	if len(entries) == 0 {
		return nil, start, nil
	}
	return entries, start, nil
}

func admissible(n CatacombNumber, allowComposite bool) bool {
	if allowComposite {
		return n.Value != "0"
	}
	return n.IsPrime
}

// CountArches returns how many entries can be entered
func CountArches(entries []Entry) int {
	count := 0
	for _, e := range entries {
		if _, ok := e.(ArchEntry); ok {
			count++
		}
	}
	return count
}
