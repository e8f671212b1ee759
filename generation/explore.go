package generation

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Discovery is one newly reached number during an exploration
type Discovery struct {
	Iteration int
	Number    CatacombNumber
	Level     int
}

// Explore walks the catacombs breadth-first from start, calling visit once
// per newly reached number until limit numbers have been reported or nothing
// is left to visit. It returns the number of discoveries.
// Composite numbers are reported when allowComposite is set but never walked
// into, since they are dead ends.
func Explore(start string, base int, allowComposite bool, limit int, visit func(Discovery)) (int, error) {
	root, err := SeedNumber(start)
	if err != nil {
		return 0, err
	}
	if err := ValidateBase(base); err != nil {
		return 0, err
	}

	type queued struct {
		number CatacombNumber
		level  int
	}

	visited := mapset.New[string]()
	visited.Put(root.Value)
	queue := []queued{{number: root, level: 1}}

	found := 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		extensions, err := ComputeExtensions(current.number.Value, base)
		if err != nil {
			return found, fmt.Errorf("explore %s: %w", current.number.Value, err)
		}

		for _, ext := range extensions {
			if !admissible(ext, allowComposite) || visited.Has(ext.Value) {
				continue
			}
			if found >= limit {
				return found, nil
			}

			visited.Put(ext.Value)
			found++
			visit(Discovery{Iteration: found, Number: ext, Level: current.level})

			if ext.IsPrime {
				queue = append(queue, queued{number: ext, level: current.level + 1})
			}
		}
	}

	return found, nil
}
