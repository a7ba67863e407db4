// Package catalog holds the static turnaround task graph: an immutable,
// validated set of task definitions with predecessor relationships.
package catalog

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/tarmac/internal/domain"
)

// Catalog is an immutable collection of task definitions whose dependency
// graph is known to be acyclic and fully resolved. Construct with New;
// a catalog that fails validation must never be used.
type Catalog struct {
	tasks      []domain.TaskDefinition
	byKey      map[string]int // key -> index into tasks
	byID       map[int]int    // id -> index into tasks
	dependents map[string][]string
}

// New validates the definitions and builds a catalog. It fails on duplicate
// ids or keys, non-contiguous ids, a dependency referencing an unknown key,
// or a cycle in the dependency graph. Callers are expected to treat an error
// as fatal at process start.
func New(defs []domain.TaskDefinition) (*Catalog, error) {
	c := &Catalog{
		tasks:      make([]domain.TaskDefinition, len(defs)),
		byKey:      make(map[string]int, len(defs)),
		byID:       make(map[int]int, len(defs)),
		dependents: make(map[string][]string),
	}
	copy(c.tasks, defs)

	for i, t := range c.tasks {
		if t.Key == "" {
			return nil, fmt.Errorf("task %d: key is required", t.ID)
		}
		if _, dup := c.byKey[t.Key]; dup {
			return nil, fmt.Errorf("duplicate task key %q", t.Key)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate task id %d", t.ID)
		}
		if t.TimeoutMin < 0 {
			return nil, fmt.Errorf("task %q: timeout must be non-negative", t.Key)
		}
		c.byKey[t.Key] = i
		c.byID[t.ID] = i
	}

	// Ids must be contiguous 0..N-1 so they can double as dense indexes.
	for id := 0; id < len(c.tasks); id++ {
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("task ids must be contiguous from 0: missing id %d", id)
		}
	}

	for _, t := range c.tasks {
		for _, dep := range t.Dependencies {
			if _, ok := c.byKey[dep]; !ok {
				return nil, fmt.Errorf("task %q references unknown dependency %q", t.Key, dep)
			}
			c.dependents[dep] = append(c.dependents[dep], t.Key)
		}
	}
	for k := range c.dependents {
		sort.Strings(c.dependents[k])
	}

	if cycle := c.detectCycle(); cycle != nil {
		return nil, fmt.Errorf("dependency cycle detected: %v", cycle)
	}

	return c, nil
}

// ByKey looks up a task definition by its mnemonic key.
func (c *Catalog) ByKey(key string) (domain.TaskDefinition, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return domain.TaskDefinition{}, false
	}
	return c.tasks[i], true
}

// ByID looks up a task definition by its integer id.
func (c *Catalog) ByID(id int) (domain.TaskDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.TaskDefinition{}, false
	}
	return c.tasks[i], true
}

// All returns the definitions in insertion order, which is the canonical
// display order. The returned slice is a copy.
func (c *Catalog) All() []domain.TaskDefinition {
	out := make([]domain.TaskDefinition, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Size returns the number of tasks in the catalog.
func (c *Catalog) Size() int {
	return len(c.tasks)
}

// Dependents returns the keys of tasks that list the given key as a
// dependency, sorted for determinism.
func (c *Catalog) Dependents(key string) []string {
	return c.dependents[key]
}

// detectCycle returns the cycle path if one exists, or nil if the graph is
// acyclic. DFS with tricolor marking: white (unvisited), gray (in progress),
// black (done).
func (c *Catalog) detectCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int)
	parent := make(map[string]string)

	var dfs func(key string) []string
	dfs = func(key string) []string {
		color[key] = gray
		for _, next := range c.dependents[key] {
			if color[next] == gray {
				// Reconstruct the cycle back through the parent chain.
				cycle := []string{next, key}
				cur := key
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next] == white {
				parent[next] = key
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[key] = black
		return nil
	}

	keys := make([]string, 0, len(c.tasks))
	for _, t := range c.tasks {
		keys = append(keys, t.Key)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if color[k] == white {
			if cycle := dfs(k); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
