package world

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveFiles expands glob patterns into a sorted, de-duplicated list
// of definition files. Patterns support ** recursion.
func ResolveFiles(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadFiles applies every definition file to the model in order and
// merges the results. Room and item keys from later files shadow
// earlier ones in the merged maps; the created entities all remain in
// the model.
func LoadFiles(m *Model, paths []string) (*Applied, error) {
	merged := &Applied{
		Rooms: make(map[string]ID),
		Items: make(map[string]ID),
	}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open world file: %w", err)
		}
		def, err := LoadDefinition(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		applied, err := def.Apply(m)
		if err != nil {
			return nil, fmt.Errorf("apply %s: %w", path, err)
		}

		for _, key := range applied.RoomKeys {
			if _, ok := merged.Rooms[key]; !ok {
				merged.RoomKeys = append(merged.RoomKeys, key)
			}
			merged.Rooms[key] = applied.Rooms[key]
		}
		for key, id := range applied.Items {
			merged.Items[key] = id
		}
		merged.Players = append(merged.Players, applied.Players...)

		m.logger.Info("Applied world definition", "path", path,
			"rooms", len(applied.Rooms), "items", len(applied.Items), "players", len(applied.Players))
	}
	return merged, nil
}
