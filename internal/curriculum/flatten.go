package curriculum

import "sort"

// Flatten walks the path/module/lesson tree in declared order, assigns
// each lesson its sortable key and overlays user status. The result is
// sorted by key, which makes every downstream derivation order-stable.
func Flatten(paths []Path, statuses map[string]StatusEntry) []FlatLesson {
	var out []FlatLesson

	for _, p := range paths {
		for _, m := range p.Modules {
			for _, l := range m.Lessons {
				fl := FlatLesson{
					ID:          l.ID,
					Title:       l.Title,
					Key:         p.Order*10000 + m.Order*100 + l.Order,
					Concepts:    l.Concepts,
					ModuleTitle: m.Title,
					PathID:      p.ID,
					PathTitle:   p.Title,
					Difficulty:  p.Difficulty,
					Status:      StatusNotStarted,
				}
				if entry, ok := statuses[l.ID]; ok {
					fl.Status = entry.Status
					fl.CompletedAt = entry.CompletedAt
				}
				out = append(out, fl)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})

	return out
}
