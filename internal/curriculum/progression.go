package curriculum

import (
	"math"
	"sort"
	"strings"
)

const (
	maxRecentCompleted = 5
	maxNextLessons     = 3
	recentConceptSpan  = 3
)

// BuildProgression derives the user's curriculum position from the
// published tree, their lesson statuses and the set of concepts they have
// already mastered. Returns nil when the curriculum is empty.
//
// The current lesson is the first in_progress lesson in flattened key
// order, else the first not_started one. When several lessons are
// simultaneously in_progress across paths, first-by-key wins.
func BuildProgression(paths []Path, statuses map[string]StatusEntry, mastered []string) *Progression {
	flat := Flatten(paths, statuses)
	if len(flat) == 0 {
		return nil
	}

	current := locateCurrent(flat)

	// Percent and module counts are scoped to the active path; when the
	// whole curriculum is done, report on the first path.
	scopePath := flat[0].PathID
	if current != nil {
		scopePath = current.PathID
	}

	prog := &Progression{
		CurrentLesson:   current,
		RecentCompleted: recentCompletedTitles(flat),
		RecentConcepts:  recentConcepts(flat),
	}

	if current != nil {
		prog.PathTitle = current.PathTitle
		prog.Difficulty = current.Difficulty
		prog.CurrentModule = current.ModuleTitle
		prog.NextLessons = nextLessonTitles(flat, current.Key)
		prog.ConceptGaps = conceptGaps(current.Concepts, mastered)
	} else {
		prog.PathTitle = flat[0].PathTitle
		prog.Difficulty = flat[0].Difficulty
	}

	prog.ModulesCompleted, prog.ModulesTotal = moduleCounts(flat, scopePath)
	prog.OverallPercent = pathPercent(flat, scopePath)

	return prog
}

func locateCurrent(flat []FlatLesson) *FlatLesson {
	for i := range flat {
		if flat[i].Status == StatusInProgress {
			return &flat[i]
		}
	}
	for i := range flat {
		if flat[i].Status == StatusNotStarted {
			return &flat[i]
		}
	}
	return nil
}

func nextLessonTitles(flat []FlatLesson, afterKey int) []string {
	var titles []string
	for i := range flat {
		if flat[i].Key <= afterKey || flat[i].Status != StatusNotStarted {
			continue
		}
		titles = append(titles, flat[i].Title)
		if len(titles) == maxNextLessons {
			break
		}
	}
	return titles
}

// completedByRecency returns completed lessons sorted by completion time
// descending, key ascending on ties so the order is stable.
func completedByRecency(flat []FlatLesson) []FlatLesson {
	var done []FlatLesson
	for i := range flat {
		if flat[i].Status == StatusCompleted {
			done = append(done, flat[i])
		}
	}
	sort.SliceStable(done, func(i, j int) bool {
		ti, tj := done[i].CompletedAt, done[j].CompletedAt
		switch {
		case ti == nil && tj == nil:
			return done[i].Key < done[j].Key
		case ti == nil:
			return false
		case tj == nil:
			return true
		case ti.Equal(*tj):
			return done[i].Key < done[j].Key
		default:
			return ti.After(*tj)
		}
	})
	return done
}

func recentCompletedTitles(flat []FlatLesson) []string {
	done := completedByRecency(flat)
	if len(done) > maxRecentCompleted {
		done = done[:maxRecentCompleted]
	}
	titles := make([]string, len(done))
	for i, l := range done {
		titles[i] = l.Title
	}
	return titles
}

func recentConcepts(flat []FlatLesson) []string {
	done := completedByRecency(flat)
	if len(done) > recentConceptSpan {
		done = done[:recentConceptSpan]
	}
	seen := make(map[string]bool)
	var concepts []string
	for _, l := range done {
		for _, c := range l.Concepts {
			key := strings.ToLower(c)
			if seen[key] {
				continue
			}
			seen[key] = true
			concepts = append(concepts, c)
		}
	}
	return concepts
}

func conceptGaps(taught, mastered []string) []string {
	have := make(map[string]bool, len(mastered))
	for _, c := range mastered {
		have[strings.ToLower(c)] = true
	}
	var gaps []string
	for _, c := range taught {
		if !have[strings.ToLower(c)] {
			gaps = append(gaps, c)
		}
	}
	return gaps
}

func moduleCounts(flat []FlatLesson, pathID string) (completed, total int) {
	type moduleState struct {
		lessons int
		done    int
	}
	modules := make(map[string]*moduleState)
	var order []string
	for i := range flat {
		if flat[i].PathID != pathID {
			continue
		}
		st, ok := modules[flat[i].ModuleTitle]
		if !ok {
			st = &moduleState{}
			modules[flat[i].ModuleTitle] = st
			order = append(order, flat[i].ModuleTitle)
		}
		st.lessons++
		if flat[i].Status == StatusCompleted {
			st.done++
		}
	}
	for _, title := range order {
		st := modules[title]
		if st.lessons > 0 && st.done == st.lessons {
			completed++
		}
	}
	return completed, len(order)
}

func pathPercent(flat []FlatLesson, pathID string) int {
	var total, done int
	for i := range flat {
		if flat[i].PathID != pathID {
			continue
		}
		total++
		if flat[i].Status == StatusCompleted {
			done++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
