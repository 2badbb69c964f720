package curriculum

import "time"

// Status is a user's progress state on a single lesson.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// StatusEntry is the progress record overlaid onto a lesson.
// Lessons without an entry default to not_started.
type StatusEntry struct {
	Status      Status
	CompletedAt *time.Time
}

// Path is one published learning path with its nested modules.
type Path struct {
	ID         string
	Title      string
	Difficulty string
	Order      int
	Modules    []Module
}

// Module groups ordered lessons within a path.
type Module struct {
	ID      string
	Title   string
	Order   int
	Lessons []Lesson
}

// Lesson is the leaf unit of the curriculum tree.
type Lesson struct {
	ID       string
	Title    string
	Order    int
	Concepts []string
}

// FlatLesson is a lesson flattened out of the path/module tree with its
// user status overlaid. Immutable snapshot, rebuilt per request.
type FlatLesson struct {
	ID          string
	Title       string
	Key         int // pathOrder*10000 + moduleOrder*100 + lessonOrder
	Concepts    []string
	ModuleTitle string
	PathID      string
	PathTitle   string
	Difficulty  string
	Status      Status
	CompletedAt *time.Time
}

// Progression is the user's derived position within the curriculum.
// Recomputed on every request, never persisted.
type Progression struct {
	PathTitle        string
	Difficulty       string
	CurrentLesson    *FlatLesson
	CurrentModule    string
	NextLessons      []string // up to 3 not_started titles after current
	RecentCompleted  []string // up to 5 titles, most recent first
	RecentConcepts   []string // concepts from the 3 most recently completed lessons
	ConceptGaps      []string // current lesson concepts not yet mastered
	ModulesCompleted int
	ModulesTotal     int
	OverallPercent   int
}
