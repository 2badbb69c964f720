// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ConceptMastery is the predicate function for conceptmastery builders.
type ConceptMastery func(*sql.Selector)

// CurriculumPath is the predicate function for curriculumpath builders.
type CurriculumPath func(*sql.Selector)

// LessonProgress is the predicate function for lessonprogress builders.
type LessonProgress func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// SessionSummary is the predicate function for sessionsummary builders.
type SessionSummary func(*sql.Selector)
