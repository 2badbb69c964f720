// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "frustration_score", Type: field.TypeFloat64, Default: 0},
		{Name: "frustration_level", Type: field.TypeString, Default: ""},
		{Name: "interrupted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1], ChatMessagesColumns[8]},
			},
			{
				Name:    "chatmessage_user_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[2]},
			},
		},
	}
	// ConceptMasteriesColumns holds the columns for the "concept_masteries" table.
	ConceptMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString},
		{Name: "mastery_level", Type: field.TypeInt, Default: 0},
		{Name: "practice_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
	}
	// ConceptMasteriesTable holds the schema information for the "concept_masteries" table.
	ConceptMasteriesTable = &schema.Table{
		Name:       "concept_masteries",
		Columns:    ConceptMasteriesColumns,
		PrimaryKey: []*schema.Column{ConceptMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conceptmastery_user_id_concept",
				Unique:  true,
				Columns: []*schema.Column{ConceptMasteriesColumns[1], ConceptMasteriesColumns[2]},
			},
		},
	}
	// CurriculumPathsColumns holds the columns for the "curriculum_paths" table.
	CurriculumPathsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "path_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: "beginner"},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "published", Type: field.TypeBool, Default: true},
		{Name: "modules", Type: field.TypeJSON, Nullable: true},
	}
	// CurriculumPathsTable holds the schema information for the "curriculum_paths" table.
	CurriculumPathsTable = &schema.Table{
		Name:       "curriculum_paths",
		Columns:    CurriculumPathsColumns,
		PrimaryKey: []*schema.Column{CurriculumPathsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "curriculumpath_position",
				Unique:  false,
				Columns: []*schema.Column{CurriculumPathsColumns[4]},
			},
			{
				Name:    "curriculumpath_published",
				Unique:  false,
				Columns: []*schema.Column{CurriculumPathsColumns[5]},
			},
		},
	}
	// LessonProgressesColumns holds the columns for the "lesson_progresses" table.
	LessonProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "not_started"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// LessonProgressesTable holds the schema information for the "lesson_progresses" table.
	LessonProgressesTable = &schema.Table{
		Name:       "lesson_progresses",
		Columns:    LessonProgressesColumns,
		PrimaryKey: []*schema.Column{LessonProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonprogress_user_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{LessonProgressesColumns[1], LessonProgressesColumns[2]},
			},
			{
				Name:    "lessonprogress_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{LessonProgressesColumns[1], LessonProgressesColumns[3]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: "Learner"},
		{Name: "skill_level", Type: field.TypeString, Default: "beginner"},
		{Name: "learning_goal", Type: field.TypeString, Nullable: true},
		{Name: "streak_days", Type: field.TypeInt, Default: 0},
		{Name: "total_xp", Type: field.TypeInt, Default: 0},
		{Name: "lessons_completed", Type: field.TypeInt, Default: 0},
		{Name: "last_chat_at", Type: field.TypeTime, Nullable: true},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_user_id",
				Unique:  true,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
		},
	}
	// SessionSummariesColumns holds the columns for the "session_summaries" table.
	SessionSummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "concepts", Type: field.TypeJSON, Nullable: true},
		{Name: "user_state", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionSummariesTable holds the schema information for the "session_summaries" table.
	SessionSummariesTable = &schema.Table{
		Name:       "session_summaries",
		Columns:    SessionSummariesColumns,
		PrimaryKey: []*schema.Column{SessionSummariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionsummary_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionSummariesColumns[2], SessionSummariesColumns[6]},
			},
			{
				Name:    "sessionsummary_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionSummariesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		ConceptMasteriesTable,
		CurriculumPathsTable,
		LessonProgressesTable,
		ProfilesTable,
		SessionSummariesTable,
	}
)

func init() {
}
