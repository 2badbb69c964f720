// Code generated by ent, DO NOT EDIT.

package curriculumpath

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the curriculumpath type in the database.
	Label = "curriculum_path"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPathID holds the string denoting the path_id field in the database.
	FieldPathID = "path_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldPublished holds the string denoting the published field in the database.
	FieldPublished = "published"
	// FieldModules holds the string denoting the modules field in the database.
	FieldModules = "modules"
	// Table holds the table name of the curriculumpath in the database.
	Table = "curriculum_paths"
)

// Columns holds all SQL columns for curriculumpath fields.
var Columns = []string{
	FieldID,
	FieldPathID,
	FieldTitle,
	FieldDifficulty,
	FieldPosition,
	FieldPublished,
	FieldModules,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	PathIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// DefaultPublished holds the default value on creation for the "published" field.
	DefaultPublished bool
)

// OrderOption defines the ordering options for the CurriculumPath queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPathID orders the results by the path_id field.
func ByPathID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByPublished orders the results by the published field.
func ByPublished(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublished, opts...).ToFunc()
}
