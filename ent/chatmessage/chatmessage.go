// Code generated by ent, DO NOT EDIT.

package chatmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the chatmessage type in the database.
	Label = "chat_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldFrustrationScore holds the string denoting the frustration_score field in the database.
	FieldFrustrationScore = "frustration_score"
	// FieldFrustrationLevel holds the string denoting the frustration_level field in the database.
	FieldFrustrationLevel = "frustration_level"
	// FieldInterrupted holds the string denoting the interrupted field in the database.
	FieldInterrupted = "interrupted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the chatmessage in the database.
	Table = "chat_messages"
)

// Columns holds all SQL columns for chatmessage fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldUserID,
	FieldRole,
	FieldContent,
	FieldFrustrationScore,
	FieldFrustrationLevel,
	FieldInterrupted,
	FieldCreatedAt,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
	// DefaultFrustrationScore holds the default value on creation for the "frustration_score" field.
	DefaultFrustrationScore float64
	// DefaultFrustrationLevel holds the default value on creation for the "frustration_level" field.
	DefaultFrustrationLevel string
	// DefaultInterrupted holds the default value on creation for the "interrupted" field.
	DefaultInterrupted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ChatMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByFrustrationScore orders the results by the frustration_score field.
func ByFrustrationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrustrationScore, opts...).ToFunc()
}

// ByFrustrationLevel orders the results by the frustration_level field.
func ByFrustrationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrustrationLevel, opts...).ToFunc()
}

// ByInterrupted orders the results by the interrupted field.
func ByInterrupted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterrupted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
