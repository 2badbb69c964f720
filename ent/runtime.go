// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mkale/tutorloop/ent/chatmessage"
	"github.com/mkale/tutorloop/ent/conceptmastery"
	"github.com/mkale/tutorloop/ent/curriculumpath"
	"github.com/mkale/tutorloop/ent/lessonprogress"
	"github.com/mkale/tutorloop/ent/profile"
	"github.com/mkale/tutorloop/ent/schema"
	"github.com/mkale/tutorloop/ent/sessionsummary"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescSessionID is the schema descriptor for session_id field.
	chatmessageDescSessionID := chatmessageFields[0].Descriptor()
	// chatmessage.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	chatmessage.SessionIDValidator = chatmessageDescSessionID.Validators[0].(func(string) error)
	// chatmessageDescUserID is the schema descriptor for user_id field.
	chatmessageDescUserID := chatmessageFields[1].Descriptor()
	// chatmessage.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	chatmessage.UserIDValidator = chatmessageDescUserID.Validators[0].(func(string) error)
	// chatmessageDescRole is the schema descriptor for role field.
	chatmessageDescRole := chatmessageFields[2].Descriptor()
	// chatmessage.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	chatmessage.RoleValidator = chatmessageDescRole.Validators[0].(func(string) error)
	// chatmessageDescFrustrationScore is the schema descriptor for frustration_score field.
	chatmessageDescFrustrationScore := chatmessageFields[4].Descriptor()
	// chatmessage.DefaultFrustrationScore holds the default value on creation for the frustration_score field.
	chatmessage.DefaultFrustrationScore = chatmessageDescFrustrationScore.Default.(float64)
	// chatmessageDescFrustrationLevel is the schema descriptor for frustration_level field.
	chatmessageDescFrustrationLevel := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultFrustrationLevel holds the default value on creation for the frustration_level field.
	chatmessage.DefaultFrustrationLevel = chatmessageDescFrustrationLevel.Default.(string)
	// chatmessageDescInterrupted is the schema descriptor for interrupted field.
	chatmessageDescInterrupted := chatmessageFields[6].Descriptor()
	// chatmessage.DefaultInterrupted holds the default value on creation for the interrupted field.
	chatmessage.DefaultInterrupted = chatmessageDescInterrupted.Default.(bool)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[7].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	conceptmasteryFields := schema.ConceptMastery{}.Fields()
	_ = conceptmasteryFields
	// conceptmasteryDescUserID is the schema descriptor for user_id field.
	conceptmasteryDescUserID := conceptmasteryFields[0].Descriptor()
	// conceptmastery.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	conceptmastery.UserIDValidator = conceptmasteryDescUserID.Validators[0].(func(string) error)
	// conceptmasteryDescConcept is the schema descriptor for concept field.
	conceptmasteryDescConcept := conceptmasteryFields[1].Descriptor()
	// conceptmastery.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	conceptmastery.ConceptValidator = conceptmasteryDescConcept.Validators[0].(func(string) error)
	// conceptmasteryDescMasteryLevel is the schema descriptor for mastery_level field.
	conceptmasteryDescMasteryLevel := conceptmasteryFields[2].Descriptor()
	// conceptmastery.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	conceptmastery.DefaultMasteryLevel = conceptmasteryDescMasteryLevel.Default.(int)
	// conceptmastery.MasteryLevelValidator is a validator for the "mastery_level" field. It is called by the builders before save.
	conceptmastery.MasteryLevelValidator = func() func(int) error {
		validators := conceptmasteryDescMasteryLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(mastery_level int) error {
			for _, fn := range fns {
				if err := fn(mastery_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// conceptmasteryDescPracticeCount is the schema descriptor for practice_count field.
	conceptmasteryDescPracticeCount := conceptmasteryFields[3].Descriptor()
	// conceptmastery.DefaultPracticeCount holds the default value on creation for the practice_count field.
	conceptmastery.DefaultPracticeCount = conceptmasteryDescPracticeCount.Default.(int)
	// conceptmasteryDescCorrectCount is the schema descriptor for correct_count field.
	conceptmasteryDescCorrectCount := conceptmasteryFields[4].Descriptor()
	// conceptmastery.DefaultCorrectCount holds the default value on creation for the correct_count field.
	conceptmastery.DefaultCorrectCount = conceptmasteryDescCorrectCount.Default.(int)
	curriculumpathFields := schema.CurriculumPath{}.Fields()
	_ = curriculumpathFields
	// curriculumpathDescPathID is the schema descriptor for path_id field.
	curriculumpathDescPathID := curriculumpathFields[0].Descriptor()
	// curriculumpath.PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	curriculumpath.PathIDValidator = curriculumpathDescPathID.Validators[0].(func(string) error)
	// curriculumpathDescTitle is the schema descriptor for title field.
	curriculumpathDescTitle := curriculumpathFields[1].Descriptor()
	// curriculumpath.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	curriculumpath.TitleValidator = curriculumpathDescTitle.Validators[0].(func(string) error)
	// curriculumpathDescDifficulty is the schema descriptor for difficulty field.
	curriculumpathDescDifficulty := curriculumpathFields[2].Descriptor()
	// curriculumpath.DefaultDifficulty holds the default value on creation for the difficulty field.
	curriculumpath.DefaultDifficulty = curriculumpathDescDifficulty.Default.(string)
	// curriculumpathDescPosition is the schema descriptor for position field.
	curriculumpathDescPosition := curriculumpathFields[3].Descriptor()
	// curriculumpath.DefaultPosition holds the default value on creation for the position field.
	curriculumpath.DefaultPosition = curriculumpathDescPosition.Default.(int)
	// curriculumpathDescPublished is the schema descriptor for published field.
	curriculumpathDescPublished := curriculumpathFields[4].Descriptor()
	// curriculumpath.DefaultPublished holds the default value on creation for the published field.
	curriculumpath.DefaultPublished = curriculumpathDescPublished.Default.(bool)
	lessonprogressFields := schema.LessonProgress{}.Fields()
	_ = lessonprogressFields
	// lessonprogressDescUserID is the schema descriptor for user_id field.
	lessonprogressDescUserID := lessonprogressFields[0].Descriptor()
	// lessonprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	lessonprogress.UserIDValidator = lessonprogressDescUserID.Validators[0].(func(string) error)
	// lessonprogressDescLessonID is the schema descriptor for lesson_id field.
	lessonprogressDescLessonID := lessonprogressFields[1].Descriptor()
	// lessonprogress.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonprogress.LessonIDValidator = lessonprogressDescLessonID.Validators[0].(func(string) error)
	// lessonprogressDescStatus is the schema descriptor for status field.
	lessonprogressDescStatus := lessonprogressFields[2].Descriptor()
	// lessonprogress.DefaultStatus holds the default value on creation for the status field.
	lessonprogress.DefaultStatus = lessonprogressDescStatus.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUserID is the schema descriptor for user_id field.
	profileDescUserID := profileFields[0].Descriptor()
	// profile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profile.UserIDValidator = profileDescUserID.Validators[0].(func(string) error)
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.DefaultName holds the default value on creation for the name field.
	profile.DefaultName = profileDescName.Default.(string)
	// profileDescSkillLevel is the schema descriptor for skill_level field.
	profileDescSkillLevel := profileFields[2].Descriptor()
	// profile.DefaultSkillLevel holds the default value on creation for the skill_level field.
	profile.DefaultSkillLevel = profileDescSkillLevel.Default.(string)
	// profileDescStreakDays is the schema descriptor for streak_days field.
	profileDescStreakDays := profileFields[4].Descriptor()
	// profile.DefaultStreakDays holds the default value on creation for the streak_days field.
	profile.DefaultStreakDays = profileDescStreakDays.Default.(int)
	// profileDescTotalXp is the schema descriptor for total_xp field.
	profileDescTotalXp := profileFields[5].Descriptor()
	// profile.DefaultTotalXp holds the default value on creation for the total_xp field.
	profile.DefaultTotalXp = profileDescTotalXp.Default.(int)
	// profileDescLessonsCompleted is the schema descriptor for lessons_completed field.
	profileDescLessonsCompleted := profileFields[6].Descriptor()
	// profile.DefaultLessonsCompleted holds the default value on creation for the lessons_completed field.
	profile.DefaultLessonsCompleted = profileDescLessonsCompleted.Default.(int)
	sessionsummaryFields := schema.SessionSummary{}.Fields()
	_ = sessionsummaryFields
	// sessionsummaryDescSessionID is the schema descriptor for session_id field.
	sessionsummaryDescSessionID := sessionsummaryFields[0].Descriptor()
	// sessionsummary.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionsummary.SessionIDValidator = sessionsummaryDescSessionID.Validators[0].(func(string) error)
	// sessionsummaryDescUserID is the schema descriptor for user_id field.
	sessionsummaryDescUserID := sessionsummaryFields[1].Descriptor()
	// sessionsummary.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionsummary.UserIDValidator = sessionsummaryDescUserID.Validators[0].(func(string) error)
	// sessionsummaryDescUserState is the schema descriptor for user_state field.
	sessionsummaryDescUserState := sessionsummaryFields[4].Descriptor()
	// sessionsummary.UserStateValidator is a validator for the "user_state" field. It is called by the builders before save.
	sessionsummary.UserStateValidator = sessionsummaryDescUserState.Validators[0].(func(string) error)
	// sessionsummaryDescCreatedAt is the schema descriptor for created_at field.
	sessionsummaryDescCreatedAt := sessionsummaryFields[5].Descriptor()
	// sessionsummary.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionsummary.DefaultCreatedAt = sessionsummaryDescCreatedAt.Default.(func() time.Time)
}
