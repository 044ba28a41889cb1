// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/metamind-labs/metamind/ent/fairnessreport"
	"github.com/metamind-labs/metamind/ent/interaction"
	"github.com/metamind-labs/metamind/ent/llmrequestevent"
	"github.com/metamind-labs/metamind/ent/progresssnapshot"
	"github.com/metamind-labs/metamind/ent/schema"
	"github.com/metamind-labs/metamind/ent/session"
	"github.com/metamind-labs/metamind/ent/sessionplan"
	"github.com/metamind-labs/metamind/ent/sessionstat"
	"github.com/metamind-labs/metamind/ent/studentskill"
	"github.com/metamind-labs/metamind/ent/studenttopic"
	"github.com/metamind-labs/metamind/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	fairnessreportFields := schema.FairnessReport{}.Fields()
	_ = fairnessreportFields
	// fairnessreportDescReportID is the schema descriptor for report_id field.
	fairnessreportDescReportID := fairnessreportFields[0].Descriptor()
	// fairnessreport.ReportIDValidator is a validator for the "report_id" field. It is called by the builders before save.
	fairnessreport.ReportIDValidator = fairnessreportDescReportID.Validators[0].(func(string) error)
	// fairnessreportDescGroupBy is the schema descriptor for group_by field.
	fairnessreportDescGroupBy := fairnessreportFields[1].Descriptor()
	// fairnessreport.GroupByValidator is a validator for the "group_by" field. It is called by the builders before save.
	fairnessreport.GroupByValidator = fairnessreportDescGroupBy.Validators[0].(func(string) error)
	// fairnessreportDescTopic is the schema descriptor for topic field.
	fairnessreportDescTopic := fairnessreportFields[2].Descriptor()
	// fairnessreport.DefaultTopic holds the default value on creation for the topic field.
	fairnessreport.DefaultTopic = fairnessreportDescTopic.Default.(string)
	// fairnessreportDescMinSampleSize is the schema descriptor for min_sample_size field.
	fairnessreportDescMinSampleSize := fairnessreportFields[5].Descriptor()
	// fairnessreport.DefaultMinSampleSize holds the default value on creation for the min_sample_size field.
	fairnessreport.DefaultMinSampleSize = fairnessreportDescMinSampleSize.Default.(int)
	// fairnessreportDescNotes is the schema descriptor for notes field.
	fairnessreportDescNotes := fairnessreportFields[8].Descriptor()
	// fairnessreport.DefaultNotes holds the default value on creation for the notes field.
	fairnessreport.DefaultNotes = fairnessreportDescNotes.Default.(string)
	// fairnessreportDescCreatedAt is the schema descriptor for created_at field.
	fairnessreportDescCreatedAt := fairnessreportFields[9].Descriptor()
	// fairnessreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	fairnessreport.DefaultCreatedAt = fairnessreportDescCreatedAt.Default.(func() time.Time)
	interactionFields := schema.Interaction{}.Fields()
	_ = interactionFields
	// interactionDescInteractionID is the schema descriptor for interaction_id field.
	interactionDescInteractionID := interactionFields[0].Descriptor()
	// interaction.InteractionIDValidator is a validator for the "interaction_id" field. It is called by the builders before save.
	interaction.InteractionIDValidator = interactionDescInteractionID.Validators[0].(func(string) error)
	// interactionDescSessionID is the schema descriptor for session_id field.
	interactionDescSessionID := interactionFields[1].Descriptor()
	// interaction.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interaction.SessionIDValidator = interactionDescSessionID.Validators[0].(func(string) error)
	// interactionDescTurnIndex is the schema descriptor for turn_index field.
	interactionDescTurnIndex := interactionFields[2].Descriptor()
	// interaction.TurnIndexValidator is a validator for the "turn_index" field. It is called by the builders before save.
	interaction.TurnIndexValidator = interactionDescTurnIndex.Validators[0].(func(int) error)
	// interactionDescSpeaker is the schema descriptor for speaker field.
	interactionDescSpeaker := interactionFields[3].Descriptor()
	// interaction.SpeakerValidator is a validator for the "speaker" field. It is called by the builders before save.
	interaction.SpeakerValidator = interactionDescSpeaker.Validators[0].(func(string) error)
	// interactionDescAgentRole is the schema descriptor for agent_role field.
	interactionDescAgentRole := interactionFields[4].Descriptor()
	// interaction.AgentRoleValidator is a validator for the "agent_role" field. It is called by the builders before save.
	interaction.AgentRoleValidator = interactionDescAgentRole.Validators[0].(func(string) error)
	// interactionDescStatus is the schema descriptor for status field.
	interactionDescStatus := interactionFields[6].Descriptor()
	// interaction.DefaultStatus holds the default value on creation for the status field.
	interaction.DefaultStatus = interactionDescStatus.Default.(string)
	// interactionDescHintPolicy is the schema descriptor for hint_policy field.
	interactionDescHintPolicy := interactionFields[7].Descriptor()
	// interaction.DefaultHintPolicy holds the default value on creation for the hint_policy field.
	interaction.DefaultHintPolicy = interactionDescHintPolicy.Default.(string)
	// interactionDescCreatedAt is the schema descriptor for created_at field.
	interactionDescCreatedAt := interactionFields[8].Descriptor()
	// interaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	interaction.DefaultCreatedAt = interactionDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	progresssnapshotFields := schema.ProgressSnapshot{}.Fields()
	_ = progresssnapshotFields
	// progresssnapshotDescSnapshotID is the schema descriptor for snapshot_id field.
	progresssnapshotDescSnapshotID := progresssnapshotFields[0].Descriptor()
	// progresssnapshot.SnapshotIDValidator is a validator for the "snapshot_id" field. It is called by the builders before save.
	progresssnapshot.SnapshotIDValidator = progresssnapshotDescSnapshotID.Validators[0].(func(string) error)
	// progresssnapshotDescUserID is the schema descriptor for user_id field.
	progresssnapshotDescUserID := progresssnapshotFields[1].Descriptor()
	// progresssnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progresssnapshot.UserIDValidator = progresssnapshotDescUserID.Validators[0].(func(string) error)
	// progresssnapshotDescTopic is the schema descriptor for topic field.
	progresssnapshotDescTopic := progresssnapshotFields[2].Descriptor()
	// progresssnapshot.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	progresssnapshot.TopicValidator = progresssnapshotDescTopic.Validators[0].(func(string) error)
	// progresssnapshotDescReason is the schema descriptor for reason field.
	progresssnapshotDescReason := progresssnapshotFields[5].Descriptor()
	// progresssnapshot.DefaultReason holds the default value on creation for the reason field.
	progresssnapshot.DefaultReason = progresssnapshotDescReason.Default.(string)
	// progresssnapshotDescSourceSessionID is the schema descriptor for source_session_id field.
	progresssnapshotDescSourceSessionID := progresssnapshotFields[6].Descriptor()
	// progresssnapshot.DefaultSourceSessionID holds the default value on creation for the source_session_id field.
	progresssnapshot.DefaultSourceSessionID = progresssnapshotDescSourceSessionID.Default.(string)
	// progresssnapshotDescCreatedAt is the schema descriptor for created_at field.
	progresssnapshotDescCreatedAt := progresssnapshotFields[7].Descriptor()
	// progresssnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	progresssnapshot.DefaultCreatedAt = progresssnapshotDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescSessionID is the schema descriptor for session_id field.
	sessionDescSessionID := sessionFields[0].Descriptor()
	// session.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	session.SessionIDValidator = sessionDescSessionID.Validators[0].(func(string) error)
	// sessionDescUserID is the schema descriptor for user_id field.
	sessionDescUserID := sessionFields[1].Descriptor()
	// session.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	session.UserIDValidator = sessionDescUserID.Validators[0].(func(string) error)
	// sessionDescTopic is the schema descriptor for topic field.
	sessionDescTopic := sessionFields[2].Descriptor()
	// session.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	session.TopicValidator = sessionDescTopic.Validators[0].(func(string) error)
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[3].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
	// sessionDescDifficultyMode is the schema descriptor for difficulty_mode field.
	sessionDescDifficultyMode := sessionFields[5].Descriptor()
	// session.DefaultDifficultyMode holds the default value on creation for the difficulty_mode field.
	session.DefaultDifficultyMode = sessionDescDifficultyMode.Default.(string)
	// sessionDescManualTargetDifficulty is the schema descriptor for manual_target_difficulty field.
	sessionDescManualTargetDifficulty := sessionFields[6].Descriptor()
	// session.DefaultManualTargetDifficulty holds the default value on creation for the manual_target_difficulty field.
	session.DefaultManualTargetDifficulty = sessionDescManualTargetDifficulty.Default.(string)
	sessionplanFields := schema.SessionPlan{}.Fields()
	_ = sessionplanFields
	// sessionplanDescPlanID is the schema descriptor for plan_id field.
	sessionplanDescPlanID := sessionplanFields[0].Descriptor()
	// sessionplan.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	sessionplan.PlanIDValidator = sessionplanDescPlanID.Validators[0].(func(string) error)
	// sessionplanDescSessionID is the schema descriptor for session_id field.
	sessionplanDescSessionID := sessionplanFields[1].Descriptor()
	// sessionplan.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionplan.SessionIDValidator = sessionplanDescSessionID.Validators[0].(func(string) error)
	// sessionplanDescVersion is the schema descriptor for version field.
	sessionplanDescVersion := sessionplanFields[2].Descriptor()
	// sessionplan.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	sessionplan.VersionValidator = sessionplanDescVersion.Validators[0].(func(int) error)
	// sessionplanDescCreatedAt is the schema descriptor for created_at field.
	sessionplanDescCreatedAt := sessionplanFields[4].Descriptor()
	// sessionplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionplan.DefaultCreatedAt = sessionplanDescCreatedAt.Default.(func() time.Time)
	sessionstatFields := schema.SessionStat{}.Fields()
	_ = sessionstatFields
	// sessionstatDescSessionID is the schema descriptor for session_id field.
	sessionstatDescSessionID := sessionstatFields[0].Descriptor()
	// sessionstat.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionstat.SessionIDValidator = sessionstatDescSessionID.Validators[0].(func(string) error)
	// sessionstatDescUserID is the schema descriptor for user_id field.
	sessionstatDescUserID := sessionstatFields[1].Descriptor()
	// sessionstat.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionstat.UserIDValidator = sessionstatDescUserID.Validators[0].(func(string) error)
	// sessionstatDescTopic is the schema descriptor for topic field.
	sessionstatDescTopic := sessionstatFields[2].Descriptor()
	// sessionstat.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sessionstat.TopicValidator = sessionstatDescTopic.Validators[0].(func(string) error)
	// sessionstatDescTurns is the schema descriptor for turns field.
	sessionstatDescTurns := sessionstatFields[3].Descriptor()
	// sessionstat.DefaultTurns holds the default value on creation for the turns field.
	sessionstat.DefaultTurns = sessionstatDescTurns.Default.(int)
	// sessionstatDescAttempts is the schema descriptor for attempts field.
	sessionstatDescAttempts := sessionstatFields[4].Descriptor()
	// sessionstat.DefaultAttempts holds the default value on creation for the attempts field.
	sessionstat.DefaultAttempts = sessionstatDescAttempts.Default.(int)
	// sessionstatDescSolvedCount is the schema descriptor for solved_count field.
	sessionstatDescSolvedCount := sessionstatFields[5].Descriptor()
	// sessionstat.DefaultSolvedCount holds the default value on creation for the solved_count field.
	sessionstat.DefaultSolvedCount = sessionstatDescSolvedCount.Default.(int)
	// sessionstatDescHintCount is the schema descriptor for hint_count field.
	sessionstatDescHintCount := sessionstatFields[7].Descriptor()
	// sessionstat.DefaultHintCount holds the default value on creation for the hint_count field.
	sessionstat.DefaultHintCount = sessionstatDescHintCount.Default.(int)
	// sessionstatDescUpdatedAt is the schema descriptor for updated_at field.
	sessionstatDescUpdatedAt := sessionstatFields[9].Descriptor()
	// sessionstat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionstat.DefaultUpdatedAt = sessionstatDescUpdatedAt.Default.(func() time.Time)
	// sessionstat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionstat.UpdateDefaultUpdatedAt = sessionstatDescUpdatedAt.UpdateDefault.(func() time.Time)
	studentskillFields := schema.StudentSkill{}.Fields()
	_ = studentskillFields
	// studentskillDescUserID is the schema descriptor for user_id field.
	studentskillDescUserID := studentskillFields[0].Descriptor()
	// studentskill.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	studentskill.UserIDValidator = studentskillDescUserID.Validators[0].(func(string) error)
	// studentskillDescTopic is the schema descriptor for topic field.
	studentskillDescTopic := studentskillFields[1].Descriptor()
	// studentskill.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	studentskill.TopicValidator = studentskillDescTopic.Validators[0].(func(string) error)
	// studentskillDescSkill is the schema descriptor for skill field.
	studentskillDescSkill := studentskillFields[2].Descriptor()
	// studentskill.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	studentskill.SkillValidator = studentskillDescSkill.Validators[0].(func(string) error)
	// studentskillDescExposures is the schema descriptor for exposures field.
	studentskillDescExposures := studentskillFields[3].Descriptor()
	// studentskill.DefaultExposures holds the default value on creation for the exposures field.
	studentskill.DefaultExposures = studentskillDescExposures.Default.(int)
	// studentskillDescMastery is the schema descriptor for mastery field.
	studentskillDescMastery := studentskillFields[4].Descriptor()
	// studentskill.DefaultMastery holds the default value on creation for the mastery field.
	studentskill.DefaultMastery = studentskillDescMastery.Default.(float64)
	// studentskillDescNeedsReinforcement is the schema descriptor for needs_reinforcement field.
	studentskillDescNeedsReinforcement := studentskillFields[5].Descriptor()
	// studentskill.DefaultNeedsReinforcement holds the default value on creation for the needs_reinforcement field.
	studentskill.DefaultNeedsReinforcement = studentskillDescNeedsReinforcement.Default.(bool)
	// studentskillDescContextsSeen is the schema descriptor for contexts_seen field.
	studentskillDescContextsSeen := studentskillFields[6].Descriptor()
	// studentskill.DefaultContextsSeen holds the default value on creation for the contexts_seen field.
	studentskill.DefaultContextsSeen = studentskillDescContextsSeen.Default.(string)
	// studentskillDescLastSeen is the schema descriptor for last_seen field.
	studentskillDescLastSeen := studentskillFields[7].Descriptor()
	// studentskill.DefaultLastSeen holds the default value on creation for the last_seen field.
	studentskill.DefaultLastSeen = studentskillDescLastSeen.Default.(func() time.Time)
	studenttopicFields := schema.StudentTopic{}.Fields()
	_ = studenttopicFields
	// studenttopicDescUserID is the schema descriptor for user_id field.
	studenttopicDescUserID := studenttopicFields[0].Descriptor()
	// studenttopic.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	studenttopic.UserIDValidator = studenttopicDescUserID.Validators[0].(func(string) error)
	// studenttopicDescTopic is the schema descriptor for topic field.
	studenttopicDescTopic := studenttopicFields[1].Descriptor()
	// studenttopic.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	studenttopic.TopicValidator = studenttopicDescTopic.Validators[0].(func(string) error)
	// studenttopicDescDifficulty is the schema descriptor for difficulty field.
	studenttopicDescDifficulty := studenttopicFields[2].Descriptor()
	// studenttopic.DefaultDifficulty holds the default value on creation for the difficulty field.
	studenttopic.DefaultDifficulty = studenttopicDescDifficulty.Default.(float64)
	// studenttopicDescLastSeen is the schema descriptor for last_seen field.
	studenttopicDescLastSeen := studenttopicFields[3].Descriptor()
	// studenttopic.DefaultLastSeen holds the default value on creation for the last_seen field.
	studenttopic.DefaultLastSeen = studenttopicDescLastSeen.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUserID is the schema descriptor for user_id field.
	userDescUserID := userFields[0].Descriptor()
	// user.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	user.UserIDValidator = userDescUserID.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.DefaultName holds the default value on creation for the name field.
	user.DefaultName = userDescName.Default.(string)
	// userDescSelfRatedLevel is the schema descriptor for self_rated_level field.
	userDescSelfRatedLevel := userFields[2].Descriptor()
	// user.DefaultSelfRatedLevel holds the default value on creation for the self_rated_level field.
	user.DefaultSelfRatedLevel = userDescSelfRatedLevel.Default.(string)
	// userDescPreferredLanguage is the schema descriptor for preferred_language field.
	userDescPreferredLanguage := userFields[3].Descriptor()
	// user.DefaultPreferredLanguage holds the default value on creation for the preferred_language field.
	user.DefaultPreferredLanguage = userDescPreferredLanguage.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
