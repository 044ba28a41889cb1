// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FairnessReportsColumns holds the columns for the "fairness_reports" table.
	FairnessReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "group_by", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Default: "ALL"},
		{Name: "window_from", Type: field.TypeTime, Nullable: true},
		{Name: "window_to", Type: field.TypeTime, Nullable: true},
		{Name: "min_sample_size", Type: field.TypeInt, Default: 0},
		{Name: "metrics", Type: field.TypeJSON},
		{Name: "interpretation", Type: field.TypeJSON, Nullable: true},
		{Name: "notes", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FairnessReportsTable holds the schema information for the "fairness_reports" table.
	FairnessReportsTable = &schema.Table{
		Name:       "fairness_reports",
		Columns:    FairnessReportsColumns,
		PrimaryKey: []*schema.Column{FairnessReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fairnessreport_created_at",
				Unique:  false,
				Columns: []*schema.Column{FairnessReportsColumns[10]},
			},
			{
				Name:    "fairnessreport_group_by",
				Unique:  false,
				Columns: []*schema.Column{FairnessReportsColumns[2]},
			},
		},
	}
	// InteractionsColumns holds the columns for the "interactions" table.
	InteractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "turn_index", Type: field.TypeInt},
		{Name: "speaker", Type: field.TypeString},
		{Name: "agent_role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeString, Default: ""},
		{Name: "hint_policy", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InteractionsTable holds the schema information for the "interactions" table.
	InteractionsTable = &schema.Table{
		Name:       "interactions",
		Columns:    InteractionsColumns,
		PrimaryKey: []*schema.Column{InteractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interaction_session_id_turn_index",
				Unique:  true,
				Columns: []*schema.Column{InteractionsColumns[2], InteractionsColumns[3]},
			},
			{
				Name:    "interaction_status",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[7]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[7]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[11]},
			},
		},
	}
	// ProgressSnapshotsColumns holds the columns for the "progress_snapshots" table.
	ProgressSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "delta", Type: field.TypeFloat64},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "source_session_id", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProgressSnapshotsTable holds the schema information for the "progress_snapshots" table.
	ProgressSnapshotsTable = &schema.Table{
		Name:       "progress_snapshots",
		Columns:    ProgressSnapshotsColumns,
		PrimaryKey: []*schema.Column{ProgressSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progresssnapshot_user_id_topic_skill",
				Unique:  false,
				Columns: []*schema.Column{ProgressSnapshotsColumns[2], ProgressSnapshotsColumns[3], ProgressSnapshotsColumns[4]},
			},
			{
				Name:    "progresssnapshot_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProgressSnapshotsColumns[8]},
			},
			{
				Name:    "progresssnapshot_source_session_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressSnapshotsColumns[7]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "difficulty_mode", Type: field.TypeString, Default: "auto"},
		{Name: "manual_target_difficulty", Type: field.TypeString, Default: "medium"},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
			{
				Name:    "session_topic",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
			{
				Name:    "session_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4]},
			},
		},
	}
	// SessionPlansColumns holds the columns for the "session_plans" table.
	SessionPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "plan", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionPlansTable holds the schema information for the "session_plans" table.
	SessionPlansTable = &schema.Table{
		Name:       "session_plans",
		Columns:    SessionPlansColumns,
		PrimaryKey: []*schema.Column{SessionPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionplan_session_id_version",
				Unique:  true,
				Columns: []*schema.Column{SessionPlansColumns[2], SessionPlansColumns[3]},
			},
		},
	}
	// SessionStatsColumns holds the columns for the "session_stats" table.
	SessionStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "turns", Type: field.TypeInt, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "solved_count", Type: field.TypeInt, Default: 0},
		{Name: "steps_to_solve", Type: field.TypeFloat64, Nullable: true},
		{Name: "hint_count", Type: field.TypeInt, Default: 0},
		{Name: "mastery_delta", Type: field.TypeFloat64, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionStatsTable holds the schema information for the "session_stats" table.
	SessionStatsTable = &schema.Table{
		Name:       "session_stats",
		Columns:    SessionStatsColumns,
		PrimaryKey: []*schema.Column{SessionStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionstat_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionStatsColumns[2]},
			},
			{
				Name:    "sessionstat_topic",
				Unique:  false,
				Columns: []*schema.Column{SessionStatsColumns[3]},
			},
		},
	}
	// StudentSkillsColumns holds the columns for the "student_skills" table.
	StudentSkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "exposures", Type: field.TypeInt, Default: 0},
		{Name: "mastery", Type: field.TypeFloat64, Default: 0},
		{Name: "needs_reinforcement", Type: field.TypeBool, Default: true},
		{Name: "contexts_seen", Type: field.TypeString, Default: ""},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// StudentSkillsTable holds the schema information for the "student_skills" table.
	StudentSkillsTable = &schema.Table{
		Name:       "student_skills",
		Columns:    StudentSkillsColumns,
		PrimaryKey: []*schema.Column{StudentSkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studentskill_user_id_topic_skill",
				Unique:  true,
				Columns: []*schema.Column{StudentSkillsColumns[1], StudentSkillsColumns[2], StudentSkillsColumns[3]},
			},
			{
				Name:    "studentskill_user_id_topic",
				Unique:  false,
				Columns: []*schema.Column{StudentSkillsColumns[1], StudentSkillsColumns[2]},
			},
		},
	}
	// StudentTopicsColumns holds the columns for the "student_topics" table.
	StudentTopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeFloat64, Default: 0.5},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// StudentTopicsTable holds the schema information for the "student_topics" table.
	StudentTopicsTable = &schema.Table{
		Name:       "student_topics",
		Columns:    StudentTopicsColumns,
		PrimaryKey: []*schema.Column{StudentTopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studenttopic_user_id_topic",
				Unique:  true,
				Columns: []*schema.Column{StudentTopicsColumns[1], StudentTopicsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "self_rated_level", Type: field.TypeString, Default: "intermediate"},
		{Name: "preferred_language", Type: field.TypeString, Default: "en"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_self_rated_level",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_preferred_language",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FairnessReportsTable,
		InteractionsTable,
		LlmRequestEventsTable,
		ProgressSnapshotsTable,
		SessionsTable,
		SessionPlansTable,
		SessionStatsTable,
		StudentSkillsTable,
		StudentTopicsTable,
		UsersTable,
	}
)

func init() {
}
