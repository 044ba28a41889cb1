package store

import (
	"context"
	"time"
)

// Speaker values for interactions.
const (
	SpeakerStudent = "student"
	SpeakerTutor   = "tutor"
)

// Tutor turn status values.
const (
	StatusOngoing = "ONGOING"
	StatusSolved  = "SOLVED"
	StatusGiveUp  = "GIVE_UP"
)

// User is a learner identity with static preferences.
type User struct {
	UserID            string
	Name              string
	SelfRatedLevel    string // beginner | intermediate | advanced
	PreferredLanguage string
	CreatedAt         time.Time
}

// Session is one tutoring engagement for a user on a topic.
type Session struct {
	SessionID              string
	UserID                 string
	Topic                  string
	StartedAt              time.Time
	EndedAt                *time.Time
	DifficultyMode         string // auto | manual
	ManualTargetDifficulty string // easy | medium | hard
}

// Closed reports whether the session has ended.
func (s *Session) Closed() bool { return s.EndedAt != nil }

// Interaction is one turn in a session's append-only dialogue log.
type Interaction struct {
	InteractionID string
	SessionID     string
	TurnIndex     int
	Speaker       string
	AgentRole     string
	Content       string
	Status        string // tutor turns only; "" otherwise
	HintPolicy    string // "" when no hint policy applied
	CreatedAt     time.Time
}

// RecordInteractionParams carries the caller-supplied fields of a turn.
// The store assigns InteractionID, TurnIndex and CreatedAt.
type RecordInteractionParams struct {
	SessionID  string
	Speaker    string
	AgentRole  string
	Content    string
	Status     string
	HintPolicy string
}

// SessionPlan is one immutable version of a session's learning plan.
type SessionPlan struct {
	PlanID    string
	SessionID string
	Version   int
	Plan      map[string]any
	CreatedAt time.Time
}

// ProgressSnapshot is one immutable mastery delta.
type ProgressSnapshot struct {
	SnapshotID      string
	UserID          string
	Topic           string
	Skill           string
	Delta           float64
	Reason          string
	SourceSessionID string
	CreatedAt       time.Time
}

// AppendSnapshotParams carries the caller-supplied fields of a snapshot.
type AppendSnapshotParams struct {
	UserID          string
	Topic           string
	Skill           string
	Delta           float64
	Reason          string
	SourceSessionID string
}

// DeltaBounds is the plausible range for a single snapshot delta.
// A sanity bound on one write, not a bound on accumulated mastery.
type DeltaBounds struct {
	Min float64
	Max float64
}

// DefaultDeltaBounds allows any single delta in [-1, 1].
func DefaultDeltaBounds() DeltaBounds { return DeltaBounds{Min: -1, Max: 1} }

// StudentSkill is the materialized mastery record for a (user, topic, skill).
type StudentSkill struct {
	UserID             string
	Topic              string
	Skill              string
	Exposures          int
	Mastery            float64
	NeedsReinforcement bool
	ContextsSeen       string
	LastSeen           time.Time
}

// StudentTopic holds per-(user, topic) difficulty preference.
type StudentTopic struct {
	UserID     string
	Topic      string
	Difficulty float64
	LastSeen   time.Time
}

// SessionStats are the materialized per-session counters.
type SessionStats struct {
	SessionID    string
	UserID       string
	Topic        string
	Turns        int
	Attempts     int
	SolvedCount  int
	StepsToSolve *float64
	HintCount    int
	MasteryDelta *float64
	UpdatedAt    time.Time
}

// FairnessReport is a saved audit result.
type FairnessReport struct {
	ReportID       string
	GroupBy        string
	Topic          string
	WindowFrom     *time.Time
	WindowTo       *time.Time
	MinSampleSize  int
	Metrics        map[string]any
	Interpretation map[string]any // nil when absent
	Notes          string
	CreatedAt      time.Time
}

// SaveReportParams carries the caller-supplied fields of a report.
type SaveReportParams struct {
	GroupBy        string
	Topic          string
	WindowFrom     *time.Time
	WindowTo       *time.Time
	MinSampleSize  int
	Metrics        map[string]any
	Interpretation map[string]any
	Notes          string
}

// SessionFilter narrows session queries. Zero values mean no filtering.
type SessionFilter struct {
	UserID string
	Topic  string
	From   time.Time
	To     time.Time
}

// SnapshotFilter narrows progress snapshot queries.
type SnapshotFilter struct {
	UserID string
	Topic  string
	Skill  string
	From   time.Time
	To     time.Time
}

// ReportFilter narrows report listings.
type ReportFilter struct {
	GroupBy string
	Topic   string
	Limit   int
}

// UserRepo manages learner identities. Users are never deleted.
type UserRepo interface {
	Create(ctx context.Context, u *User) (*User, error)
	Get(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	// UpdatePreferences supersedes the editable preference fields.
	// Identity and created_at are untouched.
	UpdatePreferences(ctx context.Context, userID, level, language string) error
}

// SessionRepo manages session lifecycle. Sessions are never deleted.
type SessionRepo interface {
	Start(ctx context.Context, userID, topic string) (*Session, error)
	Get(ctx context.Context, sessionID string) (*Session, error)
	// End closes the session. Closing an already-closed session is a
	// ConstraintError.
	End(ctx context.Context, sessionID string, at time.Time) error
	UpdateSettings(ctx context.Context, sessionID, difficultyMode, manualTarget string) error
	List(ctx context.Context, f SessionFilter) ([]*Session, error)
	Latest(ctx context.Context, userID string) (*Session, error)
}

// InteractionRepo provides append-only access to the dialogue log.
type InteractionRepo interface {
	// Record assigns the next turn index for the session atomically and
	// persists the turn. Recording into a closed session is a
	// ConstraintError.
	Record(ctx context.Context, p RecordInteractionParams) (*Interaction, error)
	// List returns the session's turns ordered by turn index ascending.
	List(ctx context.Context, sessionID string) ([]*Interaction, error)
	// Recent returns the last n turns in chronological order.
	Recent(ctx context.Context, sessionID string, n int) ([]*Interaction, error)
}

// PlanRepo provides append-only access to session plan versions.
type PlanRepo interface {
	// Append inserts a new plan version; it never updates in place.
	Append(ctx context.Context, sessionID string, plan map[string]any) (*SessionPlan, error)
	// Current returns the latest plan version, or nil when none exists.
	Current(ctx context.Context, sessionID string) (*SessionPlan, error)
	History(ctx context.Context, sessionID string) ([]*SessionPlan, error)
}

// ProgressRepo provides append-only access to mastery snapshots.
type ProgressRepo interface {
	// Append persists a snapshot. A delta outside the configured bounds
	// is a ConstraintError and nothing is written.
	Append(ctx context.Context, p AppendSnapshotParams) (*ProgressSnapshot, error)
	// List returns snapshots ordered by creation time ascending.
	List(ctx context.Context, f SnapshotFilter) ([]*ProgressSnapshot, error)
}

// StudentModelRepo manages the lazily-created materialized student model.
type StudentModelRepo interface {
	// UpsertSkill applies one observation of a skill to the materialized
	// record, creating it on first sight.
	UpsertSkill(ctx context.Context, userID, topic, skill string, mastery float64, contextTag string, seenAt time.Time) error
	ListSkills(ctx context.Context, userID, topic string) ([]*StudentSkill, error)
	GetTopicDifficulty(ctx context.Context, userID, topic string) (float64, error)
	SetTopicDifficulty(ctx context.Context, userID, topic string, difficulty float64) error
}

// StatsRepo manages the materialized session counters.
type StatsRepo interface {
	Upsert(ctx context.Context, s *SessionStats) error
	Get(ctx context.Context, sessionID string) (*SessionStats, error)
}

// ReportRepo manages immutable fairness reports.
type ReportRepo interface {
	Save(ctx context.Context, p SaveReportParams) (*FairnessReport, error)
	Get(ctx context.Context, reportID string) (*FairnessReport, error)
	// List returns reports ordered by creation time, most recent first.
	List(ctx context.Context, f ReportFilter) ([]*FairnessReport, error)
}

// LLMRequestEventData captures one external text-generation call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is one persisted collaborator call.
type LLMRequestEvent struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	Timestamp    time.Time
}

// LLMUsage is an aggregate over the collaborator call log, keyed by
// purpose or model.
type LLMUsage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides access to the collaborator audit log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	// ListLLMRequests returns the most recent events, newest first.
	ListLLMRequests(ctx context.Context, limit int) ([]*LLMRequestEvent, error)
	GetLLMRequest(ctx context.Context, id int) (*LLMRequestEvent, error)
	UsageByPurpose(ctx context.Context) ([]*LLMUsage, error)
	UsageByModel(ctx context.Context) ([]*LLMUsage, error)
}
