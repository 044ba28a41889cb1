// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/metamind-labs/metamind/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/metamind-labs/metamind/ent/fairnessreport"
	"github.com/metamind-labs/metamind/ent/interaction"
	"github.com/metamind-labs/metamind/ent/llmrequestevent"
	"github.com/metamind-labs/metamind/ent/progresssnapshot"
	"github.com/metamind-labs/metamind/ent/session"
	"github.com/metamind-labs/metamind/ent/sessionplan"
	"github.com/metamind-labs/metamind/ent/sessionstat"
	"github.com/metamind-labs/metamind/ent/studentskill"
	"github.com/metamind-labs/metamind/ent/studenttopic"
	"github.com/metamind-labs/metamind/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// FairnessReport is the client for interacting with the FairnessReport builders.
	FairnessReport *FairnessReportClient
	// Interaction is the client for interacting with the Interaction builders.
	Interaction *InteractionClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// ProgressSnapshot is the client for interacting with the ProgressSnapshot builders.
	ProgressSnapshot *ProgressSnapshotClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// SessionPlan is the client for interacting with the SessionPlan builders.
	SessionPlan *SessionPlanClient
	// SessionStat is the client for interacting with the SessionStat builders.
	SessionStat *SessionStatClient
	// StudentSkill is the client for interacting with the StudentSkill builders.
	StudentSkill *StudentSkillClient
	// StudentTopic is the client for interacting with the StudentTopic builders.
	StudentTopic *StudentTopicClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.FairnessReport = NewFairnessReportClient(c.config)
	c.Interaction = NewInteractionClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.ProgressSnapshot = NewProgressSnapshotClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.SessionPlan = NewSessionPlanClient(c.config)
	c.SessionStat = NewSessionStatClient(c.config)
	c.StudentSkill = NewStudentSkillClient(c.config)
	c.StudentTopic = NewStudentTopicClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		FairnessReport:   NewFairnessReportClient(cfg),
		Interaction:      NewInteractionClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		ProgressSnapshot: NewProgressSnapshotClient(cfg),
		Session:          NewSessionClient(cfg),
		SessionPlan:      NewSessionPlanClient(cfg),
		SessionStat:      NewSessionStatClient(cfg),
		StudentSkill:     NewStudentSkillClient(cfg),
		StudentTopic:     NewStudentTopicClient(cfg),
		User:             NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		FairnessReport:   NewFairnessReportClient(cfg),
		Interaction:      NewInteractionClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		ProgressSnapshot: NewProgressSnapshotClient(cfg),
		Session:          NewSessionClient(cfg),
		SessionPlan:      NewSessionPlanClient(cfg),
		SessionStat:      NewSessionStatClient(cfg),
		StudentSkill:     NewStudentSkillClient(cfg),
		StudentTopic:     NewStudentTopicClient(cfg),
		User:             NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		FairnessReport.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.FairnessReport, c.Interaction, c.LLMRequestEvent, c.ProgressSnapshot,
		c.Session, c.SessionPlan, c.SessionStat, c.StudentSkill, c.StudentTopic,
		c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.FairnessReport, c.Interaction, c.LLMRequestEvent, c.ProgressSnapshot,
		c.Session, c.SessionPlan, c.SessionStat, c.StudentSkill, c.StudentTopic,
		c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FairnessReportMutation:
		return c.FairnessReport.mutate(ctx, m)
	case *InteractionMutation:
		return c.Interaction.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *ProgressSnapshotMutation:
		return c.ProgressSnapshot.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *SessionPlanMutation:
		return c.SessionPlan.mutate(ctx, m)
	case *SessionStatMutation:
		return c.SessionStat.mutate(ctx, m)
	case *StudentSkillMutation:
		return c.StudentSkill.mutate(ctx, m)
	case *StudentTopicMutation:
		return c.StudentTopic.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FairnessReportClient is a client for the FairnessReport schema.
type FairnessReportClient struct {
	config
}

// NewFairnessReportClient returns a client for the FairnessReport from the given config.
func NewFairnessReportClient(c config) *FairnessReportClient {
	return &FairnessReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fairnessreport.Hooks(f(g(h())))`.
func (c *FairnessReportClient) Use(hooks ...Hook) {
	c.hooks.FairnessReport = append(c.hooks.FairnessReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fairnessreport.Intercept(f(g(h())))`.
func (c *FairnessReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.FairnessReport = append(c.inters.FairnessReport, interceptors...)
}

// Create returns a builder for creating a FairnessReport entity.
func (c *FairnessReportClient) Create() *FairnessReportCreate {
	mutation := newFairnessReportMutation(c.config, OpCreate)
	return &FairnessReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FairnessReport entities.
func (c *FairnessReportClient) CreateBulk(builders ...*FairnessReportCreate) *FairnessReportCreateBulk {
	return &FairnessReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FairnessReportClient) MapCreateBulk(slice any, setFunc func(*FairnessReportCreate, int)) *FairnessReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FairnessReportCreateBulk{err: fmt.Errorf("calling to FairnessReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FairnessReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FairnessReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FairnessReport.
func (c *FairnessReportClient) Update() *FairnessReportUpdate {
	mutation := newFairnessReportMutation(c.config, OpUpdate)
	return &FairnessReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FairnessReportClient) UpdateOne(_m *FairnessReport) *FairnessReportUpdateOne {
	mutation := newFairnessReportMutation(c.config, OpUpdateOne, withFairnessReport(_m))
	return &FairnessReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FairnessReportClient) UpdateOneID(id int) *FairnessReportUpdateOne {
	mutation := newFairnessReportMutation(c.config, OpUpdateOne, withFairnessReportID(id))
	return &FairnessReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FairnessReport.
func (c *FairnessReportClient) Delete() *FairnessReportDelete {
	mutation := newFairnessReportMutation(c.config, OpDelete)
	return &FairnessReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FairnessReportClient) DeleteOne(_m *FairnessReport) *FairnessReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FairnessReportClient) DeleteOneID(id int) *FairnessReportDeleteOne {
	builder := c.Delete().Where(fairnessreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FairnessReportDeleteOne{builder}
}

// Query returns a query builder for FairnessReport.
func (c *FairnessReportClient) Query() *FairnessReportQuery {
	return &FairnessReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFairnessReport},
		inters: c.Interceptors(),
	}
}

// Get returns a FairnessReport entity by its id.
func (c *FairnessReportClient) Get(ctx context.Context, id int) (*FairnessReport, error) {
	return c.Query().Where(fairnessreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FairnessReportClient) GetX(ctx context.Context, id int) *FairnessReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FairnessReportClient) Hooks() []Hook {
	return c.hooks.FairnessReport
}

// Interceptors returns the client interceptors.
func (c *FairnessReportClient) Interceptors() []Interceptor {
	return c.inters.FairnessReport
}

func (c *FairnessReportClient) mutate(ctx context.Context, m *FairnessReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FairnessReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FairnessReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FairnessReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FairnessReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FairnessReport mutation op: %q", m.Op())
	}
}

// InteractionClient is a client for the Interaction schema.
type InteractionClient struct {
	config
}

// NewInteractionClient returns a client for the Interaction from the given config.
func NewInteractionClient(c config) *InteractionClient {
	return &InteractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interaction.Hooks(f(g(h())))`.
func (c *InteractionClient) Use(hooks ...Hook) {
	c.hooks.Interaction = append(c.hooks.Interaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interaction.Intercept(f(g(h())))`.
func (c *InteractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Interaction = append(c.inters.Interaction, interceptors...)
}

// Create returns a builder for creating a Interaction entity.
func (c *InteractionClient) Create() *InteractionCreate {
	mutation := newInteractionMutation(c.config, OpCreate)
	return &InteractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Interaction entities.
func (c *InteractionClient) CreateBulk(builders ...*InteractionCreate) *InteractionCreateBulk {
	return &InteractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InteractionClient) MapCreateBulk(slice any, setFunc func(*InteractionCreate, int)) *InteractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InteractionCreateBulk{err: fmt.Errorf("calling to InteractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InteractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InteractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Interaction.
func (c *InteractionClient) Update() *InteractionUpdate {
	mutation := newInteractionMutation(c.config, OpUpdate)
	return &InteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InteractionClient) UpdateOne(_m *Interaction) *InteractionUpdateOne {
	mutation := newInteractionMutation(c.config, OpUpdateOne, withInteraction(_m))
	return &InteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InteractionClient) UpdateOneID(id int) *InteractionUpdateOne {
	mutation := newInteractionMutation(c.config, OpUpdateOne, withInteractionID(id))
	return &InteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Interaction.
func (c *InteractionClient) Delete() *InteractionDelete {
	mutation := newInteractionMutation(c.config, OpDelete)
	return &InteractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InteractionClient) DeleteOne(_m *Interaction) *InteractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InteractionClient) DeleteOneID(id int) *InteractionDeleteOne {
	builder := c.Delete().Where(interaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InteractionDeleteOne{builder}
}

// Query returns a query builder for Interaction.
func (c *InteractionClient) Query() *InteractionQuery {
	return &InteractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInteraction},
		inters: c.Interceptors(),
	}
}

// Get returns a Interaction entity by its id.
func (c *InteractionClient) Get(ctx context.Context, id int) (*Interaction, error) {
	return c.Query().Where(interaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InteractionClient) GetX(ctx context.Context, id int) *Interaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InteractionClient) Hooks() []Hook {
	return c.hooks.Interaction
}

// Interceptors returns the client interceptors.
func (c *InteractionClient) Interceptors() []Interceptor {
	return c.inters.Interaction
}

func (c *InteractionClient) mutate(ctx context.Context, m *InteractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InteractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InteractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Interaction mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// ProgressSnapshotClient is a client for the ProgressSnapshot schema.
type ProgressSnapshotClient struct {
	config
}

// NewProgressSnapshotClient returns a client for the ProgressSnapshot from the given config.
func NewProgressSnapshotClient(c config) *ProgressSnapshotClient {
	return &ProgressSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progresssnapshot.Hooks(f(g(h())))`.
func (c *ProgressSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ProgressSnapshot = append(c.hooks.ProgressSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progresssnapshot.Intercept(f(g(h())))`.
func (c *ProgressSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressSnapshot = append(c.inters.ProgressSnapshot, interceptors...)
}

// Create returns a builder for creating a ProgressSnapshot entity.
func (c *ProgressSnapshotClient) Create() *ProgressSnapshotCreate {
	mutation := newProgressSnapshotMutation(c.config, OpCreate)
	return &ProgressSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressSnapshot entities.
func (c *ProgressSnapshotClient) CreateBulk(builders ...*ProgressSnapshotCreate) *ProgressSnapshotCreateBulk {
	return &ProgressSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressSnapshotClient) MapCreateBulk(slice any, setFunc func(*ProgressSnapshotCreate, int)) *ProgressSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressSnapshotCreateBulk{err: fmt.Errorf("calling to ProgressSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressSnapshot.
func (c *ProgressSnapshotClient) Update() *ProgressSnapshotUpdate {
	mutation := newProgressSnapshotMutation(c.config, OpUpdate)
	return &ProgressSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressSnapshotClient) UpdateOne(_m *ProgressSnapshot) *ProgressSnapshotUpdateOne {
	mutation := newProgressSnapshotMutation(c.config, OpUpdateOne, withProgressSnapshot(_m))
	return &ProgressSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressSnapshotClient) UpdateOneID(id int) *ProgressSnapshotUpdateOne {
	mutation := newProgressSnapshotMutation(c.config, OpUpdateOne, withProgressSnapshotID(id))
	return &ProgressSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressSnapshot.
func (c *ProgressSnapshotClient) Delete() *ProgressSnapshotDelete {
	mutation := newProgressSnapshotMutation(c.config, OpDelete)
	return &ProgressSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressSnapshotClient) DeleteOne(_m *ProgressSnapshot) *ProgressSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressSnapshotClient) DeleteOneID(id int) *ProgressSnapshotDeleteOne {
	builder := c.Delete().Where(progresssnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressSnapshotDeleteOne{builder}
}

// Query returns a query builder for ProgressSnapshot.
func (c *ProgressSnapshotClient) Query() *ProgressSnapshotQuery {
	return &ProgressSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressSnapshot entity by its id.
func (c *ProgressSnapshotClient) Get(ctx context.Context, id int) (*ProgressSnapshot, error) {
	return c.Query().Where(progresssnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressSnapshotClient) GetX(ctx context.Context, id int) *ProgressSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressSnapshotClient) Hooks() []Hook {
	return c.hooks.ProgressSnapshot
}

// Interceptors returns the client interceptors.
func (c *ProgressSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ProgressSnapshot
}

func (c *ProgressSnapshotClient) mutate(ctx context.Context, m *ProgressSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressSnapshot mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id int) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id int) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id int) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id int) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// SessionPlanClient is a client for the SessionPlan schema.
type SessionPlanClient struct {
	config
}

// NewSessionPlanClient returns a client for the SessionPlan from the given config.
func NewSessionPlanClient(c config) *SessionPlanClient {
	return &SessionPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionplan.Hooks(f(g(h())))`.
func (c *SessionPlanClient) Use(hooks ...Hook) {
	c.hooks.SessionPlan = append(c.hooks.SessionPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionplan.Intercept(f(g(h())))`.
func (c *SessionPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionPlan = append(c.inters.SessionPlan, interceptors...)
}

// Create returns a builder for creating a SessionPlan entity.
func (c *SessionPlanClient) Create() *SessionPlanCreate {
	mutation := newSessionPlanMutation(c.config, OpCreate)
	return &SessionPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionPlan entities.
func (c *SessionPlanClient) CreateBulk(builders ...*SessionPlanCreate) *SessionPlanCreateBulk {
	return &SessionPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionPlanClient) MapCreateBulk(slice any, setFunc func(*SessionPlanCreate, int)) *SessionPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionPlanCreateBulk{err: fmt.Errorf("calling to SessionPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionPlan.
func (c *SessionPlanClient) Update() *SessionPlanUpdate {
	mutation := newSessionPlanMutation(c.config, OpUpdate)
	return &SessionPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionPlanClient) UpdateOne(_m *SessionPlan) *SessionPlanUpdateOne {
	mutation := newSessionPlanMutation(c.config, OpUpdateOne, withSessionPlan(_m))
	return &SessionPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionPlanClient) UpdateOneID(id int) *SessionPlanUpdateOne {
	mutation := newSessionPlanMutation(c.config, OpUpdateOne, withSessionPlanID(id))
	return &SessionPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionPlan.
func (c *SessionPlanClient) Delete() *SessionPlanDelete {
	mutation := newSessionPlanMutation(c.config, OpDelete)
	return &SessionPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionPlanClient) DeleteOne(_m *SessionPlan) *SessionPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionPlanClient) DeleteOneID(id int) *SessionPlanDeleteOne {
	builder := c.Delete().Where(sessionplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionPlanDeleteOne{builder}
}

// Query returns a query builder for SessionPlan.
func (c *SessionPlanClient) Query() *SessionPlanQuery {
	return &SessionPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionPlan entity by its id.
func (c *SessionPlanClient) Get(ctx context.Context, id int) (*SessionPlan, error) {
	return c.Query().Where(sessionplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionPlanClient) GetX(ctx context.Context, id int) *SessionPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionPlanClient) Hooks() []Hook {
	return c.hooks.SessionPlan
}

// Interceptors returns the client interceptors.
func (c *SessionPlanClient) Interceptors() []Interceptor {
	return c.inters.SessionPlan
}

func (c *SessionPlanClient) mutate(ctx context.Context, m *SessionPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionPlan mutation op: %q", m.Op())
	}
}

// SessionStatClient is a client for the SessionStat schema.
type SessionStatClient struct {
	config
}

// NewSessionStatClient returns a client for the SessionStat from the given config.
func NewSessionStatClient(c config) *SessionStatClient {
	return &SessionStatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionstat.Hooks(f(g(h())))`.
func (c *SessionStatClient) Use(hooks ...Hook) {
	c.hooks.SessionStat = append(c.hooks.SessionStat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionstat.Intercept(f(g(h())))`.
func (c *SessionStatClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionStat = append(c.inters.SessionStat, interceptors...)
}

// Create returns a builder for creating a SessionStat entity.
func (c *SessionStatClient) Create() *SessionStatCreate {
	mutation := newSessionStatMutation(c.config, OpCreate)
	return &SessionStatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionStat entities.
func (c *SessionStatClient) CreateBulk(builders ...*SessionStatCreate) *SessionStatCreateBulk {
	return &SessionStatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionStatClient) MapCreateBulk(slice any, setFunc func(*SessionStatCreate, int)) *SessionStatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionStatCreateBulk{err: fmt.Errorf("calling to SessionStatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionStatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionStatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionStat.
func (c *SessionStatClient) Update() *SessionStatUpdate {
	mutation := newSessionStatMutation(c.config, OpUpdate)
	return &SessionStatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionStatClient) UpdateOne(_m *SessionStat) *SessionStatUpdateOne {
	mutation := newSessionStatMutation(c.config, OpUpdateOne, withSessionStat(_m))
	return &SessionStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionStatClient) UpdateOneID(id int) *SessionStatUpdateOne {
	mutation := newSessionStatMutation(c.config, OpUpdateOne, withSessionStatID(id))
	return &SessionStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionStat.
func (c *SessionStatClient) Delete() *SessionStatDelete {
	mutation := newSessionStatMutation(c.config, OpDelete)
	return &SessionStatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionStatClient) DeleteOne(_m *SessionStat) *SessionStatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionStatClient) DeleteOneID(id int) *SessionStatDeleteOne {
	builder := c.Delete().Where(sessionstat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionStatDeleteOne{builder}
}

// Query returns a query builder for SessionStat.
func (c *SessionStatClient) Query() *SessionStatQuery {
	return &SessionStatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionStat},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionStat entity by its id.
func (c *SessionStatClient) Get(ctx context.Context, id int) (*SessionStat, error) {
	return c.Query().Where(sessionstat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionStatClient) GetX(ctx context.Context, id int) *SessionStat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionStatClient) Hooks() []Hook {
	return c.hooks.SessionStat
}

// Interceptors returns the client interceptors.
func (c *SessionStatClient) Interceptors() []Interceptor {
	return c.inters.SessionStat
}

func (c *SessionStatClient) mutate(ctx context.Context, m *SessionStatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionStatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionStatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionStatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionStat mutation op: %q", m.Op())
	}
}

// StudentSkillClient is a client for the StudentSkill schema.
type StudentSkillClient struct {
	config
}

// NewStudentSkillClient returns a client for the StudentSkill from the given config.
func NewStudentSkillClient(c config) *StudentSkillClient {
	return &StudentSkillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studentskill.Hooks(f(g(h())))`.
func (c *StudentSkillClient) Use(hooks ...Hook) {
	c.hooks.StudentSkill = append(c.hooks.StudentSkill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studentskill.Intercept(f(g(h())))`.
func (c *StudentSkillClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentSkill = append(c.inters.StudentSkill, interceptors...)
}

// Create returns a builder for creating a StudentSkill entity.
func (c *StudentSkillClient) Create() *StudentSkillCreate {
	mutation := newStudentSkillMutation(c.config, OpCreate)
	return &StudentSkillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentSkill entities.
func (c *StudentSkillClient) CreateBulk(builders ...*StudentSkillCreate) *StudentSkillCreateBulk {
	return &StudentSkillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentSkillClient) MapCreateBulk(slice any, setFunc func(*StudentSkillCreate, int)) *StudentSkillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentSkillCreateBulk{err: fmt.Errorf("calling to StudentSkillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentSkillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentSkillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentSkill.
func (c *StudentSkillClient) Update() *StudentSkillUpdate {
	mutation := newStudentSkillMutation(c.config, OpUpdate)
	return &StudentSkillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentSkillClient) UpdateOne(_m *StudentSkill) *StudentSkillUpdateOne {
	mutation := newStudentSkillMutation(c.config, OpUpdateOne, withStudentSkill(_m))
	return &StudentSkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentSkillClient) UpdateOneID(id int) *StudentSkillUpdateOne {
	mutation := newStudentSkillMutation(c.config, OpUpdateOne, withStudentSkillID(id))
	return &StudentSkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentSkill.
func (c *StudentSkillClient) Delete() *StudentSkillDelete {
	mutation := newStudentSkillMutation(c.config, OpDelete)
	return &StudentSkillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentSkillClient) DeleteOne(_m *StudentSkill) *StudentSkillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentSkillClient) DeleteOneID(id int) *StudentSkillDeleteOne {
	builder := c.Delete().Where(studentskill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentSkillDeleteOne{builder}
}

// Query returns a query builder for StudentSkill.
func (c *StudentSkillClient) Query() *StudentSkillQuery {
	return &StudentSkillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentSkill},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentSkill entity by its id.
func (c *StudentSkillClient) Get(ctx context.Context, id int) (*StudentSkill, error) {
	return c.Query().Where(studentskill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentSkillClient) GetX(ctx context.Context, id int) *StudentSkill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudentSkillClient) Hooks() []Hook {
	return c.hooks.StudentSkill
}

// Interceptors returns the client interceptors.
func (c *StudentSkillClient) Interceptors() []Interceptor {
	return c.inters.StudentSkill
}

func (c *StudentSkillClient) mutate(ctx context.Context, m *StudentSkillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentSkillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentSkillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentSkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentSkillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentSkill mutation op: %q", m.Op())
	}
}

// StudentTopicClient is a client for the StudentTopic schema.
type StudentTopicClient struct {
	config
}

// NewStudentTopicClient returns a client for the StudentTopic from the given config.
func NewStudentTopicClient(c config) *StudentTopicClient {
	return &StudentTopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studenttopic.Hooks(f(g(h())))`.
func (c *StudentTopicClient) Use(hooks ...Hook) {
	c.hooks.StudentTopic = append(c.hooks.StudentTopic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studenttopic.Intercept(f(g(h())))`.
func (c *StudentTopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentTopic = append(c.inters.StudentTopic, interceptors...)
}

// Create returns a builder for creating a StudentTopic entity.
func (c *StudentTopicClient) Create() *StudentTopicCreate {
	mutation := newStudentTopicMutation(c.config, OpCreate)
	return &StudentTopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentTopic entities.
func (c *StudentTopicClient) CreateBulk(builders ...*StudentTopicCreate) *StudentTopicCreateBulk {
	return &StudentTopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentTopicClient) MapCreateBulk(slice any, setFunc func(*StudentTopicCreate, int)) *StudentTopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentTopicCreateBulk{err: fmt.Errorf("calling to StudentTopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentTopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentTopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentTopic.
func (c *StudentTopicClient) Update() *StudentTopicUpdate {
	mutation := newStudentTopicMutation(c.config, OpUpdate)
	return &StudentTopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentTopicClient) UpdateOne(_m *StudentTopic) *StudentTopicUpdateOne {
	mutation := newStudentTopicMutation(c.config, OpUpdateOne, withStudentTopic(_m))
	return &StudentTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentTopicClient) UpdateOneID(id int) *StudentTopicUpdateOne {
	mutation := newStudentTopicMutation(c.config, OpUpdateOne, withStudentTopicID(id))
	return &StudentTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentTopic.
func (c *StudentTopicClient) Delete() *StudentTopicDelete {
	mutation := newStudentTopicMutation(c.config, OpDelete)
	return &StudentTopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentTopicClient) DeleteOne(_m *StudentTopic) *StudentTopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentTopicClient) DeleteOneID(id int) *StudentTopicDeleteOne {
	builder := c.Delete().Where(studenttopic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentTopicDeleteOne{builder}
}

// Query returns a query builder for StudentTopic.
func (c *StudentTopicClient) Query() *StudentTopicQuery {
	return &StudentTopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentTopic entity by its id.
func (c *StudentTopicClient) Get(ctx context.Context, id int) (*StudentTopic, error) {
	return c.Query().Where(studenttopic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentTopicClient) GetX(ctx context.Context, id int) *StudentTopic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudentTopicClient) Hooks() []Hook {
	return c.hooks.StudentTopic
}

// Interceptors returns the client interceptors.
func (c *StudentTopicClient) Interceptors() []Interceptor {
	return c.inters.StudentTopic
}

func (c *StudentTopicClient) mutate(ctx context.Context, m *StudentTopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentTopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentTopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentTopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentTopic mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		FairnessReport, Interaction, LLMRequestEvent, ProgressSnapshot, Session,
		SessionPlan, SessionStat, StudentSkill, StudentTopic, User []ent.Hook
	}
	inters struct {
		FairnessReport, Interaction, LLMRequestEvent, ProgressSnapshot, Session,
		SessionPlan, SessionStat, StudentSkill, StudentTopic, User []ent.Interceptor
	}
)
