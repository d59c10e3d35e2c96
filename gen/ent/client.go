// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dramhound/dramhound/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dramhound/dramhound/gen/ent/bar"
	"github.com/dramhound/dramhound/gen/ent/barwhiskey"
	"github.com/dramhound/dramhound/gen/ent/trawljob"
	"github.com/dramhound/dramhound/gen/ent/whiskey"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Bar is the client for interacting with the Bar builders.
	Bar *BarClient
	// BarWhiskey is the client for interacting with the BarWhiskey builders.
	BarWhiskey *BarWhiskeyClient
	// TrawlJob is the client for interacting with the TrawlJob builders.
	TrawlJob *TrawlJobClient
	// Whiskey is the client for interacting with the Whiskey builders.
	Whiskey *WhiskeyClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Bar = NewBarClient(c.config)
	c.BarWhiskey = NewBarWhiskeyClient(c.config)
	c.TrawlJob = NewTrawlJobClient(c.config)
	c.Whiskey = NewWhiskeyClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		Bar:        NewBarClient(cfg),
		BarWhiskey: NewBarWhiskeyClient(cfg),
		TrawlJob:   NewTrawlJobClient(cfg),
		Whiskey:    NewWhiskeyClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		Bar:        NewBarClient(cfg),
		BarWhiskey: NewBarWhiskeyClient(cfg),
		TrawlJob:   NewTrawlJobClient(cfg),
		Whiskey:    NewWhiskeyClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Bar.
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
	c.Bar.Use(hooks...)
	c.BarWhiskey.Use(hooks...)
	c.TrawlJob.Use(hooks...)
	c.Whiskey.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Bar.Intercept(interceptors...)
	c.BarWhiskey.Intercept(interceptors...)
	c.TrawlJob.Intercept(interceptors...)
	c.Whiskey.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BarMutation:
		return c.Bar.mutate(ctx, m)
	case *BarWhiskeyMutation:
		return c.BarWhiskey.mutate(ctx, m)
	case *TrawlJobMutation:
		return c.TrawlJob.mutate(ctx, m)
	case *WhiskeyMutation:
		return c.Whiskey.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BarClient is a client for the Bar schema.
type BarClient struct {
	config
}

// NewBarClient returns a client for the Bar from the given config.
func NewBarClient(c config) *BarClient {
	return &BarClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bar.Hooks(f(g(h())))`.
func (c *BarClient) Use(hooks ...Hook) {
	c.hooks.Bar = append(c.hooks.Bar, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bar.Intercept(f(g(h())))`.
func (c *BarClient) Intercept(interceptors ...Interceptor) {
	c.inters.Bar = append(c.inters.Bar, interceptors...)
}

// Create returns a builder for creating a Bar entity.
func (c *BarClient) Create() *BarCreate {
	mutation := newBarMutation(c.config, OpCreate)
	return &BarCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Bar entities.
func (c *BarClient) CreateBulk(builders ...*BarCreate) *BarCreateBulk {
	return &BarCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BarClient) MapCreateBulk(slice any, setFunc func(*BarCreate, int)) *BarCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BarCreateBulk{err: fmt.Errorf("calling to BarClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BarCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BarCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Bar.
func (c *BarClient) Update() *BarUpdate {
	mutation := newBarMutation(c.config, OpUpdate)
	return &BarUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BarClient) UpdateOne(_m *Bar) *BarUpdateOne {
	mutation := newBarMutation(c.config, OpUpdateOne, withBar(_m))
	return &BarUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BarClient) UpdateOneID(id uuid.UUID) *BarUpdateOne {
	mutation := newBarMutation(c.config, OpUpdateOne, withBarID(id))
	return &BarUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Bar.
func (c *BarClient) Delete() *BarDelete {
	mutation := newBarMutation(c.config, OpDelete)
	return &BarDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BarClient) DeleteOne(_m *Bar) *BarDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BarClient) DeleteOneID(id uuid.UUID) *BarDeleteOne {
	builder := c.Delete().Where(bar.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BarDeleteOne{builder}
}

// Query returns a query builder for Bar.
func (c *BarClient) Query() *BarQuery {
	return &BarQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBar},
		inters: c.Interceptors(),
	}
}

// Get returns a Bar entity by its id.
func (c *BarClient) Get(ctx context.Context, id uuid.UUID) (*Bar, error) {
	return c.Query().Where(bar.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BarClient) GetX(ctx context.Context, id uuid.UUID) *Bar {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryListings queries the listings edge of a Bar.
func (c *BarClient) QueryListings(_m *Bar) *BarWhiskeyQuery {
	query := (&BarWhiskeyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bar.Table, bar.FieldID, id),
			sqlgraph.To(barwhiskey.Table, barwhiskey.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, bar.ListingsTable, bar.ListingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Bar.
func (c *BarClient) QueryJobs(_m *Bar) *TrawlJobQuery {
	query := (&TrawlJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bar.Table, bar.FieldID, id),
			sqlgraph.To(trawljob.Table, trawljob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, bar.JobsTable, bar.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BarClient) Hooks() []Hook {
	return c.hooks.Bar
}

// Interceptors returns the client interceptors.
func (c *BarClient) Interceptors() []Interceptor {
	return c.inters.Bar
}

func (c *BarClient) mutate(ctx context.Context, m *BarMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BarCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BarUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BarUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BarDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Bar mutation op: %q", m.Op())
	}
}

// BarWhiskeyClient is a client for the BarWhiskey schema.
type BarWhiskeyClient struct {
	config
}

// NewBarWhiskeyClient returns a client for the BarWhiskey from the given config.
func NewBarWhiskeyClient(c config) *BarWhiskeyClient {
	return &BarWhiskeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `barwhiskey.Hooks(f(g(h())))`.
func (c *BarWhiskeyClient) Use(hooks ...Hook) {
	c.hooks.BarWhiskey = append(c.hooks.BarWhiskey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `barwhiskey.Intercept(f(g(h())))`.
func (c *BarWhiskeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.BarWhiskey = append(c.inters.BarWhiskey, interceptors...)
}

// Create returns a builder for creating a BarWhiskey entity.
func (c *BarWhiskeyClient) Create() *BarWhiskeyCreate {
	mutation := newBarWhiskeyMutation(c.config, OpCreate)
	return &BarWhiskeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BarWhiskey entities.
func (c *BarWhiskeyClient) CreateBulk(builders ...*BarWhiskeyCreate) *BarWhiskeyCreateBulk {
	return &BarWhiskeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BarWhiskeyClient) MapCreateBulk(slice any, setFunc func(*BarWhiskeyCreate, int)) *BarWhiskeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BarWhiskeyCreateBulk{err: fmt.Errorf("calling to BarWhiskeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BarWhiskeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BarWhiskeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BarWhiskey.
func (c *BarWhiskeyClient) Update() *BarWhiskeyUpdate {
	mutation := newBarWhiskeyMutation(c.config, OpUpdate)
	return &BarWhiskeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BarWhiskeyClient) UpdateOne(_m *BarWhiskey) *BarWhiskeyUpdateOne {
	mutation := newBarWhiskeyMutation(c.config, OpUpdateOne, withBarWhiskey(_m))
	return &BarWhiskeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BarWhiskeyClient) UpdateOneID(id uuid.UUID) *BarWhiskeyUpdateOne {
	mutation := newBarWhiskeyMutation(c.config, OpUpdateOne, withBarWhiskeyID(id))
	return &BarWhiskeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BarWhiskey.
func (c *BarWhiskeyClient) Delete() *BarWhiskeyDelete {
	mutation := newBarWhiskeyMutation(c.config, OpDelete)
	return &BarWhiskeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BarWhiskeyClient) DeleteOne(_m *BarWhiskey) *BarWhiskeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BarWhiskeyClient) DeleteOneID(id uuid.UUID) *BarWhiskeyDeleteOne {
	builder := c.Delete().Where(barwhiskey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BarWhiskeyDeleteOne{builder}
}

// Query returns a query builder for BarWhiskey.
func (c *BarWhiskeyClient) Query() *BarWhiskeyQuery {
	return &BarWhiskeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBarWhiskey},
		inters: c.Interceptors(),
	}
}

// Get returns a BarWhiskey entity by its id.
func (c *BarWhiskeyClient) Get(ctx context.Context, id uuid.UUID) (*BarWhiskey, error) {
	return c.Query().Where(barwhiskey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BarWhiskeyClient) GetX(ctx context.Context, id uuid.UUID) *BarWhiskey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBar queries the bar edge of a BarWhiskey.
func (c *BarWhiskeyClient) QueryBar(_m *BarWhiskey) *BarQuery {
	query := (&BarClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(barwhiskey.Table, barwhiskey.FieldID, id),
			sqlgraph.To(bar.Table, bar.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, barwhiskey.BarTable, barwhiskey.BarColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWhiskey queries the whiskey edge of a BarWhiskey.
func (c *BarWhiskeyClient) QueryWhiskey(_m *BarWhiskey) *WhiskeyQuery {
	query := (&WhiskeyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(barwhiskey.Table, barwhiskey.FieldID, id),
			sqlgraph.To(whiskey.Table, whiskey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, barwhiskey.WhiskeyTable, barwhiskey.WhiskeyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BarWhiskeyClient) Hooks() []Hook {
	return c.hooks.BarWhiskey
}

// Interceptors returns the client interceptors.
func (c *BarWhiskeyClient) Interceptors() []Interceptor {
	return c.inters.BarWhiskey
}

func (c *BarWhiskeyClient) mutate(ctx context.Context, m *BarWhiskeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BarWhiskeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BarWhiskeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BarWhiskeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BarWhiskeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BarWhiskey mutation op: %q", m.Op())
	}
}

// TrawlJobClient is a client for the TrawlJob schema.
type TrawlJobClient struct {
	config
}

// NewTrawlJobClient returns a client for the TrawlJob from the given config.
func NewTrawlJobClient(c config) *TrawlJobClient {
	return &TrawlJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trawljob.Hooks(f(g(h())))`.
func (c *TrawlJobClient) Use(hooks ...Hook) {
	c.hooks.TrawlJob = append(c.hooks.TrawlJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trawljob.Intercept(f(g(h())))`.
func (c *TrawlJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrawlJob = append(c.inters.TrawlJob, interceptors...)
}

// Create returns a builder for creating a TrawlJob entity.
func (c *TrawlJobClient) Create() *TrawlJobCreate {
	mutation := newTrawlJobMutation(c.config, OpCreate)
	return &TrawlJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrawlJob entities.
func (c *TrawlJobClient) CreateBulk(builders ...*TrawlJobCreate) *TrawlJobCreateBulk {
	return &TrawlJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrawlJobClient) MapCreateBulk(slice any, setFunc func(*TrawlJobCreate, int)) *TrawlJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrawlJobCreateBulk{err: fmt.Errorf("calling to TrawlJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrawlJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrawlJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrawlJob.
func (c *TrawlJobClient) Update() *TrawlJobUpdate {
	mutation := newTrawlJobMutation(c.config, OpUpdate)
	return &TrawlJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrawlJobClient) UpdateOne(_m *TrawlJob) *TrawlJobUpdateOne {
	mutation := newTrawlJobMutation(c.config, OpUpdateOne, withTrawlJob(_m))
	return &TrawlJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrawlJobClient) UpdateOneID(id uuid.UUID) *TrawlJobUpdateOne {
	mutation := newTrawlJobMutation(c.config, OpUpdateOne, withTrawlJobID(id))
	return &TrawlJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrawlJob.
func (c *TrawlJobClient) Delete() *TrawlJobDelete {
	mutation := newTrawlJobMutation(c.config, OpDelete)
	return &TrawlJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrawlJobClient) DeleteOne(_m *TrawlJob) *TrawlJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrawlJobClient) DeleteOneID(id uuid.UUID) *TrawlJobDeleteOne {
	builder := c.Delete().Where(trawljob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrawlJobDeleteOne{builder}
}

// Query returns a query builder for TrawlJob.
func (c *TrawlJobClient) Query() *TrawlJobQuery {
	return &TrawlJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrawlJob},
		inters: c.Interceptors(),
	}
}

// Get returns a TrawlJob entity by its id.
func (c *TrawlJobClient) Get(ctx context.Context, id uuid.UUID) (*TrawlJob, error) {
	return c.Query().Where(trawljob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrawlJobClient) GetX(ctx context.Context, id uuid.UUID) *TrawlJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBar queries the bar edge of a TrawlJob.
func (c *TrawlJobClient) QueryBar(_m *TrawlJob) *BarQuery {
	query := (&BarClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trawljob.Table, trawljob.FieldID, id),
			sqlgraph.To(bar.Table, bar.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trawljob.BarTable, trawljob.BarColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrawlJobClient) Hooks() []Hook {
	return c.hooks.TrawlJob
}

// Interceptors returns the client interceptors.
func (c *TrawlJobClient) Interceptors() []Interceptor {
	return c.inters.TrawlJob
}

func (c *TrawlJobClient) mutate(ctx context.Context, m *TrawlJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrawlJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrawlJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrawlJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrawlJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrawlJob mutation op: %q", m.Op())
	}
}

// WhiskeyClient is a client for the Whiskey schema.
type WhiskeyClient struct {
	config
}

// NewWhiskeyClient returns a client for the Whiskey from the given config.
func NewWhiskeyClient(c config) *WhiskeyClient {
	return &WhiskeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `whiskey.Hooks(f(g(h())))`.
func (c *WhiskeyClient) Use(hooks ...Hook) {
	c.hooks.Whiskey = append(c.hooks.Whiskey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `whiskey.Intercept(f(g(h())))`.
func (c *WhiskeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Whiskey = append(c.inters.Whiskey, interceptors...)
}

// Create returns a builder for creating a Whiskey entity.
func (c *WhiskeyClient) Create() *WhiskeyCreate {
	mutation := newWhiskeyMutation(c.config, OpCreate)
	return &WhiskeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Whiskey entities.
func (c *WhiskeyClient) CreateBulk(builders ...*WhiskeyCreate) *WhiskeyCreateBulk {
	return &WhiskeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WhiskeyClient) MapCreateBulk(slice any, setFunc func(*WhiskeyCreate, int)) *WhiskeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WhiskeyCreateBulk{err: fmt.Errorf("calling to WhiskeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WhiskeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WhiskeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Whiskey.
func (c *WhiskeyClient) Update() *WhiskeyUpdate {
	mutation := newWhiskeyMutation(c.config, OpUpdate)
	return &WhiskeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WhiskeyClient) UpdateOne(_m *Whiskey) *WhiskeyUpdateOne {
	mutation := newWhiskeyMutation(c.config, OpUpdateOne, withWhiskey(_m))
	return &WhiskeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WhiskeyClient) UpdateOneID(id uuid.UUID) *WhiskeyUpdateOne {
	mutation := newWhiskeyMutation(c.config, OpUpdateOne, withWhiskeyID(id))
	return &WhiskeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Whiskey.
func (c *WhiskeyClient) Delete() *WhiskeyDelete {
	mutation := newWhiskeyMutation(c.config, OpDelete)
	return &WhiskeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WhiskeyClient) DeleteOne(_m *Whiskey) *WhiskeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WhiskeyClient) DeleteOneID(id uuid.UUID) *WhiskeyDeleteOne {
	builder := c.Delete().Where(whiskey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WhiskeyDeleteOne{builder}
}

// Query returns a query builder for Whiskey.
func (c *WhiskeyClient) Query() *WhiskeyQuery {
	return &WhiskeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWhiskey},
		inters: c.Interceptors(),
	}
}

// Get returns a Whiskey entity by its id.
func (c *WhiskeyClient) Get(ctx context.Context, id uuid.UUID) (*Whiskey, error) {
	return c.Query().Where(whiskey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WhiskeyClient) GetX(ctx context.Context, id uuid.UUID) *Whiskey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryListings queries the listings edge of a Whiskey.
func (c *WhiskeyClient) QueryListings(_m *Whiskey) *BarWhiskeyQuery {
	query := (&BarWhiskeyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(whiskey.Table, whiskey.FieldID, id),
			sqlgraph.To(barwhiskey.Table, barwhiskey.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, whiskey.ListingsTable, whiskey.ListingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WhiskeyClient) Hooks() []Hook {
	return c.hooks.Whiskey
}

// Interceptors returns the client interceptors.
func (c *WhiskeyClient) Interceptors() []Interceptor {
	return c.inters.Whiskey
}

func (c *WhiskeyClient) mutate(ctx context.Context, m *WhiskeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WhiskeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WhiskeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WhiskeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WhiskeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Whiskey mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Bar, BarWhiskey, TrawlJob, Whiskey []ent.Hook
	}
	inters struct {
		Bar, BarWhiskey, TrawlJob, Whiskey []ent.Interceptor
	}
)
