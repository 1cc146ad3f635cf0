package database

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/smartconseil/sc_contact/config"
	"github.com/smartconseil/sc_contact/environment"
	"github.com/smartconseil/sc_contact/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Client owns the single connection attempt to the document store
// and the mongo client it produces
type Client struct {
	logger         *zap.Logger
	status         *ConnectionStatus
	url            string
	databaseName   string
	connectTimeout time.Duration

	connectOnce sync.Once
	started     atomic.Bool
	done        chan struct{}

	mu     sync.RWMutex
	client *mongo.Client
}

// NewClient creates a Client, no connection is attempted until Connect is called
func NewClient(logger *zap.Logger, env *environment.Env, cfg *config.AppConfig, status *ConnectionStatus) *Client {
	databaseName := env.Get(environment.MongoDatabase)
	if len(databaseName) == 0 {
		databaseName = cfg.Database.Name
	}

	return &Client{
		logger:         logger,
		status:         status,
		url:            env.Get(environment.DatabaseURL),
		databaseName:   databaseName,
		connectTimeout: time.Duration(cfg.Database.ConnectTimeoutSeconds) * time.Second,
		done:           make(chan struct{}),
	}
}

// Connect starts the connection attempt in the background and returns a channel
// which is closed once the attempt has resolved. Only the first call starts an attempt.
func (c *Client) Connect(ctx context.Context) <-chan struct{} {
	c.connectOnce.Do(func() {
		c.started.Store(true)
		go func() {
			defer close(c.done)
			c.connect(ctx)
		}()
	})

	return c.done
}

func (c *Client) connect(ctx context.Context) {
	client, err := c.dial(ctx)
	if err != nil {
		c.logger.Error("could not connect to database", zap.Error(err))
		c.status.Resolve(Error)
		metrics.SetDatabaseConnected(false)
		return
	}

	c.mu.Lock()
	c.client = client
	c.mu.Unlock()

	c.status.Resolve(Connected)
	metrics.SetDatabaseConnected(true)
	c.logger.Info("connected to database", zap.String("database", c.databaseName))
}

func (c *Client) dial(ctx context.Context) (*mongo.Client, error) {
	if len(c.url) == 0 {
		return nil, ErrMissingURL
	}

	if c.connectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.connectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.url))
	if err != nil {
		return nil, errors.Wrap(err, "could not create client")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "could not ping database")
	}

	return client, nil
}

// Collection returns the collection with the given name,
// or ErrNotConnected when no connection has been established
func (c *Client) Collection(name string) (*mongo.Collection, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.client == nil {
		return nil, ErrNotConnected
	}

	return c.client.Database(c.databaseName).Collection(name), nil
}

// DatabaseName returns the name of the database the collections belong to
func (c *Client) DatabaseName() string {
	return c.databaseName
}

// Disconnect closes the underlying mongo client if there is one.
// A connection attempt still in flight is waited for, bounded by ctx.
func (c *Client) Disconnect(ctx context.Context) error {
	if c.started.Load() {
		select {
		case <-c.done:
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "connection attempt still running")
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}

	err := c.client.Disconnect(ctx)
	c.client = nil
	if err != nil {
		return errors.Wrap(err, "could not disconnect from database")
	}

	c.logger.Info("disconnected from database")
	return nil
}
