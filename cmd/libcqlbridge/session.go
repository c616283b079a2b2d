package main

import (
	"context"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gocql/gocql"
	"go.uber.org/zap"

	"github.com/CaliLuke/go-cqlbridge/cql"
)

// session is the state behind a session handle.
type session struct {
	gs      *gocql.Session
	timeout time.Duration
	logger  *zap.Logger
}

// splitHosts parses a comma separated contact point list.
func splitHosts(s string) []string {
	var hosts []string
	for _, h := range strings.Split(s, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}

// openSession connects to the cluster. Errors are in the cql session model.
func openSession(contactPoints, keyspace string, opts SocketOptions, logger *zap.Logger) (*session, error) {
	hosts := splitHosts(contactPoints)
	cfg := gocql.NewCluster(hosts...)
	cfg.Keyspace = keyspace
	opts.apply(cfg)

	gs, err := cfg.CreateSession()
	if err != nil {
		logger.Warn("session setup failed", zap.Strings("hosts", hosts), zap.Error(err))
		return nil, cql.SessionError(err)
	}
	logger.Debug("session opened",
		zap.Strings("hosts", hosts),
		zap.String("keyspace", keyspace),
		zap.Duration("connect_timeout", cfg.ConnectTimeout))
	return &session{gs: gs, timeout: cfg.Timeout, logger: logger}, nil
}

// execute runs stmt. A positive timeout overrides the cluster request
// timeout. Errors are in the cql request model.
func (s *session) execute(stmt string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = s.timeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	obs := &hostObserver{}
	q := s.gs.Query(stmt).WithContext(ctx).Observer(obs)
	defer q.Release()

	if err := q.Exec(); err != nil {
		s.logger.Debug("query failed", zap.String("host", obs.address()), zap.Error(err))
		return cql.QueryError(err, obs.address(), timeout)
	}
	return nil
}

// prepare prepares stmt to resolve its routing key. Statements gocql does
// not route are accepted as they are.
func (s *session) prepare(stmt string) error {
	if _, err := s.gs.Query(stmt).GetRoutingKey(); err != nil {
		return cql.PrepareFailure(stmt, err)
	}
	return nil
}

func (s *session) close() {
	s.gs.Close()
}

// hostObserver remembers the host of the last attempt.
type hostObserver struct {
	mu   sync.Mutex
	host string
}

func (o *hostObserver) ObserveQuery(_ context.Context, q gocql.ObservedQuery) {
	if q.Host == nil {
		return
	}
	addr := net.JoinHostPort(q.Host.ConnectAddress().String(), strconv.Itoa(q.Host.Port()))
	o.mu.Lock()
	o.host = addr
	o.mu.Unlock()
}

func (o *hostObserver) address() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.host
}
