package main

import (
	"context"
	"net"
	"time"

	"github.com/gocql/gocql"
)

// defaultKeepaliveInterval is used when keepalive is on without an interval.
const defaultKeepaliveInterval = 42 * time.Second

// SocketOptions are the socket settings a host passes when opening a session.
type SocketOptions struct {
	ConnectTimeout    time.Duration
	NoDelay           bool
	Keepalive         bool
	KeepaliveInterval time.Duration
}

// newSocketOptions converts the C representation. Non-positive durations
// mean the default.
func newSocketOptions(connectMillis int32, noDelay, keepalive bool, intervalMillis int64) SocketOptions {
	o := SocketOptions{NoDelay: noDelay, Keepalive: keepalive}
	if connectMillis > 0 {
		o.ConnectTimeout = time.Duration(connectMillis) * time.Millisecond
	}
	if keepalive {
		o.KeepaliveInterval = defaultKeepaliveInterval
		if intervalMillis > 0 {
			o.KeepaliveInterval = time.Duration(intervalMillis) * time.Millisecond
		}
	}
	return o
}

func (o SocketOptions) apply(cfg *gocql.ClusterConfig) {
	if o.ConnectTimeout > 0 {
		cfg.ConnectTimeout = o.ConnectTimeout
	}
	cfg.SocketKeepalive = o.KeepaliveInterval
	cfg.Dialer = o.dialer(cfg.ConnectTimeout)
}

func (o SocketOptions) dialer(timeout time.Duration) *socketDialer {
	d := &socketDialer{noDelay: o.NoDelay}
	d.Timeout = timeout
	d.KeepAlive = -1
	if o.Keepalive {
		d.KeepAlive = o.KeepaliveInterval
	}
	return d
}

// socketDialer is a net.Dialer that also sets TCP_NODELAY.
type socketDialer struct {
	net.Dialer
	noDelay bool
}

func (d *socketDialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	conn, err := d.Dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}
	if tcp, ok := conn.(*net.TCPConn); ok {
		if err := tcp.SetNoDelay(d.noDelay); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return conn, nil
}
