package postgres

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ConnectionInfo struct {
	Host     string
	Port     int
	Username string
	DBName   string
	SSLMode  string
	Password string

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	ConnectTimeout  time.Duration
}

// DSN renders info as a postgres URL. The password is escaped.
func (info ConnectionInfo) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(info.Username, info.Password),
		Host:   fmt.Sprintf("%s:%d", info.Host, info.Port),
		Path:   "/" + info.DBName,
	}
	q := url.Values{}
	if info.SSLMode != "" {
		q.Set("sslmode", info.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func NewPostgresConnection(ctx context.Context, info ConnectionInfo) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(info.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	if info.MaxConns > 0 {
		cfg.MaxConns = info.MaxConns
	}
	if info.MinConns > 0 {
		cfg.MinConns = info.MinConns
	}
	if info.MaxConnLifetime > 0 {
		cfg.MaxConnLifetime = info.MaxConnLifetime
	}

	timeout := info.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return pool, nil
}

func Close(pool *pgxpool.Pool) {
	if pool == nil {
		return
	}
	pool.Close()
}
