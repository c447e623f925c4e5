// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"

	"github.com/opplafy/tenant-manager/internal/logging"
)

// unreachableDriver fails every connection attempt so transactions can never
// be opened.
type unreachableDriver struct{}

func (unreachableDriver) Open(name string) (driver.Conn, error) {
	return nil, errors.New("connection refused")
}

func init() {
	sql.Register("unreachable", unreachableDriver{})
}

func newUnreachableClient(t *testing.T) *DBClient {
	t.Helper()

	sqlDB, err := sql.Open("unreachable", "")
	if err != nil {
		t.Fatalf("expected error to be nil got %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return &DBClient{
		db:     sqlDB,
		logger: logging.NewNoopLogger(),
	}
}

func TestStatement_TxOpenFailureFailsStatements(t *testing.T) {
	client := newUnreachableClient(t)
	ctx := context.WithValue(context.Background(), txContextKey, &lazyTx{db: client.db})

	_, err := client.Statement(ctx).
		Insert("tenant").
		Columns("id", "name").
		Values("acme_corp", "Acme Corp").
		ExecContext(ctx)
	if err == nil {
		t.Fatal("expected error got nil")
	}
	if !strings.Contains(err.Error(), "failed to open lazy transaction") {
		t.Fatalf("expected transaction open error got %v", err)
	}

	_, err = client.Statement(ctx).
		Select("id").
		From("tenant").
		QueryContext(ctx)
	if err == nil {
		t.Fatal("expected error got nil")
	}

	var id string
	err = client.Statement(ctx).
		Select("id").
		From("tenant").
		QueryRowContext(ctx).
		Scan(&id)
	if err == nil {
		t.Fatal("expected error got nil")
	}
	if !strings.Contains(err.Error(), "failed to open lazy transaction") {
		t.Fatalf("expected transaction open error got %v", err)
	}
}

func TestWithTx_TxOpenFailureSurfaces(t *testing.T) {
	client := newUnreachableClient(t)

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		_, err := client.Statement(ctx).
			Insert("tenant").
			Columns("id").
			Values("acme_corp").
			ExecContext(ctx)
		return err
	})
	if err == nil {
		t.Fatal("expected error got nil")
	}
	if !strings.Contains(err.Error(), "failed to open lazy transaction") {
		t.Fatalf("expected transaction open error got %v", err)
	}
}

func TestWithTx_NoStatementsOpensNoTransaction(t *testing.T) {
	client := newUnreachableClient(t)

	// fn never touches the database, no transaction is opened and the
	// unreachable pool is never hit.
	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("expected error to be nil got %v", err)
	}
}
