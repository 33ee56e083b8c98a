package iodb_test

import (
	"context"
	"testing"

	"github.com/livingcost/lccollect/internal/iodb"
	"github.com/livingcost/lccollect/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectBadConfig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that dials the network in short mode")
	}

	op := iodb.NewPgxOperator()
	cfg := iotesting.GetTestDatabaseConfig()
	cfg.Host = "host.invalid"

	err := op.Connect(context.Background(), cfg)
	assert.Error(t, err)
}

func TestConnectAndTableExists(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	cfg := iotesting.GetTestDatabaseConfig()

	err := op.Connect(ctx, cfg)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	defer op.Close()

	require.NotNil(t, op.Pool())

	_, err = op.TableExists(ctx, "no_such_table_here")
	assert.NoError(t, err)
}
