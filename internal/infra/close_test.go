package infra

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestInitTracing_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), "", "gestionpos", "test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestClose_CollectsEveryError(t *testing.T) {
	assert.NoError(t, Close(context.Background(), nil, nil, nil))

	errTracing := errors.New("exporter flush")
	err := Close(context.Background(), nil, nil, func(context.Context) error { return errTracing })
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.ErrorIs(t, err, errTracing)
}

func TestNewRedis_EmptyURLDisabled(t *testing.T) {
	rdb, err := NewRedis("")
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}
