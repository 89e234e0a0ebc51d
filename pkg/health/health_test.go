package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Name() string               { return f.name }
func (f fakeChecker) Check(context.Context) error { return f.err }

func TestReady(t *testing.T) {
	require.NoError(t, NewService().Ready(context.Background()))
	require.NoError(t, NewService(fakeChecker{name: "roster"}).Ready(context.Background()))

	boom := errors.New("boom")
	err := NewService(fakeChecker{name: "roster"}, fakeChecker{name: "postgres", err: boom}).Ready(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "postgres: boom")
}
