package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                { return s.name }
func (s stubChecker) Check(context.Context) error { return s.err }

func TestReadyWithoutCheckers(t *testing.T) {
	assert.NoError(t, NewService().Ready(context.Background()))
}

func TestReadyReportsFailingDependency(t *testing.T) {
	down := errors.New("connection refused")
	svc := NewService(stubChecker{name: "postgres"}, stubChecker{name: "redis", err: down})

	err := svc.Ready(context.Background())
	assert.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "redis")
}
