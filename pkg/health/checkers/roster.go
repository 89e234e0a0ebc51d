package checkers

import (
	"context"
	"time"

	"github.com/celera/directory/pkg/member"
)

type snapshotter interface {
	Snapshot(ctx context.Context) (member.Table, error)
}

// RosterChecker fails while the backing roster cannot be read.
type RosterChecker struct {
	source snapshotter
}

func NewRosterChecker(source snapshotter) *RosterChecker {
	return &RosterChecker{source: source}
}

func (c *RosterChecker) Name() string { return "roster" }

func (c *RosterChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	_, err := c.source.Snapshot(ctx)
	return err
}
