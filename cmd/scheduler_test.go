package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-journal/pkg/logger"
)

type countingSnapshots struct{ runs int }

func (c *countingSnapshots) Execute(context.Context) error { c.runs++; return nil }

func (c *countingSnapshots) ExecuteForUser(context.Context, uint) error { return nil }

func TestNewSnapshotScheduler(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{name: "descriptor", spec: "@every 1h"},
		{name: "five fields", spec: "0 * * * *"},
		{name: "seconds field rejected", spec: "0 0 * * * *", wantErr: true},
		{name: "garbage", spec: "often", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := newSnapshotScheduler(context.Background(), tt.spec, logger.NewNop(), &countingSnapshots{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, c.Entries(), 1)
		})
	}
}

func TestSnapshotJobRuns(t *testing.T) {
	snaps := &countingSnapshots{}
	c, err := newSnapshotScheduler(context.Background(), "@every 1h", logger.NewNop(), snaps)
	require.NoError(t, err)

	c.Entries()[0].Job.Run()
	assert.Equal(t, 1, snaps.runs)
}
