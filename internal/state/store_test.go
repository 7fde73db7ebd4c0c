package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolandbouwer/appdash/internal/remote"
)

func app(id int64, name string) remote.Application {
	return remote.Application{ID: id, Name: name, URL: "https://" + name}
}

func TestNewStore(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()

	assert.True(t, snap.Loading, "store starts loading until the first poll lands")
	assert.False(t, snap.Refreshing)
	assert.Empty(t, snap.Applications)
	assert.Empty(t, snap.Tags)
	assert.True(t, snap.LastChecked.IsZero())
}

func TestBeginRefresh(t *testing.T) {
	s := NewStore()
	now := time.Now()
	s.ApplySnapshot([]remote.Application{app(1, "billing")}, nil, now)

	s.BeginRefresh()
	snap := s.Snapshot()

	assert.True(t, snap.Loading)
	assert.True(t, snap.Refreshing)
	// Existing data stays visible during the cycle.
	require.Len(t, snap.Applications, 1)
}

func TestApplySnapshot(t *testing.T) {
	s := NewStore()
	now := time.Now()
	s.FailRefresh("previous failure")

	apps := []remote.Application{app(1, "billing"), app(2, "portal")}
	tags := []remote.Tag{{ID: 1, Name: "payments"}}
	s.ApplySnapshot(apps, tags, now)

	snap := s.Snapshot()
	assert.Equal(t, apps, snap.Applications)
	assert.Equal(t, tags, snap.Tags)
	assert.Equal(t, now, snap.LastChecked)
	assert.Empty(t, snap.Err, "a successful cycle clears the banner error")
	assert.False(t, snap.Loading)
	assert.False(t, snap.Refreshing)
}

func TestFailRefreshKeepsStaleData(t *testing.T) {
	s := NewStore()
	now := time.Now()
	apps := []remote.Application{app(1, "billing")}
	tags := []remote.Tag{{ID: 1, Name: "payments"}}
	s.ApplySnapshot(apps, tags, now)

	s.BeginRefresh()
	s.FailRefresh("Can't reach the health API")

	snap := s.Snapshot()
	assert.Equal(t, apps, snap.Applications, "a failed cycle must not blank the data")
	assert.Equal(t, tags, snap.Tags)
	assert.Equal(t, now, snap.LastChecked, "failed cycle does not advance the check time")
	assert.Equal(t, "Can't reach the health API", snap.Err)
	assert.False(t, snap.Loading)
	assert.False(t, snap.Refreshing)
}

func TestAppendApplication(t *testing.T) {
	s := NewStore()
	s.ApplySnapshot([]remote.Application{app(1, "billing")}, nil, time.Now())

	s.AppendApplication(app(2, "portal"))

	snap := s.Snapshot()
	require.Len(t, snap.Applications, 2)
	assert.Equal(t, int64(2), snap.Applications[1].ID, "created records append at the end")
}

func TestReplaceApplication(t *testing.T) {
	s := NewStore()
	s.ApplySnapshot([]remote.Application{app(1, "billing"), app(2, "portal")}, nil, time.Now())

	updated := app(2, "portal-v2")
	s.ReplaceApplication(updated)

	snap := s.Snapshot()
	require.Len(t, snap.Applications, 2)
	assert.Equal(t, "billing", snap.Applications[0].Name)
	assert.Equal(t, "portal-v2", snap.Applications[1].Name, "replace matches identity, not position")

	// Unknown identity is a no-op.
	s.ReplaceApplication(app(99, "ghost"))
	assert.Len(t, s.Snapshot().Applications, 2)
}

func TestRemoveApplication(t *testing.T) {
	s := NewStore()
	s.ApplySnapshot([]remote.Application{app(1, "billing"), app(2, "portal"), app(3, "batch")}, nil, time.Now())

	s.RemoveApplication(2)

	snap := s.Snapshot()
	require.Len(t, snap.Applications, 2)
	assert.Equal(t, int64(1), snap.Applications[0].ID)
	assert.Equal(t, int64(3), snap.Applications[1].ID)

	// Removing a missing identity is a no-op.
	s.RemoveApplication(99)
	assert.Len(t, s.Snapshot().Applications, 2)
}

func TestTagAppendRemove(t *testing.T) {
	s := NewStore()
	s.ApplySnapshot(nil, []remote.Tag{{ID: 1, Name: "payments"}}, time.Now())

	s.AppendTag(remote.Tag{ID: 2, Name: "edge"})
	require.Len(t, s.Snapshot().Tags, 2)

	s.RemoveTag(1)
	tags := s.Snapshot().Tags
	require.Len(t, tags, 1)
	assert.Equal(t, "edge", tags[0].Name)
}

func TestRemoveTagLeavesApplicationTagLists(t *testing.T) {
	s := NewStore()
	a := app(1, "billing")
	a.Tags = []remote.Tag{{ID: 1, Name: "payments"}}
	s.ApplySnapshot([]remote.Application{a}, []remote.Tag{{ID: 1, Name: "payments"}}, time.Now())

	s.RemoveTag(1)

	snap := s.Snapshot()
	assert.Empty(t, snap.Tags)
	// Stale tag names on applications persist until the next poll.
	require.Len(t, snap.Applications[0].Tags, 1)
	assert.Equal(t, "payments", snap.Applications[0].Tags[0].Name)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.ApplySnapshot([]remote.Application{app(1, "billing")}, []remote.Tag{{ID: 1, Name: "payments"}}, time.Now())

	snap := s.Snapshot()
	snap.Applications[0].Name = "mutated"
	snap.Tags[0].Name = "mutated"

	fresh := s.Snapshot()
	assert.Equal(t, "billing", fresh.Applications[0].Name)
	assert.Equal(t, "payments", fresh.Tags[0].Name)
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore()
	done := make(chan struct{})

	go func() {
		for i := 0; i < 200; i++ {
			s.ApplySnapshot([]remote.Application{app(int64(i), "a")}, nil, time.Now())
			s.BeginRefresh()
			s.FailRefresh("x")
		}
		close(done)
	}()

	for i := 0; i < 200; i++ {
		_ = s.Snapshot()
		s.AppendTag(remote.Tag{ID: int64(i)})
	}
	<-done
}
