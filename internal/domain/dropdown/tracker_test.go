package dropdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTrackerStartsClosed(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, None, tr.Active())
	assert.False(t, tr.AnyOpen())
}

func TestToggleTwiceCloses(t *testing.T) {
	for _, id := range All {
		t.Run(id.String(), func(t *testing.T) {
			tr := NewTracker()
			tr.Toggle(id)
			assert.True(t, tr.IsOpen(id))
			tr.Toggle(id)
			assert.Equal(t, None, tr.Active())
		})
	}
}

func TestToggleOtherReplaces(t *testing.T) {
	tr := NewTracker()
	tr.Toggle(Calendar)
	tr.Toggle(User)

	assert.Equal(t, User, tr.Active())
	assert.False(t, tr.IsOpen(Calendar))

	open := 0
	for _, id := range All {
		if tr.IsOpen(id) {
			open++
		}
	}
	assert.Equal(t, 1, open)
}

func TestToggleNoneClosesAnything(t *testing.T) {
	tr := NewTracker()
	tr.Toggle(Notifications)
	tr.Toggle(None)
	assert.Equal(t, None, tr.Active())

	tr.Toggle(None)
	assert.Equal(t, None, tr.Active())
}

func TestToggleUnknownIsIgnored(t *testing.T) {
	tr := NewTracker()
	tr.Toggle(Calendar)
	tr.Toggle(ID("settings"))
	assert.Equal(t, Calendar, tr.Active())
}

func TestCloseAll(t *testing.T) {
	tr := NewTracker()
	tr.CloseAll()
	assert.Equal(t, None, tr.Active())

	tr.Toggle(User)
	tr.CloseAll()
	assert.Equal(t, None, tr.Active())
	assert.False(t, tr.IsOpen(None))
}
