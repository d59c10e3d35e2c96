package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLGetSet(t *testing.T) {
	c := NewTTL(time.Minute, 4)

	_, ok := c.Get("h1")
	assert.False(t, ok)

	c.Set("h1", Entry{JobID: "job-1"})
	got, ok := c.Get("h1")
	assert.True(t, ok)
	assert.Equal(t, "job-1", got.JobID)
}

func TestTTLExpiry(t *testing.T) {
	c := NewTTL(time.Minute, 4)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("h1", Entry{JobID: "job-1"})

	now = now.Add(30 * time.Second)
	_, ok := c.Get("h1")
	assert.True(t, ok, "entry still fresh at half the TTL")

	now = now.Add(31 * time.Second)
	_, ok = c.Get("h1")
	assert.False(t, ok, "entry expired past the TTL")
	assert.Equal(t, 0, c.Len(), "expired access drops the entry")
}

func TestTTLSetResetsExpiry(t *testing.T) {
	c := NewTTL(time.Minute, 4)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("h1", Entry{JobID: "job-1"})
	now = now.Add(45 * time.Second)
	c.Set("h1", Entry{JobID: "job-2"})
	now = now.Add(45 * time.Second)

	got, ok := c.Get("h1")
	assert.True(t, ok, "re-set restarts the clock")
	assert.Equal(t, "job-2", got.JobID)
}

func TestTTLEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewTTL(time.Minute, 2)

	c.Set("a", Entry{JobID: "a"})
	c.Set("b", Entry{JobID: "b"})

	// touch a so b becomes the eviction candidate
	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Set("c", Entry{JobID: "c"})

	_, ok = c.Get("b")
	assert.False(t, ok, "least recently used entry evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}
