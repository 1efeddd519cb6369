package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetFromCache(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("name", "stroller", time.Minute)
	c.Set("count", 3, time.Minute)

	name, ok := GetFromCache[string](c, "name")
	assert.True(t, ok)
	assert.Equal(t, "stroller", name)

	_, ok = GetFromCache[string](c, "count")
	assert.False(t, ok, "type mismatch must report a miss")

	_, ok = GetFromCache[int](c, "missing")
	assert.False(t, ok)

	c.Delete("name")
	_, ok = GetFromCache[string](c, "name")
	assert.False(t, ok)

	_, ok = GetFromCache[string](nil, "name")
	assert.False(t, ok)
}
