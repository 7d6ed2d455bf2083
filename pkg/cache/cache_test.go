package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCache cria um cache com relógio controlado pelo teste
func newTestCache[V any](ttl time.Duration) (*ttlCache[V], *time.Time) {
	current := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	c := &ttlCache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     func() time.Time { return current },
	}

	return c, &current
}

func TestCache_GetESet(t *testing.T) {
	c, _ := newTestCache[string](5 * time.Minute)

	_, ok := c.Get("brand-1")
	assert.False(t, ok)

	c.Set("brand-1", "cus_abc")

	value, ok := c.Get("brand-1")
	require.True(t, ok)
	assert.Equal(t, "cus_abc", value)
}

func TestCache_ExpiraAposTTL(t *testing.T) {
	c, clock := newTestCache[string](5 * time.Minute)

	c.Set("brand-1", "cus_abc")

	*clock = clock.Add(5 * time.Minute)
	_, ok := c.Get("brand-1")
	assert.True(t, ok, "no limite exato do TTL a entrada ainda vale")

	*clock = clock.Add(time.Second)
	_, ok = c.Get("brand-1")
	assert.False(t, ok)
}

func TestCache_SetRenovaExpiracao(t *testing.T) {
	c, clock := newTestCache[int](time.Minute)

	c.Set("k", 1)

	*clock = clock.Add(50 * time.Second)
	c.Set("k", 2)

	*clock = clock.Add(30 * time.Second)
	value, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, value)
}

func TestCache_Invalidate(t *testing.T) {
	c, _ := newTestCache[string](time.Minute)

	c.Set("k", "v")
	c.Invalidate("k")

	_, ok := c.Get("k")
	assert.False(t, ok)

	// Invalidar chave inexistente não tem efeito colateral
	c.Invalidate("outra")
}

func TestNewTTL_ValorZeroDoTipo(t *testing.T) {
	c := NewTTL[*struct{ Name string }](time.Minute)

	value, ok := c.Get("ausente")
	assert.False(t, ok)
	assert.Nil(t, value)
}
