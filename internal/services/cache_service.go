package services

import (
	"container/list"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Cache é a interface para serviços de cache
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttl time.Duration)
	Delete(key string)
	Clear()
	Size() int
}

// cacheEntry representa uma entrada no cache
type cacheEntry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

// LRUCache implementa um cache LRU (Least Recently Used) thread-safe com TTL por entrada
type LRUCache[V any] struct {
	capacity int
	mu       sync.Mutex
	cache    map[string]*list.Element
	lruList  *list.List
	now      func() time.Time
}

// NewLRUCache cria um novo cache LRU com a capacidade especificada
func NewLRUCache[V any](capacity int) *LRUCache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRUCache[V]{
		capacity: capacity,
		cache:    make(map[string]*list.Element),
		lruList:  list.New(),
		now:      time.Now,
	}
}

// Get recupera um valor do cache
func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	element, found := c.cache[key]
	if !found {
		return zero, false
	}

	entry := element.Value.(*cacheEntry[V])
	if c.now().After(entry.expiration) {
		c.removeElement(element)
		return zero, false
	}

	c.lruList.MoveToBack(element)
	return entry.value, true
}

// Set adiciona ou atualiza um valor no cache
func (c *LRUCache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(ttl)

	if element, found := c.cache[key]; found {
		c.lruList.MoveToBack(element)
		entry := element.Value.(*cacheEntry[V])
		entry.value = value
		entry.expiration = expiration
		return
	}

	// Cache cheio: remove o menos recentemente usado
	if c.lruList.Len() >= c.capacity {
		if oldest := c.lruList.Front(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	element := c.lruList.PushBack(&cacheEntry[V]{
		key:        key,
		value:      value,
		expiration: expiration,
	})
	c.cache[key] = element
}

// Delete remove um item do cache
func (c *LRUCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, found := c.cache[key]; found {
		c.removeElement(element)
	}
}

// Clear limpa todo o cache
func (c *LRUCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]*list.Element)
	c.lruList.Init()
}

// Size retorna o número de itens no cache
func (c *LRUCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lruList.Len()
}

// removeElement remove um elemento da lista e do mapa (deve ser chamado com lock)
func (c *LRUCache[V]) removeElement(element *list.Element) {
	c.lruList.Remove(element)
	entry := element.Value.(*cacheEntry[V])
	delete(c.cache, entry.key)
}

// CleanupExpired remove todos os itens expirados do cache
func (c *LRUCache[V]) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0

	var next *list.Element
	for element := c.lruList.Front(); element != nil; element = next {
		next = element.Next()
		if now.After(element.Value.(*cacheEntry[V]).expiration) {
			c.removeElement(element)
			removed++
		}
	}

	return removed
}

// StartCleanupRoutine inicia uma rotina de limpeza periódica.
// O ticker retornado deve ser parado pelo chamador no shutdown.
func (c *LRUCache[V]) StartCleanupRoutine(interval time.Duration, logger *zap.Logger) *time.Ticker {
	ticker := time.NewTicker(interval)

	go func() {
		for range ticker.C {
			if removed := c.CleanupExpired(); removed > 0 && logger != nil {
				logger.Debug("cache cleanup", zap.Int("removed", removed))
			}
		}
	}()

	return ticker
}
