package utility

import (
	"sync"
	"time"
)

// Cache là struct để quản lý cache trong bộ nhớ với thời gian dọn dẹp định kỳ.
// Dùng cho các dữ liệu tra cứu lặp lại nhiều lần (ví dụ: tên bản ghi cha khi populate).
type Cache struct {
	items    map[string]interface{}
	mu       sync.RWMutex
	cleanup  time.Duration
	stopChan chan struct{}
}

// NewCache tạo một instance mới của Cache.
// cleanup là chu kỳ xóa toàn bộ items để tránh dữ liệu cũ.
func NewCache(cleanup time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]interface{}),
		cleanup:  cleanup,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// Set lưu giá trị vào cache
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
}

// Get lấy giá trị từ cache
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, exists := c.items[key]
	return value, exists
}

// Stop dừng vòng dọn dẹp của cache
func (c *Cache) Stop() {
	close(c.stopChan)
}

// cleanupLoop dọn dẹp cache định kỳ
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.items = make(map[string]interface{})
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}
