package memtable

import (
	"encoding/binary"
	"github.com/coocood/freecache"
	"sync"
	"time"
)

// MemTable is a fixed size in-process table of numbers, old entries are evicted when full
type MemTable struct {
	mut   sync.Mutex
	cache *freecache.Cache
}

// New creates freecache with size
func New(size int) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
	}
}

// GetNum ...
func (m *MemTable) GetNum(key string) (num uint64, ok bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return 0, false
	}
	if len(data) < 8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data), true
}

// SetNum with expire, zero means no expiration
func (m *MemTable) SetNum(key string, num uint64, expire time.Duration) {
	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], num)
	_ = m.cache.Set([]byte(key), data[:], expireSeconds(expire))
}

// Allow returns true at most once per interval for each key, measured by now
func (m *MemTable) Allow(key string, now time.Time, interval time.Duration) bool {
	m.mut.Lock()
	defer m.mut.Unlock()

	last, ok := m.GetNum(key)
	if ok && now.Sub(time.Unix(0, int64(last))) < interval {
		return false
	}
	m.SetNum(key, uint64(now.UnixNano()), interval)
	return true
}

func expireSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d+time.Second-1)/time.Second) + 1
}
