// file: internal/metadata/cached.go
// version: 1.0.0
// guid: 9c9f9719-ac36-4577-9d7e-b5337e27a3ff

package metadata

import (
	"fmt"
	"os"
	"time"

	"github.com/jdfalk/music-renamer/internal/cache"
	"github.com/jdfalk/music-renamer/internal/naming"
)

// CachedProber memoizes another prober. Entries are keyed on path, size and
// modification time, so a retagged file is read again.
type CachedProber struct {
	inner Prober
	cache *cache.Cache[naming.Hint]
}

// NewCachedProber wraps inner with a cache whose entries live for ttl.
func NewCachedProber(inner Prober, ttl time.Duration) *CachedProber {
	return &CachedProber{
		inner: inner,
		cache: cache.New[naming.Hint](ttl),
	}
}

// Probe returns the cached hint for path, probing on a miss.
func (p *CachedProber) Probe(path string) naming.Hint {
	info, err := os.Stat(path)
	if err != nil {
		return p.inner.Probe(path)
	}
	key := fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
	return p.cache.GetOrLoad(key, func() naming.Hint {
		return p.inner.Probe(path)
	})
}

// Prune drops expired entries.
func (p *CachedProber) Prune() int {
	return p.cache.Prune()
}
