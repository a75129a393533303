package corecommerce

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cctools/internal/types"
)

// isFileExpired reports whether the cache file is missing or older than the
// configured TTL. A TTL of zero always forces a refresh.
func (b *Browser) isFileExpired(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return time.Now().After(info.ModTime().Add(b.config.CacheTTL))
}

// ensureCached downloads the resource's export unless a fresh cache file
// already exists, and returns the cache file path. One lock serializes the
// expiry check and download across every concurrent invocation on this
// machine; it is deliberately not per resource, so an unrelated fetch waits
// behind an in-flight one rather than hammering the admin with parallel
// export jobs.
func (b *Browser) ensureCached(resource types.Resource) (string, error) {
	path := filepath.Join(b.cacheDir, resource.CacheFile())

	if err := b.lock.Lock(); err != nil {
		return "", fmt.Errorf("failed to acquire download lock: %w", err)
	}
	defer b.lock.Unlock()

	if !b.isFileExpired(path) {
		b.logger.Debugf("Cache hit for %s", path)
		return path, nil
	}

	if err := b.login(); err != nil {
		return "", err
	}
	if err := b.downloadExport(resource, path); err != nil {
		return "", err
	}
	return path, nil
}
