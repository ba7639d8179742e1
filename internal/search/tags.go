// Package search maintains the Redis tag index used by the host's item
// search surface. Tags are stored as sets:
//
//	Key:   tags:<tag>     -> set of item IDs
//	Key:   itemtags:<id>  -> set of tags on the item
//
// Indexing is ancillary to matching: index failures are logged by callers
// and never fail a matching run.
package search

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reclaim/lostfound-app/internal/item"
	"github.com/reclaim/lostfound-app/internal/metrics"
)

const (
	tagPrefix     = "tags:"
	itemTagPrefix = "itemtags:"

	// indexTTL keeps the index from accumulating entries for reports that
	// were resolved long ago; the host re-indexes on item activity.
	indexTTL = 90 * 24 * time.Hour
)

// Index maintains per-tag item sets in Redis.
type Index struct {
	rdb *redis.Client
}

// NewIndex creates a tag index backed by the given Redis client.
func NewIndex(rdb *redis.Client) *Index {
	return &Index{rdb: rdb}
}

// Add extracts tags from the item's title and description and records the
// item under each of them.
func (ix *Index) Add(ctx context.Context, it item.Item) error {
	tags := item.ExtractTags(it.Title + " " + it.Description)
	if len(tags) == 0 {
		return nil
	}

	pipe := ix.rdb.Pipeline()
	for _, tag := range tags {
		key := tagPrefix + tag
		pipe.SAdd(ctx, key, it.ID)
		pipe.Expire(ctx, key, indexTTL)
	}
	itemKey := itemTagPrefix + it.ID
	pipe.SAdd(ctx, itemKey, toAnySlice(tags)...)
	pipe.Expire(ctx, itemKey, indexTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	metrics.TagsIndexed.Add(float64(len(tags)))
	return nil
}

// Remove deletes an item from every tag set it was indexed under.
func (ix *Index) Remove(ctx context.Context, itemID string) error {
	itemKey := itemTagPrefix + itemID
	tags, err := ix.rdb.SMembers(ctx, itemKey).Result()
	if err != nil {
		return err
	}

	pipe := ix.rdb.Pipeline()
	for _, tag := range tags {
		pipe.SRem(ctx, tagPrefix+tag, itemID)
	}
	pipe.Del(ctx, itemKey)
	_, err = pipe.Exec(ctx)
	return err
}

// Lookup returns the ids of items indexed under the given tag.
func (ix *Index) Lookup(ctx context.Context, tag string) ([]string, error) {
	return ix.rdb.SMembers(ctx, tagPrefix+tag).Result()
}

// TagsFor returns the tags recorded for an item.
func (ix *Index) TagsFor(ctx context.Context, itemID string) ([]string, error) {
	return ix.rdb.SMembers(ctx, itemTagPrefix+itemID).Result()
}

func toAnySlice(tags []string) []interface{} {
	out := make([]interface{}, len(tags))
	for i, t := range tags {
		out[i] = t
	}
	return out
}
