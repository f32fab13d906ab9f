// shared/pagination/pager.go
package pagination

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultPageCap mirrors the backing store's observed per-call document
// limit. A single Find never returns more than this many documents, so every
// full-collection read has to page.
const DefaultPageCap = 20

// Pager materializes the complete result set of a filter despite the
// store's per-call page cap. It first counts the matching documents, then
// yields ceil(total/pageCap) pages at ascending offsets. A Pager is finite
// and not restartable; create a new one to re-run the query.
//
// The page sequence is a snapshot only of the count: writers that touch the
// collection mid-iteration can shorten or shift the result. That relaxation
// is accepted, not corrected.
type Pager[T any] struct {
	coll    *mongo.Collection
	filter  bson.M
	sort    interface{}
	pageCap int64

	offsets []int64
	next    int
	started bool
}

// NewPager creates a Pager over coll restricted by filter. A nil filter
// matches everything. sort may be nil for store order.
func NewPager[T any](coll *mongo.Collection, filter bson.M, sort interface{}, pageCap int64) *Pager[T] {
	if filter == nil {
		filter = bson.M{}
	}
	if pageCap <= 0 {
		pageCap = DefaultPageCap
	}
	return &Pager[T]{
		coll:    coll,
		filter:  filter,
		sort:    sort,
		pageCap: pageCap,
	}
}

// Done reports whether all pages have been fetched. It is false before the
// first call to Next.
func (p *Pager[T]) Done() bool {
	return p.started && p.next >= len(p.offsets)
}

// Next fetches the next page. The first call issues the count query that
// fixes the page layout. Any failed call poisons the whole fetch; callers
// discard partial results rather than returning them.
func (p *Pager[T]) Next(ctx context.Context) ([]T, error) {
	if !p.started {
		total, err := p.coll.CountDocuments(ctx, p.filter)
		if err != nil {
			return nil, fmt.Errorf("failed to count documents: %w", err)
		}
		p.offsets = pageOffsets(total, p.pageCap)
		p.started = true
	}
	if p.next >= len(p.offsets) {
		return nil, nil
	}

	opts := options.Find().SetSkip(p.offsets[p.next]).SetLimit(p.pageCap)
	if p.sort != nil {
		opts.SetSort(p.sort)
	}

	cursor, err := p.coll.Find(ctx, p.filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page at offset %d: %w", p.offsets[p.next], err)
	}
	defer cursor.Close(ctx)

	var page []T
	if err := cursor.All(ctx, &page); err != nil {
		return nil, fmt.Errorf("failed to decode page at offset %d: %w", p.offsets[p.next], err)
	}
	p.next++
	return page, nil
}

// FetchAll drains a fresh Pager and returns the concatenated result in
// ascending offset order.
func FetchAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort interface{}, pageCap int64) ([]T, error) {
	pager := NewPager[T](coll, filter, sort, pageCap)
	var all []T
	for !pager.Done() {
		page, err := pager.Next(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
	}
	return all, nil
}

// FindByField fetches every document whose field value is contained in
// values. Membership filters are themselves subject to the store's cap, so
// the value list is chunked to pageCap entries per call and the per-chunk
// results concatenated. The first failed chunk aborts the operation.
func FindByField[T any](ctx context.Context, coll *mongo.Collection, field string, values []string, pageCap int64) ([]T, error) {
	if pageCap <= 0 {
		pageCap = DefaultPageCap
	}
	var all []T
	for _, chunk := range chunkStrings(values, int(pageCap)) {
		cursor, err := coll.Find(ctx, bson.M{field: bson.M{"$in": chunk}})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s membership chunk: %w", field, err)
		}
		var docs []T
		if err := cursor.All(ctx, &docs); err != nil {
			cursor.Close(ctx)
			return nil, fmt.Errorf("failed to decode %s membership chunk: %w", field, err)
		}
		all = append(all, docs...)
	}
	return all, nil
}

// FindByIDs is FindByField over the documents' _id.
func FindByIDs[T any](ctx context.Context, coll *mongo.Collection, ids []string, pageCap int64) ([]T, error) {
	return FindByField[T](ctx, coll, "_id", ids, pageCap)
}

// pageOffsets returns the skip offsets needed to cover total documents in
// pages of pageCap.
func pageOffsets(total, pageCap int64) []int64 {
	var offsets []int64
	for off := int64(0); off < total; off += pageCap {
		offsets = append(offsets, off)
	}
	return offsets
}

// chunkStrings splits values into slices of at most size entries, preserving
// order.
func chunkStrings(values []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(values); start += size {
		end := start + size
		if end > len(values) {
			end = len(values)
		}
		chunks = append(chunks, values[start:end])
	}
	return chunks
}
