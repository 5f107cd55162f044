package repository

import (
	"context"

	"traveldesk-admin/pkg/rawdoc"
)

// FilterOp is the comparison applied by a query filter
type FilterOp string

const (
	OpEq     FilterOp = "=="
	OpExists FilterOp = "exists"
)

// Filter constrains a collection query to documents matching one field
type Filter struct {
	Field string
	Op    FilterOp
	Value interface{}
}

// Query describes a collection-scoped read: optional equality/existence
// filters, optional ordering and an optional limit. A zero Query matches
// the whole collection.
type Query struct {
	Filters []Filter
	OrderBy string
	Desc    bool
	Limit   int64
}

// DocumentStore is the hosted document database the admin service reads
// from and writes to. Documents come back as raw key-value mappings plus a
// distinguished id; no schema is guaranteed.
type DocumentStore interface {
	Find(ctx context.Context, collection string, q Query) ([]rawdoc.Record, error)
	Get(ctx context.Context, collection, id string) (*rawdoc.Record, error)
	Count(ctx context.Context, collection string) (int64, error)
	Insert(ctx context.Context, collection string, data rawdoc.Doc) (string, error)
	Update(ctx context.Context, collection, id string, set rawdoc.Doc) error
	Delete(ctx context.Context, collection, id string) error
}
