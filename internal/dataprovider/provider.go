// Package dataprovider adapts generic list/get/create/update/delete calls
// onto the admin backend. Only listing and deletion reach the server;
// create and update are local stubs.
package dataprovider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"maidadmin/internal/domain"
	"maidadmin/internal/search"
)

// ErrNotFound is returned by GetOne for unknown ids
var ErrNotFound = errors.New("record not found")

// maxParallelDeletes bounds DeleteMany
const maxParallelDeletes = 4

// Backend is the part of the API client the provider needs
type Backend interface {
	AdminData(ctx context.Context) (domain.AdminData, error)
	Delete(ctx context.Context, resource domain.Resource, id string) error
}

// ListParams controls GetList
type ListParams struct {
	Search    string
	SortField string
	SortDesc  bool
	Page      int // 1-based; 0 means the first page
	PerPage   int // 0 returns every record
}

// ListResult is one page of records
type ListResult struct {
	Records []domain.Record
	Total   int // matches before pagination
}

// Values holds the fields of a record being created or updated
type Values map[string]string

// Ref is the minimal record returned when nothing else is known
type Ref struct {
	ID string
}

func (r Ref) RecordID() string { return r.ID }

func (r Ref) Fields() []domain.Field {
	return []domain.Field{{Name: "id", Value: r.ID}}
}

// Provider serves records for all resources
type Provider struct {
	backend Backend
	logger  *zap.Logger

	mu   sync.RWMutex
	last domain.AdminData // most recent successful fetch
}

// New creates a provider on top of backend
func New(backend Backend, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{backend: backend, logger: logger.Named("dataprovider")}
}

// Snapshot returns the data from the last successful fetch
func (p *Provider) Snapshot() domain.AdminData {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

// Refresh fetches admin data from the backend
func (p *Provider) Refresh(ctx context.Context) (domain.AdminData, error) {
	data, err := p.backend.AdminData(ctx)
	if err != nil {
		return domain.AdminData{}, err
	}
	p.mu.Lock()
	p.last = data
	p.mu.Unlock()
	return data, nil
}

func (p *Provider) records(ctx context.Context, resource domain.Resource) ([]domain.Record, error) {
	if _, err := domain.ParseResource(string(resource)); err != nil {
		return nil, err
	}
	data, err := p.Refresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", resource, err)
	}
	return data.Records(resource), nil
}

// GetList returns the records of a resource matching params.Search, sorted
// and paginated
func (p *Provider) GetList(ctx context.Context, resource domain.Resource, params ListParams) (ListResult, error) {
	all, err := p.records(ctx, resource)
	if err != nil {
		return ListResult{}, err
	}
	return Page(all, params), nil
}

// Page applies search, sort and pagination to records that are already
// loaded
func Page(all []domain.Record, params ListParams) ListResult {
	matched := search.Filter(all, params.Search)
	if matched == nil {
		matched = []domain.Record{}
	}
	if params.SortField != "" {
		sorted := make([]domain.Record, len(matched))
		copy(sorted, matched)
		SortRecords(sorted, params.SortField, params.SortDesc)
		matched = sorted
	}

	total := len(matched)
	if params.PerPage <= 0 {
		return ListResult{Records: matched, Total: total}
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * params.PerPage
	if start >= total {
		return ListResult{Records: []domain.Record{}, Total: total}
	}
	end := start + params.PerPage
	if end > total {
		end = total
	}
	return ListResult{Records: matched[start:end], Total: total}
}

// SortRecords orders records by a field, case-insensitively. Records without
// the field sort as empty strings; ties keep their order.
func SortRecords(records []domain.Record, field string, desc bool) {
	sort.SliceStable(records, func(i, j int) bool {
		a := strings.ToLower(domain.FieldValue(records[i], field))
		b := strings.ToLower(domain.FieldValue(records[j], field))
		if desc {
			return a > b
		}
		return a < b
	})
}

// GetOne returns a record by id
func (p *Provider) GetOne(ctx context.Context, resource domain.Resource, id string) (domain.Record, error) {
	all, err := p.records(ctx, resource)
	if err != nil {
		return nil, err
	}
	for _, rec := range all {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%s %s: %w", resource.Singular(), id, ErrNotFound)
}

// GetMany returns the records with the given ids in request order. Unknown
// ids are skipped.
func (p *Provider) GetMany(ctx context.Context, resource domain.Resource, ids []string) ([]domain.Record, error) {
	all, err := p.records(ctx, resource)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Record, len(all))
	for _, rec := range all {
		byID[rec.RecordID()] = rec
	}
	out := make([]domain.Record, 0, len(ids))
	for _, id := range ids {
		if rec, ok := byID[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// GetManyReference has no backend counterpart and always returns nothing
func (p *Provider) GetManyReference(_ context.Context, _ domain.Resource, _ string, _ string, _ ListParams) (ListResult, error) {
	return ListResult{Records: []domain.Record{}}, nil
}

// Create assigns a fresh id and echoes the values back. Nothing is sent to
// the server.
func (p *Provider) Create(_ context.Context, resource domain.Resource, values Values) (Values, error) {
	out := make(Values, len(values)+1)
	for k, v := range values {
		out[k] = v
	}
	out["id"] = uuid.NewString()
	p.logger.Debug("create is not persisted", zap.Stringer("resource", resource), zap.String("id", out["id"]))
	return out, nil
}

// Update echoes the values back under id
func (p *Provider) Update(_ context.Context, _ domain.Resource, id string, values Values) (Values, error) {
	out := make(Values, len(values)+1)
	for k, v := range values {
		out[k] = v
	}
	out["id"] = id
	return out, nil
}

// UpdateMany echoes the ids back
func (p *Provider) UpdateMany(_ context.Context, _ domain.Resource, ids []string, _ Values) ([]string, error) {
	return append([]string(nil), ids...), nil
}

// Delete removes a record on the backend. It returns previous when given,
// otherwise a Ref carrying the id.
func (p *Provider) Delete(ctx context.Context, resource domain.Resource, id string, previous domain.Record) (domain.Record, error) {
	if err := p.backend.Delete(ctx, resource, id); err != nil {
		return nil, err
	}
	p.forget(resource, id)
	if previous != nil {
		return previous, nil
	}
	return Ref{ID: id}, nil
}

// DeleteMany removes records concurrently and returns the ids on success.
// The first failure cancels the remaining requests.
func (p *Provider) DeleteMany(ctx context.Context, resource domain.Resource, ids []string) ([]string, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDeletes)
	for _, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := p.backend.Delete(gctx, resource, id); err != nil {
				return err
			}
			p.forget(resource, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return append([]string(nil), ids...), nil
}

func (p *Provider) forget(resource domain.Resource, id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last.Remove(resource, id)
}
