package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"shopzone/internal/logger"

	"go.uber.org/zap"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// localBrandTokens is the legacy keyword heuristic: a free-text query that
// mentions any of these is judged answerable from the static phone index.
// Kept only as the SourceAuto compatibility policy; callers that know the
// source should set FilterSet.SourceHint instead.
var localBrandTokens = []string{
	"iphone", "apple", "samsung", "galaxy", "xiaomi", "redmi",
	"poco", "pixel", "google", "smartphone", "phone",
}

// EligibilityPolicy decides whether a filter set can be served from the
// local index. Replaceable so the keyword sniffing stays isolated.
type EligibilityPolicy func(FilterSet) bool

// LocalEligible is the default policy: the distinguished local category, or a
// free-text query touching a known local brand token.
func LocalEligible(f FilterSet) bool {
	if f.Category == LocalCategory {
		return true
	}
	if f.Query == "" {
		return false
	}
	q := strings.ToLower(f.Query)
	for _, token := range localBrandTokens {
		if strings.Contains(q, token) {
			return true
		}
	}
	return false
}

// remoteSource is what Engine needs from the goods endpoint; satisfied by
// *RemoteClient and faked in tests.
type remoteSource interface {
	Fetch(ctx context.Context, req PageRequest) (*PageResult, error)
	Product(ctx context.Context, id ProductID) (*Product, error)
}

// Engine composes filtering, sorting and pagination over the remote and
// local catalog sources.
type Engine struct {
	remote   remoteSource
	local    *LocalIndex
	eligible EligibilityPolicy
}

func NewEngine(remote *RemoteClient, local *LocalIndex) *Engine {
	return &Engine{remote: remote, local: local, eligible: LocalEligible}
}

// WithEligibilityPolicy swaps the SourceAuto policy. Mostly for tests and
// for callers that want to retire the keyword heuristic.
func (e *Engine) WithEligibilityPolicy(p EligibilityPolicy) *Engine {
	e.eligible = p
	return e
}

// ResolveSource maps a filter set to the source that will serve it. An
// explicit hint wins; SourceAuto falls back to the eligibility policy.
func (e *Engine) ResolveSource(f FilterSet) Source {
	switch f.SourceHint {
	case SourceLocal:
		return SourceLocal
	case SourceRemote:
		return SourceRemote
	}
	if e.eligible(f) {
		return SourceLocal
	}
	return SourceRemote
}

// Query serves one catalog page. It never fails: a remote error degrades to
// the local index when the filter is local-eligible, otherwise to an empty
// result with no pagination block, matching the legacy frontend contract.
func (e *Engine) Query(ctx context.Context, req PageRequest) *PageResult {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PerPage <= 0 {
		req.PerPage = defaultPerPage
	} else if req.PerPage > maxPerPage {
		req.PerPage = maxPerPage
	}
	if !req.Sort.Valid() {
		req.Sort = SortNone
	}

	log := logger.FromCtx(ctx).With(
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
		zap.String("sort", string(req.Sort)),
	)

	source := e.ResolveSource(req.Filters)
	if source == SourceLocal {
		start := time.Now()
		res := e.local.Query(req)
		log.Debug("catalog query served locally",
			zap.Int("count", len(res.Items)),
			zap.Int("total", res.Pagination.TotalCount),
			zap.Duration("duration", time.Since(start)),
		)
		return res
	}

	res, err := e.remote.Fetch(ctx, req)
	if err == nil {
		log.Debug("catalog query served remotely", zap.Int("count", len(res.Items)))
		return res
	}

	if e.eligible(req.Filters) {
		log.Warn("goods endpoint failed, serving local fallback", zap.Error(err))
		return e.local.Query(req)
	}

	log.Error("goods endpoint failed, returning empty result", zap.Error(err))
	return &PageResult{Items: []Product{}}
}

// Product resolves a single good, consulting the local index first for local
// ids and degrading a remote failure to nil, the way the legacy product page
// rendered nothing rather than an error.
func (e *Engine) Product(ctx context.Context, id ProductID) *Product {
	if p, err := e.local.Get(id); err == nil {
		return p
	}

	p, err := e.remote.Product(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to load product",
			zap.String("product_id", id.String()),
			zap.Error(err),
		)
		return nil
	}
	return p
}

// Categories derives the category list the way the legacy catalog screen
// did: scan the first hundred goods and collect distinct main categories.
// On remote failure the local categories are returned instead.
func (e *Engine) Categories(ctx context.Context) []string {
	res, err := e.remote.Fetch(ctx, PageRequest{Page: 1, PerPage: maxPerPage})
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to load categories, using local set", zap.Error(err))
		return e.local.Categories()
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range res.Items {
		if p.MainCategory == "" {
			continue
		}
		if _, ok := seen[p.MainCategory]; ok {
			continue
		}
		seen[p.MainCategory] = struct{}{}
		out = append(out, p.MainCategory)
	}

	sort.Strings(out)
	return out
}
