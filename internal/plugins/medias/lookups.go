package medias

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/keyxmakerx/catalogadmin/internal/catalog"
	"github.com/keyxmakerx/catalogadmin/internal/plugins/contenttypes"
	"github.com/keyxmakerx/catalogadmin/internal/plugins/directors"
	"github.com/keyxmakerx/catalogadmin/internal/plugins/genres"
	"github.com/keyxmakerx/catalogadmin/internal/plugins/producers"
)

// Lookups are the collections a media item references. They are the same
// Stores the other sections use, so a genre created on /generos shows up in
// the media selects without a second fetch.
type Lookups struct {
	Genres    *catalog.Store[genres.Genre]
	Directors *catalog.Store[directors.Director]
	Producers *catalog.Store[producers.Producer]
	Types     *catalog.Store[contenttypes.ContentType]
}

// Load refreshes all four collections concurrently. Each goroutine writes
// only to its own Store. Failures are reported by the Stores themselves;
// the joined error is returned for callers that want it.
func (l Lookups) Load(ctx context.Context) error {
	p := pool.New().WithErrors()
	p.Go(func() error { return l.Genres.Load(ctx) })
	p.Go(func() error { return l.Directors.Load(ctx) })
	p.Go(func() error { return l.Producers.Load(ctx) })
	p.Go(func() error { return l.Types.Load(ctx) })
	return p.Wait()
}

// selectOf builds the option and label callbacks of one reference select.
func selectOf[L catalog.Lookup](store *catalog.Store[L], placeholder string) (
	func(catalog.Ref) []catalog.Option,
	func(catalog.Ref) (string, bool),
) {
	options := func(selected catalog.Ref) []catalog.Option {
		return catalog.Options(store.Items(), placeholder, selected)
	}
	resolve := func(ref catalog.Ref) (string, bool) {
		return catalog.ResolveLabel(store.Items(), ref)
	}
	return options, resolve
}
