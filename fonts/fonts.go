// Package fonts keeps the list of fonts known to the generation service.
// The list is fetched lazily, at most one fetch is in flight at any time and
// all concurrent callers share its result. Cache lives until Invalidate or
// successful Upload.
package fonts

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var ErrInvalidFont = errors.New("only TrueType and OpenType fonts are supported")

// Font describes single font available to templates.
type Font struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Reference   string `json:"reference"`
}

// Source is where fonts come from, normally remote generation service.
type Source interface {
	Fonts(ctx context.Context) ([]Font, error)
	UploadFont(ctx context.Context, filename string, data []byte) (Font, error)
}

// Catalog memoizes font list of a Source. Safe for concurrent use.
type Catalog struct {
	src   Source
	log   *zap.Logger
	group singleflight.Group

	mu     sync.Mutex
	cached []Font
	gen    uint64
}

func NewCatalog(src Source, log *zap.Logger) *Catalog {
	return &Catalog{src: src, log: log.Named("fonts")}
}

// Get returns font list, fetching it if necessary. Cancelling ctx releases
// the caller but does not abort the fetch other callers may be waiting on.
func (c *Catalog) Get(ctx context.Context) ([]Font, error) {
	c.mu.Lock()
	if c.cached != nil {
		list := slices.Clone(c.cached)
		c.mu.Unlock()
		return list, nil
	}
	gen := c.gen
	c.mu.Unlock()

	// fetch started before Invalidate must not satisfy callers arriving after it
	key := strconv.FormatUint(gen, 10)
	ch := c.group.DoChan(key, func() (any, error) {
		c.log.Debug("Fetching font list")
		list, err := c.src.Fonts(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		sortFonts(list)
		if list == nil {
			list = []Font{}
		}

		c.mu.Lock()
		if c.gen == gen {
			c.cached = list
		}
		c.mu.Unlock()
		c.log.Debug("Font list fetched", zap.Int("count", len(list)))
		return list, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("unable to fetch fonts: %w", res.Err)
		}
		return slices.Clone(res.Val.([]Font)), nil
	}
}

// Invalidate drops cached list, next Get fetches it again.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.cached = nil
}

// Upload validates and sends font file to the source. Cache is invalidated
// only when upload succeeds.
func (c *Catalog) Upload(ctx context.Context, filename string, data []byte) (Font, error) {
	if err := Validate(filename, data); err != nil {
		return Font{}, err
	}
	f, err := c.src.UploadFont(ctx, filename, data)
	if err != nil {
		return Font{}, fmt.Errorf("unable to upload font %q: %w", filename, err)
	}
	c.Invalidate()
	c.log.Info("Font uploaded", zap.String("file", filename), zap.String("name", f.Name))
	return f, nil
}

// Find returns font with given id or name.
func (c *Catalog) Find(ctx context.Context, name string) (Font, bool, error) {
	list, err := c.Get(ctx)
	if err != nil {
		return Font{}, false, err
	}
	for _, f := range list {
		if f.ID == name || f.Name == name {
			return f, true, nil
		}
	}
	return Font{}, false, nil
}

// Validate checks that file looks like a font the service would accept:
// by extension and by content.
func Validate(filename string, data []byte) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ttf", ".otf":
	default:
		return fmt.Errorf("%s: %w", filename, ErrInvalidFont)
	}
	if !filetype.Is(data, "ttf") && !filetype.Is(data, "otf") {
		return fmt.Errorf("%s: content is not a font: %w", filename, ErrInvalidFont)
	}
	return nil
}

func sortFonts(list []Font) {
	slices.SortStableFunc(list, func(a, b Font) int {
		ka, kb := a.DisplayName, b.DisplayName
		if ka == "" {
			ka = a.Name
		}
		if kb == "" {
			kb = b.Name
		}
		switch {
		case natural.Less(ka, kb):
			return -1
		case natural.Less(kb, ka):
			return 1
		}
		return 0
	})
}
