// Package fetch talks to the read-only data provider and assembles
// batches of composite items.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/errgroup"

	"github.com/idilsaglam/triptych/internal/logging"
	"github.com/idilsaglam/triptych/internal/model"
)

// Provider id ranges. Ids are drawn uniformly with replacement; no
// cross-consistency between a post's owner and the fetched user is
// attempted (known limitation of the data set, not of this client).
const (
	maxPostID  = 100
	maxAlbumID = 100
	maxUserID  = 10
)

// IntN returns a uniform integer in [0, n). Swappable in tests.
type IntN func(n int) int

// Client is a read-only client for the provider's /posts, /albums and
// /users endpoints.
type Client struct {
	baseURL string
	hc      *http.Client
	intn    IntN
	log     logging.Logger
}

type Option func(*Client)

// WithTimeout bounds every request. Zero keeps the baseline behavior:
// no timeout, a stuck sub-fetch stalls the whole batch.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func WithIntN(f IntN) Option {
	return func(c *Client) { c.intn = f }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		intn:    rand.IntN,
		log:     logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Post(ctx context.Context, id int) (model.Post, error) {
	var p model.Post
	return p, c.get(ctx, fmt.Sprintf("/posts/%d", id), &p)
}

func (c *Client) Album(ctx context.Context, id int) (model.Album, error) {
	var a model.Album
	return a, c.get(ctx, fmt.Sprintf("/albums/%d", id), &a)
}

func (c *Client) User(ctx context.Context, id int) (model.User, error) {
	var u model.User
	return u, c.get(ctx, fmt.Sprintf("/users/%d", id), &u)
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// BatchFetch builds quantity items concurrently and returns them in id
// order (ids are the 0-based batch indexes), regardless of completion
// order. The join is all-or-nothing: any sub-fetch error fails the
// whole batch and no partial result is returned. No retries.
func (c *Client) BatchFetch(ctx context.Context, quantity int) ([]*model.Item, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must be >= 0, got %d", quantity)
	}
	items := make([]*model.Item, quantity)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < quantity; i++ {
		g.Go(func() error {
			it, err := c.fetchItem(gctx, i)
			if err != nil {
				return err
			}
			items[i] = it
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.log.Error(ctx, "batch fetch failed", "quantity", quantity, "err", err)
		return nil, err
	}
	c.log.Debug(ctx, "batch fetched", "quantity", quantity)
	return items, nil
}

// fetchItem draws random provider ids and runs the three sub-fetches
// concurrently, composing the item once all of them land.
func (c *Client) fetchItem(ctx context.Context, id int) (*model.Item, error) {
	postID := 1 + c.intn(maxPostID)
	albumID := 1 + c.intn(maxAlbumID)
	userID := 1 + c.intn(maxUserID)

	it := &model.Item{ID: id}
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		it.Post, err = c.Post(ctx, postID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		it.Album, err = c.Album(ctx, albumID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		it.User, err = c.User(ctx, userID)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("item %d: %w", id, err)
	}
	return it, nil
}
