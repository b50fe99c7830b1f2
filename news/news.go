// Package news fetches market news headlines from RSS feeds, and today's
// macro economic events from the TradingEconomics calendar.
package news

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/etnz/hud/fetch"
	"github.com/mmcdole/gofeed"
)

// DateFormat is how news dates are displayed.
const DateFormat = "2006-01-02 15:04 BRT"

// Feed is a named RSS feed.
type Feed struct {
	Name string
	URL  string
}

// DefaultFeeds are the feeds read by default.
var DefaultFeeds = []Feed{
	{"InfoMoney", "https://www.infomoney.com.br/feed/"},
	{"Investing Brasil", "https://br.investing.com/rss/news.rss"},
	{"Bloomberg Línea", "https://www.bloomberglinea.com/feeds/latest/"},
}

// Item is a news headline.
type Item struct {
	Source    string
	Title     string
	URL       string
	Published time.Time // zero when unknown
}

// Date formats the publication date in loc, or returns "" when unknown.
func (it Item) Date(loc *time.Location) string {
	if it.Published.IsZero() {
		return ""
	}
	return it.Published.In(loc).Format(DateFormat)
}

// Reader reads news feeds.
type Reader struct {
	Client *http.Client
	Feeds  []Feed
}

// NewReader returns a Reader of the DefaultFeeds.
func NewReader(client *http.Client) *Reader {
	if client == nil {
		client = fetch.NewClient("", fetch.TTL)
	}
	return &Reader{Client: client, Feeds: DefaultFeeds}
}

// Latest returns the n most recent items of all feeds, undated items last.
//
// A feed that cannot be read is skipped: its error is returned along with the
// items of the other feeds.
func (r *Reader) Latest(ctx context.Context, n int) ([]Item, error) {
	var items []Item
	var errs error
	parser := gofeed.NewParser()
	for _, f := range r.Feeds {
		body, err := fetch.Get(ctx, r.Client, f.URL, nil)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("feed %q: %w", f.Name, err))
			continue
		}
		feed, err := parser.Parse(bytes.NewReader(body))
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("feed %q: %w", f.Name, err))
			continue
		}
		items = append(items, entries(f.Name, feed)...)
	}
	slices.SortStableFunc(items, func(a, b Item) int { return cmp.Compare(b.Published.Unix(), a.Published.Unix()) })
	if len(items) > n {
		items = items[:n]
	}
	return items, errs
}

// entries converts the items of a feed, dropping the ones without a title or a link.
func entries(source string, feed *gofeed.Feed) []Item {
	var items []Item
	for _, e := range feed.Items {
		it := Item{
			Source: source,
			Title:  strings.TrimSpace(e.Title),
			URL:    strings.TrimSpace(e.Link),
		}
		if it.Title == "" || it.URL == "" {
			continue
		}
		switch {
		case e.PublishedParsed != nil:
			it.Published = *e.PublishedParsed
		case e.UpdatedParsed != nil:
			it.Published = *e.UpdatedParsed
		}
		items = append(items, it)
	}
	return items
}
