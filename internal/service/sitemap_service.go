package service

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"time"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
	"github.com/antoniolaudieri/rimborsami/internal/logger"
	"github.com/antoniolaudieri/rimborsami/internal/metrics"
	"github.com/antoniolaudieri/rimborsami/internal/repository"
)

// SitemapKind selects one of the generated sitemaps.
type SitemapKind string

const (
	SitemapNews          SitemapKind = "news"
	SitemapOpportunities SitemapKind = "opportunities"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	newsNS    = "http://www.google.com/schemas/sitemap-news/0.9"

	// NewsWindow is how recent an article must be to carry a news:news block.
	NewsWindow = 48 * time.Hour
)

// URLSet is a sitemap-protocol document.
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	NewsNS  string       `xml:"xmlns:news,attr,omitempty"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapURL is one <url> entry.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq string     `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
	News       *NewsEntry `xml:"news:news,omitempty"`
}

// NewsEntry is the Google News extension block.
type NewsEntry struct {
	Publication     NewsPublication `xml:"news:publication"`
	PublicationDate string          `xml:"news:publication_date"`
	Title           string          `xml:"news:title"`
}

// NewsPublication names the publisher in a news entry.
type NewsPublication struct {
	Name     string `xml:"news:name"`
	Language string `xml:"news:language"`
}

// SitemapConfig holds the site metadata used in generated URLs.
type SitemapConfig struct {
	BaseURL            string
	SiteName           string
	Language           string
	NewsLimit          int
	OpportunitiesLimit int
}

// SitemapService builds the news and opportunity sitemaps.
type SitemapService struct {
	articles      repository.NewsArticleRepository
	opportunities repository.OpportunityRepository
	cfg           SitemapConfig
	now           func() time.Time
}

// NewSitemapService creates a new SitemapService.
func NewSitemapService(
	articles repository.NewsArticleRepository,
	opportunities repository.OpportunityRepository,
	cfg SitemapConfig,
) *SitemapService {
	return &SitemapService{
		articles:      articles,
		opportunities: opportunities,
		cfg:           cfg,
		now:           time.Now,
	}
}

// Generate renders the requested sitemap. When the query fails it logs,
// counts the failure and renders the fallback document holding only the
// section index URL.
func (s *SitemapService) Generate(ctx context.Context, kind SitemapKind) ([]byte, string) {
	timer := metrics.NewTimer()

	var (
		set *URLSet
		err error
	)
	switch kind {
	case SitemapNews:
		set, err = s.NewsURLSet(ctx)
	case SitemapOpportunities:
		set, err = s.OpportunitiesURLSet(ctx)
	default:
		err = fmt.Errorf("unknown sitemap %q", kind)
	}

	result := metrics.ResultSuccess
	if err != nil {
		logger.ErrorContext(ctx, "Sitemap generation failed, serving fallback",
			slog.String("sitemap", string(kind)),
			slog.Any("error", err),
		)
		set = s.Fallback(kind)
		result = metrics.ResultFallback
	}

	body, err := MarshalURLSet(set)
	if err != nil {
		logger.ErrorContext(ctx, "Sitemap encoding failed, serving fallback",
			slog.String("sitemap", string(kind)),
			slog.Any("error", err),
		)
		set = s.Fallback(kind)
		body, _ = MarshalURLSet(set)
		result = metrics.ResultFallback
	}

	metrics.ObserveSitemap(string(kind), result, len(set.URLs), timer.Seconds())
	return body, result
}

// NewsURLSet queries published articles and maps them to sitemap entries.
func (s *SitemapService) NewsURLSet(ctx context.Context) (*URLSet, error) {
	now := s.now().UTC()
	set := s.newSet(SitemapNews)
	set.URLs = append(set.URLs, s.indexURL(SitemapNews, now))

	err := s.articles.StreamPublished(ctx, s.cfg.NewsLimit, func(a domain.NewsArticle) error {
		entry := SitemapURL{
			Loc:        fmt.Sprintf("%s/news/%s", s.cfg.BaseURL, a.Slug),
			LastMod:    formatLastMod(a.LastModified()),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		}
		if a.PublishedAt != nil && now.Sub(*a.PublishedAt) <= NewsWindow {
			entry.ChangeFreq = "daily"
			entry.News = &NewsEntry{
				Publication: NewsPublication{
					Name:     s.cfg.SiteName,
					Language: s.cfg.Language,
				},
				PublicationDate: formatLastMod(*a.PublishedAt),
				Title:           a.Title,
			}
		}
		set.URLs = append(set.URLs, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("stream published articles: %w", err)
	}
	return set, nil
}

// OpportunitiesURLSet queries active opportunities and maps them to sitemap entries.
func (s *SitemapService) OpportunitiesURLSet(ctx context.Context) (*URLSet, error) {
	now := s.now().UTC()
	set := s.newSet(SitemapOpportunities)
	set.URLs = append(set.URLs, s.indexURL(SitemapOpportunities, now))

	err := s.opportunities.StreamActive(ctx, s.cfg.OpportunitiesLimit, func(o domain.Opportunity) error {
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        fmt.Sprintf("%s/opportunita/%s", s.cfg.BaseURL, o.ID),
			LastMod:    formatLastMod(o.UpdatedAt),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("stream active opportunities: %w", err)
	}
	return set, nil
}

// Fallback returns the minimal document holding only the section index URL.
func (s *SitemapService) Fallback(kind SitemapKind) *URLSet {
	set := s.newSet(kind)
	set.URLs = []SitemapURL{s.indexURL(kind, s.now().UTC())}
	return set
}

func (s *SitemapService) newSet(kind SitemapKind) *URLSet {
	set := &URLSet{XMLNS: sitemapNS}
	if kind == SitemapNews {
		set.NewsNS = newsNS
	}
	return set
}

func (s *SitemapService) indexURL(kind SitemapKind, now time.Time) SitemapURL {
	path := "/news"
	if kind == SitemapOpportunities {
		path = "/opportunita"
	}
	return SitemapURL{
		Loc:        s.cfg.BaseURL + path,
		LastMod:    formatLastMod(now),
		ChangeFreq: "daily",
		Priority:   "1.0",
	}
}

// MarshalURLSet encodes the document with the XML declaration.
func MarshalURLSet(set *URLSet) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func formatLastMod(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
