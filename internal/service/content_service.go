package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/antoniolaudieri/rimborsami/internal/category"
	"github.com/antoniolaudieri/rimborsami/internal/domain"
	"github.com/antoniolaudieri/rimborsami/internal/logger"
	"github.com/antoniolaudieri/rimborsami/internal/repository"
	"github.com/antoniolaudieri/rimborsami/internal/richtext"
)

const (
	// RelatedArticlesLimit caps the "read also" block under an article.
	RelatedArticlesLimit = 3
	// OpportunitiesPageSize caps the public opportunity listing.
	OpportunitiesPageSize = 100
	// ExcerptLength is the fallback excerpt size in runes.
	ExcerptLength = 160
	// authorArticlesLimit caps the article list on an author page.
	authorArticlesLimit = 50
)

// AuthorByline is the compact author block shown on cards.
type AuthorByline struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// ArticleCard is a news article as shown in listings.
type ArticleCard struct {
	Slug          string        `json:"slug"`
	Title         string        `json:"title"`
	Excerpt       string        `json:"excerpt"`
	Category      string        `json:"category"`
	CategoryMeta  category.Meta `json:"category_meta"`
	FeaturedImage *string       `json:"featured_image,omitempty"`
	ReadingTime   int           `json:"reading_time"`
	PublishedAt   *time.Time    `json:"published_at,omitempty"`
	Author        *AuthorByline `json:"author,omitempty"`
}

// ArticleDetail is the full article page.
type ArticleDetail struct {
	ArticleCard
	Content         string             `json:"content"`
	MetaTitle       string             `json:"meta_title"`
	MetaDescription string             `json:"meta_description"`
	UpdatedAt       time.Time          `json:"updated_at"`
	AuthorProfile   *domain.NewsAuthor `json:"author_profile,omitempty"`
}

// AuthorProfile is an author page with their articles.
type AuthorProfile struct {
	domain.NewsAuthor
	Articles []ArticleCard `json:"articles"`
}

// OpportunityView is an opportunity decorated for display.
type OpportunityView struct {
	domain.Opportunity
	CategoryMeta category.Meta  `json:"category_meta"`
	Urgency      domain.Urgency `json:"urgency"`
}

// ContentService shapes repository rows into view models. Read failures
// are logged and degrade to empty results.
type ContentService struct {
	articles      repository.NewsArticleRepository
	authors       repository.NewsAuthorRepository
	opportunities repository.OpportunityRepository
	now           func() time.Time
}

// NewContentService creates a new ContentService.
func NewContentService(
	articles repository.NewsArticleRepository,
	authors repository.NewsAuthorRepository,
	opportunities repository.OpportunityRepository,
) *ContentService {
	return &ContentService{
		articles:      articles,
		authors:       authors,
		opportunities: opportunities,
		now:           time.Now,
	}
}

// ListNews returns published article cards with their bylines.
func (s *ContentService) ListNews(ctx context.Context, filter domain.NewsFilter) []ArticleCard {
	if filter.Category != "" {
		filter.Category = category.Normalize(filter.Category)
	}
	articles, err := s.articles.ListPublished(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list news", slog.String("category", filter.Category), slog.Any("error", err))
		return []ArticleCard{}
	}
	return s.cards(ctx, articles)
}

// GetArticle returns the published article with the given slug.
func (s *ContentService) GetArticle(ctx context.Context, slug string) *ArticleDetail {
	article, err := s.articles.GetPublishedBySlug(ctx, slug)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load article", slog.String("slug", slug), slog.Any("error", err))
		return nil
	}
	if article == nil {
		return nil
	}

	detail := &ArticleDetail{
		ArticleCard:     toCard(*article),
		Content:         article.Content,
		MetaTitle:       article.Title,
		MetaDescription: "",
		UpdatedAt:       article.UpdatedAt,
	}
	detail.MetaDescription = detail.Excerpt
	if article.MetaTitle != nil && *article.MetaTitle != "" {
		detail.MetaTitle = *article.MetaTitle
	}
	if article.MetaDescription != nil && *article.MetaDescription != "" {
		detail.MetaDescription = *article.MetaDescription
	}

	if article.AuthorID != nil {
		author, err := s.authors.GetByID(ctx, *article.AuthorID)
		if err != nil {
			logger.WarnContext(ctx, "Failed to load article author", slog.String("slug", slug), slog.Any("error", err))
		} else if author != nil {
			detail.Author = byline(author)
			detail.AuthorProfile = author
		}
	}
	return detail
}

// RelatedArticles returns other articles from the same category.
func (s *ContentService) RelatedArticles(ctx context.Context, slug string) []ArticleCard {
	article, err := s.articles.GetPublishedBySlug(ctx, slug)
	if err != nil || article == nil {
		if err != nil {
			logger.ErrorContext(ctx, "Failed to load article", slog.String("slug", slug), slog.Any("error", err))
		}
		return []ArticleCard{}
	}

	related, err := s.articles.ListRelated(ctx, article.Category, slug, RelatedArticlesLimit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list related articles", slog.String("slug", slug), slog.Any("error", err))
		return []ArticleCard{}
	}
	return s.cards(ctx, related)
}

// ListAuthors returns all authors.
func (s *ContentService) ListAuthors(ctx context.Context) []domain.NewsAuthor {
	authors, err := s.authors.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list authors", slog.Any("error", err))
		return []domain.NewsAuthor{}
	}
	if authors == nil {
		return []domain.NewsAuthor{}
	}
	return authors
}

// GetAuthor returns the author with the given slug and their articles.
func (s *ContentService) GetAuthor(ctx context.Context, slug string) *AuthorProfile {
	author, err := s.authors.GetBySlug(ctx, slug)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load author", slog.String("slug", slug), slog.Any("error", err))
		return nil
	}
	if author == nil {
		return nil
	}

	profile := &AuthorProfile{NewsAuthor: *author, Articles: []ArticleCard{}}
	articles, err := s.articles.ListPublished(ctx, domain.NewsFilter{AuthorID: author.ID, Limit: authorArticlesLimit})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list author articles", slog.String("slug", slug), slog.Any("error", err))
		return profile
	}
	b := byline(author)
	for _, a := range articles {
		card := toCard(a)
		card.Author = b
		profile.Articles = append(profile.Articles, card)
	}
	return profile
}

// ListOpportunities returns active opportunities, soonest deadline first.
func (s *ContentService) ListOpportunities(ctx context.Context, cat string) []OpportunityView {
	if cat != "" {
		cat = category.Normalize(cat)
	}
	opportunities, err := s.opportunities.ListActive(ctx, cat, OpportunitiesPageSize)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list opportunities", slog.String("category", cat), slog.Any("error", err))
		return []OpportunityView{}
	}

	now := s.now()
	views := make([]OpportunityView, 0, len(opportunities))
	for _, o := range opportunities {
		views = append(views, OpportunityView{
			Opportunity:  o,
			CategoryMeta: category.Lookup(o.Category),
			Urgency:      domain.ClassifyOptionalDeadline(o.Deadline, now),
		})
	}
	return views
}

func (s *ContentService) cards(ctx context.Context, articles []domain.NewsArticle) []ArticleCard {
	cards := make([]ArticleCard, 0, len(articles))
	if len(articles) == 0 {
		return cards
	}

	bylines := map[string]*AuthorByline{}
	authors, err := s.authors.List(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to load bylines", slog.Any("error", err))
	}
	for i := range authors {
		bylines[authors[i].ID] = byline(&authors[i])
	}

	for _, a := range articles {
		card := toCard(a)
		if a.AuthorID != nil {
			card.Author = bylines[*a.AuthorID]
		}
		cards = append(cards, card)
	}
	return cards
}

func toCard(a domain.NewsArticle) ArticleCard {
	excerpt := a.Excerpt
	if excerpt == "" {
		excerpt = richtext.Excerpt(a.Content, ExcerptLength)
	}
	readingTime := a.ReadingTime
	if readingTime <= 0 {
		readingTime = richtext.ReadingMinutes(a.Content)
	}
	return ArticleCard{
		Slug:          a.Slug,
		Title:         a.Title,
		Excerpt:       excerpt,
		Category:      a.Category,
		CategoryMeta:  category.Lookup(a.Category),
		FeaturedImage: a.FeaturedImage,
		ReadingTime:   readingTime,
		PublishedAt:   a.PublishedAt,
	}
}

func byline(a *domain.NewsAuthor) *AuthorByline {
	return &AuthorByline{Slug: a.Slug, Name: a.Name, Role: a.Role, AvatarURL: a.AvatarURL}
}
