package domain

import "time"

// NewsArticle is a published piece from the news section.
type NewsArticle struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"-"`
	Category        string     `json:"category"`
	FeaturedImage   *string    `json:"featured_image,omitempty"`
	ReadingTime     int        `json:"reading_time"`
	MetaTitle       *string    `json:"meta_title,omitempty"`
	MetaDescription *string    `json:"meta_description,omitempty"`
	AuthorID        *string    `json:"author_id,omitempty"`
	IsPublished     bool       `json:"is_published"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// LastModified returns the most recent of the update and publish timestamps.
func (a *NewsArticle) LastModified() time.Time {
	if a.PublishedAt != nil && a.PublishedAt.After(a.UpdatedAt) {
		return *a.PublishedAt
	}
	return a.UpdatedAt
}

// NewsAuthor is a byline owner. ArticleCount is derived from published articles.
type NewsAuthor struct {
	ID           string            `json:"id"`
	Slug         string            `json:"slug"`
	Name         string            `json:"name"`
	Role         string            `json:"role"`
	Bio          string            `json:"bio"`
	AvatarURL    *string           `json:"avatar_url,omitempty"`
	SocialLinks  map[string]string `json:"social_links,omitempty"`
	Expertise    []string          `json:"expertise,omitempty"`
	ArticleCount int               `json:"article_count"`
}

// NewsFilter narrows article listings.
type NewsFilter struct {
	Category string
	AuthorID string
	Limit    int
	Offset   int
}

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// Normalize clamps paging values into the accepted range.
func (f NewsFilter) Normalize() NewsFilter {
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
