package handler

const (
	// SitemapContentType is the content type of sitemap responses.
	SitemapContentType = "application/xml; charset=utf-8"
	// SitemapCacheControl lets CDNs and crawlers cache sitemaps for an hour.
	SitemapCacheControl = "public, max-age=3600"
)
