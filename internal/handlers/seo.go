package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"loop/internal/db"
	"loop/internal/models"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct{}

func NewSEOHandler() *SEOHandler {
	return &SEOHandler{}
}

func getSiteURL() string {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}
	return siteURL
}

func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	siteURL := getSiteURL()
	content := fmt.Sprintf(`User-agent: *
Allow: /

Disallow: /dashboard/
Disallow: /login
Disallow: /vote/

Sitemap: %s/sitemap.xml
`, siteURL)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, content)
}

// Sitemap lists the index plus every university page.
func (h *SEOHandler) Sitemap(c *gin.Context) {
	siteURL := getSiteURL()

	var unis []models.University
	db.DB.Order("id ASC").Find(&unis)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	b.WriteString(fmt.Sprintf("  <url><loc>%s/</loc></url>\n", siteURL))
	for _, uni := range unis {
		b.WriteString(fmt.Sprintf("  <url><loc>%s/uni/%d</loc><lastmod>%s</lastmod></url>\n",
			siteURL, uni.ID, uni.CreatedAt.Format(time.RFC3339)))
	}
	b.WriteString("</urlset>\n")

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, b.String())
}
