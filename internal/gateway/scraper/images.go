// Package scraper содержит выгрузку изображений товаров.
//
// Шлюз обслуживает галерею конструктора сайтов: по ссылке на страницу
// товара собирает адреса изображений из типовых контейнеров галереи.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"nexusforge/internal/config"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// Типовые контейнеры галереи товара
const gallerySelector = ".product-small-picture a, .gallery-picture a, .product-essential .product-img-box .product-image a"

// supportedHost — единственный поддерживаемый магазин
const supportedHost = "bbdbuy.com"

var (
	// ErrUnsupportedLink возвращается для ссылок на другие магазины
	ErrUnsupportedLink = errors.New("unsupported product link")
	// ErrNoImages возвращается, когда на странице не нашлось изображений
	ErrNoImages = errors.New("no product images found")
)

// Миниатюры носят суффикс размера; полный размер — без суффикса
var sizeSuffixRe = regexp.MustCompile(`_\d+x\d+\.(jpg|jpeg|png|webp)$`)

// ImageScraper представляет скрейпер изображений товаров
type ImageScraper struct {
	config     config.ScraperConfig
	logger     *zap.Logger
	httpClient *http.Client
}

// NewImageScraper создает новый скрейпер изображений
func NewImageScraper(cfg config.ScraperConfig, logger *zap.Logger) *ImageScraper {
	return &ImageScraper{
		config:     cfg,
		logger:     logger,
		httpClient: NewHTTPClient(DefaultHTTPClientConfig(), logger),
	}
}

// ScrapeProductImages собирает адреса изображений со страницы товара.
// Дубликаты отбрасываются, количество ограничено MaxImages.
func (s *ImageScraper) ScrapeProductImages(ctx context.Context, link string) ([]string, error) {
	if !strings.Contains(link, supportedHost) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLink, link)
	}

	var images []string
	seen := make(map[string]struct{})

	collector := s.newCollector()
	collector.OnHTML(gallerySelector, func(e *colly.HTMLElement) {
		if len(images) >= s.config.MaxImages {
			return
		}

		src := anchorImageURL(e.DOM)
		if src == "" {
			return
		}

		cleaned := sizeSuffixRe.ReplaceAllString(src, ".$1")
		if !strings.HasPrefix(cleaned, "http:") && !strings.HasPrefix(cleaned, "https:") {
			cleaned = e.Request.AbsoluteURL(cleaned)
		}

		if _, ok := seen[cleaned]; ok {
			return
		}
		seen[cleaned] = struct{}{}
		images = append(images, cleaned)
	})

	err := WithRetry(ctx, s.logger, s.config.RetryConfig, func() error {
		return collector.Visit(link)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product page: %w", err)
	}

	if len(images) == 0 {
		return nil, ErrNoImages
	}

	s.logger.Info("Scraped product images",
		zap.String("link", link),
		zap.Int("count", len(images)))

	return images, nil
}

// newCollector создает коллектор Colly с настроенными middleware
func (s *ImageScraper) newCollector() *colly.Collector {
	collector := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		colly.MaxDepth(1),
	)

	collector.WithTransport(s.httpClient.Transport)
	collector.SetRequestTimeout(s.config.RequestTimeout)

	_ = collector.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       s.config.RequestDelay,
	})

	collector.OnRequest(func(r *colly.Request) {
		s.logger.Debug("Making request", zap.String("url", r.URL.String()))
	})

	collector.OnResponse(func(r *colly.Response) {
		s.logger.Debug("Received response",
			zap.String("url", r.Request.URL.String()),
			zap.Int("status", r.StatusCode),
			zap.Int("size", len(r.Body)))
	})

	return collector
}

// anchorImageURL выбирает адрес изображения для ссылки галереи:
// сначала href самой ссылки, затем data-src и src вложенного img
func anchorImageURL(anchor *goquery.Selection) string {
	if href, ok := anchor.Attr("href"); ok && href != "" {
		return href
	}

	img := anchor.Find("img").First()
	if img.Length() == 0 {
		return ""
	}
	if dataSrc, ok := img.Attr("data-src"); ok && dataSrc != "" {
		return dataSrc
	}
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	return ""
}
