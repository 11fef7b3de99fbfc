package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"nexusforge/internal/model"

	"go.uber.org/zap"
)

// ErrImageNotFound возвращается для операций над неизвестным изображением
var ErrImageNotFound = errors.New("image not found")

// ProductImageScraper собирает изображения товара со страницы магазина
type ProductImageScraper interface {
	ScrapeProductImages(ctx context.Context, link string) ([]string, error)
}

// AssetService управляет библиотекой изображений конструктора сайтов
type AssetService struct {
	mu      sync.Mutex
	store   Store
	scraper ProductImageScraper
	syslog  *SysLogService
	logger  *zap.Logger
	images  []model.CustomImage
}

// NewAssetService создает сервис библиотеки изображений
func NewAssetService(store Store, scraper ProductImageScraper, syslog *SysLogService, logger *zap.Logger) *AssetService {
	s := &AssetService{
		store:   store,
		scraper: scraper,
		syslog:  syslog,
		logger:  logger,
	}
	store.Load(model.CollectionCustomImages, &s.images)
	return s
}

// AddImage добавляет изображение в библиотеку по прямой ссылке
func (s *AssetService) AddImage(url string) (model.CustomImage, error) {
	if url == "" {
		return model.CustomImage{}, fmt.Errorf("image url cannot be empty")
	}

	image := model.CustomImage{
		ID:        model.NewID("img"),
		URL:       url,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.images = append([]model.CustomImage{image}, s.images...)
	s.store.Save(model.CollectionCustomImages, s.images)

	return image, nil
}

// ImportFromProduct собирает изображения со страницы товара и
// добавляет их в библиотеку. Уже добавленные адреса пропускаются.
func (s *AssetService) ImportFromProduct(ctx context.Context, link string) ([]model.CustomImage, error) {
	urls, err := s.scraper.ScrapeProductImages(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape product images: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	known := make(map[string]bool, len(s.images))
	for _, image := range s.images {
		known[image.URL] = true
	}

	var added []model.CustomImage
	for _, url := range urls {
		if known[url] {
			continue
		}
		known[url] = true

		image := model.CustomImage{
			ID:        model.NewID("img"),
			URL:       url,
			SourceURL: link,
			CreatedAt: time.Now(),
		}
		added = append(added, image)
		s.images = append([]model.CustomImage{image}, s.images...)
	}

	if len(added) > 0 {
		s.store.Save(model.CollectionCustomImages, s.images)
		s.syslog.Log(model.LogInfo, fmt.Sprintf("Imported %d product images from %s", len(added), link))
	}

	return added, nil
}

// RemoveImage удаляет изображение из библиотеки
func (s *AssetService) RemoveImage(imageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.images {
		if s.images[i].ID != imageID {
			continue
		}

		s.images = append(s.images[:i], s.images[i+1:]...)
		s.store.Save(model.CollectionCustomImages, s.images)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrImageNotFound, imageID)
}

// Images возвращает копию библиотеки, от новых к старым
func (s *AssetService) Images() []model.CustomImage {
	s.mu.Lock()
	defer s.mu.Unlock()

	images := make([]model.CustomImage, len(s.images))
	copy(images, s.images)
	return images
}
