package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeScraper struct {
	urls []string
	err  error
}

func (f *fakeScraper) ScrapeProductImages(ctx context.Context, link string) ([]string, error) {
	return f.urls, f.err
}

func newTestAssetService(store Store, scraper ProductImageScraper) *AssetService {
	return NewAssetService(store, scraper, testSysLog(store), zap.NewNop())
}

func TestAssetService_AddImage(t *testing.T) {
	store := newFakeStore()
	svc := newTestAssetService(store, &fakeScraper{})

	image, err := svc.AddImage("https://cdn.example.com/hoodie.jpg")
	require.NoError(t, err)
	assert.NotEmpty(t, image.ID)
	assert.Empty(t, image.SourceURL)

	_, err = svc.AddImage("")
	assert.Error(t, err)

	require.Len(t, svc.Images(), 1)
}

func TestAssetService_ImportFromProduct(t *testing.T) {
	store := newFakeStore()
	scraper := &fakeScraper{urls: []string{
		"https://cdn.bbdbuy.com/a.jpg",
		"https://cdn.bbdbuy.com/b.jpg",
	}}
	svc := newTestAssetService(store, scraper)

	added, err := svc.ImportFromProduct(context.Background(), "https://bbdbuy.com/item/1")
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.Equal(t, "https://bbdbuy.com/item/1", added[0].SourceURL)

	// Повторный импорт не дублирует адреса
	again, err := svc.ImportFromProduct(context.Background(), "https://bbdbuy.com/item/1")
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.Len(t, svc.Images(), 2)
}

func TestAssetService_ImportFromProductScraperError(t *testing.T) {
	store := newFakeStore()
	svc := newTestAssetService(store, &fakeScraper{err: errors.New("timeout")})

	_, err := svc.ImportFromProduct(context.Background(), "https://bbdbuy.com/item/1")
	assert.Error(t, err)
	assert.Empty(t, svc.Images())
}

func TestAssetService_NewestFirstAndRestart(t *testing.T) {
	store := newFakeStore()
	svc := newTestAssetService(store, &fakeScraper{})

	_, err := svc.AddImage("https://cdn.example.com/first.jpg")
	require.NoError(t, err)
	second, err := svc.AddImage("https://cdn.example.com/second.jpg")
	require.NoError(t, err)

	images := svc.Images()
	require.Len(t, images, 2)
	assert.Equal(t, second.ID, images[0].ID)

	restarted := newTestAssetService(store, &fakeScraper{})
	loaded := restarted.Images()
	require.Len(t, loaded, 2)
	assert.False(t, loaded[0].CreatedAt.IsZero())
}

func TestAssetService_RemoveImage(t *testing.T) {
	store := newFakeStore()
	svc := newTestAssetService(store, &fakeScraper{})

	image, err := svc.AddImage("https://cdn.example.com/gone.jpg")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveImage(image.ID))
	assert.Empty(t, svc.Images())

	assert.ErrorIs(t, svc.RemoveImage(image.ID), ErrImageNotFound)
}
