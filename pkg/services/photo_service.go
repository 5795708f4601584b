package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// ErrTrailNotFound is returned when no trail has the requested id
var ErrTrailNotFound = errors.New("trail not found")

// imageExtensions are the object suffixes treated as trail photos
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// PhotoLister lists the photo URLs stored for a trail
type PhotoLister interface {
	ListPhotos(ctx context.Context, trailID int) ([]string, error)
}

// BucketPhotos reads trail photos from a Cloud Storage bucket laid out as trails/<id>/<file>
type BucketPhotos struct {
	BucketName string
	URLTTL     time.Duration
}

// photoPrefix returns the object prefix holding a trail's photos
func photoPrefix(trailID int) string {
	return fmt.Sprintf("trails/%d/", trailID)
}

// isPhoto reports whether an object directly under prefix is an image
func isPhoto(name, prefix string) bool {
	rest := strings.TrimPrefix(name, prefix)
	if rest == name || rest == "" || strings.Contains(rest, "/") {
		return false
	}
	ext := strings.ToLower(path.Ext(rest))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// sortPhotos orders object names naturally so photo2 comes before photo10
func sortPhotos(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
}

// ListPhotos returns signed URLs for the trail's photos in natural name order
func (b *BucketPhotos) ListPhotos(ctx context.Context, trailID int) ([]string, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	bucket := client.Bucket(b.BucketName)
	prefix := photoPrefix(trailID)

	var names []string
	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		obj, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating objects: %w", err)
		}
		if isPhoto(obj.Name, prefix) {
			names = append(names, obj.Name)
		}
	}
	sortPhotos(names)

	ttl := b.URLTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	urls := make([]string, 0, len(names))
	for _, name := range names {
		signedURL, err := bucket.SignedURL(name, &storage.SignedURLOptions{
			Expires: time.Now().Add(ttl),
			Method:  "GET",
		})
		if err != nil {
			return nil, fmt.Errorf("creating signed URL for %s: %w", name, err)
		}
		urls = append(urls, signedURL)
	}
	return urls, nil
}
