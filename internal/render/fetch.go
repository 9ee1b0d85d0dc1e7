package render

import (
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"log"
	"net/http"
)

// fetchImage downloads and decodes an image. Fetching is best effort: any
// failure is logged and reported as nil so rendering can proceed without the
// layer. The client's timeout bounds the request.
func fetchImage(ctx context.Context, client *http.Client, url string) image.Image {
	if url == "" {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("⚠️ Image fetch failed: %s (%v)", url, err)
		return nil
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("⚠️ Image fetch failed: %s (%v)", url, err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ Image fetch failed: %s (status %d)", url, resp.StatusCode)
		return nil
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		log.Printf("⚠️ Image decode failed: %s (%v)", url, err)
		return nil
	}
	return img
}
