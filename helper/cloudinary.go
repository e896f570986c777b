package helper

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var cld *cloudinary.Cloudinary

func InitCloudinary() *cloudinary.Cloudinary {
	var err error
	cld, err = cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// ExtractPublicID pulls "<folder>/<public-id>" out of a Cloudinary delivery
// URL: https://res.cloudinary.com/<cloud>/image/upload/<folder>/<public-id>.<ext>
func ExtractPublicID(url string) string {
	parts := strings.Split(url, "/")
	n := len(parts)
	if n < 4 {
		return ""
	}
	publicID := strings.Join(parts[n-2:n], "/")
	return strings.TrimSuffix(publicID, filepath.Ext(publicID))
}

// DestroyImage removes a replaced image from Cloudinary. Best-effort: a
// missing client or a bad URL is silently skipped.
func DestroyImage(ctx context.Context, url string) {
	if cld == nil || url == "" {
		return
	}
	publicID := ExtractPublicID(url)
	if publicID == "" {
		return
	}
	if _, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		log.Printf("cloudinary destroy failed for %s: %v", publicID, err)
	}
}
