package imagehost

import (
	"strings"
	"testing"

	"github.com/janvolk/lostfound/internal/config"
)

func TestObjectKey(t *testing.T) {
	key := objectKey("photo.JPG")
	if !strings.HasPrefix(key, "items/") {
		t.Errorf("expected items/ prefix, got %q", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("expected lowercased extension, got %q", key)
	}

	// Keys must be unique per upload.
	if objectKey("photo.jpg") == objectKey("photo.jpg") {
		t.Error("expected unique keys for identical filenames")
	}

	if got := objectKey("noext"); strings.Contains(got[len(keyPrefix):], ".") {
		t.Errorf("expected no extension for bare filename, got %q", got)
	}
}

func TestPublicURLPathStyle(t *testing.T) {
	cfg := config.S3Config{
		Endpoint: "http://localhost:9000/",
		Bucket:   "lostfound-images",
	}
	got := publicURL(cfg, "items/abc.jpg")
	want := "http://localhost:9000/lostfound-images/items/abc.jpg"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPublicURLVirtualHosted(t *testing.T) {
	cfg := config.S3Config{
		Bucket: "lostfound-images",
		Region: "eu-central-1",
	}
	got := publicURL(cfg, "items/abc.jpg")
	want := "https://lostfound-images.s3.eu-central-1.amazonaws.com/items/abc.jpg"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
