package videometa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ"},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/abc123XYZ", "abc123XYZ"},
		{"https://www.youtube.com/embed/abc123XYZ", "abc123XYZ"},
		{"  https://youtu.be/dQw4w9WgXcQ  ", "dQw4w9WgXcQ"},
	}

	for _, c := range cases {
		got, err := ExtractVideoID(c.in)
		if err != nil {
			t.Errorf("ExtractVideoID(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ExtractVideoID(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractVideoIDRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"not a url",
		"https://vimeo.com/12345",
		"https://www.youtube.com/",
		"https://youtu.be/",
	}

	for _, in := range bad {
		if _, err := ExtractVideoID(in); err != ErrInvalidURL {
			t.Errorf("ExtractVideoID(%q) = %v, want ErrInvalidURL", in, err)
		}
	}
}

func TestResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embed" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"Test Video","author_name":"Test Channel","thumbnail_url":"https://example.com/thumb.jpg"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	info, err := client.Resolve(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if info.Title != "Test Video" {
		t.Fatalf("got title %q", info.Title)
	}
	if info.Author != "Test Channel" {
		t.Fatalf("got author %q", info.Author)
	}
	if info.VideoID != "dQw4w9WgXcQ" {
		t.Fatalf("got video id %q", info.VideoID)
	}
	if len(info.DownloadLinks) == 0 {
		t.Fatal("expected download link candidates")
	}
}

func TestResolveFallbackThumbnail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"No Thumb"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	info, err := client.Resolve(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if info.Thumbnail != "https://img.youtube.com/vi/abc123/maxresdefault.jpg" {
		t.Fatalf("expected fallback thumbnail, got %q", info.Thumbnail)
	}
}
