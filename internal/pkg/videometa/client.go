// Package videometa resolves YouTube video metadata through an oEmbed
// provider and builds download link candidates.
package videometa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/omnihub/omnihub-api/internal/pkg/upstream"
)

// ErrInvalidURL means the input is not a recognizable YouTube URL.
var ErrInvalidURL = errors.New("invalid youtube url")

// DownloadLink is one quality option for a video.
type DownloadLink struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
}

// VideoInfo is the normalized metadata response.
type VideoInfo struct {
	VideoID       string         `json:"video_id"`
	Title         string         `json:"title"`
	Author        string         `json:"author"`
	Thumbnail     string         `json:"thumbnail"`
	DownloadLinks []DownloadLink `json:"download_links"`
}

// Client represents the oEmbed metadata client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new video metadata client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    upstream.NewHTTPClient(timeout),
	}
}

// ExtractVideoID pulls the video id out of youtube.com and youtu.be URLs.
func ExtractVideoID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", ErrInvalidURL
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch {
	case host == "youtube.com" || host == "m.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			return id, nil
		}
		// Shorts and embed paths carry the id as the last segment.
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) == 2 && (parts[0] == "shorts" || parts[0] == "embed") && parts[1] != "" {
			return parts[1], nil
		}
	case host == "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return id, nil
		}
	}

	return "", ErrInvalidURL
}

// Resolve fetches oEmbed metadata for a video id.
func (c *Client) Resolve(ctx context.Context, videoID string) (*VideoInfo, error) {
	watchURL := "https://www.youtube.com/watch?v=" + url.QueryEscape(videoID)
	reqURL := c.baseURL + "/embed?url=" + url.QueryEscape(watchURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("video metadata request error: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, upstream.ClassifyError(ctx, "video metadata", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstream.StatusError("video metadata", resp.StatusCode, nil)
	}

	var raw struct {
		Title        string `json:"title"`
		AuthorName   string `json:"author_name"`
		ThumbnailURL string `json:"thumbnail_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("video metadata decode error: %w", err)
	}

	thumbnail := raw.ThumbnailURL
	if thumbnail == "" {
		thumbnail = "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg"
	}

	return &VideoInfo{
		VideoID:   videoID,
		Title:     raw.Title,
		Author:    raw.AuthorName,
		Thumbnail: thumbnail,
		DownloadLinks: []DownloadLink{
			{Quality: "720p", URL: "https://ssyoutube.com/watch?v=" + videoID},
			{Quality: "360p", URL: "https://ssyoutube.com/watch?v=" + videoID},
		},
	}, nil
}
