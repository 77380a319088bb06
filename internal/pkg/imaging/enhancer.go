package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// EnhancedImage contains the result of an enhancement pass.
type EnhancedImage struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// Config for image enhancement
type Config struct {
	UpscaleFactor float64 // scale applied to both dimensions (default 2)
	MaxWidth      int     // cap on output width (default 4000)
	MaxHeight     int     // cap on output height (default 4000)
	Sharpen       float64 // sharpen sigma (default 1.5)
	Quality       int     // JPEG quality 1-100 (default 90)
}

// DefaultConfig returns default enhancement config
func DefaultConfig() Config {
	return Config{
		UpscaleFactor: 2,
		MaxWidth:      4000,
		MaxHeight:     4000,
		Sharpen:       1.5,
		Quality:       90,
	}
}

// Enhancer upscales and sharpens images
type Enhancer struct {
	config Config
}

// NewEnhancer creates an image enhancer
func NewEnhancer(config Config) *Enhancer {
	if config.UpscaleFactor <= 1 {
		config.UpscaleFactor = 2
	}
	if config.MaxWidth <= 0 {
		config.MaxWidth = 4000
	}
	if config.MaxHeight <= 0 {
		config.MaxHeight = 4000
	}
	if config.Quality <= 0 || config.Quality > 100 {
		config.Quality = 90
	}
	return &Enhancer{config: config}
}

// Enhance upscales the image with Lanczos resampling, applies a sharpen pass
// and re-encodes it in the source format.
func (e *Enhancer) Enhance(reader io.Reader) (*EnhancedImage, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	width := int(float64(img.Bounds().Dx()) * e.config.UpscaleFactor)
	height := int(float64(img.Bounds().Dy()) * e.config.UpscaleFactor)
	if width > e.config.MaxWidth || height > e.config.MaxHeight {
		width = e.config.MaxWidth
		height = e.config.MaxHeight
	}

	enhanced := imaging.Resize(img, width, height, imaging.Lanczos)
	if e.config.Sharpen > 0 {
		enhanced = imaging.Sharpen(enhanced, e.config.Sharpen)
	}

	encoded, contentType, err := e.encode(enhanced, format)
	if err != nil {
		return nil, err
	}

	return &EnhancedImage{
		Data:        encoded,
		ContentType: contentType,
		Width:       enhanced.Bounds().Dx(),
		Height:      enhanced.Bounds().Dy(),
	}, nil
}

func (e *Enhancer) encode(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("failed to encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.config.Quality}); err != nil {
			return nil, "", fmt.Errorf("failed to encode jpeg: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	}
}
