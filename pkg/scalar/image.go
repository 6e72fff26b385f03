package scalar

import (
	"encoding/base64"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// ErrNoPath is returned when SVG markup carries no usable <path>.
var ErrNoPath = errors.New("scalar: svg has no path data")

// Image is a symbol or background image reference.
type Image struct {
	url  string
	path string
}

// ImageURL references an image by URL.
func ImageURL(url string) Image {
	return Image{url: strings.TrimSpace(url)}
}

// ImagePath uses raw SVG path data as a vector symbol.
func ImagePath(d string) Image {
	return Image{path: strings.TrimSpace(d)}
}

// ImageSVG extracts the first path from inline SVG markup. The markup is
// sanitized before parsing.
func ImageSVG(markup string) (Image, error) {
	cleaned := SanitizeSVG(markup)
	if cleaned == "" {
		return Image{}, ErrNoPath
	}
	d, err := firstPath(strings.NewReader(cleaned))
	if err != nil {
		return Image{}, err
	}
	return ImagePath(d), nil
}

// ImageFile loads an image from disk. SVG files become path symbols, other
// formats are inlined as base64 data URIs.
func ImageFile(name string) (Image, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Image{}, fmt.Errorf("scalar: read image: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".svg" {
		img, err := ImageSVG(string(data))
		if err != nil {
			return Image{}, fmt.Errorf("scalar: %s: %w", name, err)
		}
		return img, nil
	}

	mediaType := mime.TypeByExtension(ext)
	if mediaType == "" {
		mediaType = "image/" + strings.TrimPrefix(ext, ".")
	}
	uri := "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
	return Image{url: uri}, nil
}

// IsZero reports whether the image references nothing.
func (i Image) IsZero() bool { return i.url == "" && i.path == "" }

// String renders the reference the way ECharts expects it.
func (i Image) String() string {
	switch {
	case i.path != "":
		return "path://" + i.path
	case i.url != "":
		return "image://" + i.url
	default:
		return ""
	}
}

// DeepCopy returns i; images are immutable.
func (i Image) DeepCopy() any { return i }

// MarshalJSON encodes the image as its reference string.
func (i Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// MarshalYAML encodes the image as its reference string.
func (i Image) MarshalYAML() (any, error) {
	return i.String(), nil
}

func firstPath(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return "", ErrNoPath
		}
		if err != nil {
			return "", fmt.Errorf("scalar: parse svg: %w", err)
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "path" {
			continue
		}
		for _, attr := range el.Attr {
			if attr.Name.Local == "d" && strings.TrimSpace(attr.Value) != "" {
				return attr.Value, nil
			}
		}
	}
}

var (
	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy
)

// SanitizeSVG strips everything but basic vector shapes from markup.
func SanitizeSVG(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(svgSanitizer().Sanitize(trimmed))
}

func svgSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("svg", "g", "path", "circle", "rect", "polygon", "title")
		policy.AllowAttrs("xmlns", "viewBox", "width", "height", "fill").OnElements("svg")
		for _, el := range []string{"path", "circle", "rect", "polygon"} {
			policy.AllowAttrs("d", "cx", "cy", "r", "x", "y", "points", "fill", "transform").OnElements(el)
		}
		svgPolicy = policy
	})
	return svgPolicy
}
