package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"os"

	"github.com/decker502/folio/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of application resources.
// It provides loading and caching mechanisms for fonts and images,
// ensuring that resources are loaded only once and reused by every scene.
//
// The ResourceManager implements the following key features:
//   - Font face loading and caching, with the Go fonts as the built-in fallback
//   - Image loading and caching (PNG/JPEG), embedded resources first
//   - Error handling for missing or corrupted resources
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The caches are plain Go maps and are
// only touched from the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager()
//	title := rm.DefaultFont(64, true)
//	img, err := rm.LoadImage("data/images/line3.png")
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image          // path -> Image
	fontFaceCache map[string]*text.GoTextFace       // "path:size" -> face
	sourceCache   map[string]*text.GoTextFaceSource // path -> parsed font source
}

const (
	builtinRegular = "builtin:goregular"
	builtinBold    = "builtin:gobold"
)

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[string]*text.GoTextFace),
		sourceCache:   make(map[string]*text.GoTextFaceSource),
	}
}

// readResource 读取资源：嵌入资源优先，其次本地磁盘
func readResource(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadImage loads an image from the embedded data or from disk, and caches it.
//
// Returns an error if the file does not exist or cannot be decoded.
// Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadFont loads a TrueType/OpenType font at the given size.
//
// The parsed font source is cached per path and faces are cached per (path, size),
// so requesting several sizes of one font parses the file once.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.fontSource(path)
	if err != nil {
		return nil, err
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace, nil
}

// fontSource 解析字体文件（内置 Go 字体使用保留路径）
func (rm *ResourceManager) fontSource(path string) (*text.GoTextFaceSource, error) {
	if source, ok := rm.sourceCache[path]; ok {
		return source, nil
	}

	var data []byte
	switch path {
	case builtinRegular:
		data = goregular.TTF
	case builtinBold:
		data = gobold.TTF
	default:
		var err error
		data, err = readResource(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}
	rm.sourceCache[path] = source
	return source, nil
}

// DefaultFont 返回内置 Go 字体（Go Regular / Go Bold）
// 内置字体随二进制分发，解析失败只可能是编程错误，因此直接 panic
func (rm *ResourceManager) DefaultFont(size float64, bold bool) *text.GoTextFace {
	path := builtinRegular
	if bold {
		path = builtinBold
	}
	face, err := rm.LoadFont(path, size)
	if err != nil {
		panic(fmt.Sprintf("builtin font: %v", err))
	}
	return face
}

// FontOrDefault 加载指定字体，失败时记录日志并回退到内置字体
// path 为空时直接使用内置字体
func (rm *ResourceManager) FontOrDefault(path string, size float64, bold bool) *text.GoTextFace {
	if path == "" {
		return rm.DefaultFont(size, bold)
	}
	face, err := rm.LoadFont(path, size)
	if err != nil {
		log.Printf("[ResourceManager] 字体加载失败，使用内置字体: %v", err)
		return rm.DefaultFont(size, bold)
	}
	return face
}
