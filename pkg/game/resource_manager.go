package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// FontFamily 内置字体（Go 字体家族，随程序编译，不依赖资源文件）
type FontFamily string

const (
	// FontRegular 正文
	FontRegular FontFamily = "regular"
	// FontBold 标题
	FontBold FontFamily = "bold"
	// FontItalic 引文、附言
	FontItalic FontFamily = "italic"
)

var builtinFonts = map[FontFamily][]byte{
	FontRegular: goregular.TTF,
	FontBold:    gobold.TTF,
	FontItalic:  goitalic.TTF,
}

// ResourceManager is responsible for centralized management of card resources.
// It provides loading and caching mechanisms for images, music and font faces.
//
// The ResourceManager implements the following key features:
// - Image loading and caching (PNG/JPEG)
// - Looping music players (MP3/OGG); every call returns a fresh player owned by the caller
// - Font faces from the built-in Go font family
// - Resource ID lookup through assets/config/resources.yaml
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the game loop goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext, embedded.FS())
//	img, err := rm.LoadImageByID("IMAGE_PHOTO")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	fsys          fs.FS
	audioContext  *audio.Context                       // Global audio context for audio decoding
	imageCache    map[string]*ebiten.Image             // Cache for loaded images: path -> Image
	audioData     map[string][]byte                    // Cache for raw audio bytes: path -> data
	fontSources   map[FontFamily]*text.GoTextFaceSource // Parsed font sources
	fontFaceCache map[string]*text.GoTextFace          // Cache for font faces: family:size -> face

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context, may be nil (music loading then fails gracefully).
//   - fsys: File system that resolves "assets/..." paths.
func NewResourceManager(audioContext *audio.Context, fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:          fsys,
		audioContext:  audioContext,
		imageCache:    make(map[string]*ebiten.Image),
		audioData:     make(map[string][]byte),
		fontSources:   make(map[FontFamily]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
		resourceMap:   make(map[string]string),
	}
}

// AudioContext returns the audio context used for playback.
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be decoded.
//   - Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := rm.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadMusic creates a looping music player for the specified file.
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
//
// The raw bytes are cached, but the player is NOT: the caller owns it and must
// Close it when done. This keeps each screen's playback independent.
//
// Returns:
//   - A paused audio player wrapped in an infinite loop.
//   - An error if the file cannot be read, the format is unsupported or decoding fails.
func (rm *ResourceManager) LoadMusic(path string) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, errors.New("audio context not available")
	}

	data, err := rm.readAudio(path)
	if err != nil {
		return nil, err
	}

	reader := bytes.NewReader(data)
	sampleRate := rm.audioContext.SampleRate()

	var stream interface {
		io.ReadSeeker
		Length() int64
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	loopStream := audio.NewInfiniteLoop(stream, stream.Length())

	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	return player, nil
}

// readAudio reads the whole audio file into memory so the stream can seek
// without keeping the file open.
func (rm *ResourceManager) readAudio(path string) ([]byte, error) {
	if data, exists := rm.audioData[path]; exists {
		return data, nil
	}

	data, err := fs.ReadFile(rm.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	rm.audioData[path] = data
	return data, nil
}

// LoadFace returns a text face of the given built-in family and size.
// The face is cached with a key combining family and size.
func (rm *ResourceManager) LoadFace(family FontFamily, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", family, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, exists := rm.fontSources[family]
	if !exists {
		data, known := builtinFonts[family]
		if !known {
			return nil, fmt.Errorf("unknown font family: %s", family)
		}
		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", family, err)
		}
		rm.fontSources[family] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// LoadResourceConfig loads the resource configuration from a YAML file.
// This method should be called once during initialization, before loading any resources by ID.
//
// Example:
//
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Printf("Failed to load resource config: %v", err)
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := fs.ReadFile(rm.fsys, configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_PHOTO -> assets/images/photo.png
//	SOUND_SONG  -> assets/audio/song.mp3
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".mp3" // Default to MP3 for music
			}
			rm.resourceMap[sound.ID] = fullPath
		}
	}
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, error) {
	if rm.config == nil {
		return "", fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return "", fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return filePath, nil
}

// LoadImageByID loads an image using its resource ID from the configuration.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	filePath, err := rm.ResolvePath(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(filePath)
}

// LoadMusicByID creates a looping music player using its resource ID from the configuration.
func (rm *ResourceManager) LoadMusicByID(resourceID string) (*audio.Player, error) {
	filePath, err := rm.ResolvePath(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadMusic(filePath)
}
