package game

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle 字体样式
type FontStyle int

const (
	// FontRegular 正文
	FontRegular FontStyle = iota
	// FontBold 标题
	FontBold
	// FontMono 终端等宽字体
	FontMono
)

// ResourceManager is responsible for centralized management of fonts and audio.
// Fonts come from the Go font family bundled with golang.org/x/image, so the
// window renders text without any external asset directory.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the game loop.
type ResourceManager struct {
	audioContext  *audio.Context // may be nil when audio is unavailable
	fontSources   map[FontStyle]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace // "style:size" -> face
	audioCache    map[string]*audio.Player    // path -> looped player
}

// NewResourceManager creates a new ResourceManager.
// audioContext may be nil; audio loading then fails with an error.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:  audioContext,
		fontSources:   make(map[FontStyle]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
		audioCache:    make(map[string]*audio.Player),
	}
}

// AudioContext 返回音频上下文（可能为 nil）
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// LoadFonts parses the bundled Go fonts.
func (rm *ResourceManager) LoadFonts() error {
	sources := map[FontStyle][]byte{
		FontRegular: goregular.TTF,
		FontBold:    gobold.TTF,
		FontMono:    gomono.TTF,
	}
	for style, data := range sources {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to create font source %d: %w", style, err)
		}
		rm.fontSources[style] = source
	}
	return nil
}

// Face returns a cached face of the given style and size.
// Returns nil if LoadFonts has not been called.
func (rm *ResourceManager) Face(style FontStyle, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%d:%.1f", style, size)
	if face, ok := rm.fontFaceCache[cacheKey]; ok {
		return face
	}

	source, ok := rm.fontSources[style]
	if !ok {
		return nil
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face
}

// musicStream is a decoded track whose length in bytes is known, as required by audio.NewInfiniteLoop.
type musicStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeMusic decodes a track and resamples it to sampleRate.
// User-supplied tracks come in any rate (44.1 kHz is the common case), so playing them
// without resampling on a 48 kHz context would shift both speed and pitch.
func decodeMusic(ext string, r io.ReadSeeker, sampleRate int) (musicStream, error) {
	var (
		stream musicStream
		err    error
	)
	switch ext = strings.ToLower(ext); ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, r)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, r)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, r)
	default:
		return nil, fmt.Errorf("unsupported audio format %q (supported: .mp3, .ogg, .wav)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s audio: %w", strings.TrimPrefix(ext, "."), err)
	}
	return stream, nil
}

// LoadAudio loads background music from the specified path and caches it.
// The stream is wrapped in an infinite loop.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav), resampled to the context rate.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context unavailable")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	defer file.Close()

	// Read the entire file into memory so the stream can seek without the file handle
	audioData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	stream, err := decodeMusic(filepath.Ext(path), reader, rm.audioContext.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	loopStream := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// NewLoopPlayer creates a looping player over raw 16-bit stereo PCM.
func (rm *ResourceManager) NewLoopPlayer(pcm []byte) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context unavailable")
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("empty PCM buffer")
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := rm.audioContext.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create loop player: %w", err)
	}
	return player, nil
}
