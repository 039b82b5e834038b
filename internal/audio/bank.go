package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// ErrAssetLoad reports a missing or unreadable sound asset.
var ErrAssetLoad = errors.New("audio: asset load failed")

// Asset base names looked up in the asset directory. Each one may be an
// .mp3 or a .wav file; assetExts gives the lookup order.
const (
	ShootAsset = "pew"
	HitAsset   = "hit"
	MusicAsset = "normal_music"
)

var assetExts = [...]string{".mp3", ".wav"}

// Bank holds decoded sound assets in memory, resampled to the speaker rate.
type Bank struct {
	shoot *beep.Buffer
	hit   *beep.Buffer
	music *beep.Buffer
}

// LoadBank decodes every asset in dir. Any missing or corrupt file fails the
// whole load with an error wrapping ErrAssetLoad.
func LoadBank(dir string) (*Bank, error) {
	var b Bank
	for _, a := range []struct {
		name string
		dst  **beep.Buffer
	}{
		{ShootAsset, &b.shoot},
		{HitAsset, &b.hit},
		{MusicAsset, &b.music},
	} {
		path, err := findAsset(dir, a.name)
		if err != nil {
			return nil, err
		}
		buf, err := loadSound(path)
		if err != nil {
			return nil, err
		}
		*a.dst = buf
	}
	return &b, nil
}

// findAsset returns the first existing file for base in assetExts order.
func findAsset(dir, base string) (string, error) {
	for _, ext := range assetExts {
		path := filepath.Join(dir, base+ext)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrAssetLoad, err)
		}
	}
	return "", fmt.Errorf("%w: %s: %w", ErrAssetLoad,
		filepath.Join(dir, base+"{"+strings.Join(assetExts[:], ",")+"}"), fs.ErrNotExist)
}

// loadSound decodes an .mp3 or .wav file into a buffer at the speaker rate.
func loadSound(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		streamer, format, err = mp3.Decode(f)
	} else {
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrAssetLoad, path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrAssetLoad, path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w: %s has no samples", ErrAssetLoad, path)
	}
	return buf, nil
}

// Effect returns a fresh streamer for a one-shot sound, or nil if the bank has none.
func (b *Bank) Effect(s shooter.Sound) beep.Streamer {
	var buf *beep.Buffer
	switch s {
	case shooter.SoundShoot:
		buf = b.shoot
	case shooter.SoundHit:
		buf = b.hit
	}
	if buf == nil {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// Music returns the background track looped forever.
func (b *Bank) Music() beep.Streamer {
	if b.music == nil {
		return nil
	}
	return beep.Loop(-1, b.music.Streamer(0, b.music.Len()))
}
