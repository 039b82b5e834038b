package audio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// writeWAV renders a short laser sweep at sr into path.
func writeWAV(t *testing.T, path string, sr beep.SampleRate, d time.Duration) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(sr.N(d), NewLaserGenerator(sr)), format); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func writeAssets(t *testing.T, dir string) {
	t.Helper()
	writeWAV(t, filepath.Join(dir, ShootAsset+".wav"), sampleRate, 100*time.Millisecond)
	writeWAV(t, filepath.Join(dir, HitAsset+".wav"), 22050, 200*time.Millisecond)
	writeWAV(t, filepath.Join(dir, MusicAsset+".wav"), sampleRate, 300*time.Millisecond)
}

func TestLoadBank(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir)

	bank, err := LoadBank(dir)
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}

	frames, _ := drain(t, bank.Effect(shooter.SoundShoot), sampleRate.N(time.Second))
	if want := sampleRate.N(100 * time.Millisecond); frames != want {
		t.Errorf("shoot effect = %d frames, expected %d", frames, want)
	}

	// 22.05kHz input is resampled to the speaker rate.
	frames, _ = drain(t, bank.Effect(shooter.SoundHit), sampleRate.N(time.Second))
	want := sampleRate.N(200 * time.Millisecond)
	if diff := frames - want; diff < -64 || diff > 64 {
		t.Errorf("resampled hit effect = %d frames, expected about %d", frames, want)
	}

	// Music loops past the length of the file.
	frames, _ = drain(t, bank.Music(), sampleRate.N(time.Second))
	if frames < sampleRate.N(time.Second) {
		t.Errorf("music stopped after %d frames, expected it to loop", frames)
	}
}

func TestLoadBankMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, ShootAsset+".wav"), sampleRate, 50*time.Millisecond)

	_, err := LoadBank(dir)
	if !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("expected ErrAssetLoad, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should keep the underlying cause: %v", err)
	}
}

func TestLoadBankCorruptFile(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir)
	if err := os.WriteFile(filepath.Join(dir, HitAsset+".wav"), []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadBank(dir); !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("expected ErrAssetLoad, got %v", err)
	}
}

func TestLoadBankPrefersMP3(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir)

	// An .mp3 next to the .wav wins the lookup, so a broken one must fail the load.
	mp3Path := filepath.Join(dir, ShootAsset+".mp3")
	if err := os.WriteFile(mp3Path, []byte("not an mp3 file"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := findAsset(dir, ShootAsset)
	if err != nil || got != mp3Path {
		t.Fatalf("findAsset = %q, %v; want %q", got, err, mp3Path)
	}

	_, err = LoadBank(dir)
	if !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("expected ErrAssetLoad, got %v", err)
	}
	if !strings.Contains(err.Error(), "mp3") {
		t.Errorf("error should come from the mp3 decoder: %v", err)
	}
}

func TestFindAssetFallsBackToWAV(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir)

	got, err := findAsset(dir, HitAsset)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != HitAsset+".wav" {
		t.Errorf("findAsset = %q, want the .wav file", got)
	}
}

func TestSoundManagerPrefersBank(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir)
	bank, err := LoadBank(dir)
	if err != nil {
		t.Fatal(err)
	}

	sm := NewSoundManager(testAudioConfig(), bank)
	frames, _ := drain(t, sm.effect(shooter.SoundShoot), sampleRate.N(time.Second))
	if want := sampleRate.N(100 * time.Millisecond); frames != want {
		t.Errorf("effect came from %d frames, expected the %d frame asset", frames, want)
	}
}
