package shooter

//go:generate go tool mockgen -destination=./mocks/sounds_mock.go -package=mocks . Sounds

// Sound identifies a one-shot sound effect.
type Sound int

const (
	SoundShoot Sound = iota
	SoundHit
)

func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Sounds is the audio collaborator. Calls are fire-and-forget.
type Sounds interface {
	Play(s Sound)
	StartMusic()
	StopMusic()
}

type silent struct{}

func (silent) Play(Sound)  {}
func (silent) StartMusic() {}
func (silent) StopMusic()  {}
