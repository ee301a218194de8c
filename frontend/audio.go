package frontend

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/meghashyamc/spacerocks/game"
	"github.com/meghashyamc/spacerocks/logger"
	"github.com/meghashyamc/spacerocks/sound"
)

type cuePlayer interface {
	game.Audio
	prune()
	Close()
}

// speaker plays pre-rendered cues through ebiten's audio context.
type speaker struct {
	context *audio.Context
	cues    map[game.Cue][]byte
	playing []*audio.Player
	logger  logger.Logger
}

func newSpeaker(log logger.Logger) *speaker {
	return &speaker{
		context: audio.NewContext(int(sound.SampleRate)),
		cues: map[game.Cue][]byte{
			game.CueLaser: sound.PCM16(sound.Laser(sound.SampleRate)),
		},
		logger: log,
	}
}

func (s *speaker) PlayCue(cue game.Cue) {
	data, ok := s.cues[cue]
	if !ok {
		s.logger.Warn("unknown sound cue", "cue", string(cue))
		return
	}

	p := s.context.NewPlayerFromBytes(data)
	p.Play()
	s.playing = append(s.playing, p)
}

// prune closes players that have finished.
func (s *speaker) prune() {
	live := s.playing[:0]
	for _, p := range s.playing {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		s.closePlayer(p)
	}
	s.playing = live
}

func (s *speaker) Close() {
	for _, p := range s.playing {
		s.closePlayer(p)
	}
	s.playing = nil
}

func (s *speaker) closePlayer(p *audio.Player) {
	if err := p.Close(); err != nil {
		s.logger.Warn("failed to close audio player", "err", err)
	}
}

type silent struct{}

func (silent) PlayCue(game.Cue) {}
func (silent) prune()           {}
func (silent) Close()           {}
