package sound

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/encounter/ecs/component"
	"github.com/rs/zerolog"
)

// Board plays pre-rendered cues through an ebiten audio context.
type Board struct {
	players map[component.SoundCue]*audio.Player
	log     zerolog.Logger
}

func NewBoard(ctx *audio.Context, volume float64, log zerolog.Logger) *Board {
	b := &Board{players: make(map[component.SoundCue]*audio.Player), log: log}
	if ctx == nil {
		return b
	}
	for _, cue := range component.Cues {
		pcm := Render(Synthesize(cue, volume))
		if len(pcm) == 0 {
			continue
		}
		b.players[cue] = ctx.NewPlayerFromBytes(pcm)
	}
	return b
}

// Play restarts the cue. Unknown cues are ignored.
func (b *Board) Play(cue component.SoundCue) {
	if b == nil {
		return
	}
	b.log.Trace().Str("cue", string(cue)).Msg("sound")
	player, ok := b.players[cue]
	if !ok || player == nil {
		return
	}
	if err := player.Rewind(); err != nil {
		b.log.Warn().Err(err).Str("cue", string(cue)).Msg("sound: rewind")
		return
	}
	player.Play()
}

// Log is a cue sink for hosts without audio output.
type Log struct {
	Logger zerolog.Logger
	Counts map[component.SoundCue]int
}

func NewLog(log zerolog.Logger) *Log {
	return &Log{Logger: log, Counts: make(map[component.SoundCue]int)}
}

func (l *Log) Play(cue component.SoundCue) {
	l.Counts[cue]++
	l.Logger.Debug().Str("cue", string(cue)).Msg("sound")
}
