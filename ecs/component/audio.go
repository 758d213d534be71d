package component

// SoundCue names a fire-and-forget audio event.
type SoundCue string

const (
	CueEnemyShoot     SoundCue = "enemy_shoot"
	CueShotWindup     SoundCue = "shot_windup"
	CueCollideObelisk SoundCue = "collide_obelisk"
	CuePlayerKilled   SoundCue = "player_killed"
)

// Cues lists every cue a sound board is expected to provide.
var Cues = []SoundCue{CueEnemyShoot, CueShotWindup, CueCollideObelisk, CuePlayerKilled}
