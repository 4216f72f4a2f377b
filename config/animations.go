package config

// AnimationDef describes one clip: how many frames it has and where its
// frame images live under Paths.Images.
type AnimationDef struct {
	Frames int
	Dir    string
}

// CharacterAnimations maps a sprite key to its clips.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:    {Frames: 4, Dir: "player/idle"},
		Running: {Frames: 4, Dir: "player/run"},
		Jump:    {Frames: 2, Dir: "player/jump"},
		Fall:    {Frames: 2, Dir: "player/fall"},
	},
	"bullet": {
		Bullet: {Frames: 2, Dir: "bullet"},
	},
}

// ImageFiles names the single-image sprites under Paths.Images.
var ImageFiles = struct {
	PlayerMask string
	Spike      string
	GameOver   string
	BloodDir   string
	TilesDir   string // one sub-directory of variants per tile type
}{
	PlayerMask: "player/maskPlayer.png",
	Spike:      "sprSpike.png",
	GameOver:   "sprGAMEOVER.png",
	BloodDir:   "blood",
	TilesDir:   "tiles",
}
