package game

// EnemyKind defines different types of enemies
type EnemyKind int

const (
	EnemyAngler1 EnemyKind = iota
	EnemyAngler2
	EnemyLuckyFish
	EnemyHiveWhale
	EnemyDrone
	EnemyKindCount // Total number of enemy kinds
)

// EnemyTypeConfig holds configuration for each enemy kind
type EnemyTypeConfig struct {
	Kind   EnemyKind
	Name   string
	Sprite SpriteID
	Width  float64
	Height float64
	Rows   int // Sprite sheet rows, one is picked at spawn
	Lives  int
	Score  int

	// Horizontal speed is -(SpeedBase + r*SpeedRange) pixels per frame
	SpeedBase  float64
	SpeedRange float64
}

const enemyMaxFrame = 37

var enemyTypeConfigs = [EnemyKindCount]EnemyTypeConfig{
	EnemyAngler1: {
		Kind:       EnemyAngler1,
		Name:       "angler1",
		Sprite:     SpriteAngler1,
		Width:      228,
		Height:     169,
		Rows:       3,
		Lives:      2,
		Score:      2,
		SpeedBase:  0.5,
		SpeedRange: 1.5,
	},
	EnemyAngler2: {
		Kind:       EnemyAngler2,
		Name:       "angler2",
		Sprite:     SpriteAngler2,
		Width:      213,
		Height:     169,
		Rows:       2,
		Lives:      3,
		Score:      3,
		SpeedBase:  0.5,
		SpeedRange: 1.5,
	},
	EnemyLuckyFish: {
		Kind:       EnemyLuckyFish,
		Name:       "lucky",
		Sprite:     SpriteLucky,
		Width:      99,
		Height:     95,
		Rows:       2,
		Lives:      3,
		Score:      15,
		SpeedBase:  0.5,
		SpeedRange: 1.5,
	},
	EnemyHiveWhale: {
		Kind:       EnemyHiveWhale,
		Name:       "hiveWhale",
		Sprite:     SpriteHiveWhale,
		Width:      400,
		Height:     227,
		Rows:       1,
		Lives:      15,
		Score:      15,
		SpeedBase:  0.2,
		SpeedRange: 1.2,
	},
	EnemyDrone: {
		Kind:       EnemyDrone,
		Name:       "drone",
		Sprite:     SpriteDrone,
		Width:      115,
		Height:     95,
		Rows:       2,
		Lives:      3,
		Score:      3,
		SpeedBase:  0.5,
		SpeedRange: 4.5,
	},
}

// GetEnemyTypeConfig returns configuration for an enemy kind
func GetEnemyTypeConfig(kind EnemyKind) EnemyTypeConfig {
	if kind < 0 || kind >= EnemyKindCount {
		return enemyTypeConfigs[EnemyAngler1]
	}
	return enemyTypeConfigs[kind]
}

// String returns the enemy kind name
func (k EnemyKind) String() string {
	return GetEnemyTypeConfig(k).Name
}

// PickEnemyKind maps a uniform value in [0, 1) onto the spawn weights.
// Drones never come out of here, only out of a hive whale.
func PickEnemyKind(r float64) EnemyKind {
	switch {
	case r < 0.3:
		return EnemyAngler1
	case r < 0.6:
		return EnemyAngler2
	case r < 0.7:
		return EnemyHiveWhale
	default:
		return EnemyLuckyFish
	}
}
