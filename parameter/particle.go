package parameter

// Shard (triangular fragment)
const (
	ShardCountMin = 28
	ShardCountMax = 40

	// ShardSpeedMin/Max are the launch speeds in surface units per frame
	ShardSpeedMin = 3.0
	ShardSpeedMax = 9.0

	// ShardSizeMin/Max bound the triangle radius
	ShardSizeMin = 3.0
	ShardSizeMax = 8.0

	// ShardGravity is the downward velocity gain per frame, stronger than pieces
	ShardGravity = 0.25

	// ShardFadeMin/Max bound the per-instance life decay per frame
	ShardFadeMin = 0.02
	ShardFadeMax = 0.04

	// ShardMinOpacity keeps live shards from turning fully transparent
	ShardMinOpacity = 0.3

	// ShardSpinMax bounds the angular velocity magnitude
	ShardSpinMax = 0.3
)

// Shatter Piece (polygon fragment)
const (
	ShatterCountMin = 12
	ShatterCountMax = 18

	ShatterSpeedMin = 2.0
	ShatterSpeedMax = 7.0

	// ShatterRadiusMin/Max bound the polygon's nominal radius
	ShatterRadiusMin = 5.0
	ShatterRadiusMax = 12.0

	// ShatterVertexMin/Max bound the vertex count
	ShatterVertexMin = 4
	ShatterVertexMax = 8

	// ShatterJitter is the relative radius jitter per vertex
	ShatterJitter = 0.4

	ShatterGravity = 0.15

	ShatterFadeMin = 0.015
	ShatterFadeMax = 0.03

	// ShatterMinOpacity keeps pieces nearly opaque until they expire
	ShatterMinOpacity = 0.7

	ShatterSpinMax = 0.2

	// FragmentAngleJitter is the angular jitter around evenly spaced directions
	FragmentAngleJitter = 0.35
)
