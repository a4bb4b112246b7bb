package events

// ObjectSpawnedPayload describes a freshly thrown object
type ObjectSpawnedPayload struct {
	Kind      string
	Glass     string
	Liquid    string
	X, Y      float64
	WallDepth float64
}

// ObjectBurstPayload describes a shattered object
// Glass and Liquid are the resolved paints in string form; Liquid is "none" when absent
type ObjectBurstPayload struct {
	Kind      string
	Glass     string
	Liquid    string
	X, Y      float64
	WallDepth float64
	Shards    int
	Pieces    int
}

// SplashSpawnedPayload describes a new liquid splash
type SplashSpawnedPayload struct {
	Liquid string
	X, Y   float64
	Arms   int
}

// BackgroundChangedPayload carries the applied gradient literal
type BackgroundChangedPayload struct {
	Previous string
	Current  string
	Auto     bool
}
