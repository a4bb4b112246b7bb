package visual

// GlassColors are the selectable glass tints, also the "random" pool
var GlassColors = []string{
	"#7EC8E3",
	"#A8E6CF",
	"#FFD3B6",
	"#FFAAA5",
	"#D4A5FF",
}

// LiquidColors are the selectable liquid colors besides "same" and "none"
var LiquidColors = []string{
	"#FF6B6B",
	"#4ECDC4",
	"#FFE66D",
	"#95E1D3",
	"#F38181",
	"#AA96DA",
	"#FCBAD3",
	"#A8D8EA",
}

// Backgrounds are the container gradients, in CSS literal form
var Backgrounds = []string{
	"linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
	"linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
	"linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
	"linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)",
	"linear-gradient(135deg, #fa709a 0%, #fee140 100%)",
	"linear-gradient(135deg, #a8edea 0%, #fed6e3 100%)",
}
