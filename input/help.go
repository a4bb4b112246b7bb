package input

// HelpLines is the text of the help overlay
func HelpLines() []string {
	return []string{
		"click      throw at the wall",
		"o / O      next / previous object",
		"g / G      next / previous glass color",
		"l / L      next / previous liquid",
		"b / B      next / previous background",
		"+ / -      wall depth (also up / down)",
		"m          mute sounds",
		"?          toggle this help",
		"q / Esc    quit",
	}
}
