package constant

// RGB channel bounds
const (
	ChannelMax = 255
)

// HSL component bounds
const (
	HueMax        = 360
	SaturationMax = 100
	LightnessMax  = 100
)
