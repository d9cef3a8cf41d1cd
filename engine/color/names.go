package color

// Named colors, matching the conventional HTML color bytes scenes expect.
var (
	Black   = CRGB{0x00, 0x00, 0x00}
	White   = CRGB{0xFF, 0xFF, 0xFF}
	Red     = CRGB{0xFF, 0x00, 0x00}
	Green   = CRGB{0x00, 0x80, 0x00}
	Lime    = CRGB{0x00, 0xFF, 0x00}
	Blue    = CRGB{0x00, 0x00, 0xFF}
	Yellow  = CRGB{0xFF, 0xFF, 0x00}
	Cyan    = CRGB{0x00, 0xFF, 0xFF}
	Magenta = CRGB{0xFF, 0x00, 0xFF}
	Orange  = CRGB{0xFF, 0xA5, 0x00}
	Purple  = CRGB{0x80, 0x00, 0x80}
	Pink    = CRGB{0xFF, 0xC0, 0xCB}
	Grey    = CRGB{0x80, 0x80, 0x80}
	Navy    = CRGB{0x00, 0x00, 0x80}
	Teal    = CRGB{0x00, 0x80, 0x80}
	Maroon  = CRGB{0x80, 0x00, 0x00}
	Olive   = CRGB{0x80, 0x80, 0x00}
	Silver  = CRGB{0xC0, 0xC0, 0xC0}
	Gold    = CRGB{0xFF, 0xD7, 0x00}
)
