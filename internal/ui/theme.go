package ui

import "image/color"

type Theme struct {
	Toolbar         color.RGBA
	ToolbarBorder   color.RGBA
	Button          color.RGBA
	ButtonHover     color.RGBA
	ButtonActive    color.RGBA
	ButtonBorder    color.RGBA
	Label           color.RGBA
	Status          color.RGBA
	ToolbarHeightDp int
	PadXDp          int
	PadYDp          int
	ButtonGapDp     int
	ButtonPadXDp    int
	MinButtonWDp    int
}

func DefaultTheme() Theme {
	return Theme{
		Toolbar:         color.RGBA{0x1E, 0x1E, 0x28, 0xFF},
		ToolbarBorder:   color.RGBA{0x34, 0x34, 0x46, 0xFF},
		Button:          color.RGBA{0x46, 0x46, 0x78, 0xFF},
		ButtonHover:     color.RGBA{0x56, 0x56, 0x92, 0xFF},
		ButtonActive:    color.RGBA{0x6A, 0x4A, 0xA8, 0xFF},
		ButtonBorder:    color.RGBA{0x2A, 0x2A, 0x4C, 0xFF},
		Label:           color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Status:          color.RGBA{0xB4, 0xB8, 0xCC, 0xFF},
		ToolbarHeightDp: 40,
		PadXDp:          10,
		PadYDp:          6,
		ButtonGapDp:     10,
		ButtonPadXDp:    12,
		MinButtonWDp:    64,
	}
}
