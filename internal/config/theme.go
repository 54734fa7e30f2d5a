package config

// ColorScheme defines the colors used by the human-readable CLI output
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent  string `yaml:"accent"`
	Title   string `yaml:"title"`
	Subtle  string `yaml:"subtle"`
	Normal  string `yaml:"normal"`
	Success string `yaml:"success"`
	Error   string `yaml:"error"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:  "default",
		Accent:  "#874BFD",
		Title:   "#D75FD7",
		Subtle:  "#585858",
		Normal:  "#D0D0D0",
		Success: "#5FD75F",
		Error:   "#FF0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:  "monochrome",
		Accent:  "#FFFFFF",
		Title:   "#FFFFFF",
		Subtle:  "#808080",
		Normal:  "#D0D0D0",
		Success: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}

// ApplyDefaults fills in missing colors from the named preset
func (c *ColorScheme) ApplyDefaults() {
	preset := DefaultColorScheme()
	if c.Preset == "monochrome" {
		preset = MonochromeColorScheme()
	}
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.Success == "" {
		c.Success = preset.Success
	}
	if c.Error == "" {
		c.Error = preset.Error
	}
}
