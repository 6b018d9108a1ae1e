package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors are hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Success    string `yaml:"success"`
	Error      string `yaml:"error"`
	Muted      string `yaml:"muted"`
	Text       string `yaml:"text"`
	Border     string `yaml:"border"`
	LineNumber string `yaml:"line_number,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version == "" {
		return errors.New("theme version is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	requiredColors := map[string]string{
		"primary":   t.Colors.Primary,
		"secondary": t.Colors.Secondary,
		"success":   t.Colors.Success,
		"error":     t.Colors.Error,
		"muted":     t.Colors.Muted,
		"text":      t.Colors.Text,
		"border":    t.Colors.Border,
	}
	for name, color := range requiredColors {
		if color == "" {
			return fmt.Errorf("color '%s' is required", name)
		}
		if !isValidHexColor(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}
	if t.Colors.LineNumber != "" && !isValidHexColor(t.Colors.LineNumber) {
		return fmt.Errorf("color 'line_number' has invalid format: %s", t.Colors.LineNumber)
	}
	return nil
}

// Theme converts the file into a rendered Theme via its palette.
func (t *ThemeFile) Theme() Theme {
	p := Palette{
		Primary:    t.Colors.Primary,
		Secondary:  t.Colors.Secondary,
		Success:    t.Colors.Success,
		Error:      t.Colors.Error,
		Muted:      t.Colors.Muted,
		Text:       t.Colors.Text,
		Border:     t.Colors.Border,
		LineNumber: t.Colors.LineNumber,
	}
	if p.LineNumber == "" {
		p.LineNumber = p.Muted
	}
	return FromPalette(t.Name, p)
}

// isValidHexColor reports whether s is a #RGB or #RRGGBB color.
func isValidHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// Resolve returns the theme with the given name: "default" (or "") yields
// the built-in theme, anything else is looked up as {name}.yaml in themeDir.
func Resolve(name, themeDir string) (Theme, error) {
	if name == "" || name == "default" {
		return Default(), nil
	}

	tf, err := LoadThemeFile(filepath.Join(themeDir, name+".yaml"))
	if err != nil {
		return Theme{}, err
	}
	return tf.Theme(), nil
}

// ListThemes returns the names of theme files available in themeDir,
// sorted, with the built-in "default" always first.
func ListThemes(themeDir string) []string {
	names := []string{"default"}

	entries, err := os.ReadDir(themeDir)
	if err != nil {
		return names
	}

	var found []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") {
			found = append(found, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(found)
	return append(names, found...)
}
