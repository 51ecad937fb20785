// Package settings loads optional user-level styling overrides from a YAML
// file and installs them into the pretty package.
package settings

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/sodatea/berry/common"
	"github.com/sodatea/berry/pretty"
)

// StyleSetting is one user-defined progress bar style.
type StyleSetting struct {
	Name   string `yaml:"name"`
	Filled string `yaml:"filled"`
	Empty  string `yaml:"empty"`
	Size   int    `yaml:"size"`
}

// Settings is the full settings file shape.
type Settings struct {
	Progress struct {
		Style  string         `yaml:"style"`
		Styles []StyleSetting `yaml:"styles"`
	} `yaml:"progress"`
}

// FromBytes parses settings from raw YAML.
func FromBytes(raw []byte) (*Settings, error) {
	var result Settings
	if err := yaml.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LoadFile reads and parses a settings file. A missing file is not an
// error; it just yields empty settings.
func LoadFile(filename string) (*Settings, error) {
	raw, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, err
	}
	return FromBytes(raw)
}

// Apply registers the custom styles and returns the name of the selected
// style ("" when the file does not pick one).
func (it *Settings) Apply() string {
	for _, style := range it.Progress.Styles {
		pretty.RegisterBarStyle(pretty.BarStyle{
			Name:   style.Name,
			Filled: style.Filled,
			Empty:  style.Empty,
			Size:   style.Size,
		})
		common.Trace("Registered custom progress style: %s", style.Name)
	}
	return it.Progress.Style
}
