package project

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// ManifestName is the project manifest file looked up at the project root.
const ManifestName = "novelmind.toml"

// Manifest describes where a project keeps its assets.
type Manifest struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Assets AssetRoots `toml:"assets"`
}

// AssetRoots are directories relative to the project root, one per asset
// family.
type AssetRoots struct {
	Backgrounds string `toml:"backgrounds"`
	Sprites     string `toml:"sprites"`
	Music       string `toml:"music"`
	Sound       string `toml:"sound"`
	Voice       string `toml:"voice"`
}

// DefaultAssetRoots returns the layout used when the manifest omits the
// [assets] section.
func DefaultAssetRoots() AssetRoots {
	return AssetRoots{
		Backgrounds: "assets/backgrounds",
		Sprites:     "assets/sprites",
		Music:       "assets/audio/music",
		Sound:       "assets/audio/sound",
		Voice:       "assets/audio/voice",
	}
}

// LoadManifest parses a novelmind.toml. A missing file yields the default
// manifest rather than an error; a malformed file is reported.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	m.Assets = DefaultAssetRoots()

	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, nil
		}
		return m, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	// Partial [assets] sections fall back per field.
	defaults := DefaultAssetRoots()
	if !meta.IsDefined("assets", "backgrounds") {
		m.Assets.Backgrounds = defaults.Backgrounds
	}
	if !meta.IsDefined("assets", "sprites") {
		m.Assets.Sprites = defaults.Sprites
	}
	if !meta.IsDefined("assets", "music") {
		m.Assets.Music = defaults.Music
	}
	if !meta.IsDefined("assets", "sound") {
		m.Assets.Sound = defaults.Sound
	}
	if !meta.IsDefined("assets", "voice") {
		m.Assets.Voice = defaults.Voice
	}
	return m, nil
}

// RootFor maps a media type to its configured directory.
func (a AssetRoots) RootFor(mediaType string) string {
	switch mediaType {
	case "music":
		return a.Music
	case "sound":
		return a.Sound
	case "voice":
		return a.Voice
	default:
		return ""
	}
}
