// Package project exposes project-level collaborators for the validator:
// the asset-existence context and its directory-backed implementation.
package project

// Context answers asset-existence queries during validation. The
// validator holds a non-owning reference and only reads through it;
// implementations shared across goroutines must be safe for concurrent
// read-only use.
type Context interface {
	// BackgroundExists reports whether a background asset id resolves,
	// e.g. "bg_city" or "cafeteria".
	BackgroundExists(assetID string) bool
	// AudioExists reports whether an audio file exists on the given
	// channel ("music", "sound", "voice").
	AudioExists(assetPath, mediaType string) bool
	// CharacterSpriteExists reports whether the character has sprite
	// assets.
	CharacterSpriteExists(characterID string) bool
}

// Legacy callback hooks. They predate Context; where a Context covers
// the same query it wins, and the callback is only consulted without
// one. SceneFileExistsFunc has no Context counterpart and is always
// consulted during asset validation.
type (
	SceneFileExistsFunc   func(sceneID string) bool
	SceneObjectExistsFunc func(sceneID, objectID string) bool
	AssetFileExistsFunc   func(assetPath string) bool
)

// StaticContext is a fixed-answer Context, mainly for tests and tooling.
type StaticContext struct {
	Backgrounds map[string]bool
	Audio       map[string]bool // keyed by path
	Sprites     map[string]bool
}

func (c StaticContext) BackgroundExists(assetID string) bool {
	return c.Backgrounds[assetID]
}

func (c StaticContext) AudioExists(assetPath, _ string) bool {
	return c.Audio[assetPath]
}

func (c StaticContext) CharacterSpriteExists(characterID string) bool {
	return c.Sprites[characterID]
}
