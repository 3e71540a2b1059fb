package project

import (
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions are the formats a background or sprite may use when the
// script references it by bare id.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// DirContext is a Context backed by a project directory laid out per its
// novelmind.toml manifest. Queries hit the filesystem directly; results
// are not cached, so the context always reflects the on-disk state.
type DirContext struct {
	root   string
	assets AssetRoots
}

// OpenDir creates a DirContext for the project rooted at dir, reading
// novelmind.toml when present.
func OpenDir(dir string) (*DirContext, error) {
	manifest, err := LoadManifest(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}
	return &DirContext{root: dir, assets: manifest.Assets}, nil
}

// BackgroundExists checks for <backgrounds>/<id>.<ext> for any known
// image extension, or the id verbatim when it already has an extension.
func (c *DirContext) BackgroundExists(assetID string) bool {
	return c.imageExists(c.assets.Backgrounds, assetID)
}

// AudioExists checks for the file under the channel's configured root.
func (c *DirContext) AudioExists(assetPath, mediaType string) bool {
	root := c.assets.RootFor(mediaType)
	if root == "" {
		return false
	}
	return c.fileExists(filepath.Join(root, filepath.FromSlash(assetPath)))
}

// CharacterSpriteExists checks for any sprite under <sprites>/<id>/ or a
// flat <sprites>/<id>.<ext>.
func (c *DirContext) CharacterSpriteExists(characterID string) bool {
	dir := filepath.Join(c.root, c.assets.Sprites, characterID)
	if entries, err := os.ReadDir(dir); err == nil && len(entries) > 0 {
		return true
	}
	return c.imageExists(c.assets.Sprites, characterID)
}

func (c *DirContext) imageExists(root, id string) bool {
	if strings.Contains(id, ".") {
		return c.fileExists(filepath.Join(root, filepath.FromSlash(id)))
	}
	for _, ext := range imageExtensions {
		if c.fileExists(filepath.Join(root, id+ext)) {
			return true
		}
	}
	return false
}

func (c *DirContext) fileExists(rel string) bool {
	info, err := os.Stat(filepath.Join(c.root, rel))
	return err == nil && !info.IsDir()
}
