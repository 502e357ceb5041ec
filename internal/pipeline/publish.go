package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spritemill/spritemill/internal/atlas"
	"github.com/spritemill/spritemill/pkg/raster"
)

// SidecarPath derives the metadata path from the atlas path by swapping
// the extension for .json.
func SidecarPath(atlasPath string) string {
	return strings.TrimSuffix(atlasPath, filepath.Ext(atlasPath)) + ".json"
}

// publish writes the atlas and sidecar to temporary names in the
// destination directory and renames them into place only after both encode
// cleanly. An aborted or failed run leaves nothing at the final paths.
func publish(atlasPath string, sheet *raster.Buffer, meta atlas.Metadata, result *Result) error {
	if dir := filepath.Dir(atlasPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	sidecarPath := SidecarPath(atlasPath)

	tmpAtlas := tempName(atlasPath)
	if err := sheet.WriteFile(tmpAtlas); err != nil {
		os.Remove(tmpAtlas)
		return err
	}

	metaBytes, err := meta.Encode()
	if err != nil {
		os.Remove(tmpAtlas)
		return err
	}
	tmpSidecar := tempName(sidecarPath)
	if err := os.WriteFile(tmpSidecar, metaBytes, 0644); err != nil {
		os.Remove(tmpAtlas)
		return fmt.Errorf("writing %s: %w", tmpSidecar, err)
	}

	if err := os.Rename(tmpAtlas, atlasPath); err != nil {
		os.Remove(tmpAtlas)
		os.Remove(tmpSidecar)
		return fmt.Errorf("publishing atlas: %w", err)
	}
	if err := os.Rename(tmpSidecar, sidecarPath); err != nil {
		os.Remove(tmpSidecar)
		return fmt.Errorf("publishing metadata: %w", err)
	}

	result.AtlasPath = atlasPath
	result.MetadataPath = sidecarPath
	return nil
}

// tempName builds a same-directory temporary name that keeps the final
// extension, so codec selection by extension still applies.
func tempName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, ".tmp-"+uuid.NewString()[:8]+"-"+base)
}
