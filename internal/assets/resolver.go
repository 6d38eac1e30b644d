package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"srbrowser/internal/models"
)

// textureExtensions is the texture probe order for a unit mesh.
var textureExtensions = []string{".dds", ".png"}

// regionLetters enumerates the regional texture variant suffixes.
const regionLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MeshStatus classifies the outcome of a mesh probe.
type MeshStatus int

const (
	// MeshMissing means neither extension convention produced a file.
	MeshMissing MeshStatus = iota
	// MeshExact means the profile's primary extension matched.
	MeshExact
	// MeshAlternate means only the other game's extension matched; the
	// viewer can usually still open it.
	MeshAlternate
)

func (s MeshStatus) String() string {
	switch s {
	case MeshExact:
		return "MESH FOUND"
	case MeshAlternate:
		return "ALT FORMAT FOUND"
	default:
		return "MESH MISSING"
	}
}

// MeshResult describes the resolved mesh file for a picnum.
type MeshResult struct {
	Status   MeshStatus
	Path     string // full path, empty when missing
	Filename string // base name shown to the user; primary candidate when missing
}

// MeshStem builds the fixed filename stem for a picnum, zero-padded to
// three digits (picnum 7 -> "UNIT007").
func MeshStem(picnum int) string {
	return fmt.Sprintf("UNIT%03d", picnum)
}

// ResolveMesh probes the meshes directory for a unit's model file,
// trying the primary extension first and falling back to the secondary.
// It is a pure existence check; file contents are never read.
func ResolveMesh(dir string, picnum int, primaryExt, secondaryExt string) MeshResult {
	stem := MeshStem(picnum)

	primary := filepath.Join(dir, stem+primaryExt)
	if fileExists(primary) {
		return MeshResult{Status: MeshExact, Path: primary, Filename: stem + primaryExt}
	}

	secondary := filepath.Join(dir, stem+secondaryExt)
	if fileExists(secondary) {
		return MeshResult{Status: MeshAlternate, Path: secondary, Filename: stem + secondaryExt}
	}

	return MeshResult{Status: MeshMissing, Filename: stem + primaryExt}
}

// FindTextures probes the meshes directory for a picnum's textures: the
// two base names plus a variant per region letter A-Z, each extension
// checked independently. Matches come back in probe order.
func FindTextures(dir string, picnum int) ([]string, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("meshes folder not found: %s", dir)
	}

	stem := MeshStem(picnum)
	candidates := make([]string, 0, len(textureExtensions)*(1+len(regionLetters)))
	for _, ext := range textureExtensions {
		candidates = append(candidates, stem+ext)
	}
	for _, letter := range regionLetters {
		for _, ext := range textureExtensions {
			candidates = append(candidates, stem+string(letter)+ext)
		}
	}

	var found []string
	for _, name := range candidates {
		if fileExists(filepath.Join(dir, name)) {
			found = append(found, name)
		}
	}
	return found, nil
}

// SharedBy lists the other units reusing a mesh, excluding the unit the
// user is already looking at.
func SharedBy(all []models.Unit, picnum, excludeID int) []models.Unit {
	var shared []models.Unit
	for _, u := range all {
		if u.Picnum == picnum && u.ID != excludeID {
			shared = append(shared, u)
		}
	}
	return shared
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
