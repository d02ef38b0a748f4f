package courier

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/parcelrun/courier/colors"
	"github.com/parcelrun/courier/geom"
)

// ErrUnplayable is returned when the models a session can't do without failed to load.
var ErrUnplayable = errors.New("minimum playable scene unavailable")

// ModelSpec describes one entry of a Manifest: a glTF / GLB file, or, with no Path, a procedural box of the Size and Color given
// resting on its origin.
type ModelSpec struct {
	Path  string       `yaml:"path,omitempty"`
	Size  Vec3         `yaml:"size,omitempty"`
	Color colors.Color `yaml:"color,omitempty"`
}

// Manifest lists the Models to load by name. Relative paths are resolved against Dir.
type Manifest struct {
	Dir     string               `yaml:"dir"`
	Workers int                  `yaml:"workers"` // Maximum concurrent loads; 0 or less means no limit
	Models  map[string]ModelSpec `yaml:"models"`
}

// AssetResult records how loading one Manifest entry went.
type AssetResult struct {
	Name       string
	Path       string
	Procedural bool
	Triangles  int
	Duration   time.Duration
	Err        error
}

// OK returns if the entry loaded.
func (result AssetResult) OK() bool {
	return result.Err == nil
}

// NewProceduralModel creates the box Model described by a ModelSpec without a Path.
func NewProceduralModel(name string, spec ModelSpec) (*Model, error) {

	size := spec.Size.Vector()
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("procedural model %q needs a positive size, got %v", name, size)
	}

	color := spec.Color
	if color.IsZero() {
		color = colors.White()
	}

	mesh := NewBoxMesh(name, size, color)
	mesh.ApplyMatrix(geom.NewMatrix4Translate(0, size.Y/2, 0))

	return NewModel(mesh, name), nil

}

// LoadModels loads every Manifest entry concurrently. An entry that fails is logged, recorded in its AssetResult and left out
// of the returned library; the only error returned is the context's, if it ends before loading finishes. Results are sorted
// by name.
func LoadModels(ctx context.Context, manifest Manifest, logger *zap.Logger) (*ModelLibrary, []AssetResult, error) {

	logger = loggerOrNop(logger)

	names := make([]string, 0, len(manifest.Models))
	for name := range manifest.Models {
		names = append(names, name)
	}
	sort.Strings(names)

	lib := NewModelLibrary()
	results := make([]AssetResult, len(names))

	group, ctx := errgroup.WithContext(ctx)
	if manifest.Workers > 0 {
		group.SetLimit(manifest.Workers)
	}

	for i, name := range names {

		spec := manifest.Models[name]

		group.Go(func() error {

			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			result := AssetResult{Name: name, Procedural: spec.Path == ""}

			var model *Model
			var err error

			if result.Procedural {
				model, err = NewProceduralModel(name, spec)
			} else {
				result.Path = resolveAssetPath(manifest.Dir, spec.Path)
				model, err = LoadGLTFFile(result.Path, name)
			}

			result.Duration = time.Since(start)

			if err != nil {
				result.Err = err
				logger.Warn("model failed to load", zap.String("model", name), zap.String("path", result.Path), zap.Error(err))
			} else {
				result.Triangles = len(model.Mesh.Triangles)
				lib.Add(model)
			}

			results[i] = result

			return nil

		})

	}

	if err := group.Wait(); err != nil {
		return lib, results, err
	}

	logger.Info("models loaded", zap.Int("loaded", lib.Len()), zap.Int("requested", len(names)))

	return lib, results, nil

}

func resolveAssetPath(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// RequireModels returns ErrUnplayable, naming every missing model, unless the library holds all of the names given.
func RequireModels(lib *ModelLibrary, names ...string) error {

	missing := []string{}

	for _, name := range names {
		if !lib.Has(name) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrUnplayable, strings.Join(missing, ", "))
	}

	return nil

}
