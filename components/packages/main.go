package packages

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	ErrConfigNotFound = errors.New("lambda configuration not found")
	ErrPackageMissing = errors.New("lambda package not found")
)

// LambdaConfig describes one pre-built deployment package.
type LambdaConfig struct {
	Name        string            `json:"name" yaml:"name"`
	Runtime     string            `json:"runtime" yaml:"runtime"`
	Handler     string            `json:"handler" yaml:"handler"`
	Timeout     int               `json:"timeout" yaml:"timeout"`
	MemorySize  int               `json:"memorySize" yaml:"memorySize"`
	CodeSize    int64             `json:"codeSize" yaml:"codeSize"`
	Layers      []string          `json:"layers" yaml:"layers"`
	LayerCount  int               `json:"layerCount" yaml:"layerCount"`
	Environment map[string]string `json:"environment" yaml:"environment"`
}

// Repository answers manifest lookups. The manifest is read at most once.
type Repository struct {
	baseDir string

	once    sync.Once
	configs []LambdaConfig
	err     error
}

// NewRepository reads {baseDir}/config/lambda-packages.json on first use.
func NewRepository(baseDir string) *Repository {
	return &Repository{baseDir: baseDir}
}

// NewRepositoryFromConfigs serves a fixed manifest; zips are still looked up
// under baseDir.
func NewRepositoryFromConfigs(configs []LambdaConfig, baseDir string) *Repository {
	r := &Repository{baseDir: baseDir, configs: configs}
	r.once.Do(func() {})
	return r
}

func (r *Repository) ManifestPath() string {
	return filepath.Join(r.baseDir, "config", "lambda-packages.json")
}

func (r *Repository) All() ([]LambdaConfig, error) {
	r.once.Do(func() {
		data, err := os.ReadFile(r.ManifestPath())
		if err != nil {
			r.err = fmt.Errorf("read lambda manifest: %w", err)
			return
		}
		if err := json.Unmarshal(data, &r.configs); err != nil {
			r.err = fmt.Errorf("decode lambda manifest %s: %w", r.ManifestPath(), err)
		}
	})
	return r.configs, r.err
}

func (r *Repository) ByName(name string) (LambdaConfig, bool, error) {
	configs, err := r.All()
	if err != nil {
		return LambdaConfig{}, false, err
	}
	for _, c := range configs {
		if c.Name == name {
			return c, true, nil
		}
	}
	return LambdaConfig{}, false, nil
}

// Lookup is ByName with a not-found error.
func (r *Repository) Lookup(name string) (LambdaConfig, error) {
	c, ok, err := r.ByName(name)
	if err != nil {
		return LambdaConfig{}, err
	}
	if !ok {
		return LambdaConfig{}, fmt.Errorf("%w for: %s", ErrConfigNotFound, name)
	}
	return c, nil
}

func (r *Repository) ByPrefix(prefix string) ([]LambdaConfig, error) {
	return r.filter(func(c LambdaConfig) bool { return strings.HasPrefix(c.Name, prefix) })
}

func (r *Repository) WithLayers() ([]LambdaConfig, error) {
	return r.filter(func(c LambdaConfig) bool { return c.LayerCount > 0 })
}

func (r *Repository) WithoutLayers() ([]LambdaConfig, error) {
	return r.filter(func(c LambdaConfig) bool { return c.LayerCount == 0 })
}

func (r *Repository) filter(keep func(LambdaConfig) bool) ([]LambdaConfig, error) {
	configs, err := r.All()
	if err != nil {
		return nil, err
	}
	var out []LambdaConfig
	for _, c := range configs {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *Repository) PackageDir() string {
	return filepath.Join(r.baseDir, "dist", "lambda-packages")
}

func (r *Repository) PackagePath(name string) string {
	return filepath.Join(r.PackageDir(), name+".zip")
}

func (r *Repository) PackageExists(name string) bool {
	info, err := os.Stat(r.PackagePath(name))
	return err == nil && !info.IsDir()
}

// Missing returns, sorted, the manifest entries without a zip on disk. With
// no names given it checks the whole manifest.
func (r *Repository) Missing(names ...string) ([]string, error) {
	if len(names) == 0 {
		configs, err := r.All()
		if err != nil {
			return nil, err
		}
		for _, c := range configs {
			names = append(names, c.Name)
		}
	}

	var missing []string
	for _, name := range names {
		if !r.PackageExists(name) {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing, nil
}
