package dictionary

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed words
var builtinWords embed.FS

const (
	builtinRoot = "words"
	// DefaultSource is the builtin source used when none is configured.
	DefaultSource = "english"
)

// Catalog lists and loads the builtin sources and those in a user directory.
// User sources shadow builtin sources of the same name.
type Catalog struct {
	userDirectory string
}

// NewCatalog creates a Catalog. userDirectory may be empty to use builtin sources only.
func NewCatalog(userDirectory string) *Catalog {
	return &Catalog{userDirectory: userDirectory}
}

// Sources returns every available source, user sources first.
func (c *Catalog) Sources() ([]SourceInfo, error) {
	userSources, err := c.userSources()
	if err != nil {
		return nil, err
	}
	builtinSources, err := listSources(builtinWords, builtinRoot, true)
	if err != nil {
		return nil, fmt.Errorf("listSources(builtin) > %w", err)
	}

	sources := userSources
	for _, builtin := range builtinSources {
		shadowed := false
		for _, user := range userSources {
			if user.Name == builtin.Name {
				shadowed = true
				break
			}
		}
		if !shadowed {
			sources = append(sources, builtin)
		}
	}
	return sources, nil
}

func (c *Catalog) userSources() ([]SourceInfo, error) {
	if c.userDirectory == "" {
		return nil, nil
	}
	if _, err := os.Stat(c.userDirectory); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	sources, err := listSources(os.DirFS(c.userDirectory), ".", false)
	if err != nil {
		return nil, fmt.Errorf("listSources(%s) > %w", c.userDirectory, err)
	}
	for i := range sources {
		sources[i].Path = filepath.Join(c.userDirectory, filepath.FromSlash(sources[i].Path))
	}
	return sources, nil
}

func listSources(fsys fs.FS, root string, builtin bool) ([]SourceInfo, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("fs.ReadDir(%s) > %w", root, err)
	}

	var sources []SourceInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := path.Join(root, entry.Name())
		info, err := readSourceInfo(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("readSourceInfo(%s) > %w", dir, err)
		}
		info.Builtin = builtin
		info.Path = dir
		sources = append(sources, info)
	}
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Name < sources[j].Name
	})
	return sources, nil
}

// Find returns the source selected by name or trigger.
func (c *Catalog) Find(name string) (SourceInfo, error) {
	sources, err := c.Sources()
	if err != nil {
		return SourceInfo{}, err
	}
	for _, source := range sources {
		if source.Matches(name) {
			return source, nil
		}
	}
	return SourceInfo{}, fmt.Errorf("%w: %s", ErrSourceNotFound, name)
}

// Load finds and reads the source selected by name or trigger.
func (c *Catalog) Load(name string) (*Dictionary, error) {
	source, err := c.Find(name)
	if err != nil {
		return nil, err
	}
	if source.Builtin {
		return LoadFS(builtinWords, source.Path)
	}
	return LoadFS(os.DirFS(filepath.Dir(source.Path)), filepath.Base(source.Path))
}

// LoadBuiltin loads a source compiled into the binary.
func LoadBuiltin(name string) (*Dictionary, error) {
	return NewCatalog("").Load(name)
}

// CreateUserDictionary creates a user source named name by copying the builtin
// english files into the user directory. Files that already exist are kept.
// It returns the directory of the new source.
func (c *Catalog) CreateUserDictionary(name string) (string, error) {
	if c.userDirectory == "" {
		return "", errors.New("dictionary: no user directory configured")
	}
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("dictionary: invalid source name %q", name)
	}

	target := filepath.Join(c.userDirectory, name)
	if err := os.MkdirAll(target, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", target, err)
	}

	templateDir := path.Join(builtinRoot, DefaultSource)
	entries, err := fs.ReadDir(builtinWords, templateDir)
	if err != nil {
		return "", fmt.Errorf("fs.ReadDir(%s) > %w", templateDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == sourceConfigFile {
			continue
		}
		destination := filepath.Join(target, entry.Name())
		if _, err := os.Stat(destination); err == nil {
			continue
		}
		contents, err := fs.ReadFile(builtinWords, path.Join(templateDir, entry.Name()))
		if err != nil {
			return "", fmt.Errorf("fs.ReadFile(%s) > %w", entry.Name(), err)
		}
		if err := os.WriteFile(destination, contents, 0644); err != nil {
			return "", fmt.Errorf("os.WriteFile(%s) > %w", destination, err)
		}
	}

	configPath := filepath.Join(target, sourceConfigFile)
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		contents, err := yaml.Marshal(SourceInfo{
			Name:        name,
			Triggers:    []string{name},
			Description: fmt.Sprintf("User dictionary for %s", name),
		})
		if err != nil {
			return "", fmt.Errorf("yaml.Marshal() > %w", err)
		}
		if err := os.WriteFile(configPath, contents, 0644); err != nil {
			return "", fmt.Errorf("os.WriteFile(%s) > %w", configPath, err)
		}
	}
	return target, nil
}
