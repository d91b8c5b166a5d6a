package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yaml
var embeddedCatalogFS embed.FS

type catalogFile struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// LoadCatalog загружает встроенные переводы.
func LoadCatalog() (*catalog.Builder, error) {
	return LoadCatalogFS(embeddedCatalogFS)
}

// LoadCatalogFS загружает файлы catalog/<lang>.yaml из fsys.
// Базовый язык обязан присутствовать.
func LoadCatalogFS(fsys fs.FS) (*catalog.Builder, error) {
	const op = "locale.LoadCatalogFS"
	paths, err := fs.Glob(fsys, "catalog/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sort.Strings(paths)

	builder := catalog.NewBuilder(catalog.Fallback(Default.Tag()))
	seen := make(map[Language]bool, len(paths))

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("%s: read %s: %w", op, p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("%s: parse %s: %w", op, p, err)
		}
		lang, ok := Parse(file.Language)
		if !ok {
			return nil, fmt.Errorf("%s: %s: unsupported language %q", op, p, file.Language)
		}
		if name := strings.TrimSuffix(path.Base(p), path.Ext(p)); name != lang.String() {
			return nil, fmt.Errorf("%s: %s: language %q must match file name", op, p, file.Language)
		}
		for key, msg := range file.Messages {
			if err := builder.SetString(lang.Tag(), key, msg); err != nil {
				return nil, fmt.Errorf("%s: %s: key %q: %w", op, p, key, err)
			}
		}
		seen[lang] = true
	}

	if !seen[Default] {
		return nil, fmt.Errorf("%s: base language %s is not defined", op, Default)
	}
	return builder, nil
}
