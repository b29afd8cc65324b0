package langstore

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// JSONDir reads flat {locale}.json files from fsys and returns their content
// as a single batch. Each file maps translation keys to strings; the file
// name (without extension) is the locale code. Locales not in the supported
// set are dropped later, at merge time.
func JSONDir(fsys fs.FS) (Batch, error) {
	return loadDir(fsys, ".json", func(data []byte, v any) error {
		return json.Unmarshal(data, v)
	})
}

// YAMLDir reads flat {locale}.yaml or {locale}.yml files from fsys and
// returns their content as a single batch.
func YAMLDir(fsys fs.FS) (Batch, error) {
	return loadDir(fsys, ".yaml", func(data []byte, v any) error {
		return yaml.Unmarshal(data, v)
	})
}

func loadDir(fsys fs.FS, ext string, unmarshal func([]byte, any) error) (Batch, error) {
	// key -> locale -> message, regrouped into entries below.
	perKey := make(map[string]map[string]string)

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))
		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		locale := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		if locale == "" {
			return fmt.Errorf("%w: %q has no locale name", ErrInvalidFile, filePath)
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var messages map[string]string
		if err := unmarshal(data, &messages); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		for key, message := range messages {
			if perKey[key] == nil {
				perKey[key] = make(map[string]string)
			}
			perKey[key][locale] = message
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(perKey))
	for key := range perKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	batch := make(Batch, 0, len(keys))
	for _, key := range keys {
		batch = append(batch, Entry{Key: key, Locales: perKey[key]})
	}
	return batch, nil
}
