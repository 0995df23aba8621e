package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDirectory reads content definitions from the conventional subdirectories
// of root (items/, spells/, abilities/, monsters/, talents/), parsing each
// *.yaml file into one definition. Missing subdirectories are skipped; a file
// that fails to parse or validate aborts the load.
//
// Precondition: root must be a readable directory.
// Postcondition: Returns a populated Catalog or a descriptive error.
func LoadDirectory(root string) (*Catalog, error) {
	c := New()

	loaders := []struct {
		subdir   string
		register func(data []byte) error
	}{
		{"items", func(data []byte) error {
			var def Item
			if err := decodeStrict(data, &def); err != nil {
				return err
			}
			return c.RegisterItem(&def)
		}},
		{"spells", func(data []byte) error {
			var def Spell
			if err := decodeStrict(data, &def); err != nil {
				return err
			}
			return c.RegisterSpell(&def)
		}},
		{"abilities", func(data []byte) error {
			var def Ability
			if err := decodeStrict(data, &def); err != nil {
				return err
			}
			return c.RegisterAbility(&def)
		}},
		{"monsters", func(data []byte) error {
			var def Monster
			if err := decodeStrict(data, &def); err != nil {
				return err
			}
			return c.RegisterMonster(&def)
		}},
		{"talents", func(data []byte) error {
			var def Talent
			if err := decodeStrict(data, &def); err != nil {
				return err
			}
			return c.RegisterTalent(&def)
		}},
	}

	for _, l := range loaders {
		dir := filepath.Join(root, l.subdir)
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: reading %q: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
				continue
			}
			path := filepath.Join(dir, e.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("catalog: reading %q: %w", path, err)
			}
			if err := l.register(data); err != nil {
				return nil, fmt.Errorf("catalog: %q: %w", path, err)
			}
		}
	}
	return c, nil
}

// decodeStrict parses YAML rejecting unknown fields, so content typos surface
// at load time rather than as silently-zero stats.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}
