package lookup

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/srappel/oimkit/errors"
)

// fileTable is the on-disk shape of a lookup override file:
// category name -> code -> label.
type fileTable map[string]map[string]string

// Load reads a YAML lookup file and overlays it on the compiled-in defaults.
// Entries in the file replace default entries code-by-code; categories and
// codes not mentioned in the file keep their default labels. Declaring a
// category outside the four known ones is a configuration error.
//
// The file shape is:
//
//	production:
//	  "3": "photocopy (positive)"
//	prime_meridian:
//	  "9": "local meridian"
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapFatal(errors.ErrResourceNotFound, "Table", "Load", path)
		}
		return nil, errors.Wrap(err, "Table", "Load", "read lookup file")
	}

	var ft fileTable
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, errors.WrapFatal(errors.ErrMalformedInput, "Table", "Load", "parse lookup YAML: "+err.Error())
	}

	t := Default()

	// Copy-on-write: never mutate the shared default maps.
	merged := make(map[Category]map[string]string, len(t.tables))
	for cat, table := range t.tables {
		codes := make(map[string]string, len(table))
		for code, label := range table {
			codes[code] = label
		}
		merged[cat] = codes
	}

	for name, overrides := range ft {
		cat := Category(name)
		codes, ok := merged[cat]
		if !ok {
			return nil, errors.Wrap(errors.ErrUnknownCategory, "Table", "Load", name)
		}
		for code, label := range overrides {
			codes[code] = label
		}
	}

	return &Table{tables: merged}, nil
}
