package readability

import (
	"os"

	"github.com/fwojciec/readweb"
	"gopkg.in/yaml.v3"
)

// LoadOptions reads extractor tunables from a YAML file. Fields absent
// from the file keep their reference defaults, so a file can override a
// single threshold without restating the rest.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, readweb.Errorf(readweb.EINVALID, "reading options file: %s", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, readweb.Errorf(readweb.EINVALID, "parsing options file: %s", err)
	}

	return opts, nil
}
