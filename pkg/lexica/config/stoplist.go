package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexica/pkg/lexica/stoplist"
)

// Stoplist is a user stop-word file.
//
//	terms: [foo, bar]
//	categories:
//	  temporal: [fortnight]
type Stoplist struct {
	Terms      []string            `yaml:"terms"`
	Categories map[string][]string `yaml:"categories"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// BuildStoplist returns the built-in stop list extended with the configured
// file and exclude_words. Unknown file categories are treated as user
// entries.
func (c *Config) BuildStoplist() (*stoplist.Manager, error) {
	m := stoplist.Default()
	if c.StoplistPath != "" {
		sl, err := LoadStoplist(c.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		m.AddAll(stoplist.User, sl.Terms)
		names := make([]string, 0, len(sl.Categories))
		for name := range sl.Categories {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			cat := stoplist.User
			for _, known := range stoplist.Categories {
				if string(known) == name {
					cat = known
				}
			}
			m.AddAll(cat, sl.Categories[name])
		}
	}
	m.AddAll(stoplist.User, c.ExcludeWords)
	return m, nil
}
