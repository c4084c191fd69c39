package zone

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Unknown is the zone of a task no rule matches. It is never reported.
const Unknown = "UNKNOWN"

// Classifier assigns a task description to a named zone.
type Classifier interface {
	Classify(description string) (zone string, ok bool)
	// Zones lists every zone the classifier can produce, in display order.
	Zones() []string
}

// Rule maps a zone to the keywords that identify it.
type Rule struct {
	Zone     string   `yaml:"zone"`
	Keywords []string `yaml:"keywords"`
}

// DefaultRules is the built-in keyword table of the site map.
func DefaultRules() []Rule {
	return []Rule{
		{Zone: "BLOCK-1C", Keywords: []string{"block 1c", "block-1c", "block1c", "blok 1c"}},
		{Zone: "BLOCK-2C", Keywords: []string{"block 2c", "block-2c", "block2c", "blok 2c"}},
		{Zone: "FACILITY AREA", Keywords: []string{"facility", "fasilitas", "kantor", "office"}},
		{Zone: "GREEN AREA", Keywords: []string{"green", "taman", "garden", "landscape"}},
		{Zone: "POND AREA", Keywords: []string{"pond", "kolam", "water", "air"}},
		{Zone: "PRIVATE AREA", Keywords: []string{"private", "pribadi", "housing", "perumahan"}},
	}
}

var ErrInvalidRules = errors.New("invalid zone rules")

// KeywordClassifier matches lowercase keywords as substrings of the
// description. Rules are tried in order and the first match wins.
type KeywordClassifier struct {
	rules []Rule
}

// NewKeywordClassifier validates rules and lowercases their keywords.
func NewKeywordClassifier(rules []Rule) (*KeywordClassifier, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no zones", ErrInvalidRules)
	}
	seen := make(map[string]struct{}, len(rules))
	out := make([]Rule, 0, len(rules))
	for i, r := range rules {
		name := strings.TrimSpace(r.Zone)
		if name == "" {
			return nil, fmt.Errorf("%w: rule %d has no zone", ErrInvalidRules, i+1)
		}
		if strings.EqualFold(name, Unknown) {
			return nil, fmt.Errorf("%w: %s is reserved", ErrInvalidRules, Unknown)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate zone %s", ErrInvalidRules, name)
		}
		seen[name] = struct{}{}

		kws := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				kws = append(kws, k)
			}
		}
		if len(kws) == 0 {
			return nil, fmt.Errorf("%w: zone %s has no keywords", ErrInvalidRules, name)
		}
		out = append(out, Rule{Zone: name, Keywords: kws})
	}
	return &KeywordClassifier{rules: out}, nil
}

// NewDefaultClassifier returns the classifier over DefaultRules.
func NewDefaultClassifier() *KeywordClassifier {
	c, err := NewKeywordClassifier(DefaultRules())
	if err != nil {
		panic(err)
	}
	return c
}

func (c *KeywordClassifier) Classify(description string) (string, bool) {
	d := strings.ToLower(description)
	if d == "" {
		return Unknown, false
	}
	for _, r := range c.rules {
		for _, k := range r.Keywords {
			if strings.Contains(d, k) {
				return r.Zone, true
			}
		}
	}
	return Unknown, false
}

func (c *KeywordClassifier) Zones() []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.Zone
	}
	return out
}

type keywordFile struct {
	Zones []Rule `yaml:"zones"`
}

// LoadKeywordFile reads rules from a YAML file of the form
//
//	zones:
//	  - zone: BLOCK-1C
//	    keywords: [block 1c, blok 1c]
func LoadKeywordFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zone file: %w", err)
	}
	return ParseKeywords(data)
}

// ParseKeywords decodes the YAML rule document of LoadKeywordFile.
func ParseKeywords(data []byte) ([]Rule, error) {
	var f keywordFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}
	if _, err := NewKeywordClassifier(f.Zones); err != nil {
		return nil, err
	}
	return f.Zones, nil
}
