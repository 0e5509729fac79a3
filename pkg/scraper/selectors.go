package scraper

import (
	_ "embed"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"go.yaml.in/yaml/v4"

	"github.com/artem13815/resumeflow/pkg/resume"
)

//go:embed selectors.yaml
var defaultSelectors []byte

// Selectors is the declarative, versioned table the dom mode runs over rendered markup.
type Selectors struct {
	Version    string `yaml:"version"`
	LandingURL string `yaml:"landingUrl"`
	Ready      string `yaml:"ready"`

	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	Location string `yaml:"location"`
	About    string `yaml:"about"`

	Experience ListSelector `yaml:"experience"`
	Education  ListSelector `yaml:"education"`
	Skills     ListSelector `yaml:"skills"`
}

// ListSelector picks repeated items and, inside each, the named fields.
type ListSelector struct {
	Item   string            `yaml:"item"`
	Fields map[string]string `yaml:"fields"`
}

// LoadSelectors reads the table from path, or the built-in one when path is empty.
func LoadSelectors(path string) (Selectors, error) {
	data := defaultSelectors
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return Selectors{}, errors.Wrap(err, "read selector table")
		}
	}
	return ParseSelectors(data)
}

func ParseSelectors(data []byte) (Selectors, error) {
	var s Selectors
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Selectors{}, errors.Wrap(err, "parse selector table")
	}
	if s.Version == "" {
		return Selectors{}, errors.New("selector table has no version")
	}
	if s.Ready == "" {
		return Selectors{}, errors.New("selector table has no ready selector")
	}
	return s, nil
}

// extractDOM applies the table to html. A selector that matches nothing yields an empty field.
func (s Selectors) extractDOM(html string) (Profile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Profile{}, errors.Wrap(err, "parse rendered html")
	}
	p := Profile{
		Name:       textOf(doc.Selection, s.Name),
		Headline:   textOf(doc.Selection, s.Headline),
		Location:   textOf(doc.Selection, s.Location),
		About:      textOf(doc.Selection, s.About),
		Experience: []resume.Experience{},
		Education:  []resume.Education{},
		Skills:     []string{},
	}
	s.Experience.each(doc, func(f map[string]string) {
		p.Experience = append(p.Experience, resume.Experience{
			JobTitle: f["jobTitle"],
			Company:  f["company"],
			Dates:    f["dates"],
		})
	})
	s.Education.each(doc, func(f map[string]string) {
		p.Education = append(p.Education, resume.Education{
			Degree:      f["degree"],
			Institution: f["institution"],
			Dates:       f["dates"],
		})
	})
	seen := map[string]struct{}{}
	s.Skills.each(doc, func(f map[string]string) {
		name := f["name"]
		if _, dup := seen[name]; name == "" || dup {
			return
		}
		seen[name] = struct{}{}
		p.Skills = append(p.Skills, name)
	})
	return p, nil
}

// each calls fn for every item with at least one non-empty field.
func (l ListSelector) each(doc *goquery.Document, fn func(map[string]string)) {
	if l.Item == "" {
		return
	}
	doc.Find(l.Item).Each(func(_ int, item *goquery.Selection) {
		fields := make(map[string]string, len(l.Fields))
		empty := true
		for name, sel := range l.Fields {
			v := textOf(item, sel)
			if v != "" {
				empty = false
			}
			fields[name] = v
		}
		if !empty {
			fn(fields)
		}
	})
}

func textOf(root *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return collapse(root.Find(selector).First().Text())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// visibleText strips markup down to the readable text of the page.
func visibleText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", errors.Wrap(err, "parse rendered html")
	}
	doc.Find("script, style, noscript, svg, template").Remove()
	return collapse(doc.Find("body").Text()), nil
}
