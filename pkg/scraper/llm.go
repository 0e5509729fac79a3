package scraper

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/artem13815/resumeflow/pkg/extraction"
	"github.com/artem13815/resumeflow/pkg/resume"
)

// ProfilePrompt turns the visible text of a rendered profile page into the resume shape plus headline and location.
var ProfilePrompt = extraction.Prompt{
	Name:   "linkedin_profile",
	System: "You extract structured data from the visible text of a LinkedIn profile page. Reply with a single JSON object and nothing else.",
	Instruction: `Extract these fields from the profile text:
- Name
- Headline
- Location
- About
- Experience: list of objects with "Job Title", "Company", "Dates"
- Education: list of objects with "Degree", "Institution", "Dates"
- Skills: one comma-separated string
Use an empty string or empty list when a field is not present. Ignore navigation, ads and "People also viewed".`,
}

func (s *Scraper) extractLLM(ctx context.Context, html string) (Profile, error) {
	text, err := visibleText(html)
	if err != nil {
		return Profile{}, err
	}
	raw, err := s.fields.ExtractWith(ctx, ProfilePrompt, text)
	if err != nil {
		return Profile{}, err
	}
	return profileFromRaw(raw)
}

// profileFromRaw reuses the resume section readers. Skills are optional here and may come as a list.
func profileFromRaw(raw extraction.Raw) (Profile, error) {
	root := raw.Root()
	if !root.IsObject() {
		return Profile{}, extraction.Malformed(raw, "result is not an object")
	}
	p := Profile{
		Name:     extraction.Field(root, "Name", "name").String(),
		Headline: extraction.Field(root, "Headline", "headline").String(),
		Location: extraction.Field(root, "Location", "location").String(),
		About:    extraction.Field(root, "About", "about").String(),
	}
	var err error
	if p.Experience, err = resume.ExperienceFrom(raw, root); err != nil {
		return Profile{}, err
	}
	if p.Education, err = resume.EducationFrom(raw, root); err != nil {
		return Profile{}, err
	}

	skills := extraction.Field(root, "Skills", "skills")
	switch {
	case skills.Type == gjson.String:
		p.Skills = resume.SplitSkills(skills.Str)
	case skills.IsArray():
		var parts []string
		for _, v := range skills.Array() {
			if v.Type == gjson.String {
				parts = append(parts, v.Str)
			}
		}
		p.Skills = resume.SplitSkills(strings.Join(parts, ","))
	default:
		p.Skills = []string{}
	}
	return p, nil
}
