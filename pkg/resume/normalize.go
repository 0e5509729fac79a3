package resume

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/artem13815/resumeflow/pkg/extraction"
)

// Accepted key spellings, in order of preference.
var (
	keysName       = []string{"Name", "name"}
	keysExperience = []string{"Experience", "experience"}
	keysEducation  = []string{"Education", "education"}
	keysSkills     = []string{"Skills", "skills"}

	keysJobTitle    = []string{"Job Title", "jobTitle"}
	keysCompany     = []string{"Company", "company"}
	keysDates       = []string{"Dates", "dates"}
	keysDegree      = []string{"Degree", "degree", "Program", "program"}
	keysInstitution = []string{"Institution", "institution"}
)

// Normalize maps a RawExtractionResult onto a Record. Missing fields become empty values;
// a list section that is not a list, or a skills field that is absent or not a string,
// is a *extraction.MalformedOutputError. Identity and CreatedAt are left for the store.
func Normalize(raw extraction.Raw) (Record, error) {
	root := raw.Root()
	if !root.IsObject() {
		return Record{}, extraction.Malformed(raw, "result is not an object")
	}

	rec := Record{Name: extraction.Field(root, keysName...).String()}

	var err error
	if rec.Experience, err = ExperienceFrom(raw, root); err != nil {
		return Record{}, err
	}
	if rec.Education, err = EducationFrom(raw, root); err != nil {
		return Record{}, err
	}

	skills := extraction.Field(root, keysSkills...)
	if !skills.Exists() {
		return Record{}, extraction.Malformed(raw, "skills field is missing")
	}
	if skills.Type != gjson.String {
		return Record{}, extraction.Malformed(raw, "skills field is not a string")
	}
	rec.Skills = SplitSkills(skills.Str)
	return rec, nil
}

// ExperienceFrom reads the experience section of obj.
func ExperienceFrom(raw extraction.Raw, obj gjson.Result) ([]Experience, error) {
	entries, err := objectList(raw, obj, "experience", keysExperience)
	if err != nil {
		return nil, err
	}
	out := make([]Experience, 0, len(entries))
	for _, e := range entries {
		out = append(out, Experience{
			JobTitle: extraction.Field(e, keysJobTitle...).String(),
			Company:  extraction.Field(e, keysCompany...).String(),
			Dates:    extraction.Field(e, keysDates...).String(),
		})
	}
	return out, nil
}

// EducationFrom reads the education section of obj; Program stands in for a missing Degree.
func EducationFrom(raw extraction.Raw, obj gjson.Result) ([]Education, error) {
	entries, err := objectList(raw, obj, "education", keysEducation)
	if err != nil {
		return nil, err
	}
	out := make([]Education, 0, len(entries))
	for _, e := range entries {
		out = append(out, Education{
			Degree:      extraction.Field(e, keysDegree...).String(),
			Institution: extraction.Field(e, keysInstitution...).String(),
			Dates:       extraction.Field(e, keysDates...).String(),
		})
	}
	return out, nil
}

// SplitSkills splits a comma-separated list, trims every token and drops empty tokens
// and exact repeats, keeping first-occurrence order.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func objectList(raw extraction.Raw, obj gjson.Result, section string, keys []string) ([]gjson.Result, error) {
	v := extraction.Field(obj, keys...)
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, extraction.Malformed(raw, "%s is not a list", section)
	}
	items := v.Array()
	for i, it := range items {
		if !it.IsObject() {
			return nil, extraction.Malformed(raw, "%s[%d] is not an object", section, i)
		}
	}
	return items, nil
}
