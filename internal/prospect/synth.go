package prospect

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/omnilinks/outreach-cli/internal/model"
)

// Synthetic prospect generation for dry runs and template testing. No
// network calls; output is shaped like real prospect data but every
// company and contact is invented.

var (
	companySuffixes = []string{"Labs", "Studios", "Works", "Interactive", "Dynamics", "Omni", "Forge", "Factory", "Hub"}

	tldsByRegion = map[string][]string{
		"US": {".com", ".io"},
		"EU": {".eu", ".com"},
		"JP": {".jp", ".com"},
		"KR": {".kr", ".com"},
		"SG": {".sg", ".com"},
	}

	regionTags = []struct{ keyword, tag string }{
		{"us", "US"}, {"eu", "EU"},
		{"japan", "JP"}, {"jp", "JP"},
		{"korea", "KR"}, {"kr", "KR"},
		{"singapore", "SG"}, {"sg", "SG"},
	}

	synthFirstNames = []string{
		"John", "Jane", "Mike", "Sarah", "David", "Lisa", "Alex", "Emma", "Chris", "Maria",
		"Michael", "Jennifer", "Robert", "Jessica", "William", "Ashley", "James", "Emily",
		"Christopher", "Amanda", "Daniel", "Stephanie", "Matthew", "Melissa", "Anthony", "Nicole",
	}
	synthLastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	}
	synthTitles = []string{
		"CEO", "CTO", "VP Marketing", "Head of Sales", "Founder", "Product Manager", "Marketing Director",
		"Sales Director", "VP Engineering", "Chief Technology Officer", "VP Business Development",
		"Head of Product", "VP Operations", "Chief Marketing Officer", "VP Strategy",
	}

	keywordRE = regexp.MustCompile(`[a-zA-Z0-9\-/+]+`)
	slugRE    = regexp.MustCompile(`[^a-z0-9]+`)

	titleCaser = cases.Title(language.English)
)

// ICPFilters holds the keywords and regions extracted from a free-text
// ideal customer profile description.
type ICPFilters struct {
	IndustryKeywords []string
	Regions          []string
}

// ParseICP extracts up to four industry keywords and three region tags
// from the description. Defaults cover the common case of a vague ICP.
func ParseICP(text string) ICPFilters {
	lower := strings.ToLower(text)

	var keywords []string
	for _, k := range keywordRE.FindAllString(lower, -1) {
		if len(k) > 2 {
			keywords = append(keywords, k)
		}
		if len(keywords) == 4 {
			break
		}
	}
	if len(keywords) == 0 {
		keywords = []string{"tech", "entertainment"}
	}

	var regions []string
	for _, rt := range regionTags {
		if strings.Contains(lower, rt.keyword) && !containsString(regions, rt.tag) {
			regions = append(regions, rt.tag)
		}
		if len(regions) == 3 {
			break
		}
	}
	if len(regions) == 0 {
		regions = []string{"US", "EU", "JP"}
	}

	return ICPFilters{IndustryKeywords: keywords, Regions: regions}
}

// Synthesize generates n invented prospect companies with plausible
// contact details. Output is deterministic for a given seed.
func Synthesize(filters ICPFilters, n int, seed int64) []model.Company {
	rng := rand.New(rand.NewSource(seed))
	industry := industryLabel(filters.IndustryKeywords)

	out := make([]model.Company, 0, n)
	for i := 0; i < n; i++ {
		base := titleCaser.String(pick(rng, filters.IndustryKeywords))
		suffix := pick(rng, companySuffixes)
		region := pick(rng, filters.Regions)

		tlds, ok := tldsByRegion[region]
		if !ok {
			tlds = []string{".com"}
		}
		domain := slug(base+"-"+suffix) + pick(rng, tlds)

		first := pick(rng, synthFirstNames)
		last := pick(rng, synthLastNames)

		out = append(out, model.Company{
			Name:         base + " " + suffix,
			Website:      "https://" + domain,
			Country:      region,
			Industry:     industry,
			ContactName:  first + " " + last,
			ContactTitle: pick(rng, synthTitles),
			ContactEmail: contactEmail(rng, first, last, domain),
			Description:  fmt.Sprintf("%s company in %s", industry, region),
		})
	}
	return out
}

func industryLabel(keywords []string) string {
	var parts []string
	seen := map[string]bool{}
	for _, k := range keywords {
		label := titleCaser.String(k)
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, label)
		if len(parts) == 2 {
			break
		}
	}
	return strings.Join(parts, " / ")
}

func contactEmail(rng *rand.Rand, first, last, domain string) string {
	first = strings.ToLower(first)
	last = strings.ToLower(last)
	patterns := []string{
		first + "." + last,
		first + last,
		first[:1] + last,
		first + last[:1],
		first,
		last,
	}
	return pick(rng, patterns) + "@" + domain
}

func slug(s string) string {
	return strings.Trim(slugRE.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
