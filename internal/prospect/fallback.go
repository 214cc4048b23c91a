package prospect

import (
	"strings"

	"go.uber.org/zap"

	"github.com/omnilinks/outreach-cli/internal/model"
)

// countryKeywords maps ICP substrings to a country bucket, checked in order.
var countryKeywords = []struct {
	code  string
	terms []string
}{
	{"US", []string{"us", "usa", "united states", "america"}},
	{"JP", []string{"jp", "japan", "japanese"}},
	{"UK", []string{"uk", "britain", "british"}},
	{"CA", []string{"ca", "canada", "canadian"}},
}

// industryKeywords maps ICP substrings to an industry bucket. AI outranks
// gaming outranks VR/AR outranks general tech, since broad terms like
// "technology" appear in many AI-focused descriptions too.
var industryKeywords = []struct {
	bucket string
	terms  []string
}{
	{"ai", []string{"ai", "artificial intelligence", "machine learning", "ml"}},
	{"gaming", []string{"gaming", "game", "entertainment"}},
	{"vr", []string{"vr", "ar", "xr", "virtual reality", "augmented reality"}},
	{"tech", []string{"startup", "tech", "technology"}},
}

// Fallback returns curated, verified companies matching the ICP description.
// Used when every LLM provider fails; never returns an empty list for a
// non-zero count. Results are truncated to count but never padded.
func Fallback(icp string, count int) []model.Company {
	icpLower := strings.ToLower(icp)

	country := "US"
	for _, ck := range countryKeywords {
		if containsAny(icpLower, ck.terms) {
			country = ck.code
			break
		}
	}

	bucket := "tech"
	for _, ik := range industryKeywords {
		if containsAny(icpLower, ik.terms) {
			bucket = ik.bucket
			break
		}
	}

	companies := catalogCompanies(bucket, country)
	zap.L().Info("using fallback catalog",
		zap.String("country", country),
		zap.String("bucket", bucket),
		zap.Int("available", len(companies)),
		zap.Int("requested", count))

	if count < len(companies) {
		companies = companies[:count]
	}
	return companies
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// catalogCompanies resolves a (bucket, country) pair with recycling rules:
// non-US specialist buckets fall back to that country's tech list, and
// unknown tech countries fall back to US AI companies.
func catalogCompanies(bucket, country string) []model.Company {
	switch bucket {
	case "ai":
		if country == "US" {
			return aiCompaniesUS()
		}
		return catalogCompanies("tech", country)
	case "gaming":
		if country == "US" {
			return gamingCompaniesUS()
		}
		return catalogCompanies("tech", country)
	case "vr":
		if country == "US" {
			return vrCompaniesUS()
		}
		return catalogCompanies("tech", country)
	default:
		switch country {
		case "US":
			return techCompaniesUS()
		case "JP":
			return techCompaniesJP()
		default:
			return aiCompaniesUS()
		}
	}
}

func aiCompaniesUS() []model.Company {
	return []model.Company{
		{
			Name:         "OpenAI",
			Website:      "https://openai.com",
			Country:      "US",
			Industry:     "Artificial Intelligence",
			ContactName:  "Sam Altman",
			ContactTitle: "CEO",
			ContactEmail: "sam@openai.com",
			Description:  "AI research company focused on developing safe artificial general intelligence",
		},
		{
			Name:         "Anthropic",
			Website:      "https://anthropic.com",
			Country:      "US",
			Industry:     "Artificial Intelligence",
			ContactName:  "Dario Amodei",
			ContactTitle: "CEO",
			ContactEmail: "dario@anthropic.com",
			Description:  "AI safety company developing Claude AI assistant",
		},
		{
			Name:         "Hugging Face",
			Website:      "https://huggingface.co",
			Country:      "US",
			Industry:     "Artificial Intelligence",
			ContactName:  "Clem Delangue",
			ContactTitle: "CEO",
			ContactEmail: "clem@huggingface.co",
			Description:  "Open source AI platform and model repository",
		},
		{
			Name:         "Scale AI",
			Website:      "https://scale.com",
			Country:      "US",
			Industry:     "Artificial Intelligence",
			ContactName:  "Alex Wang",
			ContactTitle: "CEO",
			ContactEmail: "alex@scale.com",
			Description:  "Data platform for AI training and validation",
		},
		{
			Name:         "Cohere",
			Website:      "https://cohere.com",
			Country:      "US",
			Industry:     "Artificial Intelligence",
			ContactName:  "Aidan Gomez",
			ContactTitle: "CEO",
			ContactEmail: "aidan@cohere.com",
			Description:  "Enterprise AI platform for natural language processing",
		},
	}
}

func techCompaniesUS() []model.Company {
	return []model.Company{
		{
			Name:         "Microsoft",
			Website:      "https://microsoft.com",
			Country:      "US",
			Industry:     "Technology",
			ContactName:  "Satya Nadella",
			ContactTitle: "CEO",
			ContactEmail: "satya.nadella@microsoft.com",
			Description:  "Technology company focused on cloud computing and productivity software",
		},
		{
			Name:         "Google",
			Website:      "https://google.com",
			Country:      "US",
			Industry:     "Technology",
			ContactName:  "Sundar Pichai",
			ContactTitle: "CEO",
			ContactEmail: "sundar@google.com",
			Description:  "Technology company specializing in search, advertising, and cloud services",
		},
		{
			Name:         "Apple",
			Website:      "https://apple.com",
			Country:      "US",
			Industry:     "Technology",
			ContactName:  "Tim Cook",
			ContactTitle: "CEO",
			ContactEmail: "tcook@apple.com",
			Description:  "Technology company known for consumer electronics and software",
		},
		{
			Name:         "Meta",
			Website:      "https://meta.com",
			Country:      "US",
			Industry:     "Technology",
			ContactName:  "Mark Zuckerberg",
			ContactTitle: "CEO",
			ContactEmail: "mark@meta.com",
			Description:  "Social media and metaverse technology company",
		},
		{
			Name:         "Tesla",
			Website:      "https://tesla.com",
			Country:      "US",
			Industry:     "Technology",
			ContactName:  "Elon Musk",
			ContactTitle: "CEO",
			ContactEmail: "elon@tesla.com",
			Description:  "Electric vehicle and clean energy company",
		},
	}
}

func techCompaniesJP() []model.Company {
	return []model.Company{
		{
			Name:         "Sony",
			Website:      "https://sony.com",
			Country:      "JP",
			Industry:     "Technology",
			ContactName:  "Kenichiro Yoshida",
			ContactTitle: "CEO",
			ContactEmail: "kenichiro.yoshida@sony.com",
			Description:  "Japanese multinational conglomerate in entertainment and technology",
		},
		{
			Name:         "Nintendo",
			Website:      "https://nintendo.com",
			Country:      "JP",
			Industry:     "Gaming",
			ContactName:  "Shuntaro Furukawa",
			ContactTitle: "President",
			ContactEmail: "shuntaro.furukawa@nintendo.com",
			Description:  "Japanese video game company and console manufacturer",
		},
		{
			Name:         "SoftBank",
			Website:      "https://softbank.jp",
			Country:      "JP",
			Industry:     "Technology",
			ContactName:  "Masayoshi Son",
			ContactTitle: "CEO",
			ContactEmail: "masayoshi.son@softbank.jp",
			Description:  "Japanese multinational conglomerate and technology investment company",
		},
	}
}

func gamingCompaniesUS() []model.Company {
	return []model.Company{
		{
			Name:         "Epic Games",
			Website:      "https://epicgames.com",
			Country:      "US",
			Industry:     "Gaming",
			ContactName:  "Tim Sweeney",
			ContactTitle: "CEO",
			ContactEmail: "tim@epicgames.com",
			Description:  "Video game developer and publisher, creator of Fortnite",
		},
		{
			Name:         "Riot Games",
			Website:      "https://riotgames.com",
			Country:      "US",
			Industry:     "Gaming",
			ContactName:  "Nicolo Laurent",
			ContactTitle: "CEO",
			ContactEmail: "nicolo@riotgames.com",
			Description:  "Video game developer, creator of League of Legends",
		},
		{
			Name:         "Blizzard Entertainment",
			Website:      "https://blizzard.com",
			Country:      "US",
			Industry:     "Gaming",
			ContactName:  "Mike Ybarra",
			ContactTitle: "President",
			ContactEmail: "mike.ybarra@blizzard.com",
			Description:  "Video game developer and publisher",
		},
	}
}

func vrCompaniesUS() []model.Company {
	return []model.Company{
		{
			Name:         "Meta Reality Labs",
			Website:      "https://about.meta.com/realitylabs",
			Country:      "US",
			Industry:     "VR/AR Technology",
			ContactName:  "Andrew Bosworth",
			ContactTitle: "VP of Reality Labs",
			ContactEmail: "boz@meta.com",
			Description:  "VR and AR technology development division of Meta",
		},
		{
			Name:         "Magic Leap",
			Website:      "https://magicleap.com",
			Country:      "US",
			Industry:     "VR/AR Technology",
			ContactName:  "Peggy Johnson",
			ContactTitle: "CEO",
			ContactEmail: "peggy@magicleap.com",
			Description:  "Augmented reality technology company",
		},
		{
			Name:         "HTC Vive",
			Website:      "https://vive.com",
			Country:      "US",
			Industry:     "VR/AR Technology",
			ContactName:  "Cher Wang",
			ContactTitle: "CEO",
			ContactEmail: "cher.wang@htc.com",
			Description:  "Virtual reality hardware and software company",
		},
	}
}
