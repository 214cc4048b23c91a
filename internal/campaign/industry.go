package campaign

import "strings"

// Industry-keyed personalization copy. Each helper carries its own keyword
// precedence since the buckets overlap for labels like "Gaming Technology".

func containsAny(s string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func companyWork(industry string) string {
	switch {
	case containsAny(industry, "tech", "software"):
		return "innovative technology solutions"
	case containsAny(industry, "gaming", "entertainment"):
		return "gaming and entertainment experiences"
	case containsAny(industry, "vr", "ar", "xr"):
		return "immersive VR/AR experiences"
	default:
		return "innovative solutions"
	}
}

func companyImpression(industry string) string {
	switch {
	case containsAny(industry, "tech"):
		return "how you're making technology accessible and user-friendly"
	case containsAny(industry, "gaming"):
		return "your creative approach to gaming experiences"
	case containsAny(industry, "vr", "ar"):
		return "your innovative approach to immersive technology"
	default:
		return "your innovative approach and market positioning"
	}
}

func marketOpportunity(industry string) string {
	switch {
	case containsAny(industry, "health", "wellness", "fitness"):
		return "corporate wellness and retail expansion"
	case containsAny(industry, "tech", "software"):
		return "enterprise partnerships and market expansion"
	case containsAny(industry, "gaming", "entertainment"):
		return "gaming partnerships and content localization"
	case containsAny(industry, "vr", "ar"):
		return "immersive technology adoption and partnerships"
	case containsAny(industry, "retail", "ecommerce"):
		return "retail partnerships and distribution expansion"
	default:
		return "market expansion and strategic partnerships"
	}
}

func industryType(industry string) string {
	switch {
	case containsAny(industry, "tech"):
		return "technology"
	case containsAny(industry, "gaming"):
		return "gaming"
	case containsAny(industry, "vr", "ar"):
		return "immersive technology"
	default:
		return "technology"
	}
}

func relevantConnections(industry string) string {
	switch {
	case containsAny(industry, "health", "wellness", "fitness"):
		return "corporate wellness programs, retail distributors, and healthcare providers"
	case containsAny(industry, "tech", "software"):
		return "enterprise partners, technology integrators, and business development teams"
	case containsAny(industry, "gaming", "entertainment"):
		return "gaming publishers, esports teams, and entertainment venues"
	case containsAny(industry, "vr", "ar"):
		return "entertainment venues, theme parks, and enterprise training programs"
	case containsAny(industry, "retail", "ecommerce"):
		return "retail chains, e-commerce platforms, and distribution networks"
	default:
		return "corporate partners, retail distributors, and key stakeholders"
	}
}

func connection1(industry string) string {
	switch {
	case containsAny(industry, "health", "wellness", "fitness"):
		return "Rakuten – E-commerce and wellness collaborations"
	case containsAny(industry, "tech", "software"):
		return "Rakuten – E-commerce and technology collaborations"
	case containsAny(industry, "gaming", "entertainment"):
		return "Bandai Namco – Gaming and entertainment partnerships"
	case containsAny(industry, "vr", "ar"):
		return "Sony – VR/AR technology and entertainment collaborations"
	case containsAny(industry, "retail", "ecommerce"):
		return "Rakuten – E-commerce platform and retail partnerships"
	default:
		return "Rakuten – E-commerce and technology collaborations"
	}
}

func connection2(industry string) string {
	switch {
	case containsAny(industry, "health", "wellness", "fitness"):
		return "ANA – Corporate wellness and travel health programs"
	case containsAny(industry, "tech", "software"):
		return "ANA – Corporate partnerships and business development"
	case containsAny(industry, "gaming", "entertainment"):
		return "ANA – Entertainment and travel partnerships"
	case containsAny(industry, "vr", "ar"):
		return "ANA – Corporate training and immersive experiences"
	default:
		return "ANA – Corporate partnerships and business development"
	}
}

func connection3(industry string) string {
	switch {
	case containsAny(industry, "health", "wellness", "fitness", "tech", "software"):
		return "Aeon Retail – Nationwide retail distribution network"
	case containsAny(industry, "gaming", "entertainment"):
		return "Aeon Retail – Gaming retail and entertainment venues"
	case containsAny(industry, "vr", "ar"):
		return "Aeon Retail – VR/AR retail experiences and distribution"
	default:
		return "Aeon Retail – Nationwide retail distribution network"
	}
}

func connection4(industry string) string {
	switch {
	case containsAny(industry, "health", "wellness", "fitness"):
		return "Shiseido – Wellness and lifestyle partnerships"
	case containsAny(industry, "tech", "software"):
		return "Shiseido – Lifestyle and consumer partnerships"
	case containsAny(industry, "gaming", "entertainment"):
		return "Shiseido – Lifestyle and entertainment collaborations"
	case containsAny(industry, "vr", "ar"):
		return "Shiseido – Lifestyle and immersive experience partnerships"
	default:
		return "Shiseido – Lifestyle and consumer partnerships"
	}
}
