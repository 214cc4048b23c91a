// Package campaign composes and delivers templated outreach emails.
package campaign

import (
	"os"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/omnilinks/outreach-cli/internal/model"
)

// Email is a fully rendered outbound message.
type Email struct {
	Subject string
	Body    string
	CC      string
}

// TemplateContext holds the variables available to the email template.
// Empty fields are filled with generic defaults before rendering.
type TemplateContext struct {
	FirstName           string
	Company             string
	CompanyWork         string
	CompanyImpression   string
	MarketOpportunity   string
	IndustryType        string
	RelevantConnections string
	Connection1         string
	Connection2         string
	Connection3         string
	Connection4         string
	SchedulingLink      string
}

const (
	defaultCC             = "joseph@omnilinks-group.com"
	defaultSchedulingLink = "https://timerex.net/s/jake_aff6/ee8be5cd/"
)

var contextDefaults = TemplateContext{
	FirstName:           "Team",
	Company:             "your company",
	CompanyWork:         "innovative solutions",
	CompanyImpression:   "your innovative approach and market positioning",
	MarketOpportunity:   "market expansion and partnerships",
	IndustryType:        "technology",
	RelevantConnections: "corporate partners, retail distributors, and key stakeholders",
	Connection1:         "Rakuten – E-commerce and technology collaborations",
	Connection2:         "ANA – Corporate partnerships and business development",
	Connection3:         "Aeon Retail – Nationwide retail distribution network",
	Connection4:         "Shiseido – Lifestyle and consumer partnerships",
	SchedulingLink:      defaultSchedulingLink,
}

// The first rendered line becomes the subject; the rest is the body.
const defaultTemplate = `Quick intro: Omnilinks × {{.Company}}
Hi {{.FirstName}},

I noted {{.Company}}'s {{.CompanyWork}} and was impressed by {{.CompanyImpression}} and see a great foundation for deeper {{.MarketOpportunity}} here.

I help {{.IndustryType}} companies enter Japan, connecting them with {{.RelevantConnections}}.

Relevant Connections in Japan:
{{.Connection1}}
{{.Connection2}}
{{.Connection3}}
{{.Connection4}}

Monthly Rate Plans

Base Fee – 1,000 USD (Market Connection Support)
- Introductions to potential partners
- Initial outreach and communication
- Arranging discovery meetings

POC & Implementation – 3,000 USD (Proof of Concept / Implementation Facilitation)
- Base Fee services, plus:
- POC and implementation facilitation
- Translation of documents
- Meeting support with stakeholders

Post-Implementation – 6,000 USD~ (Customer Success & Aftercare)
- All previous services, plus:
- Acting as a local contact point
- Managing feedback, issue resolution
- Proposing upsell and retention

Commissions will be added to the contract when a deal is signed. Minimum contract term for all plans is 3 months. Prices exclude tax.

Would you be open to a 20-minute call next week (JST) to discuss partnership opportunities?

You can book a time directly via my scheduling link:

{{.SchedulingLink}}

Best regards,


Denpota Jacob Furugaki / 古垣伝法太<br>
E-mail: jake@omnilinks-group.com<br>
HP: https://www.omnilinks-group.com/home-jp`

// ComposerConfig customizes template rendering. Zero value is usable.
type ComposerConfig struct {
	TemplatePath   string `yaml:"template_path"`
	CC             string `yaml:"cc"`
	SchedulingLink string `yaml:"scheduling_link"`
}

// Composer renders prospect records into outreach emails.
type Composer struct {
	tmpl           *template.Template
	cc             string
	schedulingLink string
}

// NewComposer builds a Composer, loading the template from cfg.TemplatePath
// when set and falling back to the built-in template otherwise.
func NewComposer(cfg ComposerConfig) (*Composer, error) {
	text := defaultTemplate
	if cfg.TemplatePath != "" {
		raw, err := os.ReadFile(cfg.TemplatePath)
		if err != nil {
			return nil, eris.Wrapf(err, "campaign: read template %s", cfg.TemplatePath)
		}
		text = string(raw)
	}

	tmpl, err := template.New("email").Parse(text)
	if err != nil {
		return nil, eris.Wrap(err, "campaign: parse template")
	}

	cc := cfg.CC
	if cc == "" {
		cc = defaultCC
	}
	link := cfg.SchedulingLink
	if link == "" {
		link = defaultSchedulingLink
	}

	return &Composer{tmpl: tmpl, cc: cc, schedulingLink: link}, nil
}

// LoadComposerConfig reads a ComposerConfig from a YAML file.
func LoadComposerConfig(path string) (ComposerConfig, error) {
	var cfg ComposerConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, eris.Wrapf(err, "campaign: read config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, eris.Wrapf(err, "campaign: parse config %s", path)
	}
	return cfg, nil
}

// Compose renders an email for one prospect. The first rendered line is
// the subject, the remainder the body.
func (c *Composer) Compose(prospect model.Company) (Email, error) {
	ctx := c.buildContext(prospect)

	var sb strings.Builder
	if err := c.tmpl.Execute(&sb, ctx); err != nil {
		return Email{}, eris.Wrapf(err, "campaign: render email for %s", prospect.Name)
	}

	rendered := strings.TrimSpace(sb.String())
	lines := strings.SplitN(rendered, "\n", 2)

	email := Email{Subject: lines[0], CC: c.cc}
	if len(lines) > 1 {
		email.Body = strings.TrimLeft(lines[1], "\n")
	}
	return email, nil
}

func (c *Composer) buildContext(prospect model.Company) TemplateContext {
	industry := strings.ToLower(prospect.Industry)
	ctx := TemplateContext{
		FirstName:           firstName(prospect.ContactName),
		Company:             prospect.Name,
		CompanyWork:         companyWork(industry),
		CompanyImpression:   companyImpression(industry),
		MarketOpportunity:   marketOpportunity(industry),
		IndustryType:        industryType(industry),
		RelevantConnections: relevantConnections(industry),
		Connection1:         connection1(industry),
		Connection2:         connection2(industry),
		Connection3:         connection3(industry),
		Connection4:         connection4(industry),
		SchedulingLink:      c.schedulingLink,
	}
	applyDefaults(&ctx)
	return ctx
}

func applyDefaults(ctx *TemplateContext) {
	fill := func(field *string, def string) {
		if *field == "" {
			*field = def
		}
	}
	fill(&ctx.FirstName, contextDefaults.FirstName)
	fill(&ctx.Company, contextDefaults.Company)
	fill(&ctx.CompanyWork, contextDefaults.CompanyWork)
	fill(&ctx.CompanyImpression, contextDefaults.CompanyImpression)
	fill(&ctx.MarketOpportunity, contextDefaults.MarketOpportunity)
	fill(&ctx.IndustryType, contextDefaults.IndustryType)
	fill(&ctx.RelevantConnections, contextDefaults.RelevantConnections)
	fill(&ctx.Connection1, contextDefaults.Connection1)
	fill(&ctx.Connection2, contextDefaults.Connection2)
	fill(&ctx.Connection3, contextDefaults.Connection3)
	fill(&ctx.Connection4, contextDefaults.Connection4)
	fill(&ctx.SchedulingLink, contextDefaults.SchedulingLink)
}

func firstName(contactName string) string {
	fields := strings.Fields(contactName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
