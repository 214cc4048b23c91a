package prospect

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/omnilinks/outreach-cli/internal/model"
	"github.com/omnilinks/outreach-cli/pkg/hunter"
)

// defaultEnrichConcurrency bounds parallel Hunter lookups.
const defaultEnrichConcurrency = 4

// Enricher fills in or verifies contact emails using Hunter.io.
type Enricher struct {
	client      hunter.Client
	concurrency int
}

// NewEnricher builds an Enricher. concurrency <= 0 selects the default.
func NewEnricher(client hunter.Client, concurrency int) *Enricher {
	if concurrency <= 0 {
		concurrency = defaultEnrichConcurrency
	}
	return &Enricher{client: client, concurrency: concurrency}
}

// Enrich looks up a verified address for each company and replaces the
// contact email when Hunter returns one. Lookup failures leave the record
// unchanged; lookups run concurrently but the input order is preserved.
func (e *Enricher) Enrich(ctx context.Context, companies []model.Company) ([]model.Company, error) {
	out := make([]model.Company, len(companies))
	copy(out, companies)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i := range out {
		g.Go(func() error {
			e.enrichOne(ctx, &out[i])
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return companies, err
	}
	return out, nil
}

func (e *Enricher) enrichOne(ctx context.Context, company *model.Company) {
	domain := domainFromWebsite(company.Website)
	if domain == "" {
		return
	}

	first, last := splitContactName(company.ContactName)
	result, err := e.client.FindEmail(ctx, domain, first, last)
	if err != nil {
		zap.L().Warn("email lookup failed",
			zap.String("domain", domain),
			zap.String("contact", company.ContactName),
			zap.Error(err))
		return
	}
	if result == nil {
		// No verified address found; try anyone at the domain.
		results, err := e.client.DomainSearch(ctx, domain, 1)
		if err != nil || len(results) == 0 {
			return
		}
		result = &results[0]
	}

	if result.Email != "" && result.Email != company.ContactEmail {
		zap.L().Info("contact email enriched",
			zap.String("company", company.Name),
			zap.String("email", result.Email),
			zap.Int("confidence", result.Confidence))
		company.ContactEmail = result.Email
		if company.ContactName == "" && result.FirstName != "" {
			company.ContactName = strings.TrimSpace(result.FirstName + " " + result.LastName)
		}
		if company.ContactTitle == "" {
			company.ContactTitle = result.Position
		}
	}
}

func domainFromWebsite(website string) string {
	if website == "" {
		return ""
	}
	raw := website
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}

func splitContactName(name string) (first, last string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], fields[len(fields)-1]
	}
}
