package service

import (
	"context"

	"github.com/MKhiriev/go-vault-reconcile/models"
)

// FindBroadURIs collects the registrable domains of every Host-matched web
// URI, then reports each Domain-matched web URI whose equivalent domains
// intersect that set. A URI whose domain cannot be resolved is skipped, and
// so is every cipher that silenced the broad-URI alert.
func (s *urlMatchService) FindBroadURIs(ctx context.Context, ciphers []models.Cipher, defaultMatch models.MatchType, eq models.EquivalentDomains) ([]models.BroadURIGroup, error) {
	hostDomains := make(map[string]struct{})
	for _, cipher := range ciphers {
		for _, uri := range cipher.URIs {
			if effectiveMatch(uri, defaultMatch) != models.MatchTypeHost || isAppURI(uri.URI) {
				continue
			}
			domain, ok := s.tryResolve(ctx, uri.URI)
			if !ok {
				continue
			}
			hostDomains[domain] = struct{}{}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var groups []models.BroadURIGroup
	for _, cipher := range ciphers {
		if cipher.Ignores(models.AlertBroadURIs) {
			continue
		}
		for _, uri := range cipher.URIs {
			if effectiveMatch(uri, defaultMatch) != models.MatchTypeDomain || isAppURI(uri.URI) {
				continue
			}
			domain, ok := s.tryResolve(ctx, uri.URI)
			if !ok {
				continue
			}

			for _, candidate := range eq.Find(domain) {
				if _, found := hostDomains[candidate]; found {
					groups = append(groups, models.BroadURIGroup{
						Value:  domain + "|" + uri.URI,
						Cipher: cipher,
					})
					break
				}
			}
		}
	}

	return groups, ctx.Err()
}

func (s *urlMatchService) tryResolve(ctx context.Context, raw string) (string, bool) {
	domain, err := s.resolve(ctx, hostOf(raw))
	if err != nil {
		s.logger.Debug().Err(err).Str("uri", raw).Msg("skipping unresolvable uri")
		return "", false
	}
	return domain, true
}
