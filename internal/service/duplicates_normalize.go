package service

import (
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-vault-reconcile/models"
)

var (
	reNonWord = regexp.MustCompile(`\W`)
	reDigits  = regexp.MustCompile(`\d`)
	reScheme  = regexp.MustCompile(`^.+://`)
)

// stopWords are prepositions dropped from names and notes before comparison.
var stopWords = map[string]struct{}{
	"about": {}, "along": {}, "amid": {}, "among": {}, "anti": {}, "as": {},
	"at": {}, "but": {}, "by": {}, "for": {}, "from": {}, "in": {},
	"into": {}, "like": {}, "minus": {}, "near": {}, "of": {}, "off": {},
	"on": {}, "onto": {}, "over": {}, "past": {}, "per": {}, "plus": {},
	"save": {}, "since": {}, "than": {}, "to": {}, "up": {}, "upon": {},
	"via": {}, "with": {}, "within": {}, "without": {},
}

// copyMarkers are removed from names so "Mail (copy)" compares equal to "Mail".
var copyMarkers = []string{"copy", "clone", "duplicate"}

// normalizedCipher pairs an input cipher with the shadow copy used for
// scoring.
type normalizedCipher struct {
	source    models.Cipher
	processed models.Cipher
}

func normalizeCipher(c models.Cipher) normalizedCipher {
	p := c

	name := normalizeText(c.Name)
	for _, marker := range copyMarkers {
		name = strings.ReplaceAll(name, marker, "")
	}
	p.Name = reDigits.ReplaceAllString(name, "")
	p.Notes = normalizeText(c.Notes)

	p.URIs = make([]models.URI, len(c.URIs))
	for i, uri := range c.URIs {
		p.URIs[i] = normalizeURI(uri)
	}

	p.Fields = make([]models.Field, len(c.Fields))
	for i, field := range c.Fields {
		field.Name = normalizeText(field.Name)
		field.Value = strings.TrimSpace(field.Value)
		p.Fields[i] = field
	}

	p.Attachments = slices.Clone(c.Attachments)

	if c.Login != nil {
		login := *c.Login
		login.Username = strings.TrimSpace(login.Username)
		p.Login = &login
	}
	if c.Card != nil {
		card := *c.Card
		card.Number = normalizeText(card.Number)
		p.Card = &card
	}
	if c.Identity != nil {
		identity := normalizeIdentity(*c.Identity)
		p.Identity = &identity
	}

	return normalizedCipher{source: c, processed: p}
}

// normalizeText lower-cases s, drops stop words, joins the remaining words
// and strips every non-word character.
func normalizeText(s string) string {
	if s == "" {
		return ""
	}

	words := strings.Split(strings.ToLower(s), " ")
	kept := words[:0]
	for _, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		kept = append(kept, w)
	}

	return reNonWord.ReplaceAllString(strings.Join(kept, ""), "")
}

// normalizeURI reduces non-regex URIs to their bare host.
func normalizeURI(uri models.URI) models.URI {
	if uri.Match == models.MatchTypeRegularExpression {
		return uri
	}

	host := reScheme.ReplaceAllString(uri.URI, "")
	host, _, _ = strings.Cut(host, ":")
	host, _, _ = strings.Cut(host, "/")
	uri.URI = strings.TrimSpace(host)
	return uri
}

func normalizeIdentity(id models.Identity) models.Identity {
	for _, field := range []*string{
		&id.Title, &id.FirstName, &id.MiddleName, &id.LastName,
		&id.Address1, &id.Address2, &id.Address3,
		&id.City, &id.State, &id.PostalCode, &id.Country,
		&id.Company, &id.Email, &id.Phone, &id.SSN, &id.Username,
		&id.PassportNumber, &id.LicenseNumber,
	} {
		*field = normalizeText(*field)
	}
	return id
}
