package models

// VaultSnapshot is an exported vault as read from a JSON or YAML file.
type VaultSnapshot struct {
	// AccountID owns the entries when the snapshot is imported into a store.
	AccountID string `json:"account_id,omitempty" yaml:"account_id,omitempty"`

	Ciphers []Cipher `json:"ciphers" yaml:"ciphers"`

	// EquivalentDomains lists groups of interchangeable domains.
	EquivalentDomains [][]string `json:"equivalent_domains,omitempty" yaml:"equivalent_domains,omitempty"`
}

// Domains builds the equivalent-domain index of the snapshot.
func (s VaultSnapshot) Domains() EquivalentDomains {
	return EquivalentDomainsFromGroups(s.EquivalentDomains)
}

// LiveCiphers returns the entries that were not retired, in snapshot order.
func (s VaultSnapshot) LiveCiphers() []Cipher {
	live := make([]Cipher, 0, len(s.Ciphers))
	for _, c := range s.Ciphers {
		if !c.Deleted() {
			live = append(live, c)
		}
	}
	return live
}
