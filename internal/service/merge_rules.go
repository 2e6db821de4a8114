package service

import (
	"github.com/MKhiriev/go-vault-reconcile/models"
)

// cipherMergeRules is the per-field reconciliation policy for ciphers.
//
//	notes, type (default login), favorite, reprompt   mode
//	uris, fields, tags                                union-distinct
//	attachments                                       discarded
//	login: username, password, totp / passkeys        mode / union-distinct
//	card                                              first wins
//	identity, ssh key fields                          mode
func cipherMergeRules() Node[models.Cipher] {
	return Group[models.Cipher, models.Cipher]{
		Get: func(c models.Cipher) (models.Cipher, bool) { return c, true },
		Set: func(_ models.Cipher, c models.Cipher) models.Cipher { return c },
		Children: []Node[models.Cipher]{
			leaf[models.Cipher, string](func(c *models.Cipher) *string { return &c.Notes }, NewPickMode[string]()),
			leaf[models.Cipher, models.CipherType](func(c *models.Cipher) *models.CipherType { return &c.Type }, NewPickModeOr(models.CipherTypeLogin)),
			leaf[models.Cipher, bool](func(c *models.Cipher) *bool { return &c.Favorite }, NewPickModeOr(false)),
			leaf[models.Cipher, bool](func(c *models.Cipher) *bool { return &c.Reprompt }, NewPickModeOr(false)),
			leaf[models.Cipher, []models.URI](func(c *models.Cipher) *[]models.URI { return &c.URIs }, UnionDistinct[models.URI]{}),
			leaf[models.Cipher, []models.Field](func(c *models.Cipher) *[]models.Field { return &c.Fields }, UnionDistinct[models.Field]{}),
			leaf[models.Cipher, []models.Attachment](func(c *models.Cipher) *[]models.Attachment { return &c.Attachments }, DiscardToEmpty[models.Attachment]{}),
			leaf[models.Cipher, []string](func(c *models.Cipher) *[]string { return &c.Tags }, UnionDistinct[string]{}),

			subObject[models.Cipher, models.Login](func(c *models.Cipher) **models.Login { return &c.Login },
				optionalString(func(l *models.Login) *string { return &l.Username }),
				optionalString(func(l *models.Login) *string { return &l.Password }),
				optionalString(func(l *models.Login) *string { return &l.TOTP }),
				leaf[models.Login, []models.Passkey](func(l *models.Login) *[]models.Passkey { return &l.Passkeys }, UnionDistinct[models.Passkey]{}),
			),

			Leaf[models.Cipher, *models.Card]{
				Get:      func(c models.Cipher) (*models.Card, bool) { return c.Card, c.Card != nil },
				Set:      func(c models.Cipher, card *models.Card) models.Cipher { c.Card = card; return c },
				Strategy: FirstWins[*models.Card]{},
			},

			subObject[models.Cipher, models.Identity](func(c *models.Cipher) **models.Identity { return &c.Identity },
				optionalString(func(i *models.Identity) *string { return &i.Title }),
				optionalString(func(i *models.Identity) *string { return &i.FirstName }),
				optionalString(func(i *models.Identity) *string { return &i.MiddleName }),
				optionalString(func(i *models.Identity) *string { return &i.LastName }),
				optionalString(func(i *models.Identity) *string { return &i.Address1 }),
				optionalString(func(i *models.Identity) *string { return &i.Address2 }),
				optionalString(func(i *models.Identity) *string { return &i.Address3 }),
				optionalString(func(i *models.Identity) *string { return &i.City }),
				optionalString(func(i *models.Identity) *string { return &i.State }),
				optionalString(func(i *models.Identity) *string { return &i.PostalCode }),
				optionalString(func(i *models.Identity) *string { return &i.Country }),
				optionalString(func(i *models.Identity) *string { return &i.Company }),
				optionalString(func(i *models.Identity) *string { return &i.Email }),
				optionalString(func(i *models.Identity) *string { return &i.Phone }),
				optionalString(func(i *models.Identity) *string { return &i.SSN }),
				optionalString(func(i *models.Identity) *string { return &i.Username }),
				optionalString(func(i *models.Identity) *string { return &i.PassportNumber }),
				optionalString(func(i *models.Identity) *string { return &i.LicenseNumber }),
			),

			subObject[models.Cipher, models.SSHKey](func(c *models.Cipher) **models.SSHKey { return &c.SSHKey },
				optionalString(func(k *models.SSHKey) *string { return &k.PrivateKey }),
				optionalString(func(k *models.SSHKey) *string { return &k.PublicKey }),
				optionalString(func(k *models.SSHKey) *string { return &k.Fingerprint }),
			),
		},
	}
}

// leaf builds an always-present leaf over the field returned by ref.
func leaf[T, V any](ref func(*T) *V, strategy PickStrategy[V]) Leaf[T, V] {
	return Leaf[T, V]{
		Get: func(t T) (V, bool) { return *ref(&t), true },
		Set: func(t T, v V) T {
			*ref(&t) = v
			return t
		},
		Strategy: strategy,
	}
}

// optionalString builds a mode leaf over a string field that counts as
// present only when non-empty.
func optionalString[T any](ref func(*T) *string) Node[T] {
	l := leaf[T, string](ref, NewPickMode[string]())
	l.Get = func(t T) (string, bool) {
		v := *ref(&t)
		return v, v != ""
	}
	return l
}

// subObject builds a group over an optional nested struct. Set stores a
// fresh pointer so the seed never aliases a member's struct.
func subObject[T, F any](ref func(*T) **F, children ...Node[F]) Node[T] {
	return Group[T, F]{
		Get: func(t T) (F, bool) {
			p := *ref(&t)
			if p == nil {
				var zero F
				return zero, false
			}
			return *p, true
		},
		Set: func(t T, f F) T {
			*ref(&t) = &f
			return t
		},
		Children: children,
	}
}
