// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Cipher represents a single decrypted vault entry.
// It is the unit the duplicate detector compares and the merge engine
// reconciles. Field encryption happens outside of this module, so every value
// here is plain text.
type Cipher struct {
	// ID is the stable identifier of the entry.
	ID string `json:"id" yaml:"id"`

	// AccountID is the owner account of the entry.
	AccountID string `json:"account_id,omitempty" yaml:"account_id,omitempty"`

	// FolderID is an optional logical container of the entry.
	FolderID string `json:"folder_id,omitempty" yaml:"folder_id,omitempty"`

	// Type defines which type-specific payload is meaningful.
	Type CipherType `json:"type" yaml:"type"`

	// Name is the human-readable display name of the entry.
	Name string `json:"name" yaml:"name"`

	// Notes contains optional user notes.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Favorite marks the entry as pinned by the user.
	Favorite bool `json:"favorite,omitempty" yaml:"favorite,omitempty"`

	// Reprompt requires the master password before the entry is revealed.
	Reprompt bool `json:"reprompt,omitempty" yaml:"reprompt,omitempty"`

	// IgnoredAlerts lists the watchtower alerts the user silenced
	// for this entry.
	IgnoredAlerts []AlertType `json:"ignored_alerts,omitempty" yaml:"ignored_alerts,omitempty"`

	// URIs defines the resources where the entry applies.
	URIs []URI `json:"uris,omitempty" yaml:"uris,omitempty"`

	// Fields contains custom user-defined fields.
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`

	// Attachments contains metadata of attached files.
	Attachments []Attachment `json:"attachments,omitempty" yaml:"attachments,omitempty"`

	// Tags contains free-form labels.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Login is present for entries of type [CipherTypeLogin].
	Login *Login `json:"login,omitempty" yaml:"login,omitempty"`

	// Card is present for entries of type [CipherTypeCard].
	Card *Card `json:"card,omitempty" yaml:"card,omitempty"`

	// Identity is present for entries of type [CipherTypeIdentity].
	Identity *Identity `json:"identity,omitempty" yaml:"identity,omitempty"`

	// SSHKey is present for entries of type [CipherTypeSSHKey].
	SSHKey *SSHKey `json:"ssh_key,omitempty" yaml:"ssh_key,omitempty"`

	// RevisionDate is the timestamp of the last modification.
	RevisionDate time.Time `json:"revision_date,omitzero" yaml:"revision_date,omitempty"`

	// DeletedDate is set once the entry was retired.
	DeletedDate *time.Time `json:"deleted_date,omitempty" yaml:"deleted_date,omitempty"`
}

// Ignores reports whether the user silenced the given alert for this entry.
func (c Cipher) Ignores(alert AlertType) bool {
	return slices.Contains(c.IgnoredAlerts, alert)
}

// Deleted reports whether the entry was retired.
func (c Cipher) Deleted() bool {
	return c.DeletedDate != nil
}

// AlertType names a watchtower alert a user may silence per entry.
type AlertType string

const (
	AlertDuplicate       AlertType = "duplicate"
	AlertBroadURIs       AlertType = "broad_uris"
	AlertDuplicateURIs   AlertType = "duplicate_uris"
	AlertReusedPasswords AlertType = "reused_passwords"
)

// URI represents a single resource matching rule of an entry.
type URI struct {
	// URI is the target resource (domain, URL, or application identifier).
	URI string `json:"uri" yaml:"uri"`

	// Match overrides the default matching policy when set.
	Match MatchType `json:"match,omitempty" yaml:"match,omitempty"`
}

// FieldType defines how the value of a custom field is interpreted.
type FieldType string

const (
	FieldTypeText    FieldType = "text"
	FieldTypeHidden  FieldType = "hidden"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeLinked  FieldType = "linked"
)

// Field represents a user-defined field attached to an entry.
type Field struct {
	Name  string    `json:"name,omitempty" yaml:"name,omitempty"`
	Value string    `json:"value,omitempty" yaml:"value,omitempty"`
	Type  FieldType `json:"type" yaml:"type"`

	// LinkedID references a built-in field when Type is [FieldTypeLinked].
	LinkedID string `json:"linked_id,omitempty" yaml:"linked_id,omitempty"`
}

// Attachment represents metadata of a file attached to an entry.
// The binary content lives outside of this module.
type Attachment struct {
	ID       string `json:"id" yaml:"id"`
	FileName string `json:"file_name" yaml:"file_name"`
	Size     int64  `json:"size" yaml:"size"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Login represents login credentials.
// Empty string values are treated as absent.
type Login struct {
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// TOTP contains the raw time-based one-time password secret
	// (a base32 seed or an otpauth:// URI).
	TOTP string `json:"totp,omitempty" yaml:"totp,omitempty"`

	// Passkeys contains the FIDO2 credentials bound to this login.
	Passkeys []Passkey `json:"passkeys,omitempty" yaml:"passkeys,omitempty"`
}

// Passkey represents a single FIDO2 credential.
type Passkey struct {
	CredentialID    string    `json:"credential_id" yaml:"credential_id"`
	KeyType         string    `json:"key_type,omitempty" yaml:"key_type,omitempty"`
	KeyAlgorithm    string    `json:"key_algorithm,omitempty" yaml:"key_algorithm,omitempty"`
	KeyCurve        string    `json:"key_curve,omitempty" yaml:"key_curve,omitempty"`
	KeyValue        string    `json:"key_value,omitempty" yaml:"key_value,omitempty"`
	RPID            string    `json:"rp_id" yaml:"rp_id"`
	RPName          string    `json:"rp_name,omitempty" yaml:"rp_name,omitempty"`
	Counter         int       `json:"counter,omitempty" yaml:"counter,omitempty"`
	UserHandle      string    `json:"user_handle,omitempty" yaml:"user_handle,omitempty"`
	UserName        string    `json:"user_name,omitempty" yaml:"user_name,omitempty"`
	UserDisplayName string    `json:"user_display_name,omitempty" yaml:"user_display_name,omitempty"`
	Discoverable    bool      `json:"discoverable,omitempty" yaml:"discoverable,omitempty"`
	CreationDate    time.Time `json:"creation_date,omitzero" yaml:"creation_date,omitempty"`
}

// Card represents payment card information.
type Card struct {
	CardholderName string `json:"cardholder_name,omitempty" yaml:"cardholder_name,omitempty"`
	Brand          string `json:"brand,omitempty" yaml:"brand,omitempty"`
	Number         string `json:"number,omitempty" yaml:"number,omitempty"`
	ExpMonth       string `json:"exp_month,omitempty" yaml:"exp_month,omitempty"`
	ExpYear        string `json:"exp_year,omitempty" yaml:"exp_year,omitempty"`
	Code           string `json:"code,omitempty" yaml:"code,omitempty"`
}

// Identity represents personal identity information.
// Empty string values are treated as absent.
type Identity struct {
	Title          string `json:"title,omitempty" yaml:"title,omitempty"`
	FirstName      string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	MiddleName     string `json:"middle_name,omitempty" yaml:"middle_name,omitempty"`
	LastName       string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Address1       string `json:"address1,omitempty" yaml:"address1,omitempty"`
	Address2       string `json:"address2,omitempty" yaml:"address2,omitempty"`
	Address3       string `json:"address3,omitempty" yaml:"address3,omitempty"`
	City           string `json:"city,omitempty" yaml:"city,omitempty"`
	State          string `json:"state,omitempty" yaml:"state,omitempty"`
	PostalCode     string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Country        string `json:"country,omitempty" yaml:"country,omitempty"`
	Company        string `json:"company,omitempty" yaml:"company,omitempty"`
	Email          string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone          string `json:"phone,omitempty" yaml:"phone,omitempty"`
	SSN            string `json:"ssn,omitempty" yaml:"ssn,omitempty"`
	Username       string `json:"username,omitempty" yaml:"username,omitempty"`
	PassportNumber string `json:"passport_number,omitempty" yaml:"passport_number,omitempty"`
	LicenseNumber  string `json:"license_number,omitempty" yaml:"license_number,omitempty"`
}

// SSHKey represents an SSH key pair.
type SSHKey struct {
	PrivateKey  string `json:"private_key,omitempty" yaml:"private_key,omitempty"`
	PublicKey   string `json:"public_key,omitempty" yaml:"public_key,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}
