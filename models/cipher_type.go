// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// CipherType defines the semantic type of a vault entry.
// The value determines which type-specific payload of [Cipher] is meaningful.
type CipherType int

const (
	// CipherTypeNone is an entry without a type-specific payload.
	CipherTypeNone CipherType = iota

	// CipherTypeLogin represents authentication credentials
	// such as username, password, URIs, TOTP secret and passkeys.
	CipherTypeLogin

	// CipherTypeSecureNote represents free-form secret text kept in Notes.
	CipherTypeSecureNote

	// CipherTypeCard represents payment card information.
	CipherTypeCard

	// CipherTypeIdentity represents personal identity information
	// (name, address, contact and document numbers).
	CipherTypeIdentity

	// CipherTypeSSHKey represents an SSH key pair.
	CipherTypeSSHKey
)

var cipherTypeNames = map[CipherType]string{
	CipherTypeNone:       "none",
	CipherTypeLogin:      "login",
	CipherTypeSecureNote: "secure_note",
	CipherTypeCard:       "card",
	CipherTypeIdentity:   "identity",
	CipherTypeSSHKey:     "ssh_key",
}

// String returns the lower snake case name of the type.
func (t CipherType) String() string {
	if name, ok := cipherTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("cipher_type(%d)", int(t))
}

// MarshalText implements [encoding.TextMarshaler].
func (t CipherType) MarshalText() ([]byte, error) {
	if _, ok := cipherTypeNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCipherType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *CipherType) UnmarshalText(text []byte) error {
	parsed, err := ParseCipherType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseCipherType converts a type name ("login", "secure_note", ...) into a
// [CipherType]. The comparison is case-insensitive.
func ParseCipherType(s string) (CipherType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range cipherTypeNames {
		if n == name {
			return t, nil
		}
	}
	return CipherTypeNone, fmt.Errorf("%w: %q", ErrUnknownCipherType, s)
}
