// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Provider names an external identity source.
type Provider string

const (
	ProviderGoogle    Provider = "google"
	ProviderFacebook  Provider = "facebook"
	ProviderTwitter   Provider = "twitter"
	ProviderBrowserID Provider = "browserid"
	// ProviderAPI identifies users by a server-issued secret key.
	ProviderAPI Provider = "api"
)

// Providers lists every supported provider.
var Providers = []Provider{
	ProviderGoogle,
	ProviderFacebook,
	ProviderTwitter,
	ProviderBrowserID,
	ProviderAPI,
}

// Valid reports whether p is one of the supported providers.
func (p Provider) Valid() bool {
	for _, known := range Providers {
		if p == known {
			return true
		}
	}
	return false
}

func (p Provider) String() string {
	return string(p)
}

// ExternalIdentity binds a provider-scoped natural key (email, username,
// provider account id, API secret) to a user.
type ExternalIdentity struct {
	Provider   Provider `json:"provider"`
	NaturalKey string   `json:"natural_key"`
	UserID     string   `json:"-"`

	// Profile holds the provider attributes captured on first login
	// (first_name, last_name, locale, picture, ...). Keys the provider table
	// does not know are ignored.
	Profile map[string]string `json:"profile,omitempty"`
}
