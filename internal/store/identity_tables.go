package store

import "github.com/MKhiriev/help-me-shop/models"

// identityTable describes where one provider keeps its identities.
type identityTable struct {
	name       string
	naturalKey string
	// profile columns, filled from ExternalIdentity.Profile by column name
	profile []string
}

var identityTables = map[models.Provider]identityTable{
	models.ProviderGoogle: {
		name:       "auth_google",
		naturalKey: "email",
		profile:    []string{"first_name", "last_name", "name", "locale"},
	},
	models.ProviderFacebook: {
		name:       "auth_facebook",
		naturalKey: "id",
		profile:    []string{"link", "access_token", "locale", "first_name", "last_name", "name", "picture"},
	},
	models.ProviderTwitter: {
		name:       "auth_twitter",
		naturalKey: "username",
		profile:    []string{"profile_image_url"},
	},
	models.ProviderBrowserID: {
		name:       "auth_browserid",
		naturalKey: "email",
	},
	models.ProviderAPI: {
		name:       "auth_api",
		naturalKey: "secret_key",
	},
}

func tableFor(provider models.Provider) (identityTable, error) {
	table, ok := identityTables[provider]
	if !ok {
		return identityTable{}, ErrUnsupportedProvider
	}
	return table, nil
}
