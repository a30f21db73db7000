package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProvider_Valid(t *testing.T) {
	for _, p := range Providers {
		assert.True(t, p.Valid(), p.String())
	}
	assert.False(t, Provider("myspace").Valid())
	assert.False(t, Provider("").Valid())
}

func TestListRevision_Newer(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	older := ListRevision{RevisionID: "b", EditedAt: base}
	later := ListRevision{RevisionID: "a", EditedAt: base.Add(time.Microsecond)}
	tieLow := ListRevision{RevisionID: "a", EditedAt: base}
	tieHigh := ListRevision{RevisionID: "c", EditedAt: base}

	assert.True(t, later.Newer(older), "later timestamp wins regardless of id")
	assert.False(t, older.Newer(later))
	assert.True(t, tieHigh.Newer(tieLow), "equal timestamps fall back to revision id")
	assert.False(t, tieLow.Newer(tieHigh))
	assert.False(t, tieLow.Newer(tieLow))
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "", "abc123")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "Build version: 1.2.3\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "signed", Token{SignedString: "signed"}.String())
}
