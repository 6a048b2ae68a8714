package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{name: "english", lang: "en", key: "expiryDate", want: "Expiry Date"},
		{name: "greek", lang: "el", key: "expiryDate", want: "Ημερομηνία Λήξης"},
		{name: "case and spaces in lang", lang: " EL ", key: "customers", want: "Πελάτες"},
		{name: "unknown language falls back to english", lang: "fr", key: "payment", want: "Payment"},
		{name: "unknown key returns key", lang: "el", key: "shoeSize", want: "shoeSize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, T(tt.lang, tt.key))
		})
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	en := Table(English)
	el := Table(Greek)

	assert.Len(t, el, len(en))
	for key := range en {
		assert.Contains(t, el, key)
	}
}

func TestTable(t *testing.T) {
	table := Table("en")
	table["name"] = "changed"

	assert.Equal(t, "Name", T("en", "name"), "tables are returned as copies")
	assert.Nil(t, Table("de"))
}

func TestNormalizeAndSupported(t *testing.T) {
	assert.Equal(t, "el", Normalize("EL", English))
	assert.Equal(t, "en", Normalize("", English))
	assert.Equal(t, "el", Normalize("xx", Greek))

	assert.True(t, Supported("en"))
	assert.False(t, Supported("de"))

	assert.Equal(t, []string{"el", "en"}, Languages())
}
