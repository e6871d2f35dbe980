package patterns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/goimpressum/internal/normalize"
	"github.com/jonesrussell/goimpressum/internal/patterns"
)

func TestEmails(t *testing.T) {
	t.Parallel()

	lib := patterns.NewLibrary()

	matches := lib.Emails("Email: kanzlei@anwalt-paderborn.de, alt: info@eikel-partner.de")
	assert.Equal(t, []string{"kanzlei@anwalt-paderborn.de", "info@eikel-partner.de"}, matches)

	assert.Empty(t, lib.Emails("keine adresse hier"))
}

func TestOrganizations_LegalEntitySuffix(t *testing.T) {
	t.Parallel()

	lib := patterns.NewLibrary()

	matches := lib.Organizations("impressum der Mustermann Verwaltung GmbH, alle rechte vorbehalten")
	assert.Equal(t, []string{"Mustermann Verwaltung GmbH"}, matches)
}

func TestOrganizations_KanzleiPrefix(t *testing.T) {
	t.Parallel()

	lib := patterns.NewLibrary()

	text := normalize.Normalize("Kanzlei Mustermann & Partner Rechtsanwälte")
	matches := lib.Organizations(text)

	assert.NotEmpty(t, matches)
	assert.Equal(t, "Kanzlei Mustermann & Partner Rechtsanwalte", matches[0])
}

func TestOrganizations_RechtsanwaltskanzleiPrefix(t *testing.T) {
	t.Parallel()

	lib := patterns.NewLibrary()

	matches := lib.Organizations("vertreten durch die Rechtsanwaltskanzlei Schmidt")
	assert.Contains(t, matches, "Rechtsanwaltskanzlei Schmidt")
}

func TestOrganizations_PatternOrderThenMatchOrder(t *testing.T) {
	t.Parallel()

	lib := patterns.NewLibrary()

	// A suffix-pattern match later in the text still precedes a
	// Kanzlei-pattern match earlier in the text.
	text := "Kanzlei Weber und die Beispiel Holding GmbH"
	matches := lib.Organizations(text)

	assert.GreaterOrEqual(t, len(matches), 2)
	assert.Equal(t, "Beispiel Holding GmbH", matches[0])
	assert.Equal(t, "Kanzlei Weber", matches[1])
}

func TestPersons_Honorifics(t *testing.T) {
	t.Parallel()

	lib := patterns.NewLibrary()

	cases := []struct {
		text string
		want string
	}{
		{"vertreten durch Herr Max Mustermann", "Herr Max Mustermann"},
		{"ansprechpartnerin ist Frau Erika Musterfrau", "Frau Erika Musterfrau"},
		{"inhaber: Dr. Hans Becker", "Dr. Hans Becker"},
		{"gegründet von Prof. Anna Schulze", "Prof. Anna Schulze"},
	}

	for _, tc := range cases {
		matches := lib.Persons(tc.text)
		assert.Equal(t, []string{tc.want}, matches, "text %q", tc.text)
	}
}

func TestPersons_NoMatchWithoutTitle(t *testing.T) {
	t.Parallel()

	lib := patterns.NewLibrary()

	assert.Empty(t, lib.Persons("Email: kanzlei@anwalt-paderborn.de"))
}
