package recognize

import (
	"fmt"
	"strings"
)

// mark pairs a phrase with its label for corpus construction.
type mark struct {
	phrase string
	label  Label
}

// mustExample builds an Example by locating each marked phrase in text.
// Panics on a phrase that does not occur; the corpus is a compile-time
// constant and a miss is a programming error.
func mustExample(text string, marks ...mark) Example {
	entities := make([]Entity, 0, len(marks))
	for _, m := range marks {
		start := strings.Index(text, m.phrase)
		if start < 0 {
			panic(fmt.Sprintf("corpus phrase %q not found in %q", m.phrase, text))
		}
		entities = append(entities, Entity{Start: start, End: start + len(m.phrase), Label: m.label})
	}
	return Example{Text: text, Entities: entities}
}

// DefaultCorpus returns the built-in labeled examples used for on-demand
// training when no model artifact is available. Hand-authored from
// impressum pages of German law firms.
func DefaultCorpus() []Example {
	return []Example{
		// Isolated entity names.
		mustExample("Rechtsanwaltskanzlei Schmidt",
			mark{"Rechtsanwaltskanzlei Schmidt", LabelOrganization}),
		mustExample("Anwaltsbüro Müller & Partner",
			mark{"Anwaltsbüro Müller & Partner", LabelOrganization}),
		mustExample("Kanzlei Mustermann & Partner Rechtsanwälte",
			mark{"Kanzlei Mustermann & Partner Rechtsanwälte", LabelOrganization}),
		mustExample("Rechtsanwälte Fischer & Söhne GmbH",
			mark{"Rechtsanwälte Fischer & Söhne GmbH", LabelOrganization}),
		mustExample("Anwaltskanzlei Hansen & Partner mbB",
			mark{"Anwaltskanzlei Hansen & Partner mbB", LabelOrganization}),
		mustExample("Rechtsanwaltskanzlei Dr. Becker GmbH",
			mark{"Rechtsanwaltskanzlei Dr. Becker GmbH", LabelOrganization}),
		mustExample("Kanzlei Berger und Partner",
			mark{"Kanzlei Berger und Partner", LabelOrganization}),
		mustExample("Rechtsanwälte Dr. Maier & Kollegen",
			mark{"Rechtsanwälte Dr. Maier & Kollegen", LabelOrganization}),
		mustExample("Rechtsanwaltskanzlei Franke",
			mark{"Rechtsanwaltskanzlei Franke", LabelOrganization}),
		mustExample("Kanzlei Weber & Partner",
			mark{"Kanzlei Weber & Partner", LabelOrganization}),
		mustExample("Anwaltskanzlei Schulze & Kollegen GbR",
			mark{"Anwaltskanzlei Schulze & Kollegen GbR", LabelOrganization}),
		mustExample("Kanzlei Richter und Partner mbB",
			mark{"Kanzlei Richter und Partner mbB", LabelOrganization}),

		// Full impressum sentences.
		mustExample("Impressum Rechtsanwaltskanzlei Schmidt, RA Dr. Hans Mustermann, Email: kanzlei@anwalt-paderborn.de",
			mark{"Rechtsanwaltskanzlei Schmidt", LabelOrganization},
			mark{"Dr. Hans Mustermann", LabelPerson},
			mark{"kanzlei@anwalt-paderborn.de", LabelEmail}),
		mustExample("Kontakt Anwaltsbüro Müller & Partner, Frau Erika Musterfrau, E-Mail: kontakt@rae-strake.de",
			mark{"Anwaltsbüro Müller & Partner", LabelOrganization},
			mark{"Erika Musterfrau", LabelPerson},
			mark{"kontakt@rae-strake.de", LabelEmail}),
		mustExample("Rechtsanwälte Fischer & Söhne GmbH, Herr Max Mustermann, Email: info@eikel-partner.de",
			mark{"Rechtsanwälte Fischer & Söhne GmbH", LabelOrganization},
			mark{"Max Mustermann", LabelPerson},
			mark{"info@eikel-partner.de", LabelEmail}),
		mustExample("Kanzlei Mustermann & Partner Rechtsanwälte, Dr. Michael Bauer, E-Mail: ashkan@ra-ashkan.de",
			mark{"Kanzlei Mustermann & Partner Rechtsanwälte", LabelOrganization},
			mark{"Dr. Michael Bauer", LabelPerson},
			mark{"ashkan@ra-ashkan.de", LabelEmail}),
		mustExample("Rechtsanwalt Dr. Karl Schmidt, Kontakt: info@rae-schaefers.de",
			mark{"Dr. Karl Schmidt", LabelPerson},
			mark{"info@rae-schaefers.de", LabelEmail}),
		mustExample("Notarin Dr. Anna Berger, E-Mail: zentrale@kanzlei-am-rosentor.de",
			mark{"Dr. Anna Berger", LabelPerson},
			mark{"zentrale@kanzlei-am-rosentor.de", LabelEmail}),
		mustExample("Rechtsanwältin Julia König, Email: info@steinertstrafrecht.com",
			mark{"Julia König", LabelPerson},
			mark{"info@steinertstrafrecht.com", LabelEmail}),
		mustExample("Anwaltskanzlei Hansen & Partner mbB, Dr. Andrea Schulze, LL.M., Email: kanzlei@anwalt-paderborn.com",
			mark{"Anwaltskanzlei Hansen & Partner mbB", LabelOrganization},
			mark{"Dr. Andrea Schulze", LabelPerson},
			mark{"kanzlei@anwalt-paderborn.com", LabelEmail}),
		mustExample("Impressum: Anwaltskanzlei Maier & Kollegen, Kontakt: kanzlei@anwalt-paderborn.de",
			mark{"Anwaltskanzlei Maier & Kollegen", LabelOrganization},
			mark{"kanzlei@anwalt-paderborn.de", LabelEmail}),
		mustExample("Kanzlei Müller und Partner mbB, Email: info@eikel-partner.de",
			mark{"Kanzlei Müller und Partner mbB", LabelOrganization},
			mark{"info@eikel-partner.de", LabelEmail}),
	}
}
