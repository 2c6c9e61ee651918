package schema

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/atlanticdynamic/actorspec/internal/fancy"
)

// String returns a pretty-printed tree representation of the ActorSpec
func (s *ScraperActorSpec) String() string {
	return SpecTree(s)
}

// SpecTree renders a ScraperActorSpec as a lipgloss tree.
func SpecTree(s *ScraperActorSpec) string {
	t := fancy.Tree()
	t.Root(fancy.TitleText(fmt.Sprintf("ActorSpec v%d: %s", s.ActorSpecVersion, s.Actor.Title)))

	t.Child(fancy.SectionBranch("Actor").
		Field("Public URL", s.Actor.PublicURL).
		Field("Description", fancy.Truncate(s.Actor.ShortDesc, 80)).
		Field("Overview image", s.Actor.DatasetOverviewImgURL).
		Tree())

	platform := fancy.SectionBranch("Platform").
		Field("Name", s.Platform.Name).
		Field("URL", s.Platform.URL).
		Field("Author", s.Platform.AuthorID).
		Field("Actor", s.Platform.ActorID)
	for _, k := range slices.Sorted(maps.Keys(s.Platform.Socials)) {
		platform.Field(k, s.Platform.Socials[k])
	}
	t.Child(platform.Tree())

	authors := fancy.Section("Authors", len(s.Authors))
	for _, a := range s.Authors {
		authors.Child(fmt.Sprintf("%s <%s>", a.Name, a.Email))
	}
	t.Child(authors)

	websites := fancy.Section("Websites", len(s.Websites))
	for _, w := range s.Websites {
		websites.Child(fmt.Sprintf("%s %s", w.Name, fancy.PathText(w.URL)))
	}
	t.Child(websites)

	t.Child(fancy.SectionBranch("Pricing").
		Field("Type", s.Pricing.PricingType).
		Field("Price", fmt.Sprintf("%g %s / %g %s",
			s.Pricing.Value, s.Pricing.Currency, s.Pricing.Period, s.Pricing.PeriodUnit)).
		Tree())

	if len(s.Datasets) > 0 {
		datasets := fancy.Section("Datasets", len(s.Datasets))
		for i := range s.Datasets {
			datasets.Child(s.Datasets[i].ToTree().Tree())
		}
		t.Child(datasets)
	}

	return t.String()
}

// ToTree renders the dataset with its modes as a branch.
func (d *ScraperDataset) ToTree() *fancy.Branch {
	name := d.Name
	if d.IsDefault {
		name += " (default)"
	}
	ct := fancy.DatasetBranch(name).
		Field("URL", d.URL).
		Field("Size", d.Size).
		Field("Filters", fmt.Sprintf("%s [%s]", strings.Join(d.Filters, ", "), d.FilterCompleteness))

	for _, m := range d.Modes {
		mode := fancy.ModeBranch(m.Name)
		if m.IsDefault {
			mode.Child("default")
		}
		mode.Field("Description", m.ShortDesc)
		ct.Child(mode.Tree())
	}

	if len(d.PerfStats) > 0 {
		ct.Field("Perf stats", fancy.CountText(fmt.Sprintf("%d", len(d.PerfStats))))
	}
	if len(d.Privacy.PersonalDataFields) > 0 {
		ct.Field("Personal data", strings.Join(d.Privacy.PersonalDataFields, ", "))
	}

	return ct
}
