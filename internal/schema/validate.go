package schema

import (
	"errors"
	"fmt"
)

// Validate checks the required identity fields and numeric bounds of an ActorSpec.
func (s *ActorSpec) Validate() error {
	var errs []error

	if s.ActorSpecVersion <= 0 {
		errs = append(errs, fieldError(VersionField, ErrMissingRequiredField))
	}
	if s.Actor.Title == "" {
		errs = append(errs, fieldError("actor.title", ErrMissingRequiredField))
	}
	if s.Platform.Name == "" {
		errs = append(errs, fieldError("platform.name", ErrMissingRequiredField))
	}
	if s.Platform.ActorID == "" {
		errs = append(errs, fieldError("platform.actorId", ErrMissingRequiredField))
	}

	for i, a := range s.Authors {
		if a.Name == "" {
			errs = append(errs, fieldError(fmt.Sprintf("authors[%d].name", i), ErrMissingRequiredField))
		}
	}
	for i, w := range s.Websites {
		if w.URL == "" {
			errs = append(errs, fieldError(fmt.Sprintf("websites[%d].url", i), ErrMissingRequiredField))
		}
	}

	if s.Pricing.Value < 0 {
		errs = append(errs, fieldError("pricing.value", ErrNegativeValue))
	}
	if s.Pricing.Period < 0 {
		errs = append(errs, fieldError("pricing.period", ErrNegativeValue))
	}

	return errors.Join(errs...)
}

// Validate checks the embedded ActorSpec and every dataset.
func (s *ScraperActorSpec) Validate() error {
	errs := []error{s.ActorSpec.Validate()}

	defaults := 0
	for i := range s.Datasets {
		ds := &s.Datasets[i]
		if ds.IsDefault {
			defaults++
		}
		if err := ds.Validate(); err != nil {
			errs = append(errs, fieldError(fmt.Sprintf("datasets[%d]", i), err))
		}
	}
	if defaults > 1 {
		errs = append(errs, fieldError("datasets", ErrMultipleDefaults))
	}

	return errors.Join(errs...)
}

// Validate checks a single dataset: enum membership, non-negative numbers and mode references.
func (d *ScraperDataset) Validate() error {
	var errs []error

	if d.Name == "" {
		errs = append(errs, fieldError("name", ErrMissingRequiredField))
	}
	if d.Size < 0 {
		errs = append(errs, fieldError("size", ErrNegativeValue))
	}
	if err := d.FilterCompleteness.Validate(); err != nil {
		errs = append(errs, fieldError("filterCompleteness", err))
	}

	modes := make(map[string]struct{}, len(d.Modes))
	defaults := 0
	for _, m := range d.Modes {
		modes[m.Name] = struct{}{}
		if m.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		errs = append(errs, fieldError("modes", ErrMultipleDefaults))
	}

	for i, p := range d.PerfStats {
		path := fmt.Sprintf("perfStats[%d]", i)
		if p.CostUSD < 0 {
			errs = append(errs, fieldError(path+".costUsd", ErrNegativeValue))
		}
		if p.TimeSec < 0 {
			errs = append(errs, fieldError(path+".timeSec", ErrNegativeValue))
		}
		if !p.Count.IsAll() && p.Count.Value() < 0 {
			errs = append(errs, fieldError(path+".count", ErrNegativeValue))
		}
		if p.Mode != nil {
			if _, ok := modes[*p.Mode]; !ok {
				errs = append(errs, fieldError(path+".mode", fmt.Errorf("unknown mode %q", *p.Mode)))
			}
		}
	}

	return errors.Join(errs...)
}
