// Package schema defines the ActorSpec data contract: the metadata an actor maintainer publishes
// about a deployed bot or scraper, its pricing and, for scrapers, the datasets it produces.
//
// The types carry no behavior beyond validation and rendering. The config resolution pipeline only
// relies on the presence of ActorSpecVersion; everything else is enforced by the optional strict
// validator built from JSONSchema.
package schema

// VersionField is the JSON key that marks a document as an ActorSpec.
const VersionField = "actorspecVersion"

// ActorSpec is the versioned record describing one actor.
type ActorSpec struct {
	ActorSpecVersion int       `json:"actorspecVersion"`
	Actor            Actor     `json:"actor"`
	Platform         Platform  `json:"platform"`
	Authors          []Author  `json:"authors"`
	Websites         []Website `json:"websites"`
	Pricing          Pricing   `json:"pricing"`
}

// Actor identifies the actor on its hosting platform.
type Actor struct {
	Title     string `json:"title"`
	PublicURL string `json:"publicUrl"`
	ShortDesc string `json:"shortDesc"`
	// DatasetOverviewImgURL points at an image summarizing the datasets, if any.
	DatasetOverviewImgURL string `json:"datasetOverviewImgUrl,omitempty"`
}

// Platform describes where the actor is deployed.
type Platform struct {
	Name             string            `json:"name"`
	URL              string            `json:"url"`
	AuthorID         string            `json:"authorId"`
	AuthorProfileURL string            `json:"authorProfileUrl,omitempty"`
	ActorID          string            `json:"actorId"`
	Socials          map[string]string `json:"socials,omitempty"`
}

type Author struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AuthorURL string `json:"authorUrl,omitempty"`
}

type Website struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pricing is what it costs to run the actor, e.g. 25 USD per 1 month.
type Pricing struct {
	PricingType string  `json:"pricingType"`
	Value       float64 `json:"value"`
	Currency    string  `json:"currency"`
	Period      float64 `json:"period"`
	PeriodUnit  string  `json:"periodUnit"`
}

// ScraperActorSpec is an ActorSpec for actors that extract datasets.
type ScraperActorSpec struct {
	ActorSpec
	Datasets []ScraperDataset `json:"datasets"`
}

// ScraperDataset describes one dataset a scraper can produce.
type ScraperDataset struct {
	Name               string             `json:"name"`
	ShortDesc          string             `json:"shortDesc"`
	URL                string             `json:"url"`
	Size               float64            `json:"size"`
	IsDefault          bool               `json:"isDefault"`
	Filters            []string           `json:"filters"`
	FilterCompleteness FilterCompleteness `json:"filterCompleteness"`
	Modes              []DatasetMode      `json:"modes"`
	Features           DatasetFeatures    `json:"features"`
	PerfStats          []DatasetPerfStat  `json:"perfStats"`
	Privacy            DatasetPrivacy     `json:"privacy"`
	Output             DatasetOutput      `json:"output"`
}

// DatasetMode is one way of running the scraper for a dataset, e.g. "fast" or "detailed".
type DatasetMode struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
	ShortDesc string `json:"shortDesc"`
}

// DatasetFeatures lists capability flags of a dataset extraction.
type DatasetFeatures struct {
	UsesBrowser      bool `json:"usesBrowser"`
	ProxySupport     bool `json:"proxySupport"`
	Configurable     bool `json:"configurable"`
	RegularlyTested  bool `json:"regularlyTested"`
	PrivacyCompliant bool `json:"privacyCompliant"`
	ErrorMonitoring  bool `json:"errorMonitoring"`
}

// DatasetPerfStat is a single cell of the cost/time performance table. RowID and ColID place the
// datapoint in the table; Mode names a DatasetMode or is nil for the default run.
type DatasetPerfStat struct {
	RowID   string    `json:"rowId"`
	ColID   string    `json:"colId"`
	CostUSD float64   `json:"costUsd"`
	TimeSec float64   `json:"timeSec"`
	Mode    *string   `json:"mode"`
	Count   PerfCount `json:"count"`
}

// DatasetPrivacy records which personal data a dataset may contain.
type DatasetPrivacy struct {
	PersonalDataFields     []string `json:"personalDataFields"`
	IsPersonalDataRedacted bool     `json:"isPersonalDataRedacted"`
	PersonalDataSubjects   []string `json:"personalDataSubjects"`
}

// DatasetOutput carries one example entry and optional comments keyed by the entry's field names.
type DatasetOutput struct {
	ExampleEntry         map[string]any    `json:"exampleEntry"`
	ExampleEntryComments map[string]string `json:"exampleEntryComments,omitempty"`
}
