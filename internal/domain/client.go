package domain

// Identifier kinds used in client configurations.
const (
	IdentifierORCID  = "ORCID"
	IdentifierScopus = "SCP"
)

// Identifier is one external author identifier tagged by kind.
type Identifier struct {
	Kind  string `json:"tipo"`
	Value string `json:"_id"`
}

// Author holds the ordered identifiers configured for one author.
type Author struct {
	Identifiers []Identifier `json:"identificadores"`
}

// Affiliation names one institution to harvest works for.
type Affiliation struct {
	AffiliationID string `json:"affiliationId"`
}

// ClientConfig is one configured harvest client. Configurations are
// created and edited outside this service; the pipeline only reads them.
type ClientConfig struct {
	ID              int64
	ClientID        string
	Enabled         bool
	PeriodicityDays int
	Affiliations    []Affiliation
	Authors         []Author
}

// OrcidOf returns the preferred searchable identifier for an author: a
// directly configured ORCID wins, otherwise the first Scopus id is
// returned with needsLookup set.
func (a Author) OrcidOf() (value string, needsLookup bool) {
	for _, id := range a.Identifiers {
		if id.Kind == IdentifierORCID && id.Value != "" {
			return id.Value, false
		}
	}
	for _, id := range a.Identifiers {
		if id.Kind == IdentifierScopus && id.Value != "" {
			return id.Value, true
		}
	}
	return "", false
}
