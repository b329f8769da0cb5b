package models

// NamedRef is a reference identifier resolved to its display name.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResolvedRefs is the enrichment the remote side attaches to a successful
// createEvent response. Clients treat it as opaque pass-through data.
type ResolvedRefs struct {
	TableLayouts []NamedRef `json:"tableLayouts"`
	Categories   []NamedRef `json:"categories"`
	ClubCardIDs  []NamedRef `json:"clubCardIds"`
	EventGenre   []NamedRef `json:"eventGenre"`
}
