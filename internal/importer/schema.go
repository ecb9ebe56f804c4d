// Package importer loads course catalogs from the semicolon-separated
// CSV exports the training provider hands out. It is an adapter around
// the core: the planner only ever sees the normalized offerings.
package importer

// CatalogRecord is one CSV row of the catalog export. Column headers
// are the German ones used by the provider; Klassen and Belegt are
// optional and default to 1 and 0.
type CatalogRecord struct {
	Code       string `csv:"Kuerzel"`
	Name       string `csv:"Modulname"`
	StartDate  string `csv:"Startdatum"`
	EndDate    string `csv:"Enddatum"`
	ClassCount string `csv:"Klassen,omitempty"`
	Enrolled   string `csv:"Belegt,omitempty"`
}
