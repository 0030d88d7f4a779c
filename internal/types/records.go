package types

// PackageRecord describes one package row from winget's table output.
//
// Every field is a free-form display string taken verbatim from the table;
// winget truncates long values and localizes headers, so none of these are
// guaranteed to be stable identifiers. A column winget did not print is the
// empty string. Records are never mutated after construction.
type PackageRecord struct {
	Name      string
	ID        string
	Version   string
	Available string
	Source    string
}

// SourceRecord describes one configured winget source as reported by
// `winget source export`. The JSON tags match the field names winget emits.
type SourceRecord struct {
	Name       string `json:"Name"`
	Argument   string `json:"Arg"`
	Data       string `json:"Data"`
	Identifier string `json:"Identifier"`
	Type       string `json:"Type"`
}
