// Package seed embeds the static shop catalog so it ships inside the binary.
// The catalog is decoded once at startup by repo.LoadCatalog.
package seed

import _ "embed"

// Regina holds the raw YAML for the Regina, SK city and its shops,
// embedded at compile time. Shop order in the file is the curated catalog order.
//
//go:embed regina.yaml
var Regina []byte
