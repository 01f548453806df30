// Package benchmark holds document builders and comparison benchmarks for
// njson5 against other JSON parsers.
package benchmark

import (
	"fmt"

	"github.com/Jeffail/gabs/v2"
	"github.com/tidwall/sjson"
)

// SmallJSON is a strict-JSON document every parser under test accepts.
const SmallJSON = `{"name":"config","port":8080,"debug":true,"ratio":0.75}`

// SmallJSON5 exercises the lenient syntax only njson5 accepts.
const SmallJSON5 = `{
	// service block
	name: 'config',
	port: 0x1F90,
	debug: true,
	ratio: .75, /* unit interval */
}`

// BuildUserDoc assembles a strict-JSON document of n user records with sjson
// and attaches a gabs-built metadata object.
func BuildUserDoc(n int) string {
	doc := `{}`
	for i := 0; i < n; i++ {
		doc, _ = sjson.Set(doc, fmt.Sprintf("users.%d.id", i), i)
		doc, _ = sjson.Set(doc, fmt.Sprintf("users.%d.name", i), fmt.Sprintf("User %d", i))
		doc, _ = sjson.Set(doc, fmt.Sprintf("users.%d.active", i), i%2 == 0)
		doc, _ = sjson.Set(doc, fmt.Sprintf("users.%d.score", i), float64(i)*1.5)
		doc, _ = sjson.Set(doc, fmt.Sprintf("users.%d.tags.0", i), fmt.Sprintf("tag%d", i))
	}

	meta := gabs.New()
	meta.Set(n, "count")
	meta.Set("2025-09-14", "generated")
	meta.Set("benchmark", "source")
	doc, _ = sjson.SetRaw(doc, "meta", meta.String())

	return doc
}
