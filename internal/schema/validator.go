// Package schema validates listing documents against an embedded CUE schema.
// Schema issues report shape problems (wrong types, unknown keys) and never
// affect the quality score.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/dotcommander/listinglint/internal/types"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Validator handles CUE validation of listing documents.
type Validator struct {
	ctx     *cue.Context
	listing cue.Value
	loaded  bool
}

// NewValidator creates a Validator with the embedded listing schema loaded.
func NewValidator() (*Validator, error) {
	v := &Validator{ctx: cuecontext.New()}

	content, err := schemaFS.ReadFile(filepath.Join("schemas", "listing.cue"))
	if err != nil {
		return nil, fmt.Errorf("error reading embedded schema: %w", err)
	}

	inst := v.ctx.CompileBytes(content, cue.Filename("listing.cue"))
	if err := inst.Err(); err != nil {
		return nil, fmt.Errorf("error compiling listing schema: %w", err)
	}

	def := inst.LookupPath(cue.ParsePath("#Listing"))
	if !def.Exists() {
		return nil, fmt.Errorf("listing schema has no #Listing definition")
	}

	v.listing = def
	v.loaded = true
	return v, nil
}

// ValidateListing checks decoded listing data against the schema. A nil
// result means the document conforms.
func (v *Validator) ValidateListing(data map[string]interface{}) []types.Issue {
	if !v.loaded {
		return nil
	}

	dataValue := v.ctx.Encode(data)
	if err := dataValue.Err(); err != nil {
		return []types.Issue{schemaIssue(err)}
	}

	unified := v.listing.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return []types.Issue{schemaIssue(err)}
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return []types.Issue{schemaIssue(err)}
	}

	return nil
}

func schemaIssue(err error) types.Issue {
	return types.Issue{
		Severity: types.SeverityError,
		Area:     types.AreaListing,
		Message:  fmt.Sprintf("Schema validation failed: %v", err),
	}
}
