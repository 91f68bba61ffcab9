package problems

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"tutoragents/models"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

// Load reads and validates the problem document at path. The returned value
// is never written back and is safe to share.
func Load(path string) (*models.ProblemDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &DocumentNotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("failed to read problem document %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse validates raw JSON against the problem schema and decodes it. name is
// only used in error messages.
func Parse(name string, data []byte) (*models.ProblemDocument, error) {
	expr, err := cuejson.Extract(name, data)
	if err != nil {
		return nil, &MalformedDocumentError{Path: name, Reason: "invalid JSON", Err: err}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(problemSchema, cue.Filename("problem.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile problem schema: %w", err)
	}

	value := schema.Unify(ctx.BuildExpr(expr))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, &MalformedDocumentError{Path: name, Reason: cueerrors.Details(err, nil), Err: err}
	}

	var doc models.ProblemDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDocumentError{Path: name, Reason: "decode", Err: err}
	}
	return &doc, nil
}
