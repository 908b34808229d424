package instance

import (
	"io"
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/ovidiu-ionescu/simple-simplex-lib/model"
)

// Reader reads a problem file holding a pre-built tableau. YAML and JSON
// are both accepted. YAML is read with 1.1 rules, so variable names such as
// y, n, on or off must be quoted or they decode as booleans.
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

// ConstructProblemFromFile returns the validated *Problem stored in the file
func (r *Reader) ConstructProblemFromFile() (*model.Problem, error) {
	f, err := os.Open(r.filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening problem file")
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", r.filename)
	}
	return p, nil
}

// Decode reads a problem document from in and validates it.
func Decode(in io.Reader) (*model.Problem, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	p := &model.Problem{}
	if err := yaml.Unmarshal(raw, p); err != nil {
		return nil, errors.Wrap(err, "decoding problem")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
