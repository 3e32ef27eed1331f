package compare

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// JSONFormatter renders a ComparisonSet as JSON. Pretty indents by two spaces.
type JSONFormatter struct {
	Pretty bool
}

func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	if compSet == nil || compSet.BaseResult == nil {
		return "", fmt.Errorf("no comparison to format")
	}
	encode := json.Marshal
	if jf.Pretty {
		encode = func(v interface{}) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	}
	data, err := encode(compSet)
	if err != nil {
		return "", fmt.Errorf("encode comparison: %w", err)
	}
	return string(data), nil
}
