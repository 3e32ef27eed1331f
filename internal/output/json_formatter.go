package output

import (
	json "github.com/goccy/go-json"

	"github.com/rgehrsitz/firecalc/internal/domain"
)

// JSONFormatter renders results as JSON
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	return marshal(result, j.Pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
