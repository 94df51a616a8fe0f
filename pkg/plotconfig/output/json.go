// Package output serializes assembled plot configurations.
package output

import (
	"encoding/json"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
)

// ToJSON serializes a configuration to JSON. Callback fields (tick
// formatters, cursor highlight functions) are not serialized.
func ToJSON(cfg *models.Config, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(cfg, "", "  ")
	}
	return json.Marshal(cfg)
}
