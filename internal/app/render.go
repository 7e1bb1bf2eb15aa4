package app

import (
	"encoding/json"
	"io"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Descriptor formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// WriteDistribution writes the descriptor to w in the given format.
func WriteDistribution(w io.Writer, dist domain.Distribution, format string) error {
	switch format {
	case "", FormatJSON:
		data, err := json.MarshalIndent(dist, "", "  ")
		if err != nil {
			return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dist); err != nil {
			return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
		return nil
	default:
		return zerr.With(domain.ErrInvalidOutputFormat, "format", format)
	}
}
