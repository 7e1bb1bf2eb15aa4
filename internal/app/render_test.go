package app_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqs/internal/app"
	"go.trai.ch/reqs/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func sampleDistribution() domain.Distribution {
	return app.NewDistribution(
		domain.Project{Name: "Test_repo", Version: "0.0.1", Author: "ola", AuthorEmail: "ola@example.com"},
		[]string{"src", "src.components"},
		[]domain.Requirement{"pandas ", "numpy ", "seaborn"},
	)
}

func TestWriteDistribution_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, app.WriteDistribution(buf, sampleDistribution(), app.FormatJSON))

	g := goldie.New(t)
	g.Assert(t, "distribution_json", buf.Bytes())
}

func TestWriteDistribution_DefaultIsJSON(t *testing.T) {
	a := &bytes.Buffer{}
	b := &bytes.Buffer{}
	require.NoError(t, app.WriteDistribution(a, sampleDistribution(), ""))
	require.NoError(t, app.WriteDistribution(b, sampleDistribution(), app.FormatJSON))
	assert.Equal(t, b.String(), a.String())
}

func TestWriteDistribution_YAML(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, app.WriteDistribution(buf, sampleDistribution(), app.FormatYAML))

	assert.Contains(t, buf.String(), "install_requires:")

	var got domain.Distribution
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleDistribution(), got)
}

func TestWriteDistribution_InvalidFormat(t *testing.T) {
	err := app.WriteDistribution(&bytes.Buffer{}, sampleDistribution(), "toml")
	require.ErrorContains(t, err, domain.ErrInvalidOutputFormat.Error())
}
