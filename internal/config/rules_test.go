package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apt-report/internal/config"
)

const rulesTOML = `
sheets = ["Riverside", "Продажі змішані"]
excluded_id_markers = ["TEST"]
mixed_sheet_keywords = ["змішані"]

[[id_to_complex]]
id_contains = "RS-"
complex = "Riverside"

[[sheet_to_complex]]
sheet_contains = "Phase1"
complex = "ComplexA Phase 1"
`

func TestParseRules(t *testing.T) {
	r, err := config.ParseRules([]byte(rulesTOML))
	require.NoError(t, err)

	assert.Equal(t, []string{"Riverside", "Продажі змішані"}, r.Sheets)
	assert.Equal(t, []string{"TEST"}, r.ExcludedIDMarkers)
	assert.Equal(t, []string{"змішані"}, r.MixedSheetKeywords)
	require.Len(t, r.IDToComplex, 1)
	assert.Equal(t, config.IDRule{IDContains: "RS-", Complex: "Riverside"}, r.IDToComplex[0])
	require.Len(t, r.SheetToComplex, 1)
	assert.Equal(t, config.SheetRule{SheetContains: "Phase1", Complex: "ComplexA Phase 1"}, r.SheetToComplex[0])
	assert.NoError(t, r.Validate())
}

func TestParseRulesBadTOML(t *testing.T) {
	_, err := config.ParseRules([]byte("sheets = ["))
	assert.Error(t, err)
}

func TestValidateEmptySheets(t *testing.T) {
	assert.ErrorIs(t, config.Rules{}.Validate(), config.ErrNoSheets)
}

func TestDefaultRules(t *testing.T) {
	r := config.DefaultRules()

	// заготовка без листов: прогон на ней не стартует
	assert.ErrorIs(t, r.Validate(), config.ErrNoSheets)
	assert.NotNil(t, r.Sheets)
	assert.NotNil(t, r.ExcludedIDMarkers)
	assert.NotNil(t, r.MixedSheetKeywords)
	assert.NotNil(t, r.IDToComplex)
	assert.NotNil(t, r.SheetToComplex)
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte(rulesTOML), 0o644))

	r, err := config.LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Riverside", "Продажі змішані"}, r.Sheets)

	_, err = config.LoadRules(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
