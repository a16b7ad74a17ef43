package checks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogueShape(t *testing.T) {
	specs := DefaultCatalogue()
	require.Len(t, specs, 19)

	seen := make(map[string]bool)
	for _, s := range specs {
		require.NotEmpty(t, s.Name)
		require.False(t, seen[s.Name], "duplicate check name %s", s.Name)
		seen[s.Name] = true
	}

	// Registration order starts with layout and ends with CI.
	require.Equal(t, CategoryLayout, specs[0].Category)
	require.Equal(t, "ci/workflows", specs[len(specs)-1].Name)
}

func TestBuildDefaultCatalogue(t *testing.T) {
	checkers, err := Build(DefaultCatalogue())
	require.NoError(t, err)
	require.Len(t, checkers, 19)

	// Build preserves registration order.
	specs := DefaultCatalogue()
	for i, c := range checkers {
		require.Equal(t, specs[i].Name, c.Name())
	}
}

func TestCreateInvalidKind(t *testing.T) {
	_, err := Create(CheckSpec{Name: "x", Kind: Kind("bogus")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bogus")
}

func TestCreateMissingParams(t *testing.T) {
	tests := []struct {
		name string
		spec CheckSpec
	}{
		{name: "file without path", spec: CheckSpec{Name: "f", Kind: KindFile}},
		{name: "syntax without path", spec: CheckSpec{Name: "s", Kind: KindYAMLSyntax}},
		{name: "subsystem without dir", spec: CheckSpec{Name: "d", Kind: KindSubsystem}},
		{name: "compose without path", spec: CheckSpec{Name: "c", Kind: KindComposeServices}},
		{name: "coverage without files", spec: CheckSpec{Name: "v", Kind: KindDocCoverage}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Create(tt.spec)
			require.Error(t, err)
		})
	}
}

func TestCreateDecodesSubsystemParams(t *testing.T) {
	c, err := Create(CheckSpec{
		Name:     "custom/certs",
		Category: CategorySubsystem,
		Kind:     KindSubsystem,
		Params: map[string]any{
			"dir":        "certs",
			"extensions": []any{".pem", ".crt"},
			"label":      "certificates",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "custom/certs", c.Name())
	require.Equal(t, CategorySubsystem, c.Category())
}

func TestBuildRejectsDuplicateNames(t *testing.T) {
	specs := []CheckSpec{
		{Name: "layout/a", Kind: KindFile, Params: map[string]any{"path": "a"}},
		{Name: "layout/a", Kind: KindFile, Params: map[string]any{"path": "b"}},
	}
	_, err := Build(specs)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}

func TestBuildRejectsUnnamedEntry(t *testing.T) {
	_, err := Build([]CheckSpec{{Kind: KindFile, Params: map[string]any{"path": "a"}}})
	require.Error(t, err)
}
