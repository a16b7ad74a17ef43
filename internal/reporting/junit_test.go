package reporting

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/deploykit/shipcheck/internal/checks"
	"github.com/deploykit/shipcheck/internal/scoring"
)

func TestConvertToJUnit(t *testing.T) {
	results := []*checks.CheckResult{
		{Name: "layout/README.md", Category: checks.CategoryLayout, Passed: true, Summary: "README.md present", Duration: 2 * time.Millisecond},
		{Name: "layout/config.cfg", Category: checks.CategoryLayout, Passed: false, Summary: "Missing file: config.cfg", Duration: time.Millisecond},
	}
	report := scoring.Aggregate(results)

	suites := ConvertToJUnit("/srv/project", results, report)
	require.Equal(t, 2, suites.Tests)
	require.Equal(t, 1, suites.Failures)
	require.Len(t, suites.TestSuites, 1)

	suite := suites.TestSuites[0]
	require.Equal(t, "/srv/project", suite.Name)
	require.Len(t, suite.TestCases, 2)

	require.Nil(t, suite.TestCases[0].Failure)
	require.NotNil(t, suite.TestCases[1].Failure)
	require.Equal(t, "Missing file: config.cfg", suite.TestCases[1].Failure.Message)
	require.Equal(t, "layout", suite.TestCases[1].Classname)
}

func TestWriteJUnitXML(t *testing.T) {
	results := []*checks.CheckResult{
		{Name: "ci/workflows", Category: checks.CategoryCI, Passed: false, Summary: ".github/workflows directory missing"},
	}
	report := scoring.Aggregate(results)

	path := filepath.Join(t.TempDir(), "junit.xml")
	require.NoError(t, WriteJUnitXML(path, "/srv/project", results, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed JUnitTestSuites
	require.NoError(t, xml.Unmarshal(data, &parsed))
	require.Equal(t, 1, parsed.Failures)
	require.Equal(t, "ci/workflows", parsed.TestSuites[0].TestCases[0].Name)
}
