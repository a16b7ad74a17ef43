package reporting

import (
	"encoding/xml"
	"os"
	"time"

	"github.com/deploykit/shipcheck/internal/checks"
	"github.com/deploykit/shipcheck/internal/scoring"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one audit run.
type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Time      float64         `xml:"time,attr"`
	Timestamp string          `xml:"timestamp,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one check.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
}

// JUnitFailure represents a failed check.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
}

// ConvertToJUnit converts audit results to JUnit XML format. root names the
// suite so CI UIs can distinguish audits of different project trees.
func ConvertToJUnit(root string, results []*checks.CheckResult, report *scoring.Report) *JUnitTestSuites {
	var total time.Duration
	suite := JUnitTestSuite{
		Name:      root,
		Tests:     report.Total(),
		Failures:  report.Failed,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	for _, r := range results {
		total += r.Duration
		tc := JUnitTestCase{
			Name:      r.Name,
			Classname: string(r.Category),
			Time:      r.Duration.Seconds(),
		}
		if !r.Passed {
			tc.Failure = &JUnitFailure{
				Message: r.Summary,
				Type:    "CheckFailure",
			}
		}
		suite.TestCases = append(suite.TestCases, tc)
	}
	suite.Time = total.Seconds()

	return &JUnitTestSuites{
		Tests:      report.Total(),
		Failures:   report.Failed,
		Time:       total.Seconds(),
		TestSuites: []JUnitTestSuite{suite},
	}
}

// WriteJUnitXML writes JUnit XML to the specified file path.
func WriteJUnitXML(path, root string, results []*checks.CheckResult, report *scoring.Report) error {
	suites := ConvertToJUnit(root, results, report)

	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return err
	}

	output := append([]byte(xml.Header), data...)
	return os.WriteFile(path, output, 0644)
}
