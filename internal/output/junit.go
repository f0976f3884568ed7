package output

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/porutham-dev/porutham/internal/domain/match"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

// JUnitFormatter renders the ten porutham checks as a JUnit test suite, one
// testcase per check, so reports drop into CI dashboards.
type JUnitFormatter struct {
	writer io.Writer
}

// NewJUnitFormatter creates a JUnit formatter.
func NewJUnitFormatter(w io.Writer) *JUnitFormatter {
	return &JUnitFormatter{writer: w}
}

// JUnit XML structures.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Name       string           `xml:"name,attr"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Skipped   int             `xml:"skipped,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
}

type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// Format writes the report as JUnit XML. Bad and critical poruthams map to
// failures, average ones to skipped.
func (f *JUnitFormatter) Format(report *match.MatchReport) error {
	suiteName := fmt.Sprintf("%s & %s", report.Girl.Name, report.Boy.Name)
	suite := JUnitTestSuite{
		Name:     suiteName,
		Tests:    len(report.Poruthams),
		Failures: report.Summary.Bad + report.Summary.Critical,
		Skipped:  report.Summary.Average,
	}

	for _, p := range report.Poruthams {
		tc := JUnitTestCase{
			Name:      p.Name,
			ClassName: "porutham",
		}
		switch p.Status {
		case values.StatusBad, values.StatusCritical:
			tc.Failure = &JUnitFailure{
				Message: string(p.Status),
				Content: p.Explanation,
			}
		case values.StatusAverage:
			tc.Skipped = &JUnitSkipped{Message: p.Explanation}
		}
		suite.TestCases = append(suite.TestCases, tc)
	}

	suites := JUnitTestSuites{
		Name:       suiteName,
		Tests:      suite.Tests,
		Failures:   suite.Failures,
		TestSuites: []JUnitTestSuite{suite},
	}

	if _, err := f.writer.Write([]byte(xml.Header)); err != nil {
		return err
	}
	enc := xml.NewEncoder(f.writer)
	enc.Indent("", "  ")
	if err := enc.Encode(suites); err != nil {
		return err
	}
	_, err := f.writer.Write([]byte("\n"))
	return err
}
