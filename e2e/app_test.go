package e2e

import (
	"net/http"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// E2ETestSuite drives the running server over HTTP through playwright's
// API request context
type E2ETestSuite struct {
	suite.Suite
	pw    *playwright.Playwright
	admin playwright.APIRequestContext
	anon  playwright.APIRequestContext
}

// SetupSuite runs once before all tests
func (suite *E2ETestSuite) SetupSuite() {
	pw, err := playwright.Run()
	require.NoError(suite.T(), err, "could not launch playwright")
	suite.pw = pw

	suite.admin, err = pw.Request.NewContext(playwright.APIRequestNewContextOptions{
		BaseURL: playwright.String(appURL),
		HttpCredentials: &playwright.HttpCredentials{
			Username: "testuser",
			Password: "testpass123",
		},
	})
	require.NoError(suite.T(), err, "could not create admin request context")

	suite.anon, err = pw.Request.NewContext(playwright.APIRequestNewContextOptions{
		BaseURL: playwright.String(appURL),
	})
	require.NoError(suite.T(), err, "could not create anonymous request context")
}

// TearDownSuite runs once after all tests
func (suite *E2ETestSuite) TearDownSuite() {
	if suite.admin != nil {
		suite.admin.Dispose()
	}
	if suite.anon != nil {
		suite.anon.Dispose()
	}
	if suite.pw != nil {
		suite.pw.Stop()
	}
}

func (suite *E2ETestSuite) TestAnonymousRequestsAreRejected() {
	resp, err := suite.anon.Get("/api/balance")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusUnauthorized, resp.Status())
}

func (suite *E2ETestSuite) TestRecordAndReport() {
	for _, income := range []map[string]any{
		{"amount": 100, "date": "2024-01-15", "source": "Salary"},
		{"amount": 50, "date": "2024-01-20", "source": "Bonus"},
		{"amount": 25, "date": "2024-03-01", "source": "Gift"},
	} {
		resp, err := suite.admin.Post("/api/income", playwright.APIRequestContextPostOptions{Data: income})
		require.NoError(suite.T(), err)
		require.Equal(suite.T(), http.StatusCreated, resp.Status())
	}

	resp, err := suite.admin.Post("/api/expenses", playwright.APIRequestContextPostOptions{
		Data: map[string]any{"amount": 0, "date": "2024-01-01", "category": "Food"},
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.Status())

	resp, err = suite.admin.Get("/api/reports/monthly/income?year=2024")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), http.StatusOK, resp.Status())

	var report struct {
		Totals []struct {
			Period string  `json:"period"`
			Total  float64 `json:"total"`
		} `json:"totals"`
	}
	require.NoError(suite.T(), resp.JSON(&report))
	require.Len(suite.T(), report.Totals, 2)
	assert.Equal(suite.T(), "01", report.Totals[0].Period)
	assert.Equal(suite.T(), 150.0, report.Totals[0].Total)
	assert.Equal(suite.T(), "03", report.Totals[1].Period)
	assert.Equal(suite.T(), 25.0, report.Totals[1].Total)
}

func (suite *E2ETestSuite) TestExportCSV() {
	resp, err := suite.admin.Get("/api/export/expenses")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), http.StatusOK, resp.Status())

	body, err := resp.Text()
	require.NoError(suite.T(), err)
	assert.True(suite.T(), strings.HasPrefix(body, "ID,Amount,Date,Category,Description\n"))
}

func TestE2E(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}
