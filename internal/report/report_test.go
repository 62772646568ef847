package report

import (
	"bytes"
	"moped-route-service/internal/domain"
	"moped-route-service/internal/platform/locale"
	"moped-route-service/internal/services"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestPrintPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	route, err := domain.ParseRoute("S,F,SF,FF", "2,4,3")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, services.CalculateRoute(route), locale.Printer(language.English)))

	want := `Total Time: 37 minutes

Swapper: 8 minutes
  - Moped 1: Performs 1 task(s) (1 minutes)
  - Travel from moped 1 to moped 2 (2 minutes)
  - Travel from moped 2 to moped 3 (4 minutes)
  - Moped 3: Performs 1 task(s) (1 minutes)

Fixer: 29 minutes
  - Travel from moped 1 to moped 2 (2 minutes)
  - Moped 2: Performs 1 task(s) (5 minutes)
  - Travel from moped 2 to moped 3 (4 minutes)
  - Moped 3: Performs 1 task(s) (5 minutes)
  - Travel from moped 3 to moped 4 (3 minutes)
  - Moped 4: Performs 2 task(s) (10 minutes)

Mechanic: 0 minutes
  - No tasks assigned.
`
	assert.Equal(t, want, buf.String())
}
