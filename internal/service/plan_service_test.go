package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoester/paideia/internal/contract"
	"github.com/dkoester/paideia/internal/rules"
	"github.com/dkoester/paideia/internal/testutil"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kursdaten.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const serviceCatalog = `Kuerzel;Modulname;Startdatum;Enddatum;Klassen;Belegt
PSM1;Professional Scrum Master I;09.02.2026;13.02.2026;1;0
PSM2;Professional Scrum Master II;16.02.2026;20.02.2026;1;0
PSM2;Professional Scrum Master II;02.03.2026;06.03.2026;1;0
AKI;Arbeiten mit KI;23.02.2026;27.02.2026;1;0
`

func defaultRulesService(t *testing.T) PlanService {
	t.Helper()
	rs, err := rules.LoadRuleset("")
	require.NoError(t, err)
	return NewPlanService(rs)
}

func TestBuildPlan_Success(t *testing.T) {
	svc := defaultRulesService(t)
	resp, err := svc.BuildPlan(context.Background(), contract.PlanRequest{
		CatalogPath:  writeCatalog(t, serviceCatalog),
		Modules:      []string{"PSM1", "PSM2"},
		DesiredStart: testutil.Day(2026, 2, 9),
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.Len(t, resp.Blocks, 2)
	assert.Equal(t, "PSM1", resp.Blocks[0].ModuleCode)
	assert.Equal(t, "PSM2", resp.Blocks[1].ModuleCode)
	assert.Equal(t, "PSM1 -> PSM2", resp.CompactOrdering)
	assert.Equal(t, 0, resp.GapEvents)
	assert.Equal(t, 0, resp.CategorySwitches)
	assert.Equal(t, 1, resp.OrderingsSimulated, "PSM2 must follow PSM1")
}

func TestBuildPlan_MissingPrerequisiteBlocksUnlessIgnored(t *testing.T) {
	svc := defaultRulesService(t)
	req := contract.PlanRequest{
		CatalogPath:  writeCatalog(t, serviceCatalog),
		Modules:      []string{"PSM2"},
		DesiredStart: testutil.Day(2026, 2, 9),
	}

	_, err := svc.BuildPlan(context.Background(), req)
	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, contract.ErrMissingPrerequisite, planErr.Code)
	assert.Contains(t, planErr.Message, `"PSM1"`)

	req.IgnorePrerequisites = true
	resp, err := svc.BuildPlan(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestBuildPlan_GlobalInfeasibilityIsAResponse(t *testing.T) {
	svc := defaultRulesService(t)
	resp, err := svc.BuildPlan(context.Background(), contract.PlanRequest{
		CatalogPath:  writeCatalog(t, serviceCatalog),
		Modules:      []string{"PSM1", "AKI"},
		DesiredStart: testutil.Day(2026, 6, 1), // past every offering
	})
	require.NoError(t, err, "infeasibility is reported in the response, not as an error")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.FailureReason, "no offering")
	assert.Empty(t, resp.Blocks, "no partial plan is returned")
}

func TestBuildPlan_BadRequest(t *testing.T) {
	svc := defaultRulesService(t)
	_, err := svc.BuildPlan(context.Background(), contract.PlanRequest{
		CatalogPath:  writeCatalog(t, serviceCatalog),
		DesiredStart: testutil.Day(2026, 2, 9),
	})
	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, contract.ErrBadRequest, planErr.Code)
}

func TestBuildPlan_MissingCatalogFile(t *testing.T) {
	svc := defaultRulesService(t)
	_, err := svc.BuildPlan(context.Background(), contract.PlanRequest{
		CatalogPath:  filepath.Join(t.TempDir(), "nope.csv"),
		Modules:      []string{"PSM1"},
		DesiredStart: testutil.Day(2026, 2, 9),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCheckPrerequisites(t *testing.T) {
	svc := defaultRulesService(t)
	missing := svc.CheckPrerequisites(context.Background(), []string{"PSM2", "AKI-EX"})
	require.Len(t, missing, 2)
	assert.Empty(t, svc.CheckPrerequisites(context.Background(), []string{"PSM1", "PSM2"}))
}
