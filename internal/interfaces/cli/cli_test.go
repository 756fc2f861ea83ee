package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster/internal/application/analytics"
	"github.com/jhoicas/stockmaster/internal/application/controller"
	"github.com/jhoicas/stockmaster/internal/application/dto"
	"github.com/jhoicas/stockmaster/internal/application/inventory"
	"github.com/jhoicas/stockmaster/internal/domain"
	"github.com/jhoicas/stockmaster/internal/domain/entity"
	"github.com/jhoicas/stockmaster/internal/infrastructure/kvstore"
	"github.com/jhoicas/stockmaster/internal/infrastructure/pdf"
	"github.com/jhoicas/stockmaster/internal/infrastructure/persistence"
	"github.com/jhoicas/stockmaster/internal/interfaces/cli"
	"github.com/jhoicas/stockmaster/pkg/logger"
)

type fixture struct {
	t          *testing.T
	fs         afero.Fs
	ctrl       *controller.Controller
	valuations analytics.ValuationStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fs := afero.NewMemMapFs()
	ctrl, err := controller.New(
		context.Background(),
		inventory.NewEngine(),
		persistence.NewStateRepository(kvstore.NewFileStore(fs, "/data"), ""),
		persistence.JSONProjectCodec{},
		logger.Nop(),
	)
	require.NoError(t, err)
	return &fixture{t: t, fs: fs, ctrl: ctrl}
}

// run ejecuta el CLI con un árbol de comandos nuevo por invocación.
func (f *fixture) run(args ...string) (string, error) {
	f.t.Helper()
	root := cli.NewRootCommand(cli.Deps{
		Controller: f.ctrl,
		Reports:    analytics.NewReportUseCase(pdf.NewMarotoReportGenerator()),
		Dashboard:  analytics.NewDashboardUseCase(nil),
		Valuations: f.valuations,
		Files:      f.fs,
		OutDir:     "/out",
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (f *fixture) mustRun(args ...string) string {
	f.t.Helper()
	out, err := f.run(args...)
	require.NoError(f.t, err, out)
	return out
}

func (f *fixture) active() entity.Project {
	f.t.Helper()
	p, ok := f.ctrl.ActiveProject()
	require.True(f.t, ok)
	return p
}

func TestProjectCreateYList(t *testing.T) {
	f := newFixture(t)

	out := f.mustRun("project", "create", "Shop A")
	assert.Contains(t, out, "proyecto Shop A creado")

	f.mustRun("project", "create")
	p := f.active()
	assert.Equal(t, entity.DefaultProjectName, p.Name)

	out = f.mustRun("project", "list")
	assert.Contains(t, out, "Shop A")
	assert.Contains(t, out, "* ")
	assert.Contains(t, out, p.ID)
}

func TestProjectRenameSelectDelete(t *testing.T) {
	f := newFixture(t)
	f.mustRun("project", "create", "A")
	a := f.active()
	f.mustRun("project", "create", "B")

	f.mustRun("project", "select", a.ID)
	assert.Equal(t, a.ID, f.active().ID)

	f.mustRun("project", "rename", a.ID, "Renamed")
	assert.Equal(t, "Renamed", f.active().Name)

	f.mustRun("project", "delete", a.ID)
	_, ok := f.ctrl.ActiveProject()
	assert.False(t, ok)
	assert.Len(t, f.ctrl.State().Projects, 1)
}

func TestProductFlujoCompleto(t *testing.T) {
	f := newFixture(t)
	f.mustRun("project", "create", "Shop A")

	out := f.mustRun("product", "add", "Widget", "--mrp", "100", "--stock", "10")
	assert.Contains(t, out, "producto Widget agregado")

	p := f.active()
	require.Len(t, p.Products, 1)
	id := p.Products[0].ID
	assert.Equal(t, 100.0, p.Products[0].MRP)
	assert.Equal(t, 10, p.Products[0].Stock)
	assert.Equal(t, entity.DefaultProductCategory, p.Products[0].Category)

	out = f.mustRun("stock", "adjust", id, "5")
	assert.Contains(t, out, "Widget: stock 15")

	out = f.mustRun("stock", "adjust", id, "-20")
	assert.Contains(t, out, "Widget: stock 0")

	p = f.active()
	require.Len(t, p.History, 2)
	assert.Equal(t, entity.StockLogTypeOUT, p.History[0].Type)
	assert.Equal(t, 20, p.History[0].Quantity)

	out = f.mustRun("summary")
	assert.Contains(t, out, "total value:   0.00")
	assert.Contains(t, out, "out of stock:  1")

	out = f.mustRun("history")
	assert.Contains(t, out, "-20")
	assert.Contains(t, out, "+5")
}

func TestProductAdd_CoercionDeEntradas(t *testing.T) {
	f := newFixture(t)
	f.mustRun("project", "create", "Shop")
	f.mustRun("product", "add", "Raro", "--mrp", "abc", "--stock=-3")

	prod := f.active().Products[0]
	assert.Equal(t, 0.0, prod.MRP)
	assert.Equal(t, 0, prod.Stock)
	assert.Equal(t, entity.DefaultProductImage, prod.Image)
}

func TestProductEdit_ConservaCamposNoIndicados(t *testing.T) {
	f := newFixture(t)
	f.mustRun("project", "create", "Shop")
	f.mustRun("product", "add", "Widget", "--mrp", "100", "--stock", "7")
	id := f.active().Products[0].ID

	f.mustRun("product", "edit", id, "--mrp", "120")
	prod := f.active().Products[0]
	assert.Equal(t, "Widget", prod.Title)
	assert.Equal(t, 120.0, prod.MRP)
	assert.Equal(t, 7, prod.Stock)

	f.mustRun("product", "edit", id, "--title", "Gadget")
	prod = f.active().Products[0]
	assert.Equal(t, "Gadget", prod.Title)
	assert.Equal(t, 120.0, prod.MRP)
}

func TestProductListYSearch(t *testing.T) {
	f := newFixture(t)
	f.mustRun("project", "create", "Shop")
	f.mustRun("product", "add", "Red Apple")
	f.mustRun("product", "add", "Banana")

	out := f.mustRun("product", "list", "--search", "APPLE")
	assert.Contains(t, out, "Red Apple")
	assert.NotContains(t, out, "Banana")

	out = f.mustRun("product", "list")
	assert.Contains(t, out, "Red Apple")
	assert.Contains(t, out, "Banana")
}

func TestProductDelete_HistorialMuestraUnknownProduct(t *testing.T) {
	f := newFixture(t)
	f.mustRun("project", "create", "Shop")
	f.mustRun("product", "add", "Widget", "--stock", "1")
	id := f.active().Products[0].ID
	f.mustRun("stock", "adjust", id, "2")
	f.mustRun("product", "delete", id)

	out := f.mustRun("history")
	assert.Contains(t, out, analytics.UnknownProductTitle)
}

func TestHistoryVacio(t *testing.T) {
	f := newFixture(t)
	f.mustRun("project", "create", "Shop")
	assert.Contains(t, f.mustRun("history"), "No stock movements yet")
}

func TestSinProyectoActivo(t *testing.T) {
	f := newFixture(t)
	_, err := f.run("product", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no hay proyecto activo")

	_, err = f.run("summary", "--project", "missing")
	require.Error(t, err)
}

func TestStockAdjust_DeltaInvalido(t *testing.T) {
	f := newFixture(t)
	f.mustRun("project", "create", "Shop")
	_, err := f.run("stock", "adjust", "x", "abc")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.run("stock", "adjust", "x", "99999999999999999999")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportImportRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.mustRun("project", "create", "My Shop")
	f.mustRun("product", "add", "Widget", "--mrp", "10", "--stock", "3")
	src := f.active()

	out := f.mustRun("export", src.ID)
	path := strings.TrimSpace(out)
	assert.Equal(t, "/out/My_Shop_stock_data.json", path)

	exists, err := afero.Exists(f.fs, path)
	require.NoError(t, err)
	require.True(t, exists)

	out = f.mustRun("import", path)
	assert.Contains(t, out, "proyecto My Shop importado")

	state := f.ctrl.State()
	require.Len(t, state.Projects, 2)
	imported := state.Projects[1]
	assert.NotEqual(t, src.ID, imported.ID)
	assert.Equal(t, src.Products, imported.Products)
	assert.Equal(t, src.ID, *state.ActiveProjectID)
}

func TestImport_ArchivoMalformado(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, afero.WriteFile(f.fs, "/in/bad.json", []byte("not json"), 0o644))

	_, err := f.run("import", "/in/bad.json")
	require.Error(t, err)
	assert.Empty(t, f.ctrl.State().Projects)

	_, err = f.run("import", "/in/missing.json")
	require.Error(t, err)
}

func TestExport_ProyectoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.run("export", "missing")
	require.Error(t, err)
}

func TestReport_GeneraPDF(t *testing.T) {
	f := newFixture(t)
	f.mustRun("project", "create", "Shop A")
	f.mustRun("product", "add", "Widget", "--mrp", "100", "--stock", "10")
	p := f.active()

	out := f.mustRun("report", p.ID, "--out", "/reports")
	path := strings.TrimSpace(out)
	assert.Equal(t, "/reports/Shop_A_stock_report.pdf", path)

	data, err := afero.ReadFile(f.fs, path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestDashboard_MovimientosDelDia(t *testing.T) {
	f := newFixture(t)
	f.mustRun("project", "create", "Shop")
	f.mustRun("product", "add", "Widget", "--stock", "10")
	id := f.active().Products[0].ID
	f.mustRun("stock", "adjust", id, "4")
	f.mustRun("stock", "adjust", id, "-3")

	out := f.mustRun("dashboard")
	assert.Contains(t, out, "today:  +4 / -3")
	assert.Contains(t, out, "Widget")
}

type stubValuations struct {
	projectID string
	limit     int
	points    []dto.ValuationPoint
}

func (s *stubValuations) RecordValuations(context.Context, []dto.ValuationPoint) error { return nil }

func (s *stubValuations) ValuationHistory(_ context.Context, projectID string, limit int) ([]dto.ValuationPoint, error) {
	s.projectID, s.limit = projectID, limit
	return s.points, nil
}

func TestValuations_SinDriverPostgres(t *testing.T) {
	f := newFixture(t)
	f.mustRun("project", "create", "Shop")
	_, err := f.run("valuations")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValuations_MuestraHistorial(t *testing.T) {
	f := newFixture(t)
	stub := &stubValuations{points: []dto.ValuationPoint{
		{TotalValue: decimal.RequireFromString("1234.5"), OutOfStockCount: 1, RecordedAt: time.Now()},
	}}
	f.valuations = stub
	f.mustRun("project", "create", "Shop")

	out := f.mustRun("valuations", "--limit", "3")
	assert.Contains(t, out, "1234.50")
	assert.Equal(t, f.active().ID, stub.projectID)
	assert.Equal(t, 3, stub.limit)
}
