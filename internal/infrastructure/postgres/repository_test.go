package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-web/internal/domain/entity"
)

// fakeRows filas en memoria con la forma que devuelve el LEFT JOIN.
type fakeRows struct {
	data [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) { return r.data[r.pos-1], nil }

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(r.data[r.pos-1], dest)
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

func scanInto(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d columnas, %d destinos", len(values), len(dest))
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *int64:
			*d = v.(int64)
		case *string:
			*d = v.(string)
		case **string:
			if v == nil {
				*d = nil
				continue
			}
			s := v.(string)
			*d = &s
		default:
			return fmt.Errorf("scan: destino %T no soportado", dest[i])
		}
	}
	return nil
}

// fakeQuerier devuelve siempre las mismas filas y registra los argumentos recibidos.
type fakeQuerier struct {
	rows     *fakeRows
	row      fakeRow
	queryErr error
	args     []any
}

func (q *fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (q *fakeQuerier) Query(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
	q.args = args
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return q.row
}

func TestListByCategory_AgrupaTraduccionesPorProducto(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{
		{int64(1), int64(3), "images/a.svg", "en", "Separator", "Plastic separator", "L: 40mm"},
		{int64(1), int64(3), "images/a.svg", "pl", "Separator PL", "Separator plastikowy", "L: 40mm"},
		{int64(2), int64(3), "images/b.svg", nil, nil, nil, nil},
		{int64(5), int64(3), "", "en", "Clip", nil, nil},
	}}}

	products, err := NewProductRepository(q).ListByCategory(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(3)}, q.args)
	require.Len(t, products, 3)

	first := products[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(3), first.CategoryID)
	assert.Equal(t, "images/a.svg", first.Image)
	assert.Equal(t, entity.Translations[entity.ProductTranslation]{
		"en": {Lang: "en", Name: "Separator", Description: "Plastic separator", Specs: "L: 40mm"},
		"pl": {Lang: "pl", Name: "Separator PL", Description: "Separator plastikowy", Specs: "L: 40mm"},
	}, first.Translations)

	// sin traducciones: mapa vacío, no nil
	assert.Equal(t, int64(2), products[1].ID)
	assert.NotNil(t, products[1].Translations)
	assert.Empty(t, products[1].Translations)

	assert.Equal(t, int64(5), products[2].ID)
	assert.Equal(t, entity.ProductTranslation{Lang: "en", Name: "Clip"}, products[2].Translations["en"])
}

func TestListByCategory_SinFilas(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{}}

	products, err := NewProductRepository(q).ListByCategory(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListByCategory_Errores(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewProductRepository(&fakeQuerier{queryErr: boom}).ListByCategory(context.Background(), 1)
	assert.ErrorIs(t, err, boom)

	q := &fakeQuerier{rows: &fakeRows{err: boom}}
	_, err = NewProductRepository(q).ListByCategory(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestCategoryList_AgrupaTraducciones(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{
		{int64(1), "en", "Cable separators"},
		{int64(1), "pl", "Separatory kabli"},
		{int64(2), nil, nil},
	}}}

	categories, err := NewCategoryRepository(q).List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Equal(t, int64(1), categories[0].ID)
	assert.Equal(t, "Cable separators", categories[0].Translations["en"].Name)
	assert.Equal(t, "Separatory kabli", categories[0].Translations["pl"].Name)
	assert.Len(t, categories[0].Translations, 2)

	assert.Equal(t, int64(2), categories[1].ID)
	assert.Empty(t, categories[1].Translations)
}

func TestCategoryGetByID_NoExiste(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}

	c, err := NewCategoryRepository(q).GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCategoryGetByID_ConTraducciones(t *testing.T) {
	q := &fakeQuerier{
		row: fakeRow{values: []any{int64(7)}},
		rows: &fakeRows{data: [][]any{
			{"en", "Clips"},
			{"pl", "Klipsy"},
		}},
	}

	c, err := NewCategoryRepository(q).GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, entity.Translations[entity.CategoryTranslation]{
		"en": {Lang: "en", Name: "Clips"},
		"pl": {Lang: "pl", Name: "Klipsy"},
	}, c.Translations)
}
