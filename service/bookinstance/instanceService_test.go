package instancesvc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/model"
	instancesvc "locallibrary/service/bookinstance"
	"locallibrary/util/errs"
	"locallibrary/util/memstore"
)

func setup(t *testing.T) (*memstore.Store, instancesvc.Service, model.Book) {
	t.Helper()
	st := memstore.New()
	b := model.Book{Title: "Dune", Author: primitive.NewObjectID()}
	require.NoError(t, st.Books.Create(context.Background(), &b))
	return st, instancesvc.New(st.Instances, st.Books), b
}

func TestCreate_DefaultsToAvailable(t *testing.T) {
	_, svc, b := setup(t)

	bi, err := svc.Create(context.Background(), instancesvc.Input{Book: b.ID.Hex(), Imprint: "Ace, 1965"})
	require.NoError(t, err)
	require.Equal(t, model.StatusAvailable, bi.Status)
	require.Nil(t, bi.DueBack)
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	st, svc, b := setup(t)

	cases := []struct {
		name string
		in   instancesvc.Input
		msg  string
	}{
		{"no book", instancesvc.Input{Imprint: "x"}, "Book must be specified"},
		{"unknown book", instancesvc.Input{Book: primitive.NewObjectID().Hex(), Imprint: "x"}, "Book not found."},
		{"no imprint", instancesvc.Input{Book: b.ID.Hex()}, "Imprint must be specified"},
		{"bad status", instancesvc.Input{Book: b.ID.Hex(), Imprint: "x", Status: "Lost"}, "Invalid status"},
		{"bad date", instancesvc.Input{Book: b.ID.Hex(), Imprint: "x", DueBack: "tomorrow"}, "Invalid date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			require.Equal(t, errs.ErrValidation, errs.Code(err))
			require.Contains(t, errs.Messages(err), tc.msg)
		})
	}

	n, err := st.Instances.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestParseStatus(t *testing.T) {
	for _, s := range model.Statuses {
		got, ok := instancesvc.ParseStatus(string(s))
		require.True(t, ok)
		require.Equal(t, s, got)
	}
	got, ok := instancesvc.ParseStatus("")
	require.True(t, ok)
	require.Equal(t, model.StatusAvailable, got)
	_, ok = instancesvc.ParseStatus("available")
	require.False(t, ok)
}

func TestUpdateAndDetail(t *testing.T) {
	ctx := context.Background()
	_, svc, b := setup(t)

	bi, err := svc.Create(ctx, instancesvc.Input{Book: b.ID.Hex(), Imprint: "Ace"})
	require.NoError(t, err)

	up, err := svc.Update(ctx, bi.ID.Hex(), instancesvc.Input{Book: b.ID.Hex(), Imprint: "Ace", Status: "Loaned", DueBack: "2026-11-01"})
	require.NoError(t, err)
	require.Equal(t, bi.ID, up.ID)

	it, err := svc.Detail(ctx, bi.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, model.StatusLoaned, it.Instance.Status)
	require.Equal(t, "Nov 1, 2026", it.Instance.DueBackFormatted())
	require.Equal(t, "Dune", it.Book.Title)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Dune", list[0].Book.Title)
}

func TestUpdate_MissingBeatsInvalidInput(t *testing.T) {
	_, svc, _ := setup(t)

	got, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), instancesvc.Input{Status: "Lost"})
	require.Equal(t, errs.ErrNotFound, errs.Code(err))
	require.Nil(t, got)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	_, svc, b := setup(t)

	bi, err := svc.Create(ctx, instancesvc.Input{Book: b.ID.Hex(), Imprint: "Ace"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, bi.ID.Hex()))

	_, err = svc.Detail(ctx, bi.ID.Hex())
	require.Equal(t, errs.ErrNotFound, errs.Code(err))
	require.Equal(t, errs.ErrNotFound, errs.Code(svc.Delete(ctx, "nope")))
}
