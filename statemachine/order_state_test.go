package statemachine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"storefront-admin-api/models"
)

var everyStatus = []models.OrderStatus{
	models.StatusPending, models.StatusConfirmed, models.StatusPreparing,
	models.StatusReady, models.StatusPickedUp, models.StatusOutForDelivery,
	models.StatusDelivered, models.StatusCancelled, models.StatusReturned,
	models.StatusRefunded,
}

var everyType = []models.FulfillmentType{
	models.FulfillmentDelivery, models.FulfillmentPickup, models.FulfillmentDineIn,
}

func TestLegalNextStatesIncludeSelf(t *testing.T) {
	t.Parallel()

	for _, status := range everyStatus {
		for _, typ := range everyType {
			require.Contains(t, LegalNextStates(status, typ), status,
				"order must be re-savable at its current status %s/%s", status, typ)
		}
	}
}

func TestRefundedIsAbsoluteTerminal(t *testing.T) {
	t.Parallel()

	for _, typ := range everyType {
		require.Equal(t,
			[]models.OrderStatus{models.StatusRefunded},
			LegalNextStates(models.StatusRefunded, typ))
	}
}

func TestReadyBranchesOnFulfillmentType(t *testing.T) {
	t.Parallel()

	delivery := LegalNextStates(models.StatusReady, models.FulfillmentDelivery)
	require.NotContains(t, delivery, models.StatusPickedUp)
	require.Contains(t, delivery, models.StatusOutForDelivery)
	require.Contains(t, delivery, models.StatusDelivered)

	for _, typ := range []models.FulfillmentType{models.FulfillmentPickup, models.FulfillmentDineIn} {
		onSite := LegalNextStates(models.StatusReady, typ)
		require.Contains(t, onSite, models.StatusPickedUp)
		require.NotContains(t, onSite, models.StatusOutForDelivery)
		require.NotContains(t, onSite, models.StatusDelivered)
	}
}

func TestEdgeTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from models.OrderStatus
		typ  models.FulfillmentType
		want []models.OrderStatus
	}{
		{models.StatusPending, models.FulfillmentDelivery,
			[]models.OrderStatus{models.StatusPending, models.StatusConfirmed, models.StatusCancelled}},
		{models.StatusConfirmed, models.FulfillmentPickup,
			[]models.OrderStatus{models.StatusConfirmed, models.StatusPreparing, models.StatusCancelled}},
		{models.StatusPreparing, models.FulfillmentDineIn,
			[]models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusCancelled}},
		{models.StatusPickedUp, models.FulfillmentPickup,
			[]models.OrderStatus{models.StatusPickedUp, models.StatusReturned, models.StatusRefunded}},
		{models.StatusOutForDelivery, models.FulfillmentDelivery,
			[]models.OrderStatus{models.StatusOutForDelivery, models.StatusDelivered, models.StatusCancelled}},
		{models.StatusDelivered, models.FulfillmentDelivery,
			[]models.OrderStatus{models.StatusDelivered, models.StatusReturned, models.StatusRefunded}},
		{models.StatusReturned, models.FulfillmentDelivery,
			[]models.OrderStatus{models.StatusReturned, models.StatusRefunded}},
		{models.StatusCancelled, models.FulfillmentDineIn,
			[]models.OrderStatus{models.StatusCancelled, models.StatusRefunded}},
	}
	for _, tc := range cases {
		require.ElementsMatch(t, tc.want, LegalNextStates(tc.from, tc.typ),
			"edges from %s/%s", tc.from, tc.typ)
	}
}

func TestUnknownStatusDegradesToPending(t *testing.T) {
	t.Parallel()

	got := LegalNextStates("GARBAGE", models.FulfillmentDelivery)
	require.Equal(t, []models.OrderStatus{models.StatusPending}, got)

	got = LegalNextStates("", models.FulfillmentPickup)
	require.Equal(t, []models.OrderStatus{models.StatusPending}, got)
}

func TestFinalStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, models.StatusDelivered, FinalStatus(models.FulfillmentDelivery))
	require.Equal(t, models.StatusPickedUp, FinalStatus(models.FulfillmentPickup))
	require.Equal(t, models.StatusPickedUp, FinalStatus(models.FulfillmentDineIn))
}

func TestCanShortcut(t *testing.T) {
	t.Parallel()

	blocked := map[models.OrderStatus]bool{
		models.StatusPickedUp:  true,
		models.StatusDelivered: true,
		models.StatusCancelled: true,
		models.StatusReturned:  true,
		models.StatusRefunded:  true,
	}
	for _, status := range everyStatus {
		require.Equal(t, !blocked[status], CanShortcut(status), "shortcut from %s", status)
	}
}

func TestLegalNextStatesReturnsCopy(t *testing.T) {
	t.Parallel()

	first := LegalNextStates(models.StatusPending, models.FulfillmentDelivery)
	first[0] = models.StatusRefunded
	second := LegalNextStates(models.StatusPending, models.FulfillmentDelivery)
	require.Equal(t, models.StatusPending, second[0])
}
