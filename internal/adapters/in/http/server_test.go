package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "errand/internal/adapters/in/http"
	"errand/internal/core/application/usecases/commands"
	"errand/internal/core/application/usecases/queries"
	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"
	"errand/internal/core/domain/services"
	"errand/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const createBody = `{
	"order_type": "PURCHASE_DELIVER",
	"totals": {"subtotal": "50", "delivery_fee": "10", "service_fee": "0", "total": "60"},
	"currency": "SAR",
	"pickup_lat": 24.7, "pickup_lng": 46.6, "pickup_address": "Market",
	"dropoff_lat": 24.8, "dropoff_lng": 46.7, "dropoff_address": "Home",
	"items": [{"free_text_description": "bread", "quantity": 2, "price": "25"}]
}`

func newEcho(h api.Handlers) *echo.Echo {
	e := echo.New()
	api.NewServer(h).RegisterRoutes(e)
	return e
}

func serve(e *echo.Echo, method, target, body string, customer kernel.UUID) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if customer != (kernel.UUID{}) {
		req.Header.Set(api.CustomerHeader, customer.String())
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.Error {
	t.Helper()
	var body api.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// persistedOrder builds the order the creation handler would return.
func persistedOrder(t *testing.T, cmd commands.CreateOrderCommand) *order.Order {
	t.Helper()
	h := cmd.Header()
	stages, err := services.NewStageSequencer().ComputeStages(h.Type(), h.Pickup(), h.Dropoff())
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), h, cmd.Items(), stages, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, o.MarkEscrowHeld(time.Now().UTC()))
	return o
}

func TestHealth(t *testing.T) {
	rec := serve(newEcho(api.Handlers{}), http.MethodGet, "/health", "", kernel.UUID{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateOrder_Created(t *testing.T) {
	customer := kernel.NewUUID()
	handler := &MockCreateOrderHandler{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.CustomerID().IsEqual(customer) && len(cmd.Items()) == 1
	})).Return(func(cmd commands.CreateOrderCommand) *order.Order { return persistedOrder(t, cmd) }, nil).Once()

	e := newEcho(api.Handlers{CreateOrder: handler})
	rec := serve(e, http.MethodPost, "/api/v1/orders", createBody, customer)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body api.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, customer.String(), body.CustomerID)
	assert.Equal(t, "payment_pending", body.Status)
	assert.Equal(t, "held", body.EscrowStatus)
	assert.True(t, decimal.NewFromInt(60).Equal(body.Totals.Total))
	require.NotNil(t, body.Pickup)
	assert.Equal(t, "Market", body.Pickup.Address)
	require.Len(t, body.Stages, 2)
	assert.Equal(t, "purchase", body.Stages[0].Type)
	assert.Equal(t, "dropoff", body.Stages[1].Type)
	handler.AssertExpectations(t)
}

func TestCreateOrder_ValidationFailsBeforeHandler(t *testing.T) {
	handler := &MockCreateOrderHandler{}
	e := newEcho(api.Handlers{CreateOrder: handler})

	body := strings.Replace(createBody, "PURCHASE_DELIVER", "TELEPORT", 1)
	rec := serve(e, http.MethodPost, "/api/v1/orders", body, kernel.NewUUID())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateOrder_SingleCoordinateRejected(t *testing.T) {
	tests := map[string]struct {
		body    string
		message string
	}{
		"pickup without longitude": {
			body:    strings.Replace(createBody, `"pickup_lng": 46.6, `, "", 1),
			message: "value is required: pickup_lng",
		},
		"dropoff without latitude": {
			body:    strings.Replace(createBody, `"dropoff_lat": 24.8, `, "", 1),
			message: "value is required: dropoff_lat",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			handler := &MockCreateOrderHandler{}
			e := newEcho(api.Handlers{CreateOrder: handler})

			rec := serve(e, http.MethodPost, "/api/v1/orders", tt.body, kernel.NewUUID())

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec).Message)
			handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestSaveDraft_SingleCoordinateRejected(t *testing.T) {
	handler := &MockSaveDraftHandler{}
	e := newEcho(api.Handlers{SaveDraft: handler})

	body := `{"order_type": "DIRECT_DROPOFF", "dropoff_lng": 46.7}`
	rec := serve(e, http.MethodPut, "/api/v1/drafts/"+kernel.NewUUID().String(), body, kernel.NewUUID())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "value is required: dropoff_lat", decodeError(t, rec).Message)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateOrder_MissingCustomer(t *testing.T) {
	handler := &MockCreateOrderHandler{}
	e := newEcho(api.Handlers{CreateOrder: handler})

	rec := serve(e, http.MethodPost, "/api/v1/orders", createBody, kernel.UUID{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "value is invalid: customer_id", decodeError(t, rec).Message)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateOrder_CreationFailed(t *testing.T) {
	handler := &MockCreateOrderHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(nil, &commands.OrderCreationFailedError{Cause: errors.New("connection reset")}).
		Once()
	e := newEcho(api.Handlers{CreateOrder: handler})

	rec := serve(e, http.MethodPost, "/api/v1/orders", createBody, kernel.NewUUID())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "creation failed")
	handler.AssertExpectations(t)
}

func TestGetOrder(t *testing.T) {
	id := kernel.NewUUID()
	view := queries.OrderView{
		ID:           id,
		CustomerID:   kernel.NewUUID(),
		Type:         "DIRECT_DROPOFF",
		Status:       "paid",
		EscrowStatus: "held",
		Total:        decimal.NewFromInt(15),
		Currency:     "SAR",
		Dropoff:      queries.PointView{Lat: 1, Lng: 2, Address: "Office"},
		Stages:       []queries.StageView{{ID: kernel.NewUUID(), Type: "dropoff", SequenceNo: 1, Status: "pending"}},
		Escrow: []queries.EscrowEntryView{
			{ID: kernel.NewUUID(), Type: "hold", Amount: decimal.NewFromInt(15), Currency: "SAR", Status: "completed"},
		},
	}
	handler := &MockGetOrderHandler{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
		return q.OrderID().IsEqual(id)
	})).Return(view, nil).Once()
	e := newEcho(api.Handlers{GetOrder: handler})

	rec := serve(e, http.MethodGet, "/api/v1/orders/"+id.String(), "", kernel.UUID{})

	require.Equal(t, http.StatusOK, rec.Code)
	var body api.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body.ID)
	assert.Nil(t, body.Pickup)
	assert.Equal(t, "Office", body.Dropoff.Address)
	require.Len(t, body.EscrowTransactions, 1)
	assert.Equal(t, "hold", body.EscrowTransactions[0].Type)
	handler.AssertExpectations(t)
}

func TestGetOrder_Errors(t *testing.T) {
	handler := &MockGetOrderHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(queries.OrderView{}, errs.NewObjectNotFoundError("order", "x")).
		Once()
	e := newEcho(api.Handlers{GetOrder: handler})

	rec := serve(e, http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), "", kernel.UUID{})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(e, http.MethodGet, "/api/v1/orders/not-a-uuid", "", kernel.UUID{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	handler.AssertExpectations(t)
}

func TestListOrders_PassesStatusFilter(t *testing.T) {
	customer := kernel.NewUUID()
	summaries := []queries.OrderSummary{
		{ID: kernel.NewUUID(), Type: "CHAIN", Status: "completed", EscrowStatus: "released", Total: decimal.NewFromInt(9), Currency: "SAR"},
	}
	handler := &MockListCustomerOrdersHandler{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListCustomerOrdersQuery) bool {
		return q.CustomerID().IsEqual(customer) && q.Status() == order.Completed
	})).Return(summaries, nil).Once()
	e := newEcho(api.Handlers{ListCustomerOrders: handler})

	rec := serve(e, http.MethodGet, "/api/v1/orders?status=completed", "", customer)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []api.OrderSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "released", body[0].EscrowStatus)
	handler.AssertExpectations(t)
}

func TestCancelOrder_UnknownStatusTransition(t *testing.T) {
	handler := &MockCancelOrderHandler{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrderCommand) bool {
		return cmd.Reason() == "changed my mind"
	})).Return(nil, errs.NewValueIsInvalidError("status")).Once()
	e := newEcho(api.Handlers{CancelOrder: handler})

	rec := serve(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/cancel",
		`{"reason": "changed my mind"}`, kernel.UUID{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	handler.AssertExpectations(t)
}

func TestSettleEscrow(t *testing.T) {
	orderID := kernel.NewUUID()
	amount, err := kernel.NewMoney(decimal.NewFromInt(20), "SAR")
	require.NoError(t, err)
	entry, err := escrow.NewTransaction(kernel.NewUUID(), orderID, escrow.Release, amount, time.Now().UTC())
	require.NoError(t, err)

	tests := []struct {
		name     string
		body     string
		result   *escrow.Transaction
		err      error
		wantCode int
	}{
		{"released", `{"type":"release","amount":"20","currency":"SAR"}`, entry, nil, http.StatusCreated},
		{"over release", `{"type":"release","amount":"500","currency":"SAR"}`, nil, escrow.ErrOverRelease, http.StatusConflict},
		{"no hold", `{"type":"refund","amount":"5","currency":"SAR"}`, nil, escrow.ErrNoHold, http.StatusConflict},
		{"currency mismatch", `{"type":"refund","amount":"5","currency":"USD"}`, nil, kernel.ErrCurrencyMismatch, http.StatusBadRequest},
		{"missing order", `{"type":"refund","amount":"5","currency":"SAR"}`, nil, errs.NewObjectNotFoundError("order", orderID), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := &MockSettleEscrowHandler{}
			handler.On("Handle", mock.Anything, mock.Anything).Return(tt.result, tt.err).Once()
			e := newEcho(api.Handlers{SettleEscrow: handler})

			rec := serve(e, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/escrow", tt.body, kernel.UUID{})

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			handler.AssertExpectations(t)
		})
	}
}

func TestSettleEscrow_InvalidKindRejectedBeforeHandler(t *testing.T) {
	handler := &MockSettleEscrowHandler{}
	e := newEcho(api.Handlers{SettleEscrow: handler})

	rec := serve(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/escrow",
		`{"type":"hold","amount":"5","currency":"SAR"}`, kernel.UUID{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestSweep(t *testing.T) {
	handler := &MockSweepHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(commands.SweepResult{Closed: 2, Reminded: 3}, nil).
		Once()
	e := newEcho(api.Handlers{Sweep: handler})

	rec := serve(e, http.MethodPost, "/api/v1/sweeps", "", kernel.UUID{})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"closed":2,"reminded":3,"skipped":false}`, rec.Body.String())
	handler.AssertExpectations(t)
}

func TestSweep_Failed(t *testing.T) {
	handler := &MockSweepHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(commands.SweepResult{}, commands.ErrSweepFailed).
		Once()
	e := newEcho(api.Handlers{Sweep: handler})

	rec := serve(e, http.MethodPost, "/api/v1/sweeps", "", kernel.UUID{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rec).Message)
}

func TestGetDraft_RoundTripsContents(t *testing.T) {
	customer := kernel.NewUUID()
	session, err := draft.NewSession(kernel.NewUUID(), customer, time.Now().UTC())
	require.NoError(t, err)
	session.Replace(draft.Contents{
		OrderType: "DIRECT_DROPOFF",
		Currency:  "SAR",
		Dropoff:   &draft.Point{Lat: 1, Lng: 2, Address: "Home"},
		Items:     []draft.Item{{CatalogRef: "sku-1", Quantity: 1, Price: decimal.NewFromInt(3)}},
	}, time.Now().UTC())

	handler := &MockGetDraftHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(session, nil).Once()
	e := newEcho(api.Handlers{GetDraft: handler})

	rec := serve(e, http.MethodGet, "/api/v1/drafts/"+session.ID().String(), "", customer)

	require.Equal(t, http.StatusOK, rec.Code)
	var body api.DraftSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DIRECT_DROPOFF", body.Draft.OrderType)
	require.NotNil(t, body.Draft.DropoffLat)
	assert.InDelta(t, 1.0, *body.Draft.DropoffLat, 1e-9)
	assert.Nil(t, body.Draft.PickupLat)
	require.Len(t, body.Draft.Items, 1)
	assert.Equal(t, "sku-1", body.Draft.Items[0].CatalogRef)
}

func TestDiscardDraft(t *testing.T) {
	customer := kernel.NewUUID()
	handler := &MockDiscardDraftHandler{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DraftSessionCommand) bool {
		return cmd.CustomerID().IsEqual(customer)
	})).Return(nil).Once()
	e := newEcho(api.Handlers{DiscardDraft: handler})

	rec := serve(e, http.MethodDelete, "/api/v1/drafts/"+kernel.NewUUID().String(), "", customer)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	handler.AssertExpectations(t)
}

func TestSubmitDraft_InvalidSessionID(t *testing.T) {
	handler := &MockSubmitDraftHandler{}
	e := newEcho(api.Handlers{SubmitDraft: handler})

	rec := serve(e, http.MethodPost, "/api/v1/drafts/not-a-uuid/submit", "", kernel.NewUUID())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "value is invalid: session_id", decodeError(t, rec).Message)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestSubmitDraft_InvalidContents(t *testing.T) {
	handler := &MockSubmitDraftHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewValueIsRequiredError("dropoff")).
		Once()
	e := newEcho(api.Handlers{SubmitDraft: handler})

	rec := serve(e, http.MethodPost, "/api/v1/drafts/"+kernel.NewUUID().String()+"/submit", "", kernel.NewUUID())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	handler.AssertExpectations(t)
}
