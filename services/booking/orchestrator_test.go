package booking

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"divinespark/models"
	"divinespark/services/checkout"
	"divinespark/services/session"
	"divinespark/upstream"
)

// fakeSessions serves one canned resolved session for every lookup.
type fakeSessions struct {
	resolved models.ResolvedSession
	err      error
}

func (f *fakeSessions) List(ctx context.Context) ([]models.ResolvedSession, error) {
	return []models.ResolvedSession{f.resolved}, f.err
}

func (f *fakeSessions) ListAdmin(ctx context.Context, token string) ([]models.ResolvedSession, error) {
	return []models.ResolvedSession{f.resolved}, f.err
}

func (f *fakeSessions) Get(ctx context.Context, id string) (*models.ResolvedSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	resolved := f.resolved
	return &resolved, nil
}

func (f *fakeSessions) Create(ctx context.Context, token string, input models.SessionInput) (*models.ResolvedSession, error) {
	return nil, nil
}

func (f *fakeSessions) CreateMultipart(ctx context.Context, token string, fields map[string]string, fileName string, file io.Reader) (upstream.RawSession, error) {
	return nil, nil
}

func (f *fakeSessions) Update(ctx context.Context, token, id string, input models.SessionInput) (*models.ResolvedSession, error) {
	return nil, nil
}

func (f *fakeSessions) Delete(ctx context.Context, token, id string) error {
	return nil
}

// fakeGateway is an in-memory stand-in for the hosted widget with the same
// channel-resolved invocation contract.
type fakeGateway struct {
	loadErr error
	loads   int32
	opens   int32

	mu      sync.Mutex
	pending map[string]chan checkout.Result
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{pending: make(map[string]chan checkout.Result)}
}

func (g *fakeGateway) EnsureLoaded(ctx context.Context) error {
	atomic.AddInt32(&g.loads, 1)
	return g.loadErr
}

func (g *fakeGateway) Open(ctx context.Context, attemptID string, order checkout.Order) checkout.Result {
	atomic.AddInt32(&g.opens, 1)
	ch := make(chan checkout.Result, 1)
	g.mu.Lock()
	g.pending[attemptID] = ch
	g.mu.Unlock()

	select {
	case result := <-ch:
		return result
	case <-time.After(5 * time.Second):
		return checkout.Result{Outcome: checkout.OutcomeDismissed}
	}
}

func (g *fakeGateway) Options(order checkout.Order) checkout.WidgetOptions {
	return checkout.WidgetOptions{
		Key:      order.Key,
		Amount:   order.Amount,
		Currency: order.Currency,
		OrderID:  order.OrderID,
		Prefill:  order.Prefill,
	}
}

func (g *fakeGateway) ResolveSuccess(attemptID, paymentID string) bool {
	return g.resolve(attemptID, checkout.Result{Outcome: checkout.OutcomeSuccess, PaymentID: paymentID})
}

func (g *fakeGateway) ResolveDismiss(attemptID string) bool {
	return g.resolve(attemptID, checkout.Result{Outcome: checkout.OutcomeDismissed})
}

func (g *fakeGateway) resolve(attemptID string, result checkout.Result) bool {
	g.mu.Lock()
	ch, ok := g.pending[attemptID]
	g.mu.Unlock()
	if !ok {
		return false
	}
	ch <- result
	return true
}

// backendCounts tracks which booking endpoints the orchestrator hit.
type backendCounts struct {
	free, paidInit, paidConfirm int32
	lastPaymentID               string
}

func bookingBackend(t *testing.T, counts *backendCounts, order models.PaymentOrder, confirmStatus int) *upstream.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/book/free/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&counts.free, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"booked"}`))
	})
	mux.HandleFunc("/book/paid/confirm", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&counts.paidConfirm, 1)
		counts.lastPaymentID = r.URL.Query().Get("paymentId")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(confirmStatus)
		w.Write([]byte(`{"message":"ok"}`))
	})
	mux.HandleFunc("/book/paid/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&counts.paidInit, 1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(order)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return upstream.New(srv.URL, 2*time.Second, zap.NewNop())
}

func openSession(price float64) models.ResolvedSession {
	return models.ResolvedSession{
		Session: models.Session{
			ID:           "s-1",
			Title:        "Sound Bath",
			Price:        price,
			MaxAttendees: 10,
			Active:       true,
		},
		Availability: models.Availability{
			SpotsLeft:           10,
			IsUpcoming:          true,
			IsFree:              price == 0,
			OpenForRegistration: true,
		},
	}
}

func newService(backend *upstream.Client, sessions session.SessionService, gateway *fakeGateway) *DefaultBookingService {
	return &DefaultBookingService{
		Backend:   backend,
		Sessions:  sessions,
		Widget:    gateway,
		Callbacks: gateway,
		Attempts:  NewAttemptRegistry(),
		Logger:    zap.NewNop(),
	}
}

var testViewer = Viewer{
	ID:      "v-1",
	Token:   "tok-1",
	Contact: models.ContactInfo{Name: "Asha", Email: "asha@example.com"},
}

func waitForResult(t *testing.T, svc *DefaultBookingService, attemptID string) *models.BookingResult {
	t.Helper()
	var result *models.BookingResult
	require.Eventually(t, func() bool {
		result = svc.Result(attemptID)
		return result != nil
	}, 2*time.Second, 10*time.Millisecond)
	return result
}

func TestConfirmFreeSession(t *testing.T) {
	counts := &backendCounts{}
	backend := bookingBackend(t, counts, models.PaymentOrder{}, http.StatusOK)
	svc := newService(backend, &fakeSessions{resolved: openSession(0)}, newFakeGateway())

	resp, err := svc.Confirm(context.Background(), testViewer, "s-1")
	require.NoError(t, err)
	require.Equal(t, models.AttemptCompleted, resp.State)
	require.NotNil(t, resp.Result)
	require.Equal(t, MsgFreeBooked, resp.Result.Message)
	require.Equal(t, "success", resp.Result.Level)
	require.Equal(t, int32(1), atomic.LoadInt32(&counts.free))
	require.Zero(t, atomic.LoadInt32(&counts.paidInit))
}

func TestConfirmClosedSession(t *testing.T) {
	counts := &backendCounts{}
	backend := bookingBackend(t, counts, models.PaymentOrder{}, http.StatusOK)
	closed := openSession(0)
	closed.Availability.OpenForRegistration = false
	svc := newService(backend, &fakeSessions{resolved: closed}, newFakeGateway())

	resp, err := svc.Confirm(context.Background(), testViewer, "s-1")
	require.NoError(t, err)
	require.Equal(t, models.AttemptFailed, resp.State)
	require.Equal(t, MsgSessionNotOpen, resp.Result.Message)
	require.Zero(t, atomic.LoadInt32(&counts.free))
	require.Zero(t, atomic.LoadInt32(&counts.paidInit))
}

func TestConfirmPaidSessionHappyPath(t *testing.T) {
	counts := &backendCounts{}
	order := models.PaymentOrder{OrderID: "order_1", Amount: 50000, Currency: "INR", Key: "rzp_test_k1"}
	backend := bookingBackend(t, counts, order, http.StatusOK)
	gateway := newFakeGateway()
	svc := newService(backend, &fakeSessions{resolved: openSession(500)}, gateway)

	resp, err := svc.Confirm(context.Background(), testViewer, "s-1")
	require.NoError(t, err)
	require.Equal(t, models.AttemptAwaitingPayment, resp.State)
	require.NotNil(t, resp.Checkout)
	require.Equal(t, "order_1", resp.Checkout.OrderID)
	require.Equal(t, int64(50000), resp.Checkout.Amount)
	require.Equal(t, "rzp_test_k1", resp.Checkout.Key)
	require.Nil(t, resp.Result)

	require.Eventually(t, func() bool {
		return svc.CompletePayment(resp.AttemptID, "pay_1")
	}, 2*time.Second, 10*time.Millisecond)

	result := waitForResult(t, svc, resp.AttemptID)
	require.Equal(t, models.AttemptCompleted, result.State)
	require.Equal(t, MsgPaidBooked, result.Message)
	require.Equal(t, int32(1), atomic.LoadInt32(&counts.paidConfirm))
	require.Equal(t, "pay_1", counts.lastPaymentID)
}

func TestConfirmPaidIncompleteOrder(t *testing.T) {
	counts := &backendCounts{}
	// Order arrives without the widget key: the widget must never open.
	order := models.PaymentOrder{OrderID: "order_1", Amount: 50000, Currency: "INR"}
	backend := bookingBackend(t, counts, order, http.StatusOK)
	gateway := newFakeGateway()
	svc := newService(backend, &fakeSessions{resolved: openSession(500)}, gateway)

	resp, err := svc.Confirm(context.Background(), testViewer, "s-1")
	require.NoError(t, err)
	require.Equal(t, models.AttemptFailed, resp.State)
	require.Equal(t, MsgInvalidOrder, resp.Result.Message)
	require.Zero(t, atomic.LoadInt32(&gateway.loads))
	require.Zero(t, atomic.LoadInt32(&gateway.opens))
	require.Zero(t, atomic.LoadInt32(&counts.paidConfirm))
}

func TestConfirmPaidWidgetLoadFailure(t *testing.T) {
	counts := &backendCounts{}
	order := models.PaymentOrder{OrderID: "order_1", Amount: 50000, Currency: "INR", Key: "k1"}
	backend := bookingBackend(t, counts, order, http.StatusOK)
	gateway := newFakeGateway()
	gateway.loadErr = context.DeadlineExceeded
	svc := newService(backend, &fakeSessions{resolved: openSession(500)}, gateway)

	resp, err := svc.Confirm(context.Background(), testViewer, "s-1")
	require.NoError(t, err)
	require.Equal(t, models.AttemptFailed, resp.State)
	require.Equal(t, MsgWidgetLoadFailed, resp.Result.Message)
	require.Zero(t, atomic.LoadInt32(&gateway.opens))
}

func TestDismissedPaymentCancelsAttempt(t *testing.T) {
	counts := &backendCounts{}
	order := models.PaymentOrder{OrderID: "order_1", Amount: 50000, Currency: "INR", Key: "k1"}
	backend := bookingBackend(t, counts, order, http.StatusOK)
	gateway := newFakeGateway()
	svc := newService(backend, &fakeSessions{resolved: openSession(500)}, gateway)

	resp, err := svc.Confirm(context.Background(), testViewer, "s-1")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return svc.DismissPayment(resp.AttemptID)
	}, 2*time.Second, 10*time.Millisecond)

	result := waitForResult(t, svc, resp.AttemptID)
	require.Equal(t, models.AttemptCancelled, result.State)
	require.Equal(t, "info", result.Level)
	require.Equal(t, MsgPaymentCancelled, result.Message)
	// Dismissal never reaches the confirmation endpoint.
	require.Zero(t, atomic.LoadInt32(&counts.paidConfirm))
}

func TestConfirmationFailureAfterPayment(t *testing.T) {
	counts := &backendCounts{}
	order := models.PaymentOrder{OrderID: "order_1", Amount: 50000, Currency: "INR", Key: "k1"}
	backend := bookingBackend(t, counts, order, http.StatusInternalServerError)
	gateway := newFakeGateway()
	svc := newService(backend, &fakeSessions{resolved: openSession(500)}, gateway)

	resp, err := svc.Confirm(context.Background(), testViewer, "s-1")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return svc.CompletePayment(resp.AttemptID, "pay_1")
	}, 2*time.Second, 10*time.Millisecond)

	result := waitForResult(t, svc, resp.AttemptID)
	require.Equal(t, models.AttemptFailed, result.State)
	require.Equal(t, MsgConfirmFailed, result.Message)
}

func TestDuplicateConfirmRejected(t *testing.T) {
	counts := &backendCounts{}
	order := models.PaymentOrder{OrderID: "order_1", Amount: 50000, Currency: "INR", Key: "k1"}
	backend := bookingBackend(t, counts, order, http.StatusOK)
	gateway := newFakeGateway()
	svc := newService(backend, &fakeSessions{resolved: openSession(500)}, gateway)

	resp, err := svc.Confirm(context.Background(), testViewer, "s-1")
	require.NoError(t, err)
	require.Equal(t, models.AttemptAwaitingPayment, resp.State)

	_, err = svc.Confirm(context.Background(), testViewer, "s-1")
	var bookingErr *BookingError
	require.ErrorAs(t, err, &bookingErr)
	require.Equal(t, "attemptInProgress", bookingErr.Code)
	require.Equal(t, int32(1), atomic.LoadInt32(&counts.paidInit))

	// Settle the in-flight attempt so the goroutine exits.
	require.Eventually(t, func() bool {
		return svc.DismissPayment(resp.AttemptID)
	}, 2*time.Second, 10*time.Millisecond)
	waitForResult(t, svc, resp.AttemptID)
}

func TestCallbacksIgnoredOutsidePaymentWait(t *testing.T) {
	counts := &backendCounts{}
	backend := bookingBackend(t, counts, models.PaymentOrder{}, http.StatusOK)
	svc := newService(backend, &fakeSessions{resolved: openSession(0)}, newFakeGateway())

	require.False(t, svc.CompletePayment("unknown", "pay_1"))
	require.False(t, svc.DismissPayment("unknown"))

	// A completed free attempt no longer accepts payment callbacks.
	resp, err := svc.Confirm(context.Background(), testViewer, "s-1")
	require.NoError(t, err)
	require.False(t, svc.CompletePayment(resp.AttemptID, "pay_1"))
}

func TestPrepareBuildsPrompt(t *testing.T) {
	counts := &backendCounts{}
	backend := bookingBackend(t, counts, models.PaymentOrder{}, http.StatusOK)
	svc := newService(backend, &fakeSessions{resolved: openSession(500)}, newFakeGateway())

	prompt, err := svc.Prepare(context.Background(), "s-1")
	require.NoError(t, err)
	require.Equal(t, "s-1", prompt.SessionID)
	require.True(t, prompt.CanBook)
	require.False(t, prompt.IsFree)
	require.Contains(t, prompt.Message, "Sound Bath")
}

func TestResultIsOneShot(t *testing.T) {
	counts := &backendCounts{}
	backend := bookingBackend(t, counts, models.PaymentOrder{}, http.StatusOK)
	svc := newService(backend, &fakeSessions{resolved: openSession(0)}, newFakeGateway())

	resp, err := svc.Confirm(context.Background(), testViewer, "s-1")
	require.NoError(t, err)

	require.NotNil(t, svc.Result(resp.AttemptID))
	require.Nil(t, svc.Result(resp.AttemptID))
}
