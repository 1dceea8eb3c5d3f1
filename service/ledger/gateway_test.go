package ledger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/QuangTung97/campaign-ledger/service/wallet"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/stretchr/testify/assert"
)

type gatewayTest struct {
	*ledgerTest
	mux *runtime.ServeMux
}

func newGatewayTest(t *testing.T, opts ...runtime.ServeMuxOption) *gatewayTest {
	l := newLedgerTest()
	server := NewServer(l.service, wallet.NewService(l.store, l.store), l.clock)

	mux := NewGatewayMux(opts...)
	err := RegisterGateway(mux, server)
	assert.Equal(t, nil, err)

	return &gatewayTest{
		ledgerTest: l,
		mux:        mux,
	}
}

func (g *gatewayTest) do(method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	g.mux.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	err := json.Unmarshal(w.Body.Bytes(), v)
	assert.Equal(t, nil, err)
}

func TestGateway_Flow(t *testing.T) {
	g := newGatewayTest(t)

	w := g.do(http.MethodPost, "/v1/campaigns",
		`{"advertiser_id":"advertiser01","title":"Summer","total_slots":2,"reward_per_post":"25.50"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var created CampaignResponse
	decodeJSON(t, w, &created)
	assert.Equal(t, int64(1), created.Campaign.ID)
	assert.Equal(t, "pending", created.Campaign.Status)

	w = g.do(http.MethodPost, "/v1/campaigns/1/activate", `{"actor_id":"advertiser01"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = g.do(http.MethodGet, "/v1/campaigns?limit=10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var open ListCampaignsResponse
	decodeJSON(t, w, &open)
	assert.Equal(t, 1, len(open.Campaigns))
	assert.Equal(t, "active", open.Campaigns[0].Status)

	w = g.do(http.MethodPost, "/v1/campaigns/1/submissions",
		`{"creator_id":"creator01","link":"https://instagram.com/p/XYZ/"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var reserved SubmissionResponse
	decodeJSON(t, w, &reserved)
	assert.Equal(t, int64(1), reserved.Submission.ID)
	assert.Equal(t, "instagram", reserved.Submission.Platform)

	w = g.do(http.MethodPost, "/v1/submissions/1/request-revision", `{"actor_id":"advertiser01"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = g.do(http.MethodPost, "/v1/submissions/1/resubmit",
		`{"creator_id":"creator01","link":"https://www.tiktok.com/video/12345"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = g.do(http.MethodPost, "/v1/submissions/1/approve", `{"actor_id":"advertiser01"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = g.do(http.MethodGet, "/v1/submissions/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var got SubmissionResponse
	decodeJSON(t, w, &got)
	assert.Equal(t, "approved", got.Submission.Status)
	assert.Equal(t, "tiktok", got.Submission.Platform)
	assert.Equal(t, "25.5", got.Submission.PayoutAmount)

	w = g.do(http.MethodGet, "/v1/campaigns/1/submissions?status=approved", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var byCampaign ListSubmissionsResponse
	decodeJSON(t, w, &byCampaign)
	assert.Equal(t, 1, len(byCampaign.Submissions))

	w = g.do(http.MethodGet, "/v1/creators/creator01/submissions", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = g.do(http.MethodGet, "/v1/advertisers/advertiser01/submissions", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var byAdvertiser ListSubmissionsResponse
	decodeJSON(t, w, &byAdvertiser)
	assert.Equal(t, 1, len(byAdvertiser.Submissions))

	w = g.do(http.MethodGet, "/v1/wallets/creator01", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var wallet WalletResponse
	decodeJSON(t, w, &wallet)
	assert.Equal(t, "25.50", wallet.Balance)

	w = g.do(http.MethodPost, "/v1/sweeps", `{}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = g.do(http.MethodPost, "/v1/campaigns/1/close", `{"actor_id":"advertiser01"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGateway_Errors(t *testing.T) {
	g := newGatewayTest(t)
	c := g.newCampaign(t, 1)
	g.reserve(t, c.ID, "creator01")

	w := g.do(http.MethodPost, "/v1/campaigns/1/submissions", `{"creator_id":"creator02","link":"`+testLink+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body HTTPError
	decodeJSON(t, w, &body)
	assert.Equal(t, "slot_unavailable", body.Kind)
	assert.Equal(t, int64(1), body.CampaignID)

	w = g.do(http.MethodPost, "/v1/submissions/1/approve", `{"actor_id":"creator01"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	decodeJSON(t, w, &body)
	assert.Equal(t, "not_authorized", body.Kind)
	assert.Equal(t, int64(1), body.SubmissionID)
	assert.Equal(t, "pending", body.Status)

	w = g.do(http.MethodGet, "/v1/submissions/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	body = HTTPError{}
	decodeJSON(t, w, &body)
	assert.Equal(t, "not_found", body.Kind)

	w = g.do(http.MethodGet, "/v1/submissions/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body = HTTPError{}
	decodeJSON(t, w, &body)
	assert.Equal(t, "invalid_argument", body.Kind)

	w = g.do(http.MethodPost, "/v1/campaigns", `{bad json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	//---------------------------
	// stale action
	//---------------------------
	g.clock.Advance(AutoPayoutWindow)

	w = g.do(http.MethodPost, "/v1/submissions/1/reject", `{"actor_id":"advertiser01"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	body = HTTPError{}
	decodeJSON(t, w, &body)
	assert.Equal(t, HTTPError{
		Kind:         "stale_action",
		Message:      body.Message,
		SubmissionID: 1,
		CampaignID:   1,
		Status:       "auto_paid",
		Deadline:     "2022-05-20T10:00:00Z",
	}, body)
}

type countingMarshaler struct {
	runtime.JSONBuiltin
	marshalCalls int
}

func (m *countingMarshaler) Marshal(v interface{}) ([]byte, error) {
	m.marshalCalls++
	return m.JSONBuiltin.Marshal(v)
}

func (*countingMarshaler) ContentType(_ interface{}) string {
	return "application/x-ledger"
}

func TestGateway_UsesMuxMarshaler(t *testing.T) {
	marshaler := &countingMarshaler{}
	g := newGatewayTest(t, runtime.WithMarshalerOption("application/x-ledger", marshaler))

	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns", strings.NewReader(
		`{"advertiser_id":"advertiser01","title":"Summer","total_slots":2,"reward_per_post":"25.50"}`))
	req.Header.Set("Content-Type", "application/x-ledger")

	w := httptest.NewRecorder()
	g.mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/x-ledger", w.Header().Get("Content-Type"))
	assert.Equal(t, 1, marshaler.marshalCalls)

	var created CampaignResponse
	decodeJSON(t, w, &created)
	assert.Equal(t, "Summer", created.Campaign.Title)

	//----------------------------------
	// errors go through the same marshaler
	//----------------------------------
	req = httptest.NewRequest(http.MethodGet, "/v1/submissions/99", nil)
	req.Header.Set("Accept", "application/x-ledger")

	w = httptest.NewRecorder()
	g.mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/x-ledger", w.Header().Get("Content-Type"))
	assert.Equal(t, 2, marshaler.marshalCalls)

	//----------------------------------
	// default json
	//----------------------------------
	w = g.do(http.MethodGet, "/v1/campaigns", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, 2, marshaler.marshalCalls)
}
