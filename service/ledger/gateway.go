package ledger

import (
	"io"
	"net/http"
	"strconv"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// HTTPError is the body of every failed HTTP call
type HTTPError struct {
	Kind         string `json:"kind"`
	Message      string `json:"message"`
	SubmissionID int64  `json:"submission_id,omitempty"`
	CampaignID   int64  `json:"campaign_id,omitempty"`
	Status       string `json:"status,omitempty"`
	Deadline     string `json:"deadline,omitempty"`
}

type route struct {
	method  string
	pattern string
	handler runtime.HandlerFunc
}

// NewGatewayMux returns the mux the HTTP routes are registered on, JSONPb falls back to
// encoding/json for the plain request and response structs
func NewGatewayMux(opts ...runtime.ServeMuxOption) *runtime.ServeMux {
	opts = append([]runtime.ServeMuxOption{
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{}),
	}, opts...)
	return runtime.NewServeMux(opts...)
}

// RegisterGateway adds the HTTP JSON routes to mux, they call the server in process.
// Bodies are decoded and encoded with the marshaler the mux selects for each request.
func RegisterGateway(mux *runtime.ServeMux, s LedgerServiceServer) error {
	g := &gateway{mux: mux, server: s}

	routes := []route{
		{"POST", "/v1/campaigns", g.createCampaign},
		{"GET", "/v1/campaigns", g.listOpenCampaigns},
		{"POST", "/v1/campaigns/{campaign_id}/activate", g.activateCampaign},
		{"POST", "/v1/campaigns/{campaign_id}/close", g.closeCampaign},
		{"POST", "/v1/campaigns/{campaign_id}/submissions", g.reserveSlot},
		{"GET", "/v1/campaigns/{campaign_id}/submissions", g.listCampaignSubmissions},

		{"GET", "/v1/submissions/{submission_id}", g.getSubmission},
		{"POST", "/v1/submissions/{submission_id}/approve", g.approve},
		{"POST", "/v1/submissions/{submission_id}/reject", g.reject},
		{"POST", "/v1/submissions/{submission_id}/request-revision", g.requestRevision},
		{"POST", "/v1/submissions/{submission_id}/resubmit", g.resubmit},

		{"GET", "/v1/creators/{creator_id}/submissions", g.listCreatorSubmissions},
		{"GET", "/v1/advertisers/{advertiser_id}/submissions", g.listAdvertiserSubmissions},
		{"POST", "/v1/sweeps", g.sweepExpired},
		{"GET", "/v1/wallets/{creator_id}", g.getWallet},
	}

	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return err
		}
	}
	return nil
}

type gateway struct {
	mux    *runtime.ServeMux
	server LedgerServiceServer
}

func (g *gateway) write(w http.ResponseWriter, r *http.Request, code int, v interface{}) {
	_, outbound := runtime.MarshalerForRequest(g.mux, r)

	data, err := outbound.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", outbound.ContentType(v))
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

// writeError renders a gRPC status error, kind and ids come from the ErrorInfo detail
func (g *gateway) writeError(w http.ResponseWriter, r *http.Request, err error) {
	st := status.Convert(err)

	body := HTTPError{
		Kind:    "internal",
		Message: st.Message(),
	}
	if st.Code() == codes.InvalidArgument {
		body.Kind = "invalid_argument"
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		body.Kind = info.Reason
		body.SubmissionID, _ = strconv.ParseInt(info.Metadata["submission_id"], 10, 64)
		body.CampaignID, _ = strconv.ParseInt(info.Metadata["campaign_id"], 10, 64)
		body.Status = info.Metadata["status"]
		body.Deadline = info.Metadata["deadline"]
	}

	g.write(w, r, runtime.HTTPStatusFromCode(st.Code()), &body)
}

func (g *gateway) writeResponse(w http.ResponseWriter, r *http.Request, resp interface{}, err error) {
	if err != nil {
		g.writeError(w, r, err)
		return
	}
	g.write(w, r, http.StatusOK, resp)
}

func (g *gateway) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	inbound, _ := runtime.MarshalerForRequest(g.mux, r)

	err := inbound.NewDecoder(r.Body).Decode(v)
	if err != nil && err != io.EOF {
		g.writeError(w, r, invalidArgument("invalid json body"))
		return false
	}
	return true
}

func (g *gateway) pathID(
	w http.ResponseWriter, r *http.Request, params map[string]string, name string,
) (int64, bool) {
	id, err := strconv.ParseInt(params[name], 10, 64)
	if err != nil || id <= 0 {
		g.writeError(w, r, invalidArgument("invalid "+name))
		return 0, false
	}
	return id, true
}

func (g *gateway) createCampaign(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req CreateCampaignRequest
	if !g.decodeBody(w, r, &req) {
		return
	}
	resp, err := g.server.CreateCampaign(r.Context(), &req)
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) listOpenCampaigns(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req ListOpenCampaignsRequest
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			g.writeError(w, r, invalidArgument("invalid limit"))
			return
		}
		req.Limit = n
	}
	resp, err := g.server.ListOpenCampaigns(r.Context(), &req)
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) campaignAction(
	w http.ResponseWriter, r *http.Request, params map[string]string,
) (*CampaignActionRequest, bool) {
	var req CampaignActionRequest
	if !g.decodeBody(w, r, &req) {
		return nil, false
	}
	id, ok := g.pathID(w, r, params, "campaign_id")
	if !ok {
		return nil, false
	}
	req.CampaignID = id
	return &req, true
}

func (g *gateway) activateCampaign(w http.ResponseWriter, r *http.Request, params map[string]string) {
	req, ok := g.campaignAction(w, r, params)
	if !ok {
		return
	}
	resp, err := g.server.ActivateCampaign(r.Context(), req)
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) closeCampaign(w http.ResponseWriter, r *http.Request, params map[string]string) {
	req, ok := g.campaignAction(w, r, params)
	if !ok {
		return
	}
	resp, err := g.server.CloseCampaign(r.Context(), req)
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) reserveSlot(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var req ReserveSlotRequest
	if !g.decodeBody(w, r, &req) {
		return
	}
	id, ok := g.pathID(w, r, params, "campaign_id")
	if !ok {
		return
	}
	req.CampaignID = id

	resp, err := g.server.ReserveSlot(r.Context(), &req)
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) listCampaignSubmissions(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, ok := g.pathID(w, r, params, "campaign_id")
	if !ok {
		return
	}
	resp, err := g.server.ListSubmissions(r.Context(), &ListSubmissionsRequest{
		CampaignID: id,
		Status:     r.URL.Query().Get("status"),
	})
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) getSubmission(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, ok := g.pathID(w, r, params, "submission_id")
	if !ok {
		return
	}
	resp, err := g.server.GetSubmission(r.Context(), &GetSubmissionRequest{SubmissionID: id})
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) submissionAction(
	w http.ResponseWriter, r *http.Request, params map[string]string,
) (*SubmissionActionRequest, bool) {
	var req SubmissionActionRequest
	if !g.decodeBody(w, r, &req) {
		return nil, false
	}
	id, ok := g.pathID(w, r, params, "submission_id")
	if !ok {
		return nil, false
	}
	req.SubmissionID = id
	return &req, true
}

func (g *gateway) approve(w http.ResponseWriter, r *http.Request, params map[string]string) {
	req, ok := g.submissionAction(w, r, params)
	if !ok {
		return
	}
	resp, err := g.server.Approve(r.Context(), req)
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) reject(w http.ResponseWriter, r *http.Request, params map[string]string) {
	req, ok := g.submissionAction(w, r, params)
	if !ok {
		return
	}
	resp, err := g.server.Reject(r.Context(), req)
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) requestRevision(w http.ResponseWriter, r *http.Request, params map[string]string) {
	req, ok := g.submissionAction(w, r, params)
	if !ok {
		return
	}
	resp, err := g.server.RequestRevision(r.Context(), req)
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) resubmit(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var req ResubmitRequest
	if !g.decodeBody(w, r, &req) {
		return
	}
	id, ok := g.pathID(w, r, params, "submission_id")
	if !ok {
		return
	}
	req.SubmissionID = id

	resp, err := g.server.Resubmit(r.Context(), &req)
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) listCreatorSubmissions(w http.ResponseWriter, r *http.Request, params map[string]string) {
	resp, err := g.server.ListSubmissions(r.Context(), &ListSubmissionsRequest{
		CreatorID: params["creator_id"],
		Status:    r.URL.Query().Get("status"),
	})
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) listAdvertiserSubmissions(w http.ResponseWriter, r *http.Request, params map[string]string) {
	resp, err := g.server.ListSubmissions(r.Context(), &ListSubmissionsRequest{
		AdvertiserID: params["advertiser_id"],
		Status:       r.URL.Query().Get("status"),
	})
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) sweepExpired(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req SweepExpiredRequest
	if !g.decodeBody(w, r, &req) {
		return
	}
	resp, err := g.server.SweepExpired(r.Context(), &req)
	g.writeResponse(w, r, resp, err)
}

func (g *gateway) getWallet(w http.ResponseWriter, r *http.Request, params map[string]string) {
	resp, err := g.server.GetWallet(r.Context(), &GetWalletRequest{CreatorID: params["creator_id"]})
	g.writeResponse(w, r, resp, err)
}
