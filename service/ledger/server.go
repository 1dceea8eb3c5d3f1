package ledger

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/QuangTung97/campaign-ledger/model"
	"github.com/QuangTung97/campaign-ledger/service/wallet"
	"github.com/shopspring/decimal"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LedgerServiceServer is served as ledger.v1.LedgerService with the json codec
type LedgerServiceServer interface {
	CreateCampaign(ctx context.Context, req *CreateCampaignRequest) (*CampaignResponse, error)
	ActivateCampaign(ctx context.Context, req *CampaignActionRequest) (*CampaignResponse, error)
	CloseCampaign(ctx context.Context, req *CampaignActionRequest) (*CampaignResponse, error)
	ListOpenCampaigns(ctx context.Context, req *ListOpenCampaignsRequest) (*ListCampaignsResponse, error)

	ReserveSlot(ctx context.Context, req *ReserveSlotRequest) (*SubmissionResponse, error)
	Approve(ctx context.Context, req *SubmissionActionRequest) (*SubmissionResponse, error)
	Reject(ctx context.Context, req *SubmissionActionRequest) (*SubmissionResponse, error)
	RequestRevision(ctx context.Context, req *SubmissionActionRequest) (*SubmissionResponse, error)
	Resubmit(ctx context.Context, req *ResubmitRequest) (*SubmissionResponse, error)
	SweepExpired(ctx context.Context, req *SweepExpiredRequest) (*ListSubmissionsResponse, error)

	GetSubmission(ctx context.Context, req *GetSubmissionRequest) (*SubmissionResponse, error)
	ListSubmissions(ctx context.Context, req *ListSubmissionsRequest) (*ListSubmissionsResponse, error)
	GetWallet(ctx context.Context, req *GetWalletRequest) (*WalletResponse, error)
}

// Server ...
type Server struct {
	ledger ILedger
	wallet wallet.IService
	clock  Clock
}

var _ LedgerServiceServer = &Server{}

// NewServer ...
func NewServer(ledger ILedger, walletService wallet.IService, clock Clock) *Server {
	return &Server{
		ledger: ledger,
		wallet: walletService,
		clock:  clock,
	}
}

// RegisterLedgerServiceServer ...
func RegisterLedgerServiceServer(s grpc.ServiceRegistrar, srv LedgerServiceServer) {
	s.RegisterService(&LedgerServiceDesc, srv)
}

func grpcCode(kind ErrorKind) codes.Code {
	switch kind {
	case KindNotFound:
		return codes.NotFound
	case KindInvalidLink, KindInvalidCampaign:
		return codes.InvalidArgument
	case KindSelfParticipation, KindNotAuthorized:
		return codes.PermissionDenied
	case KindSlotUnavailable, KindInvalidTransition, KindCampaignClosed:
		return codes.FailedPrecondition
	case KindStaleAction, KindPersistenceConflict:
		return codes.Aborted
	case KindIdempotencyConflict:
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

// toStatusError keeps the kind, ids and deadline in an ErrorInfo detail
func toStatusError(err error) error {
	var e *Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, "internal error")
	}

	md := map[string]string{}
	if e.SubmissionID != 0 {
		md["submission_id"] = strconv.FormatInt(e.SubmissionID, 10)
	}
	if e.CampaignID != 0 {
		md["campaign_id"] = strconv.FormatInt(e.CampaignID, 10)
	}
	if e.Status != 0 {
		md["status"] = e.Status.String()
	}
	if !e.Deadline.IsZero() {
		md["deadline"] = e.Deadline.Format(time.RFC3339)
	}

	st := status.New(grpcCode(e.Kind), e.Error())
	detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   e.Kind.String(),
		Domain:   "ledger",
		Metadata: md,
	})
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

func invalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

func parseStatus(name string) (model.SubmissionStatus, error) {
	if name == "" {
		return 0, nil
	}
	st, ok := model.ParseSubmissionStatus(name)
	if !ok {
		return 0, invalidArgument("unknown status: " + name)
	}
	return st, nil
}

func (s *Server) submissionResponse(sub model.Submission, err error) (*SubmissionResponse, error) {
	if err != nil {
		return nil, toStatusError(err)
	}
	return &SubmissionResponse{
		Submission: toSubmissionMessage(NewSubmissionView(sub, s.clock.Now())),
	}, nil
}

func campaignResponse(c model.Campaign, err error) (*CampaignResponse, error) {
	if err != nil {
		return nil, toStatusError(err)
	}
	return &CampaignResponse{Campaign: toCampaignMessage(c)}, nil
}

// CreateCampaign ...
func (s *Server) CreateCampaign(ctx context.Context, req *CreateCampaignRequest) (*CampaignResponse, error) {
	reward := decimal.Zero
	if req.RewardPerPost != "" {
		var err error
		reward, err = decimal.NewFromString(req.RewardPerPost)
		if err != nil {
			return nil, invalidArgument("invalid reward_per_post: " + req.RewardPerPost)
		}
	}

	return campaignResponse(s.ledger.CreateCampaign(ctx, CreateCampaignInput{
		AdvertiserID:  req.AdvertiserID,
		Title:         req.Title,
		Description:   req.Description,
		TotalSlots:    req.TotalSlots,
		RewardPerPost: reward,
	}))
}

// ActivateCampaign ...
func (s *Server) ActivateCampaign(ctx context.Context, req *CampaignActionRequest) (*CampaignResponse, error) {
	return campaignResponse(s.ledger.ActivateCampaign(ctx, CampaignActionInput{
		CampaignID: req.CampaignID,
		ActorID:    req.ActorID,
	}))
}

// CloseCampaign ...
func (s *Server) CloseCampaign(ctx context.Context, req *CampaignActionRequest) (*CampaignResponse, error) {
	return campaignResponse(s.ledger.CloseCampaign(ctx, CampaignActionInput{
		CampaignID: req.CampaignID,
		ActorID:    req.ActorID,
	}))
}

// ListOpenCampaigns ...
func (s *Server) ListOpenCampaigns(ctx context.Context, req *ListOpenCampaignsRequest) (*ListCampaignsResponse, error) {
	list, err := s.ledger.ListOpenCampaigns(ctx, req.Limit)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ListCampaignsResponse{Campaigns: toCampaignMessages(list)}, nil
}

// ReserveSlot ...
func (s *Server) ReserveSlot(ctx context.Context, req *ReserveSlotRequest) (*SubmissionResponse, error) {
	return s.submissionResponse(s.ledger.ReserveSlot(ctx, ReserveInput{
		CampaignID:     req.CampaignID,
		CreatorID:      req.CreatorID,
		Link:           req.Link,
		IdempotencyKey: req.IdempotencyKey,
	}))
}

func toActionInput(req *SubmissionActionRequest) ActionInput {
	return ActionInput{
		SubmissionID:   req.SubmissionID,
		ActorID:        req.ActorID,
		IdempotencyKey: req.IdempotencyKey,
	}
}

// Approve ...
func (s *Server) Approve(ctx context.Context, req *SubmissionActionRequest) (*SubmissionResponse, error) {
	return s.submissionResponse(s.ledger.Approve(ctx, toActionInput(req)))
}

// Reject ...
func (s *Server) Reject(ctx context.Context, req *SubmissionActionRequest) (*SubmissionResponse, error) {
	return s.submissionResponse(s.ledger.Reject(ctx, toActionInput(req)))
}

// RequestRevision ...
func (s *Server) RequestRevision(ctx context.Context, req *SubmissionActionRequest) (*SubmissionResponse, error) {
	return s.submissionResponse(s.ledger.RequestRevision(ctx, toActionInput(req)))
}

// Resubmit ...
func (s *Server) Resubmit(ctx context.Context, req *ResubmitRequest) (*SubmissionResponse, error) {
	return s.submissionResponse(s.ledger.Resubmit(ctx, ResubmitInput{
		SubmissionID:   req.SubmissionID,
		CreatorID:      req.CreatorID,
		Link:           req.Link,
		IdempotencyKey: req.IdempotencyKey,
	}))
}

// SweepExpired ...
func (s *Server) SweepExpired(ctx context.Context, req *SweepExpiredRequest) (*ListSubmissionsResponse, error) {
	var campaignID sql.NullInt64
	if req.CampaignID != 0 {
		campaignID = sql.NullInt64{Valid: true, Int64: req.CampaignID}
	}

	swept, err := s.ledger.SweepExpired(ctx, campaignID)
	if err != nil {
		return nil, toStatusError(err)
	}

	now := s.clock.Now()
	views := make([]SubmissionView, 0, len(swept))
	for _, sub := range swept {
		views = append(views, NewSubmissionView(sub, now))
	}
	return &ListSubmissionsResponse{Submissions: toSubmissionMessages(views)}, nil
}

// GetSubmission ...
func (s *Server) GetSubmission(ctx context.Context, req *GetSubmissionRequest) (*SubmissionResponse, error) {
	view, err := s.ledger.GetSubmission(ctx, req.SubmissionID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &SubmissionResponse{Submission: toSubmissionMessage(view)}, nil
}

// ListSubmissions ...
func (s *Server) ListSubmissions(ctx context.Context, req *ListSubmissionsRequest) (*ListSubmissionsResponse, error) {
	st, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	var views []SubmissionView
	switch {
	case req.CreatorID != "":
		views, err = s.ledger.ListCreatorSubmissions(ctx, req.CreatorID)
	case req.CampaignID != 0:
		views, err = s.ledger.ListCampaignSubmissions(ctx, req.CampaignID, st)
	case req.AdvertiserID != "":
		views, err = s.ledger.ListAdvertiserSubmissions(ctx, req.AdvertiserID, st)
	default:
		return nil, invalidArgument("one of creator_id, campaign_id, advertiser_id is required")
	}
	if err != nil {
		return nil, toStatusError(err)
	}

	if req.CreatorID != "" && st != 0 {
		filtered := views[:0]
		for _, v := range views {
			if v.Submission.Status == st {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}
	return &ListSubmissionsResponse{Submissions: toSubmissionMessages(views)}, nil
}

// GetWallet ...
func (s *Server) GetWallet(ctx context.Context, req *GetWalletRequest) (*WalletResponse, error) {
	if req.CreatorID == "" {
		return nil, invalidArgument("creator_id is required")
	}
	w, err := s.wallet.GetWallet(ctx, req.CreatorID)
	if err != nil {
		return nil, status.Error(codes.Internal, "get wallet failed")
	}
	resp := toWalletResponse(w)
	return &resp, nil
}
