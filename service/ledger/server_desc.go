package ledger

import (
	"context"

	"github.com/QuangTung97/campaign-ledger/pkg/grpclib"
	"google.golang.org/grpc"
)

const serviceName = "ledger.v1.LedgerService"

func unaryMethod(
	name string, newRequest func() interface{},
	call func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
		) (interface{}, error) {
			req := newRequest()
			if err := dec(req); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(LedgerServiceServer), ctx, req)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + serviceName + "/" + name,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(LedgerServiceServer), ctx, req)
			}
			return interceptor(ctx, req, info, handler)
		},
	}
}

// LedgerServiceDesc describes the service without generated protobuf code, messages use the json codec
var LedgerServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*LedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("CreateCampaign",
			func() interface{} { return new(CreateCampaignRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.CreateCampaign(ctx, req.(*CreateCampaignRequest))
			}),
		unaryMethod("ActivateCampaign",
			func() interface{} { return new(CampaignActionRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.ActivateCampaign(ctx, req.(*CampaignActionRequest))
			}),
		unaryMethod("CloseCampaign",
			func() interface{} { return new(CampaignActionRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.CloseCampaign(ctx, req.(*CampaignActionRequest))
			}),
		unaryMethod("ListOpenCampaigns",
			func() interface{} { return new(ListOpenCampaignsRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.ListOpenCampaigns(ctx, req.(*ListOpenCampaignsRequest))
			}),
		unaryMethod("ReserveSlot",
			func() interface{} { return new(ReserveSlotRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.ReserveSlot(ctx, req.(*ReserveSlotRequest))
			}),
		unaryMethod("Approve",
			func() interface{} { return new(SubmissionActionRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.Approve(ctx, req.(*SubmissionActionRequest))
			}),
		unaryMethod("Reject",
			func() interface{} { return new(SubmissionActionRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.Reject(ctx, req.(*SubmissionActionRequest))
			}),
		unaryMethod("RequestRevision",
			func() interface{} { return new(SubmissionActionRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.RequestRevision(ctx, req.(*SubmissionActionRequest))
			}),
		unaryMethod("Resubmit",
			func() interface{} { return new(ResubmitRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.Resubmit(ctx, req.(*ResubmitRequest))
			}),
		unaryMethod("SweepExpired",
			func() interface{} { return new(SweepExpiredRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.SweepExpired(ctx, req.(*SweepExpiredRequest))
			}),
		unaryMethod("GetSubmission",
			func() interface{} { return new(GetSubmissionRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.GetSubmission(ctx, req.(*GetSubmissionRequest))
			}),
		unaryMethod("ListSubmissions",
			func() interface{} { return new(ListSubmissionsRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.ListSubmissions(ctx, req.(*ListSubmissionsRequest))
			}),
		unaryMethod("GetWallet",
			func() interface{} { return new(GetWalletRequest) },
			func(srv LedgerServiceServer, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.GetWallet(ctx, req.(*GetWalletRequest))
			}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger.v1",
}

// Client calls ledger.v1.LedgerService over an existing connection
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient ...
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, req interface{}, resp interface{}) error {
	return c.cc.Invoke(ctx, "/"+serviceName+"/"+method, req, resp,
		grpc.CallContentSubtype(grpclib.JSONCodec{}.Name()))
}

// CreateCampaign ...
func (c *Client) CreateCampaign(ctx context.Context, req *CreateCampaignRequest) (*CampaignResponse, error) {
	resp := new(CampaignResponse)
	if err := c.invoke(ctx, "CreateCampaign", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ActivateCampaign ...
func (c *Client) ActivateCampaign(ctx context.Context, req *CampaignActionRequest) (*CampaignResponse, error) {
	resp := new(CampaignResponse)
	if err := c.invoke(ctx, "ActivateCampaign", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CloseCampaign ...
func (c *Client) CloseCampaign(ctx context.Context, req *CampaignActionRequest) (*CampaignResponse, error) {
	resp := new(CampaignResponse)
	if err := c.invoke(ctx, "CloseCampaign", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListOpenCampaigns ...
func (c *Client) ListOpenCampaigns(ctx context.Context, req *ListOpenCampaignsRequest) (*ListCampaignsResponse, error) {
	resp := new(ListCampaignsResponse)
	if err := c.invoke(ctx, "ListOpenCampaigns", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) submission(ctx context.Context, method string, req interface{}) (*SubmissionResponse, error) {
	resp := new(SubmissionResponse)
	if err := c.invoke(ctx, method, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ReserveSlot ...
func (c *Client) ReserveSlot(ctx context.Context, req *ReserveSlotRequest) (*SubmissionResponse, error) {
	return c.submission(ctx, "ReserveSlot", req)
}

// Approve ...
func (c *Client) Approve(ctx context.Context, req *SubmissionActionRequest) (*SubmissionResponse, error) {
	return c.submission(ctx, "Approve", req)
}

// Reject ...
func (c *Client) Reject(ctx context.Context, req *SubmissionActionRequest) (*SubmissionResponse, error) {
	return c.submission(ctx, "Reject", req)
}

// RequestRevision ...
func (c *Client) RequestRevision(ctx context.Context, req *SubmissionActionRequest) (*SubmissionResponse, error) {
	return c.submission(ctx, "RequestRevision", req)
}

// Resubmit ...
func (c *Client) Resubmit(ctx context.Context, req *ResubmitRequest) (*SubmissionResponse, error) {
	return c.submission(ctx, "Resubmit", req)
}

// GetSubmission ...
func (c *Client) GetSubmission(ctx context.Context, req *GetSubmissionRequest) (*SubmissionResponse, error) {
	return c.submission(ctx, "GetSubmission", req)
}

// SweepExpired ...
func (c *Client) SweepExpired(ctx context.Context, req *SweepExpiredRequest) (*ListSubmissionsResponse, error) {
	resp := new(ListSubmissionsResponse)
	if err := c.invoke(ctx, "SweepExpired", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListSubmissions ...
func (c *Client) ListSubmissions(ctx context.Context, req *ListSubmissionsRequest) (*ListSubmissionsResponse, error) {
	resp := new(ListSubmissionsResponse)
	if err := c.invoke(ctx, "ListSubmissions", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetWallet ...
func (c *Client) GetWallet(ctx context.Context, req *GetWalletRequest) (*WalletResponse, error) {
	resp := new(WalletResponse)
	if err := c.invoke(ctx, "GetWallet", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
