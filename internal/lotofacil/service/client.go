package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/lotofacil/internal/lotofacil/i18n"
	platformerrors "github.com/louisbranch/lotofacil/internal/platform/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Lottery is implemented by Service for in-process calls and by Client for a
// remote server.
type Lottery interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Evaluate(ctx context.Context, req EvaluateRequest) (EvaluateResponse, error)
}

var (
	_ Lottery = (*Service)(nil)
	_ Lottery = (*Client)(nil)
)

// Client calls a remote lottery service.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a client over conn.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// WithLocale asks the server to localize error messages for locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	if locale == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, LocaleHeader, locale)
}

// Generate requests one batch from the remote service.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	in, err := encodeGenerateRequest(req)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("encode request: %w", err)
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, generateBatchMethod, in, out); err != nil {
		return GenerateResponse{}, err
	}
	return decodeGenerateResponse(out)
}

// Evaluate requests the evaluation of a ticket.
func (c *Client) Evaluate(ctx context.Context, req EvaluateRequest) (EvaluateResponse, error) {
	in, err := encodeEvaluateRequest(req)
	if err != nil {
		return EvaluateResponse{}, fmt.Errorf("encode request: %w", err)
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, evaluateTicketMethod, in, out); err != nil {
		return EvaluateResponse{}, err
	}
	return decodeEvaluateResponse(out)
}

// UserMessage returns the localized message attached to a status error, or
// err.Error() when there is none.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	st, ok := status.FromError(err)
	if !ok {
		return err.Error()
	}
	for _, detail := range st.Details() {
		if localized, ok := detail.(*errdetails.LocalizedMessage); ok && localized.GetMessage() != "" {
			return localized.GetMessage()
		}
	}
	return st.Message()
}

// Message returns the user-facing text for err in locale. Platform errors
// from an in-process Service are localized here; status errors from a remote
// server carry their own localized message.
func Message(err error, locale string) string {
	var appErr *platformerrors.Error
	if errors.As(err, &appErr) {
		_, message := i18n.Localizer{}.Localize(locale, appErr.Code, appErr.Metadata)
		return message
	}
	return UserMessage(err)
}
