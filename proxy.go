package consultant

import (
	"context"
	"errors"
)

// ProxyMiddleware satisfies Service by delegating to a remote EndpointSet,
// for clients that reach the consultant over a transport such as NATS.
func ProxyMiddleware(endpoints *EndpointSet) ServiceMiddleware {
	return func(next Service) Service {
		return &proxyMiddleware{
			endpoints: endpoints,
		}
	}
}

type proxyMiddleware struct {
	endpoints *EndpointSet
}

func (mw *proxyMiddleware) Close() error {
	return errors.New("method not implemented")
}

func (mw *proxyMiddleware) Ask(ctx context.Context, question string) (*Answer, error) {
	req := AskRequest{
		Question: question,
	}

	resp, err := mw.endpoints.Ask(ctx, req)
	if err != nil {
		return nil, err
	}

	answer, ok := resp.(*Answer)
	if !ok {
		return nil, errors.New("invalid response type")
	}

	return answer, nil
}
