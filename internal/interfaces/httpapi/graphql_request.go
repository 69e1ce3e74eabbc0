package httpapi

import (
	"bytes"
	"io"
	"net/url"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sports-league/internal/interfaces/gqlapi"
	"github.com/riskibarqy/sports-league/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const maxBodyBytes = 1 << 20

// graphQLPayload is either one operation or a batch sent as a JSON array.
type graphQLPayload struct {
	requests []gqlapi.Request
	batch    bool
}

func invalidInputf(format string, args ...any) error {
	return crerr.Mark(crerr.NewWithDepthf(1, format, args...), usecase.ErrInvalidInput)
}

func decodeGraphQLBody(body io.Reader) (graphQLPayload, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(body, maxBodyBytes+1)); err != nil {
		return graphQLPayload{}, invalidInputf("read request body: %v", err)
	}
	if buf.Len() > maxBodyBytes {
		return graphQLPayload{}, crerr.Mark(crerr.Newf("request body exceeds %d bytes", maxBodyBytes), errPayloadTooLarge)
	}

	raw := bytes.TrimSpace(buf.B)
	if len(raw) == 0 {
		return graphQLPayload{}, invalidInputf("request body is empty")
	}

	if raw[0] == '[' {
		var reqs []gqlapi.Request
		if err := sonic.ConfigStd.Unmarshal(raw, &reqs); err != nil {
			return graphQLPayload{}, invalidInputf("invalid JSON body")
		}
		if len(reqs) == 0 {
			return graphQLPayload{}, invalidInputf("batch is empty")
		}
		for i, req := range reqs {
			if req.Query == "" {
				return graphQLPayload{}, invalidInputf("operation %d is missing 'query'", i)
			}
		}
		return graphQLPayload{requests: reqs, batch: true}, nil
	}

	var req gqlapi.Request
	if err := sonic.ConfigStd.Unmarshal(raw, &req); err != nil {
		return graphQLPayload{}, invalidInputf("invalid JSON body")
	}
	if req.Query == "" {
		return graphQLPayload{}, invalidInputf("missing 'query'")
	}
	return graphQLPayload{requests: []gqlapi.Request{req}}, nil
}

func decodeGraphQLQuery(values url.Values) (graphQLPayload, error) {
	req := gqlapi.Request{
		Query:         values.Get("query"),
		OperationName: values.Get("operationName"),
	}
	if req.Query == "" {
		return graphQLPayload{}, invalidInputf("missing 'query'")
	}
	if raw := values.Get("variables"); raw != "" {
		if err := sonic.ConfigStd.UnmarshalFromString(raw, &req.Variables); err != nil {
			return graphQLPayload{}, invalidInputf("invalid 'variables' JSON")
		}
	}
	return graphQLPayload{requests: []gqlapi.Request{req}}, nil
}

// isMutation reports whether the selected operation of req is a mutation.
// Unparseable documents report false and fail later in the engine.
func isMutation(req gqlapi.Request) bool {
	doc, err := parser.ParseQuery(&ast.Source{Input: req.Query})
	if err != nil {
		return false
	}
	op := doc.Operations.ForName(req.OperationName)
	if op == nil && len(doc.Operations) == 1 {
		op = doc.Operations[0]
	}
	return op != nil && op.Operation == ast.Mutation
}
