package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/google/uuid"

	"uipathctl/internal/logging"
)

const folderHeader = "X-UIPATH-OrganizationUnitID"

type request struct {
	operation string
	method    string
	path      string
	folderID  string
	query     url.Values
	body      any
	expect    []int
	saveAs    string
}

// do issues one authenticated request and returns the response body when the
// status is one of req.expect.
func (c *Client) do(ctx context.Context, req request) (body []byte, err error) {
	token := c.accessToken()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	endpoint := c.cfg.BaseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var payload io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", req.operation, err)
		}
		payload = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if req.folderID != "" {
		httpReq.Header.Set(folderHeader, req.folderID)
	}

	call := Call{
		RequestID: uuid.NewString(),
		Operation: req.operation,
		Method:    req.method,
		Path:      req.path,
		FolderID:  req.folderID,
		StartedAt: time.Now(),
	}
	defer func() {
		call.Duration = time.Since(call.StartedAt)
		if err != nil {
			call.Err = err.Error()
		}
		c.record(ctx, call)
	}()

	resp, err := c.httpClient.Do(httpReq)
	latency := time.Since(call.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("execute %s (latency=%v): %w", req.operation, latency, err)
	}
	defer resp.Body.Close()
	call.StatusCode = resp.StatusCode

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", req.operation, err)
	}

	logger := c.logger.With(
		logging.FieldOperation, req.operation,
		logging.FieldRequestID, call.RequestID,
	)
	logger.Info("HTTP status code",
		logging.FieldStatus, resp.StatusCode,
		"latency", latency,
	)

	if !slices.Contains(req.expect, resp.StatusCode) {
		logger.Warn("unexpected status",
			logging.FieldStatus, resp.StatusCode,
			"expected", req.expect,
			logging.FieldFolderID, req.folderID,
		)
		return nil, &StatusError{Operation: req.operation, StatusCode: resp.StatusCode, Body: body}
	}

	if req.saveAs != "" {
		if err := writeExport(ctx, req.saveAs, body); err != nil {
			return nil, err
		}
		logger.Info("exported response", "path", req.saveAs, "bytes", len(body))
	}
	return body, nil
}

func (c *Client) record(ctx context.Context, call Call) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.RecordCall(context.WithoutCancel(ctx), call); err != nil {
		c.logger.Warn("record call failed",
			logging.FieldOperation, call.Operation,
			logging.FieldRequestID, call.RequestID,
			logging.Error(err),
		)
	}
}

// list runs a collection read and decodes the {"value": [...]} envelope.
func list[T any](ctx context.Context, c *Client, operation, path, folderID, requiredFilter string, opts []CallOption) ([]T, error) {
	options := resolveCallOptions(opts)
	body, err := c.do(ctx, request{
		operation: operation,
		method:    http.MethodGet,
		path:      path,
		folderID:  folderID,
		query:     options.query(schemaFor[T]().selectList(), requiredFilter),
		expect:    []int{http.StatusOK},
		saveAs:    options.saveAs,
	})
	if err != nil {
		return nil, err
	}
	records, err := decodeList[T](body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return records, nil
}

// get runs a single-entity read. Only SaveAs applies.
func get[T any](ctx context.Context, c *Client, operation, path, folderID string, opts []CallOption) (*T, error) {
	options := resolveCallOptions(opts)
	if options.hasCollectionQuery() {
		return nil, fmt.Errorf("%w: %s does not accept $filter, $orderby, $top or $skip", ErrInvalidArgument, operation)
	}
	body, err := c.do(ctx, request{
		operation: operation,
		method:    http.MethodGet,
		path:      path,
		folderID:  folderID,
		query:     url.Values{"$select": {schemaFor[T]().selectList()}},
		expect:    []int{http.StatusOK},
		saveAs:    options.saveAs,
	})
	if err != nil {
		return nil, err
	}
	record, err := decodeRecord[T](body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return &record, nil
}

func entityPath(collection string, id int64) string {
	return fmt.Sprintf("/odata/%s(%d)", collection, id)
}
