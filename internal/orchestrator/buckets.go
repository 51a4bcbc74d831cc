package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"uipathctl/internal/logging"
)

const bucketActions = "UiPath.Server.Configuration.OData"

var errUploadSourceDir = errors.New("upload source is a directory")

// ListBuckets returns the storage buckets of a folder.
func (c *Client) ListBuckets(ctx context.Context, folderID string, opts ...CallOption) ([]Bucket, error) {
	if err := checkArgs(validation.Errors{"folder": validation.Validate(folderID, folderRules...)}); err != nil {
		return nil, err
	}
	return list[Bucket](ctx, c, "ListBuckets", "/odata/Buckets", folderID, "", opts)
}

type createBucketBody struct {
	Name              string  `json:"Name"`
	Description       string  `json:"Description"`
	Identifier        string  `json:"Identifier"`
	StorageProvider   *string `json:"StorageProvider"`
	StorageParameters *string `json:"StorageParameters"`
	StorageContainer  *string `json:"StorageContainer"`
	CredentialStoreID *int64  `json:"CredentialStoreId"`
	ExternalName      *string `json:"ExternalName"`
	Password          *string `json:"Password"`
	FoldersCount      int     `json:"FoldersCount"`
	ID                int64   `json:"Id"`
}

// CreateBucket creates an Orchestrator-managed bucket and returns its identifier.
// An empty identifier is replaced by a freshly generated GUID.
func (c *Client) CreateBucket(ctx context.Context, folderID, name, identifier, description string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		identifier = uuid.NewString()
	}
	if err := checkArgs(validation.Errors{
		"folder":     validation.Validate(folderID, folderRules...),
		"name":       validation.Validate(strings.TrimSpace(name), nameRules...),
		"identifier": validation.Validate(identifier, guidRule),
	}); err != nil {
		return "", err
	}
	_, err := c.do(ctx, request{
		operation: "CreateBucket",
		method:    http.MethodPost,
		path:      "/odata/Buckets",
		folderID:  folderID,
		body: createBucketBody{
			Name:        name,
			Description: description,
			Identifier:  identifier,
		},
		expect: []int{http.StatusCreated},
	})
	if err != nil {
		return "", err
	}
	return identifier, nil
}

// DeleteBucket deletes a bucket by id.
func (c *Client) DeleteBucket(ctx context.Context, folderID string, bucketID int64) error {
	if err := checkArgs(validation.Errors{
		"folder": validation.Validate(folderID, folderRules...),
		"id":     validation.Validate(bucketID, idRules...),
	}); err != nil {
		return err
	}
	_, err := c.do(ctx, request{
		operation: "DeleteBucket",
		method:    http.MethodDelete,
		path:      entityPath("Buckets", bucketID),
		folderID:  folderID,
		expect:    []int{http.StatusNoContent},
	})
	return err
}

// UploadBucketFile uploads localPath to remotePath inside a bucket. Orchestrator
// hands out a pre-signed write URI; the file bytes are PUT there without the
// bearer token.
func (c *Client) UploadBucketFile(ctx context.Context, folderID string, bucketID int64, localPath, remotePath string) error {
	if err := checkArgs(validation.Errors{
		"folder":      validation.Validate(folderID, folderRules...),
		"id":          validation.Validate(bucketID, idRules...),
		"local path":  validation.Validate(strings.TrimSpace(localPath), nameRules...),
		"remote path": validation.Validate(strings.TrimSpace(remotePath), nameRules...),
	}); err != nil {
		return err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open upload source: %w", err)
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat upload source: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", errUploadSourceDir, localPath)
	}

	body, err := c.do(ctx, request{
		operation: "GetWriteUri",
		method:    http.MethodGet,
		path:      entityPath("Buckets", bucketID) + "/" + bucketActions + ".GetWriteUri",
		folderID:  folderID,
		query:     url.Values{"path": {remotePath}, "expiryInMinutes": {"0"}},
		expect:    []int{http.StatusOK},
	})
	if err != nil {
		return err
	}
	var writeURI struct {
		URI string `json:"Uri"`
	}
	if err := json.Unmarshal(body, &writeURI); err != nil {
		return fmt.Errorf("decode write uri: %w", err)
	}
	if writeURI.URI == "" {
		return &SchemaError{Schema: "WriteUri", Field: "Uri", Reason: "is required"}
	}

	return c.putBlob(ctx, folderID, writeURI.URI, file, info.Size())
}

func (c *Client) putBlob(ctx context.Context, folderID, uri string, file *os.File, size int64) (err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uri, file)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.ContentLength = size
	req.Header.Set("x-ms-blob-type", "BlockBlob")

	call := Call{
		RequestID: uuid.NewString(),
		Operation: "UploadBucketFile",
		Method:    http.MethodPut,
		Path:      redactQuery(uri),
		FolderID:  folderID,
		StartedAt: time.Now(),
	}
	defer func() {
		call.Duration = time.Since(call.StartedAt)
		if err != nil {
			call.Err = err.Error()
		}
		c.record(ctx, call)
	}()

	resp, err := c.httpClient.Do(req)
	latency := time.Since(call.StartedAt)
	if err != nil {
		return fmt.Errorf("execute upload (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()
	call.StatusCode = resp.StatusCode

	c.logger.Info("HTTP status code",
		logging.FieldOperation, call.Operation,
		logging.FieldRequestID, call.RequestID,
		logging.FieldStatus, resp.StatusCode,
		"latency", latency,
	)
	if !slices.Contains([]int{http.StatusOK, http.StatusCreated}, resp.StatusCode) {
		return &StatusError{Operation: call.Operation, StatusCode: resp.StatusCode}
	}
	c.logger.Info("file uploaded", logging.FieldOperation, call.Operation, "bytes", size)
	return nil
}

// redactQuery drops the signature carried in a pre-signed URI's query string.
func redactQuery(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "<invalid uri>"
	}
	parsed.RawQuery = ""
	return parsed.String()
}

// DeleteBucketFile removes a file from a bucket.
func (c *Client) DeleteBucketFile(ctx context.Context, folderID string, bucketID int64, remotePath string) error {
	if err := checkArgs(validation.Errors{
		"folder": validation.Validate(folderID, folderRules...),
		"id":     validation.Validate(bucketID, idRules...),
		"path":   validation.Validate(strings.TrimSpace(remotePath), nameRules...),
	}); err != nil {
		return err
	}
	_, err := c.do(ctx, request{
		operation: "DeleteBucketFile",
		method:    http.MethodDelete,
		path:      entityPath("Buckets", bucketID) + "/" + bucketActions + ".DeleteFile",
		folderID:  folderID,
		query:     url.Values{"path": {remotePath}},
		expect:    []int{http.StatusNoContent},
	})
	return err
}
